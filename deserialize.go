package jsondoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/espkit/jsondoc/v2/internal/codec"
)

// DefaultNestingLimit bounds how deeply containers may nest when no explicit
// MaxDepth is given.
const DefaultNestingLimit = 10

// DeserializeOpt bundles deserialization options.
type DeserializeOpt struct {
	MaxDepth int   // nesting limit; 0 means DefaultNestingLimit
	MaxBytes int64 // input size cap in bytes; 0 means unlimited
}

// Deserialize parses data into doc, replacing any previous content. On
// failure the document is left empty and the error is a
// *DeserializationError. Input after the first top-level value is ignored.
func Deserialize(doc *Document, data []byte, opts ...DeserializeOpt) error {
	return DeserializeReader(doc, bytes.NewReader(data), opts...)
}

// DeserializeReader is Deserialize over a stream.
func DeserializeReader(doc *Document, r io.Reader, opts ...DeserializeOpt) error {
	var opt DeserializeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	maxDepth := opt.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultNestingLimit
	}
	if opt.MaxBytes > 0 {
		r = io.LimitReader(r, opt.MaxBytes)
	}

	doc.Clear()
	dec := codec.NewTokenDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return newError(CodeEmptyInput, nil)
		}
		return mapDecodeError(err)
	}
	n, err := buildValue(doc, dec, tok, 1, maxDepth)
	if err != nil {
		doc.Clear()
		// keep the overflow flag visible after a failed parse
		if de, ok := AsDeserializationError(err); ok && de.Code() == CodeNoMemory {
			doc.over = true
		}
		return err
	}
	doc.root = n
	return nil
}

// buildValue turns the already-read token tok (and, for containers, the
// decoder's following tokens) into a node tree.
func buildValue(doc *Document, dec *codec.Decoder, tok codec.Token, depth, maxDepth int) (*node, error) {
	n := doc.alloc()
	if n == nil {
		return nil, newError(CodeNoMemory, nil)
	}
	switch t := tok.(type) {
	case codec.Delim:
		if depth > maxDepth {
			return nil, newError(CodeTooDeep, nil)
		}
		switch t {
		case '{':
			n.kind = KindObject
			n.obj = []member{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, mapDecodeError(err)
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, newError(CodeInvalidInput, nil)
				}
				valTok, err := dec.Token()
				if err != nil {
					return nil, mapDecodeError(err)
				}
				child, err := buildValue(doc, dec, valTok, depth+1, maxDepth)
				if err != nil {
					return nil, err
				}
				n.setMember(key, child)
			}
			if _, err := dec.Token(); err != nil { // closing '}'
				return nil, mapDecodeError(err)
			}
		case '[':
			n.kind = KindArray
			n.arr = []*node{}
			for dec.More() {
				elTok, err := dec.Token()
				if err != nil {
					return nil, mapDecodeError(err)
				}
				child, err := buildValue(doc, dec, elTok, depth+1, maxDepth)
				if err != nil {
					return nil, err
				}
				n.arr = append(n.arr, child)
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return nil, mapDecodeError(err)
			}
		default:
			return nil, newError(CodeInvalidInput, nil)
		}
	case bool:
		n.kind, n.b = KindBool, t
	case string:
		n.kind, n.str = KindString, t
	case codec.Number:
		n.kind, n.num = KindNumber, json.Number(t)
	case float64:
		// Some decoder paths surface numbers as float64 despite UseNumber.
		n.kind, n.num = KindNumber, json.Number(strconv.FormatFloat(t, 'g', -1, 64))
	case nil:
		// null node
	default:
		return nil, newError(CodeInvalidInput, nil)
	}
	return n, nil
}

// mapDecodeError classifies decoder failures: truncated input reads as
// incomplete_input, everything else as invalid_input.
func mapDecodeError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return newError(CodeIncompleteInput, err)
	}
	return newError(CodeInvalidInput, err)
}
