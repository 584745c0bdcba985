package jsondoc

import (
	"github.com/espkit/jsondoc/v2/internal/codec"
)

// Serialize renders v as compact JSON. An empty document and the null variant
// both render as "null".
func Serialize(v Value) ([]byte, error) {
	return appendNode(nil, v.asVariant().n, "", 0)
}

// SerializePretty renders v with two-space indentation.
func SerializePretty(v Value) ([]byte, error) {
	return appendNode(nil, v.asVariant().n, "  ", 0)
}

// Measure returns the length of the compact serialization, or 0 when v does
// not serialize.
func Measure(v Value) int {
	out, err := Serialize(v)
	if err != nil {
		return 0
	}
	return len(out)
}

// DriverName identifies the codec backend compiled into the library.
func DriverName() string { return codec.DriverName() }

func appendNode(dst []byte, n *node, indent string, level int) ([]byte, error) {
	if n == nil {
		return append(dst, "null"...), nil
	}
	switch n.kind {
	case KindNull:
		return append(dst, "null"...), nil
	case KindBool:
		if n.b {
			return append(dst, "true"...), nil
		}
		return append(dst, "false"...), nil
	case KindNumber:
		if n.num == "" {
			return append(dst, '0'), nil
		}
		return append(dst, n.num...), nil
	case KindString:
		return appendString(dst, n.str)
	case KindArray:
		if len(n.arr) == 0 {
			return append(dst, "[]"...), nil
		}
		dst = append(dst, '[')
		for i, el := range n.arr {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendNewline(dst, indent, level+1)
			var err error
			dst, err = appendNode(dst, el, indent, level+1)
			if err != nil {
				return nil, err
			}
		}
		dst = appendNewline(dst, indent, level)
		return append(dst, ']'), nil
	case KindObject:
		if len(n.obj) == 0 {
			return append(dst, "{}"...), nil
		}
		dst = append(dst, '{')
		for i, m := range n.obj {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendNewline(dst, indent, level+1)
			var err error
			dst, err = appendString(dst, m.key)
			if err != nil {
				return nil, err
			}
			dst = append(dst, ':')
			if indent != "" {
				dst = append(dst, ' ')
			}
			dst, err = appendNode(dst, m.val, indent, level+1)
			if err != nil {
				return nil, err
			}
		}
		dst = appendNewline(dst, indent, level)
		return append(dst, '}'), nil
	}
	return append(dst, "null"...), nil
}

// appendString delegates quoting and escaping to the codec backend.
func appendString(dst []byte, s string) ([]byte, error) {
	quoted, err := codec.Marshal(s)
	if err != nil {
		return nil, err
	}
	return append(dst, quoted...), nil
}

func appendNewline(dst []byte, indent string, level int) []byte {
	if indent == "" {
		return dst
	}
	dst = append(dst, '\n')
	for i := 0; i < level; i++ {
		dst = append(dst, indent...)
	}
	return dst
}
