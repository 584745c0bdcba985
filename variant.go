package jsondoc

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Kind enumerates the JSON value kinds a Variant can hold.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

type member struct {
	key string
	val *node
}

// node is the in-memory representation of one JSON value. Nodes are only ever
// allocated through their document so the value budget stays accurate.
type node struct {
	kind Kind
	b    bool
	num  json.Number
	str  string
	arr  []*node
	obj  []member
}

// Value designates any JSON value inside a document: a Variant, an Array, an
// Object, or a whole Document.
type Value interface {
	asVariant() Variant
}

// Variant is a view over one value inside a Document. The zero Variant is
// null. Mutating a variant mutates the document it came from.
type Variant struct {
	doc *Document
	n   *node
}

func (v Variant) asVariant() Variant { return v }

// Kind reports the kind of the referenced value; null for the zero Variant.
func (v Variant) Kind() Kind {
	if v.n == nil {
		return KindNull
	}
	return v.n.kind
}

// IsNull reports whether the variant is null or unbound.
func (v Variant) IsNull() bool { return v.Kind() == KindNull }

// Bool returns the boolean value, with ok=false for non-boolean variants.
func (v Variant) Bool() (bool, bool) {
	if v.n == nil || v.n.kind != KindBool {
		return false, false
	}
	return v.n.b, true
}

// Int returns the value as int64. It succeeds only for numbers with an exact
// integer representation.
func (v Variant) Int() (int64, bool) {
	if v.n == nil || v.n.kind != KindNumber {
		return 0, false
	}
	i, err := v.n.num.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}

// Float returns the value as float64 for any number variant.
func (v Variant) Float() (float64, bool) {
	if v.n == nil || v.n.kind != KindNumber {
		return 0, false
	}
	f, err := v.n.num.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

// Number returns the raw number with its textual representation preserved.
func (v Variant) Number() (json.Number, bool) {
	if v.n == nil || v.n.kind != KindNumber {
		return "", false
	}
	return v.n.num, true
}

// String returns the string value, with ok=false for non-string variants.
func (v Variant) String() (string, bool) {
	if v.n == nil || v.n.kind != KindString {
		return "", false
	}
	return v.n.str, true
}

// Array returns an array view, with ok=false for non-array variants.
func (v Variant) Array() (Array, bool) {
	if v.n == nil || v.n.kind != KindArray {
		return Array{}, false
	}
	return Array{v: v}, true
}

// Object returns an object view, with ok=false for non-object variants.
func (v Variant) Object() (Object, bool) {
	if v.n == nil || v.n.kind != KindObject {
		return Object{}, false
	}
	return Object{v: v}, true
}

// Get returns the member value for key when the variant is an object, and the
// null variant otherwise. Chained lookups stay safe: a missed key yields null
// and further Get/At calls keep yielding null.
func (v Variant) Get(key string) Variant {
	if v.n == nil || v.n.kind != KindObject {
		return Variant{doc: v.doc}
	}
	for _, m := range v.n.obj {
		if m.key == key {
			return Variant{doc: v.doc, n: m.val}
		}
	}
	return Variant{doc: v.doc}
}

// At returns the i-th element when the variant is an array, and the null
// variant otherwise.
func (v Variant) At(i int) Variant {
	if v.n == nil || v.n.kind != KindArray || i < 0 || i >= len(v.n.arr) {
		return Variant{doc: v.doc}
	}
	return Variant{doc: v.doc, n: v.n.arr[i]}
}

// Size returns the element count for arrays, the member count for objects,
// and 0 for everything else.
func (v Variant) Size() int {
	if v.n == nil {
		return 0
	}
	switch v.n.kind {
	case KindArray:
		return len(v.n.arr)
	case KindObject:
		return len(v.n.obj)
	default:
		return 0
	}
}

// Set overwrites the referenced value in place. The new value is converted
// with the same rules as Object.Set; the variant must be bound.
func (v Variant) Set(value any) error {
	if v.n == nil || v.doc == nil {
		return ErrUnbound
	}
	n, err := v.doc.toNode(value)
	if err != nil {
		return err
	}
	*v.n = *n
	return nil
}

// Interface exports the value as plain Go data: nil, bool, json.Number,
// string, []any or map[string]any. Object key order is not preserved in the
// exported map.
func (v Variant) Interface() any {
	if v.n == nil {
		return nil
	}
	return v.n.export()
}

func (n *node) export() any {
	switch n.kind {
	case KindBool:
		return n.b
	case KindNumber:
		return n.num
	case KindString:
		return n.str
	case KindArray:
		out := make([]any, len(n.arr))
		for i, el := range n.arr {
			out[i] = el.export()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(n.obj))
		for _, m := range n.obj {
			out[m.key] = m.val.export()
		}
		return out
	default:
		return nil
	}
}

// toNode converts a Go value into a freshly allocated node tree, charging the
// document's value budget. map inputs are stored in sorted key order since Go
// map iteration order is undefined.
func (d *Document) toNode(value any) (*node, error) {
	n := d.alloc()
	if n == nil {
		return nil, ErrDocumentFull
	}
	switch v := value.(type) {
	case nil:
		// null node
	case bool:
		n.kind, n.b = KindBool, v
	case string:
		n.kind, n.str = KindString, v
	case json.Number:
		n.kind, n.num = KindNumber, v
	case int:
		n.kind, n.num = KindNumber, json.Number(strconv.FormatInt(int64(v), 10))
	case int8:
		n.kind, n.num = KindNumber, json.Number(strconv.FormatInt(int64(v), 10))
	case int16:
		n.kind, n.num = KindNumber, json.Number(strconv.FormatInt(int64(v), 10))
	case int32:
		n.kind, n.num = KindNumber, json.Number(strconv.FormatInt(int64(v), 10))
	case int64:
		n.kind, n.num = KindNumber, json.Number(strconv.FormatInt(v, 10))
	case uint:
		n.kind, n.num = KindNumber, json.Number(strconv.FormatUint(uint64(v), 10))
	case uint8:
		n.kind, n.num = KindNumber, json.Number(strconv.FormatUint(uint64(v), 10))
	case uint16:
		n.kind, n.num = KindNumber, json.Number(strconv.FormatUint(uint64(v), 10))
	case uint32:
		n.kind, n.num = KindNumber, json.Number(strconv.FormatUint(uint64(v), 10))
	case uint64:
		n.kind, n.num = KindNumber, json.Number(strconv.FormatUint(v, 10))
	case float32:
		n.kind, n.num = KindNumber, json.Number(strconv.FormatFloat(float64(v), 'g', -1, 32))
	case float64:
		n.kind, n.num = KindNumber, json.Number(strconv.FormatFloat(v, 'g', -1, 64))
	case []any:
		n.kind = KindArray
		n.arr = make([]*node, 0, len(v))
		for _, el := range v {
			child, err := d.toNode(el)
			if err != nil {
				return nil, err
			}
			n.arr = append(n.arr, child)
		}
	case map[string]any:
		n.kind = KindObject
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		n.obj = make([]member, 0, len(v))
		for _, k := range keys {
			child, err := d.toNode(v[k])
			if err != nil {
				return nil, err
			}
			n.obj = append(n.obj, member{key: k, val: child})
		}
	case Variant:
		return d.copyFrom(n, v.n)
	case Array:
		return d.copyFrom(n, v.v.n)
	case Object:
		return d.copyFrom(n, v.v.n)
	case *Document:
		return d.copyFrom(n, v.root)
	default:
		return nil, fmt.Errorf("jsondoc: unsupported value type %T", value)
	}
	return n, nil
}

// copyFrom deep-copies src into dst, allocating children in d. A nil src
// leaves dst null.
func (d *Document) copyFrom(dst, src *node) (*node, error) {
	if src == nil {
		return dst, nil
	}
	dst.kind, dst.b, dst.num, dst.str = src.kind, src.b, src.num, src.str
	if src.arr != nil {
		dst.arr = make([]*node, 0, len(src.arr))
		for _, el := range src.arr {
			child := d.alloc()
			if child == nil {
				return nil, ErrDocumentFull
			}
			if _, err := d.copyFrom(child, el); err != nil {
				return nil, err
			}
			dst.arr = append(dst.arr, child)
		}
	}
	if src.obj != nil {
		dst.obj = make([]member, 0, len(src.obj))
		for _, m := range src.obj {
			child := d.alloc()
			if child == nil {
				return nil, ErrDocumentFull
			}
			if _, err := d.copyFrom(child, m.val); err != nil {
				return nil, err
			}
			dst.obj = append(dst.obj, member{key: m.key, val: child})
		}
	}
	return dst, nil
}
