package jsondoc

// Array is a view over an array value inside a Document. The zero Array is
// unbound; lookups on it yield null and mutations return ErrUnbound. Copying
// an Array copies the view, not the elements.
type Array struct {
	v Variant
}

func (a Array) asVariant() Variant { return a.v }

// IsNull reports whether the view is unbound.
func (a Array) IsNull() bool { return a.v.n == nil }

// Size returns the element count.
func (a Array) Size() int { return a.v.Size() }

// At returns the i-th element, or the null variant when out of range.
func (a Array) At(i int) Variant { return a.v.At(i) }

// Append converts value and appends it, returning a variant bound to the new
// element.
func (a Array) Append(value any) (Variant, error) {
	if a.v.n == nil || a.v.doc == nil {
		return Variant{}, ErrUnbound
	}
	n, err := a.v.doc.toNode(value)
	if err != nil {
		return Variant{}, err
	}
	a.v.n.arr = append(a.v.n.arr, n)
	return Variant{doc: a.v.doc, n: n}, nil
}

// AppendArray appends a new empty array and returns a view over it.
func (a Array) AppendArray() (Array, error) {
	v, err := a.Append([]any{})
	if err != nil {
		return Array{}, err
	}
	return Array{v: v}, nil
}

// AppendObject appends a new empty object and returns a view over it.
func (a Array) AppendObject() (Object, error) {
	v, err := a.Append(map[string]any{})
	if err != nil {
		return Object{}, err
	}
	return Object{v: v}, nil
}

// Remove deletes the i-th element. Out-of-range indexes are ignored. The
// document's value budget is not refunded.
func (a Array) Remove(i int) {
	if a.v.n == nil || i < 0 || i >= len(a.v.n.arr) {
		return
	}
	a.v.n.arr = append(a.v.n.arr[:i], a.v.n.arr[i+1:]...)
}
