package jsondoc

// Object is a view over an object value inside a Document. Member order is
// insertion order and survives serialization. The zero Object is unbound.
type Object struct {
	v Variant
}

func (o Object) asVariant() Variant { return o.v }

// IsNull reports whether the view is unbound.
func (o Object) IsNull() bool { return o.v.n == nil }

// Size returns the member count.
func (o Object) Size() int { return o.v.Size() }

// Get returns the value for key, or the null variant when absent.
func (o Object) Get(key string) Variant { return o.v.Get(key) }

// Has reports whether key is present.
func (o Object) Has(key string) bool {
	if o.v.n == nil {
		return false
	}
	for _, m := range o.v.n.obj {
		if m.key == key {
			return true
		}
	}
	return false
}

// Keys returns the member keys in insertion order.
func (o Object) Keys() []string {
	if o.v.n == nil {
		return nil
	}
	keys := make([]string, 0, len(o.v.n.obj))
	for _, m := range o.v.n.obj {
		keys = append(keys, m.key)
	}
	return keys
}

// Set converts value and stores it under key, replacing any existing member
// in place. It returns a variant bound to the stored value.
func (o Object) Set(key string, value any) (Variant, error) {
	if o.v.n == nil || o.v.doc == nil {
		return Variant{}, ErrUnbound
	}
	n, err := o.v.doc.toNode(value)
	if err != nil {
		return Variant{}, err
	}
	o.v.n.setMember(key, n)
	return Variant{doc: o.v.doc, n: n}, nil
}

// SetObject stores a new empty object under key and returns a view over it.
func (o Object) SetObject(key string) (Object, error) {
	v, err := o.Set(key, map[string]any{})
	if err != nil {
		return Object{}, err
	}
	return Object{v: v}, nil
}

// SetArray stores a new empty array under key and returns a view over it.
func (o Object) SetArray(key string) (Array, error) {
	v, err := o.Set(key, []any{})
	if err != nil {
		return Array{}, err
	}
	return Array{v: v}, nil
}

// Remove deletes the member for key. Missing keys are ignored. The document's
// value budget is not refunded.
func (o Object) Remove(key string) {
	if o.v.n == nil {
		return
	}
	for i, m := range o.v.n.obj {
		if m.key == key {
			o.v.n.obj = append(o.v.n.obj[:i], o.v.n.obj[i+1:]...)
			return
		}
	}
}

// setMember replaces the value for key when present, otherwise appends.
func (n *node) setMember(key string, val *node) {
	for i, m := range n.obj {
		if m.key == key {
			n.obj[i].val = val
			return
		}
	}
	n.obj = append(n.obj, member{key: key, val: val})
}
