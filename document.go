package jsondoc

// Document owns a tree of JSON values. Documents grow on demand; an optional
// value budget set via NewDynamic caps how many values the tree may hold. The
// zero Document is ready to use and unbounded.
type Document struct {
	root  *node
	limit int // 0 = unbounded
	used  int
	over  bool
}

// New returns an empty, unbounded document.
func New() *Document { return &Document{} }

// DynamicDocument is retained for source compatibility with code written
// against the sized-document API. Documents grow on demand either way; the
// capacity passed to NewDynamic acts as an upper bound on stored values
// instead of a preallocation.
type DynamicDocument = Document

// NewDynamic returns a document that holds at most capacity values. A
// capacity of zero or less means unbounded.
func NewDynamic(capacity int) *DynamicDocument {
	if capacity < 0 {
		capacity = 0
	}
	return &Document{limit: capacity}
}

func (d *Document) asVariant() Variant { return d.Root() }

// Root returns a variant bound to the root value; null for an empty document.
func (d *Document) Root() Variant { return Variant{doc: d, n: d.root} }

// Set replaces the root with the converted value.
func (d *Document) Set(value any) error {
	n, err := d.toNode(value)
	if err != nil {
		return err
	}
	d.root = n
	return nil
}

// ToObject replaces the root with an empty object and returns a view over it.
// The zero Object is returned when the value budget is exhausted.
func (d *Document) ToObject() Object {
	n := d.alloc()
	if n == nil {
		return Object{}
	}
	n.kind = KindObject
	n.obj = []member{}
	d.root = n
	return Object{v: Variant{doc: d, n: n}}
}

// ToArray replaces the root with an empty array and returns a view over it.
func (d *Document) ToArray() Array {
	n := d.alloc()
	if n == nil {
		return Array{}
	}
	n.kind = KindArray
	n.arr = []*node{}
	d.root = n
	return Array{v: Variant{doc: d, n: n}}
}

// Clear drops the tree and resets the value budget and overflow flag.
func (d *Document) Clear() {
	d.root = nil
	d.used = 0
	d.over = false
}

// MemoryUsage returns the number of values allocated in the document since
// the last Clear. Removed and replaced values still count, matching the
// arena-style accounting of the sized-document API.
func (d *Document) MemoryUsage() int { return d.used }

// Capacity returns the value budget; 0 means unbounded.
func (d *Document) Capacity() int { return d.limit }

// Overflowed reports whether any allocation was refused because of the value
// budget since the last Clear.
func (d *Document) Overflowed() bool { return d.over }

// alloc hands out one node, or nil when the budget is exhausted.
func (d *Document) alloc() *node {
	if d.limit > 0 && d.used >= d.limit {
		d.over = true
		return nil
	}
	d.used++
	return &node{}
}
