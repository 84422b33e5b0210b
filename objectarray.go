package ore

// ObjectArray is a fixed-length sequence of object references, initialized
// to the universe's none object.
type ObjectArray struct {
	Object
	Items []Value
}

var _ Value = (*ObjectArray)(nil)

// NewObjectArrayValue creates an ObjectArray of the given length with every
// slot initialized to fill (normally the universe's none object). Negative
// or zero counts are treated as zero.
func NewObjectArrayValue(count int64, fill Value) *ObjectArray {
	if count < 0 {
		count = 0
	}
	items := make([]Value, count)
	for i := range items {
		items[i] = fill
	}
	return &ObjectArray{Object: newHeader(), Items: items}
}

// Len returns the object array's fixed length.
func (a *ObjectArray) Len() int { return len(a.Items) }

// Get returns the value at index, or false if index is out of bounds.
func (a *ObjectArray) Get(index int64) (Value, bool) {
	if index < 0 || index >= int64(len(a.Items)) {
		return nil, false
	}
	return a.Items[index], true
}

// Put stores value at index, reporting false if index is out of bounds.
func (a *ObjectArray) Put(index int64, value Value) bool {
	if index < 0 || index >= int64(len(a.Items)) {
		return false
	}
	a.Items[index] = value
	return true
}

// Copy duplicates the item vector (sharing the referenced values, not
// deep-copying them) and the slot map.
func (a *ObjectArray) Copy() Value {
	items := make([]Value, len(a.Items))
	copy(items, a.Items)
	c := &ObjectArray{Items: items}
	a.cloneInto(&c.Object)
	return c
}
