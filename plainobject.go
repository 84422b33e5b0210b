package ore

// PlainObject is the catch-all kind: an object with a slot map and optional
// code attachment but no specialized payload. The deserializer's OBJECT tag
// produces these; the universe's traits, lobby, globals, and primitives
// holder are all plain objects too.
type PlainObject struct {
	Object
}

var _ Value = (*PlainObject)(nil)

// NewPlainObjectValue returns a fresh, slotless plain object.
func NewPlainObjectValue() *PlainObject {
	return &PlainObject{Object: newHeader()}
}

// Copy duplicates the slot map and code attachment.
func (p *PlainObject) Copy() Value {
	c := &PlainObject{}
	p.cloneInto(&c.Object)
	return c
}
