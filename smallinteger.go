package ore

// SmallInteger is a signed 64-bit integer value.
type SmallInteger struct {
	Object
	Value int64
}

var _ Value = (*SmallInteger)(nil)

// NewSmallIntegerValue wraps v in a fresh SmallInteger object with no slots.
func NewSmallIntegerValue(v int64) *SmallInteger {
	return &SmallInteger{Object: newHeader(), Value: v}
}

// Copy produces a fresh SmallInteger with the same value and a duplicate of
// the slot map.
func (n *SmallInteger) Copy() Value {
	c := &SmallInteger{Value: n.Value}
	n.cloneInto(&c.Object)
	return c
}
