package ore

// Assignment is a reifier: as the content of a slot, it turns a one-argument
// send into a store into its target slot name on the lookup's location.
type Assignment struct {
	Object
	Target SymbolKey
}

var _ Value = (*Assignment)(nil)

// NewAssignmentValue wraps a target slot name in a fresh Assignment object.
func NewAssignmentValue(target SymbolKey) *Assignment {
	return &Assignment{Object: newHeader(), Target: target}
}

// ParamCount is always 1 for an Assignment: it takes exactly the value to
// store.
func (a *Assignment) ParamCount() int64 { return 1 }

// Copy produces a fresh Assignment with the same target and a duplicate of
// the slot map.
func (a *Assignment) Copy() Value {
	c := &Assignment{Target: a.Target}
	a.cloneInto(&c.Object)
	return c
}
