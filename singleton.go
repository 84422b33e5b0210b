package ore

// Singleton is the kind used for the universe's none, true, and false
// objects. Their identity is load-bearing: a process's "finished" check and
// every comparison against none, true, or false depend on pointer identity
// surviving PUSH_LITERAL's defensive copy, so unlike PlainObject, Singleton's
// copy contract is identity (the same departure Symbol and PrimitiveMethod
// make, for the same reason).
type Singleton struct {
	Object
	Name string
}

var _ Value = (*Singleton)(nil)

// NewSingletonValue returns a fresh, slotless singleton tagged with name
// (used only for diagnostics, e.g. in tests).
func NewSingletonValue(name string) *Singleton {
	return &Singleton{Object: newHeader(), Name: name}
}

// Copy returns s itself.
func (s *Singleton) Copy() Value { return s }
