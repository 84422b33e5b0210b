package ore

// NativeFunc is the calling convention every primitive method implements:
// given the interpreter handle and the already-popped argument vector
// (receiver excluded), produce the send's result object.
type NativeFunc func(interp *Interpreter, args []Value) Value

// PrimitiveMethod wraps a native Go function as method content. It carries
// its own declared parameter count rather than deriving one from a slot map,
// since it has no parameter slots to enumerate.
type PrimitiveMethod struct {
	Object
	ParamCount int64
	Native     NativeFunc
}

var _ Value = (*PrimitiveMethod)(nil)

// NewPrimitiveMethodValue wraps fn as a primitive method of the given arity.
func NewPrimitiveMethodValue(paramCount int64, fn NativeFunc) *PrimitiveMethod {
	return &PrimitiveMethod{Object: newHeader(), ParamCount: paramCount, Native: fn}
}

// Copy returns p itself: a primitive method carries a native handler rather
// than slot-bound state, so its copy contract is identity, the same as
// Symbol's.
func (p *PrimitiveMethod) Copy() Value { return p }
