package ore

// Code carries the compiled body of a method or module: how much stack an
// activation needs, the literal table SEND and PUSH_LITERAL index into, and
// the bytecode instruction stream.
type Code struct {
	Object
	StackUsage int64
	Literals   *ObjectArray
	Bytecode   *ByteArray
}

var _ Value = (*Code)(nil)

// NewCodeValue assembles a Code object from its three fields. The caller is
// responsible for the invariant that Bytecode's length is even.
func NewCodeValue(stackUsage int64, literals *ObjectArray, bytecode *ByteArray) *Code {
	return &Code{Object: newHeader(), StackUsage: stackUsage, Literals: literals, Bytecode: bytecode}
}

// InstructionCount returns the number of two-byte instructions in Bytecode.
func (c *Code) InstructionCount() int {
	if c.Bytecode == nil {
		return 0
	}
	return c.Bytecode.Len() / 2
}

// InstructionAt returns the (opcode, parameter) pair at instruction index i,
// or false if i is out of range.
func (c *Code) InstructionAt(i int) (opcode, parameter byte, ok bool) {
	if i < 0 || i >= c.InstructionCount() {
		return 0, 0, false
	}
	op, _ := c.Bytecode.Get(int64(i * 2))
	param, _ := c.Bytecode.Get(int64(i*2 + 1))
	return op, param, true
}

// LiteralAt returns the literal at idx, or false if idx is out of range.
func (c *Code) LiteralAt(idx int64) (Value, bool) {
	if c.Literals == nil {
		return nil, false
	}
	return c.Literals.Get(idx)
}

// Copy produces a fresh Code sharing the same Literals and Bytecode
// references (code bodies are immutable payload, not duplicated) along with
// a duplicate slot map.
func (c *Code) Copy() Value {
	cp := &Code{StackUsage: c.StackUsage, Literals: c.Literals, Bytecode: c.Bytecode}
	c.cloneInto(&cp.Object)
	return cp
}
