package ore

// Frame is one method activation record. Its stack is a fixed-capacity
// ObjectArray with an explicit top index rather than a growable slice, so
// that stack-overflow is a precondition check rather than an allocation.
type Frame struct {
	Object
	Previous   *Frame
	Stack      *ObjectArray
	Top        int64
	Activation Value
	InstrIndex int64
}

var _ Value = (*Frame)(nil)

// NewFrameValue builds a frame over the given stack, running activation
// from instruction 0 with no previous frame.
func NewFrameValue(stack *ObjectArray, activation Value) *Frame {
	return &Frame{Object: newHeader(), Stack: stack, Activation: activation}
}

// IsStackEmpty reports whether the frame's stack holds no items.
func (f *Frame) IsStackEmpty() bool { return f.Top == 0 }

// IsStackFull reports whether the frame's stack is at capacity.
func (f *Frame) IsStackFull() bool { return f.Stack == nil || f.Top >= int64(f.Stack.Len()) }

// CanStackChangeBy reports whether the stack can move by delta (positive to
// push, negative to pop) without under- or overflowing.
func (f *Frame) CanStackChangeBy(delta int64) bool {
	next := f.Top + delta
	capacity := int64(0)
	if f.Stack != nil {
		capacity = int64(f.Stack.Len())
	}
	return next >= 0 && next <= capacity
}

// PushItem pushes v onto the stack. The caller must have already verified
// !IsStackFull.
func (f *Frame) PushItem(v Value) {
	f.Stack.Put(f.Top, v)
	f.Top++
}

// PullItem pops the top of the stack, writing none into the vacated slot so
// the popped reference is not kept alive by the stack array, and returns the
// popped value. The caller must have already verified !IsStackEmpty.
func (f *Frame) PullItem(none Value) Value {
	f.Top--
	v, _ := f.Stack.Get(f.Top)
	f.Stack.Put(f.Top, none)
	return v
}

// PeekItem returns the value at depth below the top (0 = top) without
// popping it.
func (f *Frame) PeekItem(depth int64) (Value, bool) {
	idx := f.Top - 1 - depth
	if idx < 0 || idx >= int64(f.Stack.Len()) {
		return nil, false
	}
	return f.Stack.Get(idx)
}

// GetCode returns the Code driving this frame's dispatch, i.e. the code
// attached to the activation object.
func (f *Frame) GetCode() *Code {
	if f.Activation == nil {
		return nil
	}
	return f.Activation.Obj().Code()
}

// LiteralAt returns the literal at idx from this frame's code, or false if
// there is no code or idx is out of range.
func (f *Frame) LiteralAt(idx int64) (Value, bool) {
	c := f.GetCode()
	if c == nil {
		return nil, false
	}
	return c.LiteralAt(idx)
}

// GetCurrentInstruction returns the (opcode, parameter) pair at the frame's
// current instruction index.
func (f *Frame) GetCurrentInstruction() (opcode, parameter byte, ok bool) {
	c := f.GetCode()
	if c == nil {
		return 0, 0, false
	}
	return c.InstructionAt(int(f.InstrIndex))
}

// MoveInstructionBy advances (or rewinds) the instruction index by n.
func (f *Frame) MoveInstructionBy(n int64) { f.InstrIndex += n }

// HasFinished reports whether the frame has run past its last instruction.
func (f *Frame) HasFinished() bool {
	c := f.GetCode()
	if c == nil {
		return true
	}
	return int(f.InstrIndex) >= c.InstructionCount()
}

// GetMethodActivation returns the frame's activation object.
func (f *Frame) GetMethodActivation() Value { return f.Activation }

// GetPreviousFrame returns the frame this one was pushed on top of.
func (f *Frame) GetPreviousFrame() *Frame { return f.Previous }

// SetPreviousFrame sets the frame this one was pushed on top of.
func (f *Frame) SetPreviousFrame(prev *Frame) { f.Previous = prev }

// Copy duplicates the frame's slot map. Frames are not normally copied
// during execution (only PUSH_LITERAL and method activation invoke Copy,
// and neither targets a Frame), but the type still satisfies Value like
// every other kind.
func (f *Frame) Copy() Value {
	c := &Frame{Previous: f.Previous, Stack: f.Stack, Top: f.Top, Activation: f.Activation, InstrIndex: f.InstrIndex}
	f.cloneInto(&c.Object)
	return c
}
