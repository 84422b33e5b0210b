package ore

// opHandler is the shape of every opcode's implementation: the interpreter
// to act on, and the instruction's raw parameter byte.
type opHandler func(i *Interpreter, parameter byte)

// opTable is the 256-entry dispatch table described in SPEC_FULL.md §4.4.
// Entries left nil signal the unknownOpcode process error.
var opTable = [256]opHandler{
	OpNoop:           opNoop,
	OpPushMyself:     opPushMyself,
	OpPushLiteral:    opPushLiteral,
	OpPull:           opPull,
	OpSend:           opSend,
	OpReturnExplicit: opReturnExplicit,
}

func opNoop(i *Interpreter, parameter byte) {}

func opPushMyself(i *Interpreter, parameter byte) {
	frame := i.Process.PeekFrame()
	if frame.IsStackFull() {
		i.fail(ErrStackOverflow)
		return
	}
	frame.PushItem(frame.GetMethodActivation())
}

func opPushLiteral(i *Interpreter, parameter byte) {
	frame := i.Process.PeekFrame()
	if frame.IsStackFull() {
		i.fail(ErrStackOverflow)
		return
	}
	lit, ok := frame.LiteralAt(int64(parameter))
	if !ok {
		i.fail(ErrLiteralIndexOutOfBound)
		return
	}
	frame.PushItem(lit.Copy())
}

func opPull(i *Interpreter, parameter byte) {
	frame := i.Process.PeekFrame()
	if frame.IsStackEmpty() {
		i.fail(ErrStackUnderflow)
		return
	}
	frame.PullItem(i.Universe.None)
}

// opSend implements SEND: selector lookup via the receiver popped from the
// stack, then dispatch on the found slot's content kind. See SPEC_FULL.md
// §4.4.2.
func opSend(i *Interpreter, parameter byte) {
	frame := i.Process.PeekFrame()

	lit, ok := frame.LiteralAt(int64(parameter))
	if !ok {
		i.fail(ErrLiteralIndexOutOfBound)
		return
	}
	selector, ok := lit.(*Symbol)
	if !ok {
		i.fail(ErrNotSymbolicSelector)
		return
	}

	n := selector.Arity()
	if frame.Top < n+1 {
		i.fail(ErrStackUnderflow)
		return
	}

	args := make([]Value, n)
	for idx := n - 1; idx >= 0; idx-- {
		args[idx] = frame.PullItem(i.Universe.None)
	}
	receiver := frame.PullItem(i.Universe.None)

	status, location := LookupSlot(receiver, selector.Key)
	switch status {
	case FoundNone:
		i.fail(ErrSlotLookupNotFound)
		return
	case FoundMany:
		i.fail(ErrSlotLookupAmbiguous)
		return
	}

	content, _ := location.Obj().GetSlot(selector.Key)
	switch c := content.(type) {
	case *Assignment:
		if frame.IsStackFull() {
			i.fail(ErrStackOverflow)
			return
		}
		var arg Value = i.Universe.None
		if len(args) > 0 {
			arg = args[0]
		}
		location.Obj().SetSlot(c.Target, arg)
		frame.PushItem(arg)
	case *PrimitiveMethod:
		result := c.Native(i, args)
		if frame.IsStackFull() {
			i.fail(ErrStackOverflow)
			return
		}
		frame.PushItem(result)
	default:
		if content.Obj().HasCode() {
			activation := content.Copy()
			params := activation.Obj().SelectSlots(isParameterKind)
			for idx, name := range params {
				if int64(idx) >= n {
					break
				}
				activation.Obj().SetSlot(name, args[idx])
			}
			activation.Obj().AddSlot(MeSlotName, SlotKind{IsParent: true}, receiver)
			callee := i.Universe.NewFrameWithCodeStackUsage(activation)
			i.Process.PushFrame(callee)
		} else {
			if frame.IsStackFull() {
				i.fail(ErrStackOverflow)
				return
			}
			frame.PushItem(content)
		}
	}
}

// opReturnExplicit implements the RETURN_EXPLICIT opcode.
func opReturnExplicit(i *Interpreter, parameter byte) {
	doReturn(i, false)
}

// doReturn is RETURN_EXPLICIT's shared machinery. synthetic distinguishes
// the explicit opcode from the implicit return Step performs when a frame
// runs off the end of its instructions: the opcode requires a value on the
// stack to return, but falling off the end of a method body with nothing
// pushed is not a programmer error, so the synthetic case returns none
// instead of failing with stackUnderflow.
func doReturn(i *Interpreter, synthetic bool) {
	frame := i.Process.PeekFrame()

	var v Value
	if frame.IsStackEmpty() {
		if !synthetic {
			i.fail(ErrStackUnderflow)
			return
		}
		v = i.Universe.None
	} else {
		v = frame.PullItem(i.Universe.None)
	}
	i.Process.PullFrame()

	next := i.Process.PeekFrame()
	if next == nil {
		i.Process.Result = v
		return
	}
	if next.IsStackFull() {
		i.fail(ErrStackOverflow)
		return
	}
	next.PushItem(v)
}
