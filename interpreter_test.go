package ore

import "testing"

func errorName(t *testing.T, result Value) string {
	t.Helper()
	obj := result.Obj()
	name, ok := obj.GetSlot(SymbolKey{Text: "name"})
	if !ok {
		t.Fatalf("process result has no \"name\" slot: %#v", result)
	}
	sym, ok := name.(*Symbol)
	if !ok {
		t.Fatalf("process result's name slot is %T, not a Symbol", name)
	}
	return sym.Text()
}

// TestBareNoop is end-to-end scenario 1: after one step the active frame
// has finished; after a second step (the synthetic return), the process
// has no frames and a none result.
func TestBareNoop(t *testing.T) {
	u := NewUniverse()
	bytecode := u.NewByteArray(2)
	bytecode.Put(0, OpNoop)
	bytecode.Put(1, 0)
	code := u.NewCode(0, u.NewObjectArray(0), bytecode)
	activation := u.NewObject()
	activation.SetCode(code)
	frame := u.NewFrameWithCodeStackUsage(activation)
	process := u.NewProcess(frame)
	interp := NewInterpreter(u, process)

	interp.Step()
	if !frame.HasFinished() {
		t.Fatalf("frame should have finished after executing its only instruction")
	}
	if process.HasFinished(u.None) {
		t.Fatalf("process should not be finished yet")
	}

	interp.Step()
	if process.PeekFrame() != nil {
		t.Fatalf("process should have no frames after the synthetic return")
	}
	if process.Result != u.None {
		t.Fatalf("process.Result = %#v, want none", process.Result)
	}
}

// TestPushThenReturn is end-to-end scenario 2.
func TestPushThenReturn(t *testing.T) {
	u := NewUniverse()
	seven := u.NewSmallInteger(7)
	literals := u.NewObjectArray(1)
	literals.Put(0, seven)
	bytecode := u.NewByteArray(4)
	bytecode.Put(0, OpPushLiteral)
	bytecode.Put(1, 0)
	bytecode.Put(2, OpReturnExplicit)
	bytecode.Put(3, 0)
	code := u.NewCode(1, literals, bytecode)
	activation := u.NewObject()
	activation.SetCode(code)
	frame := u.NewFrameWithCodeStackUsage(activation)
	process := u.NewProcess(frame)
	interp := NewInterpreter(u, process)

	interp.ExecuteAll()

	result, ok := process.Result.(*SmallInteger)
	if !ok {
		t.Fatalf("process.Result = %#v, want *SmallInteger", process.Result)
	}
	if result.Value != 7 {
		t.Fatalf("process.Result.Value = %d, want 7", result.Value)
	}
	if Value(result) == Value(seven) {
		t.Fatalf("process.Result must not be identical to the literal it was copied from")
	}
}

// TestSendAssignment is end-to-end scenario 3.
func TestSendAssignment(t *testing.T) {
	u := NewUniverse()
	selector := u.NewSymbol("x:=", 1)

	receiver := u.NewObject()
	xName := SymbolKey{Text: "x"}
	receiver.AddSlot(xName, SlotKind{}, u.NewSmallInteger(0))
	receiver.AddSlot(selector.Key, SlotKind{}, u.NewAssignment(xName))

	literals := u.NewObjectArray(1)
	literals.Put(0, selector)
	bytecode := u.NewByteArray(4)
	bytecode.Put(0, OpSend)
	bytecode.Put(1, 0)
	bytecode.Put(2, OpReturnExplicit)
	bytecode.Put(3, 0)
	code := u.NewCode(2, literals, bytecode)
	activation := u.NewObject()
	activation.SetCode(code)
	frame := u.NewFrameWithCodeStackUsage(activation)

	arg := u.NewSmallInteger(9)
	frame.PushItem(receiver)
	frame.PushItem(arg)

	process := u.NewProcess(frame)
	interp := NewInterpreter(u, process)
	interp.ExecuteAll()

	result, ok := process.Result.(*SmallInteger)
	if !ok || result.Value != 9 {
		t.Fatalf("process.Result = %#v, want SmallInteger(9)", process.Result)
	}
	got, _ := receiver.GetSlot(xName)
	if gotInt, ok := got.(*SmallInteger); !ok || gotInt.Value != 9 {
		t.Fatalf("receiver's x slot = %#v, want SmallInteger(9)", got)
	}
}

// TestSendOrdinaryMethod is end-to-end scenario 4.
func TestSendOrdinaryMethod(t *testing.T) {
	u := NewUniverse()

	methodLiterals := u.NewObjectArray(1)
	methodLiterals.Put(0, u.NewSmallInteger(42))
	methodBytecode := u.NewByteArray(4)
	methodBytecode.Put(0, OpPushLiteral)
	methodBytecode.Put(1, 0)
	methodBytecode.Put(2, OpReturnExplicit)
	methodBytecode.Put(3, 0)
	methodCode := u.NewCode(1, methodLiterals, methodBytecode)
	methodObj := u.NewObject()
	methodObj.SetCode(methodCode)

	selector := u.NewSymbol("m", 0)
	receiver := u.NewObject()
	receiver.AddSlot(selector.Key, SlotKind{}, methodObj)

	callerLiterals := u.NewObjectArray(1)
	callerLiterals.Put(0, selector)
	callerBytecode := u.NewByteArray(4)
	callerBytecode.Put(0, OpSend)
	callerBytecode.Put(1, 0)
	callerBytecode.Put(2, OpReturnExplicit)
	callerBytecode.Put(3, 0)
	callerCode := u.NewCode(2, callerLiterals, callerBytecode)
	callerActivation := u.NewObject()
	callerActivation.SetCode(callerCode)
	callerFrame := u.NewFrameWithCodeStackUsage(callerActivation)
	callerFrame.PushItem(receiver)

	process := u.NewProcess(callerFrame)
	interp := NewInterpreter(u, process)

	interp.Step() // SEND m: activates methodObj in a new frame
	interp.Step() // callee PUSH_LITERAL 42
	interp.Step() // callee RETURN_EXPLICIT: returns into caller

	if process.PeekFrame() != callerFrame {
		t.Fatalf("process should have exactly the caller's frame active")
	}
	if callerFrame.Previous != nil {
		t.Fatalf("caller frame should have no previous frame")
	}
	top, ok := callerFrame.PeekItem(0)
	if !ok {
		t.Fatalf("caller's stack should have the method's return value on top")
	}
	n, ok := top.(*SmallInteger)
	if !ok || n.Value != 42 {
		t.Fatalf("caller's stack top = %#v, want SmallInteger(42)", top)
	}
}

// TestSendAmbiguousLookup is end-to-end scenario 5.
func TestSendAmbiguousLookup(t *testing.T) {
	u := NewUniverse()
	fooName := SymbolKey{Text: "foo"}
	selector := u.NewSymbol("foo", 0)

	left := u.NewObject()
	left.AddSlot(fooName, SlotKind{}, u.NewSmallInteger(1))
	right := u.NewObject()
	right.AddSlot(fooName, SlotKind{}, u.NewSmallInteger(2))

	receiver := u.NewObject()
	receiver.AddSlot(SymbolKey{Text: "parent1"}, SlotKind{IsParent: true}, left)
	receiver.AddSlot(SymbolKey{Text: "parent2"}, SlotKind{IsParent: true}, right)

	literals := u.NewObjectArray(1)
	literals.Put(0, selector)
	bytecode := u.NewByteArray(2)
	bytecode.Put(0, OpSend)
	bytecode.Put(1, 0)
	code := u.NewCode(1, literals, bytecode)
	activation := u.NewObject()
	activation.SetCode(code)
	frame := u.NewFrameWithCodeStackUsage(activation)
	frame.PushItem(receiver)

	process := u.NewProcess(frame)
	interp := NewInterpreter(u, process)
	interp.Step()

	if name := errorName(t, process.Result); name != ErrSlotLookupAmbiguous {
		t.Fatalf("process.Result name = %q, want %q", name, ErrSlotLookupAmbiguous)
	}
	if !process.HasFinished(u.None) {
		t.Fatalf("process should be finished after a process error")
	}
}

// TestPushLiteralStackOverflow is end-to-end scenario 6.
func TestPushLiteralStackOverflow(t *testing.T) {
	u := NewUniverse()
	literals := u.NewObjectArray(1)
	literals.Put(0, u.NewSmallInteger(5))
	bytecode := u.NewByteArray(2)
	bytecode.Put(0, OpPushLiteral)
	bytecode.Put(1, 0)
	code := u.NewCode(1, literals, bytecode)
	activation := u.NewObject()
	activation.SetCode(code)
	frame := u.NewFrameWithCodeStackUsage(activation)
	preexisting := u.NewSmallInteger(123)
	frame.PushItem(preexisting)

	process := u.NewProcess(frame)
	interp := NewInterpreter(u, process)
	interp.Step()

	if name := errorName(t, process.Result); name != ErrStackOverflow {
		t.Fatalf("process.Result name = %q, want %q", name, ErrStackOverflow)
	}
	top, ok := frame.PeekItem(0)
	if !ok || top != Value(preexisting) {
		t.Fatalf("stack contents should be untouched after a failed push, got %#v", top)
	}
}

// TestUnknownOpcode checks that any opcode outside the catalogue sets the
// process result to an unknownOpcode error.
func TestUnknownOpcode(t *testing.T) {
	u := NewUniverse()
	bytecode := u.NewByteArray(2)
	bytecode.Put(0, 0xFF)
	bytecode.Put(1, 0)
	code := u.NewCode(0, u.NewObjectArray(0), bytecode)
	activation := u.NewObject()
	activation.SetCode(code)
	frame := u.NewFrameWithCodeStackUsage(activation)
	process := u.NewProcess(frame)
	interp := NewInterpreter(u, process)

	interp.Step()

	if name := errorName(t, process.Result); name != ErrUnknownOpcode {
		t.Fatalf("process.Result name = %q, want %q", name, ErrUnknownOpcode)
	}
}
