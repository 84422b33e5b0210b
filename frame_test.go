package ore

import "testing"

func TestFrameStackDiscipline(t *testing.T) {
	u := NewUniverse()
	stack := u.NewObjectArray(2)
	frame := u.NewFrame(stack, u.NewObject())

	if !frame.IsStackEmpty() {
		t.Fatalf("a fresh frame's stack should be empty")
	}
	if !frame.CanStackChangeBy(2) {
		t.Fatalf("should be able to push up to capacity")
	}
	if frame.CanStackChangeBy(3) {
		t.Fatalf("should not be able to push past capacity")
	}
	if frame.CanStackChangeBy(-1) {
		t.Fatalf("should not be able to pop below zero")
	}

	frame.PushItem(u.NewSmallInteger(1))
	frame.PushItem(u.NewSmallInteger(2))
	if !frame.IsStackFull() {
		t.Fatalf("frame should be full at capacity")
	}

	top, ok := frame.PeekItem(0)
	if !ok || top.(*SmallInteger).Value != 2 {
		t.Fatalf("PeekItem(0) = %#v, want SmallInteger(2)", top)
	}

	v := frame.PullItem(u.None)
	if v.(*SmallInteger).Value != 2 {
		t.Fatalf("PullItem() = %#v, want SmallInteger(2)", v)
	}
	vacated, ok := stack.Get(1)
	if !ok || vacated != u.None {
		t.Fatalf("PullItem should write none into the vacated slot, got %#v", vacated)
	}
}

func TestFrameHasFinished(t *testing.T) {
	u := NewUniverse()
	bytecode := u.NewByteArray(2)
	bytecode.Put(0, OpNoop)
	bytecode.Put(1, 0)
	code := u.NewCode(0, u.NewObjectArray(0), bytecode)
	activation := u.NewObject()
	activation.SetCode(code)
	frame := u.NewFrameWithCodeStackUsage(activation)

	if frame.HasFinished() {
		t.Fatalf("frame should not be finished before its one instruction runs")
	}
	frame.MoveInstructionBy(1)
	if !frame.HasFinished() {
		t.Fatalf("frame should be finished after running past its only instruction")
	}
}
