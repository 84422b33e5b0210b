package ore

import "testing"

func TestAddSlotGetSlot(t *testing.T) {
	o := newHeader()
	name := SymbolKey{Text: "x"}
	val := NewSmallIntegerValue(5)

	if !o.AddSlot(name, SlotKind{}, val) {
		t.Fatalf("AddSlot on a fresh name should succeed")
	}
	got, ok := o.GetSlot(name)
	if !ok || got != Value(val) {
		t.Fatalf("GetSlot(%v) = %v, %v; want %v, true", name, got, ok, val)
	}
	if o.AddSlot(name, SlotKind{}, NewSmallIntegerValue(9)) {
		t.Fatalf("AddSlot on an existing name should report duplicate")
	}
}

func TestSetSlotNeverCreates(t *testing.T) {
	o := newHeader()
	if o.SetSlot(SymbolKey{Text: "missing"}, NewSmallIntegerValue(1)) {
		t.Fatalf("SetSlot on a name with no slot should report not-found")
	}
}

func TestDelSlot(t *testing.T) {
	o := newHeader()
	name := SymbolKey{Text: "x"}
	o.AddSlot(name, SlotKind{}, NewSmallIntegerValue(1))
	if !o.DelSlot(name) {
		t.Fatalf("DelSlot on an existing name should succeed")
	}
	if _, ok := o.GetSlot(name); ok {
		t.Fatalf("GetSlot after DelSlot should report not-found")
	}
	if o.DelSlot(name) {
		t.Fatalf("DelSlot on a removed name should report not-found")
	}
}

func TestSelectSlotsInsertionOrder(t *testing.T) {
	o := newHeader()
	names := []SymbolKey{{Text: "a"}, {Text: "b"}, {Text: "c"}}
	for _, n := range names {
		o.AddSlot(n, SlotKind{IsParent: true}, NewSmallIntegerValue(0))
	}
	o.AddSlot(SymbolKey{Text: "d"}, SlotKind{}, NewSmallIntegerValue(0))

	got := o.SelectSlots(isParentKind)
	if len(got) != len(names) {
		t.Fatalf("SelectSlots returned %d names, want %d", len(got), len(names))
	}
	for i, n := range names {
		if got[i] != n {
			t.Errorf("SelectSlots()[%d] = %v, want %v", i, got[i], n)
		}
	}
}

func TestCloneIntoSharesValuesNotMap(t *testing.T) {
	o := newHeader()
	name := SymbolKey{Text: "x"}
	o.AddSlot(name, SlotKind{}, NewSmallIntegerValue(7))

	var dst Object
	o.cloneInto(&dst)

	if dst.id == o.id {
		t.Fatalf("cloneInto should assign a fresh id")
	}
	got, ok := dst.GetSlot(name)
	if !ok || got.(*SmallInteger).Value != 7 {
		t.Fatalf("clone did not preserve slot value")
	}
	dst.SetSlot(name, NewSmallIntegerValue(99))
	orig, _ := o.GetSlot(name)
	if orig.(*SmallInteger).Value != 7 {
		t.Fatalf("mutating the clone's slot map mutated the original")
	}
}
