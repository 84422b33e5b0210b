package ore

import "sync/atomic"

// Value is the interface every runtime object satisfies. To satisfy this
// interface, *Object's method set must be embedded, and Copy implemented to
// return the copy required by the kind's copy contract (see PUSH_LITERAL and
// SEND's method activation in the interpreter).
type Value interface {
	// Obj returns the object header embedded in every kind. It is not
	// synchronized; the header carries no lock of its own.
	Obj() *Object
	// Copy implements this kind's copy contract. Symbols, PrimitiveMethods
	// and Singletons return themselves; every other kind duplicates its
	// slot map (and, for kinds with payload, the payload) while sharing
	// code, literal, and bytecode references.
	Copy() Value
}

// SlotKind is a pair of independent booleans: whether a slot participates in
// parent-slot lookup, and whether it is bound as a parameter at method
// activation.
type SlotKind struct {
	IsParent    bool
	IsParameter bool
}

// Slot is one entry of an object's slot map: its kind plus its current
// value.
type Slot struct {
	Kind  SlotKind
	Value Value
}

// SymbolKey is the comparable, structural identity of a Symbol: the pair
// (text, arity). Slot maps are keyed by SymbolKey rather than by *Symbol
// pointer identity, since the spec requires slot lookup to use structural
// symbol equality, not interning.
type SymbolKey struct {
	Text  string
	Arity int64
}

// ParentSlotName and MeSlotName are the two distinguished slot names the
// interpreter and universe use directly rather than through a literal
// table: "parent" links every created object to its kind's trait, and "me"
// is added to a method activation so that sends inside the method body can
// reach the receiver.
var (
	ParentSlotName = SymbolKey{Text: "parent"}
	MeSlotName     = SymbolKey{Text: "me"}
)

// Object is the header embedded in every Value kind. It carries the slot
// map (insertion-order preserving) and an optional code attachment.
//
// Objects are not safe for concurrent use without external synchronization;
// the spec's concurrency model (§5) is strictly single-threaded and
// cooperative, so unlike the teacher this type does not carry its own
// mutex. See DESIGN.md for the grounding and reasoning for this departure.
type Object struct {
	id    uintptr
	slots map[SymbolKey]*Slot
	order []SymbolKey
	code  *Code
}

// objectCounter backs nextObjectID. Ids are uintptr to match
// github.com/zephyrtronium/contains's Set.Add signature, which is what
// lookup_slot's visited set is built on (see lookup.go).
var objectCounter uintptr

// nextObjectID returns a process-wide unique id, used as the identity key
// for lookup_slot's visited set.
func nextObjectID() uintptr {
	return atomic.AddUintptr(&objectCounter, 1)
}

// newHeader returns a freshly identified, empty object header.
func newHeader() Object {
	return Object{id: nextObjectID()}
}

// Obj returns the header itself, satisfying Value for any type that embeds
// Object.
func (o *Object) Obj() *Object { return o }

// UniqueID returns the object's process-wide unique identity, used by
// lookup_slot's visited set and nothing else; it carries no meaning beyond
// distinguishing one object from another.
func (o *Object) UniqueID() uintptr { return o.id }

// Code returns the object's code attachment, or nil if it has none.
func (o *Object) Code() *Code { return o.code }

// SetCode attaches (or clears, with nil) a Code object to this object.
func (o *Object) SetCode(c *Code) { o.code = c }

// HasCode reports whether the object has a code attachment.
func (o *Object) HasCode() bool { return o.code != nil }

// GetSlot retrieves the value stored at name, if any.
func (o *Object) GetSlot(name SymbolKey) (Value, bool) {
	s, ok := o.slots[name]
	if !ok {
		return nil, false
	}
	return s.Value, true
}

// GetSlotKind retrieves the kind of the slot stored at name, if any.
func (o *Object) GetSlotKind(name SymbolKey) (SlotKind, bool) {
	s, ok := o.slots[name]
	if !ok {
		return SlotKind{}, false
	}
	return s.Kind, true
}

// SetSlot stores value into an existing slot. It never creates a new slot;
// it reports false if no slot named name exists.
func (o *Object) SetSlot(name SymbolKey, value Value) bool {
	s, ok := o.slots[name]
	if !ok {
		return false
	}
	s.Value = value
	return true
}

// AddSlot creates a new slot. It reports false without modifying the object
// if a slot named name already exists.
func (o *Object) AddSlot(name SymbolKey, kind SlotKind, value Value) bool {
	if o.slots == nil {
		o.slots = make(map[SymbolKey]*Slot)
	}
	if _, ok := o.slots[name]; ok {
		return false
	}
	o.slots[name] = &Slot{Kind: kind, Value: value}
	o.order = append(o.order, name)
	return true
}

// DelSlot removes an existing slot. It reports false if no slot named name
// exists.
func (o *Object) DelSlot(name SymbolKey) bool {
	if _, ok := o.slots[name]; !ok {
		return false
	}
	delete(o.slots, name)
	for i, k := range o.order {
		if k == name {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
	return true
}

// SelectSlots returns, in insertion order, the names of every slot whose
// kind satisfies pred. The spec describes this as producing a lazy
// sequence; every call site in this implementation consumes the result
// immediately in full, so it is materialized eagerly as a slice (see
// SPEC_FULL.md §4, resolved open questions).
func (o *Object) SelectSlots(pred func(SlotKind) bool) []SymbolKey {
	var names []SymbolKey
	for _, name := range o.order {
		s := o.slots[name]
		if pred(s.Kind) {
			names = append(names, name)
		}
	}
	return names
}

// cloneInto duplicates this header's slot map (sharing slot values, not
// deep-copying them) and code attachment into dst. Used by every kind's
// Copy implementation except Symbol, PrimitiveMethod and Singleton, whose
// copy contract is identity.
func (o *Object) cloneInto(dst *Object) {
	dst.id = nextObjectID()
	dst.code = o.code
	if len(o.slots) == 0 {
		return
	}
	dst.slots = make(map[SymbolKey]*Slot, len(o.slots))
	dst.order = append([]SymbolKey(nil), o.order...)
	for k, s := range o.slots {
		cp := *s
		dst.slots[k] = &cp
	}
}

// isParentKind and isParameterKind are the two predicates SelectSlots is
// used with throughout the universe and interpreter.
func isParentKind(k SlotKind) bool    { return k.IsParent }
func isParameterKind(k SlotKind) bool { return k.IsParameter }
