package ore

// Universe is the factory and root namespace: the distinguished singletons,
// one trait per object kind, and the lobby/globals/primitives namespace
// objects. It is passed explicitly to the interpreter and to primitives;
// nothing in this package reaches for a universe ambiently.
type Universe struct {
	None  Value
	True  Value
	False Value

	Lobby      *PlainObject
	Globals    *PlainObject
	Primitives *PlainObject

	ObjectTrait          *PlainObject
	SymbolTrait          *PlainObject
	SmallIntegerTrait    *PlainObject
	ByteArrayTrait       *PlainObject
	ObjectArrayTrait     *PlainObject
	StringTrait          *PlainObject
	CodeTrait            *PlainObject
	AssignmentTrait      *PlainObject
	PrimitiveMethodTrait *PlainObject
	FrameTrait           *PlainObject
	ProcessTrait         *PlainObject
	ErrorTrait           *PlainObject
}

// NewUniverse builds a clean universe: traits, globals, lobby, and the
// singletons, with every trait and namespace object wired to ObjectTrait and
// the namespace objects reachable from the lobby's globals, primitives and
// lobby slots. This is init_clean_universe from the bootstrap
// contract; primitive registration happens separately (see the primitives
// package), since the interpreter and universe do not know the concrete
// primitive catalogue.
func NewUniverse() *Universe {
	u := &Universe{
		ObjectTrait:          NewPlainObjectValue(),
		SymbolTrait:          NewPlainObjectValue(),
		SmallIntegerTrait:    NewPlainObjectValue(),
		ByteArrayTrait:       NewPlainObjectValue(),
		ObjectArrayTrait:     NewPlainObjectValue(),
		StringTrait:          NewPlainObjectValue(),
		CodeTrait:            NewPlainObjectValue(),
		AssignmentTrait:      NewPlainObjectValue(),
		PrimitiveMethodTrait: NewPlainObjectValue(),
		FrameTrait:           NewPlainObjectValue(),
		ProcessTrait:         NewPlainObjectValue(),
		ErrorTrait:           NewPlainObjectValue(),
	}

	for _, trait := range []*PlainObject{
		u.SymbolTrait, u.SmallIntegerTrait, u.ByteArrayTrait, u.ObjectArrayTrait,
		u.StringTrait, u.CodeTrait, u.AssignmentTrait, u.PrimitiveMethodTrait,
		u.FrameTrait, u.ProcessTrait, u.ErrorTrait,
	} {
		u.attachTrait(trait, u.ObjectTrait)
	}

	none := NewSingletonValue("none")
	u.attachTrait(none, u.ObjectTrait)
	u.None = none

	t := NewSingletonValue("true")
	u.attachTrait(t, u.ObjectTrait)
	u.True = t

	f := NewSingletonValue("false")
	u.attachTrait(f, u.ObjectTrait)
	u.False = f

	u.Globals = NewPlainObjectValue()
	u.attachTrait(u.Globals, u.ObjectTrait)

	u.Primitives = NewPlainObjectValue()
	u.attachTrait(u.Primitives, u.ObjectTrait)

	u.Lobby = NewPlainObjectValue()
	u.attachTrait(u.Lobby, u.ObjectTrait)
	u.Lobby.AddSlot(SymbolKey{Text: "globals"}, SlotKind{}, u.Globals)
	u.Lobby.AddSlot(SymbolKey{Text: "primitives"}, SlotKind{}, u.Primitives)
	u.Lobby.AddSlot(SymbolKey{Text: "lobby"}, SlotKind{}, u.Lobby)

	return u
}

// attachTrait adds v's parent slot pointing at trait. Every factory method
// below does this for the kind it constructs.
func (u *Universe) attachTrait(v Value, trait Value) {
	v.Obj().AddSlot(ParentSlotName, SlotKind{IsParent: true}, trait)
}

func (u *Universe) NewSymbol(text string, arity int64) *Symbol {
	s := NewSymbolValue(SymbolKey{Text: text, Arity: arity})
	u.attachTrait(s, u.SymbolTrait)
	return s
}

func (u *Universe) NewSmallInteger(v int64) *SmallInteger {
	n := NewSmallIntegerValue(v)
	u.attachTrait(n, u.SmallIntegerTrait)
	return n
}

func (u *Universe) NewByteArray(n int64) *ByteArray {
	b := NewByteArrayValue(n)
	u.attachTrait(b, u.ByteArrayTrait)
	return b
}

func (u *Universe) NewObjectArray(n int64) *ObjectArray {
	a := NewObjectArrayValue(n, u.None)
	u.attachTrait(a, u.ObjectArrayTrait)
	return a
}

func (u *Universe) NewString(chars string) *String {
	s := NewStringValue(chars)
	u.attachTrait(s, u.StringTrait)
	return s
}

func (u *Universe) NewCode(stackUsage int64, literals *ObjectArray, bytecode *ByteArray) *Code {
	c := NewCodeValue(stackUsage, literals, bytecode)
	u.attachTrait(c, u.CodeTrait)
	return c
}

func (u *Universe) NewAssignment(target SymbolKey) *Assignment {
	a := NewAssignmentValue(target)
	u.attachTrait(a, u.AssignmentTrait)
	return a
}

func (u *Universe) NewPrimitiveMethod(paramCount int64, fn NativeFunc) *PrimitiveMethod {
	p := NewPrimitiveMethodValue(paramCount, fn)
	u.attachTrait(p, u.PrimitiveMethodTrait)
	return p
}

// NewObject returns a fresh plain object wired to ObjectTrait. The
// deserializer's OBJECT tag does not use it: those objects get only the
// slots their records declare.
func (u *Universe) NewObject() *PlainObject {
	o := NewPlainObjectValue()
	u.attachTrait(o, u.ObjectTrait)
	return o
}

func (u *Universe) NewFrame(stack *ObjectArray, activation Value) *Frame {
	fr := NewFrameValue(stack, activation)
	u.attachTrait(fr, u.FrameTrait)
	return fr
}

func (u *Universe) NewFrameWithStackSize(n int64, activation Value) *Frame {
	return u.NewFrame(u.NewObjectArray(n), activation)
}

// NewFrameWithCodeStackUsage sizes the frame's stack from the activation's
// own code's declared stack usage.
func (u *Universe) NewFrameWithCodeStackUsage(activation Value) *Frame {
	code := activation.Obj().Code()
	usage := int64(0)
	if code != nil {
		usage = code.StackUsage
	}
	return u.NewFrameWithStackSize(usage, activation)
}

func (u *Universe) NewProcess(root *Frame) *Process {
	p := NewProcessValue(root, u.None)
	u.attachTrait(p, u.ProcessTrait)
	return p
}

// NewErrorObject builds the fixed error-object shape: a plain object with a
// "name" slot holding a fresh zero-arity symbol, parented to ErrorTrait.
func (u *Universe) NewErrorObject(kind string) Value {
	e := NewPlainObjectValue()
	u.attachTrait(e, u.ErrorTrait)
	e.AddSlot(SymbolKey{Text: "name"}, SlotKind{}, u.NewSymbol(kind, 0))
	return e
}
