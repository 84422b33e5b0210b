package ore

// Symbol is the immutable, interned-in-spirit value used as every slot key
// and message selector. Equality and identity for slot-map purposes are
// both structural over (text, arity); see SymbolKey.
type Symbol struct {
	Object
	Key SymbolKey
}

var _ Value = (*Symbol)(nil)

// NewSymbolValue wraps a SymbolKey in a fresh Symbol object. Universe.NewSymbol
// is the usual entry point; this is exposed for the deserializer and tests
// that need a symbol without going through a Universe.
func NewSymbolValue(key SymbolKey) *Symbol {
	return &Symbol{Object: newHeader(), Key: key}
}

// Text returns the symbol's text.
func (s *Symbol) Text() string { return s.Key.Text }

// Arity returns the symbol's arity.
func (s *Symbol) Arity() int64 { return s.Key.Arity }

// Copy returns s itself: symbols are observationally immutable, so their
// copy contract is identity.
func (s *Symbol) Copy() Value { return s }
