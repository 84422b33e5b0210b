package ore

import "unicode/utf8"

// String is a UTF-8 text payload.
type String struct {
	Object
	Text string
}

var _ Value = (*String)(nil)

// NewStringValue wraps chars in a fresh String object with no slots. The
// deserializer is responsible for validating UTF-8 before calling this; the
// string type itself does not re-validate.
func NewStringValue(chars string) *String {
	return &String{Object: newHeader(), Text: chars}
}

// RuneCount returns the number of UTF-8 code points in the payload, the
// character-count accessor the spec requires.
func (s *String) RuneCount() int { return utf8.RuneCountInString(s.Text) }

// Copy produces a fresh String with the same text and a duplicate of the
// slot map.
func (s *String) Copy() Value {
	c := &String{Text: s.Text}
	s.cloneInto(&c.Object)
	return c
}
