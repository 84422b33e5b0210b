package ore

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// Literal tag values, fixed by the external bytecode format (§6). STRING is
// not assigned a value by the normative table in the source material; 0x13
// is the value this implementation commits to, slotting in after SYMBOL and
// before the CODE/ASSIGNMENT/OBJECT block (see SPEC_FULL.md's resolved open
// questions).
const (
	TagNone         byte = 0x00
	TagSmallInteger byte = 0x01
	TagByteArray    byte = 0x10
	TagObjectArray  byte = 0x11
	TagSymbol       byte = 0x12
	TagString       byte = 0x13
	TagCode         byte = 0x20
	TagAssignment   byte = 0x21
	TagObject       byte = 0x30
)

var utf8Validator = unicode.UTF8.NewDecoder()

// validateUTF8 reports an error if b is not well-formed UTF-8. The
// deserializer uses x/text's UTF-8 decoder rather than unicode/utf8's
// byte-scanning check, matching the decoding library the rest of this
// package's ecosystem already depends on for text payloads. That decoder
// replaces ill-formed sequences with U+FFFD instead of failing, so a payload
// whose decoded form differs from its raw bytes is rejected.
func validateUTF8(b []byte) error {
	decoded, err := utf8Validator.Bytes(b)
	if err != nil {
		return fmt.Errorf("invalid UTF-8 payload: %w", err)
	}
	if !bytes.Equal(decoded, b) {
		return fmt.Errorf("invalid UTF-8 payload")
	}
	return nil
}

// deserializer consumes a flat byte sequence left-to-right, producing the
// object graph described by SPEC_FULL.md §4.3.
type deserializer struct {
	universe *Universe
	data     []byte
	pos      int
}

// Deserialize parses a module file: a 3-byte "ORE" magic followed by
// exactly one CODE literal. It returns the top-level Code object.
func Deserialize(universe *Universe, data []byte) (*Code, error) {
	if len(data) < 3 || data[0] != 'O' || data[1] != 'R' || data[2] != 'E' {
		return nil, fmt.Errorf("deserialize: missing \"ORE\" magic")
	}
	d := &deserializer{universe: universe, data: data[3:]}
	lit, err := d.readLiteral()
	if err != nil {
		return nil, err
	}
	code, ok := lit.(*Code)
	if !ok {
		return nil, fmt.Errorf("deserialize: module body: expected CODE literal, got %T", lit)
	}
	return code, nil
}

func (d *deserializer) readByte() (byte, error) {
	if d.pos >= len(d.data) {
		return 0, fmt.Errorf("deserialize: unexpected end of input at offset %d", d.pos)
	}
	b := d.data[d.pos]
	d.pos++
	return b, nil
}

func (d *deserializer) readBytes(n int64) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("deserialize: negative length %d at offset %d", n, d.pos)
	}
	end := d.pos + int(n)
	if n > 0 && (end < d.pos || end > len(d.data)) {
		return nil, fmt.Errorf("deserialize: unexpected end of input at offset %d (need %d bytes)", d.pos, n)
	}
	b := d.data[d.pos:end]
	d.pos = end
	return b, nil
}

func (d *deserializer) readInt64() (int64, error) {
	b, err := d.readBytes(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

// readLiteral parses one tag-dispatched literal.
func (d *deserializer) readLiteral() (Value, error) {
	tag, err := d.readByte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case TagNone:
		return d.universe.None, nil

	case TagSmallInteger:
		v, err := d.readInt64()
		if err != nil {
			return nil, err
		}
		return d.universe.NewSmallInteger(v), nil

	case TagByteArray:
		count, err := d.readInt64()
		if err != nil {
			return nil, err
		}
		raw, err := d.readBytes(count)
		if err != nil {
			return nil, err
		}
		ba := d.universe.NewByteArray(count)
		copy(ba.Bytes, raw)
		return ba, nil

	case TagObjectArray:
		count, err := d.readInt64()
		if err != nil {
			return nil, err
		}
		arr := d.universe.NewObjectArray(count)
		for idx := int64(0); idx < count; idx++ {
			item, err := d.readLiteral()
			if err != nil {
				return nil, err
			}
			arr.Put(idx, item)
		}
		return arr, nil

	case TagSymbol:
		arity, err := d.readInt64()
		if err != nil {
			return nil, err
		}
		charCount, err := d.readInt64()
		if err != nil {
			return nil, err
		}
		raw, err := d.readBytes(charCount)
		if err != nil {
			return nil, err
		}
		if err := validateUTF8(raw); err != nil {
			return nil, err
		}
		return d.universe.NewSymbol(string(raw), arity), nil

	case TagString:
		byteCount, err := d.readInt64()
		if err != nil {
			return nil, err
		}
		raw, err := d.readBytes(byteCount)
		if err != nil {
			return nil, err
		}
		if err := validateUTF8(raw); err != nil {
			return nil, err
		}
		return d.universe.NewString(string(raw)), nil

	case TagCode:
		stackUsage, err := d.readInt64()
		if err != nil {
			return nil, err
		}
		litsVal, err := d.readLiteral()
		if err != nil {
			return nil, err
		}
		lits, ok := litsVal.(*ObjectArray)
		if !ok {
			return nil, fmt.Errorf("deserialize: CODE literal: expected OBJECT_ARRAY, got %T", litsVal)
		}
		codeVal, err := d.readLiteral()
		if err != nil {
			return nil, err
		}
		bytecode, ok := codeVal.(*ByteArray)
		if !ok {
			return nil, fmt.Errorf("deserialize: CODE literal: expected BYTE_ARRAY, got %T", codeVal)
		}
		return d.universe.NewCode(stackUsage, lits, bytecode), nil

	case TagAssignment:
		targetVal, err := d.readLiteral()
		if err != nil {
			return nil, err
		}
		target, ok := targetVal.(*Symbol)
		if !ok {
			return nil, fmt.Errorf("deserialize: ASSIGNMENT literal: expected SYMBOL, got %T", targetVal)
		}
		return d.universe.NewAssignment(target.Key), nil

	case TagObject:
		return d.readObject()

	default:
		return nil, fmt.Errorf("deserialize: unknown literal tag 0x%02x at offset %d", tag, d.pos-1)
	}
}

// readObject parses an OBJECT literal: a slot count, that many slot
// records, then a trailing NONE or CODE literal for the code attachment.
// Unlike the built-in kinds, the resulting plain object gets no automatic
// trait parent — any parent comes from its own slot records, since the
// module is expected to define its graph's parents explicitly.
func (d *deserializer) readObject() (Value, error) {
	slotCount, err := d.readInt64()
	if err != nil {
		return nil, err
	}
	obj := NewPlainObjectValue()
	for i := int64(0); i < slotCount; i++ {
		kindByte, err := d.readByte()
		if err != nil {
			return nil, err
		}
		nameVal, err := d.readLiteral()
		if err != nil {
			return nil, err
		}
		name, ok := nameVal.(*Symbol)
		if !ok {
			return nil, fmt.Errorf("deserialize: OBJECT slot record: expected SYMBOL name, got %T", nameVal)
		}
		value, err := d.readLiteral()
		if err != nil {
			return nil, err
		}
		kind := SlotKind{
			IsParameter: kindByte&0x01 != 0,
			IsParent:    kindByte&0x02 != 0,
		}
		if !obj.AddSlot(name.Key, kind, value) {
			return nil, fmt.Errorf("deserialize: OBJECT literal: duplicate slot %q", name.Text())
		}
	}
	tail, err := d.readLiteral()
	if err != nil {
		return nil, err
	}
	switch t := tail.(type) {
	case *Code:
		obj.SetCode(t)
	default:
		if tail != d.universe.None {
			return nil, fmt.Errorf("deserialize: OBJECT literal: expected NONE or CODE trailer, got %T", tail)
		}
	}
	return obj, nil
}
