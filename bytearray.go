package ore

// ByteArray is a fixed-length sequence of bytes, zero-initialized at
// creation.
type ByteArray struct {
	Object
	Bytes []byte
}

var _ Value = (*ByteArray)(nil)

// NewByteArrayValue creates a zero-initialized ByteArray of the given
// length. Negative or zero counts are treated as zero.
func NewByteArrayValue(count int64) *ByteArray {
	if count < 0 {
		count = 0
	}
	return &ByteArray{Object: newHeader(), Bytes: make([]byte, count)}
}

// Len returns the byte array's fixed length.
func (b *ByteArray) Len() int { return len(b.Bytes) }

// Get returns the byte at index, or false if index is out of bounds.
func (b *ByteArray) Get(index int64) (byte, bool) {
	if index < 0 || index >= int64(len(b.Bytes)) {
		return 0, false
	}
	return b.Bytes[index], true
}

// Put stores value at index, reporting false if index is out of bounds.
func (b *ByteArray) Put(index int64, value byte) bool {
	if index < 0 || index >= int64(len(b.Bytes)) {
		return false
	}
	b.Bytes[index] = value
	return true
}

// Copy duplicates the byte vector and the slot map.
func (b *ByteArray) Copy() Value {
	nb := make([]byte, len(b.Bytes))
	copy(nb, b.Bytes)
	c := &ByteArray{Bytes: nb}
	b.cloneInto(&c.Object)
	return c
}
