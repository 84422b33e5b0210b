package ore

// Opcode values, fixed by the external bytecode format (§6).
const (
	OpNoop           byte = 0x00
	OpPushMyself     byte = 0x10
	OpPushLiteral    byte = 0x11
	OpPull           byte = 0x1A
	OpSend           byte = 0x20
	OpReturnExplicit byte = 0x30
)
