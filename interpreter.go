package ore

// Interpreter owns a universe handle and a process, and drives the process
// one instruction at a time via Step. It is the only thing in this package
// with write access to process state during execution.
type Interpreter struct {
	Universe *Universe
	Process  *Process
}

// NewInterpreter pairs a universe with the process it will drive.
func NewInterpreter(universe *Universe, process *Process) *Interpreter {
	return &Interpreter{Universe: universe, Process: process}
}

// ActiveFrame returns the interpreter's process's active frame, or nil if
// none. Primitive methods use this, via the interpreter handle they are
// called with, to inspect or extend the caller's frame.
func (i *Interpreter) ActiveFrame() *Frame {
	return i.Process.PeekFrame()
}

// Step executes at most one instruction, per the contract in SPEC_FULL.md
// §4.4:
//  1. if the process is already finished, do nothing;
//  2. if the active frame has run off its last instruction, perform a
//     synthetic RETURN_EXPLICIT;
//  3. otherwise fetch, advance, and dispatch one instruction.
func (i *Interpreter) Step() {
	if i.Process.HasFinished(i.Universe.None) {
		return
	}
	frame := i.Process.PeekFrame()
	if frame.HasFinished() {
		doReturn(i, true)
		return
	}
	opcode, parameter, ok := frame.GetCurrentInstruction()
	if !ok {
		i.fail(ErrUnknownOpcode)
		return
	}
	frame.MoveInstructionBy(1)
	handler := opTable[opcode]
	if handler == nil {
		i.fail(ErrUnknownOpcode)
		return
	}
	handler(i, parameter)
}

// ExecuteAll steps the process until it reports finished.
func (i *Interpreter) ExecuteAll() {
	for !i.Process.HasFinished(i.Universe.None) {
		i.Step()
	}
}

// fail converts a precondition violation into the fixed process-error shape:
// the process result becomes a fresh error object named kind, and (since
// HasFinished now reports true) every subsequent Step is a no-op.
func (i *Interpreter) fail(kind string) {
	i.Process.Result = i.Universe.NewErrorObject(kind)
}
