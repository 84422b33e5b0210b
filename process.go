package ore

// Process is a unit of execution: a singly-linked stack of frames, a result
// that starts as none and is set when the root frame returns or a process
// error occurs (a root return of none leaves it none), and an error-handler
// slot that nothing in this package reads.
type Process struct {
	Object
	Active       *Frame
	Result       Value
	ErrorHandler Value
}

var _ Value = (*Process)(nil)

// NewProcessValue builds a process with root as its sole active frame.
func NewProcessValue(root *Frame, none Value) *Process {
	return &Process{Object: newHeader(), Active: root, Result: none, ErrorHandler: none}
}

// PushFrame makes next the active frame, linking it above the current one.
func (p *Process) PushFrame(next *Frame) {
	next.Previous = p.Active
	p.Active = next
}

// PullFrame pops the active frame, clearing its previous-frame link (the
// popped frame is dropped; nothing re-enters it), and returns it.
func (p *Process) PullFrame() *Frame {
	old := p.Active
	p.Active = old.Previous
	old.Previous = nil
	return old
}

// PeekFrame returns the active frame, or nil if the process has none.
func (p *Process) PeekFrame() *Frame { return p.Active }

// HasFinished reports whether the process has terminated: either its result
// is no longer none, or it has run out of frames.
func (p *Process) HasFinished(none Value) bool {
	return p.Result != none || p.Active == nil
}

// Copy duplicates the process's slot map. Like Frame, Process is never
// copied in the course of normal execution.
func (p *Process) Copy() Value {
	c := &Process{Active: p.Active, Result: p.Result, ErrorHandler: p.ErrorHandler}
	p.cloneInto(&c.Object)
	return c
}
