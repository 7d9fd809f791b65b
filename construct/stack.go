package construct

import "github.com/nabbar/cmdshell/shellerr"

// Stack is the construct frame stack. Index 0 is the bottom - the
// outermost open declaration, consulted by the dispatcher to decide
// definition versus execution (section 3's invariant). The last entry
// is the top, the most recently pushed frame.
type Stack struct {
	frames []*Frame
}

// NewStack returns an empty Stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push appends a new frame to the top of the stack.
func (s *Stack) Push(f *Frame) {
	s.frames = append(s.frames, f)
}

// Pop removes the top frame and then invokes its PopHandler, so the
// handler observes a stack that no longer contains the popped frame -
// required for deferred runners that redispatch lines recursively
// (section 4.3).
func (s *Stack) Pop() error {
	if len(s.frames) == 0 {
		return shellerr.New(shellerr.FrameUnderflow, "no open construct to close")
	}

	top := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]

	if top.PopHandler == nil {
		return nil
	}
	return top.PopHandler()
}

// Len reports the number of open frames.
func (s *Stack) Len() int {
	return len(s.frames)
}

// Outermost returns the bottom frame - the open declaration that
// dispatch consults - or nil if the stack is empty.
func (s *Stack) Outermost() *Frame {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[0]
}

// Top returns the most recently pushed frame, or nil if the stack is
// empty.
func (s *Stack) Top() *Frame {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

// Object returns the object carried by the top frame, or nil if the
// stack is empty - the shell_construct_object() embedding primitive.
func (s *Stack) Object() interface{} {
	if f := s.Top(); f != nil {
		return f.Object
	}
	return nil
}

// Names returns the frame names from bottom to top, used to rebuild
// the prompt ("<base>[.name]* > ", section 6).
func (s *Stack) Names() []string {
	out := make([]string, 0, len(s.frames))
	for _, f := range s.frames {
		out = append(out, f.Name)
	}
	return out
}
