// Package construct implements the construct stack of section 4.3: the
// state machine that captures multi-line routine, while and if/else
// definitions and runs their deferred bodies when the defining frame
// is popped.
package construct

// LineHandler is invoked when a fresh raw line arrives while the frame
// it belongs to is the outermost open declaration. It stores the line
// verbatim; no substitution or tokenization has happened yet.
type LineHandler func(raw string) error

// PopHandler runs after its Frame has already been removed from the
// Stack, so that a deferred runner which dispatches lines recursively
// sees the stack without its own frame still present.
type PopHandler func() error

// Frame is one construct-stack entry (section 3).
type Frame struct {
	Name       string
	Object     interface{}
	LineHandler LineHandler
	PopHandler  PopHandler
}

// Routine is a named, user-defined command: an ordered sequence of raw
// lines captured between "routine NAME" and "end".
type Routine struct {
	Name  string
	Lines []string
}

// Loop is the ephemeral object backing a "while" frame.
type Loop struct {
	Condition string
	Lines     []string
}

// Conditional is the ephemeral object backing an "if" frame. append
// targets Then until "else" switches it to Else.
type Conditional struct {
	Condition string
	Then      []string
	Else      []string
	inElse    bool
}

// Append adds raw to whichever list is currently selected.
func (c *Conditional) Append(raw string) {
	if c.inElse {
		c.Else = append(c.Else, raw)
	} else {
		c.Then = append(c.Then, raw)
	}
}

// SwitchToElse moves subsequent Append calls to the Else list. It is
// idempotent: a second "else" simply has no further effect on routing,
// matching a construct stack that does not itself validate the source
// grammar beyond pairing pushes and pops.
func (c *Conditional) SwitchToElse() {
	c.inElse = true
}
