package registry

// Handler is the uniform command handler signature of section 3: it
// receives the invoked Command, an opaque host context, and the
// tokenized argument vector (argv[0] is the keyword), and returns the
// value that becomes %?.
type Handler func(self *Command, host interface{}, argv []string) (int64, error)

// Command is one node of the registry tree (section 3).
type Command struct {
	Keyword     string
	ArgHints    string
	Description string
	Handler     Handler
	Attrs       Attr

	parent      *Command
	children    []*Command
	index       map[string]int
	aliasedFrom *Command
	aliases     []*Command
}

// NewRoot returns an empty root container: a Command with no keyword
// that exists only to hold top-level children.
func NewRoot() *Command {
	return &Command{index: make(map[string]int)}
}

// New builds a detached Command ready for Register.
func New(keyword, arghints, description string, attrs Attr, handler Handler) *Command {
	return &Command{
		Keyword:     keyword,
		ArgHints:    arghints,
		Description: description,
		Attrs:       attrs,
		Handler:     handler,
		index:       make(map[string]int),
	}
}

// Children returns cmd's direct children in registration order. The
// returned slice must not be mutated by the caller.
func (cmd *Command) Children() []*Command {
	return cmd.children
}

// Parent returns cmd's parent, or nil for the root.
func (cmd *Command) Parent() *Command {
	return cmd.parent
}

// IsMutable reports whether cmd may be unregistered.
func (cmd *Command) IsMutable() bool {
	return cmd.Attrs.Has(Mutable)
}
