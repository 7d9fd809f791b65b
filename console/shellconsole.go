package console

// TabCompleteFunc returns every completion candidate for the current
// input buffer (section 4.4's tab_completion).
type TabCompleteFunc func(buffer string) []string

// HintFunc returns the next-argument hint for the current input
// buffer (section 4.4's arg_hints), or "" if none applies.
type HintFunc func(buffer string) string

// UserKeyFunc handles a console key event the shell does not interpret
// itself (e.g. a host-defined shortcut); it is the "user" callback of
// set_line_callbacks.
type UserKeyFunc func(key rune, buffer string) string

// Console is the contract the dispatcher core consumes from the line
// editor (section 6): reading lines, printing normal and error output,
// wiring tab-completion and hint callbacks, and swapping the input
// source for the "source" built-in.
type Console interface {
	// GetLine reads one line at the given prompt. interactive selects
	// between a readline-style prompt and silent batch reading (e.g.
	// from a sourced script). The second return is false at EOF.
	GetLine(prompt string, interactive bool) (string, bool)

	// Print writes formatted text to the normal output stream.
	Print(format string, args ...interface{})
	// Errorf writes formatted text to the error stream (the
	// dispatcher's ErrorSink, section 7).
	Errorf(format string, args ...interface{})

	// SetLineCallbacks installs the tab-completion, hint and
	// user-key callbacks.
	SetLineCallbacks(tab TabCompleteFunc, hint HintFunc, user UserKeyFunc)
	// AddTabCompletion registers a literal candidate (e.g. a
	// newly-defined routine's keyword) with the line editor.
	AddTabCompletion(word string)

	// InputfEOF reports whether the current input source (normally
	// stdin, or a sourced file) has been exhausted.
	InputfEOF() bool
	// SetInputf swaps the input source, returning the previous one so
	// the caller can restore it (section 9: "source" must restore on
	// every exit path, including mid-script errors).
	SetInputf(path string) (previous string, err error)
	// GetInputf returns the path of the current input source, or ""
	// for the interactive console.
	GetInputf() string

	// AddHistory appends line to the console's history, if the
	// implementation keeps one. A no-op implementation is valid.
	AddHistory(line string)
}
