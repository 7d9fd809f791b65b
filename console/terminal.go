package console

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
)

// Terminal is the default Console: an interactive prompt over os.Stdin
// plus a stack-free swap to a file source for "source", reading whole
// lines with a bufio.Scanner.
type Terminal struct {
	out io.Writer
	err io.Writer

	scanner    *bufio.Scanner
	closer     io.Closer
	inputfPath string

	history []string
	atEOF   bool

	tab  TabCompleteFunc
	hint HintFunc
	user UserKeyFunc
}

// NewTerminal returns a Terminal reading from os.Stdin and writing to
// os.Stdout/os.Stderr, wrapped through go-colorable so ANSI color codes
// from fatih/color (ColorPrompt, SetColor) render correctly on a
// Windows console rather than leaking through as raw escape sequences.
func NewTerminal() *Terminal {
	return &Terminal{
		out:     colorable.NewColorableStdout(),
		err:     colorable.NewColorableStderr(),
		scanner: bufio.NewScanner(os.Stdin),
	}
}

// GetLine implements Console.
func (t *Terminal) GetLine(prompt string, interactive bool) (string, bool) {
	if interactive {
		ColorPrompt.Print(prompt)
	}
	if !t.scanner.Scan() {
		t.atEOF = true
		return "", false
	}
	return t.scanner.Text(), true
}

// Print implements Console.
func (t *Terminal) Print(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.out, format, args...)
}

// Errorf implements Console.
func (t *Terminal) Errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.err, format+"\n", args...)
}

// SetLineCallbacks implements Console.
func (t *Terminal) SetLineCallbacks(tab TabCompleteFunc, hint HintFunc, user UserKeyFunc) {
	t.tab = tab
	t.hint = hint
	t.user = user
}

// AddTabCompletion implements Console. registry.TabCompletions (section
// 4.4) sources candidates live from the command tree on every call, so
// there is no separate candidate cache for this scanner-backed terminal
// to maintain; built-ins (alias, routine) still call it so a
// richer host-supplied Console that does keep its own candidate list -
// the interactive completion UI itself is out of scope per section 1 -
// learns about names the registry walk would not otherwise surface
// before the next keystroke.
func (t *Terminal) AddTabCompletion(word string) {}

// InputfEOF implements Console: it reports whether the last GetLine
// call hit end of input, without itself consuming a line.
func (t *Terminal) InputfEOF() bool {
	return t.atEOF
}

// SetInputf implements Console, swapping the scanner to read path and
// returning the previous source so the caller can restore it.
func (t *Terminal) SetInputf(path string) (string, error) {
	previous := t.inputfPath

	if path == "" {
		if t.closer != nil {
			_ = t.closer.Close()
			t.closer = nil
		}
		t.scanner = bufio.NewScanner(os.Stdin)
		t.inputfPath = ""
		t.atEOF = false
		return previous, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return previous, err
	}

	if t.closer != nil {
		_ = t.closer.Close()
	}

	t.scanner = bufio.NewScanner(f)
	t.closer = f
	t.inputfPath = path
	t.atEOF = false
	return previous, nil
}

// GetInputf implements Console.
func (t *Terminal) GetInputf() string {
	return t.inputfPath
}

// AddHistory implements Console.
func (t *Terminal) AddHistory(line string) {
	t.history = append(t.history, line)
}

// History returns the accumulated line history, most recent last.
func (t *Terminal) History() []string {
	return t.history
}
