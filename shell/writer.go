package shell

import "github.com/nabbar/cmdshell/console"

// consoleWriter adapts a Console's Print method to io.Writer so
// registry.Help can render into it directly.
type consoleWriter struct {
	c console.Console
}

func (w consoleWriter) Write(p []byte) (int, error) {
	w.c.Print("%s", string(p))
	return len(p), nil
}
