// Package tty saves and restores terminal mode around the shell's
// interactive read loop. It is the console's raw-mode collaborator
// (section 6, "out of scope... raw readline-style key handling" -
// the shell core only needs the save/restore discipline, not the key
// handling itself).
package tty

import (
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/crypto/ssh/terminal"
)

// TTYSaver restores a terminal to the mode it was in when saved.
// Restore is idempotent: calling it more than once is harmless.
type TTYSaver interface {
	Restore() error
}

type saver struct {
	fd     int
	state  *terminal.State
	mu     sync.Mutex
	done   bool
	notify chan os.Signal
}

// New saves the current mode of r's underlying file descriptor (stdin
// when r is nil) and returns a TTYSaver that restores it. When r is
// not a terminal, New still succeeds with a saver whose Restore is a
// no-op - scripted input via "source" is not a TTY and must not fail
// the shell merely for lacking one.
//
// When signalHandling is true, the saver also restores the terminal on
// SIGINT/SIGTERM, ahead of the host's own signal handling, so a
// consecutive-interrupt teardown (section 5) never leaves the terminal
// raw.
func New(r io.Reader, signalHandling bool) (TTYSaver, error) {
	if r == nil {
		r = os.Stdin
	}

	f, ok := r.(*os.File)
	if !ok {
		return &saver{fd: -1}, nil
	}

	fd := int(f.Fd())
	if !terminal.IsTerminal(fd) {
		return &saver{fd: -1}, nil
	}

	state, err := terminal.GetState(fd)
	if err != nil {
		return nil, err
	}

	s := &saver{fd: fd, state: state}
	if signalHandling {
		s.notify = make(chan os.Signal, 1)
		signal.Notify(s.notify, syscall.SIGINT, syscall.SIGTERM)
		go s.watchSignals()
	}

	return s, nil
}

func (s *saver) watchSignals() {
	if _, ok := <-s.notify; ok {
		_ = s.Restore()
	}
}

// Restore puts the terminal back into the mode captured by New. It is
// safe to call on a nil-fd saver (non-terminal input) and safe to call
// more than once.
func (s *saver) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done || s.fd < 0 {
		return nil
	}
	s.done = true

	if s.notify != nil {
		signal.Stop(s.notify)
		close(s.notify)
	}

	return terminal.Restore(s.fd, s.state)
}

// Restore calls s.Restore(), tolerating a nil saver or an error from a
// prior Restore call - the top-level read loop (shell.RunConsole)
// defers it so the terminal is restored on every exit path.
func Restore(s TTYSaver) {
	if s == nil {
		return
	}
	_ = s.Restore()
}
