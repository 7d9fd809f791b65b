// Package shelllog is the shell's ambient logging facility. It wraps
// logrus the way the teacher's logger package wraps it for every other
// nabbar/golib component, but keeps only the surface the embedded shell
// core needs: a level, an optional stdout mirror, and an optional file
// sink, driven by the built-in "log level|stdout|file" commands.
package shelllog

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger is the collaborator the shell core logs through. It is safe
// for concurrent use, though the shell itself is single-threaded
// (section 5) and never needs that safety for its own sake.
type Logger struct {
	mu     sync.Mutex
	log    *logrus.Logger
	stdout bool
	file   *os.File
}

// New returns a Logger at the given level (0-5, matching spec section 6's
// "log level <0-5>" built-in), writing to stdout when std is true.
func New(level int, std bool) *Logger {
	l := &Logger{log: logrus.New()}
	l.log.SetOutput(os.Stderr)
	l.SetLevel(level)
	l.SetStdout(std)
	return l
}

// levelOf maps the shell's 0-5 verbosity scale onto logrus levels; 0 is
// silent (logrus.PanicLevel, nothing the shell emits ever reaches it),
// 5 is the most verbose (logrus.TraceLevel).
func levelOf(n int) logrus.Level {
	switch {
	case n <= 0:
		return logrus.PanicLevel
	case n == 1:
		return logrus.ErrorLevel
	case n == 2:
		return logrus.WarnLevel
	case n == 3:
		return logrus.InfoLevel
	case n == 4:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

// SetLevel changes the active verbosity.
func (l *Logger) SetLevel(n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.SetLevel(levelOf(n))
}

// SetStdout toggles whether log entries are additionally mirrored to
// stdout, independent of any file sink.
func (l *Logger) SetStdout(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stdout = on
	l.reconfigureOutput()
}

// SetFile points the logger at path, opening it for append and closing
// any previously open file. Passing an empty path closes the current
// file sink without opening a new one.
func (l *Logger) SetFile(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}

	if path == "" {
		l.reconfigureOutput()
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	l.file = f
	l.reconfigureOutput()
	return nil
}

// reconfigureOutput must be called with mu held.
func (l *Logger) reconfigureOutput() {
	writers := make([]io.Writer, 0, 2)
	if l.stdout {
		writers = append(writers, os.Stdout)
	}
	if l.file != nil {
		writers = append(writers, l.file)
	}

	switch len(writers) {
	case 0:
		l.log.SetOutput(os.Stderr)
	case 1:
		l.log.SetOutput(writers[0])
	default:
		l.log.SetOutput(io.MultiWriter(writers...))
	}
}

// Entry starts a structured log line, mirroring the field-chaining style
// of the teacher's logger.Entry.
func (l *Logger) Entry(level logrus.Level, msg string) *logrus.Entry {
	return l.log.WithField("component", "shell").WithField(FieldMessage, msg)
}

// Warnf logs a formatted warning, the level every recoverable dispatch
// error (section 7) is reported at.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log.Warnf(format, args...)
}

// Tracef logs a formatted trace-level line.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.log.Tracef(format, args...)
}

const (
	FieldMessage = "message"
	FieldCode    = "code"
	FieldTrace   = "trace"
)
