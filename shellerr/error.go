package shellerr

import (
	"fmt"
	"runtime"
)

// Error is the typed error every dispatcher/parser/substitution failure
// surfaces as. It carries a Code (for %?-class classification), a
// human-readable message, the call site that raised it, and an optional
// chain of parent causes, mirroring the teacher's errors.Error shape
// (code + message + trace + parent chain) without the full HTTP-status
// registry machinery that package carries for a general-purpose library.
type Error interface {
	error
	Code() Code
	Trace() string
	Unwrap() error
}

type shellErr struct {
	code   Code
	msg    string
	frame  runtime.Frame
	parent error
}

// New builds an Error for code with a literal message.
func New(code Code, msg string) Error {
	return newErr(code, msg, nil)
}

// Newf builds an Error for code with a formatted message.
func Newf(code Code, format string, args ...interface{}) Error {
	return newErr(code, fmt.Sprintf(format, args...), nil)
}

// Wrap builds an Error for code that chains an underlying cause.
func Wrap(code Code, parent error, format string, args ...interface{}) Error {
	return newErr(code, fmt.Sprintf(format, args...), parent)
}

func newErr(code Code, msg string, parent error) Error {
	var frame runtime.Frame

	pc := make([]uintptr, 1)
	if n := runtime.Callers(3, pc); n > 0 {
		frames := runtime.CallersFrames(pc[:n])
		frame, _ = frames.Next()
	}

	if msg == "" {
		msg = code.String()
	}

	return &shellErr{code: code, msg: msg, frame: frame, parent: parent}
}

func (e *shellErr) Error() string {
	if e == nil {
		return ""
	}
	return e.msg
}

func (e *shellErr) Code() Code {
	if e == nil {
		return Unknown
	}
	return e.code
}

// Trace renders "file:line" for the Go call site that raised the error.
// The expression parser's 1-based input offset is part of the message,
// not of the trace.
func (e *shellErr) Trace() string {
	if e == nil || e.frame.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", e.frame.File, e.frame.Line)
}

func (e *shellErr) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.parent
}

// Is reports whether target carries the same Code, matching the
// convention errors.Is uses when comparing sentinel-style errors.
func (e *shellErr) Is(target error) bool {
	if se, ok := target.(Error); ok {
		return se.Code() == e.Code()
	}
	return false
}
