// Package shellerr defines the error codes and sentinel values the shell
// core reports on the console error sink and stores into the %? result
// variable, per the error handling design in section 7 of the toolkit
// specification.
package shellerr

import "strconv"

// Code identifies the kind of failure that aborted a dispatch, parse or
// substitution step. It follows the same "numeric code + registered
// message" shape as the teacher's errors.CodeError.
type Code uint16

const (
	// Unknown is the fallback code for errors with no dedicated row in
	// the error table.
	Unknown Code = iota

	// UnknownCommand: the dispatcher could not resolve argv[0] in the
	// registry root.
	UnknownCommand

	// Usage: a handler rejected its own arguments (arity/usage error).
	Usage

	// InvalidExpression: the expression parser could not produce a
	// value, including the undefined-behaviour-turned-error case of
	// integer division by zero.
	InvalidExpression

	// UnknownVariable: substitution referenced a name absent from the
	// variable store.
	UnknownVariable

	// RecursionOverflow: the dispatcher or the expression parser hit its
	// configured recursion bound.
	RecursionOverflow

	// Immutable: unregister was attempted against a non-MUTABLE command.
	Immutable

	// FrameUnderflow: end was invoked with no open construct frame.
	FrameUnderflow

	// RegistryConflict: register was attempted with a keyword that
	// already exists under the same parent.
	RegistryConflict
)

var messages = map[Code]string{
	Unknown:            "unknown error",
	UnknownCommand:     "unknown command",
	Usage:              "usage error",
	InvalidExpression:  "invalid expression",
	UnknownVariable:    "unknown variable",
	RecursionOverflow:  "recursion depth exceeded",
	Immutable:          "command is not mutable",
	FrameUnderflow:     "no open construct to close",
	RegistryConflict:   "keyword already registered",
}

// String renders the registered message for the code, or the generic
// fallback when the code has no entry.
func (c Code) String() string {
	if m, ok := messages[c]; ok {
		return m
	}
	return messages[Unknown]
}

// Uint16 exposes the code as its underlying numeric type.
func (c Code) Uint16() uint16 {
	return uint16(c)
}

// Marker is the decimal-encoded, out-of-band value written to %? when a
// line could not be executed normally (section 7). It sits far outside
// the plausible range of handler return values, the same convention the
// original C source uses for its own sentinel.
const Marker int64 = -2147483648

// MarkerString renders Marker the way %? substitution would: plain
// decimal text.
func MarkerString() string {
	return strconv.FormatInt(Marker, 10)
}
