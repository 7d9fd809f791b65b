// Package registry implements the command registry of section 4.1: a
// tree of keyword-addressed commands with attributes, aliasing and the
// lookups the dispatcher and hint engine need.
package registry

// Attr is a bitset of command attributes from section 3.
type Attr uint8

const (
	// Mutable marks a command that unregister may remove.
	Mutable Attr = 1 << iota
	// ConstructPush marks a command that opens a construct frame.
	ConstructPush
	// ConstructPop marks a command that closes the most recently
	// pushed (top) frame.
	ConstructPop
	// ConstructModifier marks a command that mutates the open frame
	// in place, neither pushing nor popping it.
	ConstructModifier
	// DryRun is set by the dispatcher on a construct command (push,
	// pop or modifier) that is itself being captured into an enclosing
	// declaration; the handler must skip its side effect. The
	// dispatcher clears the flag after the handler returns.
	DryRun
)

func (a Attr) Has(flag Attr) bool {
	return a&flag != 0
}
