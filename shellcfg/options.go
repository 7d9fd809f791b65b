// Package shellcfg holds the shell's tunable bounds. The original C
// source hardcodes these ("the source uses 64", "the source uses 5");
// this port keeps the same defaults but exposes them through
// spf13/viper so a host can override them from a config file, env var,
// or flag the way the rest of the teacher's packages layer viper under
// cobra (config/shell.go, the pack's pervasive viper usage).
package shellcfg

import "github.com/spf13/viper"

// Options are the shell's tunable bounds and defaults.
type Options struct {
	// PromptBase is the left-most, unconditional segment of the prompt
	// (section 6, "Prompt syntax").
	PromptBase string

	// MaxDispatchDepth bounds dispatcher re-entry (section 4.2 step 2).
	MaxDispatchDepth int

	// MaxExpressionDepth bounds expression parser recursion (section 4.5).
	MaxExpressionDepth int

	// MaxConsecutiveInterrupts is the host's interrupt-to-teardown
	// threshold (section 5, "Cancellation").
	MaxConsecutiveInterrupts int
}

// Defaults returns the spec's literal defaults: 64 for both recursion
// bounds, 5 consecutive interrupts, and an empty prompt base (the host
// names its own shell).
func Defaults() Options {
	return Options{
		PromptBase:               "",
		MaxDispatchDepth:         64,
		MaxExpressionDepth:       64,
		MaxConsecutiveInterrupts: 5,
	}
}

// Load reads Options from v, falling back to Defaults for any key v
// does not have set. A nil v returns Defaults unchanged.
func Load(v *viper.Viper) Options {
	o := Defaults()
	if v == nil {
		return o
	}

	if v.IsSet("prompt") {
		o.PromptBase = v.GetString("prompt")
	}
	if v.IsSet("max-dispatch-depth") {
		o.MaxDispatchDepth = v.GetInt("max-dispatch-depth")
	}
	if v.IsSet("max-expression-depth") {
		o.MaxExpressionDepth = v.GetInt("max-expression-depth")
	}
	if v.IsSet("max-interrupts") {
		o.MaxConsecutiveInterrupts = v.GetInt("max-interrupts")
	}

	return o
}
