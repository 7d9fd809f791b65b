package shell

import (
	"github.com/nabbar/cmdshell/construct"
	"github.com/nabbar/cmdshell/registry"
	"github.com/nabbar/cmdshell/vars"
)

// registerRoutine builds the Mutable Command that becomes a routine's
// registry entry once its defining frame pops (section 4.3's routine
// runner). Invoking it stores argv into %0..%N, then dispatches each
// captured line in order, re-applying substitution and tokenization
// every time.
func registerRoutine(s *Shell, r *construct.Routine) *registry.Command {
	handler := func(self *registry.Command, host interface{}, argv []string) (int64, error) {
		sh := host.(*Shell)
		sh.StoreArgs(argv)

		var last int64
		for _, line := range r.Lines {
			_ = sh.Dispatch(line)
			if v, ok := sh.Vars().Get(vars.ResultName); ok {
				last, _ = parseResult(v)
			}
		}
		return last, nil
	}

	return registry.New(r.Name, "[args...]", "user-defined routine", registry.Mutable, handler)
}

// runLoop is a while frame's pop handler: it substitutes and evaluates
// the stored condition, runs the captured body while truthy, then lets
// the Loop object go out of scope (section 4.3's loop runner).
func runLoop(s *Shell, l *construct.Loop) error {
	for {
		v, err := s.EvaluateCondition(l.Condition)
		if err != nil {
			return err
		}
		if v == 0 {
			return nil
		}
		for _, line := range l.Lines {
			_ = s.Dispatch(line)
		}
	}
}

// runConditional is an if frame's pop handler: it substitutes and
// evaluates the condition once, runs the then-list or the else-list,
// then lets the Conditional object go out of scope.
func runConditional(s *Shell, c *construct.Conditional) error {
	v, err := s.EvaluateCondition(c.Condition)
	if err != nil {
		return err
	}

	lines := c.Then
	if v == 0 {
		lines = c.Else
	}
	for _, line := range lines {
		_ = s.Dispatch(line)
	}
	return nil
}
