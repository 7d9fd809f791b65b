// Package shell wires the registry, dispatcher, construct stack and
// variable store into the embeddable core described in section 6: the
// Shell type and the embedding API a host program drives.
package shell

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/nabbar/cmdshell/console"
	"github.com/nabbar/cmdshell/construct"
	"github.com/nabbar/cmdshell/dispatch"
	"github.com/nabbar/cmdshell/expr"
	"github.com/nabbar/cmdshell/registry"
	"github.com/nabbar/cmdshell/shellcfg"
	"github.com/nabbar/cmdshell/shelllog"
	"github.com/nabbar/cmdshell/tty"
	"github.com/nabbar/cmdshell/vars"
)

// RegisterFunc lets a host program add its own commands to the root at
// construction time (shell_create's register_fn).
type RegisterFunc func(root *registry.Command)

// Shell owns every piece of state described in section 2: the
// registry, the dispatcher, the construct stack, and the variable
// store, plus the console and logger collaborators.
type Shell struct {
	root    *registry.Command
	stack   *construct.Stack
	vars    *vars.Store
	console console.Console
	log     *shelllog.Logger
	opts    shellcfg.Options
	dsp     *dispatch.Dispatcher

	quit           bool
	interruptCount atomic.Int32
	promptBase     string
}

// Create is shell_create: it builds the registry root, installs the
// built-in commands, runs register for host extensions, and wires the
// dispatcher. log may be nil, in which case a silent default is used.
func Create(c console.Console, register RegisterFunc, promptBase string, opts shellcfg.Options, log *shelllog.Logger) *Shell {
	if log == nil {
		log = shelllog.New(0, false)
	}

	s := &Shell{
		root:       registry.NewRoot(),
		stack:      construct.NewStack(),
		vars:       vars.New(),
		console:    c,
		log:        log,
		opts:       opts,
		promptBase: promptBase,
	}

	installBuiltins(s)
	if register != nil {
		register(s.root)
	}

	s.dsp = dispatch.New(s.root, s.stack, s.vars, c, s, log, opts.MaxDispatchDepth)

	// section 4.4: the registry owns the tab_completion/arg_hints
	// algorithms; the console only needs the callbacks wired so a
	// richer line editor than Terminal can drive them per keystroke.
	c.SetLineCallbacks(
		func(buffer string) []string { return registry.TabCompletions(s.root, buffer) },
		func(buffer string) string { return registry.ArgHint(s.root, buffer) },
		nil,
	)

	return s
}

// Destroy is shell_destroy: it releases nothing the garbage collector
// would not, but exists as the symmetric embedding-API counterpart to
// Create and the place a future teardown hook would live.
func (s *Shell) Destroy() {
	s.root = nil
	s.stack = nil
	s.vars = nil
}

// Commands is shell_commands: it exposes the root for third-party
// registration after construction.
func (s *Shell) Commands() *registry.Command {
	return s.root
}

// RoutineByName is shell_routine_by_name: it looks up a registered
// routine command by its keyword.
func (s *Shell) RoutineByName(name string) *registry.Command {
	return registry.Find(s.root, name)
}

// RoutineInsert is shell_routine_insert: it registers a fully-formed
// routine command (built by registerRoutine) directly, bypassing the
// construct stack - the path a host uses to install a routine it built
// programmatically rather than one a user typed.
func (s *Shell) RoutineInsert(name string, lines []string) bool {
	r := &construct.Routine{Name: name, Lines: lines}
	return registry.Register(s.root, registerRoutine(s, r))
}

// RoutineRemove is shell_routine_remove.
func (s *Shell) RoutineRemove(name string) bool {
	cmd := registry.Find(s.root, name)
	if cmd == nil {
		return false
	}
	return registry.Unregister(cmd)
}

// StoreArgs is shell_store_args.
func (s *Shell) StoreArgs(argv []string) {
	s.vars.StoreArgs(argv)
}

// AssignVariable is shell_assign_variable: it stores value directly,
// without the expression-evaluation step "assign" itself performs.
func (s *Shell) AssignVariable(name, value string) {
	s.vars.Set(name, value)
}

// Vars exposes the variable store to built-in command handlers.
func (s *Shell) Vars() *vars.Store {
	return s.vars
}

// Console exposes the console collaborator to built-in command handlers.
func (s *Shell) Console() console.Console {
	return s.console
}

// Log exposes the logger collaborator to built-in command handlers.
func (s *Shell) Log() *shelllog.Logger {
	return s.log
}

// EvaluateCondition is shell_evaluate_condition: substitute then
// evaluate cond, bounded by the configured expression depth.
func (s *Shell) EvaluateCondition(cond string) (int64, error) {
	substituted, err := s.vars.Substitute(cond)
	if err != nil {
		return 0, err
	}
	return expr.Eval(substituted, s.opts.MaxExpressionDepth)
}

// Dispatch is shell_dispatch.
func (s *Shell) Dispatch(line string) error {
	return s.dsp.Dispatch(line)
}

// Quit is shell_quit: it sets the flag the read loop checks before
// reading the next line (section 5: "stops the loop at the next line
// read").
func (s *Shell) Quit() {
	s.quit = true
}

// Quitting reports whether Quit has been called.
func (s *Shell) Quitting() bool {
	return s.quit
}

// ConstructPush is shell_construct_push.
func (s *Shell) ConstructPush(f *construct.Frame) {
	s.stack.Push(f)
}

// ConstructPop is shell_construct_pop.
func (s *Shell) ConstructPop() error {
	return s.stack.Pop()
}

// ConstructObject is shell_construct_object.
func (s *Shell) ConstructObject() interface{} {
	return s.stack.Object()
}

// ConstructStack exposes the stack itself to built-in handlers that
// need more than the embedding API's narrow accessors (e.g. reading
// Outermost() during construct arbitration debugging).
func (s *Shell) ConstructStack() *construct.Stack {
	return s.stack
}

// Prompt rebuilds the prompt string per section 6:
// "<base> [ "." frame_name ]* " > "".
func (s *Shell) Prompt() string {
	p := s.promptBase
	for _, name := range s.stack.Names() {
		p += "." + name
	}
	return p + " > "
}

// RunConsole is shell_run_console: it drives the read-eval loop against
// the interactive console until EOF or Quit, returning the last %?
// value as an int. A raw-mode TTYSaver is established for the duration
// and restored on every exit path.
//
// Section 5's "after a configured number of consecutive interrupts the
// host tears the shell down cleanly" is implemented with the read
// loop's own SIGINT watcher, independent of the TTYSaver's restore-on-
// signal behaviour: each SIGINT bumps interruptCount and calls Quit
// once it reaches opts.MaxConsecutiveInterrupts; any line that is
// actually read resets the count, so the threshold only fires on
// interrupts received back-to-back with no intervening input.
func (s *Shell) RunConsole(interactive bool) int64 {
	saver, err := tty.New(nil, true)
	if err == nil {
		defer tty.Restore(saver)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT)
	defer signal.Stop(sig)

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-sig:
				if s.interruptCount.Add(1) >= int32(s.opts.MaxConsecutiveInterrupts) {
					s.Quit()
				}
			case <-done:
				return
			}
		}
	}()

	var last int64
	for !s.quit {
		line, ok := s.console.GetLine(s.Prompt(), interactive)
		if !ok {
			break
		}
		s.interruptCount.Store(0)
		s.console.AddHistory(line)

		_ = s.dsp.Dispatch(line)
		if v, ok := s.vars.Get(vars.ResultName); ok {
			last, _ = parseResult(v)
		}
	}
	return last
}

// RunLines is shell_run_lines: dispatch each line in order, stopping
// early if Quit is called, and returning the last %? value.
func (s *Shell) RunLines(lines []string) int64 {
	var last int64
	for _, line := range lines {
		if s.quit {
			break
		}
		_ = s.dsp.Dispatch(line)
		if v, ok := s.vars.Get(vars.ResultName); ok {
			last, _ = parseResult(v)
		}
	}
	return last
}

func parseResult(s string) (int64, error) {
	var neg bool
	i := 0
	if len(s) > 0 && s[0] == '-' {
		neg = true
		i = 1
	}
	var n int64
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, nil
		}
		n = n*10 + int64(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}
