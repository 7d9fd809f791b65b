// Package dispatch implements the line dispatcher of section 4.2: the
// pipeline that turns one raw input line into at most one command
// invocation, arbitrating between construct definition and execution
// and enforcing the recursion depth bound.
package dispatch

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nabbar/cmdshell/construct"
	"github.com/nabbar/cmdshell/registry"
	"github.com/nabbar/cmdshell/shellerr"
	"github.com/nabbar/cmdshell/shelllog"
	"github.com/nabbar/cmdshell/vars"
)

// ErrorSink is the error-reporting half of the console contract
// (section 6): dispatch never writes the error text itself, only to
// this collaborator and to the variable store's %? marker.
type ErrorSink interface {
	Errorf(format string, args ...interface{})
}

// Dispatcher owns one line's journey from raw text to invocation. A
// Shell holds exactly one Dispatcher and reuses it across every line it
// reads (section 5: single cooperative thread of control).
type Dispatcher struct {
	Root  *registry.Command
	Stack *construct.Stack
	Vars  *vars.Store
	Sink  ErrorSink
	Host  interface{}
	Log   *shelllog.Logger

	maxDepth int
	depth    int
}

// New builds a Dispatcher bound to the given registry root, construct
// stack and variable store, bounding re-entrant dispatch to maxDepth
// (section 4.2 step 2, normally shellcfg.Options.MaxDispatchDepth).
func New(root *registry.Command, stack *construct.Stack, store *vars.Store, sink ErrorSink, host interface{}, log *shelllog.Logger, maxDepth int) *Dispatcher {
	return &Dispatcher{
		Root:     root,
		Stack:    stack,
		Vars:     store,
		Sink:     sink,
		Host:     host,
		Log:      log,
		maxDepth: maxDepth,
	}
}

// Dispatch runs the algorithm of section 4.2 on one raw line.
func (d *Dispatcher) Dispatch(raw string) error {
	id := uuid.NewString()

	// Step 1: empty-line guard.
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	// Step 2: depth guard.
	d.depth++
	defer func() { d.depth-- }()
	if d.depth > d.maxDepth {
		d.Sink.Errorf("recursion depth exceeded")
		d.Vars.SetResultMarker()
		d.logEntry(id).Warn("recursion depth exceeded")
		return shellerr.New(shellerr.RecursionOverflow, "recursion depth exceeded")
	}

	// Step 3: primary tokenize.
	argv := Tokenize(raw)
	if len(argv) == 0 {
		return nil
	}

	// Step 4: resolve command.
	cmd := registry.Find(d.Root, argv[0])
	if cmd == nil {
		d.Sink.Errorf("unknown command: %s", argv[0])
		d.Vars.SetResultMarker()
		d.logEntry(id).Warn("unknown command: " + argv[0])
		return shellerr.Newf(shellerr.UnknownCommand, "unknown command: %s", argv[0])
	}

	// Step 5: construct arbitration.
	open := d.Stack.Outermost()
	popAtOutermost := cmd.Attrs.Has(registry.ConstructPop) && d.Stack.Len() == 1
	modifierAtOutermost := cmd.Attrs.Has(registry.ConstructModifier) && d.Stack.Len() == 1

	captured := false
	if open != nil && !popAtOutermost && !modifierAtOutermost {
		if err := open.LineHandler(raw); err != nil {
			d.Sink.Errorf("%s", err.Error())
			d.Vars.SetResultMarker()
			d.logEntry(id).WithError(err).Warn("construct capture failed")
			return err
		}
		captured = true
	}

	// Step 6: execute.
	isConstructOp := cmd.Attrs.Has(registry.ConstructPush) || cmd.Attrs.Has(registry.ConstructPop) || cmd.Attrs.Has(registry.ConstructModifier)
	if !isConstructOp && open != nil {
		// Captured as a plain line into an open declaration: nothing
		// further to execute this round.
		return nil
	}

	line := raw
	if !captured && !isConstructOp {
		substituted, err := d.Vars.Substitute(line)
		if err != nil {
			d.Sink.Errorf("%s", err.Error())
			d.Vars.SetResultMarker()
			d.logEntry(id).WithError(err).Warn("substitution failed")
			return err
		}
		line = substituted
	}

	if captured && isConstructOp {
		cmd.Attrs |= registry.DryRun
	}

	execArgv := Tokenize(line)
	if len(execArgv) == 0 {
		return nil
	}

	result, err := cmd.Handler(cmd, d.Host, execArgv)
	cmd.Attrs &^= registry.DryRun

	if err != nil {
		d.Sink.Errorf("%s", err.Error())
		d.Vars.SetResultMarker()
		d.logEntry(id).WithError(err).Warn("command failed")
		return err
	}

	d.Vars.SetResult(result)
	d.logEntry(id).WithField(shelllog.FieldCode, result).Debug("dispatched")
	return nil
}

func (d *Dispatcher) logEntry(id string) *logrus.Entry {
	if d.Log == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return d.Log.Entry(logrus.DebugLevel, "dispatch").WithField("dispatch_id", id)
}

// Depth reports the current recursion depth, exposed for tests and for
// a host that wants to surface it in diagnostics.
func (d *Dispatcher) Depth() int {
	return d.depth
}
