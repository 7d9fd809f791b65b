package shell

import (
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/nabbar/cmdshell/construct"
	"github.com/nabbar/cmdshell/expr"
	"github.com/nabbar/cmdshell/registry"
	"github.com/nabbar/cmdshell/shellerr"
	"github.com/nabbar/cmdshell/vars"
)

// installBuiltins registers the command set section 6 requires every
// core to ship.
func installBuiltins(s *Shell) {
	// Every built-in is Mutable: section 8 scenario 5 aliases "help"
	// and then unregisters "help" itself, and nothing in section 6 carves out
	// an exception for the rest of the built-in set.
	reg := func(keyword, hints, desc string, attrs registry.Attr, h registry.Handler) {
		registry.Register(s.root, registry.New(keyword, hints, desc, attrs|registry.Mutable, h))
	}

	reg("help", "[keyword]", "print registry tree, optionally rooted at keyword", 0, helpHandler)
	reg("quit", "", "set the quit flag", 0, quitHandler)
	reg("alias", "<new> <existing>", "register new as an alias of existing", 0, aliasHandler)
	reg("unreg", "<keyword>", "unregister a mutable command and its aliases", 0, unregHandler)
	reg("log", "level|stdout|file <value>", "forward to the logger collaborator", 0, logHandler)
	reg("print", "<expr...>", "evaluate or echo each argument", 0, printHandler)
	reg("assign", "<name> <value>", "evaluate if expression-like and store", 0, assignHandler)
	reg("source", "<path>", "run a script file, then restore the console input", 0, sourceHandler)
	reg("routine", "<name>", "push a routine definition frame", registry.ConstructPush, routineHandler)
	reg("while", "(<expr>)", "push a loop frame", registry.ConstructPush, whileHandler)
	reg("if", "(<expr>)", "push a conditional frame", registry.ConstructPush, ifHandler)
	reg("else", "", "switch the open if frame's append target", registry.ConstructModifier, elseHandler)
	reg("end", "", "pop the most recently opened frame", registry.ConstructPop, endHandler)
}

func helpHandler(self *registry.Command, host interface{}, argv []string) (int64, error) {
	sh := host.(*Shell)
	target := sh.Commands()

	if len(argv) > 1 {
		target = registry.Find(sh.Commands(), argv[1])
		if target == nil {
			return 0, shellerr.Newf(shellerr.UnknownCommand, "unknown command: %s", argv[1])
		}
	}

	w := consoleWriter{c: sh.Console()}
	return 0, registry.Help(target, w, 0, registry.Longest(target))
}

func quitHandler(self *registry.Command, host interface{}, argv []string) (int64, error) {
	host.(*Shell).Quit()
	return 0, nil
}

func aliasHandler(self *registry.Command, host interface{}, argv []string) (int64, error) {
	if len(argv) < 3 {
		return 0, shellerr.New(shellerr.Usage, "usage: alias <new> <existing>")
	}
	sh := host.(*Shell)

	target := registry.Find(sh.Commands(), argv[2])
	if target == nil {
		return 0, shellerr.Newf(shellerr.UnknownCommand, "unknown command: %s", argv[2])
	}

	if _, err := registry.Alias(target, argv[1]); err != nil {
		return 0, err
	}
	sh.Console().AddTabCompletion(argv[1])
	return 0, nil
}

func unregHandler(self *registry.Command, host interface{}, argv []string) (int64, error) {
	if len(argv) < 2 {
		return 0, shellerr.New(shellerr.Usage, "usage: unreg <keyword>")
	}
	sh := host.(*Shell)

	cmd := registry.Find(sh.Commands(), argv[1])
	if cmd == nil {
		return 0, shellerr.Newf(shellerr.UnknownCommand, "unknown command: %s", argv[1])
	}
	if !registry.Unregister(cmd) {
		return 0, shellerr.Newf(shellerr.Immutable, "command %q is not mutable", argv[1])
	}
	return 0, nil
}

func logHandler(self *registry.Command, host interface{}, argv []string) (int64, error) {
	if len(argv) < 3 {
		return 0, shellerr.New(shellerr.Usage, "usage: log level|stdout|file <value>")
	}
	sh := host.(*Shell)

	switch argv[1] {
	case "level":
		n, err := strconv.Atoi(argv[2])
		if err != nil {
			return 0, shellerr.Wrap(shellerr.Usage, err, "invalid log level %q", argv[2])
		}
		sh.Log().SetLevel(n)
	case "stdout":
		b, err := strconv.ParseBool(argv[2])
		if err != nil {
			return 0, shellerr.Wrap(shellerr.Usage, err, "invalid boolean %q", argv[2])
		}
		sh.Log().SetStdout(b)
	case "file":
		if err := sh.Log().SetFile(argv[2]); err != nil {
			return 0, shellerr.Wrap(shellerr.Unknown, err, "cannot open log file %q", argv[2])
		}
	default:
		return 0, shellerr.Newf(shellerr.Usage, "unknown log subcommand %q", argv[1])
	}
	return 0, nil
}

func printHandler(self *registry.Command, host interface{}, argv []string) (int64, error) {
	sh := host.(*Shell)

	var (
		parts  []string
		result int64
	)
	for _, a := range argv[1:] {
		if expr.IsExpression(a) {
			v, err := expr.Eval(a, sh.opts.MaxExpressionDepth)
			if err != nil {
				return 0, err
			}
			result = v
			parts = append(parts, strconv.FormatInt(v, 10))
			continue
		}
		result = 0
		parts = append(parts, a)
	}

	sh.Console().Print("%s\n", strings.Join(parts, " "))
	return result, nil
}

func assignHandler(self *registry.Command, host interface{}, argv []string) (int64, error) {
	if len(argv) < 3 {
		return 0, shellerr.New(shellerr.Usage, "usage: assign <name> <value>")
	}
	sh := host.(*Shell)

	name := argv[1]
	value := strings.Join(argv[2:], " ")

	if expr.IsExpression(value) {
		v, err := expr.Eval(value, sh.opts.MaxExpressionDepth)
		if err != nil {
			return 0, err
		}
		sh.AssignVariable(name, strconv.FormatInt(v, 10))
		return v, nil
	}

	sh.AssignVariable(name, value)
	return 0, nil
}

func sourceHandler(self *registry.Command, host interface{}, argv []string) (int64, error) {
	if len(argv) < 2 {
		return 0, shellerr.New(shellerr.Usage, "usage: source <path>")
	}
	sh := host.(*Shell)

	path, err := homedir.Expand(argv[1])
	if err != nil {
		return 0, shellerr.Wrap(shellerr.Usage, err, "invalid path %q", argv[1])
	}

	previous, err := sh.Console().SetInputf(path)
	if err != nil {
		return 0, shellerr.Wrap(shellerr.Unknown, err, "cannot source %q", argv[1])
	}
	defer func() { _, _ = sh.Console().SetInputf(previous) }()

	var last int64
	for {
		line, ok := sh.Console().GetLine("", false)
		if !ok {
			break
		}
		_ = sh.Dispatch(line)
		if v, ok := sh.Vars().Get(vars.ResultName); ok {
			last, _ = parseResult(v)
		}
	}
	return last, nil
}

func routineHandler(self *registry.Command, host interface{}, argv []string) (int64, error) {
	sh := host.(*Shell)

	if self.Attrs.Has(registry.DryRun) {
		sh.ConstructPush(&construct.Frame{Name: "routine"})
		return 0, nil
	}

	if len(argv) < 2 {
		return 0, shellerr.New(shellerr.Usage, "usage: routine <name>")
	}
	r := &construct.Routine{Name: argv[1]}

	sh.ConstructPush(&construct.Frame{
		Name:   r.Name,
		Object: r,
		LineHandler: func(raw string) error {
			r.Lines = append(r.Lines, raw)
			return nil
		},
		PopHandler: func() error {
			if !registry.Register(sh.Commands(), registerRoutine(sh, r)) {
				return shellerr.Newf(shellerr.RegistryConflict, "routine %q already registered", r.Name)
			}
			sh.Console().AddTabCompletion(r.Name)
			return nil
		},
	})
	return 0, nil
}

func whileHandler(self *registry.Command, host interface{}, argv []string) (int64, error) {
	sh := host.(*Shell)

	if self.Attrs.Has(registry.DryRun) {
		sh.ConstructPush(&construct.Frame{Name: "while"})
		return 0, nil
	}

	if len(argv) < 2 {
		return 0, shellerr.New(shellerr.Usage, "usage: while (<expr>)")
	}
	l := &construct.Loop{Condition: strings.Join(argv[1:], " ")}

	sh.ConstructPush(&construct.Frame{
		Name:   "while",
		Object: l,
		LineHandler: func(raw string) error {
			l.Lines = append(l.Lines, raw)
			return nil
		},
		PopHandler: func() error { return runLoop(sh, l) },
	})
	return 0, nil
}

func ifHandler(self *registry.Command, host interface{}, argv []string) (int64, error) {
	sh := host.(*Shell)

	if self.Attrs.Has(registry.DryRun) {
		sh.ConstructPush(&construct.Frame{Name: "if"})
		return 0, nil
	}

	if len(argv) < 2 {
		return 0, shellerr.New(shellerr.Usage, "usage: if (<expr>)")
	}
	c := &construct.Conditional{Condition: strings.Join(argv[1:], " ")}

	sh.ConstructPush(&construct.Frame{
		Name:   "if",
		Object: c,
		LineHandler: func(raw string) error {
			c.Append(raw)
			return nil
		},
		PopHandler: func() error { return runConditional(sh, c) },
	})
	return 0, nil
}

func elseHandler(self *registry.Command, host interface{}, argv []string) (int64, error) {
	if self.Attrs.Has(registry.DryRun) {
		return 0, nil
	}
	sh := host.(*Shell)
	if c, ok := sh.ConstructObject().(*construct.Conditional); ok {
		c.SwitchToElse()
	}
	return 0, nil
}

func endHandler(self *registry.Command, host interface{}, argv []string) (int64, error) {
	return 0, host.(*Shell).ConstructPop()
}
