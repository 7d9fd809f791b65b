// Command cmdshell is an illustrative host for the embeddable shell
// core (section 6's "CLI surface of the host program"): it wires a
// console, a logger and a configuration source together and hands
// control to the shell's read loop. A real embedder links the shell,
// console, and registry packages directly instead.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nabbar/cmdshell/console"
	"github.com/nabbar/cmdshell/shellcfg"
	"github.com/nabbar/cmdshell/shelllog"
	"github.com/nabbar/cmdshell/shell"
)

// version is overridden at release build time via -ldflags.
var version = "dev"

func main() {
	var (
		showVersion bool
		logLevel    int
		logFile     string
		startupPath string
	)

	cmd := &cobra.Command{
		Use:           "cmdshell",
		Short:         "embeddable interactive command shell",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cc *cobra.Command, args []string) error {
			if showVersion {
				fmt.Println(version)
				return nil
			}
			return run(logLevel, logFile, startupPath)
		},
	}

	cmd.Flags().BoolVarP(&showVersion, "version", "V", false, "print version and exit")
	cmd.Flags().IntVarP(&logLevel, "verbosity", "v", 2, "log level (0-5)")
	cmd.Flags().StringVarP(&logFile, "log-file", "l", "", "log file path")
	cmd.Flags().StringVarP(&startupPath, "script", "s", "", "run a script at startup")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(logLevel int, logFile, startupPath string) error {
	v := viper.New()
	v.SetEnvPrefix("cmdshell")
	v.AutomaticEnv()

	opts := shellcfg.Load(v)
	opts.PromptBase = "cmdshell"

	log := shelllog.New(logLevel, true)
	if logFile != "" {
		if err := log.SetFile(logFile); err != nil {
			return err
		}
	}

	term := console.NewTerminal()
	s := shell.Create(term, nil, opts.PromptBase, opts, log)

	if startupPath != "" {
		if _, err := term.SetInputf(startupPath); err != nil {
			return err
		}
		s.RunConsole(false)
		if _, err := term.SetInputf(""); err != nil {
			return err
		}
	}

	s.RunConsole(true)
	return nil
}
