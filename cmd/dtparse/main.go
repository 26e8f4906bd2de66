// Command dtparse validates and renders ISO 8601 and RFC 3339 date and
// time text.
//
//	dtparse parse 2023-09-17T09:08:58.763072Z
//	dtparse parse --grammar iso8601 --shape date 20230917
//	dtparse check timestamps.txt
//	dtparse period P1Y2M10DT2H30M5S
package main

import (
	"io"
	"os"

	dtparse "github.com/JesseCoretta/go-dtparse"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app holds the state shared by all subcommands
type app struct {
	grammar    grammarFlag
	configPath string
	shape      shapeFlag
	jobs       int
	output     outputFlag
	verbose    bool
	trace      string

	log *logrus.Logger
	out io.Writer
}

func newApp(stdout, stderr io.Writer) *app {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	a := &app{
		grammar: grammarFlag{dtparse.RFC3339()},
		output:  outputText,
		trace:   "field,build,grammar",
		log:     log,
		out:     stdout,
	}
	a.shape.shape = shapes[0]
	return a
}

// newRootCmd returns the command tree writing to stdout and stderr
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := newApp(stdout, stderr)
	root := &cobra.Command{
		Use:           "dtparse",
		Short:         "Validate and render ISO 8601 / RFC 3339 date and time text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			dtparse.DisableDebug()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.VarP(&a.grammar, "grammar", "g", "grammar tag, eg strict-rfc3339, rfc3339 or iso8601,no-empty-date-sep")
	pf.StringVar(&a.configPath, "config", "", "YAML grammar file; --grammar overrides it when both are given")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug messages")
	pf.StringVar(&a.trace, "trace", a.trace, "parser events to log with --verbose (needs -tags dtparse_debug)")

	root.AddCommand(newParseCmd(a), newCheckCmd(a), newPeriodCmd(a))
	return root
}

// setup applies --config, --verbose and --trace
func (a *app) setup(cmd *cobra.Command) error {
	if a.verbose {
		a.log.SetLevel(logrus.DebugLevel)
		ev, err := dtparse.ParseEventTypes(a.trace)
		if err != nil {
			return errors.Wrap(err, "invalid --trace")
		}
		if !dtparse.DebugBuild() {
			a.log.Debug("parser tracing is unavailable in this build")
		}
		dtparse.EnableDebug(newLogTracer(a.log, ev))
	}

	if a.configPath == "" {
		return nil
	}
	b, err := os.ReadFile(a.configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read grammar config")
	}
	g, err := dtparse.LoadGrammar(b)
	if err != nil {
		return errors.Wrapf(err, "failed to load grammar config %q", a.configPath)
	}
	if !cmd.Flags().Changed("grammar") {
		a.grammar.Grammar = g
	}
	a.log.WithField("grammar", a.grammar.String()).Debug("loaded grammar config")
	return nil
}

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		logrus.New().Error(err)
		os.Exit(1)
	}
}
