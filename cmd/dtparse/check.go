package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [FILE|-]",
		Short: "Validate one value per line, reporting each failure",
		Long: `Reads FILE, or standard input when FILE is "-" or absent, and parses
each non-blank line with the selected shape and grammar. Lines starting
with "#" are skipped. Lines are parsed by up to --jobs workers and
failures are reported in line order. The exit status is non-zero if any
line fails.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			name := "-"
			if len(args) == 1 && args[0] != "-" {
				name = args[0]
				f, err := os.Open(name)
				if err != nil {
					return errors.Wrap(err, "failed to open input")
				}
				defer f.Close()
				r = f
			}
			return a.check(name, r)
		},
	}
	cmd.Flags().VarP(&a.shape, "shape", "s", "production to parse: "+shapeNames())
	cmd.Flags().IntVarP(&a.jobs, "jobs", "j", 4, "number of lines parsed concurrently")
	return cmd
}

type checkLine struct {
	no   int
	text string
	err  error
}

// check parses every line of r, logging each failure
func (a *app) check(name string, r io.Reader) error {
	var lines []*checkLine
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, &checkLine{no: lineNo, text: line})
	}
	if err := sc.Err(); err != nil {
		return errors.Wrapf(err, "failed to read %s", name)
	}

	var g errgroup.Group
	if a.jobs > 0 {
		g.SetLimit(a.jobs)
	}
	for _, l := range lines {
		l := l
		g.Go(func() error {
			_, l.err = a.parse(l.text)
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for _, l := range lines {
		if l.err == nil {
			continue
		}
		failed++
		a.log.WithFields(logrus.Fields{
			"file": name,
			"line": l.no,
		}).Error(errors.Cause(l.err))
	}

	a.log.WithFields(logrus.Fields{
		"file":   name,
		"total":  len(lines),
		"failed": failed,
	}).Info("check complete")
	if failed > 0 {
		return errors.Errorf("%d of %d value(s) failed", failed, len(lines))
	}
	return nil
}
