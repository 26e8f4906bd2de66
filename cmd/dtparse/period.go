package main

import (
	"fmt"

	dtparse "github.com/JesseCoretta/go-dtparse"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newPeriodCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "period PERIOD...",
		Short: "Parse ISO 8601 periods such as P1Y2M10DT2H30M5S",
		Long: `Prints the canonical form of each period, followed by its length
when every component has a fixed length (weeks and smaller).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				p, err := dtparse.ParsePeriod(arg)
				if err != nil {
					return errors.Wrapf(err, "parse period %q", arg)
				}
				if d, err := p.Duration(); err == nil {
					fmt.Fprintf(a.out, "%s\t%s\n", p, d)
				} else {
					a.log.WithField("period", arg).Debug(err)
					fmt.Fprintln(a.out, p)
				}
			}
			return nil
		},
	}
}
