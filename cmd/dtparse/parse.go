package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// record is the YAML form of one parsed value
type record struct {
	Input     string            `yaml:"input"`
	Shape     string            `yaml:"shape"`
	Grammar   string            `yaml:"grammar"`
	Canonical string            `yaml:"canonical"`
	Fields    map[string]string `yaml:"fields"`
}

func newParseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse TEXT...",
		Short: "Parse each argument and print its canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var recs []record
			for _, arg := range args {
				rec, err := a.parse(arg)
				if err != nil {
					return err
				}
				if a.output == outputYAML {
					recs = append(recs, rec)
				} else {
					fmt.Fprintln(a.out, rec.Canonical)
				}
			}
			if a.output == outputYAML {
				enc := yaml.NewEncoder(a.out)
				if err := enc.Encode(recs); err != nil {
					return errors.Wrap(err, "failed to write YAML")
				}
				return enc.Close()
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.VarP(&a.shape, "shape", "s", "production to parse: "+shapeNames())
	flags.VarP(&a.output, "output", "o", "output format: text|yaml")
	return cmd
}

// parse reads text as a.shape under a.grammar, requiring that all
// of it is consumed
func (a *app) parse(text string) (rec record, err error) {
	p := a.grammar.NewParser()
	in := []byte(text)
	rest, err := a.shape.parse(p, in)
	if err != nil {
		return rec, errors.Wrapf(err, "parse %q as %s", text, a.shape.name)
	}
	if len(rest) > 0 {
		return rec, errors.Errorf("parse %q as %s: %d trailing byte(s) %q",
			text, a.shape.name, len(rest), rest)
	}

	rec = record{
		Input:   text,
		Shape:   a.shape.name,
		Grammar: a.grammar.String(),
		Fields:  make(map[string]string),
	}
	for _, e := range p.Elements() {
		rec.Fields[e.Kind().String()] = e.String()
	}

	v, err := a.shape.build(p)
	if err != nil {
		return record{}, errors.Wrapf(err, "build %s from %q", a.shape.name, text)
	}
	rec.Canonical = v.String()
	a.log.WithFields(logrus.Fields{
		"input": text,
		"shape": a.shape.name,
	}).Debug("parsed")
	return rec, nil
}
