package main

import (
	"strings"

	dtparse "github.com/JesseCoretta/go-dtparse"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// grammarFlag is a dtparse.Grammar settable from a tag string, eg
// "rfc3339,no-space,year:extended:6"
type grammarFlag struct {
	dtparse.Grammar
}

var _ pflag.Value = (*grammarFlag)(nil)

// Set the grammar from its tag form
func (g *grammarFlag) Set(s string) error {
	gr, err := dtparse.NewGrammar(s)
	if err != nil {
		return errors.Wrapf(err, "invalid grammar %q", s)
	}
	g.Grammar = gr
	return nil
}

// Type of the value
func (g *grammarFlag) Type() string {
	return "grammar"
}

// shape names one of the composite productions
type shape struct {
	name  string
	parse func(*dtparse.Parser, []byte) ([]byte, error)
	build func(*dtparse.Parser) (value, error)
}

// value is satisfied by every composite
type value interface {
	String() string
}

func builder[T value](f func(*dtparse.Parser) (T, error)) func(*dtparse.Parser) (value, error) {
	return func(p *dtparse.Parser) (value, error) {
		v, err := f(p)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

var shapes = []shape{
	{"datetime", (*dtparse.Parser).ParsePreciseShiftedDateTime, builder((*dtparse.Parser).BuildPreciseShiftedDateTime)},
	{"shifted", (*dtparse.Parser).ParseShiftedDateTime, builder((*dtparse.Parser).BuildShiftedDateTime)},
	{"precise-local", (*dtparse.Parser).ParsePreciseLocalDateTime, builder((*dtparse.Parser).BuildPreciseLocalDateTime)},
	{"local", (*dtparse.Parser).ParseLocalDateTime, builder((*dtparse.Parser).BuildLocalDateTime)},
	{"date", (*dtparse.Parser).ParseDate, builder((*dtparse.Parser).BuildDate)},
	{"precise-time", (*dtparse.Parser).ParsePreciseLocalTime, builder((*dtparse.Parser).BuildPreciseLocalTime)},
	{"time", (*dtparse.Parser).ParseTime, builder((*dtparse.Parser).BuildTime)},
}

func shapeNames() string {
	names := make([]string, len(shapes))
	for i, s := range shapes {
		names[i] = s.name
	}
	return strings.Join(names, "|")
}

// shapeFlag selects a shape by name
type shapeFlag struct {
	shape
}

var _ pflag.Value = (*shapeFlag)(nil)

// String turns a shapeFlag into a string
func (s *shapeFlag) String() string {
	return s.name
}

// Set a shapeFlag
func (s *shapeFlag) Set(name string) error {
	for _, sh := range shapes {
		if strings.EqualFold(sh.name, name) {
			s.shape = sh
			return nil
		}
	}
	return errors.Errorf("unknown shape %q, want one of %s", name, shapeNames())
}

// Type of the value
func (s *shapeFlag) Type() string {
	return "shape"
}

// outputFlag selects the rendering of parsed values
type outputFlag string

const (
	outputText outputFlag = "text"
	outputYAML outputFlag = "yaml"
)

var _ pflag.Value = (*outputFlag)(nil)

func (o *outputFlag) String() string { return string(*o) }

func (o *outputFlag) Set(s string) error {
	switch v := outputFlag(strings.ToLower(s)); v {
	case outputText, outputYAML:
		*o = v
		return nil
	}
	return errors.Errorf("unknown output format %q, want text|yaml", s)
}

func (o *outputFlag) Type() string { return "format" }
