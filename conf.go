package dtparse

/*
conf.go contains the YAML representation of the Grammar type.
*/

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"
)

/*
grammarDoc is the on-disk form of a [Grammar]. Absent flags inherit the
value of the named preset, e.g.:

	preset: rfc3339
	space_separator: false
	year:
	  digits: 6
	  signed: true
*/
type grammarDoc struct {
	Preset             string    `yaml:"preset,omitempty"`
	EmptyDateSeparator *bool     `yaml:"empty_date_separator,omitempty"`
	EmptyTimeSeparator *bool     `yaml:"empty_time_separator,omitempty"`
	SpaceSeparator     *bool     `yaml:"space_separator,omitempty"`
	CaseInsensitive    *bool     `yaml:"case_insensitive,omitempty"`
	NegativeZero       *bool     `yaml:"negative_zero,omitempty"`
	Year               *YearKind `yaml:"year,omitempty"`
}

func (r grammarDoc) grammar() (g Grammar, err error) {
	g = ISO8601()
	if r.Preset != "" {
		var ok bool
		if g, ok = presetByName(trimS(r.Preset)); !ok {
			err = GrammarError{Err: ErrUnknownKeyword, Keyword: r.Preset}
			return
		}
	}

	for _, f := range []struct {
		v   *bool
		set *bool
	}{
		{r.EmptyDateSeparator, &g.EmptyDateSeparator},
		{r.EmptyTimeSeparator, &g.EmptyTimeSeparator},
		{r.SpaceSeparator, &g.SpaceSeparator},
		{r.CaseInsensitive, &g.CaseInsensitive},
		{r.NegativeZero, &g.NegativeZero},
	} {
		if f.v != nil {
			*f.set = *f.v
		}
	}

	if r.Year != nil {
		if !r.Year.Valid() {
			err = GrammarError{Err: ErrOutOfRange, Keyword: "year:" + itoa(r.Year.Digits)}
			return
		}
		g.Year = r.Year.norm()
	}

	return
}

/*
LoadGrammar returns an instance of [Grammar] alongside an error following
an attempt to read the YAML document b. Unknown keys are rejected. An empty
document yields [ISO8601].
*/
func LoadGrammar(b []byte) (g Grammar, err error) {
	var doc grammarDoc
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err = dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return ISO8601(), nil
		}
		return
	}

	if g, err = doc.grammar(); err == nil {
		debugGrammar(newLItem(g.String(), "yaml grammar"))
	}
	return
}

/*
MarshalYAML returns the fully explicit YAML form of the receiver instance.
No preset key is written; every flag appears.
*/
func (r Grammar) MarshalYAML() (any, error) {
	y := r.Year.norm()
	return grammarDoc{
		EmptyDateSeparator: &r.EmptyDateSeparator,
		EmptyTimeSeparator: &r.EmptyTimeSeparator,
		SpaceSeparator:     &r.SpaceSeparator,
		CaseInsensitive:    &r.CaseInsensitive,
		NegativeZero:       &r.NegativeZero,
		Year:               &y,
	}, nil
}

/*
UnmarshalYAML reads a YAML mapping into the receiver instance, honoring
the "preset" key as documented for [LoadGrammar].
*/
func (r *Grammar) UnmarshalYAML(node *yaml.Node) error {
	var doc grammarDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}
	g, err := doc.grammar()
	if err == nil {
		*r = g
	}
	return err
}
