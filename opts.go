package dtparse

/*
opts.go contains all types and methods pertaining to the Grammar type,
which tunes the punctuation and letter variants accepted by a Parser.
*/

/*
Grammar implements the configuration of a [Parser]. Instances are plain
values: a [Parser] holds its own copy, thus any change made after the
parser was derived has no effect on it.

Three presets are available, being [StrictRFC3339], [RFC3339] and
[ISO8601]. Each flag may then be overridden individually through the
With* methods, a tag string (see [NewGrammar]) or a YAML document (see
[LoadGrammar]).
*/
type Grammar struct {
	EmptyDateSeparator bool     `yaml:"empty_date_separator"` // "-" between date fields may be omitted
	EmptyTimeSeparator bool     `yaml:"empty_time_separator"` // ":" between time fields may be omitted
	SpaceSeparator     bool     `yaml:"space_separator"`      // " " is accepted in place of "T"
	CaseInsensitive    bool     `yaml:"case_insensitive"`     // "t" and "z" are accepted
	NegativeZero       bool     `yaml:"negative_zero"`        // "-00:00" is accepted
	Year               YearKind `yaml:"year"`                 // zero value is SimpleYear
}

/*
StrictRFC3339 returns the [Grammar] of RFC 3339 section 5.6 as written:
uppercase "T" and "Z" only, all separators mandatory.
*/
func StrictRFC3339() Grammar {
	return Grammar{NegativeZero: true}
}

/*
RFC3339 returns the lenient [Grammar] of RFC 3339, which additionally
permits lowercase "t" and "z" and a space in place of "T", as noted in
RFC 3339 section 5.6.
*/
func RFC3339() Grammar {
	return Grammar{
		SpaceSeparator:  true,
		CaseInsensitive: true,
		NegativeZero:    true,
	}
}

/*
ISO8601 returns the [Grammar] of ISO 8601, which permits both the basic
(separator-free) and extended formats but rejects the "-00:00" offset.
This is the default grammar.
*/
func ISO8601() Grammar {
	return Grammar{
		EmptyDateSeparator: true,
		EmptyTimeSeparator: true,
	}
}

/*
WithEmptyDateSeparator returns a copy of the receiver instance with the
EmptyDateSeparator flag set to allowed.
*/
func (r Grammar) WithEmptyDateSeparator(allowed bool) Grammar {
	r.EmptyDateSeparator = allowed
	return r
}

/*
WithEmptyTimeSeparator returns a copy of the receiver instance with the
EmptyTimeSeparator flag set to allowed.
*/
func (r Grammar) WithEmptyTimeSeparator(allowed bool) Grammar {
	r.EmptyTimeSeparator = allowed
	return r
}

/*
WithSpaceSeparator returns a copy of the receiver instance with the
SpaceSeparator flag set to allowed.
*/
func (r Grammar) WithSpaceSeparator(allowed bool) Grammar {
	r.SpaceSeparator = allowed
	return r
}

/*
WithCaseInsensitive returns a copy of the receiver instance with the
CaseInsensitive flag set to allowed.
*/
func (r Grammar) WithCaseInsensitive(allowed bool) Grammar {
	r.CaseInsensitive = allowed
	return r
}

/*
WithNegativeZero returns a copy of the receiver instance with the
NegativeZero flag set to allowed.
*/
func (r Grammar) WithNegativeZero(allowed bool) Grammar {
	r.NegativeZero = allowed
	return r
}

/*
WithYear returns a copy of the receiver instance using the specified
[YearKind].
*/
func (r Grammar) WithYear(kind YearKind) Grammar {
	r.Year = kind
	return r
}

var (
	dateTimeSeparatorsStrict = []string{"T"}
	dateTimeSeparatorsFolded = []string{"T", "t"}
	utcDesignatorsStrict     = []string{"Z"}
	utcDesignatorsFolded     = []string{"Z", "z"}
)

func (r Grammar) dateTimeSeparators() []string {
	if r.CaseInsensitive {
		return dateTimeSeparatorsFolded
	}
	return dateTimeSeparatorsStrict
}

func (r Grammar) utcDesignators() []string {
	if r.CaseInsensitive {
		return utcDesignatorsFolded
	}
	return utcDesignatorsStrict
}

/*
grammar flag keywords, in rendering order.
*/
var grammarFlags = []struct {
	name string
	get  func(Grammar) bool
	set  func(*Grammar, bool)
}{
	{"empty-date-sep", func(g Grammar) bool { return g.EmptyDateSeparator }, func(g *Grammar, b bool) { g.EmptyDateSeparator = b }},
	{"empty-time-sep", func(g Grammar) bool { return g.EmptyTimeSeparator }, func(g *Grammar, b bool) { g.EmptyTimeSeparator = b }},
	{"space", func(g Grammar) bool { return g.SpaceSeparator }, func(g *Grammar, b bool) { g.SpaceSeparator = b }},
	{"case-insensitive", func(g Grammar) bool { return g.CaseInsensitive }, func(g *Grammar, b bool) { g.CaseInsensitive = b }},
	{"negative-zero", func(g Grammar) bool { return g.NegativeZero }, func(g *Grammar, b bool) { g.NegativeZero = b }},
}

var grammarPresets = []struct {
	name string
	new  func() Grammar
}{
	{"strict-rfc3339", StrictRFC3339},
	{"rfc3339", RFC3339},
	{"iso8601", ISO8601},
}

func presetByName(name string) (Grammar, bool) {
	for _, p := range grammarPresets {
		if streqf(p.name, name) {
			return p.new(), true
		}
	}
	return Grammar{}, false
}

/*
String returns the tag form of the receiver instance: the name of the
closest preset followed by any overridden flags, e.g.:

	rfc3339,no-space,year:extended:6

The output is accepted by [NewGrammar].
*/
func (r Grammar) String() string {
	var (
		best  string
		diffs []string
	)
	for _, p := range grammarPresets {
		base := p.new()
		var d []string
		for _, f := range grammarFlags {
			if v := f.get(r); v != f.get(base) {
				d = append(d, flagKeyword(f.name, v))
			}
		}
		if best == "" || len(d) < len(diffs) {
			best, diffs = p.name, d
		}
	}

	parts := append([]string{best}, diffs...)
	if k := r.Year.norm(); k != SimpleYear {
		parts = append(parts, "year:"+k.String())
	}
	return join(parts, ",")
}

func flagKeyword(name string, on bool) string {
	if on {
		return name
	}
	return "no-" + name
}

/*
NewGrammar returns an instance of [Grammar] alongside an error following
an attempt to parse the comma-delimited tag string. The first keyword may
name a preset ("strict-rfc3339", "rfc3339" or "iso8601"); if none is named,
[ISO8601] applies. Subsequent keywords set or clear individual flags:

	empty-date-sep, empty-time-sep, space, case-insensitive, negative-zero

... each of which may be prefixed with "no-" to clear it. The year kind is
chosen with "year:simple", "year:extended:N" or "year:unsigned:N".

Case is not significant.
*/
func NewGrammar(tag string) (g Grammar, err error) {
	g = ISO8601()
	var n int
	for _, kw := range split(tag, ",") {
		if kw = lc(trimS(kw)); kw == "" {
			continue
		}
		if n++; n == 1 {
			if p, ok := presetByName(kw); ok {
				g = p
				continue
			}
		}
		if y, ok := cutPrefix(kw, "year:"); ok {
			if g.Year, err = parseYearKind(y); err != nil {
				return Grammar{}, GrammarError{Err: ErrUnknownKeyword, Keyword: kw}
			}
			continue
		}
		if !setGrammarFlag(&g, kw) {
			return Grammar{}, GrammarError{Err: ErrUnknownKeyword, Keyword: kw}
		}
	}

	debugGrammar(newLItem(g.String(), "grammar"))
	return
}

func setGrammarFlag(g *Grammar, kw string) bool {
	on := true
	if rest, ok := cutPrefix(kw, "no-"); ok {
		kw, on = rest, false
	}
	for _, f := range grammarFlags {
		if f.name == kw {
			f.set(g, on)
			return true
		}
	}
	return false
}

func cutPrefix(s, pfx string) (string, bool) {
	if hasPfx(s, pfx) {
		return s[len(pfx):], true
	}
	return s, false
}

/*
parseYearKind reads the form produced by [YearKind.String].
*/
func parseYearKind(s string) (k YearKind, err error) {
	name, digits, hasDigits := cutStr(s, ":")
	switch name {
	case "simple":
		if hasDigits {
			err = ErrUnknownKeyword
		}
		return SimpleYear, err
	case "extended", "unsigned":
		var n int
		if n, err = atoi(digits); err != nil {
			return
		}
		k = YearKind{Digits: n, Signed: name == "extended"}
		if !k.Valid() {
			err = ErrOutOfRange
		}
		return
	}
	return k, ErrUnknownKeyword
}
