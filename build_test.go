package dtparse

import (
	"errors"
	"testing"
)

func TestBuild_composites(t *testing.T) {
	g := RFC3339()
	for idx, test := range []struct {
		in    string
		parse scanner
		build func(*Parser) (string, error)
		want  string
	}{
		{"2023-09-17", (*Parser).ParseDate,
			func(p *Parser) (string, error) { v, err := p.BuildDate(); return v.String(), err },
			"2023-09-17"},
		{"09:08:58", (*Parser).ParseTime,
			func(p *Parser) (string, error) { v, err := p.BuildTime(); return v.String(), err },
			"09:08:58"},
		{"09:08:58.5", (*Parser).ParsePreciseLocalTime,
			func(p *Parser) (string, error) { v, err := p.BuildPreciseLocalTime(); return v.String(), err },
			"09:08:58.5"},
		{"2023-09-17 09:08:58", (*Parser).ParseLocalDateTime,
			func(p *Parser) (string, error) { v, err := p.BuildLocalDateTime(); return v.String(), err },
			"2023-09-17T09:08:58"},
		{"2023-09-17T09:08:58", (*Parser).ParsePreciseLocalDateTime,
			func(p *Parser) (string, error) { v, err := p.BuildPreciseLocalDateTime(); return v.String(), err },
			"2023-09-17T09:08:58.0"},
		{"2023-09-17T09:08:58-05:00", (*Parser).ParseShiftedDateTime,
			func(p *Parser) (string, error) { v, err := p.BuildShiftedDateTime(); return v.String(), err },
			"2023-09-17T09:08:58-05:00"},
		{"2023-09-17t09:08:58.010z", (*Parser).ParsePreciseShiftedDateTime,
			func(p *Parser) (string, error) { v, err := p.BuildPreciseShiftedDateTime(); return v.String(), err },
			"2023-09-17T09:08:58.01Z"},
	} {
		p := g.NewParser()
		if _, err := test.parse(p, []byte(test.in)); err != nil {
			t.Errorf("%s[%d] failed: parse: %v", t.Name(), idx, err)
			continue
		}
		got, err := test.build(p)
		if err != nil || got != test.want {
			t.Errorf("%s[%d] failed: want %s, got (%s, %v)", t.Name(), idx, test.want, got, err)
		}
		if p.State() != StateConsumed || p.Len() != 0 {
			t.Errorf("%s[%d] failed: parser left in state %s", t.Name(), idx, p.State())
		}
	}
}

func TestBuild_fromFields(t *testing.T) {
	p := StrictRFC3339().NewParser()
	in := []byte("09:08:58")
	var err error
	for _, step := range []func([]byte) ([]byte, error){
		p.ParseHour, p.ParseTimeSeparator, p.ParseMinute,
		p.ParseTimeSeparator, p.ParseSecond, p.ParseFraction,
	} {
		if in, err = step(in); err != nil {
			t.Fatalf("%s failed: %v", t.Name(), err)
		}
	}
	if p.State() != StatePartial {
		t.Errorf("%s failed: want partial, got %s", t.Name(), p.State())
	}

	pt, err := p.BuildPreciseLocalTime()
	if err != nil || pt.String() != "09:08:58.0" {
		t.Errorf("%s failed: got (%s, %v)", t.Name(), pt, err)
	}
}

func TestBuild_leftovers(t *testing.T) {
	p := RFC3339().NewParser()
	if _, err := p.ParsePreciseShiftedDateTime([]byte("2023-09-17T09:08:58.1Z")); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	d, err := p.BuildDate()
	if err != nil || d.String() != "2023-09-17" {
		t.Errorf("%s failed: got (%s, %v)", t.Name(), d, err)
	}
	if p.Len() != 0 {
		t.Errorf("%s failed: %d leftover elements retained", t.Name(), p.Len())
	}
}

func TestBuild_misuse(t *testing.T) {
	var ae AssemblyError

	// nothing parsed
	p := NewParser()
	if _, err := p.BuildDate(); !errors.As(err, &ae) ||
		ae.Err != ErrInsufficientElements || ae.Expected != KindYear {
		t.Errorf("%s failed: empty parser: %v", t.Name(), err)
	}
	if p.State() != StateFailed {
		t.Errorf("%s failed: want failed, got %s", t.Name(), p.State())
	}

	// wrong production
	p = NewParser()
	_, _ = p.ParseTime([]byte("09:08:58"))
	if _, err := p.BuildDate(); !errors.As(err, &ae) ||
		ae.Err != ErrUnexpectedElement || ae.Got.Kind() != KindHour {
		t.Errorf("%s failed: time as date: %v", t.Name(), err)
	}

	// a time lacking its fraction
	p = NewParser()
	_, _ = p.ParseTime([]byte("09:08:58"))
	if _, err := p.BuildPreciseLocalTime(); !errors.Is(err, ErrInsufficientElements) {
		t.Errorf("%s failed: precise from plain: %v", t.Name(), err)
	}

	// a shifted date-time lacking its offset
	p = NewParser()
	_, _ = p.ParseLocalDateTime([]byte("2023-09-17T09:08:58"))
	dt, err := p.BuildShiftedDateTime()
	if !errors.As(err, &ae) || ae.Expected != KindTimeshift {
		t.Errorf("%s failed: shifted from local: %v", t.Name(), err)
	}
	if dt != (ShiftedDateTime{}) {
		t.Errorf("%s failed: partial value returned: %s", t.Name(), dt)
	}

	// a precise time where a plain one is expected
	p = NewParser()
	_, _ = p.ParsePreciseLocalDateTime([]byte("2023-09-17T09:08:58.5"))
	if _, err := p.BuildPreciseShiftedDateTime(); !errors.Is(err, ErrInsufficientElements) {
		t.Errorf("%s failed: precise shifted from precise local: %v", t.Name(), err)
	}
}

func TestBuild_consumed(t *testing.T) {
	p := NewParser()
	_, _ = p.ParseDate([]byte("2023-09-17"))
	if _, err := p.BuildDate(); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	if _, err := p.BuildDate(); !errors.Is(err, ErrParserConsumed) {
		t.Errorf("%s failed: second build: %v", t.Name(), err)
	}
	if _, err := p.ParseYear([]byte("2023")); !errors.Is(err, ErrParserConsumed) {
		t.Errorf("%s failed: parse after build: %v", t.Name(), err)
	}
	if p.State() != StateConsumed {
		t.Errorf("%s failed: state changed to %s", t.Name(), p.State())
	}
}
