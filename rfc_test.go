package dtparse

import (
	"errors"
	"fmt"
	"testing"
)

func ExampleParseRFC3339DateTime() {
	dt, err := ParseRFC3339DateTime("2023-09-17 09:08:58.763072z")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(dt)
	fmt.Println(dt.Timeshift().IsUTC())
	// Output:
	// 2023-09-17T09:08:58.763072Z
	// true
}

func ExampleParseISO8601Date() {
	d, _ := ParseISO8601Date("20230917")
	fmt.Println(d)

	_, err := ParseISO8601Date("2023-02-30x")
	fmt.Println(errors.Is(err, ErrMismatch))
	// Output:
	// 2023-09-17
	// true
}

func ExampleBetweenConstraint() {
	lo, _ := ParseRFC3339Date("2000-01-01")
	hi, _ := ParseRFC3339Date("2099-12-31")

	_, err := ParseRFC3339Date("1999-12-31", BetweenConstraint(lo, hi))
	fmt.Println(err)
	// Output: 1999-12-31 is not in allowed range [2000-01-01, 2099-12-31]
}

func TestParseRFC3339DateTime(t *testing.T) {
	for idx, test := range []struct {
		in   string
		want string
		err  error
	}{
		{in: "2023-09-17T09:08:58.763072Z", want: "2023-09-17T09:08:58.763072Z"},
		{in: "2023-04-09T21:22:02.1234+12:02", want: "2023-04-09T21:22:02.1234+12:02"},
		{in: "2023-09-17T09:08:58Z", want: "2023-09-17T09:08:58.0Z"},
		{in: "2023-09-17 09:08:58z", want: "2023-09-17T09:08:58.0Z"},
		{in: "2023-09-17T09:08:58-00:00", want: "2023-09-17T09:08:58.0-00:00"},
		{in: "2023-09-17T09:08:58Z ", err: ErrMismatch},
		{in: " 2023-09-17T09:08:58Z", err: ErrInvalidNumber},
		{in: "2023-09-17T09:08:58", err: ErrUnexpectedEOF},
		{in: "20230917T090858Z", err: ErrMismatch},
		{in: "2023-09-17T09:08:58.1234567890Z", err: ErrFractionTooLong},
		{in: "2023-09-17T09:08:58\xffZ", err: ErrMismatch},
		{in: "", err: ErrUnexpectedEOF},
	} {
		dt, err := ParseRFC3339DateTime(test.in)
		if test.err != nil {
			if !errors.Is(err, test.err) {
				t.Errorf("%s[%d] failed: %q: want %v, got %v", t.Name(), idx, test.in, test.err, err)
			}
			continue
		}
		if err != nil || dt.String() != test.want {
			t.Errorf("%s[%d] failed: want %s, got (%s, %v)", t.Name(), idx, test.want, dt, err)
		}
	}
}

func TestParseRFC3339_trailingOffset(t *testing.T) {
	var le LexicalError
	_, err := ParseRFC3339Date("2023-09-17junk")
	if !errors.As(err, &le) || le.Offset != 10 || string(le.Rest) != "junk" {
		t.Errorf("%s failed: got %v", t.Name(), err)
	}
}

func TestParseRFC3339Time(t *testing.T) {
	if pt, err := ParseRFC3339Time("09:08:58"); err != nil || pt.String() != "09:08:58.0" {
		t.Errorf("%s failed: got (%s, %v)", t.Name(), pt, err)
	}
	if _, err := ParseRFC3339Time("090858"); !errors.Is(err, ErrMismatch) {
		t.Errorf("%s failed: basic format accepted: %v", t.Name(), err)
	}
}

func TestParseISO8601(t *testing.T) {
	for idx, in := range []string{"2023-09-17", "20230917", "2023-0917"} {
		if d, err := ParseISO8601Date(in); err != nil || d.String() != "2023-09-17" {
			t.Errorf("%s[%d] failed: got (%s, %v)", t.Name(), idx, d, err)
		}
	}

	dt, err := ParseISO8601DateTime("20230917T090858.5")
	if err != nil || dt.String() != "2023-09-17T09:08:58.5" {
		t.Errorf("%s failed: got (%s, %v)", t.Name(), dt, err)
	}
	if _, err = ParseISO8601DateTime("2023-09-17T09:08:58Z"); !errors.Is(err, ErrMismatch) {
		t.Errorf("%s failed: offset accepted by local parser: %v", t.Name(), err)
	}

	sdt, err := ParseISO8601ShiftedDateTime("20230917T090858+0100")
	if err != nil || sdt.String() != "2023-09-17T09:08:58.0+01:00" {
		t.Errorf("%s failed: got (%s, %v)", t.Name(), sdt, err)
	}
	if _, err = ParseISO8601ShiftedDateTime("2023-09-17T09:08:58-00:00"); !errors.Is(err, ErrNegativeZero) {
		t.Errorf("%s failed: negative zero accepted: %v", t.Name(), err)
	}
	if _, err = ParseISO8601ShiftedDateTime("2023-09-17t09:08:58Z"); !errors.Is(err, ErrMismatch) {
		t.Errorf("%s failed: lowercase t accepted: %v", t.Name(), err)
	}
}

func TestParse_constraints(t *testing.T) {
	utcOnly := PropertyConstraint(func(v PreciseShiftedDateTime) error {
		if !v.Timeshift().IsUTC() {
			return errors.New("offset must be Z")
		}
		return nil
	})

	lo, _ := ParseISO8601DateTime("2023-01-01T00:00:00")
	hi, _ := ParseISO8601DateTime("2023-12-31T23:59:59.999999999")
	in2023 := LiftConstraint(PreciseShiftedDateTime.PreciseLocalDateTime,
		BetweenConstraint(lo, hi))

	for idx, test := range []struct {
		in string
		ok bool
	}{
		{"2023-09-17T09:08:58Z", true},
		{"2023-09-17T09:08:58+01:00", false},
		{"2024-01-01T00:00:00Z", false},
		{"2022-12-31T23:59:59.999999999Z", false},
	} {
		dt, err := ParseRFC3339DateTime(test.in, utcOnly, in2023)
		if test.ok != (err == nil) {
			t.Errorf("%s[%d] failed: %q: got %v", t.Name(), idx, test.in, err)
		}
		if err != nil && dt != (PreciseShiftedDateTime{}) {
			t.Errorf("%s[%d] failed: value returned alongside error", t.Name(), idx)
		}
	}

	// a nil constraint is skipped
	if _, err := ParseRFC3339Date("2023-09-17", nil); err != nil {
		t.Errorf("%s failed: %v", t.Name(), err)
	}
}
