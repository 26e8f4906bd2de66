package dtparse

import (
	"errors"
	"testing"
)

func TestError_strings(t *testing.T) {
	h, _ := NewHour(9)
	for idx, test := range []struct {
		err  error
		want string
	}{
		{errorEOF(2), "LEXICAL ERROR: unexpected end of input (2 more byte(s) needed)"},
		{LexicalError{Err: ErrMismatch, Offset: 4, Rest: []byte("/09/17")},
			`LEXICAL ERROR: input does not match expected token at offset 4 near "/09/17"`},
		{LexicalError{Err: ErrMismatch, Rest: []byte("2023-09-17T09:08:58Z")},
			`LEXICAL ERROR: input does not match expected token at offset 0 near "2023-09-"...`},
		{NumericError{Err: ErrInvalidNumber, Text: "1a"}, `NUMERIC ERROR: invalid number format: "1a"`},
		{errorRange(KindMonth, 13), "RANGE ERROR: value out of range for month: 13"},
		{RangeError{Err: ErrFractionTooLong, Kind: KindNanosecond, Value: 10},
			"RANGE ERROR: fractional seconds exceed nine digits for nanosecond"},
		{RangeError{Err: ErrNegativeZero, Kind: KindTimeshift},
			"RANGE ERROR: negative zero offset not permitted for timeshift"},
		{AssemblyError{Err: ErrUnexpectedElement, Expected: KindYear, Got: h},
			"ASSEMBLY ERROR: unexpected element: expected year, got hour 09"},
		{AssemblyError{Err: ErrInsufficientElements, Expected: KindDay},
			"ASSEMBLY ERROR: insufficient elements: expected day"},
		{AssemblyError{Err: ErrParserConsumed}, "ASSEMBLY ERROR: parser already consumed by a build"},
		{errorAdapter(ErrNotRepresentable), "ADAPTER ERROR: value has no time.Time equivalent"},
		{errorDuration(ErrNotFixedLength, "1Y"), `DURATION ERROR: unit has no fixed length: "1Y"`},
		{GrammarError{Err: ErrUnknownKeyword, Keyword: "bogus"}, "GRAMMAR ERROR: unknown grammar keyword: bogus"},
	} {
		if got := test.err.Error(); got != test.want {
			t.Errorf("%s[%d] failed:\n\twant: %s\n\tgot:  %s", t.Name(), idx, test.want, got)
		}
	}
}

func TestError_unwrap(t *testing.T) {
	for idx, test := range []struct {
		err  error
		want error
	}{
		{errorEOF(1), ErrUnexpectedEOF},
		{errorMismatch(nil), ErrMismatch},
		{NumericError{Err: ErrInvalidNumber}, ErrInvalidNumber},
		{errorRange(KindDay, 0), ErrOutOfRange},
		{AssemblyError{Err: ErrQueueFull}, ErrQueueFull},
		{errorAdapter(ErrNonZeroOffset), ErrNonZeroOffset},
		{errorDuration(errorEOF(1), ""), ErrUnexpectedEOF},
		{GrammarError{Err: ErrOutOfRange}, ErrOutOfRange},
	} {
		if !errors.Is(test.err, test.want) {
			t.Errorf("%s[%d] failed: %v does not wrap %v", t.Name(), idx, test.err, test.want)
		}
	}
}

func TestLocate(t *testing.T) {
	in := []byte("2023/09/17")
	err := locate(errorMismatch(in[4:]), in)
	if le := err.(LexicalError); le.Offset != 4 {
		t.Errorf("%s failed: want offset 4, got %d", t.Name(), le.Offset)
	}

	// end of input carries no position
	if le := locate(errorEOF(2), in).(LexicalError); le.Offset != 0 {
		t.Errorf("%s failed: EOF located at %d", t.Name(), le.Offset)
	}

	re := errorRange(KindDay, 0)
	if locate(re, in) != re {
		t.Errorf("%s failed: non-lexical error altered", t.Name())
	}

	if isMismatch(errorEOF(1)) || isMismatch(re) || !isMismatch(errorMismatch(nil)) {
		t.Errorf("%s failed: isMismatch misclassified", t.Name())
	}
}
