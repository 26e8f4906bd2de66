package dtparse

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

/*
Sentinel errors. Every error returned by this package wraps exactly
one of these, which may be tested via [errors.Is].
*/
var (
	// lexical
	ErrUnexpectedEOF error = mkerr("unexpected end of input")
	ErrInvalidUTF8   error = mkerr("invalid UTF-8 sequence")
	ErrMismatch      error = mkerr("input does not match expected token")

	// numeric
	ErrInvalidNumber error = mkerr("invalid number format")

	// range
	ErrOutOfRange      error = mkerr("value out of range")
	ErrFractionTooLong error = mkerr("fractional seconds exceed nine digits")
	ErrNegativeZero    error = mkerr("negative zero offset not permitted")

	// assembly
	ErrInsufficientElements error = mkerr("insufficient elements")
	ErrUnexpectedElement    error = mkerr("unexpected element")
	ErrQueueFull            error = mkerr("element queue is full")
	ErrParserConsumed       error = mkerr("parser already consumed by a build")

	// adapter
	ErrNotRepresentable error = mkerr("value has no time.Time equivalent")
	ErrNonZeroOffset    error = mkerr("offset is not zero")

	// duration
	ErrNotFixedLength error = mkerr("unit has no fixed length")
	ErrEmptyPeriod    error = mkerr("period must contain at least one component")
	ErrDesignator     error = mkerr("unknown or misplaced designator")

	// grammar
	ErrUnknownKeyword error = mkerr("unknown grammar keyword")
)

/*
LexicalError describes a failure to match the expected byte sequence:
premature end of input, invalid UTF-8 or a literal/token mismatch.
*/
type LexicalError struct {
	Err    error  // ErrUnexpectedEOF, ErrInvalidUTF8 or ErrMismatch
	Needed int    // bytes still required; ErrUnexpectedEOF only
	Offset int    // failure position relative to the input handed to the parser
	Rest   []byte // unconsumed input at the point of failure
}

func (r LexicalError) Error() string {
	s := `LEXICAL ERROR: ` + r.Err.Error()
	if r.Err == ErrUnexpectedEOF {
		return s + " (" + itoa(r.Needed) + " more byte(s) needed)"
	}
	return s + " at offset " + itoa(r.Offset) + " near " + snippet(r.Rest, 8)
}

func (r LexicalError) Unwrap() error { return r.Err }

/*
NumericError describes a digit run which could not be read as an integer.
*/
type NumericError struct {
	Err  error
	Text string
}

func (r NumericError) Error() string {
	return `NUMERIC ERROR: ` + r.Err.Error() + ": " + snippet([]byte(r.Text), 16)
}

func (r NumericError) Unwrap() error { return r.Err }

/*
RangeError describes a value which fell outside the closed range of its
component, a fraction of more than nine digits, or a negative zero
offset rejected by the active [Grammar].
*/
type RangeError struct {
	Err   error
	Kind  ElementKind
	Value int64
}

func (r RangeError) Error() string {
	s := `RANGE ERROR: ` + r.Err.Error() + " for " + r.Kind.String()
	if r.Err == ErrOutOfRange {
		s += ": " + fmtInt(r.Value, 10)
	}
	return s
}

func (r RangeError) Unwrap() error { return r.Err }

/*
AssemblyError describes a failure to build a composite value from the
elements queued within a [Parser].
*/
type AssemblyError struct {
	Err      error
	Expected ElementKind
	Got      Element // nil unless Err is ErrUnexpectedElement
}

func (r AssemblyError) Error() string {
	s := `ASSEMBLY ERROR: ` + r.Err.Error()
	switch r.Err {
	case ErrUnexpectedElement:
		s += ": expected " + r.Expected.String() + ", got " +
			r.Got.Kind().String() + " " + r.Got.String()
	case ErrInsufficientElements:
		s += ": expected " + r.Expected.String()
	}
	return s
}

func (r AssemblyError) Unwrap() error { return r.Err }

/*
types which implement the error interface for the outer layers.
*/
type (
	AdapterError  struct{ Err error }
	DurationError struct {
		Err   error
		Input string
	}
	GrammarError struct {
		Err     error
		Keyword string
	}
)

func (r AdapterError) Error() string  { return `ADAPTER ERROR: ` + r.Err.Error() }
func (r DurationError) Error() string { return `DURATION ERROR: ` + r.Err.Error() + ": " + snippet([]byte(r.Input), 24) }
func (r GrammarError) Error() string  { return `GRAMMAR ERROR: ` + r.Err.Error() + ": " + r.Keyword }

func (r AdapterError) Unwrap() error  { return r.Err }
func (r DurationError) Unwrap() error { return r.Err }
func (r GrammarError) Unwrap() error  { return r.Err }

func errorEOF(needed int) error { return LexicalError{Err: ErrUnexpectedEOF, Needed: needed} }

func errorMismatch(rest []byte) error { return LexicalError{Err: ErrMismatch, Rest: rest} }

func errorRange(kind ElementKind, v int64) error {
	return RangeError{Err: ErrOutOfRange, Kind: kind, Value: v}
}

func errorAdapter(e error) error { return AdapterError{Err: e} }

func errorDuration(e error, in string) error { return DurationError{Err: e, Input: in} }

// isMismatch reports whether err is a non-fatal token mismatch, which
// permits an alternative production to be attempted.
func isMismatch(err error) bool {
	le, ok := err.(LexicalError)
	return ok && le.Err == ErrMismatch
}

// locate stamps the offset of a lexical failure relative to in.
func locate(err error, in []byte) error {
	if le, ok := err.(LexicalError); ok && le.Err != ErrUnexpectedEOF {
		if off := len(in) - len(le.Rest); off >= 0 {
			le.Offset = off
		}
		return le
	}
	return err
}
