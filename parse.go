package dtparse

/*
parse.go implements the Parser type, a sequential state machine which
walks an input byte slice left to right and queues the validated
components it encounters.
*/

/*
ParserState describes the lifecycle position of a [Parser].
*/
type ParserState uint8

const (
	StateEmpty    ParserState = iota // nothing parsed yet
	StatePartial                     // one or more fields parsed
	StateComplete                    // a composite production succeeded
	StateFailed                      // absorbing; the recorded error is returned by every call
	StateConsumed                    // a build method has drained the parser
)

var stateNames = [...]string{
	StateEmpty:    "empty",
	StatePartial:  "partial",
	StateComplete: "complete",
	StateFailed:   "failed",
	StateConsumed: "consumed",
}

func (r ParserState) String() string {
	if int(r) < len(stateNames) {
		return stateNames[r]
	}
	return "unknown"
}

/*
Parser implements the date and time grammar state machine. Each Parse*
method consumes a prefix of its input, queues the resulting elements and
returns the unconsumed remainder. A Build* method (see build.go) then
drains the queue into a composite value.

The first failure aborts the parse: the queue is discarded, the parser
enters [StateFailed] and every subsequent call returns the same error.

Instances are not safe for concurrent use. Each goroutine should derive
its own instance from a [Grammar].
*/
type Parser struct {
	grammar Grammar
	q       queue
	state   ParserState
	err     error
}

/*
NewParser returns an empty *[Parser] using the [ISO8601] grammar.
*/
func NewParser() *Parser { return ISO8601().NewParser() }

/*
NewParser returns an empty *[Parser] bound to a copy of the receiver
instance.
*/
func (r Grammar) NewParser() *Parser {
	r.Year = r.Year.norm()
	debugGrammar(newLItem(r, "new parser"))
	return &Parser{grammar: r}
}

/*
Grammar returns the grammar bound to the receiver instance.
*/
func (r *Parser) Grammar() Grammar { return r.grammar }

/*
State returns the current [ParserState] of the receiver instance.
*/
func (r *Parser) State() ParserState { return r.state }

/*
Err returns the failure recorded by the receiver instance, if any.
*/
func (r *Parser) Err() error { return r.err }

/*
Len returns the number of queued elements.
*/
func (r *Parser) Len() int { return r.q.len() }

/*
Elements returns a copy of the queued elements, front first.
*/
func (r *Parser) Elements() []Element { return r.q.slice() }

func (r *Parser) ready() error {
	switch r.state {
	case StateFailed:
		return r.err
	case StateConsumed:
		return AssemblyError{Err: ErrParserConsumed}
	}
	return nil
}

func (r *Parser) fail(err error) error {
	r.q.reset()
	r.state = StateFailed
	r.err = err
	debugInfo(newLItem(err, "parse failed"))
	return err
}

type production func([]byte) ([]byte, error)

/*
run executes step against in and advances the state. complete marks
step as a composite production.
*/
func (r *Parser) run(in []byte, complete bool, step production) ([]byte, error) {
	if err := r.ready(); err != nil {
		return in, err
	}
	rest, err := step(in)
	if err != nil {
		return in, r.fail(locate(err, in))
	}

	switch {
	case complete:
		r.state = StateComplete
	case r.q.len() > 0:
		r.state = StatePartial
	}
	return rest, nil
}

// chain runs steps in order, committing to each.
func chain(in []byte, steps ...production) (rest []byte, err error) {
	rest = in
	for _, step := range steps {
		if rest, err = step(rest); err != nil {
			return in, err
		}
	}
	return
}

/*
ParseYear parses a [Year] of the [YearKind] configured in the bound
[Grammar]. Extended years may carry a leading "+" or "-" sign.
*/
func (r *Parser) ParseYear(in []byte) ([]byte, error) { return r.run(in, false, r.scanYear) }

/*
ParseMonth parses a two digit [Month].
*/
func (r *Parser) ParseMonth(in []byte) ([]byte, error) { return r.run(in, false, r.scanMonth) }

/*
ParseDay parses a two digit [Day].
*/
func (r *Parser) ParseDay(in []byte) ([]byte, error) { return r.run(in, false, r.scanDay) }

/*
ParseHour parses a two digit [Hour].
*/
func (r *Parser) ParseHour(in []byte) ([]byte, error) { return r.run(in, false, r.scanHour) }

/*
ParseMinute parses a two digit [Minute].
*/
func (r *Parser) ParseMinute(in []byte) ([]byte, error) { return r.run(in, false, r.scanMinute) }

/*
ParseSecond parses a two digit [Second].
*/
func (r *Parser) ParseSecond(in []byte) ([]byte, error) { return r.run(in, false, r.scanSecond) }

/*
ParseFraction parses an optional "." followed by one to nine digits,
queueing a [Nanosecond]. When no "." is present, a zero [Nanosecond] is
queued and no input is consumed.
*/
func (r *Parser) ParseFraction(in []byte) ([]byte, error) { return r.run(in, false, r.scanFraction) }

/*
ParseTimezoneOffset parses a UTC designator or a signed "HH:MM" offset,
queueing a [Timeshift].
*/
func (r *Parser) ParseTimezoneOffset(in []byte) ([]byte, error) {
	return r.run(in, false, r.scanOffset)
}

/*
ParseDateSeparator consumes "-", which may be absent if the bound
[Grammar] permits an empty date separator.
*/
func (r *Parser) ParseDateSeparator(in []byte) ([]byte, error) {
	return r.run(in, false, r.scanDateSep)
}

/*
ParseTimeSeparator consumes ":", which may be absent if the bound
[Grammar] permits an empty time separator.
*/
func (r *Parser) ParseTimeSeparator(in []byte) ([]byte, error) {
	return r.run(in, false, r.scanTimeSep)
}

/*
ParseDateTimeSeparator consumes "T", or "t" and " " where the bound
[Grammar] permits them.
*/
func (r *Parser) ParseDateTimeSeparator(in []byte) ([]byte, error) {
	return r.run(in, false, r.scanDateTimeSep)
}

/*
ParseDate parses year, [separator], month, [separator], day.
*/
func (r *Parser) ParseDate(in []byte) ([]byte, error) { return r.run(in, true, r.scanDate) }

/*
ParseTime parses hour, [separator], minute, [separator], second.
*/
func (r *Parser) ParseTime(in []byte) ([]byte, error) { return r.run(in, true, r.scanTime) }

/*
ParsePreciseLocalTime parses a time followed by an optional fraction.
*/
func (r *Parser) ParsePreciseLocalTime(in []byte) ([]byte, error) {
	return r.run(in, true, r.scanPreciseLocalTime)
}

/*
ParseLocalDateTime parses a date, a date/time separator and a time.
*/
func (r *Parser) ParseLocalDateTime(in []byte) ([]byte, error) {
	return r.run(in, true, r.scanLocalDateTime)
}

/*
ParsePreciseLocalDateTime parses a local date-time followed by an
optional fraction.
*/
func (r *Parser) ParsePreciseLocalDateTime(in []byte) ([]byte, error) {
	return r.run(in, true, r.scanPreciseLocalDateTime)
}

/*
ParseShiftedDateTime parses a local date-time followed by a timezone
offset.
*/
func (r *Parser) ParseShiftedDateTime(in []byte) ([]byte, error) {
	return r.run(in, true, r.scanShiftedDateTime)
}

/*
ParsePreciseShiftedDateTime parses a local date-time, an optional
fraction and a timezone offset. This is the RFC 3339 "date-time"
production.
*/
func (r *Parser) ParsePreciseShiftedDateTime(in []byte) ([]byte, error) {
	return r.run(in, true, r.scanPreciseShiftedDateTime)
}

func (r *Parser) scanDate(in []byte) ([]byte, error) {
	return chain(in, r.scanYear, r.scanDateSep, r.scanMonth, r.scanDateSep, r.scanDay)
}

func (r *Parser) scanTime(in []byte) ([]byte, error) {
	return chain(in, r.scanHour, r.scanTimeSep, r.scanMinute, r.scanTimeSep, r.scanSecond)
}

func (r *Parser) scanPreciseLocalTime(in []byte) ([]byte, error) {
	return chain(in, r.scanTime, r.scanFraction)
}

func (r *Parser) scanLocalDateTime(in []byte) ([]byte, error) {
	return chain(in, r.scanDate, r.scanDateTimeSep, r.scanTime)
}

func (r *Parser) scanPreciseLocalDateTime(in []byte) ([]byte, error) {
	return chain(in, r.scanLocalDateTime, r.scanFraction)
}

func (r *Parser) scanShiftedDateTime(in []byte) ([]byte, error) {
	return chain(in, r.scanLocalDateTime, r.scanOffset)
}

func (r *Parser) scanPreciseShiftedDateTime(in []byte) ([]byte, error) {
	return chain(in, r.scanPreciseLocalDateTime, r.scanOffset)
}

func (r *Parser) push(e Element) error {
	if err := r.q.push(e); err != nil {
		return err
	}
	debugField(e)
	return nil
}

/*
scanField reads n digits and queues the component built by mk.
*/
func scanField[T Element](r *Parser, n int, in []byte, mk func(uint64) (T, error)) ([]byte, error) {
	v, rest, err := parseFixedDigits(n, in)
	if err != nil {
		return in, err
	}
	e, err := mk(v)
	if err == nil {
		err = r.push(e)
	}
	if err != nil {
		return in, err
	}
	return rest, nil
}

func (r *Parser) scanYear(in []byte) ([]byte, error) {
	kind := r.grammar.Year
	if !kind.Signed {
		return scanField(r, kind.Digits, in, func(v uint64) (Year, error) {
			return NewYearOf(kind, v)
		})
	}

	neg, body := false, in
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		neg, body = body[0] == '-', body[1:]
	}
	rest, err := scanField(r, kind.Digits, body, func(v uint64) (Year, error) {
		n := int64(v)
		if neg {
			n = -n
		}
		return NewYearOf(kind, n)
	})
	if err != nil {
		return in, err
	}
	return rest, nil
}

func (r *Parser) scanMonth(in []byte) ([]byte, error) {
	return scanField(r, 2, in, NewMonth[uint64])
}

func (r *Parser) scanDay(in []byte) ([]byte, error) {
	return scanField(r, 2, in, NewDay[uint64])
}

func (r *Parser) scanHour(in []byte) ([]byte, error) {
	return scanField(r, 2, in, NewHour[uint64])
}

func (r *Parser) scanMinute(in []byte) ([]byte, error) {
	return scanField(r, 2, in, NewMinute[uint64])
}

func (r *Parser) scanSecond(in []byte) ([]byte, error) {
	return scanField(r, 2, in, NewSecond[uint64])
}

/*
scanSeparator consumes lit. An optional separator may be absent, in
which case no input is consumed.
*/
func scanSeparator(lit string, optional bool, in []byte) ([]byte, error) {
	rest, err := matchLiteral(lit, in)
	if err != nil && optional {
		return in, nil
	}
	return rest, err
}

func (r *Parser) scanDateSep(in []byte) ([]byte, error) {
	return scanSeparator("-", r.grammar.EmptyDateSeparator, in)
}

func (r *Parser) scanTimeSep(in []byte) ([]byte, error) {
	return scanSeparator(":", r.grammar.EmptyTimeSeparator, in)
}

func (r *Parser) scanDateTimeSep(in []byte) ([]byte, error) {
	if len(in) == 0 {
		return in, errorEOF(1)
	}
	_, rest, err := matchAny(r.grammar.dateTimeSeparators(), in)
	if isMismatch(err) && r.grammar.SpaceSeparator {
		rest, err = matchLiteral(" ", in)
	}
	return rest, err
}

func (r *Parser) scanFraction(in []byte) ([]byte, error) {
	body, err := matchLiteral(".", in)
	if err != nil {
		// no fraction present
		return in, r.push(Nanosecond{})
	}

	digits, rest, err := takeWhile(isDigit, body)
	switch {
	case err != nil:
		return in, err
	case len(digits) == 0:
		return in, errorMismatch(body)
	case len(digits) > 9:
		return in, RangeError{Err: ErrFractionTooLong, Kind: KindNanosecond, Value: int64(len(digits))}
	}

	v, err := parseDecimal(digits)
	if err != nil {
		return in, err
	}
	for i := len(digits); i < 9; i++ {
		v *= 10
	}

	var ns Nanosecond
	if ns, err = NewNanosecond(v); err == nil {
		err = r.push(ns)
	}
	if err != nil {
		return in, err
	}
	return rest, nil
}

var offsetSigns = []string{"+", "-"}

func (r *Parser) scanOffset(in []byte) ([]byte, error) {
	if len(in) == 0 {
		return in, errorEOF(1)
	}
	if _, rest, err := matchAny(r.grammar.utcDesignators(), in); err == nil {
		if err = r.push(UTC()); err != nil {
			return in, err
		}
		return rest, nil
	}

	sign, rest, err := matchAny(offsetSigns, in)
	if err != nil {
		return in, err
	}

	var h, m uint64
	if h, rest, err = parseFixedDigits(2, rest); err != nil {
		return in, err
	}
	if rest, err = r.scanTimeSep(rest); err != nil {
		return in, err
	}
	if m, rest, err = parseFixedDigits(2, rest); err != nil {
		return in, err
	}

	nonNeg := sign == 0
	if !nonNeg && h == 0 && m == 0 && !r.grammar.NegativeZero {
		return in, RangeError{Err: ErrNegativeZero, Kind: KindTimeshift}
	}

	var hh Hour
	var mm Minute
	if hh, err = NewHour(h); err != nil {
		return in, err
	}
	if mm, err = NewMinute(m); err != nil {
		return in, err
	}
	if err = r.push(NewOffset(nonNeg, hh, mm)); err != nil {
		return in, err
	}
	return rest, nil
}
