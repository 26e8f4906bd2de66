package dtparse

/*
dur.go implements the ISO 8601 duration tokens ("quantity + unit") and
the periods composed of them, e.g. "P1Y2M10DT2H30M5S".
*/

import (
	"math"
	"time"
)

/*
Unit identifies the designator of a [Quantity].
*/
type Unit uint8

const (
	invalidUnit Unit = iota
	UnitYear
	UnitMonth
	UnitWeek
	UnitDay
	UnitHour
	UnitMinute
	UnitSecond
)

var unitNames = [...]string{
	invalidUnit: "invalid",
	UnitYear:    "year",
	UnitMonth:   "month",
	UnitWeek:    "week",
	UnitDay:     "day",
	UnitHour:    "hour",
	UnitMinute:  "minute",
	UnitSecond:  "second",
}

var unitDesignators = [...]byte{
	UnitYear:   'Y',
	UnitMonth:  'M',
	UnitWeek:   'W',
	UnitDay:    'D',
	UnitHour:   'H',
	UnitMinute: 'M',
	UnitSecond: 'S',
}

var unitLengths = [...]time.Duration{
	UnitWeek:   7 * 24 * time.Hour,
	UnitDay:    24 * time.Hour,
	UnitHour:   time.Hour,
	UnitMinute: time.Minute,
	UnitSecond: time.Second,
}

func (r Unit) valid() bool { return UnitYear <= r && r <= UnitSecond }

/*
String returns the lowercase name of the receiver instance.
*/
func (r Unit) String() string {
	if !r.valid() {
		return unitNames[invalidUnit]
	}
	return unitNames[r]
}

/*
Designator returns the ISO 8601 designator letter of the receiver, or
zero for an invalid unit. Note that both [UnitMonth] and [UnitMinute]
use "M".
*/
func (r Unit) Designator() byte {
	if !r.valid() {
		return 0
	}
	return unitDesignators[r]
}

/*
TimePart returns true for units which appear after the "T" of a period.
*/
func (r Unit) TimePart() bool { return r >= UnitHour && r.valid() }

// unitOf reads timePart only to disambiguate "M".
func unitOf(designator byte, timePart bool) Unit {
	if designator == 'M' {
		if timePart {
			return UnitMinute
		}
		return UnitMonth
	}
	for u := UnitYear; u <= UnitSecond; u++ {
		if unitDesignators[u] == designator {
			return u
		}
	}
	return invalidUnit
}

/*
Quantity implements a non-negative count of a [Unit], e.g. "10D".
*/
type Quantity struct {
	N    uint64
	Unit Unit
}

/*
String returns the "<n><designator>" form of the receiver instance.
*/
func (r Quantity) String() string {
	return fmtUint(r.N, 10) + string(r.Unit.Designator())
}

/*
Duration returns the receiver instance as a [time.Duration]. Years and
months have no fixed length and are refused, as are quantities which
overflow.
*/
func (r Quantity) Duration() (time.Duration, error) {
	if r.Unit == UnitYear || r.Unit == UnitMonth || !r.Unit.valid() {
		return 0, errorDuration(ErrNotFixedLength, r.String())
	}
	unit := unitLengths[r.Unit]
	if r.N > uint64(math.MaxInt64/int64(unit)) {
		return 0, errorDuration(ErrOutOfRange, r.String())
	}
	return time.Duration(r.N) * unit, nil
}

/*
ParseQuantity returns an instance of [Quantity] alongside an error
following an attempt to read s as one or more digits followed by a
single designator. timePart selects the reading of "M": minute when
true, month otherwise.
*/
func ParseQuantity(s string, timePart bool) (q Quantity, err error) {
	var rest []byte
	if q, rest, err = scanQuantity([]byte(s), timePart); err == nil && len(rest) > 0 {
		err = errorDuration(ErrDesignator, s)
	}
	if err != nil {
		q = Quantity{}
	}
	return
}

func scanQuantity(in []byte, timePart bool) (q Quantity, rest []byte, err error) {
	var digits []byte
	if digits, rest, err = takeWhile(isDigit, in); err != nil {
		err = errorDuration(err, string(in))
		return
	}
	if len(digits) == 0 {
		err = errorDuration(ErrInvalidNumber, string(in))
		return
	}
	if q.N, err = parseDecimal(digits); err != nil {
		err = errorDuration(ErrOutOfRange, string(in))
		return
	}
	if len(rest) == 0 {
		err = errorDuration(ErrDesignator, string(in))
		return
	}
	if q.Unit = unitOf(rest[0], timePart); q.Unit == invalidUnit {
		err = errorDuration(ErrDesignator, string(in))
		return
	}
	rest = rest[1:]
	debugDuration(newLItem(q.String(), "quantity"))
	return
}

/*
Period implements an ISO 8601 duration in the "PnYnMnWnDTnHnMnS" format,
being an ordered sequence of [Quantity] instances with strictly
increasing units.
*/
type Period struct {
	q []Quantity
}

/*
NewPeriod returns an instance of [Period] alongside an error following
an attempt to order-check qs. At least one [Quantity] is required.
*/
func NewPeriod(qs ...Quantity) (Period, error) {
	if len(qs) == 0 {
		return Period{}, errorDuration(ErrEmptyPeriod, "")
	}
	for i, q := range qs {
		if !q.Unit.valid() || (i > 0 && q.Unit <= qs[i-1].Unit) {
			return Period{}, errorDuration(ErrDesignator, q.String())
		}
	}
	return Period{q: append([]Quantity(nil), qs...)}, nil
}

/*
Quantities returns a copy of the quantities of the receiver instance.
*/
func (r Period) Quantities() []Quantity {
	return append([]Quantity(nil), r.q...)
}

/*
Duration returns the sum of the quantities of the receiver instance.
Periods including years or months have no fixed length.
*/
func (r Period) Duration() (d time.Duration, err error) {
	for _, q := range r.q {
		var qd time.Duration
		if qd, err = q.Duration(); err != nil {
			return 0, err
		}
		if d > math.MaxInt64-qd {
			return 0, errorDuration(ErrOutOfRange, r.String())
		}
		d += qd
	}
	return
}

/*
String returns the "P...T..." form of the receiver instance.
*/
func (r Period) String() string {
	b := newStrBuilder()
	b.WriteByte('P')
	var inTime bool
	for _, q := range r.q {
		if q.Unit.TimePart() && !inTime {
			b.WriteByte('T')
			inTime = true
		}
		b.WriteString(q.String())
	}
	return b.String()
}

/*
ParsePeriod returns an instance of [Period] alongside an error following
an attempt to read s. Designators must appear in descending order of
magnitude, each at most once; a "T" must be followed by at least one
time quantity.
*/
func ParsePeriod(s string) (p Period, err error) {
	var rest []byte
	if rest, err = matchLiteral("P", []byte(s)); err != nil {
		return Period{}, errorDuration(ErrDesignator, s)
	}

	var (
		qs       []Quantity
		timePart bool
	)
	for len(rest) > 0 {
		if rest[0] == 'T' {
			if timePart || len(rest) == 1 {
				return Period{}, errorDuration(ErrDesignator, s)
			}
			timePart, rest = true, rest[1:]
			continue
		}

		var q Quantity
		if q, rest, err = scanQuantity(rest, timePart); err != nil {
			return Period{}, errorDuration(err.(DurationError).Err, s)
		}
		if q.Unit.TimePart() != timePart {
			return Period{}, errorDuration(ErrDesignator, s)
		}
		qs = append(qs, q)
	}

	if p, err = NewPeriod(qs...); err != nil {
		var de DurationError
		de, _ = err.(DurationError)
		err = errorDuration(de.Err, s)
	}
	return
}
