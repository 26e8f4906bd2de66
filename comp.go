package dtparse

/*
comp.go implements the range-checked component values from which all
composite date and time values are assembled.
*/

import (
	"math"

	"golang.org/x/exp/constraints"
)

/*
Component is qualified by all range-checked integer components, which is
to say every [Element] except [Timeshift].
*/
type Component interface {
	Element
	Int() int
}

/*
component is embedded by every concrete [Component] type.
*/
type component struct{ v int32 }

/*
Int returns the integer value of the receiver instance.
*/
func (r component) Int() int { return int(r.v) }

func (r component) isElement() {}

func (r component) cmp(o component) int {
	switch {
	case r.v < o.v:
		return -1
	case r.v > o.v:
		return 1
	}
	return 0
}

/*
bounds describes the closed interval accepted by one kind of component.
*/
type bounds struct {
	kind ElementKind
	lo   int64
	hi   int64
	in   Constraint[int64]
}

func newBounds(kind ElementKind, lo, hi int64) bounds {
	return bounds{kind: kind, lo: lo, hi: hi, in: RangeConstraint(lo, hi)}
}

var (
	monthBounds      = newBounds(KindMonth, 1, 12)
	dayBounds        = newBounds(KindDay, 1, 31)
	hourBounds       = newBounds(KindHour, 0, 24)
	minuteBounds     = newBounds(KindMinute, 0, 60)
	secondBounds     = newBounds(KindSecond, 0, 61)
	nanosecondBounds = newBounds(KindNanosecond, 0, 999_999_999)
)

/*
checkBounds is the single range check shared by every component
constructor, for any integer width.
*/
func checkBounds[T constraints.Integer](b bounds, v T) (int64, error) {
	var n int64
	if v < 0 {
		n = int64(v)
	} else if u := uint64(v); u > math.MaxInt64 {
		return 0, errorRange(b.kind, math.MaxInt64)
	} else {
		n = int64(u)
	}

	if err := b.in(n); err != nil {
		return 0, errorRange(b.kind, n)
	}
	return n, nil
}

/*
Convert returns the value of c as an instance of integer type T,
failing if T cannot represent it.
*/
func Convert[T constraints.Integer](c Component) (T, error) {
	n := int64(c.Int())
	t := T(n)
	if int64(t) != n || (t < 0) != (n < 0) {
		return 0, errorRange(c.Kind(), n)
	}
	return t, nil
}

/*
YearKind describes the width and sign policy of a [Year]. The zero value
is equivalent to [SimpleYear].
*/
type YearKind struct {
	Digits int  `yaml:"digits"`
	Signed bool `yaml:"signed"`
}

/*
SimpleYear describes the four digit, non-negative year used by RFC 3339.
*/
var SimpleYear = YearKind{Digits: 4}

/*
ExtendedYear returns a [YearKind] of n digits bearing an explicit sign,
as used by the expanded representations of ISO 8601. n must fall within
four (4) and nine (9), inclusive.
*/
func ExtendedYear(n int) YearKind { return YearKind{Digits: n, Signed: true} }

func (r YearKind) norm() YearKind {
	if r.Digits == 0 {
		return SimpleYear
	}
	return r
}

/*
Valid returns a Boolean value indicative of a usable digit width.
*/
func (r YearKind) Valid() bool {
	d := r.norm().Digits
	return 4 <= d && d <= 9
}

/*
String returns "simple", "extended:N" or "unsigned:N".
*/
func (r YearKind) String() string {
	r = r.norm()
	switch {
	case r.Signed:
		return "extended:" + itoa(r.Digits)
	case r.Digits != 4:
		return "unsigned:" + itoa(r.Digits)
	}
	return "simple"
}

func (r YearKind) bounds() bounds {
	r = r.norm()
	hi := int64(math.Pow10(r.Digits)) - 1
	lo := int64(0)
	if r.Signed {
		lo = -hi
	}
	return newBounds(KindYear, lo, hi)
}

/*
Year implements a calendar year of a particular [YearKind].
*/
type Year struct {
	component
	kind YearKind
}

/*
NewYear returns a four digit, non-negative [Year] (0-9999) alongside an
error following an attempt to range-check v.
*/
func NewYear[T constraints.Integer](v T) (Year, error) {
	return NewYearOf(SimpleYear, v)
}

/*
NewYearOf returns a [Year] of the specified [YearKind] alongside an error
following an attempt to range-check v.
*/
func NewYearOf[T constraints.Integer](kind YearKind, v T) (Year, error) {
	if !kind.Valid() {
		return Year{}, errorRange(KindYear, int64(kind.Digits))
	}
	kind = kind.norm()
	n, err := checkBounds(kind.bounds(), v)
	if err != nil {
		return Year{}, err
	}
	return Year{component{int32(n)}, kind}, nil
}

/*
YearKind returns the width and sign policy of the receiver instance.
*/
func (r Year) YearKind() YearKind { return r.kind.norm() }

/*
Kind returns [KindYear].
*/
func (r Year) Kind() ElementKind { return KindYear }

/*
Compare returns -1, 0 or 1 when the receiver is less than, equal to or
greater than o, respectively. The [YearKind] is not considered.
*/
func (r Year) Compare(o Year) int { return r.cmp(o.component) }

/*
String returns the zero-padded form of the receiver instance. Extended
years always bear a leading sign.
*/
func (r Year) String() string {
	k := r.kind.norm()
	if !k.Signed {
		return pad(uint64(r.v), k.Digits)
	}
	sign, mag := "+", int64(r.v)
	if mag < 0 {
		sign, mag = "-", -mag
	}
	return sign + pad(uint64(mag), k.Digits)
}

/*
Month implements a month of the year (1-12).
*/
type Month struct{ component }

/*
NewMonth returns an instance of [Month] alongside an error following an
attempt to range-check v.
*/
func NewMonth[T constraints.Integer](v T) (Month, error) {
	n, err := checkBounds(monthBounds, v)
	return Month{component{int32(n)}}, err
}

func (r Month) Kind() ElementKind   { return KindMonth }
func (r Month) Compare(o Month) int { return r.cmp(o.component) }
func (r Month) String() string      { return pad(uint64(r.v), 2) }

/*
Day implements a day of the month (1-31). No check against the length
of any particular month is made.
*/
type Day struct{ component }

/*
NewDay returns an instance of [Day] alongside an error following an
attempt to range-check v.
*/
func NewDay[T constraints.Integer](v T) (Day, error) {
	n, err := checkBounds(dayBounds, v)
	return Day{component{int32(n)}}, err
}

func (r Day) Kind() ElementKind { return KindDay }
func (r Day) Compare(o Day) int { return r.cmp(o.component) }
func (r Day) String() string    { return pad(uint64(r.v), 2) }

/*
Hour implements an hour of the day (0-24). The value 24 is permitted to
express the end-of-day boundary.
*/
type Hour struct{ component }

/*
NewHour returns an instance of [Hour] alongside an error following an
attempt to range-check v.
*/
func NewHour[T constraints.Integer](v T) (Hour, error) {
	n, err := checkBounds(hourBounds, v)
	return Hour{component{int32(n)}}, err
}

func (r Hour) Kind() ElementKind  { return KindHour }
func (r Hour) Compare(o Hour) int { return r.cmp(o.component) }
func (r Hour) String() string     { return pad(uint64(r.v), 2) }

/*
Minute implements a minute of the hour (0-60).
*/
type Minute struct{ component }

/*
NewMinute returns an instance of [Minute] alongside an error following an
attempt to range-check v.
*/
func NewMinute[T constraints.Integer](v T) (Minute, error) {
	n, err := checkBounds(minuteBounds, v)
	return Minute{component{int32(n)}}, err
}

func (r Minute) Kind() ElementKind    { return KindMinute }
func (r Minute) Compare(o Minute) int { return r.cmp(o.component) }
func (r Minute) String() string       { return pad(uint64(r.v), 2) }

/*
Second implements a second of the minute (0-61), leaving room for the
leap second slots.
*/
type Second struct{ component }

/*
NewSecond returns an instance of [Second] alongside an error following an
attempt to range-check v.
*/
func NewSecond[T constraints.Integer](v T) (Second, error) {
	n, err := checkBounds(secondBounds, v)
	return Second{component{int32(n)}}, err
}

func (r Second) Kind() ElementKind    { return KindSecond }
func (r Second) Compare(o Second) int { return r.cmp(o.component) }
func (r Second) String() string       { return pad(uint64(r.v), 2) }

/*
Nanosecond implements the sub-second fraction of a [Second], expressed
in nanoseconds (0-999999999).
*/
type Nanosecond struct{ component }

/*
NewNanosecond returns an instance of [Nanosecond] alongside an error
following an attempt to range-check v.
*/
func NewNanosecond[T constraints.Integer](v T) (Nanosecond, error) {
	n, err := checkBounds(nanosecondBounds, v)
	return Nanosecond{component{int32(n)}}, err
}

func (r Nanosecond) Kind() ElementKind        { return KindNanosecond }
func (r Nanosecond) Compare(o Nanosecond) int { return r.cmp(o.component) }

/*
String returns the fractional digits of the receiver instance with any
trailing zeros removed, e.g. "1234" for 123400000. A zero value yields
"0".
*/
func (r Nanosecond) String() string {
	if r.v == 0 {
		return "0"
	}
	return trimR(pad(uint64(r.v), 9), "0")
}
