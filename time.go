package dtparse

/*
time.go implements the composite date and time types assembled by the
build methods of a Parser.
*/

/*
Temporal is the type set of all composite values:

  - [LocalDate]
  - [LocalTime]
  - [PreciseLocalTime]
  - [LocalDateTime]
  - [PreciseLocalDateTime]
  - [ShiftedDateTime]
  - [PreciseShiftedDateTime]
*/
type Temporal interface {
	LocalDate | LocalTime | PreciseLocalTime |
		LocalDateTime | PreciseLocalDateTime |
		ShiftedDateTime | PreciseShiftedDateTime
	String() string
}

func cmpChain(cs ...int) int {
	for _, c := range cs {
		if c != 0 {
			return c
		}
	}
	return 0
}

/*
LocalDate implements a calendar date without a time of day.
*/
type LocalDate struct {
	year  Year
	month Month
	day   Day
}

/*
NewLocalDate returns an instance of [LocalDate] assembled from the
specified components.
*/
func NewLocalDate(year Year, month Month, day Day) LocalDate {
	return LocalDate{year: year, month: month, day: day}
}

func (r LocalDate) Year() Year   { return r.year }
func (r LocalDate) Month() Month { return r.month }
func (r LocalDate) Day() Day     { return r.day }

/*
Compare returns -1, 0 or 1 when the receiver is less than, equal to or
greater than o, respectively.
*/
func (r LocalDate) Compare(o LocalDate) int {
	return cmpChain(r.year.Compare(o.year), r.month.Compare(o.month), r.day.Compare(o.day))
}

/*
String returns the "YYYY-MM-DD" form of the receiver instance.
*/
func (r LocalDate) String() string {
	return r.year.String() + "-" + r.month.String() + "-" + r.day.String()
}

/*
LocalTime implements a time of day at one second resolution, without
an offset.
*/
type LocalTime struct {
	hour   Hour
	minute Minute
	second Second
}

/*
NewLocalTime returns an instance of [LocalTime] assembled from the
specified components.
*/
func NewLocalTime(hour Hour, minute Minute, second Second) LocalTime {
	return LocalTime{hour: hour, minute: minute, second: second}
}

func (r LocalTime) Hour() Hour     { return r.hour }
func (r LocalTime) Minute() Minute { return r.minute }
func (r LocalTime) Second() Second { return r.second }

/*
Precise returns the receiver instance with a zero [Nanosecond].
*/
func (r LocalTime) Precise() PreciseLocalTime {
	return PreciseLocalTime{time: r}
}

func (r LocalTime) Compare(o LocalTime) int {
	return cmpChain(r.hour.Compare(o.hour), r.minute.Compare(o.minute), r.second.Compare(o.second))
}

/*
String returns the "HH:MM:SS" form of the receiver instance.
*/
func (r LocalTime) String() string {
	b := []byte("00:00:00")
	put2(b, 0, r.hour.Int())
	put2(b, 3, r.minute.Int())
	put2(b, 6, r.second.Int())
	return string(b)
}

/*
PreciseLocalTime implements a [LocalTime] with nanosecond resolution.
*/
type PreciseLocalTime struct {
	time       LocalTime
	nanosecond Nanosecond
}

/*
NewPreciseLocalTime returns an instance of [PreciseLocalTime] assembled
from the specified components.
*/
func NewPreciseLocalTime(t LocalTime, ns Nanosecond) PreciseLocalTime {
	return PreciseLocalTime{time: t, nanosecond: ns}
}

func (r PreciseLocalTime) LocalTime() LocalTime    { return r.time }
func (r PreciseLocalTime) Nanosecond() Nanosecond { return r.nanosecond }
func (r PreciseLocalTime) Hour() Hour             { return r.time.hour }
func (r PreciseLocalTime) Minute() Minute         { return r.time.minute }
func (r PreciseLocalTime) Second() Second         { return r.time.second }

func (r PreciseLocalTime) Compare(o PreciseLocalTime) int {
	return cmpChain(r.time.Compare(o.time), r.nanosecond.Compare(o.nanosecond))
}

/*
String returns the "HH:MM:SS.F" form of the receiver instance, where F
is the [Nanosecond] rendering. The fraction is always present.
*/
func (r PreciseLocalTime) String() string {
	return r.time.String() + "." + r.nanosecond.String()
}

/*
LocalDateTime implements a [LocalDate] and [LocalTime] pair without an
offset.
*/
type LocalDateTime struct {
	date LocalDate
	time LocalTime
}

/*
NewLocalDateTime returns an instance of [LocalDateTime] assembled from
the specified date and time.
*/
func NewLocalDateTime(d LocalDate, t LocalTime) LocalDateTime {
	return LocalDateTime{date: d, time: t}
}

func (r LocalDateTime) LocalDate() LocalDate { return r.date }
func (r LocalDateTime) LocalTime() LocalTime { return r.time }

/*
Precise returns the receiver instance with a zero [Nanosecond].
*/
func (r LocalDateTime) Precise() PreciseLocalDateTime {
	return PreciseLocalDateTime{date: r.date, time: r.time.Precise()}
}

func (r LocalDateTime) Compare(o LocalDateTime) int {
	return cmpChain(r.date.Compare(o.date), r.time.Compare(o.time))
}

/*
String returns the "YYYY-MM-DDTHH:MM:SS" form of the receiver instance.
*/
func (r LocalDateTime) String() string {
	return r.date.String() + "T" + r.time.String()
}

/*
PreciseLocalDateTime implements a [LocalDate] and [PreciseLocalTime]
pair without an offset.
*/
type PreciseLocalDateTime struct {
	date LocalDate
	time PreciseLocalTime
}

/*
NewPreciseLocalDateTime returns an instance of [PreciseLocalDateTime]
assembled from the specified date and time.
*/
func NewPreciseLocalDateTime(d LocalDate, t PreciseLocalTime) PreciseLocalDateTime {
	return PreciseLocalDateTime{date: d, time: t}
}

func (r PreciseLocalDateTime) LocalDate() LocalDate               { return r.date }
func (r PreciseLocalDateTime) PreciseLocalTime() PreciseLocalTime { return r.time }
func (r PreciseLocalDateTime) Nanosecond() Nanosecond             { return r.time.nanosecond }

/*
Truncate returns the receiver instance without its fraction.
*/
func (r PreciseLocalDateTime) Truncate() LocalDateTime {
	return LocalDateTime{date: r.date, time: r.time.time}
}

func (r PreciseLocalDateTime) Compare(o PreciseLocalDateTime) int {
	return cmpChain(r.date.Compare(o.date), r.time.Compare(o.time))
}

func (r PreciseLocalDateTime) String() string {
	return r.date.String() + "T" + r.time.String()
}

/*
ShiftedDateTime implements a [LocalDateTime] qualified by a [Timeshift].

No Compare method is provided, as ordering values of differing offsets
requires calendar arithmetic. Use [ShiftedDateTime.Time] instead.
*/
type ShiftedDateTime struct {
	local LocalDateTime
	shift Timeshift
}

/*
NewShiftedDateTime returns an instance of [ShiftedDateTime].
*/
func NewShiftedDateTime(dt LocalDateTime, ts Timeshift) ShiftedDateTime {
	return ShiftedDateTime{local: dt, shift: ts}
}

func (r ShiftedDateTime) LocalDateTime() LocalDateTime { return r.local }
func (r ShiftedDateTime) Timeshift() Timeshift         { return r.shift }

/*
Precise returns the receiver instance with a zero [Nanosecond].
*/
func (r ShiftedDateTime) Precise() PreciseShiftedDateTime {
	return PreciseShiftedDateTime{local: r.local.Precise(), shift: r.shift}
}

/*
String returns the "YYYY-MM-DDTHH:MM:SS" form of the receiver instance
followed by "Z" or "+HH:MM"/"-HH:MM".
*/
func (r ShiftedDateTime) String() string {
	return r.local.String() + r.shift.String()
}

/*
PreciseShiftedDateTime implements a [PreciseLocalDateTime] qualified by
a [Timeshift]. This is the RFC 3339 "date-time".
*/
type PreciseShiftedDateTime struct {
	local PreciseLocalDateTime
	shift Timeshift
}

/*
NewPreciseShiftedDateTime returns an instance of [PreciseShiftedDateTime].
*/
func NewPreciseShiftedDateTime(dt PreciseLocalDateTime, ts Timeshift) PreciseShiftedDateTime {
	return PreciseShiftedDateTime{local: dt, shift: ts}
}

func (r PreciseShiftedDateTime) PreciseLocalDateTime() PreciseLocalDateTime { return r.local }
func (r PreciseShiftedDateTime) Timeshift() Timeshift                       { return r.shift }

/*
Truncate returns the receiver instance without its fraction.
*/
func (r PreciseShiftedDateTime) Truncate() ShiftedDateTime {
	return ShiftedDateTime{local: r.local.Truncate(), shift: r.shift}
}

func (r PreciseShiftedDateTime) String() string {
	return r.local.String() + r.shift.String()
}

/*
MarshalText implementations return the canonical String form.
*/

func (r LocalDate) MarshalText() ([]byte, error)              { return []byte(r.String()), nil }
func (r LocalTime) MarshalText() ([]byte, error)              { return []byte(r.String()), nil }
func (r PreciseLocalTime) MarshalText() ([]byte, error)       { return []byte(r.String()), nil }
func (r LocalDateTime) MarshalText() ([]byte, error)          { return []byte(r.String()), nil }
func (r PreciseLocalDateTime) MarshalText() ([]byte, error)   { return []byte(r.String()), nil }
func (r ShiftedDateTime) MarshalText() ([]byte, error)        { return []byte(r.String()), nil }
func (r PreciseShiftedDateTime) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

/*
UnmarshalText implementations accept the lenient [RFC3339] grammar,
falling back to [ISO8601] for the basic format. The whole input must be
consumed.
*/

func (r *LocalDate) UnmarshalText(b []byte) error {
	return unmarshalText(r, b, (*Parser).ParseDate, (*Parser).BuildDate)
}

func (r *LocalTime) UnmarshalText(b []byte) error {
	return unmarshalText(r, b, (*Parser).ParseTime, (*Parser).BuildTime)
}

func (r *PreciseLocalTime) UnmarshalText(b []byte) error {
	return unmarshalText(r, b, (*Parser).ParsePreciseLocalTime, (*Parser).BuildPreciseLocalTime)
}

func (r *LocalDateTime) UnmarshalText(b []byte) error {
	return unmarshalText(r, b, (*Parser).ParseLocalDateTime, (*Parser).BuildLocalDateTime)
}

func (r *PreciseLocalDateTime) UnmarshalText(b []byte) error {
	return unmarshalText(r, b, (*Parser).ParsePreciseLocalDateTime, (*Parser).BuildPreciseLocalDateTime)
}

func (r *ShiftedDateTime) UnmarshalText(b []byte) error {
	return unmarshalText(r, b, (*Parser).ParseShiftedDateTime, (*Parser).BuildShiftedDateTime)
}

func (r *PreciseShiftedDateTime) UnmarshalText(b []byte) error {
	return unmarshalText(r, b, (*Parser).ParsePreciseShiftedDateTime, (*Parser).BuildPreciseShiftedDateTime)
}

func unmarshalText[T Temporal](dst *T, b []byte, scan scanner, build func(*Parser) (T, error)) error {
	v, err := parseAll(RFC3339(), b, scan, build)
	if err != nil {
		var ierr error
		if v, ierr = parseAll(ISO8601(), b, scan, build); ierr != nil {
			return err
		}
	}
	*dst = v
	return nil
}
