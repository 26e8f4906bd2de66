package dtparse

/*
adapt.go contains conversions between the composite types and the
calendar types of the time package.
*/

import "time"

var errNotRepresentable = errorAdapter(ErrNotRepresentable)

/*
Time returns the receiver instance as midnight of its date in loc. A day
beyond the length of its month is not representable. A nil loc is read
as [time.UTC].
*/
func (r LocalDate) Time(loc *time.Location) (time.Time, error) {
	return r.clock(0, 0, 0, 0, loc)
}

func (r LocalDate) clock(h, m, s, ns int, loc *time.Location) (t time.Time, err error) {
	if loc == nil {
		loc = time.UTC
	}
	y, mo, d := r.year.Int(), time.Month(r.month.Int()), r.day.Int()

	if t = time.Date(y, mo, d, h, m, s, ns, loc); t.Day() != d || t.Month() != mo {
		debugAdapter(newLItem(r, "day beyond month length"))
		return time.Time{}, errNotRepresentable
	}
	return
}

/*
representable returns the wall clock of the receiver instance. Minute 60,
leap seconds and any 24th hour other than 24:00:00.0 have no [time.Time]
equivalent; 24:00:00 is returned as the rollover flag.
*/
func (r PreciseLocalTime) representable() (h, m, s, ns int, rollover bool, err error) {
	h, m, s, ns = r.time.hour.Int(), r.time.minute.Int(), r.time.second.Int(), r.nanosecond.Int()
	switch {
	case m > 59, s > 59:
		err = errNotRepresentable
	case h == 24:
		if m != 0 || s != 0 || ns != 0 {
			err = errNotRepresentable
		}
		h, rollover = 0, true
	}
	return
}

func (r PreciseLocalDateTime) inLocation(loc *time.Location) (t time.Time, err error) {
	h, m, s, ns, rollover, err := r.time.representable()
	if err != nil {
		debugAdapter(newLItem(r, "clock not representable"))
		return
	}
	if t, err = r.date.clock(h, m, s, ns, loc); err == nil && rollover {
		t = t.AddDate(0, 0, 1)
	}
	return
}

/*
Time returns the receiver instance as a [time.Time] in loc. 24:00:00 is
read as midnight of the following day. A nil loc is read as [time.UTC].
*/
func (r LocalDateTime) Time(loc *time.Location) (time.Time, error) {
	return r.Precise().inLocation(loc)
}

/*
Time returns the receiver instance as a [time.Time] in loc. A nil loc
is read as [time.UTC].
*/
func (r PreciseLocalDateTime) Time(loc *time.Location) (time.Time, error) {
	return r.inLocation(loc)
}

/*
Location returns [time.UTC] for the UTC designator, or a fixed zone for
an offset. Both "+00:00" and "-00:00" yield an unnamed zone of offset
zero.
*/
func (r Timeshift) Location() *time.Location {
	if r.IsUTC() {
		return time.UTC
	}
	return time.FixedZone("", r.SecondsEast())
}

/*
Time returns the receiver instance as a [time.Time] in the zone of its
[Timeshift].
*/
func (r ShiftedDateTime) Time() (time.Time, error) {
	return r.local.Precise().inLocation(r.shift.Location())
}

/*
UTC returns the receiver instance as a [time.Time] in [time.UTC]. The
[Timeshift] must be UTC or an offset of zero magnitude.
*/
func (r ShiftedDateTime) UTC() (time.Time, error) {
	return r.Precise().UTC()
}

/*
Time returns the receiver instance as a [time.Time] in the zone of its
[Timeshift].
*/
func (r PreciseShiftedDateTime) Time() (time.Time, error) {
	return r.local.inLocation(r.shift.Location())
}

/*
UTC returns the receiver instance as a [time.Time] in [time.UTC]. The
[Timeshift] must be UTC or an offset of zero magnitude.
*/
func (r PreciseShiftedDateTime) UTC() (time.Time, error) {
	if !r.shift.IsZero() {
		debugAdapter(newLItem(r.shift, "offset"))
		return time.Time{}, errorAdapter(ErrNonZeroOffset)
	}
	return r.local.inLocation(time.UTC)
}

/*
Duration returns the time elapsed since midnight. Every value is
representable, including 24:00:00 and leap seconds.
*/
func (r LocalTime) Duration() time.Duration {
	return time.Duration(r.hour.Int())*time.Hour +
		time.Duration(r.minute.Int())*time.Minute +
		time.Duration(r.second.Int())*time.Second
}

/*
Duration returns the time elapsed since midnight.
*/
func (r PreciseLocalTime) Duration() time.Duration {
	return r.time.Duration() + time.Duration(r.nanosecond.Int())
}

/*
FromTime returns an instance of [PreciseShiftedDateTime] alongside an
error following an attempt to read t. Years outside 0 through 9999, and
zone offsets that are not a whole number of minutes, are rejected. A t
in [time.UTC] yields the UTC [Timeshift].
*/
func FromTime(t time.Time) (dt PreciseShiftedDateTime, err error) {
	var (
		y  Year
		mo Month
		d  Day
		h  Hour
		mi Minute
		s  Second
		ns Nanosecond
		ts Timeshift
	)

	if y, err = NewYear(t.Year()); err != nil {
		return dt, errNotRepresentable
	}
	// remaining fields are within range for any time.Time
	mo, _ = NewMonth(int(t.Month()))
	d, _ = NewDay(t.Day())
	h, _ = NewHour(t.Hour())
	mi, _ = NewMinute(t.Minute())
	s, _ = NewSecond(t.Second())
	ns, _ = NewNanosecond(t.Nanosecond())

	if ts, err = timeshiftOf(t); err != nil {
		return
	}

	dt = NewPreciseShiftedDateTime(
		NewPreciseLocalDateTime(NewLocalDate(y, mo, d),
			NewPreciseLocalTime(NewLocalTime(h, mi, s), ns)), ts)
	debugAdapter(newLItem(dt, "from time"))
	return
}

func timeshiftOf(t time.Time) (Timeshift, error) {
	if t.Location() == time.UTC {
		return UTC(), nil
	}
	_, off := t.Zone()
	if off%60 != 0 {
		return Timeshift{}, errNotRepresentable
	}
	mins := off / 60
	ts, err := TimeshiftOf(mins/60, abs(mins%60))
	if err != nil {
		return Timeshift{}, errNotRepresentable
	}
	if off < 0 && mins/60 == 0 {
		// TimeshiftOf reads the sign from the hour
		ts = NegativeOffset(ts.hours, ts.minutes)
	}
	return ts, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
