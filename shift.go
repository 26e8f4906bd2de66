package dtparse

/*
shift.go implements the Timeshift type, which expresses either UTC or
a signed offset from UTC.
*/

/*
Timeshift implements the offset of a local time from UTC. The zero value
is UTC, written "Z".

An offset is composed of a direction and an [Hour] and [Minute], each
range-checked independently; the combined offset is not compared against
any real-world bound.
*/
type Timeshift struct {
	offset      bool
	nonNegative bool
	hours       Hour
	minutes     Minute
}

/*
UTC returns the UTC [Timeshift].
*/
func UTC() Timeshift { return Timeshift{} }

/*
NewOffset returns an offset [Timeshift]. Note that an offset of +00:00
is distinct from [UTC], and that -00:00 is distinct from both.
*/
func NewOffset(nonNegative bool, hours Hour, minutes Minute) Timeshift {
	return Timeshift{offset: true, nonNegative: nonNegative, hours: hours, minutes: minutes}
}

/*
PositiveOffset returns a non-negative offset [Timeshift].
*/
func PositiveOffset(hours Hour, minutes Minute) Timeshift {
	return NewOffset(true, hours, minutes)
}

/*
NegativeOffset returns a negative offset [Timeshift].
*/
func NegativeOffset(hours Hour, minutes Minute) Timeshift {
	return NewOffset(false, hours, minutes)
}

/*
TimeshiftOf returns an offset [Timeshift] alongside an error following an
attempt to range-check h and m. The sign of h determines the direction of
the offset; m must not be negative.
*/
func TimeshiftOf(h, m int) (ts Timeshift, err error) {
	if m < 0 {
		err = errorRange(KindMinute, int64(m))
		return
	}
	nonNeg := h >= 0
	if !nonNeg {
		h = -h
	}

	var hh Hour
	var mm Minute
	if hh, err = NewHour(h); err == nil {
		if mm, err = NewMinute(m); err == nil {
			ts = NewOffset(nonNeg, hh, mm)
		}
	}
	return
}

/*
IsUTC returns a Boolean value indicative of the receiver being the UTC
designator rather than a numeric offset.
*/
func (r Timeshift) IsUTC() bool { return !r.offset }

/*
NonNegative returns true if the receiver is UTC or a "+" offset.
*/
func (r Timeshift) NonNegative() bool { return !r.offset || r.nonNegative }

/*
Hours returns the hour magnitude of the receiver instance.
*/
func (r Timeshift) Hours() Hour { return r.hours }

/*
Minutes returns the minute magnitude of the receiver instance.
*/
func (r Timeshift) Minutes() Minute { return r.minutes }

/*
IsZero returns true if the receiver is UTC or an offset of zero
magnitude in either direction.
*/
func (r Timeshift) IsZero() bool {
	return !r.offset || (r.hours.v == 0 && r.minutes.v == 0)
}

/*
SecondsEast returns the signed offset of the receiver instance in seconds
east of UTC.
*/
func (r Timeshift) SecondsEast() int {
	if !r.offset {
		return 0
	}
	secs := r.hours.Int()*3600 + r.minutes.Int()*60
	if !r.nonNegative {
		secs = -secs
	}
	return secs
}

/*
Kind returns [KindTimeshift].
*/
func (r Timeshift) Kind() ElementKind { return KindTimeshift }

func (r Timeshift) isElement() {}

/*
String returns "Z" for UTC, or "+HH:MM" or "-HH:MM" for an offset.
*/
func (r Timeshift) String() string {
	if !r.offset {
		return "Z"
	}
	sign := "+"
	if !r.nonNegative {
		sign = "-"
	}
	return sign + r.hours.String() + ":" + r.minutes.String()
}
