package dtparse

/*
build.go contains the Build* methods of the Parser type, which drain the
element queue front first into a composite value.
*/

/*
build runs take and consumes the receiver. Leftover elements are
discarded without error.
*/
func (r *Parser) build(take func() error) error {
	if err := r.ready(); err != nil {
		return err
	}
	if err := take(); err != nil {
		return r.fail(err)
	}
	r.q.reset()
	r.state = StateConsumed
	return nil
}

/*
BuildDate drains Year, Month and Day from the receiver into a [LocalDate].
*/
func (r *Parser) BuildDate() (d LocalDate, err error) {
	err = r.build(func() (err error) {
		d, err = r.takeDate()
		return
	})
	debugBuild(newLItem(d, "date"), newLItem(err))
	return
}

/*
BuildTime drains Hour, Minute and Second from the receiver into a
[LocalTime].
*/
func (r *Parser) BuildTime() (t LocalTime, err error) {
	err = r.build(func() (err error) {
		t, err = r.takeTime()
		return
	})
	debugBuild(newLItem(t, "time"), newLItem(err))
	return
}

/*
BuildPreciseLocalTime drains Hour, Minute, Second and Nanosecond from the
receiver into a [PreciseLocalTime].
*/
func (r *Parser) BuildPreciseLocalTime() (t PreciseLocalTime, err error) {
	err = r.build(func() (err error) {
		t, err = r.takePreciseTime()
		return
	})
	debugBuild(newLItem(t, "precise time"), newLItem(err))
	return
}

/*
BuildLocalDateTime drains a date followed by a time from the receiver
into a [LocalDateTime].
*/
func (r *Parser) BuildLocalDateTime() (dt LocalDateTime, err error) {
	err = r.build(func() (err error) {
		dt, err = r.takeLocalDateTime()
		return
	})
	debugBuild(newLItem(dt, "local date-time"), newLItem(err))
	return
}

/*
BuildPreciseLocalDateTime drains a date followed by a precise time from
the receiver into a [PreciseLocalDateTime].
*/
func (r *Parser) BuildPreciseLocalDateTime() (dt PreciseLocalDateTime, err error) {
	err = r.build(func() (err error) {
		dt, err = r.takePreciseLocalDateTime()
		return
	})
	debugBuild(newLItem(dt, "precise local date-time"), newLItem(err))
	return
}

/*
BuildShiftedDateTime drains a date, a time and a [Timeshift] from the
receiver into a [ShiftedDateTime].
*/
func (r *Parser) BuildShiftedDateTime() (dt ShiftedDateTime, err error) {
	err = r.build(func() error {
		local, err := r.takeLocalDateTime()
		if err != nil {
			return err
		}
		ts, err := expect[Timeshift](&r.q, KindTimeshift)
		dt = NewShiftedDateTime(local, ts)
		return err
	})
	if err != nil {
		dt = ShiftedDateTime{}
	}
	debugBuild(newLItem(dt, "shifted date-time"), newLItem(err))
	return
}

/*
BuildPreciseShiftedDateTime drains a date, a precise time and a
[Timeshift] from the receiver into a [PreciseShiftedDateTime].
*/
func (r *Parser) BuildPreciseShiftedDateTime() (dt PreciseShiftedDateTime, err error) {
	err = r.build(func() error {
		local, err := r.takePreciseLocalDateTime()
		if err != nil {
			return err
		}
		ts, err := expect[Timeshift](&r.q, KindTimeshift)
		dt = NewPreciseShiftedDateTime(local, ts)
		return err
	})
	if err != nil {
		dt = PreciseShiftedDateTime{}
	}
	debugBuild(newLItem(dt, "precise shifted date-time"), newLItem(err))
	return
}

func (r *Parser) takeDate() (d LocalDate, err error) {
	var (
		y  Year
		m  Month
		dd Day
	)
	if y, err = expect[Year](&r.q, KindYear); err != nil {
		return
	}
	if m, err = expect[Month](&r.q, KindMonth); err != nil {
		return
	}
	if dd, err = expect[Day](&r.q, KindDay); err != nil {
		return
	}
	return NewLocalDate(y, m, dd), nil
}

func (r *Parser) takeTime() (t LocalTime, err error) {
	var (
		h Hour
		m Minute
		s Second
	)
	if h, err = expect[Hour](&r.q, KindHour); err != nil {
		return
	}
	if m, err = expect[Minute](&r.q, KindMinute); err != nil {
		return
	}
	if s, err = expect[Second](&r.q, KindSecond); err != nil {
		return
	}
	return NewLocalTime(h, m, s), nil
}

func (r *Parser) takePreciseTime() (t PreciseLocalTime, err error) {
	var (
		lt LocalTime
		ns Nanosecond
	)
	if lt, err = r.takeTime(); err != nil {
		return
	}
	if ns, err = expect[Nanosecond](&r.q, KindNanosecond); err != nil {
		return
	}
	return NewPreciseLocalTime(lt, ns), nil
}

func (r *Parser) takeLocalDateTime() (dt LocalDateTime, err error) {
	var (
		d LocalDate
		t LocalTime
	)
	if d, err = r.takeDate(); err != nil {
		return
	}
	if t, err = r.takeTime(); err != nil {
		return
	}
	return NewLocalDateTime(d, t), nil
}

func (r *Parser) takePreciseLocalDateTime() (dt PreciseLocalDateTime, err error) {
	var (
		d LocalDate
		t PreciseLocalTime
	)
	if d, err = r.takeDate(); err != nil {
		return
	}
	if t, err = r.takePreciseTime(); err != nil {
		return
	}
	return NewPreciseLocalDateTime(d, t), nil
}
