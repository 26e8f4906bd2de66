package dtparse

/*
rfc.go contains the one-call convenience parsers for the common RFC 3339
and ISO 8601 productions.
*/

type scanner func(*Parser, []byte) ([]byte, error)

/*
parseAll runs scan against in under g, requires that no input remains,
and builds the result.
*/
func parseAll[T Temporal](g Grammar, in []byte, scan scanner, build func(*Parser) (T, error)) (v T, err error) {
	p := g.NewParser()
	var rest []byte
	if rest, err = scan(p, in); err != nil {
		return
	}
	debugIO(newLItem(in, "in"), newLItem(rest, "rest"))
	if len(rest) > 0 {
		err = p.fail(LexicalError{Err: ErrMismatch, Offset: len(in) - len(rest), Rest: rest})
		return
	}
	return build(p)
}

func parseConstrained[T Temporal](g Grammar, in string, scan scanner,
	build func(*Parser) (T, error), constraints []Constraint[T]) (v T, err error) {

	done := debugPath(newLItem(in, "input"))
	defer func() { done(newLItem(v, "value"), newLItem(err)) }()

	if v, err = parseAll(g, []byte(in), scan, build); err == nil {
		if err = ConstraintGroup[T](constraints).Constrain(v); err != nil {
			debugConstraint(newLItem(err, "constraint"))
			var zero T
			v = zero
		}
	}
	return
}

/*
ParseRFC3339DateTime returns an instance of [PreciseShiftedDateTime]
alongside an error following an attempt to parse s as an RFC 3339
"date-time" under the lenient [RFC3339] grammar. Any constraints are
evaluated in order once parsing succeeds.
*/
func ParseRFC3339DateTime(s string, constraints ...Constraint[PreciseShiftedDateTime]) (PreciseShiftedDateTime, error) {
	return parseConstrained(RFC3339(), s, (*Parser).ParsePreciseShiftedDateTime,
		(*Parser).BuildPreciseShiftedDateTime, constraints)
}

/*
ParseRFC3339Date returns an instance of [LocalDate] alongside an error
following an attempt to parse s as an RFC 3339 "full-date".
*/
func ParseRFC3339Date(s string, constraints ...Constraint[LocalDate]) (LocalDate, error) {
	return parseConstrained(RFC3339(), s, (*Parser).ParseDate, (*Parser).BuildDate, constraints)
}

/*
ParseRFC3339Time returns an instance of [PreciseLocalTime] alongside an
error following an attempt to parse s as an RFC 3339 "partial-time".
*/
func ParseRFC3339Time(s string, constraints ...Constraint[PreciseLocalTime]) (PreciseLocalTime, error) {
	return parseConstrained(RFC3339(), s, (*Parser).ParsePreciseLocalTime,
		(*Parser).BuildPreciseLocalTime, constraints)
}

/*
ParseISO8601Date returns an instance of [LocalDate] alongside an error
following an attempt to parse s in either the basic ("20230917") or
extended ("2023-09-17") ISO 8601 format.
*/
func ParseISO8601Date(s string, constraints ...Constraint[LocalDate]) (LocalDate, error) {
	return parseConstrained(ISO8601(), s, (*Parser).ParseDate, (*Parser).BuildDate, constraints)
}

/*
ParseISO8601DateTime returns an instance of [PreciseLocalDateTime]
alongside an error following an attempt to parse s as an ISO 8601 local
date-time with an optional fraction.
*/
func ParseISO8601DateTime(s string, constraints ...Constraint[PreciseLocalDateTime]) (PreciseLocalDateTime, error) {
	return parseConstrained(ISO8601(), s, (*Parser).ParsePreciseLocalDateTime,
		(*Parser).BuildPreciseLocalDateTime, constraints)
}

/*
ParseISO8601ShiftedDateTime returns an instance of [PreciseShiftedDateTime]
alongside an error following an attempt to parse s as an ISO 8601
date-time with an optional fraction and a mandatory offset.
*/
func ParseISO8601ShiftedDateTime(s string, constraints ...Constraint[PreciseShiftedDateTime]) (PreciseShiftedDateTime, error) {
	return parseConstrained(ISO8601(), s, (*Parser).ParsePreciseShiftedDateTime,
		(*Parser).BuildPreciseShiftedDateTime, constraints)
}
