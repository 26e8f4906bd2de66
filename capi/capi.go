package main

import (
	"fmt"
	"io"
	"unicode/utf8"

	dtparse "github.com/JesseCoretta/go-dtparse"
	"github.com/pkg/errors"
)

// Return codes of pdt_parse_rfc3339_datetime
const (
	codeSuccess    = 0
	codeParseError = 1
	codeMalformed  = 2
)

var messages = [...]string{
	codeSuccess:    "Success",
	codeParseError: "Parse error",
	codeMalformed:  "Malformed input string",
}

// fields mirrors struct pdt_precise_local_date_time
type fields struct {
	Year, Month, Day, Hour, Minute, Second, Nanosecond int32
}

// parseRFC3339 parses in as an RFC 3339 date-time and flattens it.
// The offset is not reported.
func parseRFC3339(in []byte) (f fields, code int, err error) {
	if !utf8.Valid(in) {
		return f, codeMalformed, errors.Wrap(dtparse.ErrInvalidUTF8, "pdt_parse_rfc3339_datetime")
	}
	dt, err := dtparse.ParseRFC3339DateTime(string(in))
	if err != nil {
		return f, codeParseError, errors.Wrapf(err, "pdt_parse_rfc3339_datetime %q", in)
	}

	local := dt.PreciseLocalDateTime()
	d, t := local.LocalDate(), local.PreciseLocalTime()
	year, err := dtparse.Convert[int32](d.Year())
	if err != nil {
		return f, codeParseError, errors.Wrap(err, "pdt_parse_rfc3339_datetime")
	}
	return fields{
		Year:       year,
		Month:      int32(d.Month().Int()),
		Day:        int32(d.Day().Int()),
		Hour:       int32(t.Hour().Int()),
		Minute:     int32(t.Minute().Int()),
		Second:     int32(t.Second().Int()),
		Nanosecond: int32(t.Nanosecond().Int()),
	}, codeSuccess, nil
}

// perror writes "prefix: message" for code to w. An empty prefix is
// omitted.
func perror(w io.Writer, prefix string, code int) {
	if prefix != "" {
		fmt.Fprintf(w, "%s: ", prefix)
	}
	msg := "Unknown error"
	if code >= 0 && code < len(messages) {
		msg = messages[code]
	}
	fmt.Fprintln(w, msg)
}
