// Package main exports a C ABI for parsing RFC 3339 date-times.
//
// Build a shared library like this:
//
//	go build --buildmode=c-shared -o libdtparse.so github.com/JesseCoretta/go-dtparse/capi
//
// Build a static library like this:
//
//	go build --buildmode=c-archive -o libdtparse.a github.com/JesseCoretta/go-dtparse/capi
//
// Both the above commands will also generate `libdtparse.h` which should
// be `#include`d in `C` programs wishing to use the library.
package main

/*
#include <stddef.h>

typedef struct pdt_precise_local_date_time {
	int year;
	int month;
	int day;
	int hour;
	int minute;
	int second;
	int nanosecond;
} pdt_precise_local_date_time;
*/
import "C"

import (
	"os"
	"unsafe"
)

// pdt_parse_rfc3339_datetime parses inp_len bytes at inp as an RFC 3339
// date-time. The fields of out are written on success only.
//
// Returns 0 on success, 1 on a parse error and 2 when the input is not
// valid UTF-8.
//
//export pdt_parse_rfc3339_datetime
func pdt_parse_rfc3339_datetime(inp *C.char, inpLen C.size_t, out *C.pdt_precise_local_date_time) C.int { //nolint:golint
	var in []byte
	if inp != nil && inpLen > 0 {
		in = C.GoBytes(unsafe.Pointer(inp), C.int(inpLen))
	}
	f, code, _ := parseRFC3339(in)
	if code == codeSuccess && out != nil {
		out.year = C.int(f.Year)
		out.month = C.int(f.Month)
		out.day = C.int(f.Day)
		out.hour = C.int(f.Hour)
		out.minute = C.int(f.Minute)
		out.second = C.int(f.Second)
		out.nanosecond = C.int(f.Nanosecond)
	}
	return C.int(code)
}

// pdt_perror prints "prefix: message" for code to stderr. A NULL or
// empty prefix is omitted.
//
//export pdt_perror
func pdt_perror(prefix *C.char, code C.int) { //nolint:golint
	var p string
	if prefix != nil {
		p = C.GoString(prefix)
	}
	perror(os.Stderr, p, int(code))
}

func main() {}
