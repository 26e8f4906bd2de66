package dtparse

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

/*
official import aliases.
*/
var (
	mkerr   func(string) error                          = errors.New
	itoa    func(int) string                            = strconv.Itoa
	atoi    func(string) (int, error)                   = strconv.Atoi
	fmtInt  func(int64, int) string                     = strconv.FormatInt
	fmtUint func(uint64, int) string                    = strconv.FormatUint
	puint   func(string, int, int) (uint64, error)      = strconv.ParseUint
	lc      func(string) string                         = strings.ToLower
	split   func(string, string) []string               = strings.Split
	join    func([]string, string) string               = strings.Join
	trimS   func(string) string                         = strings.TrimSpace
	trimR   func(string, string) string                 = strings.TrimRight
	cutStr  func(string, string) (string, string, bool) = strings.Cut
	hasPfx  func(string, string) bool                   = strings.HasPrefix
	streqf  func(string, string) bool                   = strings.EqualFold
	strrpt  func(string, int) string                    = strings.Repeat
	utf8OK  func([]byte) bool                           = utf8.Valid
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

func bool2str(b bool) (s string) {
	if s = `false`; b {
		s = `true`
	}
	return
}

/*
pad returns the decimal form of v left-padded with zeros to width.
v must be non-negative.
*/
func pad(v uint64, width int) string {
	s := fmtUint(v, 10)
	if n := width - len(s); n > 0 {
		s = strrpt("0", n) + s
	}
	return s
}

// put2 writes the two-digit form of v (0-99) into b at i.
func put2(b []byte, i, v int) {
	b[i] = byte('0' + v/10)
	b[i+1] = byte('0' + v%10)
}

// snippet returns at most n bytes of b as a quoted string for use
// in error messages.
func snippet(b []byte, n int) string {
	if len(b) > n {
		return strconv.Quote(string(b[:n])) + "..."
	}
	return strconv.Quote(string(b))
}
