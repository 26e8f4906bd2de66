package dtparse

/*
prim.go contains the byte-stream primitives from which every production
of the date and time grammar is built. Each primitive consumes a prefix
of its input and returns the unconsumed remainder.
*/

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

/*
takeFixed returns the first n bytes of in and the remainder.
*/
func takeFixed(n int, in []byte) (head, rest []byte, err error) {
	if len(in) < n {
		err = errorEOF(n)
		return
	}
	return in[:n], in[n:], nil
}

/*
matchLiteral consumes lit if it prefixes in. A differing prefix yields
a mismatch, which callers may treat as an invitation to try another
production; short input yields an end-of-input failure.
*/
func matchLiteral(lit string, in []byte) (rest []byte, err error) {
	if len(in) < len(lit) {
		return in, errorEOF(len(lit))
	}
	if string(in[:len(lit)]) != lit {
		return in, errorMismatch(in)
	}
	return in[len(lit):], nil
}

/*
matchAny tries each literal of set in order and returns the index of
the first one to match.
*/
func matchAny(set []string, in []byte) (idx int, rest []byte, err error) {
	for i, lit := range set {
		if len(in) < len(lit) {
			continue
		}
		if string(in[:len(lit)]) == lit {
			return i, in[len(lit):], nil
		}
	}
	return -1, in, errorMismatch(in)
}

/*
takeWhile greedily consumes bytes satisfying pred. At least one byte of
input must be present, though zero bytes may match.
*/
func takeWhile(pred func(byte) bool, in []byte) (head, rest []byte, err error) {
	if len(in) == 0 {
		err = errorEOF(1)
		return
	}
	var i int
	for i < len(in) && pred(in[i]) {
		i++
	}
	return in[:i], in[i:], nil
}

/*
parseFixedDigits reads exactly n bytes as an unsigned decimal integer.
*/
func parseFixedDigits(n int, in []byte) (v uint64, rest []byte, err error) {
	var head []byte
	if head, rest, err = takeFixed(n, in); err != nil {
		return
	}
	if !utf8OK(head) {
		return 0, in, LexicalError{Err: ErrInvalidUTF8, Rest: in}
	}
	v, err = parseDecimal(head)
	if err != nil {
		rest = in
	}
	return
}

// parseDecimal reads digits, which must all be ASCII decimal digits,
// as an unsigned integer.
func parseDecimal(digits []byte) (uint64, error) {
	for _, b := range digits {
		if !isDigit(b) {
			return 0, NumericError{Err: ErrInvalidNumber, Text: string(digits)}
		}
	}
	v, err := puint(string(digits), 10, 64)
	if err != nil {
		return 0, NumericError{Err: ErrInvalidNumber, Text: string(digits)}
	}
	return v, nil
}
