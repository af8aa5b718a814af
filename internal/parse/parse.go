// Package parse holds tryParse-style helpers shared by the numeric
// validators. A failed parse is reported as ok=false; no helper here ever
// returns an error or panics.
package parse

import "strconv"

// Int parses s as a signed decimal 64-bit integer.
func Int(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Float parses s as an IEEE 64-bit float. "NaN" and infinities parse
// successfully; range comparison downstream rejects them.
func Float(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
