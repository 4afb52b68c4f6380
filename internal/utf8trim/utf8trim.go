// Package utf8trim recovers the longest valid UTF-8 prefix of a byte buffer
// by dropping bytes from its end until it validates.
package utf8trim

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Valid reports whether b is well-formed UTF-8.
func Valid(b []byte) bool {
	_, _, err := transform.Bytes(encoding.UTF8Validator, b)
	return err == nil
}

// LongestValidPrefix pops bytes off the end of b until the remainder is valid
// UTF-8. onInvalid, if non-nil, is called once per rejected attempt with the
// length that failed. The returned slice aliases b.
func LongestValidPrefix(b []byte, onInvalid func(n int)) []byte {
	n := len(b)
	for !Valid(b[:n]) {
		if onInvalid != nil {
			onInvalid(n)
		}
		n--
	}
	return b[:n]
}

// BytesFromCodepoints converts a recorded list of byte values into a buffer.
// Every value must lie in 0..255.
func BytesFromCodepoints(values []int64) ([]byte, error) {
	out := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 0xff {
			return nil, fmt.Errorf("value %d at position %d is not a byte", v, i)
		}
		out[i] = byte(v)
	}
	return out, nil
}
