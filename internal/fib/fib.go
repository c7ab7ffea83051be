// Package fib walks the Fibonacci sequence within the uint64 range and
// labels each term FizzBuzz style.
package fib

import (
	"errors"
	"fmt"
	"strconv"
)

// MaxIndex is the largest index whose term fits in a uint64. F(93)
// overflows.
const MaxIndex = 92

// ErrInvalidCount is returned by ParseCount for anything that is not a
// whole number greater than zero.
var ErrInvalidCount = errors.New("count must be a whole number greater than 0")

// ParseCount converts s to a positive count. The whole string must parse.
// Positive values beyond the int64 range saturate instead of failing so
// the caller can report them against MaxIndex.
func ParseCount(s string) (uint64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) || n <= 0 {
			return 0, fmt.Errorf("parsing count %q: %w", s, ErrInvalidCount)
		}
	}
	if n <= 0 {
		return 0, fmt.Errorf("count %d: %w", n, ErrInvalidCount)
	}
	return uint64(n), nil
}
