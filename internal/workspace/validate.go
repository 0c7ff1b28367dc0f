package workspace

import (
	"errors"
	"fmt"
)

// MaxCountLen is the longest accepted bulk-count input, bounding counts to 0-99.
const MaxCountLen = 2

// ErrInvalidCount is returned by ParseCount for input IsValidCountInput rejects.
var ErrInvalidCount = errors.New("bulk count must be empty or 1-2 digits")

// IsValidCountInput reports whether raw may be committed as the bulk-count text.
// The empty string is accepted; otherwise raw must be one or two ASCII digits.
// Leading zeros are allowed.
func IsValidCountInput(raw string) bool {
	if len(raw) > MaxCountLen {
		return false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return false
		}
	}
	return true
}

// ParseCount converts accepted count text to an integer, treating "" as 0.
func ParseCount(raw string) (int, error) {
	if !IsValidCountInput(raw) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCount, raw)
	}
	n := 0
	for i := 0; i < len(raw); i++ {
		n = n*10 + int(raw[i]-'0')
	}
	return n, nil
}
