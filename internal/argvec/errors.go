package argvec

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every error returned when fewer tokens remain
// than an operation requires.
var ErrOutOfRange = errors.New("argvec: out of range")

// RangeError describes a failed bounds check.
type RangeError struct {
	Op   string // operation that failed, e.g. "peek" or "subcmd"
	Need int    // tokens the operation required
	Have int    // tokens that were left
}

// Error implements the error interface for RangeError.
func (e *RangeError) Error() string {
	return fmt.Sprintf("argvec: %s needs %d token(s), %d left", e.Op, e.Need, e.Have)
}

// Unwrap makes errors.Is(err, ErrOutOfRange) hold for every RangeError.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
