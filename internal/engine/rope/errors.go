package rope

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is the sentinel wrapped by every out-of-range error the
// package returns. Use errors.Is(err, rope.ErrOutOfRange) to test for it.
var ErrOutOfRange = errors.New("rope: index out of range")

// OutOfRangeError reports that an index or half-open range fell outside
// [0, length] for the receiving Text. It is the only error kind this
// package produces; allocation failures, if the runtime signals them,
// propagate unchanged from the standard library.
type OutOfRangeError struct {
	Op     string // operation that rejected the index, e.g. "CharAt"
	Index  int    // offending index (or range start)
	Length int    // length of the receiving Text at the time of the call
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("rope: %s: index %d out of range for length %d", e.Op, e.Index, e.Length)
}

// Unwrap lets callers match OutOfRangeError with errors.Is(err, ErrOutOfRange).
func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

func outOfRange(op string, index, length int) error {
	return &OutOfRangeError{Op: op, Index: index, Length: length}
}
