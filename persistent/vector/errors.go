package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is reported for any indexed access outside of the valid range
	// of an operation.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrEmptyCollection is reported for operations requiring a non-empty vector.
	ErrEmptyCollection = errors.New("collection is empty")
)

// OpError describes a failed operation. It unwraps to either ErrIndexOutOfRange
// or ErrEmptyCollection, so clients may check with errors.Is.
type OpError struct {
	Op    string // name of the operation, e.g. "Set"
	Index int    // offending index, if any
	Len   int    // length of the vector at the time of the call
	Err   error
}

func (e *OpError) Error() string {
	if errors.Is(e.Err, ErrEmptyCollection) {
		return fmt.Sprintf("persistent: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("persistent: %s: index %d out of range for length %d", e.Op, e.Index, e.Len)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func indexError(op string, i, length int) error {
	return &OpError{Op: op, Index: i, Len: length, Err: ErrIndexOutOfRange}
}

func emptyError(op string) error {
	return &OpError{Op: op, Err: ErrEmptyCollection}
}
