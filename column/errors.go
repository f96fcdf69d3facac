package column

import (
	"errors"
	"fmt"

	"github.com/Samy2700/CDataFrame2/schema"
)

var (
	ErrOutOfBounds       = errors.New("index out of bounds")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrAllocationFailure = errors.New("allocation failure")
)

// RangeError carries the offending index; it matches ErrOutOfBounds.
type RangeError struct {
	Index int
	Size  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: index %d, size %d", ErrOutOfBounds.Error(), e.Index, e.Size)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfBounds
}

// TypeError carries both variants; it matches ErrTypeMismatch.
type TypeError struct {
	Expected schema.FieldType
	Got      schema.FieldType
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", ErrTypeMismatch.Error(), e.Expected, e.Got)
}

func (e *TypeError) Unwrap() error {
	return ErrTypeMismatch
}
