package markup

import (
	"errors"
	"fmt"
)

// ErrMissingTag is returned by New when no tag appears among the
// arguments.
var ErrMissingTag = errors.New("markup: missing tag")

// UnexpectedTypeError is returned by New when the first non-attribute
// argument is not a *Tag.
type UnexpectedTypeError struct {
	Value any
}

func (e *UnexpectedTypeError) Error() string {
	return fmt.Sprintf("markup: expected Tag, got %T", e.Value)
}
