package shift

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownShiftType   = errors.New("unknown shift type")
	ErrMissingCustomTimes = errors.New("custom shift requires both login and logout times")
)

// ParseError reports an unparsable wall-clock value. It is recoverable:
// callers treat the value as absent rather than failing the operation.
type ParseError struct {
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid time value: %q", e.Value)
}
