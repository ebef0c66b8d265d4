package headers

import (
	"errors"
	"fmt"
)

// ErrInvalidHeaderName indicates that a header name failed validation: it
// was empty, contained a non-ASCII byte, or contained a character outside
// the token set.
var ErrInvalidHeaderName = fmt.Errorf("invalid HTTP header name")

// ErrInvalidHeaderValue indicates that a header value failed validation: it
// contained a forbidden control byte, or its bytes were not valid UTF-8.
var ErrInvalidHeaderValue = fmt.Errorf("invalid HTTP header value")

// InvalidUTF8Error indicates that a header value was not valid UTF-8, and
// reports the offset of the first byte of the offending sequence.
type InvalidUTF8Error struct {
	Offset int
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("invalid UTF-8 sequence at offset %d", e.Offset)
}

// IsHeaderError indicates whether a given error value originated from header
// name or value validation.
func IsHeaderError(err error) bool {
	return errors.Is(err, ErrInvalidHeaderName) || errors.Is(err, ErrInvalidHeaderValue)
}

func invalidName(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidHeaderName, err)
}

func invalidValue(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidHeaderValue, err)
}
