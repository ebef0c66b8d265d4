package headers

import (
	"fmt"
	"unicode/utf8"

	"github.com/libyarp/headers/rawhdr"
)

// Value is a string-safe HTTP header value. Unlike rawhdr.Value, which may
// carry arbitrary high bytes, a Value is guaranteed to hold valid UTF-8.
// The guarantee is established once, at construction, and never re-checked;
// String exposes the payload without validation.
type Value struct {
	raw rawhdr.Value
}

// NewValue wraps raw, verifying that its bytes are valid UTF-8. The returned
// error wraps ErrInvalidHeaderValue and carries an InvalidUTF8Error with the
// offset of the decoding failure.
func NewValue(raw rawhdr.Value) (Value, error) {
	if err := checkUTF8(raw.String()); err != nil {
		return Value{}, invalidValue(err)
	}
	return Value{raw: raw}, nil
}

// ParseValue validates s as a UTF-8 header value.
func ParseValue(s string) (Value, error) {
	raw, err := rawhdr.ValueFrom(s)
	if err != nil {
		return Value{}, invalidValue(err)
	}
	return NewValue(raw)
}

// valueUnchecked rewraps a value whose bytes were already proven valid
// UTF-8, as in the bulk conversion path. A failure here means the proof was
// wrong and the container invariant is broken, so it panics rather than
// returning an error.
func valueUnchecked(raw rawhdr.Value) Value {
	v, err := NewValue(raw)
	if err != nil {
		panic(fmt.Sprintf("headers: pre-validated value is not UTF-8: %v", err))
	}
	return v
}

// String returns the string representation of this header value.
func (v Value) String() string { return v.raw.String() }

// IntoString converts the value into an owned string.
func (v Value) IntoString() string { return v.raw.String() }

// checkUTF8 returns an InvalidUTF8Error locating the first invalid sequence
// in s, or nil if s is valid UTF-8.
func checkUTF8(s string) error {
	if utf8.ValidString(s) {
		return nil
	}
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return &InvalidUTF8Error{Offset: i}
		}
		i += size
	}
	return &InvalidUTF8Error{}
}
