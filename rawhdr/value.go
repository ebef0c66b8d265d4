package rawhdr

import "fmt"

// Value is a validated HTTP header value: visible ASCII, space, horizontal
// tab, and bytes 0x80-0xFF are allowed; CR, LF, NUL, and the remaining
// control bytes are not. A Value is immutable after construction and may
// contain non-UTF-8 byte sequences.
type Value struct {
	s string
}

func checkValue[T ~string | ~[]byte](v T) error {
	for i := 0; i < len(v); i++ {
		if !validValueByte(v[i]) {
			return &InvalidByteError{Byte: v[i], Offset: i}
		}
	}
	return nil
}

// ValueFrom validates s as a header value and returns it as a Value. The
// empty string is a valid header value.
func ValueFrom(s string) (Value, error) {
	if err := checkValue(s); err != nil {
		return Value{}, err
	}
	return Value{s: s}, nil
}

// ValueFromBytes validates b as a header value, copying it into the returned
// Value.
func ValueFromBytes(b []byte) (Value, error) {
	if err := checkValue(b); err != nil {
		return Value{}, err
	}
	return Value{s: string(b)}, nil
}

// StaticValue works like ValueFrom, but panics instead of returning an error.
// It is meant for values known at development time.
func StaticValue(s string) Value {
	v, err := ValueFrom(s)
	if err != nil {
		panic(fmt.Sprintf("rawhdr: invalid static header value %q: %v", s, err))
	}
	return v
}

func (v Value) String() string { return v.s }

// Bytes returns a copy of the value bytes.
func (v Value) Bytes() []byte { return []byte(v.s) }
