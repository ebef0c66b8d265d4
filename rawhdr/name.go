// Package rawhdr implements the raw header storage consumed by the headers
// package: a pre-validated ASCII header name, a pre-validated byte-sequence
// header value, and an insertion-ordered case-insensitive multimap over them.
// Values at this layer are only guaranteed to satisfy the HTTP field-value
// byte rules; they are not required to be valid UTF-8.
package rawhdr

import "fmt"

// ErrEmptyName indicates that an empty string was supplied as a header name.
var ErrEmptyName = fmt.Errorf("header name must not be empty")

// InvalidByteError indicates that a header name or value contains a byte
// outside the grammar for its position, and reports the first offender.
type InvalidByteError struct {
	Byte   byte
	Offset int
}

func (e *InvalidByteError) Error() string {
	return fmt.Sprintf("invalid byte %q at offset %d", e.Byte, e.Offset)
}

// Name is a validated HTTP header name. Names are restricted to the token
// character set; case is preserved exactly as constructed, and comparison is
// ASCII case-insensitive. The zero Name is empty and matches nothing.
type Name struct {
	s string
}

// NameFrom validates s as a header name and returns it as a Name.
func NameFrom(s string) (Name, error) {
	if s == "" {
		return Name{}, ErrEmptyName
	}
	for i := 0; i < len(s); i++ {
		if !validNameByte(s[i]) {
			return Name{}, &InvalidByteError{Byte: s[i], Offset: i}
		}
	}
	return Name{s: s}, nil
}

// StaticName works like NameFrom, but panics instead of returning an error.
// It is meant for names known at development time.
func StaticName(s string) Name {
	n, err := NameFrom(s)
	if err != nil {
		panic(fmt.Sprintf("rawhdr: invalid static header name %q: %v", s, err))
	}
	return n
}

func (n Name) String() string { return n.s }

// Equal reports whether two names are equal under ASCII case folding.
func (n Name) Equal(other Name) bool { return equalFoldASCII(n.s, other.s) }
