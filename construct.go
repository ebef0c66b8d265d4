package headers

import (
	"github.com/libyarp/headers/rawhdr"
)

// headerName turns a header component into a validated rawhdr.Name. A
// component that already is a rawhdr.Name is returned unchanged, skipping
// both re-validation and lowercasing. Any other component is coerced to
// MaybeStatic and, if it contains ASCII uppercase, lowered into an owned
// copy so that stored names are canonical.
//
// With panicSafe set, validation failures are returned as errors wrapping
// ErrInvalidHeaderName and the function never panics. Without it, a Static
// component is constructed through rawhdr.StaticName, which panics on a
// malformed literal; owned text still validates fallibly, with the caller
// expected to treat the error as fatal.
func headerName(component any, panicSafe bool) (rawhdr.Name, error) {
	if name, ok := component.(rawhdr.Name); ok {
		return name, nil
	}
	ms, err := intoMaybeStatic(component)
	if err != nil {
		return rawhdr.Name{}, err
	}
	if hasUpperASCII(ms.Text) {
		// The lowered copy is owned text, no longer a trusted literal.
		ms = MaybeStatic{Text: lowerASCII(ms.Text)}
	}
	if ms.Static && !panicSafe {
		return rawhdr.StaticName(ms.Text), nil
	}
	name, err := rawhdr.NameFrom(ms.Text)
	if err != nil {
		return rawhdr.Name{}, invalidName(err)
	}
	return name, nil
}

// headerValue turns canonical text into a validated Value, with the same
// Static and panicSafe branching as headerName, producing errors wrapping
// ErrInvalidHeaderValue instead. The successfully constructed raw value is
// wrapped through NewValue, which checks UTF-8: in Go an owned string may
// carry arbitrary bytes, so on the fallible path that check is a real
// validation step, not an assertion.
func headerValue(text MaybeStatic, panicSafe bool) (Value, error) {
	var raw rawhdr.Value
	if text.Static && !panicSafe {
		raw = rawhdr.StaticValue(text.Text)
	} else {
		var err error
		raw, err = rawhdr.ValueFrom(text.Text)
		if err != nil {
			return Value{}, invalidValue(err)
		}
	}
	return NewValue(raw)
}

// mustName works like headerName on the trusted path, but panics instead of
// returning an error.
func mustName(component any) rawhdr.Name {
	name, err := headerName(component, false)
	if err != nil {
		panic(err)
	}
	return name
}

// mustValue coerces and constructs a value on the trusted path, panicking
// instead of returning an error.
func mustValue(component any) Value {
	ms, err := intoMaybeStatic(component)
	if err != nil {
		panic(err)
	}
	v, err := headerValue(ms, false)
	if err != nil {
		panic(err)
	}
	return v
}

func hasUpperASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			return true
		}
	}
	return false
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
