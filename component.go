package headers

import (
	"fmt"

	"github.com/libyarp/headers/rawhdr"
)

// Static marks text the caller declares constant and well-formed, such as a
// header name or value literal. On the panicking mutation paths a Static
// component skips the fallible validation step and asserts validity instead;
// a malformed Static literal is a programmer error.
type Static string

// MaybeStatic is the canonical form header components are coerced into
// before name or value construction: plain text tagged with whether it
// originated from a Static constant. It is a transient carrier, never
// stored.
type MaybeStatic struct {
	Text   string
	Static bool
}

// intoMaybeStatic coerces one of the accepted component kinds into its
// canonical MaybeStatic form. The set of accepted kinds is closed: Static,
// string, MaybeStatic itself, rawhdr.Name, and rawhdr.Value. A rawhdr.Value
// must have its bytes re-checked as UTF-8, since the raw layer permits
// arbitrary high bytes.
func intoMaybeStatic(component any) (MaybeStatic, error) {
	switch c := component.(type) {
	case Static:
		return MaybeStatic{Text: string(c), Static: true}, nil
	case string:
		return MaybeStatic{Text: c}, nil
	case MaybeStatic:
		return c, nil
	case rawhdr.Name:
		return MaybeStatic{Text: c.String()}, nil
	case rawhdr.Value:
		if err := checkUTF8(c.String()); err != nil {
			return MaybeStatic{}, invalidValue(err)
		}
		return MaybeStatic{Text: c.String()}, nil
	default:
		return MaybeStatic{}, fmt.Errorf("unsupported header component type %T", component)
	}
}
