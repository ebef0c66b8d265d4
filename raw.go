package headers

import "github.com/libyarp/headers/rawhdr"

// FromRaw validates every value in raw and, on success, returns a Headers
// holding the same entries in the same order. The first value whose bytes
// are not valid UTF-8 fails the whole conversion with an error wrapping
// ErrInvalidHeaderValue and the underlying InvalidUTF8Error; nothing is
// constructed in that case.
//
// Names come from raw's already-typed representation, so their case is
// preserved exactly; no lowercasing is applied in this path.
func FromRaw(raw *rawhdr.Map) (*Headers, error) {
	for _, v := range raw.All() {
		if err := checkUTF8(v.String()); err != nil {
			return nil, invalidValue(err)
		}
	}
	h := New()
	for name, v := range raw.All() {
		// Every value was proven UTF-8 above; the rewrap re-affirms it.
		h.m.Append(name, valueUnchecked(v).raw)
	}
	return h, nil
}
