// Package headers implements a validated, string-safe HTTP header
// container: an insertion-ordered, case-insensitive multimap whose values
// are guaranteed valid UTF-8. Arbitrary bytes are validated once, at the
// point they enter the container, so readers can treat every stored value as
// plain text without re-checking.
//
// Every mutation comes in two forms: a trusted one that panics on malformed
// input (Insert, Append), meant for developer-supplied literals, and a
// fallible twin (TryInsert, TryAppend) that returns a typed error and never
// panics, meant for untrusted runtime input.
package headers

import (
	"iter"

	"github.com/libyarp/headers/rawhdr"
)

// Headers is a set of validated HTTP headers. Names are compared
// case-insensitively; names supplied with ASCII uppercase to single-entry
// mutations are lowercased before storage. Each name maps to one or more
// values in insertion order.
//
// Headers is not safe for concurrent mutation. Use Clone to obtain an
// independent copy.
type Headers struct {
	m rawhdr.Map
}

// New creates an empty header container.
func New() *Headers { return &Headers{} }

// Get returns the first value stored under key, looked up
// case-insensitively.
func (h *Headers) Get(key string) (string, bool) {
	v, ok := h.m.Get(key)
	if !ok {
		return "", false
	}
	return v.String(), true
}

// Values returns an iterator over every value stored under key, in
// insertion order. The sequence is empty if key is absent.
func (h *Headers) Values(key string) iter.Seq[string] {
	vals := h.m.GetAll(key)
	return func(yield func(string) bool) {
		for _, v := range vals {
			if !yield(v.String()) {
				return
			}
		}
	}
}

// All returns an iterator over every (name, value) pair, one per stored
// value, in storage order. The iterator is restartable; the container must
// not be mutated during iteration.
func (h *Headers) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for name, v := range h.m.All() {
			if !yield(name.String(), v.String()) {
				return
			}
		}
	}
}

// Len returns the total number of values across all names, not the number
// of distinct names.
func (h *Headers) Len() int { return h.m.Len() }

// IsEmpty reports whether the container holds no values.
func (h *Headers) IsEmpty() bool { return h.Len() == 0 }

// Has reports whether any value is stored under key.
func (h *Headers) Has(key string) bool { return h.m.Has(key) }

// Insert stores value under key, replacing every previously stored value,
// and returns the first replaced value, if any. Key and value may be a
// string, a Static, a MaybeStatic, or a pre-validated rawhdr.Name or
// rawhdr.Value. Insert panics if the key is not a valid header name or the
// value is not valid UTF-8 header text; use TryInsert for untrusted input.
func (h *Headers) Insert(key, value any) (string, bool) {
	prev, ok := h.m.Insert(mustName(key), mustValue(value).raw)
	if !ok {
		return "", false
	}
	return prev.String(), true
}

// TryInsert works like Insert, but returns an error wrapping
// ErrInvalidHeaderName or ErrInvalidHeaderValue instead of panicking. It
// never panics, for any input.
func (h *Headers) TryInsert(key, value any) (string, bool, error) {
	name, err := headerName(key, true)
	if err != nil {
		return "", false, err
	}
	ms, err := intoMaybeStatic(value)
	if err != nil {
		return "", false, err
	}
	val, err := headerValue(ms, true)
	if err != nil {
		return "", false, err
	}
	prev, ok := h.m.Insert(name, val.raw)
	if !ok {
		return "", false, nil
	}
	return prev.String(), true, nil
}

// Append stores value under key, keeping previously stored values, and
// reports whether the key was already present. Like Insert, it panics on
// invalid input.
func (h *Headers) Append(key, value any) bool {
	return h.m.Append(mustName(key), mustValue(value).raw)
}

// TryAppend works like Append, but returns an error instead of panicking.
// It never panics, for any input.
func (h *Headers) TryAppend(key, value any) (bool, error) {
	name, err := headerName(key, true)
	if err != nil {
		return false, err
	}
	ms, err := intoMaybeStatic(value)
	if err != nil {
		return false, err
	}
	val, err := headerValue(ms, true)
	if err != nil {
		return false, err
	}
	return h.m.Append(name, val.raw), nil
}

// Remove deletes every value stored under key, returning the first removed
// value, if any. Removing an absent key leaves the container unchanged.
func (h *Headers) Remove(key string) (string, bool) {
	v, ok := h.m.Remove(key)
	if !ok {
		return "", false
	}
	return v.String(), true
}

// Clone clones the current Headers, returning a new instance sharing no
// state with the original.
func (h *Headers) Clone() *Headers {
	return &Headers{m: *h.m.Clone()}
}
