package rawhdr

import (
	"iter"

	"github.com/OneOfOne/xxhash"
)

// Map is an insertion-ordered multimap from Name to one or more Values.
// Lookup keys are compared to stored names under ASCII case folding, so a
// name stored as "X-Foo" is found by "x-foo" and vice versa. A name with
// zero values is never present: removing a name removes its entry entirely.
//
// The zero Map is empty and ready to use. Map is not safe for concurrent
// mutation.
type Map struct {
	entries []entry
	index   map[uint64][]int
	size    int
}

// One entry per distinct name; values in append order, never empty.
type entry struct {
	name   Name
	values []Value
}

// foldHash hashes key with its ASCII uppercase bytes folded to lowercase, so
// that case variants of a name land in the same index bucket. Bytes are
// folded in fixed-size chunks to keep lookups allocation-free.
func foldHash(key string) uint64 {
	h := xxhash.New64()
	var buf [64]byte
	for i := 0; i < len(key); i += len(buf) {
		n := copy(buf[:], key[i:])
		for j := 0; j < n; j++ {
			buf[j] = lowerASCII(buf[j])
		}
		h.Write(buf[:n])
	}
	return h.Sum64()
}

// find returns the position of the entry matching key, or -1. Hash
// collisions are resolved by comparing the stored name to the key.
func (m *Map) find(key string) int {
	for _, i := range m.index[foldHash(key)] {
		if equalFoldASCII(m.entries[i].name.s, key) {
			return i
		}
	}
	return -1
}

func (m *Map) add(name Name, value Value) {
	if m.index == nil {
		m.index = make(map[uint64][]int)
	}
	h := foldHash(name.s)
	m.index[h] = append(m.index[h], len(m.entries))
	m.entries = append(m.entries, entry{name: name, values: []Value{value}})
	m.size++
}

// Get returns the first value stored under key, if any.
func (m *Map) Get(key string) (Value, bool) {
	i := m.find(key)
	if i < 0 {
		return Value{}, false
	}
	return m.entries[i].values[0], true
}

// GetAll returns every value stored under key, in append order. The returned
// slice is a copy and may be retained by the caller.
func (m *Map) GetAll(key string) []Value {
	i := m.find(key)
	if i < 0 {
		return nil
	}
	return append([]Value(nil), m.entries[i].values...)
}

// Has reports whether any value is stored under key.
func (m *Map) Has(key string) bool { return m.find(key) >= 0 }

// Len returns the total number of values across all names.
func (m *Map) Len() int { return m.size }

// Keys returns the number of distinct names.
func (m *Map) Keys() int { return len(m.entries) }

// Insert stores value under name, replacing every previously stored value.
// It returns the first replaced value, if any. When the name already exists
// the entry keeps its position and its stored name spelling.
func (m *Map) Insert(name Name, value Value) (Value, bool) {
	i := m.find(name.s)
	if i < 0 {
		m.add(name, value)
		return Value{}, false
	}
	e := &m.entries[i]
	prev := e.values[0]
	m.size += 1 - len(e.values)
	e.values = []Value{value}
	return prev, true
}

// Append stores value under name, keeping previously stored values. It
// reports whether the name was already present.
func (m *Map) Append(name Name, value Value) bool {
	i := m.find(name.s)
	if i < 0 {
		m.add(name, value)
		return false
	}
	e := &m.entries[i]
	e.values = append(e.values, value)
	m.size++
	return true
}

// Remove deletes every value stored under key, returning the first removed
// value, if any.
func (m *Map) Remove(key string) (Value, bool) {
	i := m.find(key)
	if i < 0 {
		return Value{}, false
	}
	first := m.entries[i].values[0]
	m.size -= len(m.entries[i].values)
	m.entries = append(m.entries[:i], m.entries[i+1:]...)

	// Entries after position i shifted down by one; fix up every bucket and
	// drop the removed position.
	for h, bucket := range m.index {
		w := 0
		for _, p := range bucket {
			if p == i {
				continue
			}
			if p > i {
				p--
			}
			bucket[w] = p
			w++
		}
		if w == 0 {
			delete(m.index, h)
		} else {
			m.index[h] = bucket[:w]
		}
	}
	return first, true
}

// All returns an iterator over every (name, value) pair in storage order,
// yielding one pair per stored value. The iterator is restartable; the Map
// must not be mutated during iteration.
func (m *Map) All() iter.Seq2[Name, Value] {
	return func(yield func(Name, Value) bool) {
		for i := range m.entries {
			for _, v := range m.entries[i].values {
				if !yield(m.entries[i].name, v) {
					return
				}
			}
		}
	}
}

// Clone returns a structural copy sharing no state with the original.
func (m *Map) Clone() *Map {
	n := &Map{size: m.size}
	if m.entries != nil {
		n.entries = make([]entry, len(m.entries))
		for i, e := range m.entries {
			n.entries[i] = entry{name: e.name, values: append([]Value(nil), e.values...)}
		}
	}
	if m.index != nil {
		n.index = make(map[uint64][]int, len(m.index))
		for h, bucket := range m.index {
			n.index[h] = append([]int(nil), bucket...)
		}
	}
	return n
}
