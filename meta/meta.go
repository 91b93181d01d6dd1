package meta

import (
	"errors"
	"sort"
	"strings"
)

// ErrUnboundKey is returned by Get when the map has no binding for the
// requested key and no default value was supplied.
var ErrUnboundKey = errors.New("meta: unbound key")

// binding is one key/value pair. v is stored as any; it is type-asserted
// back to V only by the key's own closures (set up in NewKey) and by
// Find, which reaches a binding only through its own key's header, so
// foreign access is unreachable by construction.
type binding struct {
	h *keyHeader
	v any
}

// Meta is an immutable mapping from declared keys to values. The zero
// value is the empty map.
type Meta struct {
	bindings []binding // kept sorted by h.id, no duplicate headers
}

// Empty is the empty metadata map.
var Empty = Meta{}

// IsEmpty reports whether m has no bindings.
func (m Meta) IsEmpty() bool {
	return len(m.bindings) == 0
}

// search returns the index of h in m.bindings, and whether it was found.
func (m Meta) search(h *keyHeader) (int, bool) {
	i := sort.Search(len(m.bindings), func(i int) bool {
		return m.bindings[i].h.id >= h.id
	})
	if i < len(m.bindings) && m.bindings[i].h == h {
		return i, true
	}
	return i, false
}

// Mem reports whether m has a binding for k.
func Mem[V any](m Meta, k Key[V]) bool {
	_, ok := m.search(k.h)
	return ok
}

// Add returns a copy of m with k bound to v, replacing any existing
// binding for k.
func Add[V any](m Meta, k Key[V], v V) Meta {
	i, found := m.search(k.h)
	out := make([]binding, len(m.bindings), len(m.bindings)+1)
	copy(out, m.bindings)
	b := binding{h: k.h, v: v}
	if found {
		out[i] = b
	} else {
		out = append(out, binding{})
		copy(out[i+1:], out[i:])
		out[i] = b
	}
	return Meta{bindings: out}
}

// Rem returns a copy of m with any binding for k removed.
func Rem[V any](m Meta, k Key[V]) Meta {
	i, found := m.search(k.h)
	if !found {
		return m
	}
	out := make([]binding, 0, len(m.bindings)-1)
	out = append(out, m.bindings[:i]...)
	out = append(out, m.bindings[i+1:]...)
	return Meta{bindings: out}
}

// Find returns the value bound to k and true, or the zero value and
// false if k is unbound.
func Find[V any](m Meta, k Key[V]) (V, bool) {
	i, found := m.search(k.h)
	if !found {
		var zero V
		return zero, false
	}
	return m.bindings[i].v.(V), true
}

// Get returns the value bound to k. If k is unbound and a default
// value is supplied in absent, that default is returned; otherwise Get
// returns ErrUnboundKey.
func Get[V any](m Meta, k Key[V], absent ...V) (V, error) {
	if v, ok := Find(m, k); ok {
		return v, nil
	}
	if len(absent) > 0 {
		return absent[0], nil
	}
	var zero V
	return zero, ErrUnboundKey
}

// AddMeta returns the right-biased union of m and m2: bindings in m2
// override bindings for the same key in m.
func AddMeta(m, m2 Meta) Meta {
	if m.IsEmpty() {
		return m2
	}
	if m2.IsEmpty() {
		return m
	}
	out := make([]binding, 0, len(m.bindings)+len(m2.bindings))
	i, j := 0, 0
	for i < len(m.bindings) && j < len(m2.bindings) {
		a, b := m.bindings[i], m2.bindings[j]
		switch {
		case a.h.id < b.h.id:
			out = append(out, a)
			i++
		case a.h.id > b.h.id:
			out = append(out, b)
			j++
		default: // same key: m2 wins
			out = append(out, b)
			i++
			j++
		}
	}
	out = append(out, m.bindings[i:]...)
	out = append(out, m2.bindings[j:]...)
	return Meta{bindings: out}
}

// Compare defines a total order over Meta values: it walks bindings in
// key-id order and compares keys first by id, then (for a shared key)
// falls back to the key's own value comparator.
func Compare(m, m2 Meta) int {
	n := min(len(m.bindings), len(m2.bindings))
	for i := 0; i < n; i++ {
		a, b := m.bindings[i], m2.bindings[i]
		switch {
		case a.h.id < b.h.id:
			return -1
		case a.h.id > b.h.id:
			return 1
		}
		if c := a.h.cmp(a.v, b.v); c != 0 {
			return c
		}
	}
	switch {
	case len(m.bindings) < len(m2.bindings):
		return -1
	case len(m.bindings) > len(m2.bindings):
		return 1
	}
	return 0
}

// Equal reports whether m and m2 compare equal.
func Equal(m, m2 Meta) bool {
	return Compare(m, m2) == 0
}

// Pretty returns a human-readable rendering of m's bindings, in key-id
// order, using each key's own printer.
func Pretty(m Meta) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, b := range m.bindings {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(b.h.displayName)
		sb.WriteString(": ")
		sb.WriteString(b.h.pp(b.v))
	}
	sb.WriteByte('}')
	return sb.String()
}
