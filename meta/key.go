// seehuhn.de/go/vg - a declarative 2D vector graphics library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package meta implements a type-safe, heterogeneous key→value map used
// to attach rendering hints and document metadata to images and
// renderers. Each key is declared with a fixed value type; retrieval is
// statically typed and foreign-key retrieval is a compile error, not a
// runtime branch.
package meta

import (
	"fmt"
	"strings"
	"sync/atomic"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var nextID uint64

// allocID returns the next process-unique key id. The allocator is an
// atomic monotonic counter; exhausting it is a fatal programming error,
// not something a well-behaved program can trigger in practice.
func allocID() uint64 {
	id := atomic.AddUint64(&nextID, 1)
	if id == 0 {
		panic("meta: key id allocator overflowed")
	}
	return id
}

// keyHeader is the untyped part of a key: the fields needed to order,
// name, and print bindings without knowing the value type. Each header
// is a distinct pointer, so keys declared with the same id string are
// still distinct keys — identity is the pointer, id is only used for
// ordering.
type keyHeader struct {
	id          uint64
	id_         string // the caller-supplied identifier, e.g. "creation_date"
	displayName string
	pp          func(v any) string
	cmp         func(a, b any) int
}

// Key is a typed handle for one binding in a Meta map. V is the static
// type of values stored under this key.
type Key[V any] struct {
	h *keyHeader
}

// keyConfig collects the optional parts of a key declaration.
type keyConfig[V any] struct {
	displayName string
	pp          func(V) string
	cmp         func(a, b V) int
}

// Option configures a key declared with NewKey.
type Option[V any] func(*keyConfig[V])

// WithDisplayName overrides the default (title-cased) display name.
func WithDisplayName[V any](name string) Option[V] {
	return func(c *keyConfig[V]) { c.displayName = name }
}

// WithPrinter sets the value pretty-printer for the key.
func WithPrinter[V any](pp func(V) string) Option[V] {
	return func(c *keyConfig[V]) { c.pp = pp }
}

// WithCompare sets the value comparator for the key. The comparator
// must implement a total order: cmp(a, a) == 0, and cmp is
// antisymmetric and transitive.
func WithCompare[V any](cmp func(a, b V) int) Option[V] {
	return func(c *keyConfig[V]) { c.cmp = cmp }
}

var titleCaser = cases.Title(language.Und)

// defaultDisplayName turns a snake_case identifier such as
// "creation_date" into a human-readable "Creation Date".
func defaultDisplayName(id string) string {
	words := strings.ReplaceAll(id, "_", " ")
	return titleCaser.String(words)
}

func defaultPrinter[V any](v V) string {
	return fmt.Sprintf("%v", v)
}

// defaultCompare falls back to lexicographic comparison of the values'
// default string representations. It is a valid (if not especially
// meaningful) total order, used only when the caller declares a key
// without an explicit comparator.
func defaultCompare[V any](a, b V) int {
	return strings.Compare(fmt.Sprintf("%v", a), fmt.Sprintf("%v", b))
}

// NewKey declares a fresh key identified by id (used both as a stable
// identifier and, by default, as the basis of the display name). Every
// call to NewKey allocates a new process-unique key, even if id
// duplicates an existing key's id: keys are identified by declaration,
// not by name.
func NewKey[V any](id string, opts ...Option[V]) Key[V] {
	cfg := keyConfig[V]{
		displayName: defaultDisplayName(id),
		pp:          defaultPrinter[V],
		cmp:         defaultCompare[V],
	}
	for _, o := range opts {
		o(&cfg)
	}

	h := &keyHeader{
		id:          allocID(),
		id_:         id,
		displayName: cfg.displayName,
	}
	h.pp = func(v any) string { return cfg.pp(v.(V)) }
	h.cmp = func(a, b any) int { return cfg.cmp(a.(V), b.(V)) }

	return Key[V]{h: h}
}

// Name returns the key's display name.
func (k Key[V]) Name() string {
	return k.h.displayName
}

// ID returns the key's caller-supplied identifier string. This is not
// guaranteed unique — two independently declared keys may share an id
// string — only the key's pointer identity is.
func (k Key[V]) ID() string {
	return k.h.id_
}
