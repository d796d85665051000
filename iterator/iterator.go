// Package iterator implements the read-only traversal and key-search
// views over a value.Value tree described in spec.md §4.3: depth-first
// tree iteration, one-level children iteration, and key search — all
// position-based over a list materialised once at construction, grounded
// on json.h's json_iterator (first/last/next/prev/count) and the
// vpJsonTree/vpJsonChildren/vpJsonFindKeyA/vpJsonFindKeyU family in the
// original C source. The teacher has no iterator layer of its own (its
// fluent Index/Key accessors serve a narrower purpose); this package is
// new code built in the teacher's plain, unexported-state style.
package iterator

import (
	"github.com/mcvoid/jsontree/internal/jsonerr"
	"github.com/mcvoid/jsontree/value"
)

// Iterator is a position-based, read-only view over a materialised list
// of values. A nil *Iterator is the "no iterator" signal spec.md §4.3
// requires for empty results; every method is nil-receiver-safe.
type Iterator struct {
	items []*value.Value
	pos   int
}

func newIterator(items []*value.Value) *Iterator {
	if len(items) == 0 {
		return nil
	}
	return &Iterator{items: items, pos: -1}
}

// Tree returns a depth-first iterator over root and every transitively
// reachable child, yielding root itself first.
func Tree(root *value.Value) *Iterator {
	if root == nil {
		return nil
	}
	var items []*value.Value
	var walk func(v *value.Value)
	walk = func(v *value.Value) {
		items = append(items, v)
		for _, c := range v.Children {
			walk(c)
		}
	}
	walk(root)
	return newIterator(items)
}

// Children returns v's direct children in insertion order. Returns the
// "no iterator" signal if v is not an Object or Array, or has no
// children.
func Children(v *value.Value) *Iterator {
	if v == nil || (v.Kind != value.Object && v.Kind != value.Array) {
		return nil
	}
	items := make([]*value.Value, len(v.Children))
	copy(items, v.Children)
	return newIterator(items)
}

// FindKeyBytes searches the sub-tree rooted at root, pre-order, for every
// value whose key equals key. An empty key is rejected (spec.md §4.3).
func FindKeyBytes(root *value.Value, key []byte) (*Iterator, error) {
	if len(key) == 0 {
		return nil, jsonerr.NoPosition(jsonerr.Input, "find key: empty byte key not allowed")
	}
	return FindKeyRunes(root, []rune(string(key))), nil
}

// FindKeyRunes searches the sub-tree rooted at root, pre-order, for every
// value whose key equals key. A zero-length key is accepted (it matches
// values with an explicitly empty key).
func FindKeyRunes(root *value.Value, key []rune) *Iterator {
	if root == nil {
		return nil
	}
	var items []*value.Value
	var walk func(v *value.Value)
	walk = func(v *value.Value) {
		if v.Key != nil && runesEqual(v.Key, key) {
			items = append(items, v)
		}
		for _, c := range v.Children {
			walk(c)
		}
	}
	walk(root)
	return newIterator(items)
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// First returns the first item and true, or the zero value and false if
// it has no iterator.
func (it *Iterator) First() (*value.Value, bool) {
	if it == nil {
		return nil, false
	}
	it.pos = 0
	return it.items[0], true
}

// Last returns the last item and true, or the zero value and false if
// it has no iterator.
func (it *Iterator) Last() (*value.Value, bool) {
	if it == nil {
		return nil, false
	}
	it.pos = len(it.items) - 1
	return it.items[it.pos], true
}

// Next advances to and returns the next item, or false if exhausted.
func (it *Iterator) Next() (*value.Value, bool) {
	if it == nil {
		return nil, false
	}
	next := it.pos + 1
	if next < 0 || next >= len(it.items) {
		return nil, false
	}
	it.pos = next
	return it.items[it.pos], true
}

// Prev steps back to and returns the previous item, or false if already
// at the beginning.
func (it *Iterator) Prev() (*value.Value, bool) {
	if it == nil {
		return nil, false
	}
	prev := it.pos - 1
	if prev < 0 {
		return nil, false
	}
	it.pos = prev
	return it.items[it.pos], true
}

// Count returns the number of items the iterator covers (0 for a nil
// Iterator).
func (it *Iterator) Count() int {
	if it == nil {
		return 0
	}
	return len(it.items)
}
