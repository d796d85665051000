// Package builder implements the programmatic tree construction API of
// spec.md §4.4: factory calls returning opaque Handles, composition calls
// linking them into Object/Array children, and a Build pass that emits
// the same shape of value.Value tree the parser produces.
//
// The teacher has no builder of its own; this is new code, grounded on
// builder.c's uiJsonBuildMake*/uiJsonBuildAddToObject/uiJsonBuildAddToArray
// family. builder.c stores children as a singly-linked chain through a
// "next sibling" index field on each provisional record, specifically so
// that AddTo* is O(1) and never re-allocates a children array — this
// package keeps that representation (firstChild/lastChild/nextSib
// handles) for the identical reason. builder.c also re-fetches every
// pointer it holds into its value vector immediately after each push,
// because a push may have grown (and relocated) the vector; AddToObject
// and AddToArray below do the same against internal/arena.
package builder

import (
	"strconv"

	"github.com/mcvoid/jsontree/internal/arena"
	"github.com/mcvoid/jsontree/internal/jsonerr"
	"github.com/mcvoid/jsontree/parser"
	"github.com/mcvoid/jsontree/value"
)

// Handle identifies a provisional value within a Builder. The zero Handle
// is reserved and never returned by a factory; it is used to detect
// zero/uninitialized handles passed to AddToObject/AddToArray/Build.
type Handle int

type bvalue struct {
	kind  value.Kind
	key   []rune
	str   []rune
	num   value.Number
	count int

	firstChild Handle
	lastChild  Handle
	nextSib    Handle
}

// Builder accumulates provisional values until Build walks them into a
// finished value.Value tree. A Builder is not safe for concurrent use,
// matching spec.md §5.
type Builder struct {
	values *arena.Arena[bvalue]
}

// New returns an empty Builder.
func New() *Builder {
	b := &Builder{values: arena.New[bvalue]()}
	b.values.Push(bvalue{}) // handle 0 is reserved
	return b
}

func (b *Builder) push(v bvalue) Handle {
	return Handle(b.values.Push(v))
}

func (b *Builder) valid(h Handle) bool {
	return h > 0 && int(h) < b.values.Len()
}

// MakeNull returns a handle to a Null value.
func (b *Builder) MakeNull() Handle { return b.push(bvalue{kind: value.Null}) }

// MakeTrue returns a handle to a True value.
func (b *Builder) MakeTrue() Handle { return b.push(bvalue{kind: value.True}) }

// MakeFalse returns a handle to a False value.
func (b *Builder) MakeFalse() Handle { return b.push(bvalue{kind: value.False}) }

// MakeNumberFloat returns a handle to a Float number.
func (b *Builder) MakeNumberFloat(f float64) Handle {
	return b.push(bvalue{kind: value.Number, num: value.Number{Kind: value.Float, Float: f}})
}

// MakeNumberUnsigned returns a handle to an Unsigned number.
func (b *Builder) MakeNumberUnsigned(u uint64) Handle {
	return b.push(bvalue{kind: value.Number, num: value.Number{Kind: value.Unsigned, Unsigned: u}})
}

// MakeNumberSigned returns a handle to a Signed number. A non-negative i
// promotes to Unsigned, per spec.md §4.4.
func (b *Builder) MakeNumberSigned(i int64) Handle {
	if i >= 0 {
		return b.MakeNumberUnsigned(uint64(i))
	}
	return b.push(bvalue{kind: value.Number, num: value.Number{Kind: value.Signed, Signed: i}})
}

// MakeObject returns a handle to an empty Object.
func (b *Builder) MakeObject() Handle { return b.push(bvalue{kind: value.Object}) }

// MakeArray returns a handle to an empty Array.
func (b *Builder) MakeArray() Handle { return b.push(bvalue{kind: value.Array}) }

// MakeStringCodepoints returns a handle to a String built directly from
// code points, with no escape interpretation. Every code point must be a
// valid, non-surrogate scalar ≤ 0x10FFFF.
func (b *Builder) MakeStringCodepoints(cp []rune) (Handle, error) {
	for i, r := range cp {
		if r > 0x10FFFF || (r >= 0xD800 && r <= 0xDFFF) {
			return 0, jsonerr.NoPosition(jsonerr.Range, "code point out of range or in surrogate range at index "+strconv.Itoa(i))
		}
	}
	str := make([]rune, len(cp))
	copy(str, cp)
	return b.push(bvalue{kind: value.String, str: str}), nil
}

// MakeStringBytes returns a handle to a String built by decoding s as the
// content of a JSON string literal (the bytes between the quotes,
// escapes and all). It reuses the parser's own string-content decoder so
// escapes are validated identically to the parse path (spec.md §9).
func (b *Builder) MakeStringBytes(s []byte) (Handle, error) {
	runes, err := parser.DecodeStringContent(s)
	if err != nil {
		return 0, err
	}
	return b.push(bvalue{kind: value.String, str: runes}), nil
}

// AddToObject appends (key, child) to parent's child list in insertion
// order. parent must be an Object handle, key a String handle, child any
// valid handle.
func (b *Builder) AddToObject(parent, key, child Handle) error {
	if !b.valid(parent) || b.values.At(int(parent)).kind != value.Object {
		return jsonerr.NoPosition(jsonerr.Builder, "parent is not a valid object handle")
	}
	if !b.valid(key) || b.values.At(int(key)).kind != value.String {
		return jsonerr.NoPosition(jsonerr.Builder, "key is not a valid string handle")
	}
	if !b.valid(child) {
		return jsonerr.NoPosition(jsonerr.Builder, "child is not a valid handle")
	}

	keyRunes := b.values.At(int(key)).str
	node := b.values.At(int(child))
	newChild := *node
	newChild.key = keyRunes
	newChild.nextSib = 0
	newHandle := b.push(newChild)

	// The push above may have reallocated the backing store; re-fetch
	// before touching any previously-held pointer.
	p := b.values.At(int(parent))
	if p.firstChild == 0 {
		p.firstChild = newHandle
	} else {
		b.values.At(int(p.lastChild)).nextSib = newHandle
	}
	p.lastChild = newHandle
	p.count++
	return nil
}

// AddToArray appends child to parent's child list in insertion order.
// parent must be an Array handle.
func (b *Builder) AddToArray(parent, child Handle) error {
	if !b.valid(parent) || b.values.At(int(parent)).kind != value.Array {
		return jsonerr.NoPosition(jsonerr.Builder, "parent is not a valid array handle")
	}
	if !b.valid(child) {
		return jsonerr.NoPosition(jsonerr.Builder, "child is not a valid handle")
	}

	node := b.values.At(int(child))
	newChild := *node
	newChild.key = nil
	newChild.nextSib = 0
	newHandle := b.push(newChild)

	p := b.values.At(int(parent))
	if p.firstChild == 0 {
		p.firstChild = newHandle
	} else {
		b.values.At(int(p.lastChild)).nextSib = newHandle
	}
	p.lastChild = newHandle
	p.count++
	return nil
}

// Build walks the builder-value chain rooted at root and emits a
// finished value.Value tree. Unlike builder.c's count-then-emit two-pass
// walk, Build does this in a single recursive pass: Go's append-based,
// GC-managed value.Value tree needs no pre-sized stable arena to protect
// against reallocation mid-walk, so the count pass (needed in C only to
// size that arena) has no work left to do here.
func (b *Builder) Build(root Handle) (*value.Value, error) {
	if !b.valid(root) {
		return nil, jsonerr.NoPosition(jsonerr.Builder, "root is not a valid handle")
	}
	return b.buildWalk(root, make(map[Handle]bool))
}

func (b *Builder) buildWalk(h Handle, visited map[Handle]bool) (*value.Value, error) {
	if visited[h] {
		return nil, jsonerr.NoPosition(jsonerr.Internal, "cycle detected while building tree")
	}
	visited[h] = true

	bv := *b.values.At(int(h))
	out := &value.Value{Kind: bv.kind, Key: bv.key, Str: bv.str, Num: bv.num}

	if bv.kind == value.Object || bv.kind == value.Array {
		children := make([]*value.Value, 0, bv.count)
		for c := bv.firstChild; c != 0; {
			childBv := *b.values.At(int(c))
			child, err := b.buildWalk(c, visited)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
			c = childBv.nextSib
		}
		out.Children = children
	}

	return out, nil
}

// Clear resets the builder to its empty state, invalidating every handle
// issued so far.
func (b *Builder) Clear() {
	b.values = arena.New[bvalue]()
	b.values.Push(bvalue{})
}
