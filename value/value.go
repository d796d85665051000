// Package value defines the typed JSON value tree produced by both the
// parser and the builder, so that downstream consumers cannot distinguish
// the source of a Tree (spec.md §4.4). The shape is grounded on the
// teacher's Value struct (github.com/mcvoid/json's json.go) but widens its
// float64/int64/string/bool/array/object union to the Unsigned/Signed/
// Float split and arbitrary-code-point strings spec.md §3 requires.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the tag of a Value.
type Kind int

const (
	Null Kind = iota
	Object
	Array
	String
	Number
	True
	False
	numKinds
	Unknown Kind = -1
)

var kindStrings = [numKinds]string{
	"<null>",
	"<object>",
	"<array>",
	"<string>",
	"<number>",
	"<true>",
	"<false>",
}

// String returns a human-readable name for k, or "<unknown>" if k is out
// of range (mirrors the teacher's Type.String()).
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "<unknown>"
	}
	return kindStrings[k]
}

// NumberKind distinguishes the three numeric sub-types spec.md §3 defines.
type NumberKind int

const (
	Unsigned NumberKind = iota
	Signed
	Float
)

func (k NumberKind) String() string {
	switch k {
	case Unsigned:
		return "unsigned"
	case Signed:
		return "signed"
	case Float:
		return "float"
	default:
		return "<unknown>"
	}
}

// Number is a tagged numeric value; only the field matching Kind is
// meaningful.
type Number struct {
	Kind     NumberKind
	Unsigned uint64
	Signed   int64
	Float    float64
}

// String renders n in decimal, using the shortest representation that
// round-trips for floats; it is a debug aid, not a JSON emitter, and its
// float output can differ from the writer's (no ".0" suffix, lowercase
// exponent with sign).
func (n Number) String() string {
	switch n.Kind {
	case Unsigned:
		return strconv.FormatUint(n.Unsigned, 10)
	case Signed:
		return strconv.FormatInt(n.Signed, 10)
	case Float:
		return strconv.FormatFloat(n.Float, 'g', -1, 64)
	default:
		return "<unknown number>"
	}
}

// Value is one node of a JSON value tree. Key is non-nil iff the value is
// a direct child of an Object (spec.md §3's "non-null key iff parent is an
// Object" invariant). Only the field matching Kind is populated: Str
// for Kind==String, Num for Kind==Number, Children for Kind==Object/Array.
type Value struct {
	Kind     Kind
	Key      []rune
	Str      []rune
	Num      Number
	Children []*Value
}

// AsNull reports whether v is the Null kind.
func (v *Value) AsNull() (struct{}, error) {
	if v.Kind == Null {
		return struct{}{}, nil
	}
	return struct{}{}, fmt.Errorf("value not null: %v", v)
}

// AsString extracts a String payload.
func (v *Value) AsString() (string, error) {
	if v.Kind != String {
		return "", fmt.Errorf("value not a string: %v", v)
	}
	return string(v.Str), nil
}

// AsRunes extracts a String payload as its original code points, without
// the lossy round-trip through Go's UTF-8 string encoding.
func (v *Value) AsRunes() ([]rune, error) {
	if v.Kind != String {
		return nil, fmt.Errorf("value not a string: %v", v)
	}
	return v.Str, nil
}

// AsNumber extracts the Number payload.
func (v *Value) AsNumber() (Number, error) {
	if v.Kind != Number {
		return Number{}, fmt.Errorf("value not a number: %v", v)
	}
	return v.Num, nil
}

// AsBool extracts a True/False payload.
func (v *Value) AsBool() (bool, error) {
	switch v.Kind {
	case True:
		return true, nil
	case False:
		return false, nil
	default:
		return false, fmt.Errorf("value not a boolean: %v", v)
	}
}

// AsArray extracts an Array's children.
func (v *Value) AsArray() ([]*Value, error) {
	if v.Kind != Array {
		return nil, fmt.Errorf("value not an array: %v", v)
	}
	return v.Children, nil
}

// AsObject extracts an Object's children as a key->value map. Duplicate
// keys are collapsed to their last occurrence by map semantics; callers
// needing insertion-ordered duplicates should walk Children directly
// (spec.md §3 explicitly preserves duplicates at the data level).
func (v *Value) AsObject() (map[string]*Value, error) {
	if v.Kind != Object {
		return nil, fmt.Errorf("value not an object: %v", v)
	}
	m := make(map[string]*Value, len(v.Children))
	for _, c := range v.Children {
		m[string(c.Key)] = c
	}
	return m, nil
}

// DuplicateKeys walks v and every descendant, returning the key of every
// object member that shares a key with a sibling, in first-occurrence
// order. Duplicates are preserved at the data level (spec.md §3); this
// walk exists for callers that want to detect, rather than silently
// collapse, that condition (e.g. the CLI driver's --strict-duplicates
// flag).
func (v *Value) DuplicateKeys() []string {
	var dups []string
	var walk func(*Value)
	walk = func(n *Value) {
		if n == nil {
			return
		}
		if n.Kind == Object {
			counts := make(map[string]int, len(n.Children))
			for _, c := range n.Children {
				counts[string(c.Key)]++
			}
			reported := make(map[string]bool, len(counts))
			for _, c := range n.Children {
				k := string(c.Key)
				if counts[k] > 1 && !reported[k] {
					dups = append(dups, k)
					reported[k] = true
				}
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(v)
	return dups
}

// Index is a fluent accessor for array children. Out-of-range or
// non-array access yields the zero Value instead of an error, matching
// the teacher's drill-down ergonomics for chained lookups.
func (v *Value) Index(i int) *Value {
	if v.Kind != Array || i < 0 || i >= len(v.Children) {
		return &Value{Kind: Null}
	}
	return v.Children[i]
}

// Key is a fluent accessor for the first object child with the given key.
// Returns the zero Value if v is not an Object or no child has that key.
func (v *Value) Key(k string) *Value {
	if v.Kind != Object {
		return &Value{Kind: Null}
	}
	for _, c := range v.Children {
		if string(c.Key) == k {
			return c
		}
	}
	return &Value{Kind: Null}
}

// String renders a debug (not JSON) representation of v, mirroring the
// teacher's Value.String().
func (v *Value) String() string {
	switch v.Kind {
	case Null:
		return "null"
	case True:
		return "true"
	case False:
		return "false"
	case Number:
		return v.Num.String()
	case String:
		return strconv.Quote(string(v.Str))
	case Array:
		var b strings.Builder
		b.WriteByte('[')
		for i, c := range v.Children {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(c.String())
		}
		b.WriteByte(']')
		return b.String()
	case Object:
		var b strings.Builder
		b.WriteByte('{')
		for i, c := range v.Children {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Quote(string(c.Key)))
			b.WriteString(": ")
			b.WriteString(c.String())
		}
		b.WriteByte('}')
		return b.String()
	default:
		return "<unknown>"
	}
}
