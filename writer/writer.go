// Package writer serializes a value.Value tree to canonical, indented
// UTF-8 JSON, per spec.md §4.5. Grounded line-for-line on json.c's
// vPushObject/vPushArray/vPushString/vPushNumber/vPushValue: two-space
// indent steps, uppercase-hex \uXXXX escapes for control characters,
// literal escapes for backslash and quote, surrogate/out-of-range
// rejection, and at-least-16-significant-digit float formatting
// (grounded on the C writer's "%.16G" format verb).
//
// One deliberate deviation from the literal C behavior: vPushObject
// breaks and indents before the child loop even when the container has
// no children, which for an empty object or array produces a blank
// indented line between the brackets. This writer special-cases empty
// containers to emit "{}"/"[]" directly instead.
package writer

import (
	"strconv"
	"strings"

	"github.com/mcvoid/jsontree/internal/jsonerr"
	"github.com/mcvoid/jsontree/value"
)

const indentStep = 2

// Write serializes root and everything reachable from it.
func Write(root *value.Value) ([]byte, error) {
	var out []rune
	if err := emitValue(&out, root, 0); err != nil {
		return nil, err
	}
	return []byte(string(out)), nil
}

func emitValue(out *[]rune, v *value.Value, depth int) error {
	switch v.Kind {
	case value.Null:
		*out = append(*out, []rune("null")...)
	case value.True:
		*out = append(*out, []rune("true")...)
	case value.False:
		*out = append(*out, []rune("false")...)
	case value.Number:
		return emitNumber(out, v.Num)
	case value.String:
		return emitString(out, v.Str)
	case value.Object:
		return emitContainer(out, v, depth, '{', '}')
	case value.Array:
		return emitContainer(out, v, depth, '[', ']')
	default:
		return jsonerr.NoPosition(jsonerr.Internal, "value has unknown kind")
	}
	return nil
}

func emitContainer(out *[]rune, v *value.Value, depth int, open, close rune) error {
	*out = append(*out, open)
	if len(v.Children) == 0 {
		*out = append(*out, close)
		return nil
	}

	childDepth := depth + indentStep
	breakIndent(out, childDepth)
	for i, c := range v.Children {
		if i > 0 {
			*out = append(*out, ',')
			breakIndent(out, childDepth)
		}
		if c.Key != nil {
			if err := emitString(out, c.Key); err != nil {
				return err
			}
			*out = append(*out, ':', ' ')
		}
		if err := emitValue(out, c, childDepth); err != nil {
			return err
		}
	}
	breakIndent(out, depth)
	*out = append(*out, close)
	return nil
}

func breakIndent(out *[]rune, n int) {
	*out = append(*out, '\n')
	for i := 0; i < n; i++ {
		*out = append(*out, ' ')
	}
}

func emitString(out *[]rune, s []rune) error {
	*out = append(*out, '"')
	for _, r := range s {
		switch {
		case r == '\\':
			*out = append(*out, '\\', '\\')
		case r == '"':
			*out = append(*out, '\\', '"')
		case r <= 0x1F:
			*out = append(*out, '\\', 'u')
			*out = append(*out, []rune(padHex4(r))...)
		case r >= 0xD800 && r <= 0xDFFF:
			return jsonerr.NoPosition(jsonerr.Range, "code point in surrogate range")
		case r > 0x10FFFF:
			return jsonerr.NoPosition(jsonerr.Range, "code point above 0x10FFFF")
		default:
			*out = append(*out, r)
		}
	}
	*out = append(*out, '"')
	return nil
}

func padHex4(r rune) string {
	s := strings.ToUpper(strconv.FormatInt(int64(r), 16))
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}

func emitNumber(out *[]rune, n value.Number) error {
	switch n.Kind {
	case value.Unsigned:
		*out = append(*out, []rune(strconv.FormatUint(n.Unsigned, 10))...)
	case value.Signed:
		*out = append(*out, []rune(strconv.FormatInt(n.Signed, 10))...)
	case value.Float:
		*out = append(*out, []rune(formatFloat(n.Float))...)
	default:
		return jsonerr.NoPosition(jsonerr.Internal, "number has unknown kind")
	}
	return nil
}

// formatFloat mirrors the C writer's "%.16G" verb: at least 16
// significant digits, with a trailing ".0" appended when the result
// would otherwise read as an integer, preserving Float's round-trip
// classification on re-parse. strconv.FormatFloat emits an explicit "+"
// exponent sign for large-magnitude values (e.g. "1.7E+18"), which the
// parser's RFC 8259 grammar rejects on a leading plus in an exponent;
// that sign is stripped so every written number is parser-acceptable.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'G', 16, 64)
	s = strings.Replace(s, "E+", "E", 1)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
