// String-content decoding shared by the parser's string rule and the
// builder's byte-string factory (spec.md §4.4's "re-using the grammar for
// builder string validation" design note, and §9's design note of the same
// name). Grounded on parser-callbacks.c's uiUtf8_2byte/3byte/4byte and
// uiUtf16_1/uiUtf16_2 callbacks, reimplemented against Go's utf8 package
// instead of APG's manual bit-shift decode — the teacher itself delegates
// UTF-8 decoding to bufio.Reader.ReadRune, so leaning on unicode/utf8 here
// keeps the same "let the stdlib decode runes" texture.
package parser

import (
	"unicode/utf8"

	"github.com/mcvoid/jsontree/internal/jsonerr"
)

const (
	highSurrogateLo = 0xD800
	highSurrogateHi = 0xDBFF
	lowSurrogateLo  = 0xDC00
	lowSurrogateHi  = 0xDFFF
	maxCodePoint    = 0x10FFFF
)

// decodeStringRunes scans string content starting at src[start]. When
// requireClose is true, scanning stops at an unescaped '"' and start is
// assumed to be just past the opening quote (the parser's own string
// rule). When requireClose is false, scanning runs to the end of src and
// an unescaped '"' is itself an error (the builder's byte-string factory,
// which receives only the content between the quotes).
func decodeStringRunes(src []byte, start int, requireClose bool) (runes []rune, end int, cerr *jsonerr.Error) {
	i := start
	for {
		if i >= len(src) {
			if requireClose {
				return nil, i, jsonerr.New(jsonerr.Structural, "missing string terminator", i)
			}
			return runes, i, nil
		}
		c := src[i]
		switch {
		case c == '"':
			if requireClose {
				return runes, i + 1, nil
			}
			return nil, i, jsonerr.New(jsonerr.Lexical, "unescaped quote in string content", i)
		case c == '\\':
			r, next, err := decodeEscape(src, i+1)
			if err != nil {
				return nil, i, err
			}
			runes = append(runes, r)
			i = next
		case c < 0x20:
			return nil, i, jsonerr.New(jsonerr.Lexical, "invalid character detected - probably malformed UTF-8", i)
		case c < 0x80:
			runes = append(runes, rune(c))
			i++
		default:
			r, size := utf8.DecodeRune(src[i:])
			if r == utf8.RuneError && size <= 1 {
				return nil, i, jsonerr.New(jsonerr.Lexical, "invalid character detected - probably malformed UTF-8", i)
			}
			if r >= highSurrogateLo && r <= lowSurrogateHi {
				return nil, i, jsonerr.New(jsonerr.Range, "code point in surrogate range", i)
			}
			runes = append(runes, r)
			i += size
		}
	}
}

// decodeEscape decodes one escape sequence, with pos pointing just past
// the backslash. It returns the decoded rune and the offset just past the
// sequence consumed (which may include a second \uXXXX for a surrogate
// pair).
func decodeEscape(src []byte, pos int) (rune, int, *jsonerr.Error) {
	if pos >= len(src) {
		return 0, 0, jsonerr.New(jsonerr.Structural, "missing string terminator", pos)
	}
	switch src[pos] {
	case '"':
		return '"', pos + 1, nil
	case '\\':
		return '\\', pos + 1, nil
	case '/':
		return '/', pos + 1, nil
	case 'b':
		return '\b', pos + 1, nil
	case 'f':
		return '\f', pos + 1, nil
	case 'n':
		return '\n', pos + 1, nil
	case 'r':
		return '\r', pos + 1, nil
	case 't':
		return '\t', pos + 1, nil
	case 'u':
		return decodeUnicodeEscape(src, pos+1)
	default:
		return 0, 0, jsonerr.New(jsonerr.Lexical, "invalid escape sequence", pos-1)
	}
}

// decodeUnicodeEscape decodes a \uXXXX escape (and, for a high surrogate,
// the \uXXXX that must follow it), with pos pointing at the first hex
// digit.
func decodeUnicodeEscape(src []byte, pos int) (rune, int, *jsonerr.Error) {
	h, next, err := readHex4(src, pos)
	if err != nil {
		return 0, 0, err
	}

	switch {
	case h >= lowSurrogateLo && h <= lowSurrogateHi:
		return 0, 0, jsonerr.New(jsonerr.Lexical, "low surrogate not preceded by high", pos-2)
	case h >= highSurrogateLo && h <= highSurrogateHi:
		if next+1 >= len(src) || src[next] != '\\' || src[next+1] != 'u' {
			return 0, 0, jsonerr.New(jsonerr.Lexical, "high surrogate not followed by low", pos-2)
		}
		l, next2, err := readHex4(src, next+2)
		if err != nil {
			return 0, 0, err
		}
		if l < lowSurrogateLo || l > lowSurrogateHi {
			return 0, 0, jsonerr.New(jsonerr.Lexical, "high surrogate not followed by low", pos-2)
		}
		scalar := ((h - highSurrogateLo) << 10) + (l - lowSurrogateLo) + 0x10000
		return rune(scalar), next2, nil
	default:
		return rune(h), next, nil
	}
}

func readHex4(src []byte, pos int) (uint32, int, *jsonerr.Error) {
	if pos+4 > len(src) {
		return 0, 0, jsonerr.New(jsonerr.Lexical, "invalid \\u hex digits", pos)
	}
	var v uint32
	for i := 0; i < 4; i++ {
		d, ok := hexDigit(src[pos+i])
		if !ok {
			return 0, 0, jsonerr.New(jsonerr.Lexical, "invalid \\u hex digits", pos+i)
		}
		v = v<<4 | uint32(d)
	}
	return v, pos + 4, nil
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint32(c-'A') + 10, true
	default:
		return 0, false
	}
}

// DecodeStringContent decodes the bytes between the quotes of a JSON
// string literal, exactly the way the parser's own string rule does, so
// that builder.MakeStringBytes validates and decodes escapes identically
// to the parse path (spec.md §9, "re-using the grammar for builder string
// validation"). An empty s decodes to an empty, non-nil rune slice.
func DecodeStringContent(s []byte) ([]rune, error) {
	runes, end, err := decodeStringRunes(s, 0, false)
	if err != nil {
		return nil, err
	}
	if end != len(s) {
		return nil, jsonerr.New(jsonerr.Builder, "invalid character in string content", end)
	}
	if runes == nil {
		runes = []rune{}
	}
	return runes, nil
}
