// Package parser implements the strict RFC 8259 front-end described in
// spec.md §4.2: a byte stream in, a finalised value.Value tree out.
//
// The teacher (github.com/mcvoid/json, parser.go) drives a hand-written
// pushdown automaton: an asciiClasses lookup table feeds a
// stateTransitionTable, with push/pop operations against fixed-size
// modeStack/valueStack arrays. That table recognizes the grammar but
// leaves escape decoding to strconv.Unquote and number conversion to
// strconv.ParseInt/ParseFloat, and it deliberately accepts trailing
// commas (see its example_test.go). spec.md §4.2 requires both: full
// \uXXXX/surrogate-pair decoding with specific error messages the
// stdlib's generic unquoting cannot produce, and trailing-comma
// rejection — a REDESIGN FLAG relative to the teacher's stated behavior.
//
// Rather than extend the teacher's literal state/class tables (which
// would grow from the teacher's single JSON grammar into something
// considerably larger to also carry escape/number classification),
// this front-end is organized as recursive descent, one function per
// grammar rule — the same "one callback per rule" shape APG's C
// reference gives the grammar in parser-callbacks.c, translated into
// direct Go calls instead of a dispatch table, since Go's call stack is
// already the frame stack spec.md §4.2 describes.
package parser

import (
	"bytes"
	"io"

	"github.com/mcvoid/jsontree/internal/jsonerr"
	"github.com/mcvoid/jsontree/internal/linemap"
	"github.com/mcvoid/jsontree/value"
)

// maxDepth bounds nesting depth, preserved from the teacher's fixed
// modeStack/valueStack sizing (depth = 1024 in parser.go), reinterpreted
// here as a recursion-depth guard rather than a fixed array size.
const maxDepth = 1024

var bom = []byte{0xEF, 0xBB, 0xBF}

type parser struct {
	src      []byte
	pos      int
	maxDepth int
}

// Options configures a parse beyond Parse's defaults. The zero Options
// (or a nil *Options passed to ParseWithOptions) means "use package
// defaults".
type Options struct {
	// MaxDepth overrides maxDepth's nesting guard. Zero means "use the
	// package default" (maxDepth).
	MaxDepth int
}

// Parse parses data as a complete JSON document and returns its value
// tree.
func Parse(data []byte) (*value.Value, error) {
	return ParseWithOptions(data, nil)
}

// ParseWithOptions parses data like Parse, but lets callers override the
// nesting-depth guard via opts.MaxDepth (e.g. the CLI driver's
// --max-depth flag).
func ParseWithOptions(data []byte, opts *Options) (*value.Value, error) {
	data = stripBOM(data)

	if len(data) == 0 {
		return nil, jsonerr.New(jsonerr.Input, "empty input", 0)
	}

	depth := maxDepth
	if opts != nil && opts.MaxDepth > 0 {
		depth = opts.MaxDepth
	}

	p := &parser{src: data, maxDepth: depth}
	p.skipWhitespace()
	if !p.hasMore() {
		return nil, withPosition(data, jsonerr.New(jsonerr.Input, "empty input", p.pos))
	}

	root, err := p.parseValue(0)
	if err != nil {
		return nil, withPosition(data, err)
	}

	p.skipWhitespace()
	if p.hasMore() {
		return nil, withPosition(data, jsonerr.New(jsonerr.Input, "did not match the entire document", p.pos))
	}

	return root, nil
}

// ParseString parses s as a complete JSON document.
func ParseString(s string) (*value.Value, error) {
	return Parse([]byte(s))
}

// ParseReader slurps r in full and parses it (spec.md §5: a single bulk
// read, streaming is a non-goal).
func ParseReader(r io.Reader) (*value.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, jsonerr.NoPosition(jsonerr.Input, "i/o failure: "+err.Error())
	}
	return Parse(data)
}

func stripBOM(data []byte) []byte {
	if bytes.HasPrefix(data, bom) {
		return data[len(bom):]
	}
	return data
}

func withPosition(src []byte, err error) error {
	cerr, ok := err.(*jsonerr.Error)
	if !ok {
		return err
	}
	lm := linemap.New(src)
	if line, col, ok := lm.OffsetToLineCol(cerr.Offset); ok {
		cerr.WithPosition(line, col)
	}
	return cerr
}

func (p *parser) hasMore() bool {
	return p.pos < len(p.src)
}

func (p *parser) peek() byte {
	return p.src[p.pos]
}

func (p *parser) skipWhitespace() {
	for p.hasMore() {
		switch p.peek() {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// parseValue dispatches on the lookahead byte to the rule for the value
// kind it introduces, mirroring the ACTIVE state of spec.md §4.2's frame
// stack: entering parseValue is "push a frame", returning is "pop it".
func (p *parser) parseValue(depth int) (*value.Value, error) {
	if depth > p.maxDepth {
		return nil, jsonerr.New(jsonerr.Internal, "maximum nesting depth exceeded", p.pos)
	}
	if !p.hasMore() {
		return nil, jsonerr.New(jsonerr.Structural, "unexpected end of input", p.pos)
	}

	switch c := p.peek(); {
	case c == '{':
		return p.parseObject(depth)
	case c == '[':
		return p.parseArray(depth)
	case c == '"':
		runes, err := p.parseQuotedString()
		if err != nil {
			return nil, err
		}
		return &value.Value{Kind: value.String, Str: runes}, nil
	case c == 't':
		return p.parseLiteral("true", value.True)
	case c == 'f':
		return p.parseLiteral("false", value.False)
	case c == 'n':
		return p.parseLiteral("null", value.Null)
	case c == '-' || isDigit(c):
		return p.parseNumber()
	default:
		return nil, jsonerr.New(jsonerr.Lexical, "invalid character detected - probably malformed UTF-8", p.pos)
	}
}

func (p *parser) parseLiteral(lit string, kind value.Kind) (*value.Value, error) {
	if p.pos+len(lit) > len(p.src) || string(p.src[p.pos:p.pos+len(lit)]) != lit {
		return nil, jsonerr.New(jsonerr.Lexical, "invalid character detected - probably malformed UTF-8", p.pos)
	}
	p.pos += len(lit)
	return &value.Value{Kind: kind}, nil
}

func (p *parser) parseQuotedString() ([]rune, error) {
	// p.pos is at the opening quote.
	runes, end, err := decodeStringRunes(p.src, p.pos+1, true)
	if err != nil {
		return nil, err
	}
	p.pos = end
	if runes == nil {
		runes = []rune{}
	}
	return runes, nil
}

// parseObject implements spec.md §4.2's frame stack for Object: open
// brace pushes the frame, each member's key-begin rule records the next
// key on this frame, each closing comma must be followed by another
// member (trailing comma is rejected per the REDESIGN FLAG in this
// package's doc comment), and the closing brace pops the frame.
func (p *parser) parseObject(depth int) (*value.Value, error) {
	p.pos++ // consume '{'
	obj := &value.Value{Kind: value.Object}

	p.skipWhitespace()
	if p.hasMore() && p.peek() == '}' {
		p.pos++
		return obj, nil
	}

	for {
		p.skipWhitespace()
		if !p.hasMore() || p.peek() != '"' {
			return nil, jsonerr.New(jsonerr.Structural, "expected object key", p.pos)
		}
		key, err := p.parseQuotedString()
		if err != nil {
			return nil, err
		}

		p.skipWhitespace()
		if !p.hasMore() || p.peek() != ':' {
			return nil, jsonerr.New(jsonerr.Structural, "expected key/value name separator (:) not found", p.pos)
		}
		p.pos++
		p.skipWhitespace()

		child, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		child.Key = key
		obj.Children = append(obj.Children, child)

		p.skipWhitespace()
		if !p.hasMore() {
			return nil, jsonerr.New(jsonerr.Structural, "expected closing object bracket } not found", p.pos)
		}
		switch p.peek() {
		case ',':
			p.pos++
			p.skipWhitespace()
			if p.hasMore() && p.peek() == '}' {
				return nil, jsonerr.New(jsonerr.Structural, "trailing comma not allowed in objects", p.pos-1)
			}
			continue
		case '}':
			p.pos++
			return obj, nil
		default:
			return nil, jsonerr.New(jsonerr.Structural, "expected closing object bracket } not found", p.pos)
		}
	}
}

// parseArray mirrors parseObject without key handling.
func (p *parser) parseArray(depth int) (*value.Value, error) {
	p.pos++ // consume '['
	arr := &value.Value{Kind: value.Array}

	p.skipWhitespace()
	if p.hasMore() && p.peek() == ']' {
		p.pos++
		return arr, nil
	}

	for {
		p.skipWhitespace()
		child, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		arr.Children = append(arr.Children, child)

		p.skipWhitespace()
		if !p.hasMore() {
			return nil, jsonerr.New(jsonerr.Structural, "expected closing array bracket ] not found", p.pos)
		}
		switch p.peek() {
		case ',':
			p.pos++
			p.skipWhitespace()
			if p.hasMore() && p.peek() == ']' {
				return nil, jsonerr.New(jsonerr.Structural, "trailing comma not allowed in arrays", p.pos-1)
			}
			continue
		case ']':
			p.pos++
			return arr, nil
		default:
			return nil, jsonerr.New(jsonerr.Structural, "expected closing array bracket ] not found", p.pos)
		}
	}
}
