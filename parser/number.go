// Number literal scanning and classification. Grounded on parser-callbacks.c's
// number-end dispatch (convert via strtod when fractional/exponent, else
// overflow-checked unsigned accumulation, negated into signed when a
// leading minus was seen) and its bMultiplyUint/bSumUint/bStringToUint
// overflow-checked accumulators — reimplemented in Go rather than reached
// for via strconv.ParseInt/ParseFloat alone, because spec.md §7 requires a
// specific Numeric-overflow error rather than strconv's generic range
// error.
package parser

import (
	"math"
	"strconv"

	"github.com/mcvoid/jsontree/internal/jsonerr"
	"github.com/mcvoid/jsontree/value"
)

// parseNumber scans a number literal starting at p.pos and returns its
// classified Value. p.pos is left just past the literal.
func (p *parser) parseNumber() (*value.Value, error) {
	start := p.pos
	hasMinus := false

	if p.peek() == '-' {
		hasMinus = true
		p.pos++
	}

	if !p.hasMore() || !isDigit(p.peek()) {
		return nil, jsonerr.New(jsonerr.Lexical, "invalid character detected - probably malformed UTF-8", p.pos)
	}

	if p.peek() == '0' {
		p.pos++
	} else {
		for p.hasMore() && isDigit(p.peek()) {
			p.pos++
		}
	}

	hasFrac := false
	if p.hasMore() && p.peek() == '.' {
		hasFrac = true
		p.pos++
		if !p.hasMore() || !isDigit(p.peek()) {
			return nil, jsonerr.New(jsonerr.Numeric, "a decimal point must be followed by one or more digits", p.pos)
		}
		for p.hasMore() && isDigit(p.peek()) {
			p.pos++
		}
	}

	hasExp := false
	if p.hasMore() && (p.peek() == 'e' || p.peek() == 'E') {
		hasExp = true
		p.pos++
		if p.hasMore() && p.peek() == '+' {
			return nil, jsonerr.New(jsonerr.Numeric, "leading plus sign not allowed in exponent", p.pos)
		}
		if p.hasMore() && p.peek() == '-' {
			p.pos++
		}
		if !p.hasMore() || !isDigit(p.peek()) {
			return nil, jsonerr.New(jsonerr.Numeric, "exponent must be followed by one or more digits", p.pos)
		}
		for p.hasMore() && isDigit(p.peek()) {
			p.pos++
		}
	}

	lit := string(p.src[start:p.pos])
	num, err := classifyNumber(lit, hasMinus, hasFrac, hasExp, start)
	if err != nil {
		return nil, err
	}
	return &value.Value{Kind: value.Number, Num: num}, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// classifyNumber converts the scanned literal per spec.md §3/§4.2: a
// fractional or exponent part forces Float; otherwise the digit magnitude
// is accumulated with overflow checking and classified Signed or
// Unsigned.
func classifyNumber(lit string, hasMinus, hasFrac, hasExp bool, offset int) (value.Number, *jsonerr.Error) {
	if hasFrac || hasExp {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil || math.IsInf(f, 0) {
			return value.Number{}, jsonerr.New(jsonerr.Numeric, "floating point literal out of range", offset)
		}
		return value.Number{Kind: value.Float, Float: f}, nil
	}

	digits := lit
	if hasMinus {
		digits = lit[1:]
	}
	u, ok := parseUintOverflowChecked(digits)
	if !ok {
		return value.Number{}, jsonerr.New(jsonerr.Numeric, "integer literal overflow", offset)
	}

	if hasMinus {
		if u > uint64(math.MaxInt64)+1 {
			return value.Number{}, jsonerr.New(jsonerr.Numeric, "integer literal overflow", offset)
		}
		if u == uint64(math.MaxInt64)+1 {
			return value.Number{Kind: value.Signed, Signed: math.MinInt64}, nil
		}
		return value.Number{Kind: value.Signed, Signed: -int64(u)}, nil
	}
	return value.Number{Kind: value.Unsigned, Unsigned: u}, nil
}

// parseUintOverflowChecked accumulates digits as a base-10 uint64,
// reporting overflow instead of wrapping, mirroring bMultiplyUint/bSumUint
// in parser-callbacks.c.
func parseUintOverflowChecked(digits string) (uint64, bool) {
	var acc uint64
	for i := 0; i < len(digits); i++ {
		d := uint64(digits[i] - '0')
		m, ok := mulOverflowsU64(acc, 10)
		if !ok {
			return 0, false
		}
		s, ok := addOverflowsU64(m, d)
		if !ok {
			return 0, false
		}
		acc = s
	}
	return acc, true
}

func mulOverflowsU64(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	r := a * b
	if r/b != a {
		return 0, false
	}
	return r, true
}

func addOverflowsU64(a, b uint64) (uint64, bool) {
	r := a + b
	if r < a {
		return 0, false
	}
	return r, true
}
