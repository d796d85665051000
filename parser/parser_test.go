package parser

import (
	"fmt"
	"testing"

	"github.com/mcvoid/jsontree/internal/jsonerr"
	"github.com/mcvoid/jsontree/value"
)

func TestParseWithOptionsMaxDepthOverride(t *testing.T) {
	nested := "[[[[1]]]]" // 4 levels deep
	if _, err := ParseWithOptions([]byte(nested), &Options{MaxDepth: 2}); err == nil {
		t.Fatalf("expected nesting-depth error with MaxDepth 2")
	}
	if _, err := ParseWithOptions([]byte(nested), &Options{MaxDepth: 10}); err != nil {
		t.Fatalf("expected success with MaxDepth 10, got %v", err)
	}
	if _, err := ParseWithOptions([]byte(nested), nil); err != nil {
		t.Fatalf("expected success with default MaxDepth, got %v", err)
	}
}

func TestScenarioOneSixMembers(t *testing.T) {
	v, err := ParseString(`{"a":1,"b":-2,"c":1.5,"d":true,"e":null,"f":[1,2,3]}`)
	if err != nil {
		t.Fatalf("expected no error got %v", err)
	}
	if v.Kind != value.Object || len(v.Children) != 6 {
		t.Fatalf("expected 6-member object, got %v", v)
	}

	wantKinds := []value.Kind{value.Number, value.Number, value.Number, value.True, value.Null, value.Array}
	for i, c := range v.Children {
		if c.Kind != wantKinds[i] {
			t.Errorf("member %d: expected kind %v got %v", i, wantKinds[i], c.Kind)
		}
	}
	if v.Children[0].Num.Kind != value.Unsigned || v.Children[0].Num.Unsigned != 1 {
		t.Errorf("member a: expected Unsigned 1, got %+v", v.Children[0].Num)
	}
	if v.Children[1].Num.Kind != value.Signed || v.Children[1].Num.Signed != -2 {
		t.Errorf("member b: expected Signed -2, got %+v", v.Children[1].Num)
	}
	if v.Children[2].Num.Kind != value.Float || v.Children[2].Num.Float != 1.5 {
		t.Errorf("member c: expected Float 1.5, got %+v", v.Children[2].Num)
	}
	f := v.Children[5]
	if len(f.Children) != 3 {
		t.Fatalf("expected array of 3, got %v", f)
	}
	for _, c := range f.Children {
		if c.Num.Kind != value.Unsigned {
			t.Errorf("expected Unsigned array element, got %+v", c.Num)
		}
	}
}

func TestScenarioTwoEscapes(t *testing.T) {
	v, err := ParseString("\"abc\\n\\u0041\\u00FF\"")
	if err != nil {
		t.Fatalf("expected no error got %v", err)
	}
	want := []rune{'a', 'b', 'c', 0x0A, 0x41, 0xFF}
	if string(v.Str) != string(want) {
		t.Errorf("expected %v got %v", want, v.Str)
	}
}

func TestScenarioThreeSurrogatePair(t *testing.T) {
	v, err := ParseString("\"\\uD83D\\uDE00\"")
	if err != nil {
		t.Fatalf("expected no error got %v", err)
	}
	if len(v.Str) != 1 || v.Str[0] != 0x1F600 {
		t.Errorf("expected single code point 0x1F600, got %v", v.Str)
	}
}

func TestScenarioSixTrailingComma(t *testing.T) {
	_, err := ParseString(`{"a":1,}`)
	if err == nil {
		t.Fatalf("expected error")
	}
	cerr, ok := err.(*jsonerr.Error)
	if !ok {
		t.Fatalf("expected *jsonerr.Error, got %T", err)
	}
	if cerr.Kind != jsonerr.Structural {
		t.Errorf("expected Structural kind, got %v", cerr.Kind)
	}

	// the engine must be ready for a fresh parse afterward.
	if _, err := ParseString(`{"a":1}`); err != nil {
		t.Errorf("expected subsequent parse to succeed, got %v", err)
	}
}

func TestBoundaryBehaviours(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"bom only", string([]byte{0xEF, 0xBB, 0xBF})},
		{"single whitespace", " "},
		{"trailing comma array", `[1,2,]`},
		{"trailing comma object", `{"a":1,}`},
		{"unpaired high surrogate", `"\uD800"`},
		{"low before high surrogate", `"\uDC00\uD800"`},
		{"leading plus exponent", `1e+5`},
		{"fraction without integer", `.5`},
		{"decimal point no digits", `1.`},
		{"one past max unsigned", `18446744073709551616`},
		{"one past min signed", `-9223372036854775809`},
		{"overflowing float exponent", `1e400`},
	} {
		t.Run(test.name, func(t *testing.T) {
			if _, err := ParseString(test.input); err == nil {
				t.Errorf("expected error for input %q", test.input)
			}
		})
	}
}

func TestMaxUnsignedAndMinSigned(t *testing.T) {
	v, err := ParseString(`18446744073709551615`)
	if err != nil {
		t.Fatalf("expected no error got %v", err)
	}
	if v.Num.Kind != value.Unsigned || v.Num.Unsigned != 18446744073709551615 {
		t.Errorf("expected max uint64, got %+v", v.Num)
	}

	v, err = ParseString(`-9223372036854775808`)
	if err != nil {
		t.Fatalf("expected no error got %v", err)
	}
	if v.Num.Kind != value.Signed || v.Num.Signed != -9223372036854775808 {
		t.Errorf("expected min int64, got %+v", v.Num)
	}
}

func TestSurrogatePairBoundaries(t *testing.T) {
	v, err := ParseString("\"\\uD800\\uDC00\"")
	if err != nil {
		t.Fatalf("expected no error got %v", err)
	}
	if len(v.Str) != 1 || v.Str[0] != 0x10000 {
		t.Errorf("expected U+10000, got %v", v.Str)
	}
}

func TestDuplicateKeysPreserved(t *testing.T) {
	v, err := ParseString(`{"a":1,"a":2}`)
	if err != nil {
		t.Fatalf("expected no error got %v", err)
	}
	if len(v.Children) != 2 {
		t.Fatalf("expected 2 members preserved, got %v", v.Children)
	}
}

func TestDidNotMatchEntireDocument(t *testing.T) {
	if _, err := ParseString(`{}garbage`); err == nil {
		t.Errorf("expected error for trailing garbage")
	}
}

func TestMissingSeparatorsAndBrackets(t *testing.T) {
	for _, test := range []string{
		`{"a" 1}`,
		`{"a":1`,
		`[1,2`,
		`"unterminated`,
	} {
		t.Run(fmt.Sprintf("%q", test), func(t *testing.T) {
			if _, err := ParseString(test); err == nil {
				t.Errorf("expected error for %q", test)
			}
		})
	}
}

func TestEmptyObjectAndArray(t *testing.T) {
	v, err := ParseString(`{}`)
	if err != nil || v.Kind != value.Object || len(v.Children) != 0 {
		t.Errorf("expected empty object, got %v err=%v", v, err)
	}
	v, err = ParseString(`[]`)
	if err != nil || v.Kind != value.Array || len(v.Children) != 0 {
		t.Errorf("expected empty array, got %v err=%v", v, err)
	}
}

func TestBOMStripped(t *testing.T) {
	v, err := Parse(append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"a":1}`)...))
	if err != nil {
		t.Fatalf("expected no error got %v", err)
	}
	if v.Kind != value.Object {
		t.Errorf("expected object, got %v", v)
	}
}
