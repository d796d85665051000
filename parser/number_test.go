package parser

import (
	"testing"

	"github.com/mcvoid/jsontree/value"
)

func TestParseUintOverflowChecked(t *testing.T) {
	u, ok := parseUintOverflowChecked("18446744073709551615")
	if !ok || u != 18446744073709551615 {
		t.Errorf("expected max uint64, got %v ok=%v", u, ok)
	}
	if _, ok := parseUintOverflowChecked("18446744073709551616"); ok {
		t.Errorf("expected overflow")
	}
}

func TestClassifyNumberLexicalShape(t *testing.T) {
	for _, test := range []struct {
		lit      string
		minus    bool
		frac     bool
		exp      bool
		wantKind value.NumberKind
	}{
		{"1", false, false, false, value.Unsigned},
		{"-1", true, false, false, value.Signed},
		{"1.0", false, true, false, value.Float},
		{"1e5", false, false, true, value.Float},
	} {
		t.Run(test.lit, func(t *testing.T) {
			n, err := classifyNumber(test.lit, test.minus, test.frac, test.exp, 0)
			if err != nil {
				t.Fatalf("expected no error got %v", err)
			}
			if n.Kind != test.wantKind {
				t.Errorf("expected kind %v got %v", test.wantKind, n.Kind)
			}
		})
	}
}
