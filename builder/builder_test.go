package builder

import (
	"testing"

	"github.com/mcvoid/jsontree/value"
)

func TestBuildScenarioFour(t *testing.T) {
	b := New()
	arr := b.MakeArray()
	one := b.MakeNumberUnsigned(1)
	sixtyFiveK := b.MakeNumberUnsigned(65535)
	maxU := b.MakeNumberUnsigned(18446744073709551615)
	if err := b.AddToArray(arr, one); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := b.AddToArray(arr, sixtyFiveK); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := b.AddToArray(arr, maxU); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	obj := b.MakeObject()
	key, err := b.MakeStringBytes([]byte("k"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := b.AddToObject(obj, key, arr); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	tree, err := b.Build(obj)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if tree.Kind != value.Object || len(tree.Children) != 1 {
		t.Fatalf("expected single-member object, got %v", tree)
	}
	kArr := tree.Children[0]
	if string(kArr.Key) != "k" || kArr.Kind != value.Array {
		t.Fatalf("expected array under key k, got %v", kArr)
	}
	want := []uint64{1, 65535, 18446744073709551615}
	for i, c := range kArr.Children {
		if c.Num.Kind != value.Unsigned || c.Num.Unsigned != want[i] {
			t.Errorf("element %d: expected %d got %+v", i, want[i], c.Num)
		}
	}
}

func TestMakeNumberSignedPromotesNonNegative(t *testing.T) {
	b := New()
	h := b.MakeNumberSigned(5)
	tree, err := b.Build(h)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if tree.Num.Kind != value.Unsigned || tree.Num.Unsigned != 5 {
		t.Errorf("expected promotion to Unsigned, got %+v", tree.Num)
	}

	h = b.MakeNumberSigned(-5)
	tree, err = b.Build(h)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if tree.Num.Kind != value.Signed || tree.Num.Signed != -5 {
		t.Errorf("expected Signed -5, got %+v", tree.Num)
	}
}

func TestAddToObjectRejectsWrongKind(t *testing.T) {
	b := New()
	arr := b.MakeArray()
	key, _ := b.MakeStringBytes([]byte("k"))
	child := b.MakeNull()
	if err := b.AddToObject(arr, key, child); err == nil {
		t.Errorf("expected error adding to non-object parent")
	}
}

func TestAddToObjectRejectsNonStringKey(t *testing.T) {
	b := New()
	obj := b.MakeObject()
	notAKey := b.MakeNull()
	child := b.MakeNull()
	if err := b.AddToObject(obj, notAKey, child); err == nil {
		t.Errorf("expected error for non-string key handle")
	}
}

func TestZeroAndOutOfRangeHandlesRejected(t *testing.T) {
	b := New()
	obj := b.MakeObject()
	key, _ := b.MakeStringBytes([]byte("k"))
	if err := b.AddToObject(obj, key, Handle(0)); err == nil {
		t.Errorf("expected error for zero child handle")
	}
	if err := b.AddToObject(obj, key, Handle(9999)); err == nil {
		t.Errorf("expected error for out-of-range child handle")
	}
	if _, err := b.Build(Handle(0)); err == nil {
		t.Errorf("expected error building zero handle")
	}
}

func TestMakeStringBytesRunsParserDecode(t *testing.T) {
	b := New()
	h, err := b.MakeStringBytes([]byte(`a\nb`))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	tree, err := b.Build(h)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if string(tree.Str) != "a\nb" {
		t.Errorf("expected decoded escape, got %q", string(tree.Str))
	}

	if _, err := b.MakeStringBytes([]byte(`\uD800`)); err == nil {
		t.Errorf("expected error for unpaired surrogate")
	}
}

func TestMakeStringCodepointsRejectsSurrogatesAndOutOfRange(t *testing.T) {
	b := New()
	if _, err := b.MakeStringCodepoints([]rune{0xD800}); err == nil {
		t.Errorf("expected error for surrogate code point")
	}
	if _, err := b.MakeStringCodepoints([]rune{0x110000}); err == nil {
		t.Errorf("expected error for out-of-range code point")
	}
	h, err := b.MakeStringCodepoints([]rune{'a', 'b'})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	tree, err := b.Build(h)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if string(tree.Str) != "ab" {
		t.Errorf("expected ab, got %q", string(tree.Str))
	}
}

func TestClearInvalidatesHandles(t *testing.T) {
	b := New()
	h := b.MakeNull()
	b.Clear()
	if _, err := b.Build(h); err == nil {
		t.Errorf("expected error building a handle from before Clear")
	}
}

func TestDuplicateKeysPreservedInBuilder(t *testing.T) {
	b := New()
	obj := b.MakeObject()
	k1, _ := b.MakeStringBytes([]byte("a"))
	k2, _ := b.MakeStringBytes([]byte("a"))
	v1 := b.MakeNumberUnsigned(1)
	v2 := b.MakeNumberUnsigned(2)
	if err := b.AddToObject(obj, k1, v1); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := b.AddToObject(obj, k2, v2); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	tree, err := b.Build(obj)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(tree.Children) != 2 {
		t.Errorf("expected duplicate keys preserved, got %v", tree.Children)
	}
}
