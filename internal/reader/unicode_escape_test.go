package reader

import "testing"

func TestEatRegExpUnicodeEscapeSequenceBasic(t *testing.T) {
	src := "\\u0041"
	r := New(src, 0, len(src), false)
	v, ok := r.EatRegExpUnicodeEscapeSequence(false)
	if !ok || v != 'A' {
		t.Fatalf("expected ('A',true), got (%q,%v)", v, ok)
	}
	if !r.IsEnd() {
		t.Fatal("expected full escape consumed")
	}
}

func TestEatRegExpUnicodeEscapeSequenceBraced(t *testing.T) {
	src := `\u{1F600}`
	r := New(src, 0, len(src), true)
	v, ok := r.EatRegExpUnicodeEscapeSequence(true)
	if !ok || v != 0x1F600 {
		t.Fatalf("expected (0x1F600,true), got (%x,%v)", v, ok)
	}
}

func TestEatRegExpUnicodeEscapeSequenceSurrogatePair(t *testing.T) {
	src := `\uD83D\uDE00` // surrogate pair spelling of U+1F600
	r := New(src, 0, len(src), true)
	v, ok := r.EatRegExpUnicodeEscapeSequence(true)
	if !ok || v != 0x1F600 {
		t.Fatalf("expected (0x1F600,true), got (%x,%v)", v, ok)
	}
}

func TestEatRegExpUnicodeEscapeSequenceLoneSurrogateDecodesAsIs(t *testing.T) {
	src := `\uD83D` // unpaired high surrogate, no following \u
	r := New(src, 0, len(src), true)
	v, ok := r.EatRegExpUnicodeEscapeSequence(true)
	if !ok || v != 0xD83D {
		t.Fatalf("expected lone surrogate value 0xD83D, got (%x,%v)", v, ok)
	}
}

func TestEatRegExpUnicodeEscapeSequenceRejectsShortHex(t *testing.T) {
	src := `\u12`
	r := New(src, 0, len(src), false)
	_, ok := r.EatRegExpUnicodeEscapeSequence(false)
	if ok {
		t.Fatal("expected failure on truncated \\uXXXX")
	}
}
