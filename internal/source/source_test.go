package source

import "testing"

func TestPrepare_StripsBOM(t *testing.T) {
	got := Prepare("\xEF\xBB\xBFscalar x\n")
	if got != "scalar x\n" {
		t.Fatalf("got %q", got)
	}
}

func TestPrepare_NoBOMUnchanged(t *testing.T) {
	got := Prepare("scalar x\n")
	if got != "scalar x\n" {
		t.Fatalf("got %q", got)
	}
}

func TestPrepare_NormalizesToNFC(t *testing.T) {
	// "e" + combining acute accent (NFD, U+0065 U+0301) should normalize
	// to the precomposed U+00E9 (NFC).
	decomposed := "e\u0301"
	want := "\u00e9"
	got := Prepare(decomposed)
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
