package preprocess

import "testing"

func TestStrip_RemovesTrailingComment(t *testing.T) {
	got, err := Strip("scalar x # declare x\nx = 1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "scalar x \nx = 1\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStrip_LineWithNoHashIsUnchanged(t *testing.T) {
	got, err := Strip("scalar x\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "scalar x\n" {
		t.Fatalf("got %q", got)
	}
}

func TestStrip_PreservesLineCount(t *testing.T) {
	in := "# full comment\nscalar x\n\nx = 1 # trailing\n"
	got, err := Strip(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantLines := 4
	lines := 0
	for _, r := range got {
		if r == '\n' {
			lines++
		}
	}
	if lines != wantLines {
		t.Fatalf("line count = %d, want %d", lines, wantLines)
	}
}

func TestStrip_EntireLineCommentBecomesBlank(t *testing.T) {
	got, err := Strip("# just a comment\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "\n" {
		t.Fatalf("got %q, want blank line", got)
	}
}
