package lexer

import (
	"testing"

	"github.com/cwbudde/matlangc/internal/token"
)

func TestTokenizeLine_SingleTokens(t *testing.T) {
	cases := []struct {
		lexeme string
		want   token.Category
	}{
		{"scalar", token.ScalarType},
		{"vector", token.VectorType},
		{"matrix", token.MatrixType},
		{"for", token.ForKeyword},
		{"in", token.InKeyword},
		{"print", token.PrintFunction},
		{"printsep", token.PrintSepFunction},
		{"tr", token.TrFunction},
		{"sqrt", token.SqrtFunction},
		{"choose", token.ChooseFunction},
		{"x", token.Identifier},
		{"_foo9", token.Identifier},
		{"[", token.OpenSquareBrackets},
		{"]", token.CloseSquareBrackets},
		{"{", token.OpenCurlyBraces},
		{"}", token.CloseCurlyBraces},
		{"(", token.OpenParenthesis},
		{")", token.CloseParenthesis},
		{"+", token.AdditionOperator},
		{"-", token.SubtractionOperator},
		{"*", token.MultiplicationOperator},
		{"=", token.AssignmentOperator},
		{",", token.Comma},
		{":", token.DoubleColon},
		{"0", token.Integer},
		{"42", token.Integer},
		{"3.14", token.Real},
	}

	for _, tc := range cases {
		t.Run(tc.lexeme, func(t *testing.T) {
			toks, err := TokenizeLine(tc.lexeme, 1)
			if err != nil {
				t.Fatalf("TokenizeLine(%q) error: %v", tc.lexeme, err)
			}
			if len(toks) != 1 {
				t.Fatalf("TokenizeLine(%q) = %d tokens, want 1", tc.lexeme, len(toks))
			}
			if toks[0].Category != tc.want {
				t.Errorf("TokenizeLine(%q) category = %v, want %v", tc.lexeme, toks[0].Category, tc.want)
			}
		})
	}
}

func TestTokenizeLine_KeywordNotIdentifier(t *testing.T) {
	for _, kw := range []string{"scalar", "vector", "matrix", "for", "in", "print", "printsep", "tr", "sqrt", "choose"} {
		toks, err := TokenizeLine(kw, 1)
		if err != nil {
			t.Fatalf("TokenizeLine(%q) error: %v", kw, err)
		}
		if toks[0].Category == token.Identifier {
			t.Errorf("keyword %q classified as Identifier", kw)
		}
	}
}

func TestTokenizeLine_BlankLines(t *testing.T) {
	for _, line := range []string{"", "   ", "\t\t", "  \t "} {
		toks, err := TokenizeLine(line, 1)
		if err != nil {
			t.Fatalf("TokenizeLine(%q) error: %v", line, err)
		}
		if len(toks) != 0 {
			t.Errorf("TokenizeLine(%q) = %d tokens, want 0", line, len(toks))
		}
	}
}

func TestTokenizeLine_Declaration(t *testing.T) {
	toks, err := TokenizeLine("matrix A[2, 2]", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantCats := []token.Category{
		token.MatrixType, token.Identifier, token.OpenSquareBrackets,
		token.Integer, token.Comma, token.Integer, token.CloseSquareBrackets,
	}
	if len(toks) != len(wantCats) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(wantCats), toks)
	}
	for i, cat := range wantCats {
		if toks[i].Category != cat {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Category, cat)
		}
		if toks[i].Line != 5 {
			t.Errorf("token %d: line = %d, want 5", i, toks[i].Line)
		}
	}
}

func TestTokenizeLine_InvalidCharacter(t *testing.T) {
	if _, err := TokenizeLine("x = 3 @ 4", 1); err == nil {
		t.Fatal("expected LexError for '@', got nil")
	}
}

func TestLexError_ErrorIncludesLineNumber(t *testing.T) {
	_, err := TokenizeLine("x = 3 @ 4", 7)
	if err == nil {
		t.Fatal("expected LexError for '@', got nil")
	}
	want := `Error (Line 7): No meaning can be given to "@"`
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestTokenizeLine_ExpressionWithSubtraction(t *testing.T) {
	toks, err := TokenizeLine("x = 3 - 4", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Category{token.Identifier, token.AssignmentOperator, token.Integer, token.SubtractionOperator, token.Integer}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, cat := range want {
		if toks[i].Category != cat {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Category, cat)
		}
	}
}

func TestTokenizeLine_LeadingMinusIsNotPartOfNumber(t *testing.T) {
	// A '-' never extends the running accumulator, so a "negative literal"
	// in source text always lexes as SubtractionOperator followed by an
	// unsigned Integer/Real, never as one signed numeric token. The parser
	// accepts '-' only between two terms, rewriting it to `0 <term> - +`.
	toks, err := TokenizeLine("-4", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Category{token.SubtractionOperator, token.Integer}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, cat := range want {
		if toks[i].Category != cat {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Category, cat)
		}
	}
}

func TestTokenize_PreservesLineNumbers(t *testing.T) {
	source := "scalar x\n\nx = 3\n"
	toks, err := Tokenize(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) == 0 {
		t.Fatal("expected tokens")
	}
	if toks[0].Line != 1 {
		t.Errorf("first token line = %d, want 1", toks[0].Line)
	}
	last := toks[len(toks)-1]
	if last.Line != 3 {
		t.Errorf("last token line = %d, want 3", last.Line)
	}
}
