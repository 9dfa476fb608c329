package semantic

import (
	"testing"

	"github.com/cwbudde/matlangc/internal/lexer"
	"github.com/cwbudde/matlangc/internal/parser"
	"github.com/cwbudde/matlangc/internal/symtab"
)

func parseLines(t *testing.T, table *symtab.Table, lines []string) []parser.Statement {
	t.Helper()
	p := parser.New(table)
	var statements []parser.Statement
	for i, line := range lines {
		toks, err := lexer.TokenizeLine(line, i+1)
		if err != nil {
			t.Fatalf("tokenize %q: %v", line, err)
		}
		if len(toks) == 0 {
			continue
		}
		stmt, err := p.ParseLine(toks, i+1)
		if err != nil {
			t.Fatalf("parse %q: %v", line, err)
		}
		statements = append(statements, stmt)
	}
	return statements
}

func TestAnalyze_AllDeclaredPasses(t *testing.T) {
	table := symtab.New()
	statements := parseLines(t, table, []string{
		"scalar x",
		"x = 3 + 4",
		"print(x)",
	})
	if err := New(table).Analyze(statements); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAnalyze_UndeclaredIdentifierFails(t *testing.T) {
	table := symtab.New()
	p := parser.New(table)
	toks, err := lexer.TokenizeLine("y = x + 1", 1)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	stmt, err := p.ParseLine(toks, 1)
	if err != nil {
		t.Fatalf("parse (identifiers aren't checked until semantic pass): %v", err)
	}

	err = New(table).Analyze([]parser.Statement{stmt})
	if err == nil {
		t.Fatalf("expected undeclared identifier error")
	}
	if _, ok := err.(*UndeclaredError); !ok {
		t.Fatalf("error type = %T, want *UndeclaredError", err)
	}
}
