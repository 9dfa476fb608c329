package diagtrace

import (
	"testing"

	"github.com/tidwall/gjson"

	"github.com/cwbudde/matlangc/internal/lexer"
	"github.com/cwbudde/matlangc/internal/parser"
	"github.com/cwbudde/matlangc/internal/symtab"
)

func TestBuilder_AddTokensAndStatements(t *testing.T) {
	table := symtab.New()
	p := parser.New(table)
	b := NewBuilder()

	lines := []string{"scalar x", "x = 1"}
	var statements []parser.Statement
	for i, line := range lines {
		toks, err := lexer.TokenizeLine(line, i+1)
		if err != nil {
			t.Fatalf("tokenize: %v", err)
		}
		if err := b.AddTokens(i+1, toks); err != nil {
			t.Fatalf("AddTokens: %v", err)
		}
		stmt, err := p.ParseLine(toks, i+1)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		statements = append(statements, stmt)
	}
	if err := b.AddStatements(statements); err != nil {
		t.Fatalf("AddStatements: %v", err)
	}
	if err := b.AddSymbols(table); err != nil {
		t.Fatalf("AddSymbols: %v", err)
	}

	doc := b.JSON()
	if got := gjson.Get(doc, "tokens.1.0.lexeme").String(); got != "scalar" {
		t.Fatalf("tokens.1.0.lexeme = %q, want scalar", got)
	}
	if got := gjson.Get(doc, "statements.0.kind").String(); got != "ScalarDeclaration" {
		t.Fatalf("statements.0.kind = %q, want ScalarDeclaration", got)
	}
	if got := gjson.Get(doc, "symbols.0.name").String(); got != "x" {
		t.Fatalf("symbols.0.name = %q, want x", got)
	}
}

func TestPretty_RendersWithoutPanicking(t *testing.T) {
	table := symtab.New()
	p := parser.New(table)
	toks, err := lexer.TokenizeLine("scalar x", 1)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	stmt, err := p.ParseLine(toks, 1)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out := Pretty([]parser.Statement{stmt})
	if out == "" {
		t.Fatalf("expected non-empty pretty output")
	}
}
