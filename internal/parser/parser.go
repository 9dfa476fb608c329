// Package parser implements MatLang's table-driven statement recognizer
// and its recursive-descent expression sub-grammar. Parser consumes one
// source line's tokens at a time, matches it against the fixed production
// table (spec.md §4.3), rewrites any Expression/InitializerList segments
// from infix to postfix in place, and registers declarations in the
// symbol table.
package parser

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/matlangc/internal/symtab"
	"github.com/cwbudde/matlangc/internal/token"
)

// Parser holds the symbol table declarations are registered into as they
// are recognized.
type Parser struct {
	table *symtab.Table
}

// New builds a Parser backed by table.
func New(table *symtab.Table) *Parser {
	return &Parser{table: table}
}

// ParseLine matches lineTokens against the production table in
// declaration order and returns the first rule whose sequence matches
// without error — even if that rule doesn't consume every token, matching
// the original compiler's derivation() behavior exactly: rules are not
// ranked by how much of the line they consume, only by declaration order,
// and only the winning rule's leftover-token check is fatal. If no rule
// matches at all, the reported error is the one reached by the rule that
// consumed the most tokens before failing (the longest-prefix-match
// heuristic), per spec.md §4.3/§9.
func (p *Parser) ParseLine(lineTokens []token.Token, line int) (Statement, error) {
	var bestErr error
	bestConsumed := -1

	for _, rule := range productionTable {
		ep := &exprParser{work: append([]token.Token(nil), lineTokens...), line: line}
		consumed, err := matchRule(ep, rule.Seq)
		if err != nil {
			if consumed > bestConsumed {
				bestConsumed = consumed
				bestErr = err
			}
			continue
		}

		if consumed != len(ep.work) {
			return Statement{}, newParseError(line, "too few tokens consumed parsing %s", rule.Kind)
		}

		stmt := Statement{Tokens: ep.work, Kind: rule.Kind, Line: line}
		if err := p.register(&stmt); err != nil {
			return Statement{}, newParseError(line, "%s", err.Error())
		}
		return stmt, nil
	}

	if bestErr != nil {
		return Statement{}, newParseError(line, "%s", bestErr.Error())
	}
	return Statement{}, newParseError(line, "line matches no known statement form")
}

// matchRule walks seq against ep.work starting at index 0, matching
// terminals directly and delegating nonterminals (Expression,
// InitializerList) to the corresponding sub-parser. It returns the index
// reached — on success, the count of tokens consumed from ep.work; on
// failure, how far the rule got before rejecting, used by ParseLine's
// longest-prefix-match error selection.
func matchRule(ep *exprParser, seq []token.Category) (int, error) {
	index := 0
	for _, cat := range seq {
		if token.IsNonterminal(cat) {
			var err error
			switch cat {
			case token.Expression:
				index, err = ep.consumeExpression(index)
			case token.InitializerList:
				index, err = ep.consumeInitializerList(index)
			default:
				err = fmt.Errorf("unsupported nonterminal %s", cat)
			}
			if err != nil {
				return index, err
			}
			continue
		}

		tok, ok := ep.at(index)
		if !ok {
			return index, fmt.Errorf("expected %s but reached end of line", cat)
		}
		if tok.Category != cat {
			return index, fmt.Errorf("expected %s but found %q", cat, tok.Lexeme)
		}
		index++
	}
	return index, nil
}

// register applies the symbol-table side effects a successfully matched
// rule carries: declarations are inserted into the table, with vectors and
// matrices whose every dimension is 1 demoted to plain scalars so that
// `vector v[1]` and `scalar v` declare indistinguishable variables.
func (p *Parser) register(stmt *Statement) error {
	switch stmt.Kind {
	case token.ScalarDeclaration:
		return p.declareScalar(stmt)
	case token.VectorDeclaration:
		return p.declareVector(stmt)
	case token.MatrixDeclaration:
		return p.declareMatrix(stmt)
	}
	return nil
}

func (p *Parser) declareScalar(stmt *Statement) error {
	name := stmt.Tokens[1].Lexeme
	return p.table.InsertUser(symtab.NewScalar(name))
}

func (p *Parser) declareVector(stmt *Statement) error {
	name := stmt.Tokens[1].Lexeme
	size, err := strconv.Atoi(stmt.Tokens[3].Lexeme)
	if err != nil {
		return fmt.Errorf("invalid vector size %q", stmt.Tokens[3].Lexeme)
	}
	if size == 0 {
		return fmt.Errorf("vector size cannot be 0")
	}
	if size == 1 {
		stmt.Kind = token.ScalarDeclaration
		return p.table.InsertUser(symtab.NewScalar(name))
	}
	return p.table.InsertUser(symtab.NewMatrix(name, size, 1))
}

func (p *Parser) declareMatrix(stmt *Statement) error {
	name := stmt.Tokens[1].Lexeme
	rows, err := strconv.Atoi(stmt.Tokens[3].Lexeme)
	if err != nil {
		return fmt.Errorf("invalid matrix row count %q", stmt.Tokens[3].Lexeme)
	}
	cols, err := strconv.Atoi(stmt.Tokens[5].Lexeme)
	if err != nil {
		return fmt.Errorf("invalid matrix column count %q", stmt.Tokens[5].Lexeme)
	}
	if rows == 0 || cols == 0 {
		return fmt.Errorf("matrix size cannot be 0")
	}
	if rows == 1 && cols == 1 {
		stmt.Kind = token.ScalarDeclaration
		return p.table.InsertUser(symtab.NewScalar(name))
	}
	return p.table.InsertUser(symtab.NewMatrix(name, rows, cols))
}
