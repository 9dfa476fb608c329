// Package semantic implements the compiler's single whole-program sweep
// between parsing and code generation: every Identifier token in every
// parsed statement must resolve through the symbol table, so that code
// generation never encounters a missing name.
package semantic

import (
	"fmt"

	"github.com/cwbudde/matlangc/internal/parser"
	"github.com/cwbudde/matlangc/internal/symtab"
	"github.com/cwbudde/matlangc/internal/token"
)

// UndeclaredError reports an Identifier used before (or without) being
// declared. Declarations themselves never trigger it: the parser inserts
// declared names into the symbol table at parse time, so by the time
// Analyze runs every legitimately declared name already resolves.
type UndeclaredError struct {
	Line int
	Name string
}

func (e *UndeclaredError) Error() string {
	return fmt.Sprintf("Error (Line %d): %s", e.Line, (&symtab.ErrNotDeclared{Name: e.Name}).Error())
}

// Analyzer performs the undeclared-identifier sweep against a symbol table
// already populated by the parser.
type Analyzer struct {
	table *symtab.Table
}

// New builds an Analyzer backed by table.
func New(table *symtab.Table) *Analyzer {
	return &Analyzer{table: table}
}

// Analyze visits every token of every statement in order and looks up each
// Identifier. The first unresolved name aborts the pass, matching the
// compiler's no-recovery error policy: semantic errors are reported before
// code generation ever starts.
func (a *Analyzer) Analyze(statements []parser.Statement) error {
	for _, stmt := range statements {
		for _, tok := range stmt.Tokens {
			if tok.Category != token.Identifier {
				continue
			}
			if _, err := a.table.Lookup(tok.Lexeme); err != nil {
				return &UndeclaredError{Line: stmt.Line, Name: tok.Lexeme}
			}
		}
	}
	return nil
}
