// Package diagtrace builds the JSON compilation trace `matlangc compile
// --dump-json` writes and the pretty statement dump `matlangc parse
// --pretty` prints. The trace is assembled incrementally with sjson.Set
// rather than marshaled from a struct in one shot, since its shape (an
// array of tokens, an array of resolved symbols, an array of statements)
// grows across three independent compiler stages that don't share a
// single Go type.
package diagtrace

import (
	"fmt"

	"github.com/tidwall/sjson"

	"github.com/cwbudde/matlangc/internal/parser"
	"github.com/cwbudde/matlangc/internal/symtab"
	"github.com/cwbudde/matlangc/internal/token"
)

// Builder accumulates a compilation trace document as JSON text.
type Builder struct {
	doc string
}

// NewBuilder starts a fresh, empty trace document.
func NewBuilder() *Builder {
	return &Builder{doc: "{}"}
}

// AddTokens appends one source line's token stream under
// "tokens.<line>[]", each token rendered as {lexeme, category, line}.
func (b *Builder) AddTokens(line int, toks []token.Token) error {
	for i, tok := range toks {
		path := jsonPathf("tokens.%d.%d", line, i)
		doc, err := sjson.Set(b.doc, path+".lexeme", tok.Lexeme)
		if err != nil {
			return err
		}
		doc, err = sjson.Set(doc, path+".category", string(tok.Category))
		if err != nil {
			return err
		}
		doc, err = sjson.Set(doc, path+".line", tok.Line)
		if err != nil {
			return err
		}
		b.doc = doc
	}
	return nil
}

// AddStatements appends the parsed, annotated statement list under
// "statements[]" as {kind, line, tokenCount}.
func (b *Builder) AddStatements(statements []parser.Statement) error {
	for i, stmt := range statements {
		path := jsonPathf("statements.%d", i)
		doc, err := sjson.Set(b.doc, path+".kind", string(stmt.Kind))
		if err != nil {
			return err
		}
		doc, err = sjson.Set(doc, path+".line", stmt.Line)
		if err != nil {
			return err
		}
		doc, err = sjson.Set(doc, path+".tokenCount", len(stmt.Tokens))
		if err != nil {
			return err
		}
		b.doc = doc
	}
	return nil
}

// AddSymbols appends the resolved symbol table under "symbols[]" as
// {name, kind, rows, cols}, in the table's natural sort order.
func (b *Builder) AddSymbols(table *symtab.Table) error {
	for i, name := range table.Names() {
		v, err := table.Lookup(name)
		if err != nil {
			return err
		}
		path := jsonPathf("symbols.%d", i)
		doc, err := sjson.Set(b.doc, path+".name", v.Name)
		if err != nil {
			return err
		}
		doc, err = sjson.Set(doc, path+".kind", v.Kind.String())
		if err != nil {
			return err
		}
		doc, err = sjson.Set(doc, path+".rows", v.Rows)
		if err != nil {
			return err
		}
		doc, err = sjson.Set(doc, path+".cols", v.Cols)
		if err != nil {
			return err
		}
		b.doc = doc
	}
	return nil
}

// JSON returns the accumulated trace document.
func (b *Builder) JSON() string {
	return b.doc
}

func jsonPathf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}
