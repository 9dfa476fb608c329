// Package codegen walks the parsed statement stream and emits a complete C
// translation unit: the fixed runtime prelude (spec.md §4.6), a `main`
// function containing one translated statement per input line, and the
// helper temporaries the postfix-expression evaluator allocates along the
// way.
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/matlangc/internal/parser"
	"github.com/cwbudde/matlangc/internal/symtab"
	"github.com/cwbudde/matlangc/internal/token"
)

// Generator holds the mutable state code generation threads through the
// statement stream: the symbol table (shared with the parser, now also
// receiving generator-synthesized temporaries), current indentation, the
// double-for flag that tells a closing brace how many levels to pop, and
// the temporary-name counter.
type Generator struct {
	table      *symtab.Table
	tempPrefix string
	tempCount  int
	indent     int
	indentStr  string
	doubleFor  bool
	line       int
}

// New builds a Generator backed by table, naming temporaries
// "<tempPrefix><n>" for a monotonically increasing n and indenting emitted
// statements with a tab, matching original_source/src/code_generator.cpp's
// put_tabs. Use SetIndent to override per internal/config.
func New(table *symtab.Table, tempPrefix string) *Generator {
	return &Generator{table: table, tempPrefix: tempPrefix, indentStr: "\t"}
}

// SetIndent overrides the per-level indentation string (default a tab),
// per the `output.indent` config key (internal/config).
func (g *Generator) SetIndent(s string) {
	g.indentStr = s
}

// Generate translates statements into a complete C source file and returns
// its text. The first error aborts generation, per the compiler's
// no-recovery policy; the caller is responsible for discarding a partially
// written output file on error (spec.md §5/§7).
func (g *Generator) Generate(statements []parser.Statement) (string, error) {
	var w strings.Builder
	w.WriteString(prelude)
	w.WriteString("\n")
	w.WriteString("int main()\n{\n")
	g.indent = 1

	for _, stmt := range statements {
		g.line = stmt.Line
		if err := g.translate(&w, stmt); err != nil {
			return "", err
		}
	}

	w.WriteString(g.indentStr)
	w.WriteString("return 0;\n}\n")
	return w.String(), nil
}

func (g *Generator) translate(w *strings.Builder, stmt parser.Statement) error {
	switch stmt.Kind {
	case token.ScalarDeclaration:
		return g.writeScalarDeclr(w, stmt)
	case token.VectorDeclaration:
		return g.writeVectorDeclr(w, stmt)
	case token.MatrixDeclaration:
		return g.writeMatrixDeclr(w, stmt)
	case token.SingleForStatement:
		return g.writeSingleFor(w, stmt)
	case token.DoubleForStatement:
		return g.writeDoubleFor(w, stmt)
	case token.CloseCurlyBraces:
		return g.writeEndFor(w)
	case token.PrintStatement:
		return g.writePrintStmt(w, stmt)
	case token.PrintSepStatement:
		g.writeStmt(w, "printsep();\n")
		return nil
	case token.ExprAssignment:
		return g.writeExprAssignment(w, stmt)
	case token.SingleSubscriptExprAssignment:
		return g.writeSingleSubscriptAssignment(w, stmt)
	case token.DoubleSubscriptExprAssignment:
		return g.writeDoubleSubscriptAssignment(w, stmt)
	case token.ListAssignment:
		return g.writeListAssignment(w, stmt)
	default:
		return newTypeError(g.line, "unexpected statement type: %s", stmt.Kind)
	}
}

// writeStmt writes one fully-formed C line at the generator's current
// indentation level.
func (g *Generator) writeStmt(w *strings.Builder, format string, args ...interface{}) {
	w.WriteString(strings.Repeat(g.indentStr, g.indent))
	fmt.Fprintf(w, format, args...)
}

func (g *Generator) writeIndent(w *strings.Builder, extraLevels int) {
	w.WriteString(strings.Repeat(g.indentStr, g.indent+extraLevels))
}

// declareTemp allocates a new `_E4_<n>`-style temporary, emits its C
// declaration, registers it in the symbol table (so later statements and
// the generator's own identifier lookups see it), and returns its name.
func (g *Generator) declareTemp(w *strings.Builder, rows, cols int) (string, error) {
	name := fmt.Sprintf("%s%d", g.tempPrefix, g.tempCount)
	g.tempCount++
	g.writeStmt(w, "double %s[%d][%d];\n", name, rows, cols)
	if _, err := g.table.InsertTemp(symtab.NewMatrix(name, rows, cols)); err != nil {
		return "", err
	}
	return name, nil
}

func (g *Generator) writeScalarDeclr(w *strings.Builder, stmt parser.Statement) error {
	g.writeStmt(w, "double %s;\n", stmt.Tokens[1].Lexeme)
	return nil
}

func (g *Generator) writeVectorDeclr(w *strings.Builder, stmt parser.Statement) error {
	g.writeStmt(w, "double %s[%s][1];\n", stmt.Tokens[1].Lexeme, stmt.Tokens[3].Lexeme)
	return nil
}

func (g *Generator) writeMatrixDeclr(w *strings.Builder, stmt parser.Statement) error {
	g.writeStmt(w, "double %s[%s][%s];\n", stmt.Tokens[1].Lexeme, stmt.Tokens[3].Lexeme, stmt.Tokens[5].Lexeme)
	return nil
}

func (g *Generator) confirmScalar(v operand, context string) error {
	if v.Kind != symtab.Scalar {
		return newTypeError(g.line, "%s must be scalar", context)
	}
	return nil
}

// writeSingleFor translates `for (i in a : b : c) {`: the iterator must
// already be a declared scalar; the three bound expressions are evaluated
// (each must reduce to a scalar) and the loop is emitted half-open upward,
// per spec.md §4.6.
func (g *Generator) writeSingleFor(w *strings.Builder, stmt parser.Statement) error {
	iterName := stmt.Tokens[2].Lexeme
	iterVar, err := g.table.Lookup(iterName)
	if err != nil {
		return err
	}
	if iterVar.Kind != symtab.Scalar {
		return newTypeError(g.line, "for-loop iterator %s must be scalar", iterName)
	}

	segs := exprSegments(stmt.Tokens)
	if len(segs) != 3 {
		return newTypeError(g.line, "for-loop expects 3 bound expressions, found %d", len(segs))
	}
	bounds := make([]operand, 3)
	for i, seg := range segs {
		v, err := g.evalTokens(w, seg)
		if err != nil {
			return err
		}
		if err := g.confirmScalar(v, "for-loop bound"); err != nil {
			return err
		}
		bounds[i] = v
	}

	g.writeStmt(w, "for (%s = %s; %s < %s + 1; %s += %s) {\n",
		iterName, bounds[0].Text, iterName, bounds[1].Text, iterName, bounds[2].Text)
	g.indent++
	return nil
}

// writeDoubleFor translates `for (i, j in a:b:c, d:e:f) {` as two nested
// loops; the second for-header gets one extra tab of its own, matching the
// single put_tabs-plus-literal-tab the original emitter uses so the nested
// header still lines up under the generator's running indentation.
func (g *Generator) writeDoubleFor(w *strings.Builder, stmt parser.Statement) error {
	firstName := stmt.Tokens[2].Lexeme
	secondName := stmt.Tokens[4].Lexeme
	for _, name := range []string{firstName, secondName} {
		v, err := g.table.Lookup(name)
		if err != nil {
			return err
		}
		if v.Kind != symtab.Scalar {
			return newTypeError(g.line, "for-loop iterator %s must be scalar", name)
		}
	}

	segs := exprSegments(stmt.Tokens)
	if len(segs) != 6 {
		return newTypeError(g.line, "double for-loop expects 6 bound expressions, found %d", len(segs))
	}
	bounds := make([]operand, 6)
	for i, seg := range segs {
		v, err := g.evalTokens(w, seg)
		if err != nil {
			return err
		}
		if err := g.confirmScalar(v, "for-loop bound"); err != nil {
			return err
		}
		bounds[i] = v
	}

	g.writeStmt(w, "for (%s = %s; %s < %s+1; %s += %s) {\n",
		firstName, bounds[0].Text, firstName, bounds[1].Text, firstName, bounds[2].Text)
	g.writeIndent(w, 1)
	fmt.Fprintf(w, "for (%s = %s; %s < %s+1; %s += %s) {\n",
		secondName, bounds[3].Text, secondName, bounds[4].Text, secondName, bounds[5].Text)

	g.doubleFor = true
	g.indent += 2
	return nil
}

func (g *Generator) writeEndFor(w *strings.Builder) error {
	if g.doubleFor {
		g.indent -= 2
	} else {
		g.indent--
	}
	if g.indent < 0 {
		return newTypeError(g.line, "unmatched closing brace")
	}

	if g.doubleFor {
		g.writeIndent(w, 1)
		w.WriteString("}\n")
		g.writeIndent(w, 0)
		w.WriteString("}\n")
	} else {
		g.writeIndent(w, 0)
		w.WriteString("}\n")
	}
	g.doubleFor = false
	return nil
}

func (g *Generator) writePrintStmt(w *strings.Builder, stmt parser.Statement) error {
	segs := exprSegments(stmt.Tokens)
	if len(segs) != 1 {
		return newTypeError(g.line, "print expects exactly one expression")
	}
	v, err := g.evalTokens(w, segs[0])
	if err != nil {
		return err
	}
	switch v.Kind {
	case symtab.Matrix:
		g.writeStmt(w, "print_mat(%d, %d, %s);\n", v.Rows, v.Cols, v.Text)
	case symtab.Scalar:
		g.writeStmt(w, "print(%s);\n", v.Text)
	}
	return nil
}

func (g *Generator) writeExprAssignment(w *strings.Builder, stmt parser.Statement) error {
	name := stmt.Tokens[0].Lexeme
	lhs, err := g.table.Lookup(name)
	if err != nil {
		return err
	}
	segs := exprSegments(stmt.Tokens)
	if len(segs) != 1 {
		return newTypeError(g.line, "assignment expects exactly one expression")
	}
	rhs, err := g.evalTokens(w, segs[0])
	if err != nil {
		return err
	}

	switch lhs.Kind {
	case symtab.Scalar:
		if rhs.Kind != symtab.Scalar {
			return newTypeError(g.line, "cannot assign a matrix expression to scalar %s", name)
		}
		g.writeStmt(w, "%s = %s;\n", name, rhs.Text)
	case symtab.Matrix:
		if rhs.Kind != symtab.Matrix {
			return newTypeError(g.line, "cannot assign a scalar expression to matrix %s", name)
		}
		if lhs.Rows != rhs.Rows || lhs.Cols != rhs.Cols {
			return newShapeError(g.line, "invalid assignment: matrices have different sizes")
		}
		g.writeStmt(w, "mat_assign(%d, %d, %s, %s);\n", lhs.Rows, lhs.Cols, rhs.Text, name)
	}
	return nil
}

func (g *Generator) writeSingleSubscriptAssignment(w *strings.Builder, stmt parser.Statement) error {
	name := stmt.Tokens[0].Lexeme
	id, err := g.table.Lookup(name)
	if err != nil {
		return err
	}
	if id.Kind != symtab.Matrix {
		return newSubscriptError(g.line, "%s is not a matrix and cannot be subscripted", name)
	}
	if id.Cols != 1 {
		return newSubscriptError(g.line, "%s has dimensions [%d, %d] but was subscripted with only one index",
			name, id.Rows, id.Cols)
	}

	segs := exprSegments(stmt.Tokens)
	if len(segs) != 2 {
		return newTypeError(g.line, "single-subscript assignment expects an index and a value expression")
	}
	index, err := g.evalTokens(w, segs[0])
	if err != nil {
		return err
	}
	if err := g.confirmScalar(index, "subscript index"); err != nil {
		return err
	}
	rhs, err := g.evalTokens(w, segs[1])
	if err != nil {
		return err
	}
	if err := g.confirmScalar(rhs, "assigned value"); err != nil {
		return err
	}

	g.writeStmt(w, "%s[(int)%s - 1][0] = %s;\n", name, index.Text, rhs.Text)
	return nil
}

func (g *Generator) writeDoubleSubscriptAssignment(w *strings.Builder, stmt parser.Statement) error {
	name := stmt.Tokens[0].Lexeme
	id, err := g.table.Lookup(name)
	if err != nil {
		return err
	}
	if id.Kind != symtab.Matrix {
		return newSubscriptError(g.line, "%s is not a matrix and cannot be subscripted", name)
	}

	segs := exprSegments(stmt.Tokens)
	if len(segs) != 3 {
		return newTypeError(g.line, "double-subscript assignment expects two indices and a value expression")
	}
	index1, err := g.evalTokens(w, segs[0])
	if err != nil {
		return err
	}
	if err := g.confirmScalar(index1, "subscript index"); err != nil {
		return err
	}
	index2, err := g.evalTokens(w, segs[1])
	if err != nil {
		return err
	}
	if err := g.confirmScalar(index2, "subscript index"); err != nil {
		return err
	}
	rhs, err := g.evalTokens(w, segs[2])
	if err != nil {
		return err
	}
	if err := g.confirmScalar(rhs, "assigned value"); err != nil {
		return err
	}

	g.writeStmt(w, "%s[(int)%s - 1][(int)%s - 1] = %s;\n", name, index1.Text, index2.Text, rhs.Text)
	return nil
}

// writeListAssignment translates `M = { e1, e2, ..., en }`: n must equal
// rows × cols exactly and every element must be scalar; each element is
// emitted as its own row-major indexed assignment (spec.md §4.6).
func (g *Generator) writeListAssignment(w *strings.Builder, stmt parser.Statement) error {
	name := stmt.Tokens[0].Lexeme
	id, err := g.table.Lookup(name)
	if err != nil {
		return err
	}
	if id.Kind != symtab.Matrix {
		return newTypeError(g.line, "%s is not a matrix and cannot take a list initializer", name)
	}

	segs := exprSegments(stmt.Tokens)
	want := id.Rows * id.Cols
	if len(segs) != want {
		return newListSizeError(g.line, "list initializer for %s: expected %d expressions, found %d",
			name, want, len(segs))
	}

	for i := 0; i < id.Rows; i++ {
		for j := 0; j < id.Cols; j++ {
			v, err := g.evalTokens(w, segs[i*id.Cols+j])
			if err != nil {
				return err
			}
			if err := g.confirmScalar(v, "list initializer element"); err != nil {
				return err
			}
			g.writeStmt(w, "%s[%s][%s] = %s;\n", name, strconv.Itoa(i), strconv.Itoa(j), v.Text)
		}
	}
	return nil
}
