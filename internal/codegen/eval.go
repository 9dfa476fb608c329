package codegen

import (
	"fmt"
	"strings"

	"github.com/cwbudde/matlangc/internal/symtab"
	"github.com/cwbudde/matlangc/internal/token"
)

// exprSegments splits a statement's (possibly rewritten) token stream into
// its top-level ExpressionBegin/ExpressionEnd-delimited segments, in the
// order they appear, discarding everything outside them (keywords,
// brackets, commas, the colons of a for-header). Expression segments never
// nest — the parser only ever opens one sentinel pair before closing it —
// so a segment simply runs from just after one ExpressionBegin to the
// matching ExpressionEnd.
func exprSegments(toks []token.Token) [][]token.Token {
	var segs [][]token.Token
	for i := 0; i < len(toks); i++ {
		if toks[i].Category != token.ExpressionBegin {
			continue
		}
		j := i + 1
		for j < len(toks) && toks[j].Category != token.ExpressionEnd {
			j++
		}
		segs = append(segs, toks[i+1:j])
		i = j
	}
	return segs
}

// evalTokens evaluates one postfix expression segment (the tokens strictly
// between an ExpressionBegin/ExpressionEnd pair) against an operand stack,
// emitting any helper-temporary declarations and calls the reduction needs
// to w at the generator's current indentation, and returns the single
// operand left on the stack.
func (g *Generator) evalTokens(w *strings.Builder, toks []token.Token) (operand, error) {
	var stack []operand
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		switch tok.Category {
		case token.AdditionOperator, token.SubtractionOperator, token.MultiplicationOperator:
			if len(stack) < 2 {
				return operand{}, fmt.Errorf("malformed expression: operator %s with too few operands", tok.Category)
			}
			rhs := stack[len(stack)-1]
			lhs := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			result, err := g.applyOperator(w, tok.Category, lhs, rhs)
			if err != nil {
				return operand{}, err
			}
			stack = append(stack, result)

		case token.CloseParenthesis:
			result, err := g.reduceFunctionCall(w, &stack)
			if err != nil {
				return operand{}, err
			}
			stack = append(stack, result)

		case token.CloseSquareBrackets:
			stack = append(stack, scalarOperand("]"))
			if i+1 < len(toks) && toks[i+1].Category == token.OpenSquareBrackets {
				// More bracket groups follow: this close belongs to the
				// outer half of a double subscript, not its end. Defer the
				// actual reduction until the matching close is reached.
				continue
			}
			result, err := g.reduceSubscript(&stack)
			if err != nil {
				return operand{}, err
			}
			stack = append(stack, result)

		case token.Identifier:
			v, err := g.table.Lookup(tok.Lexeme)
			if err != nil {
				return operand{}, err
			}
			stack = append(stack, fromVariable(v))

		default:
			stack = append(stack, scalarOperand(tok.Lexeme))
		}
	}
	if len(stack) != 1 {
		return operand{}, fmt.Errorf("malformed expression: expected a single result, got %d", len(stack))
	}
	return stack[0], nil
}

// applyOperator reduces lhs op rhs, dispatching on operand kind per
// spec.md §4.6: scalar/scalar operations fold into a parenthesized textual
// expression with no helper call; any combination involving a matrix
// allocates a temporary and emits the matching helper function call (the
// `0 - matrix` negation idiom emits neg_mat), except a 1×k · k×1 product,
// which folds to scalar mat_mat_mul_s text directly.
func (g *Generator) applyOperator(w *strings.Builder, op token.Category, lhs, rhs operand) (operand, error) {
	switch {
	case lhs.Kind == symtab.Scalar && rhs.Kind == symtab.Scalar:
		return g.scalarOp(op, lhs, rhs), nil

	case lhs.Kind == symtab.Scalar && rhs.Kind == symtab.Matrix:
		if op == token.SubtractionOperator && lhs.Text == "0" {
			return g.negMat(w, rhs)
		}
		if op != token.MultiplicationOperator {
			return operand{}, newTypeError(g.line, "cannot add or subtract a matrix and a scalar")
		}
		return g.scalarMatMul(w, rhs, lhs)

	case lhs.Kind == symtab.Matrix && rhs.Kind == symtab.Scalar:
		if op != token.MultiplicationOperator {
			return operand{}, newTypeError(g.line, "cannot add or subtract a matrix and a scalar")
		}
		return g.scalarMatMul(w, lhs, rhs)

	default: // both matrix
		switch op {
		case token.AdditionOperator:
			return g.matMatAdd(w, lhs, rhs)
		case token.SubtractionOperator:
			return g.matMatSub(w, lhs, rhs)
		default:
			return g.matMatMul(w, lhs, rhs)
		}
	}
}

func (g *Generator) scalarOp(op token.Category, lhs, rhs operand) operand {
	var symbol string
	switch op {
	case token.AdditionOperator:
		symbol = "+"
	case token.SubtractionOperator:
		symbol = "-"
	default:
		symbol = "*"
	}
	return scalarOperand(fmt.Sprintf("(%s%s%s)", lhs.Text, symbol, rhs.Text))
}

func (g *Generator) negMat(w *strings.Builder, m operand) (operand, error) {
	name, err := g.declareTemp(w, m.Rows, m.Cols)
	if err != nil {
		return operand{}, err
	}
	g.writeStmt(w, "neg_mat(%d, %d, %s, %s);\n", m.Rows, m.Cols, m.Text, name)
	return matrixOperand(name, m.Rows, m.Cols), nil
}

func (g *Generator) scalarMatMul(w *strings.Builder, matrix, scalar operand) (operand, error) {
	name, err := g.declareTemp(w, matrix.Rows, matrix.Cols)
	if err != nil {
		return operand{}, err
	}
	g.writeStmt(w, "mat_sca_mul(%d, %d, %s, %s, %s);\n", matrix.Rows, matrix.Cols, scalar.Text, matrix.Text, name)
	return matrixOperand(name, matrix.Rows, matrix.Cols), nil
}

func (g *Generator) matMatAdd(w *strings.Builder, lhs, rhs operand) (operand, error) {
	if lhs.Rows != rhs.Rows || lhs.Cols != rhs.Cols {
		return operand{}, newShapeError(g.line, "matrix addition dimension mismatch: [%d, %d] and [%d, %d]",
			lhs.Rows, lhs.Cols, rhs.Rows, rhs.Cols)
	}
	name, err := g.declareTemp(w, lhs.Rows, lhs.Cols)
	if err != nil {
		return operand{}, err
	}
	g.writeStmt(w, "mat_mat_add(%d, %d, %s, %s, %s);\n", lhs.Rows, lhs.Cols, lhs.Text, rhs.Text, name)
	return matrixOperand(name, lhs.Rows, lhs.Cols), nil
}

func (g *Generator) matMatSub(w *strings.Builder, lhs, rhs operand) (operand, error) {
	if lhs.Rows != rhs.Rows || lhs.Cols != rhs.Cols {
		return operand{}, newShapeError(g.line, "matrix subtraction dimension mismatch: [%d, %d] and [%d, %d]",
			lhs.Rows, lhs.Cols, rhs.Rows, rhs.Cols)
	}
	name, err := g.declareTemp(w, lhs.Rows, lhs.Cols)
	if err != nil {
		return operand{}, err
	}
	g.writeStmt(w, "mat_mat_sub(%d, %d, %s, %s, %s);\n", lhs.Rows, lhs.Cols, lhs.Text, rhs.Text, name)
	return matrixOperand(name, lhs.Rows, lhs.Cols), nil
}

func (g *Generator) matMatMul(w *strings.Builder, lhs, rhs operand) (operand, error) {
	if lhs.Cols != rhs.Rows {
		return operand{}, newShapeError(g.line, "matrix multiplication dimension mismatch: [%d, %d] and [%d, %d]",
			lhs.Rows, lhs.Cols, rhs.Rows, rhs.Cols)
	}
	if lhs.Rows == 1 && rhs.Cols == 1 {
		return scalarOperand(fmt.Sprintf("mat_mat_mul_s(%d, %s, %s)", lhs.Cols, lhs.Text, rhs.Text)), nil
	}
	name, err := g.declareTemp(w, lhs.Rows, rhs.Cols)
	if err != nil {
		return operand{}, err
	}
	g.writeStmt(w, "mat_mat_mul(%d, %d, %d, %s, %s, %s);\n", lhs.Rows, lhs.Cols, rhs.Cols, lhs.Text, rhs.Text, name)
	return matrixOperand(name, lhs.Rows, rhs.Cols), nil
}

// reduceSubscript pops the fixed six-element `[(int) idx1 ] [(int) idx2 ]`
// span every subscript lowers to, single or double alike (spec.md §4.3),
// confirms the subscripted name is a matrix and both index expressions are
// scalar, and pushes the concatenated "name[(int)i][(int)j]" text as a
// single scalar operand. The caller has already pushed the triggering `]`
// onto the stack, so the span (plus the identifier beneath it) is always
// exactly seven elements deep.
func (g *Generator) reduceSubscript(stack *[]operand) (operand, error) {
	s := *stack
	if len(s) < 7 {
		return operand{}, fmt.Errorf("malformed subscript expression")
	}
	collected := append([]operand(nil), s[len(s)-6:]...)
	s = s[:len(s)-6]
	ident := s[len(s)-1]
	s = s[:len(s)-1]
	*stack = s

	if ident.Kind != symtab.Matrix {
		return operand{}, newSubscriptError(g.line, "%s is not a matrix and cannot be subscripted", ident.Text)
	}
	// collected is ["[(int)", idx1, "]", "[(int)", idx2, "]"]
	if collected[0].Text != "[(int)" || collected[2].Text != "]" ||
		collected[3].Text != "[(int)" || collected[5].Text != "]" {
		return operand{}, newSubscriptError(g.line, "malformed subscript expression on %s", ident.Text)
	}
	if collected[1].Kind != symtab.Scalar || collected[4].Kind != symtab.Scalar {
		return operand{}, newSubscriptError(g.line, "subscript index must be scalar")
	}

	var sb strings.Builder
	sb.WriteString(ident.Text)
	for _, v := range collected {
		sb.WriteString(v.Text)
	}
	return scalarOperand(sb.String()), nil
}

// reduceFunctionCall pops the stack back through a completed `name ( args
// )` span (args already reduced to one operand per comma-separated
// position), dispatches to the matching built-in, and returns its result.
func (g *Generator) reduceFunctionCall(w *strings.Builder, stack *[]operand) (operand, error) {
	s := *stack
	openCount, closeCount := 0, 0
	var collected []operand
	for openCount-closeCount != 1 {
		if len(s) == 0 {
			return operand{}, fmt.Errorf("malformed function call expression")
		}
		top := s[len(s)-1]
		s = s[:len(s)-1]
		switch top.Text {
		case "(":
			openCount++
		case ")":
			closeCount++
		}
		collected = append([]operand{top}, collected...)
	}
	var name operand
	if len(s) > 0 {
		top := s[len(s)-1]
		if top.Text == "tr" || top.Text == "sqrt" || top.Text == "choose" {
			name = top
			s = s[:len(s)-1]
			collected = append([]operand{name}, collected...)
		}
	}
	*stack = s
	collected = append(collected, scalarOperand(")"))

	switch name.Text {
	case "tr":
		return g.reduceTr(w, collected)
	case "sqrt":
		return g.reduceSqrt(collected)
	case "choose":
		return g.reduceChoose(collected)
	default:
		return operand{}, newTypeError(g.line, "unexpected function call")
	}
}

// reduceTr/reduceSqrt/reduceChoose index into collected the way
// reduceFunctionCall assembles it: [name, "(", arg1, ",", arg2, ..., ")"].

func (g *Generator) reduceTr(w *strings.Builder, args []operand) (operand, error) {
	if len(args) != 4 {
		return operand{}, newTypeError(g.line, "tr: expected exactly one argument")
	}
	arg := args[2]
	if arg.Kind == symtab.Scalar {
		return arg, nil
	}
	name, err := g.declareTemp(w, arg.Cols, arg.Rows)
	if err != nil {
		return operand{}, err
	}
	g.writeStmt(w, "tr(%d, %d, %s, %s);\n", arg.Rows, arg.Cols, arg.Text, name)
	return matrixOperand(name, arg.Cols, arg.Rows), nil
}

func (g *Generator) reduceSqrt(args []operand) (operand, error) {
	if len(args) != 4 {
		return operand{}, newTypeError(g.line, "sqrt: expected exactly one argument")
	}
	arg := args[2]
	if arg.Kind != symtab.Scalar {
		return operand{}, newTypeError(g.line, "sqrt argument must be scalar")
	}
	return scalarOperand(fmt.Sprintf("sqrt(%s)", arg.Text)), nil
}

func (g *Generator) reduceChoose(args []operand) (operand, error) {
	// args: choose ( a , b , c , d )
	//        0     1 2 3 4 5 6 7 8 9
	if len(args) != 10 {
		return operand{}, newTypeError(g.line, "choose: expected 4 comma-separated arguments")
	}
	a, b, c, d := args[2], args[4], args[6], args[8]
	if a.Kind != symtab.Scalar || b.Kind != symtab.Scalar || c.Kind != symtab.Scalar || d.Kind != symtab.Scalar {
		return operand{}, newTypeError(g.line, "choose arguments must be scalar")
	}
	return scalarOperand(fmt.Sprintf("choose(%s, %s, %s, %s)", a.Text, b.Text, c.Text, d.Text)), nil
}
