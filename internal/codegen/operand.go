package codegen

import "github.com/cwbudde/matlangc/internal/symtab"

// operand is one entry on the postfix evaluator's operand stack: the C
// source text that computes its value, together with enough type/shape
// information to drive the next operation. Brackets, parentheses, function
// names, and commas are pushed as dimensionless scalar placeholders whose
// Text is inspected only while the evaluator scans backward for a matching
// boundary; their Kind/Rows/Cols are never consulted.
type operand struct {
	Text string
	Kind symtab.Kind
	Rows int
	Cols int
}

func scalarOperand(text string) operand {
	return operand{Text: text, Kind: symtab.Scalar, Rows: 1, Cols: 1}
}

func matrixOperand(text string, rows, cols int) operand {
	return operand{Text: text, Kind: symtab.Matrix, Rows: rows, Cols: cols}
}

func fromVariable(v symtab.Variable) operand {
	return operand{Text: v.Name, Kind: v.Kind, Rows: v.Rows, Cols: v.Cols}
}
