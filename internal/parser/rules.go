package parser

import "github.com/cwbudde/matlangc/internal/token"

// Rule is one production rule: an ordered sequence of token categories
// that recognizes a statement kind. A category is a terminal (matched
// exactly against the next input token) unless token.IsNonterminal
// reports it as one, in which case it triggers a sub-parser (Expression or
// InitializerList).
type Rule struct {
	Kind token.Category
	Seq  []token.Category
}

// productionTable lists every statement production, in the fixed order
// spec.md §4.3 gives. The parser tries rules in this order for each line;
// the first whose sequence matches without error wins, and tokens left
// over after it are a parse error (see Parser.ParseLine).
var productionTable = []Rule{
	{
		Kind: token.ScalarDeclaration,
		Seq:  []token.Category{token.ScalarType, token.Identifier},
	},
	{
		Kind: token.VectorDeclaration,
		Seq: []token.Category{
			token.VectorType, token.Identifier, token.OpenSquareBrackets,
			token.Integer, token.CloseSquareBrackets,
		},
	},
	{
		Kind: token.MatrixDeclaration,
		Seq: []token.Category{
			token.MatrixType, token.Identifier, token.OpenSquareBrackets,
			token.Integer, token.Comma, token.Integer, token.CloseSquareBrackets,
		},
	},
	{
		Kind: token.SingleForStatement,
		Seq: []token.Category{
			token.ForKeyword, token.OpenParenthesis, token.Identifier, token.InKeyword,
			token.Expression, token.DoubleColon, token.Expression, token.DoubleColon, token.Expression,
			token.CloseParenthesis, token.OpenCurlyBraces,
		},
	},
	{
		Kind: token.DoubleForStatement,
		Seq: []token.Category{
			token.ForKeyword, token.OpenParenthesis, token.Identifier, token.Comma, token.Identifier, token.InKeyword,
			token.Expression, token.DoubleColon, token.Expression, token.DoubleColon, token.Expression, token.Comma,
			token.Expression, token.DoubleColon, token.Expression, token.DoubleColon, token.Expression,
			token.CloseParenthesis, token.OpenCurlyBraces,
		},
	},
	{
		// Close curly braces signifies the end of a for loop.
		Kind: token.CloseCurlyBraces,
		Seq:  []token.Category{token.CloseCurlyBraces},
	},
	{
		Kind: token.PrintStatement,
		Seq:  []token.Category{token.PrintFunction, token.OpenParenthesis, token.Expression, token.CloseParenthesis},
	},
	{
		Kind: token.PrintSepStatement,
		Seq:  []token.Category{token.PrintSepFunction, token.OpenParenthesis, token.CloseParenthesis},
	},
	{
		Kind: token.ExprAssignment,
		Seq:  []token.Category{token.Identifier, token.AssignmentOperator, token.Expression},
	},
	{
		Kind: token.SingleSubscriptExprAssignment,
		Seq: []token.Category{
			token.Identifier, token.OpenSquareBrackets, token.Expression, token.CloseSquareBrackets,
			token.AssignmentOperator, token.Expression,
		},
	},
	{
		Kind: token.DoubleSubscriptExprAssignment,
		Seq: []token.Category{
			token.Identifier, token.OpenSquareBrackets, token.Expression, token.Comma, token.Expression,
			token.CloseSquareBrackets, token.AssignmentOperator, token.Expression,
		},
	},
	{
		Kind: token.ListAssignment,
		Seq:  []token.Category{token.Identifier, token.AssignmentOperator, token.InitializerList},
	},
}
