package token

import "regexp"

// CategoryRegex pairs a category with the regular expression that
// recognizes a whole lexeme of that category. Patterns are anchored at
// both ends: the lexer always tests a complete candidate lexeme, never a
// partial one.
type CategoryRegex struct {
	Category Category
	Pattern  *regexp.Regexp
}

// priorityTable lists every category the lexer classifies against, in the
// order spec.md §4.1 requires: keywords and built-in names first (so
// "scalar" never becomes an Identifier), then identifiers, then single
// characters, then numeric literals. First match wins.
var priorityTable []CategoryRegex

func anchor(pattern string) *regexp.Regexp {
	return regexp.MustCompile("^(?:" + pattern + ")$")
}

func init() {
	priorityTable = []CategoryRegex{
		{ScalarType, anchor(`scalar`)},
		{VectorType, anchor(`vector`)},
		{MatrixType, anchor(`matrix`)},
		{ForKeyword, anchor(`for`)},
		{InKeyword, anchor(`in`)},
		{PrintSepFunction, anchor(`printsep`)},
		{PrintFunction, anchor(`print`)},
		{TrFunction, anchor(`tr`)},
		{SqrtFunction, anchor(`sqrt`)},
		{ChooseFunction, anchor(`choose`)},
		{Identifier, anchor(`[_a-zA-Z][_a-zA-Z0-9]*`)},
		{OpenSquareBrackets, anchor(`\[`)},
		{CloseSquareBrackets, anchor(`\]`)},
		{OpenCurlyBraces, anchor(`\{`)},
		{CloseCurlyBraces, anchor(`\}`)},
		{OpenParenthesis, anchor(`\(`)},
		{CloseParenthesis, anchor(`\)`)},
		{AdditionOperator, anchor(`\+`)},
		{SubtractionOperator, anchor(`-`)},
		{MultiplicationOperator, anchor(`\*`)},
		{AssignmentOperator, anchor(`=`)},
		{Comma, anchor(`,`)},
		{DoubleColon, anchor(`:`)},
		{Dot, anchor(`\.`)},
		// Integer: optionally signed decimal, no leading zeros unless the
		// single digit 0.
		{Integer, anchor(`[-+]?(?:0|[1-9][0-9]*)`)},
		// Real: the *intended* grammar from spec.md §9 — the original C++
		// source's regex for this category is malformed (unbalanced
		// grouping) and is deliberately not replicated here.
		{Real, anchor(`[-+]?(?:0|[1-9][0-9]*)\.[0-9]+`)},
	}
}

// Classify returns the first category in priority order whose pattern
// matches lexeme in full, and true. If nothing matches, it returns the
// zero Category and false.
func Classify(lexeme string) (Category, bool) {
	for _, cr := range priorityTable {
		if cr.Pattern.MatchString(lexeme) {
			return cr.Category, true
		}
	}
	return "", false
}

// IsSingleCharCategory reports whether category is recognized from a lone
// character (brackets, braces, parentheses, operators, comma, colon, dot).
// The lexer does not call it; it classifies a lone character with Classify.
func IsSingleCharCategory(c Category) bool {
	switch c {
	case OpenSquareBrackets, CloseSquareBrackets, OpenCurlyBraces, CloseCurlyBraces,
		OpenParenthesis, CloseParenthesis, AdditionOperator, SubtractionOperator,
		MultiplicationOperator, AssignmentOperator, Comma, DoubleColon, Dot:
		return true
	default:
		return false
	}
}
