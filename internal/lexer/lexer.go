// Package lexer tokenizes MatLang source one line at a time using
// maximal-munch accumulation against the priority-ordered regular
// expression table in internal/token.
package lexer

import (
	"fmt"
	"strings"

	"github.com/cwbudde/matlangc/internal/token"
)

// LexError reports a lexeme or single character that could not be assigned
// to any token category.
type LexError struct {
	Line   int
	Lexeme string
	IsChar bool
}

func (e *LexError) Error() string {
	return fmt.Sprintf("Error (Line %d): No meaning can be given to %q", e.Line, e.Lexeme)
}

// extends reports whether r can extend a running accumulator: identifier
// characters, digits, and '.' (the characters that drive the recursively
// defined Identifier, Integer, and Real lexemes).
func extends(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '.':
		return true
	default:
		return false
	}
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	default:
		return false
	}
}

// TokenizeLine tokenizes a single source line. Blank or whitespace-only
// lines return a nil (empty) token slice and no error.
func TokenizeLine(line string, lineNum int) ([]token.Token, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}

	var tokens []token.Token
	var acc strings.Builder

	closeAccumulator := func() error {
		if acc.Len() == 0 {
			return nil
		}
		s := acc.String()
		cat, ok := token.Classify(s)
		if !ok {
			return &LexError{Line: lineNum, Lexeme: s}
		}
		tokens = append(tokens, token.New(s, cat, lineNum))
		acc.Reset()
		return nil
	}

	runes := []rune(line)
	for _, r := range runes {
		if extends(r) {
			acc.WriteRune(r)
			continue
		}
		// The running accumulator, if any, must be given meaning before we
		// classify the current (non-extending) character.
		if err := closeAccumulator(); err != nil {
			return nil, err
		}
		if isWhitespace(r) {
			continue
		}
		cat, ok := token.Classify(string(r))
		if !ok {
			return nil, &LexError{Line: lineNum, Lexeme: string(r), IsChar: true}
		}
		tokens = append(tokens, token.New(string(r), cat, lineNum))
	}
	// End of line: close whatever remains in the accumulator.
	if err := closeAccumulator(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// Tokenize tokenizes a whole (already comment-stripped) source text,
// preserving line numbers; line N of source becomes line N of the
// resulting tokens (blank lines contribute no tokens but do not shift
// numbering because numbering is carried per-token, not inferred from
// position).
func Tokenize(source string) ([]token.Token, error) {
	var all []token.Token
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lineTokens, err := TokenizeLine(line, i+1)
		if err != nil {
			return nil, err
		}
		all = append(all, lineTokens...)
	}
	return all, nil
}

// TokenizeLines tokenizes a whole source text but keeps each line's tokens
// grouped, which is what the parser consumes (it recognizes one statement
// per source line).
func TokenizeLines(source string) ([][]token.Token, error) {
	lines := strings.Split(source, "\n")
	result := make([][]token.Token, 0, len(lines))
	for i, line := range lines {
		lineTokens, err := TokenizeLine(line, i+1)
		if err != nil {
			return nil, err
		}
		if lineTokens == nil {
			continue
		}
		result = append(result, lineTokens)
	}
	return result, nil
}
