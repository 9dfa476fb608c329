package parser

import "github.com/cwbudde/matlangc/internal/token"

// insertAt returns s with items inserted before index idx, mirroring the
// original compiler's std::vector::insert splice used to drop
// ExpressionBegin/ExpressionEnd sentinels (and postfix segments) into a
// line's token stream in place.
func insertAt(s []token.Token, idx int, items ...token.Token) []token.Token {
	if len(items) == 0 {
		return s
	}
	out := make([]token.Token, 0, len(s)+len(items))
	out = append(out, s[:idx]...)
	out = append(out, items...)
	out = append(out, s[idx:]...)
	return out
}

// removeRange returns s with the half-open range [start, end) removed,
// mirroring the original compiler's std::vector::erase used once a postfix
// segment has been spliced in to drop the infix tokens it replaces.
func removeRange(s []token.Token, start, end int) []token.Token {
	out := make([]token.Token, 0, len(s)-(end-start))
	out = append(out, s[:start]...)
	out = append(out, s[end:]...)
	return out
}
