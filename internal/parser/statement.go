package parser

import "github.com/cwbudde/matlangc/internal/token"

// Statement is a single parsed source line: its (possibly rewritten) token
// sequence, the statement kind the production table recognized, and the
// source line it came from. Expression segments inside Tokens have already
// been rewritten from infix to postfix and bracketed by exactly one
// ExpressionBegin/ExpressionEnd pair each.
type Statement struct {
	Tokens []token.Token
	Kind   token.Category
	Line   int
}
