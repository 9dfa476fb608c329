package diagtrace

import (
	"fmt"

	"github.com/kr/pretty"

	"github.com/cwbudde/matlangc/internal/parser"
)

// Pretty renders the annotated statement list in the REPL-debugger style
// kr/pretty produces, for `matlangc parse --pretty`.
func Pretty(statements []parser.Statement) string {
	return fmt.Sprintf("%# v", pretty.Formatter(statements))
}
