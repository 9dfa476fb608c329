// Package diag maps the compiler's error types onto the CLI-facing exit
// code taxonomy (spec.md §6) and renders a single user-visible line for
// whichever error aborted translation. The teacher's
// internal/errors/errors.go formats a source line and column caret for each
// CompilerError; MatLang's lexer tracks only line numbers, so the format
// here is the coarser `Error (Line N): <message>` spec.md §7 specifies.
// The one error kind with no line number, internal/driver.IOError, is
// classified and formatted here but defined in internal/driver since it
// is the driver, not a compiler stage, that raises it.
package diag

import (
	"errors"
	"fmt"

	"github.com/cwbudde/matlangc/internal/codegen"
	"github.com/cwbudde/matlangc/internal/driver"
	"github.com/cwbudde/matlangc/internal/lexer"
	"github.com/cwbudde/matlangc/internal/parser"
	"github.com/cwbudde/matlangc/internal/semantic"
	"github.com/cwbudde/matlangc/internal/symtab"
)

// Kind classifies a fatal error for exit-code mapping and reporting.
type Kind int

const (
	KindNone Kind = iota
	KindUsage
	KindMissingOutput
	KindIO
	KindLexOrParse
	KindSemantic
	KindCodegen
)

// ClassifyKind determines which §6 category err belongs to by matching it
// against each stage's error types in turn: driver, lexer/parser,
// symbol table/semantic, code generator. Anything else is KindIO.
func ClassifyKind(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errorIs[*driver.IOError](err):
		return KindIO
	case errorIs[*lexer.LexError](err), errorIs[*parser.ParseError](err):
		return KindLexOrParse
	case errorIs[*symtab.ErrAlreadyDeclared](err), errorIs[*symtab.ErrNotDeclared](err),
		errorIs[*semantic.UndeclaredError](err):
		return KindSemantic
	case errorIs[*codegen.TypeError](err), errorIs[*codegen.ShapeError](err),
		errorIs[*codegen.SubscriptError](err), errorIs[*codegen.ListSizeError](err):
		return KindCodegen
	default:
		return KindIO
	}
}

func errorIs[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

// ExitCode maps a Kind to the process exit status the CLI returns for it:
// spec.md §6's negative taxonomy (`-1`..`-7`), taken as its absolute value
// since POSIX exit statuses cannot be negative.
func ExitCode(k Kind) int {
	switch k {
	case KindNone:
		return 0
	case KindUsage:
		return 1
	case KindMissingOutput:
		return 2
	case KindIO:
		return 3
	case KindLexOrParse:
		return 4
	case KindSemantic:
		return 5
	case KindCodegen:
		return 7
	default:
		return 1
	}
}

// Format renders err in the single user-visible form spec.md §7 mandates.
// The lexer, parser, semantic and code generator error types already format
// themselves as "Error (Line N): ...", and the driver's IOError, which
// carries no line number, gets an "Error: " prefix here. Any other error,
// including a symtab error that reaches the caller directly, is printed as
// its bare message without a line number.
func Format(err error) string {
	var ioErr *driver.IOError
	if errors.As(err, &ioErr) {
		return fmt.Sprintf("Error: %s", ioErr.Error())
	}
	return err.Error()
}
