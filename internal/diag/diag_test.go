package diag

import (
	"errors"
	"testing"

	"github.com/cwbudde/matlangc/internal/codegen"
	"github.com/cwbudde/matlangc/internal/driver"
	"github.com/cwbudde/matlangc/internal/lexer"
	"github.com/cwbudde/matlangc/internal/symtab"
)

func TestClassifyKind_LexError(t *testing.T) {
	err := &lexer.LexError{Line: 3, Lexeme: "@"}
	if got := ClassifyKind(err); got != KindLexOrParse {
		t.Fatalf("ClassifyKind = %v, want KindLexOrParse", got)
	}
	if got := ExitCode(ClassifyKind(err)); got != 4 {
		t.Fatalf("ExitCode = %d, want 4", got)
	}
}

func TestClassifyKind_SymtabErrors(t *testing.T) {
	if got := ClassifyKind(&symtab.ErrAlreadyDeclared{Name: "x"}); got != KindSemantic {
		t.Fatalf("ClassifyKind(AlreadyDeclared) = %v, want KindSemantic", got)
	}
	if got := ClassifyKind(&symtab.ErrNotDeclared{Name: "x"}); got != KindSemantic {
		t.Fatalf("ClassifyKind(NotDeclared) = %v, want KindSemantic", got)
	}
}

func TestClassifyKind_CodegenErrors(t *testing.T) {
	err := &codegen.ShapeError{Line: 1, Message: "dimension mismatch"}
	if got := ClassifyKind(err); got != KindCodegen {
		t.Fatalf("ClassifyKind = %v, want KindCodegen", got)
	}
	if got := ExitCode(ClassifyKind(err)); got != 7 {
		t.Fatalf("ExitCode = %d, want 7", got)
	}
}

func TestClassifyKind_IOError(t *testing.T) {
	err := driver.NewIOError("in.matl", errors.New("permission denied"))
	if got := ClassifyKind(err); got != KindIO {
		t.Fatalf("ClassifyKind = %v, want KindIO", got)
	}
	if got := ExitCode(ClassifyKind(err)); got != 3 {
		t.Fatalf("ExitCode = %d, want 3", got)
	}
}

func TestExitCode_None(t *testing.T) {
	if got := ExitCode(ClassifyKind(nil)); got != 0 {
		t.Fatalf("ExitCode(none) = %d, want 0", got)
	}
}

func TestFormat_IOErrorHasNoLineNumber(t *testing.T) {
	err := driver.NewIOError("in.matl", errors.New("not found"))
	got := Format(err)
	want := "Error: in.matl: not found"
	if got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}
