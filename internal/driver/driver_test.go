package driver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/matlangc/internal/codegen"
	"github.com/cwbudde/matlangc/internal/config"
)

func writeSource(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writeSource: %v", err)
	}
	return path
}

func TestCompile_WritesOutputOnSuccess(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "in.matl", "scalar x\nx = 1\n")
	out := filepath.Join(dir, "out.c")

	result, err := Compile(src, out, config.Default())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(result.Statements) != 2 {
		t.Fatalf("len(Statements) = %d, want 2", len(result.Statements))
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if !strings.Contains(string(data), "int main") {
		t.Fatalf("generated output missing main: %q", data)
	}
}

func TestCompile_RemovesOutputOnCodegenFailure(t *testing.T) {
	dir := t.TempDir()
	// A subscript on a scalar is a codegen SubscriptError (spec.md §8 item 5).
	src := writeSource(t, dir, "in.matl", "scalar x\nscalar y\ny = x[1]\n")
	out := filepath.Join(dir, "out.c")

	_, err := Compile(src, out, config.Default())
	if err == nil {
		t.Fatalf("expected an error")
	}
	if _, ok := err.(*codegen.SubscriptError); !ok {
		t.Fatalf("err = %T, want *codegen.SubscriptError", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatalf("expected %s to be removed after codegen failure", out)
	}
}

func TestCompile_MissingSourceIsIOError(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.c")

	_, err := Compile(filepath.Join(dir, "missing.matl"), out, config.Default())
	if err == nil {
		t.Fatalf("expected an error")
	}
	if _, ok := err.(*IOError); !ok {
		t.Fatalf("err = %T, want *IOError", err)
	}
}

func TestCompile_StripsCommentsBeforeLexing(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "in.matl", "scalar x # comment\nx = 1\n")
	out := filepath.Join(dir, "out.c")

	if _, err := Compile(src, out, config.Default()); err != nil {
		t.Fatalf("Compile: %v", err)
	}
}
