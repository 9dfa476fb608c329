// Package driver sequences the four compiler stages end to end and owns
// the file-lifecycle guarantees spec.md §5/§7 mandates: the preprocessed
// intermediate is always removed on every exit path, and the output file
// is created at the start of code generation and removed if and only if
// generation fails. Grounded on cmd/dwscript/cmd/compile.go's
// read-lex-parse-analyze-emit sequencing, adapted to MatLang's
// single-first-error model and to spec.md's explicit cleanup requirement
// (the teacher leaves a partially written output file on disk; this
// package does not).
package driver

import (
	"fmt"
	"os"

	"github.com/cwbudde/matlangc/internal/codegen"
	"github.com/cwbudde/matlangc/internal/config"
	"github.com/cwbudde/matlangc/internal/lexer"
	"github.com/cwbudde/matlangc/internal/parser"
	"github.com/cwbudde/matlangc/internal/preprocess"
	"github.com/cwbudde/matlangc/internal/semantic"
	"github.com/cwbudde/matlangc/internal/source"
	"github.com/cwbudde/matlangc/internal/symtab"
)

// IOError reports a failure opening the source, writing the preprocessed
// intermediate, or writing the output file — the one error kind that
// originates in the driver rather than in a compiler stage.
type IOError struct {
	Path    string
	Message string
}

func (e *IOError) Error() string { return fmt.Sprintf("%s: %s", e.Path, e.Message) }

// NewIOError builds an IOError for path with the given underlying cause.
func NewIOError(path string, cause error) *IOError {
	return &IOError{Path: path, Message: cause.Error()}
}

// Result carries the artifacts of a successful Compile, for callers that
// want to report them (the --dump-json trace, --verbose summaries).
type Result struct {
	Statements []parser.Statement
	Table      *symtab.Table
	Generated  string
}

// Compile reads sourcePath, strips comments, lexes and parses every line,
// runs the semantic pass, generates C, and writes outputPath. It sequences
// lexer -> parser -> semantic -> codegen and is the single place that
// knows about all four.
//
// The preprocessed intermediate (a temp file in the OS temp directory)
// is removed before Compile returns, on every path. outputPath is created
// once code generation begins and removed again if generation fails.
func Compile(sourcePath, outputPath string, cfg *config.Config) (*Result, error) {
	raw, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, NewIOError(sourcePath, err)
	}
	prepared := source.Prepare(string(raw))

	stripped, err := preprocess.Strip(prepared)
	if err != nil {
		return nil, NewIOError(sourcePath, err)
	}

	preFile, err := os.CreateTemp("", "matlangc-*.pre")
	if err != nil {
		return nil, NewIOError(sourcePath, err)
	}
	prePath := preFile.Name()
	defer os.Remove(prePath)

	if _, err := preFile.WriteString(stripped); err != nil {
		preFile.Close()
		return nil, NewIOError(prePath, err)
	}
	if err := preFile.Close(); err != nil {
		return nil, NewIOError(prePath, err)
	}

	preprocessed, err := os.ReadFile(prePath)
	if err != nil {
		return nil, NewIOError(prePath, err)
	}

	table := symtab.New()
	p := parser.New(table)

	tokenLines, err := lexer.TokenizeLines(string(preprocessed))
	if err != nil {
		return nil, err
	}

	var statements []parser.Statement
	for _, toks := range tokenLines {
		if len(toks) == 0 {
			continue
		}
		stmt, err := p.ParseLine(toks, toks[0].Line)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	analyzer := semantic.New(table)
	if err := analyzer.Analyze(statements); err != nil {
		return nil, err
	}

	gen := codegen.New(table, cfg.Output.TempPrefix)
	gen.SetIndent(cfg.Output.Indent)

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, NewIOError(outputPath, err)
	}

	generated, genErr := gen.Generate(statements)
	if genErr != nil {
		out.Close()
		os.Remove(outputPath)
		return nil, genErr
	}

	if _, err := out.WriteString(generated); err != nil {
		out.Close()
		os.Remove(outputPath)
		return nil, NewIOError(outputPath, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(outputPath)
		return nil, NewIOError(outputPath, err)
	}

	return &Result{Statements: statements, Table: table, Generated: generated}, nil
}
