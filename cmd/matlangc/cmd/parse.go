package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/matlangc/internal/diag"
	"github.com/cwbudde/matlangc/internal/diagtrace"
	"github.com/cwbudde/matlangc/internal/lexer"
	"github.com/cwbudde/matlangc/internal/parser"
	"github.com/cwbudde/matlangc/internal/preprocess"
	"github.com/cwbudde/matlangc/internal/source"
	"github.com/cwbudde/matlangc/internal/symtab"
)

var parsePretty bool

var parseCmd = &cobra.Command{
	Use:   "parse SOURCE",
	Short: "Parse a MatLang file and print the annotated statement list",
	Long: `Parse runs the lexer and parser, stopping short of the semantic pass
and code generation, and prints each statement's kind, source line, and
token count. --pretty renders the statement list with kr/pretty instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parsePretty, "pretty", false, "print the statement list with kr/pretty instead")
}

func runParse(_ *cobra.Command, args []string) error {
	sourcePath := args[0]

	raw, err := os.ReadFile(sourcePath)
	if err != nil {
		fmt.Printf("Error: %s: %s\n", sourcePath, err)
		os.Exit(diag.ExitCode(diag.KindIO))
	}

	stripped, err := preprocess.Strip(source.Prepare(string(raw)))
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(diag.ExitCode(diag.KindIO))
	}

	tokenLines, err := lexer.TokenizeLines(stripped)
	if err != nil {
		fmt.Println(diag.Format(err))
		os.Exit(diag.ExitCode(diag.ClassifyKind(err)))
	}

	table := symtab.New()
	p := parser.New(table)

	var statements []parser.Statement
	for _, toks := range tokenLines {
		stmt, err := p.ParseLine(toks, toks[0].Line)
		if err != nil {
			fmt.Println(diag.Format(err))
			os.Exit(diag.ExitCode(diag.ClassifyKind(err)))
		}
		statements = append(statements, stmt)
	}

	if parsePretty {
		fmt.Println(diagtrace.Pretty(statements))
		return nil
	}

	for _, stmt := range statements {
		fmt.Printf("%-32s line %-4d tokens %d\n", stmt.Kind, stmt.Line, len(stmt.Tokens))
	}
	for _, name := range table.Names() {
		v, _ := table.Lookup(name)
		fmt.Printf("symbol %-16s kind %-8s rows %d cols %d\n", v.Name, v.Kind, v.Rows, v.Cols)
	}
	return nil
}
