package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/matlangc/internal/diag"
	"github.com/cwbudde/matlangc/internal/lexer"
	"github.com/cwbudde/matlangc/internal/preprocess"
	"github.com/cwbudde/matlangc/internal/source"
)

var lexCmd = &cobra.Command{
	Use:   "lex SOURCE",
	Short: "Tokenize a MatLang file and print the resulting tokens",
	Long: `Lex tokenizes a MatLang program line by line and prints each token's
category, lexeme, and source line, without parsing.

Useful for debugging the lexer in isolation.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(_ *cobra.Command, args []string) error {
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

	for _, toks := range tokenLines {
		for _, tok := range toks {
			fmt.Printf("[%-20s] %q @%d\n", tok.Category, tok.Lexeme, tok.Line)
		}
	}
	return nil
}
