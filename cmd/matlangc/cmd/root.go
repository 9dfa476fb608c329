// Package cmd implements matlangc's cobra command tree: one file per
// subcommand registered against a shared rootCmd in init(), following
// cmd/dwscript/cmd's layout.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags; BuildDate and GitCommit follow the
	// same convention as the teacher's cmd/dwscript/cmd/version.go.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "matlangc",
	Short: "MatLang to C source-to-source compiler",
	Long: `matlangc translates MatLang, a small scalar/vector/matrix scripting
language, into portable C99.

It runs a lexer, a table-driven parser, a single-sweep semantic pass, and a
code generator in sequence, and writes the resulting .c file.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}
