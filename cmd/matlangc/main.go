// Command matlangc translates MatLang source into portable C99.
package main

import (
	"os"

	"github.com/cwbudde/matlangc/cmd/matlangc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
