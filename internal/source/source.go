// Package source prepares raw MatLang source bytes for preprocessing and
// lexing: stripping a leading UTF-8 BOM the way the teacher's lexer does
// for DWScript source, and normalizing to NFC so combining-character
// sequences in identifiers compare equal regardless of how an editor wrote
// them.
package source

import (
	"golang.org/x/text/unicode/norm"
)

const utf8BOM = "\xEF\xBB\xBF"

// Prepare strips a leading UTF-8 BOM, if present, and normalizes the
// remaining text to NFC.
func Prepare(raw string) string {
	if len(raw) >= len(utf8BOM) && raw[:len(utf8BOM)] == utf8BOM {
		raw = raw[len(utf8BOM):]
	}
	return norm.NFC.String(raw)
}
