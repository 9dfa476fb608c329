// Package preprocess strips `#`-to-end-of-line comments from MatLang
// source before lexing, the same single-pass line filter
// original_source/src/preprocessor.cpp runs before tokenizing begins.
package preprocess

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// RemoveComments reads source line by line and writes each line truncated
// at its first '#' (if any) to w. A line with no '#' passes through
// unchanged. Every input line produces exactly one output line, blank or
// not, so downstream line numbers never shift.
func RemoveComments(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	bw := bufio.NewWriter(w)
	for scanner.Scan() {
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("preprocess: %w", err)
	}
	return bw.Flush()
}

// Strip returns source with every `#`-to-end-of-line comment removed,
// preserving the original line count.
func Strip(source string) (string, error) {
	var sb strings.Builder
	if err := RemoveComments(strings.NewReader(source), &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
