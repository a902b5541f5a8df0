package file

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// ReadLines loads a file into line form. The final line is preserved
// whether or not it carries a trailing newline; an empty file reads as
// a single empty line.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	text, err := toLatin1(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return SplitLines(text), nil
}

// WriteLines saves lines to a file, terminating every line with a
// newline and transcoding back to UTF-8.
func WriteLines(path string, lines []string) error {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	out, err := charmap.ISO8859_1.NewDecoder().Bytes([]byte(sb.String()))
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// SplitLines converts raw text into line form. A trailing newline is a
// terminator, not a start of an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return []string{""}
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// toLatin1 maps file bytes into the internal Latin-1 representation.
// Valid UTF-8 is narrowed through the charmap, replacing characters
// outside Latin-1. Anything else is assumed to be Latin-1 already.
func toLatin1(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return string(data), nil
	}
	enc := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	out, err := enc.Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
