// Package search implements pattern lookup over buffer lines.
// Patterns are plain Latin-1 byte strings; matching is exact.
package search

import (
	"strings"

	"github.com/dshills/inkwell/internal/engine/buffer"
)

// Forward finds the first occurrence of pattern strictly after from,
// wrapping to the buffer start. Returns the match start and false when
// the pattern occurs nowhere.
func Forward(b *buffer.Buffer, from buffer.Position, pattern string) (buffer.Position, bool) {
	if pattern == "" {
		return buffer.Position{}, false
	}

	// From just after the starting point to the end of the buffer.
	for n := from.Line; n <= b.LineCount(); n++ {
		offset := 0
		if n == from.Line {
			offset = from.Col + 1
			if offset > b.LineLen(n) {
				continue
			}
		}
		if col := strings.Index(b.Line(n)[offset:], pattern); col >= 0 {
			return buffer.Position{Line: n, Col: offset + col}, true
		}
	}

	// Wrap: from the buffer start through the starting line.
	for n := 1; n <= from.Line; n++ {
		if col := strings.Index(b.Line(n), pattern); col >= 0 {
			p := buffer.Position{Line: n, Col: col}
			if n == from.Line && col > from.Col {
				// Already covered by the first pass.
				break
			}
			return p, true
		}
	}

	return buffer.Position{}, false
}

// Backward finds the last occurrence of pattern strictly before from,
// wrapping to the buffer end.
func Backward(b *buffer.Buffer, from buffer.Position, pattern string) (buffer.Position, bool) {
	if pattern == "" {
		return buffer.Position{}, false
	}

	for n := from.Line; n >= 1; n-- {
		line := b.Line(n)
		if n == from.Line {
			if from.Col <= 0 {
				continue
			}
			end := from.Col
			if end > len(line) {
				end = len(line)
			}
			line = line[:end]
		}
		if col := strings.LastIndex(line, pattern); col >= 0 {
			return buffer.Position{Line: n, Col: col}, true
		}
	}

	for n := b.LineCount(); n >= from.Line; n-- {
		if col := strings.LastIndex(b.Line(n), pattern); col >= 0 {
			if n == from.Line && col < from.Col {
				break
			}
			return buffer.Position{Line: n, Col: col}, true
		}
	}

	return buffer.Position{}, false
}

// Count returns the number of occurrences of pattern in the buffer.
// Matches never span line breaks.
func Count(b *buffer.Buffer, pattern string) int {
	if pattern == "" {
		return 0
	}
	total := 0
	for n := 1; n <= b.LineCount(); n++ {
		total += strings.Count(b.Line(n), pattern)
	}
	return total
}
