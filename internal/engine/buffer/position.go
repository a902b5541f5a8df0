package buffer

import "fmt"

// Position addresses a byte in a buffer. Line is 1-based, Col is a
// 0-based byte column within the line.
type Position struct {
	Line int
	Col  int
}

// String returns the position in line:col form.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Compare orders positions lexicographically on (line, col).
// It returns -1, 0, or 1.
func (p Position) Compare(o Position) int {
	switch {
	case p.Line < o.Line:
		return -1
	case p.Line > o.Line:
		return 1
	case p.Col < o.Col:
		return -1
	case p.Col > o.Col:
		return 1
	default:
		return 0
	}
}

// Before reports whether p comes strictly before o.
func (p Position) Before(o Position) bool { return p.Compare(o) < 0 }

// After reports whether p comes strictly after o.
func (p Position) After(o Position) bool { return p.Compare(o) > 0 }

// Box is the rectangular screen region a buffer renders into.
// Top and Left are 1-based terminal coordinates. Pure view state,
// never persisted.
type Box struct {
	Top    int
	Left   int
	Height int
	Width  int
}
