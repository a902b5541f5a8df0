package render

import (
	"fmt"
	"strings"

	"github.com/dshills/inkwell/internal/engine/buffer"
)

// UnnamedTitle is shown for buffers without a file.
const UnnamedTitle = "*scratch*"

// StatusText formats the left side of the status line: title, unsaved
// marker, and cursor position.
func StatusText(buf *buffer.Buffer) string {
	title := buf.Filename()
	if title == "" {
		title = UnnamedTitle
	}
	mark := "  "
	if buf.Unsaved() {
		mark = " +"
	}
	cur := buf.Cursor()
	return fmt.Sprintf("%s%s  L%d C%d", title, mark, cur.Line, cur.Col)
}

// DrawStatus paints one status line at the given 1-based row, padded or
// truncated to width. msg, when non-empty, takes the right side of the
// line; a message too long for the remaining space wins over the left
// text.
func (e *Engine) DrawStatus(row, width int, left, msg string) {
	if width <= 0 {
		return
	}

	text := composeStatus(left, msg, width)

	e.screen.MoveTo(row, 1)
	e.screen.SetStyle(e.theme.Status)
	e.screen.WriteText(text)
	e.screen.ResetStyle()
}

// composeStatus lays left and msg into a single width-sized string.
func composeStatus(left, msg string, width int) string {
	if len(msg) >= width {
		return msg[:width]
	}
	if msg != "" {
		avail := width - len(msg) - 1
		if len(left) > avail {
			left = left[:avail]
		}
		pad := width - len(left) - len(msg)
		return left + spaces(pad) + msg
	}
	if len(left) > width {
		return left[:width]
	}
	return left + spaces(width-len(left))
}

func spaces(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n)
}
