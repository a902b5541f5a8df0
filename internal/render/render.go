// Package render is the redisplay engine: it reconciles a buffer's
// scroll state against its screen box and repaints as little as
// possible.
//
// A full content repaint happens only when the scroll position changed
// or the buffer is marked dirty. Otherwise only the hardware cursor is
// repositioned, which keeps pure cursor motion flicker free. The
// hardware cursor is always left at the buffer's logical cursor.
package render

import (
	"github.com/dshills/inkwell/internal/engine/buffer"
	"github.com/dshills/inkwell/internal/render/layout"
	"github.com/dshills/inkwell/internal/render/style"
	"github.com/dshills/inkwell/internal/term"
)

// TruncGlyph marks a line continuing past the right edge of the box.
const TruncGlyph = '$'

// DefaultStride is the horizontal scroll step in columns.
const DefaultStride = 8

// Engine draws buffers onto a screen.
type Engine struct {
	screen *term.Screen
	theme  style.Theme
	tabs   *layout.Expander
	stride int
}

// New creates a redisplay engine.
func New(screen *term.Screen, theme style.Theme, tabWidth, stride int) *Engine {
	if stride < 1 {
		stride = DefaultStride
	}
	return &Engine{
		screen: screen,
		theme:  theme,
		tabs:   layout.NewExpander(tabWidth),
		stride: stride,
	}
}

// Tabs exposes the expander so prompts and dispatch share the same
// column arithmetic.
func (e *Engine) Tabs() *layout.Expander { return e.tabs }

// Render reconciles scroll state and repaints the buffer's box if
// needed, leaving the hardware cursor at the logical cursor.
func (e *Engine) Render(buf *buffer.Buffer) error {
	box := buf.Box()
	if box.Width <= 0 || box.Height <= 0 {
		return nil
	}

	scrolled := e.reconcileScroll(buf, box)
	if scrolled || buf.Dirty() {
		e.repaint(buf, box)
		buf.ClearDirty()
	}

	e.placeCursor(buf, box)
	return e.screen.Flush()
}

// reconcileScroll updates the buffer's scroll state so the cursor is
// inside the box. Vertical scroll re-centers near the middle of the
// window; horizontal scroll advances in fixed strides.
func (e *Engine) reconcileScroll(buf *buffer.Buffer, box buffer.Box) bool {
	changed := false
	cur := buf.Cursor()

	top := buf.TopLine()
	if cur.Line < top || cur.Line >= top+box.Height {
		top = cur.Line - box.Height/2
		if top < 1 {
			top = 1
		}
		buf.SetTopLine(top)
		changed = true
	}

	rendered := e.tabs.ColumnFor(buf.Line(cur.Line), cur.Col)
	left := buf.LeftCol()
	for rendered < left {
		left -= e.stride
	}
	if left < 0 {
		left = 0
	}
	for rendered >= left+box.Width {
		left += e.stride
	}
	if left != buf.LeftCol() {
		buf.SetLeftCol(left)
		changed = true
	}

	return changed
}

// repaint redraws every visible line.
func (e *Engine) repaint(buf *buffer.Buffer, box buffer.Box) {
	e.screen.HideCursor()

	begin, end, hasSel := buf.SelectionBounds()
	for row := 0; row < box.Height; row++ {
		lineNo := buf.TopLine() + row
		e.screen.MoveTo(box.Top+row, box.Left)
		e.screen.SetStyle(e.theme.Normal)
		e.screen.ClearLine()

		if lineNo > buf.LineCount() {
			continue
		}

		selFrom, selTo := -1, -1
		if hasSel && lineNo >= begin.Line && lineNo <= end.Line {
			selFrom, selTo = 0, buf.LineLen(lineNo)
			if lineNo == begin.Line {
				selFrom = begin.Col
			}
			if lineNo == end.Line {
				selTo = end.Col
			}
		}
		e.paintLine(buf.Line(lineNo), box, buf.LeftCol(), selFrom, selTo)
	}

	e.screen.ResetStyle()
	e.screen.ShowCursor()
}

// paintLine draws one line's visible cells starting at the rendered
// column left, switching style exactly at the selection boundary
// columns. selFrom/selTo are byte indices, -1 when the line has no
// selected bytes.
func (e *Engine) paintLine(line string, box buffer.Box, left, selFrom, selTo int) {
	cells := e.tabs.Expand(line)
	if left >= len(cells) {
		return
	}

	visible := cells[left:]
	truncated := len(visible) > box.Width
	if truncated {
		// Leave the last column for the continuation glyph.
		visible = visible[:box.Width-1]
	}

	// Emit runs of identical style.
	if len(visible) > 0 {
		runStart := 0
		runSel := cellSelected(visible[0], selFrom, selTo)
		for i := 1; i <= len(visible); i++ {
			if i < len(visible) && cellSelected(visible[i], selFrom, selTo) == runSel {
				continue
			}
			e.screen.SetStyle(e.styleFor(runSel))
			e.screen.WriteText(layout.Text(visible[runStart:i]))
			if i < len(visible) {
				runStart = i
				runSel = cellSelected(visible[i], selFrom, selTo)
			}
		}
	}

	if truncated {
		e.screen.SetStyle(e.theme.Normal)
		e.screen.WriteText(string(rune(TruncGlyph)))
	}
}

func cellSelected(c layout.Cell, selFrom, selTo int) bool {
	return selFrom >= 0 && c.Byte >= selFrom && c.Byte < selTo
}

func (e *Engine) styleFor(selected bool) term.Style {
	if selected {
		return e.theme.Selection
	}
	return e.theme.Normal
}

// placeCursor moves the hardware cursor to the logical cursor.
func (e *Engine) placeCursor(buf *buffer.Buffer, box buffer.Box) {
	cur := buf.Cursor()
	rendered := e.tabs.ColumnFor(buf.Line(cur.Line), cur.Col)

	row := box.Top + (cur.Line - buf.TopLine())
	col := box.Left + (rendered - buf.LeftCol())
	e.screen.MoveTo(row, col)
}
