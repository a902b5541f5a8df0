package dispatch

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dshills/inkwell/internal/engine/buffer"
)

// cursorActions are the pure motion commands.
var cursorActions = map[string]ActionFunc{
	"cursor.left":        cursorLeft,
	"cursor.right":       cursorRight,
	"cursor.up":          cursorUp,
	"cursor.down":        cursorDown,
	"cursor.lineStart":   cursorLineStart,
	"cursor.lineEnd":     cursorLineEnd,
	"cursor.pageDown":    cursorPageDown,
	"cursor.pageUp":      cursorPageUp,
	"cursor.bufferStart": cursorBufferStart,
	"cursor.bufferEnd":   cursorBufferEnd,
	"cursor.gotoLine":    cursorGotoLine,
}

func cursorLeft(ctx *Context) error {
	b := ctx.Session.Active()
	cur := b.Cursor()
	switch {
	case cur.Col > 0:
		b.SetCursor(buffer.Position{Line: cur.Line, Col: cur.Col - 1})
	case cur.Line > 1:
		// Wrap to the end of the previous line.
		b.SetCursor(buffer.Position{Line: cur.Line - 1, Col: b.LineLen(cur.Line - 1)})
	default:
		ctx.SetStatus("Beginning of buffer")
	}
	return nil
}

func cursorRight(ctx *Context) error {
	b := ctx.Session.Active()
	cur := b.Cursor()
	switch {
	case cur.Col < b.LineLen(cur.Line):
		b.SetCursor(buffer.Position{Line: cur.Line, Col: cur.Col + 1})
	case cur.Line < b.LineCount():
		b.SetCursor(buffer.Position{Line: cur.Line + 1, Col: 0})
	default:
		ctx.SetStatus("End of buffer")
	}
	return nil
}

func cursorUp(ctx *Context) error {
	b := ctx.Session.Active()
	cur := b.Cursor()
	if cur.Line == 1 {
		ctx.SetStatus("Beginning of buffer")
		return nil
	}
	b.SetCursor(buffer.Position{Line: cur.Line - 1, Col: cur.Col})
	return nil
}

func cursorDown(ctx *Context) error {
	b := ctx.Session.Active()
	cur := b.Cursor()
	if cur.Line == b.LineCount() {
		ctx.SetStatus("End of buffer")
		return nil
	}
	b.SetCursor(buffer.Position{Line: cur.Line + 1, Col: cur.Col})
	return nil
}

func cursorLineStart(ctx *Context) error {
	b := ctx.Session.Active()
	b.SetCursor(buffer.Position{Line: b.Cursor().Line, Col: 0})
	return nil
}

func cursorLineEnd(ctx *Context) error {
	b := ctx.Session.Active()
	cur := b.Cursor()
	b.SetCursor(buffer.Position{Line: cur.Line, Col: b.LineLen(cur.Line)})
	return nil
}

func cursorPageDown(ctx *Context) error {
	b := ctx.Session.Active()
	step := pageStep(b)
	cur := b.Cursor()
	b.SetCursor(buffer.Position{Line: cur.Line + step, Col: cur.Col})
	return nil
}

func cursorPageUp(ctx *Context) error {
	b := ctx.Session.Active()
	step := pageStep(b)
	cur := b.Cursor()
	b.SetCursor(buffer.Position{Line: cur.Line - step, Col: cur.Col})
	return nil
}

// pageStep is one window height, minus a line of overlap.
func pageStep(b *buffer.Buffer) int {
	h := b.Box().Height
	if h > 1 {
		return h - 1
	}
	return 1
}

func cursorBufferStart(ctx *Context) error {
	ctx.Session.Active().SetCursor(buffer.Position{Line: 1, Col: 0})
	return nil
}

func cursorBufferEnd(ctx *Context) error {
	b := ctx.Session.Active()
	b.SetCursor(b.End())
	return nil
}

func cursorGotoLine(ctx *Context) error {
	answer, err := ctx.ReadString("Goto line: ")
	if err != nil {
		if errors.Is(err, ErrPromptAborted) {
			ctx.SetStatus("Quit")
			return nil
		}
		return err
	}

	n, convErr := strconv.Atoi(strings.TrimSpace(answer))
	if convErr != nil {
		ctx.SetStatus("Not a line number: %q", answer)
		return nil
	}
	b := ctx.Session.Active()
	if n < 1 || n > b.LineCount() {
		ctx.SetStatus("Line out of range: %d", n)
		return nil
	}
	b.SetCursor(buffer.Position{Line: n, Col: 0})
	return nil
}
