package dispatch

import (
	"github.com/dshills/inkwell/internal/engine/buffer"
)

// editActions mutate the active buffer.
var editActions = map[string]ActionFunc{
	"edit.newline":    editNewline,
	"edit.deleteChar": editDeleteChar,
	"edit.backspace":  editBackspace,
	"edit.killLine":   editKillLine,
	"edit.yank":       editYank,
	"edit.killRegion": editKillRegion,
	"edit.copyRegion": editCopyRegion,
	"edit.undo":       editUndo,
	"edit.redo":       editRedo,
	"mark.set":        markSet,
}

func editNewline(ctx *Context) error {
	ctx.Session.Active().InsertNewline()
	return nil
}

// deleteTarget is the position one step past the cursor, crossing the
// line break at end of line.
func deleteTarget(b *buffer.Buffer) (buffer.Position, bool) {
	cur := b.Cursor()
	if cur.Col < b.LineLen(cur.Line) {
		return buffer.Position{Line: cur.Line, Col: cur.Col + 1}, true
	}
	if cur.Line < b.LineCount() {
		return buffer.Position{Line: cur.Line + 1, Col: 0}, true
	}
	return buffer.Position{}, false
}

func editDeleteChar(ctx *Context) error {
	b := ctx.Session.Active()
	to, ok := deleteTarget(b)
	if !ok {
		ctx.SetStatus("End of buffer")
		return nil
	}
	if _, err := b.Delete(to); err != nil {
		ctx.SetStatus("Delete failed: %v", err)
	}
	return nil
}

func editBackspace(ctx *Context) error {
	b := ctx.Session.Active()
	if b.AtBufferStart() {
		ctx.SetStatus("Beginning of buffer")
		return nil
	}

	target := b.Cursor()
	if target.Col > 0 {
		b.SetCursor(buffer.Position{Line: target.Line, Col: target.Col - 1})
	} else {
		b.SetCursor(buffer.Position{Line: target.Line - 1, Col: b.LineLen(target.Line - 1)})
	}
	if _, err := b.Delete(target); err != nil {
		ctx.SetStatus("Delete failed: %v", err)
	}
	return nil
}

// editKillLine removes to the end of the line, or the line break
// itself when already there. Killed text lands in the kill register;
// consecutive kills coalesce.
func editKillLine(ctx *Context) error {
	b := ctx.Session.Active()
	cur := b.Cursor()

	var to buffer.Position
	if cur.Col < b.LineLen(cur.Line) {
		to = buffer.Position{Line: cur.Line, Col: b.LineLen(cur.Line)}
	} else if cur.Line < b.LineCount() {
		to = buffer.Position{Line: cur.Line + 1, Col: 0}
	} else {
		ctx.SetStatus("End of buffer")
		return nil
	}

	removed, err := b.Delete(to)
	if err != nil {
		ctx.SetStatus("Kill failed: %v", err)
		return nil
	}
	ctx.Session.Kill(removed)
	return nil
}

func editYank(ctx *Context) error {
	lines := ctx.Session.Register()
	if lines == nil {
		ctx.SetStatus("Kill register is empty")
		return nil
	}
	ctx.Session.Active().Insert(lines)
	return nil
}

func markSet(ctx *Context) error {
	ctx.Session.Active().SetMark()
	ctx.SetStatus("Mark set")
	return nil
}

func editKillRegion(ctx *Context) error {
	b := ctx.Session.Active()
	begin, end, ok := b.SelectionBounds()
	if !ok {
		ctx.SetStatus("No mark set")
		return nil
	}

	b.SetCursor(begin)
	removed, err := b.Delete(end)
	if err != nil {
		ctx.SetStatus("Kill failed: %v", err)
		return nil
	}
	b.ClearMark()
	ctx.Session.Kill(removed)
	return nil
}

func editCopyRegion(ctx *Context) error {
	b := ctx.Session.Active()
	begin, end, ok := b.SelectionBounds()
	if !ok {
		ctx.SetStatus("No mark set")
		return nil
	}

	ctx.Session.Kill(b.TextRange(begin, end))
	b.ClearMark()
	ctx.SetStatus("Region copied")
	return nil
}

func editUndo(ctx *Context) error {
	if err := ctx.Session.Active().Undo(); err != nil {
		ctx.SetStatus("%v", err)
	}
	return nil
}

func editRedo(ctx *Context) error {
	if err := ctx.Session.Active().Redo(); err != nil {
		ctx.SetStatus("%v", err)
	}
	return nil
}
