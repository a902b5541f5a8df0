package buffer

import (
	"errors"
	"strings"

	"github.com/dshills/inkwell/internal/engine/history"
)

// Errors returned by the mutators.
var (
	ErrTargetBeforeCursor = errors.New("delete target precedes cursor")
	ErrInvalidPosition    = errors.New("position out of range")
)

// Insert inserts text at the cursor. A single-element slice is in-line
// text; two or more elements carry line breaks: the current line is
// split at the cursor, the first element joins the head fragment,
// interior elements are inserted verbatim, and the tail fragment of
// the original line is appended to the last element.
//
// The cursor moves to the end of the inserted text and the edit is
// recorded for undo.
func (b *Buffer) Insert(lines []string) {
	if len(lines) == 0 || (len(lines) == 1 && lines[0] == "") {
		return
	}

	pos := b.cursor
	b.record(history.Insert, pos, lines)

	cur := b.lines[pos.Line-1]
	head, tail := cur[:pos.Col], cur[pos.Col:]

	if len(lines) == 1 {
		b.lines[pos.Line-1] = head + lines[0] + tail
		b.cursor = Position{Line: pos.Line, Col: pos.Col + len(lines[0])}
	} else {
		spliced := make([]string, 0, len(b.lines)+len(lines)-1)
		spliced = append(spliced, b.lines[:pos.Line-1]...)
		spliced = append(spliced, head+lines[0])
		spliced = append(spliced, lines[1:len(lines)-1]...)
		spliced = append(spliced, lines[len(lines)-1]+tail)
		spliced = append(spliced, b.lines[pos.Line:]...)
		b.lines = spliced
		b.cursor = Position{
			Line: pos.Line + len(lines) - 1,
			Col:  len(lines[len(lines)-1]),
		}
	}

	b.dirty = true
	b.unsaved = true
}

// InsertText inserts plain text, splitting on newlines.
func (b *Buffer) InsertText(s string) {
	b.Insert(strings.Split(s, "\n"))
}

// InsertNewline breaks the current line at the cursor.
func (b *Buffer) InsertNewline() {
	b.Insert([]string{"", ""})
}

// Delete removes the text between the cursor and to, which must not
// precede the cursor. The head fragment of the start line is merged
// with the tail fragment of the end line; lines strictly between are
// removed. The cursor stays at the start of the deleted region.
//
// The removed text is returned in the same line form Insert accepts,
// so Insert(removed) is the exact inverse.
func (b *Buffer) Delete(to Position) ([]string, error) {
	if to.Line < 1 || to.Line > len(b.lines) || to.Col < 0 || to.Col > len(b.lines[to.Line-1]) {
		return nil, ErrInvalidPosition
	}
	pos := b.cursor
	if to.Before(pos) {
		return nil, ErrTargetBeforeCursor
	}
	if to == pos {
		return nil, nil
	}

	removed := b.TextRange(pos, to)
	b.record(history.Delete, pos, removed)

	if to.Line == pos.Line {
		line := b.lines[pos.Line-1]
		b.lines[pos.Line-1] = line[:pos.Col] + line[to.Col:]
	} else {
		head := b.lines[pos.Line-1][:pos.Col]
		tail := b.lines[to.Line-1][to.Col:]
		spliced := make([]string, 0, len(b.lines)-(to.Line-pos.Line))
		spliced = append(spliced, b.lines[:pos.Line-1]...)
		spliced = append(spliced, head+tail)
		spliced = append(spliced, b.lines[to.Line:]...)
		b.lines = spliced
	}

	b.cursor = pos
	b.dirty = true
	b.unsaved = true
	return removed, nil
}

// record pushes an edit record unless history replay is in progress.
func (b *Buffer) record(kind history.Kind, pos Position, lines []string) {
	if b.suppress {
		return
	}
	saved := make([]string, len(lines))
	copy(saved, lines)
	b.log.Push(history.Record{
		Kind:  kind,
		Line:  pos.Line,
		Col:   pos.Col,
		Lines: saved,
	})
}

// spanEnd returns the position just past text inserted at pos.
func spanEnd(pos Position, lines []string) Position {
	if len(lines) == 1 {
		return Position{Line: pos.Line, Col: pos.Col + len(lines[0])}
	}
	return Position{
		Line: pos.Line + len(lines) - 1,
		Col:  len(lines[len(lines)-1]),
	}
}

// Undo reverts the most recent edit: the cursor moves to the record's
// stored pre-edit position, the inverse operation is applied with
// recording suppressed, and the log pointer steps back.
func (b *Buffer) Undo() error {
	rec, err := b.log.StepBack()
	if err != nil {
		return err
	}

	pos := Position{Line: rec.Line, Col: rec.Col}
	b.suppress = true
	defer func() { b.suppress = false }()

	b.cursor = pos
	switch rec.Kind {
	case history.Insert:
		if _, err := b.Delete(spanEnd(pos, rec.Lines)); err != nil {
			return err
		}
	case history.Delete:
		b.Insert(rec.Lines)
	}
	b.cursor = pos
	return nil
}

// Redo reapplies the most recently undone edit and steps the log
// pointer forward.
func (b *Buffer) Redo() error {
	rec, err := b.log.StepForward()
	if err != nil {
		return err
	}

	pos := Position{Line: rec.Line, Col: rec.Col}
	b.suppress = true
	defer func() { b.suppress = false }()

	b.cursor = pos
	switch rec.Kind {
	case history.Insert:
		b.Insert(rec.Lines)
	case history.Delete:
		if _, err := b.Delete(spanEnd(pos, rec.Lines)); err != nil {
			return err
		}
	}
	return nil
}
