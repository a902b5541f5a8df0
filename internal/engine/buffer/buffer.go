package buffer

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/inkwell/internal/engine/history"
)

// Buffer holds the text and edit state for one open document.
// Not safe for concurrent use; the editor loop is single-threaded.
type Buffer struct {
	id       uuid.UUID
	filename string

	lines  []string
	cursor Position
	anchor *Position

	// View state.
	topLine int
	leftCol int
	box     Box

	// dirty means the view needs a repaint; unsaved means the content
	// differs from what is on disk.
	dirty   bool
	unsaved bool

	log      *history.Log
	suppress bool
}

// Option configures a new buffer.
type Option func(*Buffer)

// WithFilename associates the buffer with a file path.
func WithFilename(name string) Option {
	return func(b *Buffer) { b.filename = name }
}

// WithUndoLimit caps the undo log.
func WithUndoLimit(limit int) Option {
	return func(b *Buffer) { b.log = history.NewLog(limit) }
}

// New creates an empty buffer: one empty line, cursor at (1,0).
func New(opts ...Option) *Buffer {
	b := &Buffer{
		id:      uuid.New(),
		lines:   []string{""},
		cursor:  Position{Line: 1, Col: 0},
		topLine: 1,
		log:     history.NewLog(0),
		dirty:   true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromLines creates a buffer with initial content and an empty undo
// log. The slice is copied.
func NewFromLines(lines []string, opts ...Option) *Buffer {
	b := New(opts...)
	if len(lines) > 0 {
		b.lines = make([]string, len(lines))
		copy(b.lines, lines)
	}
	return b
}

// ID returns the buffer's identity.
func (b *Buffer) ID() uuid.UUID { return b.id }

// Filename returns the associated file path, empty for unnamed buffers.
func (b *Buffer) Filename() string { return b.filename }

// SetFilename changes the associated file path.
func (b *Buffer) SetFilename(name string) { b.filename = name }

// Read operations

// LineCount returns the number of lines. Always at least 1.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of a 1-based line, without newline.
// Out-of-range lines read as empty.
func (b *Buffer) Line(n int) string {
	if n < 1 || n > len(b.lines) {
		return ""
	}
	return b.lines[n-1]
}

// LineLen returns the byte length of a 1-based line.
func (b *Buffer) LineLen(n int) int { return len(b.Line(n)) }

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Text returns the whole content joined with newlines.
func (b *Buffer) Text() string { return strings.Join(b.lines, "\n") }

// End returns the position just past the last byte of the buffer.
func (b *Buffer) End() Position {
	last := len(b.lines)
	return Position{Line: last, Col: len(b.lines[last-1])}
}

// TextRange returns the text between from and to in line form: a
// single element for an in-line range, multiple elements when the
// range spans line breaks. Positions are clamped.
func (b *Buffer) TextRange(from, to Position) []string {
	from = b.Clamp(from)
	to = b.Clamp(to)
	if to.Before(from) {
		from, to = to, from
	}
	if from.Line == to.Line {
		return []string{b.lines[from.Line-1][from.Col:to.Col]}
	}
	out := make([]string, 0, to.Line-from.Line+1)
	out = append(out, b.lines[from.Line-1][from.Col:])
	for n := from.Line + 1; n < to.Line; n++ {
		out = append(out, b.lines[n-1])
	}
	out = append(out, b.lines[to.Line-1][:to.Col])
	return out
}

// Cursor and predicates

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() Position { return b.cursor }

// SetCursor moves the cursor, clamping to the valid range.
func (b *Buffer) SetCursor(p Position) { b.cursor = b.Clamp(p) }

// Clamp constrains a position to the buffer invariants.
func (b *Buffer) Clamp(p Position) Position {
	if p.Line < 1 {
		p.Line = 1
	}
	if p.Line > len(b.lines) {
		p.Line = len(b.lines)
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if max := len(b.lines[p.Line-1]); p.Col > max {
		p.Col = max
	}
	return p
}

// AtLineStart reports whether the cursor is at column 0.
func (b *Buffer) AtLineStart() bool { return b.cursor.Col == 0 }

// AtLineEnd reports whether the cursor is past the last byte of its line.
func (b *Buffer) AtLineEnd() bool {
	return b.cursor.Col >= len(b.lines[b.cursor.Line-1])
}

// AtBufferStart reports whether the cursor is at (1,0).
func (b *Buffer) AtBufferStart() bool {
	return b.cursor.Line == 1 && b.cursor.Col == 0
}

// AtBufferEnd reports whether the cursor is at the very end.
func (b *Buffer) AtBufferEnd() bool { return b.cursor == b.End() }

// Selection

// SetMark places the selection anchor at the cursor.
func (b *Buffer) SetMark() {
	p := b.cursor
	b.anchor = &p
	b.dirty = true
}

// ClearMark removes the selection anchor.
func (b *Buffer) ClearMark() {
	if b.anchor != nil {
		b.anchor = nil
		b.dirty = true
	}
}

// Mark returns the selection anchor, or nil when no selection exists.
func (b *Buffer) Mark() *Position {
	if b.anchor == nil {
		return nil
	}
	p := b.Clamp(*b.anchor)
	return &p
}

// SelectionBounds returns the ordered selection range. The bounds are
// ordered begin before end regardless of which side the cursor is on.
func (b *Buffer) SelectionBounds() (begin, end Position, ok bool) {
	if b.anchor == nil {
		return Position{}, Position{}, false
	}
	a := b.Clamp(*b.anchor)
	c := b.cursor
	if a.After(c) {
		a, c = c, a
	}
	return a, c, true
}

// Flags and view state

// Dirty reports whether the view needs a repaint.
func (b *Buffer) Dirty() bool { return b.dirty }

// MarkDirty forces a repaint on the next redisplay.
func (b *Buffer) MarkDirty() { b.dirty = true }

// ClearDirty is called by the redisplay engine after a full repaint.
func (b *Buffer) ClearDirty() { b.dirty = false }

// Unsaved reports whether content changed since the last save.
func (b *Buffer) Unsaved() bool { return b.unsaved }

// ClearUnsaved is called after a successful save.
func (b *Buffer) ClearUnsaved() { b.unsaved = false }

// TopLine returns the first visible line (1-based).
func (b *Buffer) TopLine() int { return b.topLine }

// SetTopLine sets the first visible line.
func (b *Buffer) SetTopLine(n int) {
	if n < 1 {
		n = 1
	}
	b.topLine = n
}

// LeftCol returns the horizontal scroll in rendered columns.
func (b *Buffer) LeftCol() int { return b.leftCol }

// SetLeftCol sets the horizontal scroll.
func (b *Buffer) SetLeftCol(n int) {
	if n < 0 {
		n = 0
	}
	b.leftCol = n
}

// Box returns the assigned screen region.
func (b *Buffer) Box() Box { return b.box }

// SetBox assigns the screen region the buffer renders into.
func (b *Buffer) SetBox(box Box) {
	if box != b.box {
		b.box = box
		b.dirty = true
	}
}

// Whole-content replacement

// SetLines replaces the entire content. The undo log is cleared: this
// is an intentional, documented loss of history.
func (b *Buffer) SetLines(lines []string) {
	if len(lines) == 0 {
		lines = []string{""}
	}
	b.lines = make([]string, len(lines))
	copy(b.lines, lines)
	b.cursor = Position{Line: 1, Col: 0}
	b.anchor = nil
	b.topLine = 1
	b.leftCol = 0
	b.log.Clear()
	b.dirty = true
	b.unsaved = false
}

// History queries

// CanUndo reports whether an undo step is available.
func (b *Buffer) CanUndo() bool { return b.log.CanUndo() }

// CanRedo reports whether a redo step is available.
func (b *Buffer) CanRedo() bool { return b.log.CanRedo() }
