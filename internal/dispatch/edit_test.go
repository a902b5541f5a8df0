package dispatch

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dshills/inkwell/internal/engine/buffer"
)

func run(t *testing.T, d *Dispatcher, ctx *Context, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := d.Run(ctx, name); err != nil {
			t.Fatalf("%s failed: %v", name, err)
		}
	}
}

func TestCursorMotion(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		start   buffer.Position
		actions []string
		want    buffer.Position
	}{
		{"right", []string{"abc"}, buffer.Position{Line: 1, Col: 0},
			[]string{"cursor.right"}, buffer.Position{Line: 1, Col: 1}},
		{"right wraps", []string{"ab", "cd"}, buffer.Position{Line: 1, Col: 2},
			[]string{"cursor.right"}, buffer.Position{Line: 2, Col: 0}},
		{"left wraps", []string{"ab", "cd"}, buffer.Position{Line: 2, Col: 0},
			[]string{"cursor.left"}, buffer.Position{Line: 1, Col: 2}},
		{"down clamps col", []string{"abcdef", "x"}, buffer.Position{Line: 1, Col: 5},
			[]string{"cursor.down"}, buffer.Position{Line: 2, Col: 1}},
		{"line ends", []string{"abc"}, buffer.Position{Line: 1, Col: 1},
			[]string{"cursor.lineEnd"}, buffer.Position{Line: 1, Col: 3}},
		{"line start", []string{"abc"}, buffer.Position{Line: 1, Col: 2},
			[]string{"cursor.lineStart"}, buffer.Position{Line: 1, Col: 0}},
		{"buffer ends", []string{"ab", "cde"}, buffer.Position{Line: 1, Col: 0},
			[]string{"cursor.bufferEnd"}, buffer.Position{Line: 2, Col: 3}},
		{"buffer start", []string{"ab", "cde"}, buffer.Position{Line: 2, Col: 2},
			[]string{"cursor.bufferStart"}, buffer.Position{Line: 1, Col: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := newTestContext(tt.lines)
			d := New()
			ctx.Session.Active().SetCursor(tt.start)
			run(t, d, ctx, tt.actions...)
			if got := ctx.Session.Active().Cursor(); got != tt.want {
				t.Errorf("cursor %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCursorAtBoundaries(t *testing.T) {
	ctx, _ := newTestContext([]string{"a"})
	d := New()

	run(t, d, ctx, "cursor.left")
	if msg := ctx.TakeMessage(); msg == "" {
		t.Error("left at buffer start should post a message")
	}

	ctx.Session.Active().SetCursor(buffer.Position{Line: 1, Col: 1})
	run(t, d, ctx, "cursor.right")
	if msg := ctx.TakeMessage(); msg == "" {
		t.Error("right at buffer end should post a message")
	}
}

func TestPageMotion(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "line"
	}
	ctx, _ := newTestContext(lines)
	d := New()
	// Box height is 10, so a page is 9 lines.
	run(t, d, ctx, "cursor.pageDown")
	if got := ctx.Session.Active().Cursor().Line; got != 10 {
		t.Errorf("page down landed on line %d", got)
	}
	run(t, d, ctx, "cursor.pageUp")
	if got := ctx.Session.Active().Cursor().Line; got != 1 {
		t.Errorf("page up landed on line %d", got)
	}
}

func TestGotoLine(t *testing.T) {
	ctx, q := newTestContext([]string{"a", "b", "c", "d"})
	d := New()

	q.pushText("3\r")
	run(t, d, ctx, "cursor.gotoLine")
	if got := ctx.Session.Active().Cursor(); got != (buffer.Position{Line: 3, Col: 0}) {
		t.Errorf("goto landed at %+v", got)
	}

	// Out-of-range is reported and the cursor stays put.
	ctx.TakeMessage()
	q.pushText("99\r")
	run(t, d, ctx, "cursor.gotoLine")
	if got := ctx.Session.Active().Cursor().Line; got != 3 {
		t.Errorf("out-of-range goto landed on line %d", got)
	}
	if msg := ctx.TakeMessage(); !strings.Contains(msg, "out of range") {
		t.Errorf("expected an out-of-range message, got %q", msg)
	}

	q.pushText("abc\r")
	run(t, d, ctx, "cursor.gotoLine")
	if msg := ctx.TakeMessage(); msg == "" {
		t.Error("non-numeric input should post a message")
	}
}

func TestDeleteChar(t *testing.T) {
	ctx, _ := newTestContext([]string{"ab", "cd"})
	d := New()

	run(t, d, ctx, "edit.deleteChar")
	if got := ctx.Session.Active().Line(1); got != "b" {
		t.Errorf("delete char: %q", got)
	}

	// At end of line the line break is deleted.
	ctx.Session.Active().SetCursor(buffer.Position{Line: 1, Col: 1})
	run(t, d, ctx, "edit.deleteChar")
	if got := ctx.Session.Active().Lines(); !reflect.DeepEqual(got, []string{"bcd"}) {
		t.Errorf("delete at EOL: %q", got)
	}
}

func TestBackspace(t *testing.T) {
	ctx, _ := newTestContext([]string{"ab", "cd"})
	b := ctx.Session.Active()
	d := New()

	b.SetCursor(buffer.Position{Line: 2, Col: 1})
	run(t, d, ctx, "edit.backspace")
	if got := b.Lines(); !reflect.DeepEqual(got, []string{"ab", "d"}) {
		t.Errorf("backspace: %q", got)
	}

	// At line start the line break is removed.
	b.SetCursor(buffer.Position{Line: 2, Col: 0})
	run(t, d, ctx, "edit.backspace")
	if got := b.Lines(); !reflect.DeepEqual(got, []string{"abd"}) {
		t.Errorf("backspace at line start: %q", got)
	}
	if got := b.Cursor(); got != (buffer.Position{Line: 1, Col: 2}) {
		t.Errorf("cursor after join: %+v", got)
	}

	b.SetCursor(buffer.Position{Line: 1, Col: 0})
	run(t, d, ctx, "edit.backspace")
	if msg := ctx.TakeMessage(); msg == "" {
		t.Error("backspace at buffer start should post a message")
	}
}

func TestKillLineAndYank(t *testing.T) {
	ctx, _ := newTestContext([]string{"abc", "def"})
	d := New()

	// First kill takes the text, the second (at EOL) the line break,
	// the third the next line: one coalesced register.
	run(t, d, ctx, "edit.killLine", "edit.killLine", "edit.killLine")
	if got := ctx.Session.Active().Lines(); !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("buffer after kills: %q", got)
	}
	if got := ctx.Session.Register(); !reflect.DeepEqual(got, []string{"abc", "def"}) {
		t.Fatalf("register: %q", got)
	}

	run(t, d, ctx, "edit.yank")
	if got := ctx.Session.Active().Lines(); !reflect.DeepEqual(got, []string{"abc", "def"}) {
		t.Errorf("yank result: %q", got)
	}
}

func TestKillRunBrokenByMotion(t *testing.T) {
	ctx, _ := newTestContext([]string{"abc", "def"})
	d := New()

	run(t, d, ctx, "edit.killLine") // register: ["abc"]
	run(t, d, ctx, "cursor.down", "cursor.lineStart")
	run(t, d, ctx, "edit.killLine")
	if got := ctx.Session.Register(); !reflect.DeepEqual(got, []string{"def"}) {
		t.Errorf("motion should break the kill run, register %q", got)
	}
}

func TestYankEmptyRegister(t *testing.T) {
	ctx, _ := newTestContext([]string{""})
	d := New()
	run(t, d, ctx, "edit.yank")
	if msg := ctx.TakeMessage(); msg == "" {
		t.Error("empty register should post a message")
	}
}

func TestRegionKillAndCopy(t *testing.T) {
	ctx, _ := newTestContext([]string{"abcdef"})
	b := ctx.Session.Active()
	d := New()

	b.SetCursor(buffer.Position{Line: 1, Col: 1})
	run(t, d, ctx, "mark.set")
	b.SetCursor(buffer.Position{Line: 1, Col: 4})

	run(t, d, ctx, "edit.copyRegion")
	if got := ctx.Session.Register(); !reflect.DeepEqual(got, []string{"bcd"}) {
		t.Fatalf("copied region: %q", got)
	}
	if b.Line(1) != "abcdef" {
		t.Error("copy must not edit the buffer")
	}
	if _, _, ok := b.SelectionBounds(); ok {
		t.Error("copy should clear the mark")
	}

	// Kill with the cursor before the mark: bounds are ordered.
	ctx.Session.BreakKillRun()
	b.SetCursor(buffer.Position{Line: 1, Col: 4})
	run(t, d, ctx, "mark.set")
	b.SetCursor(buffer.Position{Line: 1, Col: 1})
	run(t, d, ctx, "edit.killRegion")

	if got := b.Line(1); got != "aef" {
		t.Errorf("killed buffer: %q", got)
	}
	if got := ctx.Session.Register(); !reflect.DeepEqual(got, []string{"bcd"}) {
		t.Errorf("killed region: %q", got)
	}
}

func TestRegionWithoutMark(t *testing.T) {
	ctx, _ := newTestContext([]string{"abc"})
	d := New()
	run(t, d, ctx, "edit.killRegion")
	if msg := ctx.TakeMessage(); msg == "" {
		t.Error("region kill without a mark should post a message")
	}
}

func TestUndoRedoActions(t *testing.T) {
	ctx, _ := newTestContext([]string{"abc"})
	b := ctx.Session.Active()
	d := New()

	b.Insert([]string{"xx"})
	run(t, d, ctx, "edit.undo")
	if b.Line(1) != "abc" {
		t.Errorf("undo: %q", b.Line(1))
	}
	run(t, d, ctx, "edit.redo")
	if b.Line(1) != "xxabc" {
		t.Errorf("redo: %q", b.Line(1))
	}

	run(t, d, ctx, "edit.redo")
	if msg := ctx.TakeMessage(); msg == "" {
		t.Error("exhausted redo should post a message")
	}
}
