package dispatch

import (
	"errors"
	"fmt"
	"os"

	"github.com/dshills/inkwell/internal/engine/buffer"
	"github.com/dshills/inkwell/internal/file"
	"github.com/dshills/inkwell/internal/input/key"
	"github.com/dshills/inkwell/internal/input/keymap"
)

// fileActions cover file and buffer management plus the help buffer.
var fileActions = map[string]ActionFunc{
	"file.open":   fileOpen,
	"file.save":   fileSave,
	"file.saveAs": fileSaveAs,
	"buffer.new":  bufferNew,
	"buffer.next": bufferNext,
	"buffer.prev": bufferPrev,
	"help.show":   helpShow,
}

// newBuffer creates a buffer honoring the configured undo limit.
func newBuffer(ctx *Context, lines []string, name string) *buffer.Buffer {
	opts := []buffer.Option{buffer.WithUndoLimit(ctx.Config.UndoLimit)}
	if name != "" {
		opts = append(opts, buffer.WithFilename(name))
	}
	if lines == nil {
		return buffer.New(opts...)
	}
	return buffer.NewFromLines(lines, opts...)
}

func fileOpen(ctx *Context) error {
	path, err := ctx.ReadString("Find file: ")
	if err != nil {
		if errors.Is(err, ErrPromptAborted) {
			ctx.SetStatus("Quit")
			return nil
		}
		return err
	}
	if path == "" {
		ctx.SetStatus("No file name")
		return nil
	}

	if b, ok := ctx.Session.FindByName(path); ok {
		ctx.Session.Activate(b)
		return nil
	}

	lines, err := file.ReadLines(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		ctx.Session.Add(newBuffer(ctx, nil, path))
		ctx.SetStatus("(New file)")
	case err != nil:
		ctx.SetStatus("%v", err)
	default:
		ctx.Session.Add(newBuffer(ctx, lines, path))
	}
	return nil
}

func fileSave(ctx *Context) error {
	b := ctx.Session.Active()
	if b.Filename() == "" {
		return fileSaveAs(ctx)
	}
	return writeBuffer(ctx, b)
}

func fileSaveAs(ctx *Context) error {
	path, err := ctx.ReadString("Write file: ")
	if err != nil {
		if errors.Is(err, ErrPromptAborted) {
			ctx.SetStatus("Quit")
			return nil
		}
		return err
	}
	if path == "" {
		ctx.SetStatus("No file name")
		return nil
	}

	b := ctx.Session.Active()
	b.SetFilename(path)
	return writeBuffer(ctx, b)
}

func writeBuffer(ctx *Context, b *buffer.Buffer) error {
	if err := file.WriteLines(b.Filename(), b.Lines()); err != nil {
		ctx.SetStatus("%v", err)
		return nil
	}
	b.ClearUnsaved()
	b.MarkDirty()
	ctx.SetStatus("Wrote %s", b.Filename())
	return nil
}

func bufferNew(ctx *Context) error {
	ctx.Session.Add(newBuffer(ctx, nil, ""))
	return nil
}

func bufferNext(ctx *Context) error {
	ctx.Session.Next()
	return nil
}

func bufferPrev(ctx *Context) error {
	ctx.Session.Prev()
	return nil
}

// helpShow opens a read-only style help buffer listing the global
// bindings. q in the help buffer returns to the previous one.
func helpShow(ctx *Context) error {
	lines := []string{"Key bindings", ""}

	width := 0
	described := ctx.Global.Describe()
	for _, d := range described {
		if len(d.Keys) > width {
			width = len(d.Keys)
		}
	}
	for _, d := range described {
		lines = append(lines, fmt.Sprintf("%-*s  %s", width, d.Keys, d.Action))
	}
	lines = append(lines, "", "q to leave this buffer")

	help := newBuffer(ctx, lines, "")
	ctx.Session.Add(help)

	local := keymap.NewTable()
	local.Set(key.Key('q'), keymap.Action("buffer.prev"))
	ctx.SetLocal(help.ID(), local)
	return nil
}
