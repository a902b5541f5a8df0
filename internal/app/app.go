package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/dshills/inkwell/internal/config"
	"github.com/dshills/inkwell/internal/dispatch"
	"github.com/dshills/inkwell/internal/engine/buffer"
	"github.com/dshills/inkwell/internal/file"
	"github.com/dshills/inkwell/internal/input/key"
	"github.com/dshills/inkwell/internal/input/keymap"
	"github.com/dshills/inkwell/internal/render"
	"github.com/dshills/inkwell/internal/render/style"
	"github.com/dshills/inkwell/internal/session"
	"github.com/dshills/inkwell/internal/term"
)

// ErrQuit is the sentinel that unwinds the main loop on a confirmed
// quit.
var ErrQuit = errors.New("quit")

// Fallback geometry when the terminal size cannot be determined.
const (
	fallbackRows = 24
	fallbackCols = 80
)

// Options configures the editor.
type Options struct {
	Config   config.Config
	Filename string // optional file to open at startup

	// Input and Output default to stdin and stdout.
	Input  io.Reader
	Output *os.File

	Logger *Logger
}

// App is the assembled editor.
type App struct {
	cfg    config.Config
	log    *Logger
	in     io.Reader
	out    *os.File
	screen *term.Screen
	engine *render.Engine
	disp   *dispatch.Dispatcher
	ctx    *dispatch.Context
	global *keymap.Table
}

// New assembles the editor: configuration, init script, theme, and the
// initial buffer. The terminal is not touched yet.
func New(opts Options) (*App, error) {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		var err error
		if log, err = NewLogger(cfg.LogFile, LogLevelInfo); err != nil {
			return nil, err
		}
	}

	global := keymap.DefaultGlobal()
	if script := config.FindInitScript(); script != "" {
		log.Info("running init script %s", script)
		err := config.RunInitScript(script, config.InitHooks{
			Bind:   global.BindSpec,
			Unbind: global.UnbindSpec,
			Set:    cfg.Set,
		})
		if err != nil {
			return nil, err
		}
	}

	theme, err := style.FromColors(style.Colors{
		Foreground:  cfg.Colors.Foreground,
		Background:  cfg.Colors.Background,
		SelectionFg: cfg.Colors.SelectionFg,
		SelectionBg: cfg.Colors.SelectionBg,
	})
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}

	initial, err := initialBuffer(cfg, opts.Filename)
	if err != nil {
		return nil, err
	}

	screen := term.NewScreen(opts.Output)
	engine := render.New(screen, theme, cfg.TabWidth, cfg.ScrollStride)

	a := &App{
		cfg:    cfg,
		log:    log,
		in:     opts.Input,
		out:    opts.Output,
		screen: screen,
		engine: engine,
		disp:   dispatch.New(),
		global: global,
	}
	a.ctx = &dispatch.Context{
		Session: session.New(initial),
		Config:  &a.cfg,
		Keys:    key.NewDecoder(opts.Input),
		Screen:  screen,
		Render:  engine,
		Global:  global,
	}
	return a, nil
}

// initialBuffer opens the startup file, or an empty buffer. A missing
// file is a new file, not an error.
func initialBuffer(cfg config.Config, name string) (*buffer.Buffer, error) {
	opts := []buffer.Option{buffer.WithUndoLimit(cfg.UndoLimit)}
	if name == "" {
		return buffer.New(opts...), nil
	}

	opts = append(opts, buffer.WithFilename(name))
	lines, err := file.ReadLines(name)
	if errors.Is(err, os.ErrNotExist) {
		return buffer.New(opts...), nil
	}
	if err != nil {
		return nil, err
	}
	return buffer.NewFromLines(lines, opts...), nil
}

// Run acquires the terminal and runs the main loop until quit. The
// terminal mode is restored before Run returns, on every path; a
// panic is re-reported as an error only after the restore.
func (a *App) Run() (err error) {
	mode, err := term.SaveMode(a.out)
	if err != nil {
		return err
	}
	if err := mode.SetRaw(); err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			// Restore first: the diagnostic is unreadable on a raw
			// screen.
			_ = mode.Restore()
			a.log.Error("panic: %v", r)
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
			return
		}
		restoreErr := mode.Restore()
		if err == nil {
			err = restoreErr
		}
	}()
	defer a.teardownScreen()

	a.log.Info("editor started")
	if err := a.loop(); err != nil && !errors.Is(err, ErrQuit) {
		return err
	}
	a.log.Info("editor stopped")
	return nil
}

// loop is read-key, dispatch, redisplay until ErrQuit.
func (a *App) loop() error {
	rows, cols, ok := term.Size(a.out, a.in)
	if !ok {
		rows, cols = fallbackRows, fallbackCols
	}
	a.ctx.StatusRow = rows
	a.ctx.Cols = cols
	box := buffer.Box{Top: 1, Left: 1, Height: rows - 1, Width: cols}

	a.screen.Clear()
	for {
		buf := a.ctx.Session.Active()
		buf.SetBox(box)

		a.engine.DrawStatus(rows, cols, a.statusLeft(buf), a.ctx.TakeMessage())
		if err := a.engine.Render(buf); err != nil {
			return err
		}

		k, err := a.ctx.Keys.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return ErrQuit
			}
			return err
		}

		if err := a.disp.Dispatch(a.ctx, k); err != nil {
			return err
		}
		if a.ctx.QuitRequested() {
			return ErrQuit
		}
	}
}

// statusLeft is the status line's left side, with the recording
// indicator.
func (a *App) statusLeft(buf *buffer.Buffer) string {
	left := render.StatusText(buf)
	if a.ctx.Session.Recorder().Recording() {
		left += "  REC"
	}
	return left
}

// teardownScreen leaves the terminal usable for the shell.
func (a *App) teardownScreen() {
	a.screen.ResetStyle()
	a.screen.Clear()
	a.screen.ShowCursor()
	_ = a.screen.Flush()
}
