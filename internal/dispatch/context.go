package dispatch

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/inkwell/internal/config"
	"github.com/dshills/inkwell/internal/input/key"
	"github.com/dshills/inkwell/internal/input/keymap"
	"github.com/dshills/inkwell/internal/render"
	"github.com/dshills/inkwell/internal/session"
	"github.com/dshills/inkwell/internal/term"
)

// KeySource supplies decoded keys. The decoder implements it; prompts
// and macro playback read from it too.
type KeySource interface {
	Next() (key.Key, error)
}

// Context carries the editor state commands operate on. One Context
// lives for the whole session.
type Context struct {
	Session *session.Session
	Config  *config.Config
	Keys    KeySource
	Screen  *term.Screen
	Render  *render.Engine
	Global  *keymap.Table

	// StatusRow and Cols describe the status line geometry.
	StatusRow int
	Cols      int

	locals  map[uuid.UUID]*keymap.Table
	message string
	quit    bool
}

// SetStatus posts a transient status message, replacing any pending
// one.
func (c *Context) SetStatus(format string, args ...any) {
	c.message = fmt.Sprintf(format, args...)
}

// TakeMessage returns and clears the pending status message.
func (c *Context) TakeMessage() string {
	m := c.message
	c.message = ""
	return m
}

// RequestQuit asks the main loop to unwind after this command.
func (c *Context) RequestQuit() { c.quit = true }

// QuitRequested reports whether a quit is pending.
func (c *Context) QuitRequested() bool { return c.quit }

// Local returns the active buffer's local binding table, nil when it
// has none.
func (c *Context) Local() *keymap.Table {
	if c.locals == nil {
		return nil
	}
	return c.locals[c.Session.Active().ID()]
}

// SetLocal attaches a local binding table to a buffer.
func (c *Context) SetLocal(id uuid.UUID, t *keymap.Table) {
	if c.locals == nil {
		c.locals = make(map[uuid.UUID]*keymap.Table)
	}
	c.locals[id] = t
}
