package session

import (
	"github.com/google/uuid"

	"github.com/dshills/inkwell/internal/engine/buffer"
	"github.com/dshills/inkwell/internal/input/macro"
)

// Session is the state shared across buffers. Not safe for concurrent
// use; the editor loop is single-threaded.
type Session struct {
	buffers []*buffer.Buffer
	active  int

	// kill is the kill register in line form. lastKill marks that the
	// previous command was a kill, so consecutive kills coalesce.
	kill     []string
	lastKill bool

	pattern  string
	recorder *macro.Recorder
}

// New creates a session holding the given initial buffer.
func New(initial *buffer.Buffer) *Session {
	return &Session{
		buffers:  []*buffer.Buffer{initial},
		recorder: macro.NewRecorder(),
	}
}

// Buffers

// Active returns the current buffer. A session always has one.
func (s *Session) Active() *buffer.Buffer {
	return s.buffers[s.active]
}

// Add appends a buffer and makes it active.
func (s *Session) Add(b *buffer.Buffer) {
	s.buffers = append(s.buffers, b)
	s.active = len(s.buffers) - 1
	b.MarkDirty()
}

// Next activates the next buffer, wrapping around.
func (s *Session) Next() *buffer.Buffer {
	s.active = (s.active + 1) % len(s.buffers)
	b := s.Active()
	b.MarkDirty()
	return b
}

// Prev activates the previous buffer, wrapping around.
func (s *Session) Prev() *buffer.Buffer {
	s.active = (s.active - 1 + len(s.buffers)) % len(s.buffers)
	b := s.Active()
	b.MarkDirty()
	return b
}

// Count returns the number of open buffers.
func (s *Session) Count() int { return len(s.buffers) }

// Find returns the buffer with the given identity.
func (s *Session) Find(id uuid.UUID) (*buffer.Buffer, bool) {
	for _, b := range s.buffers {
		if b.ID() == id {
			return b, true
		}
	}
	return nil, false
}

// FindByName returns the open buffer for a file path.
func (s *Session) FindByName(name string) (*buffer.Buffer, bool) {
	if name == "" {
		return nil, false
	}
	for _, b := range s.buffers {
		if b.Filename() == name {
			return b, true
		}
	}
	return nil, false
}

// Activate makes an already-open buffer current.
func (s *Session) Activate(b *buffer.Buffer) {
	for i, cand := range s.buffers {
		if cand == b {
			s.active = i
			b.MarkDirty()
			return
		}
	}
}

// Unsaved returns the buffers with content newer than their file.
func (s *Session) Unsaved() []*buffer.Buffer {
	var out []*buffer.Buffer
	for _, b := range s.buffers {
		if b.Unsaved() {
			out = append(out, b)
		}
	}
	return out
}

// Kill register

// Kill replaces or extends the kill register. A kill directly after
// another kill coalesces: the first new line joins the register's last
// line, remaining lines append.
func (s *Session) Kill(lines []string) {
	if len(lines) == 0 {
		return
	}
	if s.lastKill && len(s.kill) > 0 {
		s.kill[len(s.kill)-1] += lines[0]
		s.kill = append(s.kill, lines[1:]...)
	} else {
		s.kill = make([]string, len(lines))
		copy(s.kill, lines)
	}
	s.lastKill = true
}

// Register returns the kill register content, nil when empty.
func (s *Session) Register() []string {
	if len(s.kill) == 0 {
		return nil
	}
	out := make([]string, len(s.kill))
	copy(out, s.kill)
	return out
}

// BreakKillRun is called after every non-kill command so the next kill
// starts a fresh register.
func (s *Session) BreakKillRun() { s.lastKill = false }

// Search state

// Pattern returns the remembered search pattern.
func (s *Session) Pattern() string { return s.pattern }

// SetPattern remembers a search pattern for repeat searches.
func (s *Session) SetPattern(p string) {
	if p != "" {
		s.pattern = p
	}
}

// Macro

// Recorder returns the session's macro recorder.
func (s *Session) Recorder() *macro.Recorder { return s.recorder }
