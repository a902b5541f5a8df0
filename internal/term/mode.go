package term

import (
	"errors"
	"os"

	xterm "golang.org/x/term"
)

// ErrNotTerminal is returned when the file is not attached to a
// terminal.
var ErrNotTerminal = errors.New("not a terminal")

// Mode is the saved terminal mode token. Restore puts the terminal
// back exactly as SaveMode found it.
type Mode struct {
	file     *os.File
	state    *xterm.State
	restored bool
}

// SaveMode captures the current terminal mode of f.
func SaveMode(f *os.File) (*Mode, error) {
	fd := int(f.Fd())
	if !xterm.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	state, err := xterm.GetState(fd)
	if err != nil {
		return nil, err
	}
	return &Mode{file: f, state: state}, nil
}

// SetRaw switches the terminal into raw mode: no echo, no line
// buffering, byte-at-a-time reads.
func (m *Mode) SetRaw() error {
	_, err := xterm.MakeRaw(int(m.file.Fd()))
	return err
}

// Restore reverts to the saved mode. Safe to call more than once; only
// the first call touches the terminal, so the panic boundary and the
// normal teardown path can both hold a deferred Restore.
func (m *Mode) Restore() error {
	if m.restored {
		return nil
	}
	m.restored = true
	return xterm.Restore(int(m.file.Fd()), m.state)
}
