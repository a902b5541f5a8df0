package term

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	xterm "golang.org/x/term"
	"golang.org/x/text/encoding/charmap"
)

// Style is the foreground, background, and attribute state for emitted
// text. Colors are 256-color palette indices; -1 means the terminal
// default.
type Style struct {
	FG      int
	BG      int
	Bold    bool
	Reverse bool
}

// DefaultStyle leaves everything at the terminal default.
var DefaultStyle = Style{FG: -1, BG: -1}

// Screen emits escape sequences to a terminal writer. Output is
// buffered; nothing reaches the terminal until Flush.
type Screen struct {
	w *bufio.Writer

	// latin1 maps the editor's internal Latin-1 bytes onto the UTF-8
	// stream modern terminals expect.
	latin1 *charmap.Charmap
}

// NewScreen creates a screen writing to w.
func NewScreen(w io.Writer) *Screen {
	return &Screen{
		w:      bufio.NewWriterSize(w, 16*1024),
		latin1: charmap.ISO8859_1,
	}
}

// Flush pushes all buffered output to the terminal.
func (s *Screen) Flush() error {
	return s.w.Flush()
}

// Clear erases the whole screen and homes the cursor.
func (s *Screen) Clear() {
	s.emit("\x1b[2J\x1b[H")
}

// ClearLine erases from the cursor to the end of the line.
func (s *Screen) ClearLine() {
	s.emit("\x1b[K")
}

// MoveTo places the cursor at 1-based row and column.
func (s *Screen) MoveTo(row, col int) {
	if row < 1 {
		row = 1
	}
	if col < 1 {
		col = 1
	}
	s.emit(fmt.Sprintf("\x1b[%d;%dH", row, col))
}

// MoveUp moves the cursor n rows up.
func (s *Screen) MoveUp(n int) { s.rel(n, 'A') }

// MoveDown moves the cursor n rows down.
func (s *Screen) MoveDown(n int) { s.rel(n, 'B') }

// MoveRight moves the cursor n columns right.
func (s *Screen) MoveRight(n int) { s.rel(n, 'C') }

// MoveLeft moves the cursor n columns left.
func (s *Screen) MoveLeft(n int) { s.rel(n, 'D') }

func (s *Screen) rel(n int, final byte) {
	if n <= 0 {
		return
	}
	s.emit(fmt.Sprintf("\x1b[%d%c", n, final))
}

// SetStyle emits the SGR sequence for a style, resetting first so
// styles never accumulate.
func (s *Screen) SetStyle(st Style) {
	s.emit("\x1b[0m")
	if st.Bold {
		s.emit("\x1b[1m")
	}
	if st.Reverse {
		s.emit("\x1b[7m")
	}
	if st.FG >= 0 {
		s.emit(fmt.Sprintf("\x1b[38;5;%dm", st.FG))
	}
	if st.BG >= 0 {
		s.emit(fmt.Sprintf("\x1b[48;5;%dm", st.BG))
	}
}

// ResetStyle reverts to the terminal default style.
func (s *Screen) ResetStyle() {
	s.emit("\x1b[0m")
}

// HideCursor makes the hardware cursor invisible during repaints.
func (s *Screen) HideCursor() { s.emit("\x1b[?25l") }

// ShowCursor makes the hardware cursor visible again.
func (s *Screen) ShowCursor() { s.emit("\x1b[?25h") }

// SaveCursor stores the cursor position on the terminal side.
func (s *Screen) SaveCursor() { s.emit("\x1b7") }

// RestoreCursor returns to the position stored by SaveCursor.
func (s *Screen) RestoreCursor() { s.emit("\x1b8") }

// WriteText writes Latin-1 text at the cursor, transcoding to UTF-8.
func (s *Screen) WriteText(text string) {
	for i := 0; i < len(text); i++ {
		b := text[i]
		if b < 0x80 {
			_ = s.w.WriteByte(b)
			continue
		}
		r := s.latin1.DecodeByte(b)
		_, _ = s.w.WriteRune(r)
	}
}

func (s *Screen) emit(seq string) {
	_, _ = s.w.WriteString(seq)
}

// Size reports the terminal dimensions. It asks the driver first and
// falls back to the cursor-position query; ok is false when neither
// source gives an answer.
func Size(out *os.File, in io.Reader) (rows, cols int, ok bool) {
	if w, h, err := xterm.GetSize(int(out.Fd())); err == nil && w > 0 && h > 0 {
		return h, w, true
	}
	return querySize(out, in)
}

// querySize moves the cursor to the far corner and asks the terminal
// where it ended up. The reply is a cursor position report:
// ESC [ rows ; cols R. A malformed or missing reply yields ok=false,
// never an error.
func querySize(out *os.File, in io.Reader) (rows, cols int, ok bool) {
	if _, err := out.WriteString("\x1b7\x1b[999;999H\x1b[6n\x1b8"); err != nil {
		return 0, 0, false
	}
	return parseCursorReport(in)
}

// parseCursorReport reads a bounded digit-terminated reply.
func parseCursorReport(in io.Reader) (rows, cols int, ok bool) {
	const maxReply = 32

	buf := make([]byte, 1)
	var reply []byte
	for len(reply) < maxReply {
		if _, err := in.Read(buf); err != nil {
			return 0, 0, false
		}
		reply = append(reply, buf[0])
		if buf[0] == 'R' {
			break
		}
	}

	if len(reply) < 6 || reply[0] != 0x1b || reply[1] != '[' || reply[len(reply)-1] != 'R' {
		return 0, 0, false
	}

	body := string(reply[2 : len(reply)-1])
	var semi int
	for i := 0; i < len(body); i++ {
		if body[i] == ';' {
			semi = i
			break
		}
	}
	if semi == 0 {
		return 0, 0, false
	}

	r, err := strconv.Atoi(body[:semi])
	if err != nil {
		return 0, 0, false
	}
	c, err := strconv.Atoi(body[semi+1:])
	if err != nil {
		return 0, 0, false
	}
	if r < 1 || c < 1 {
		return 0, 0, false
	}
	return r, c, true
}
