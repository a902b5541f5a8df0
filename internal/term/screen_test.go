package term

import (
	"bytes"
	"strings"
	"testing"
)

func newTestScreen() (*Screen, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewScreen(&buf), &buf
}

func TestMoveTo(t *testing.T) {
	s, buf := newTestScreen()

	s.MoveTo(5, 12)
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}

	if got := buf.String(); got != "\x1b[5;12H" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestMoveToClampsToOne(t *testing.T) {
	s, buf := newTestScreen()

	s.MoveTo(0, -3)
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}

	if got := buf.String(); got != "\x1b[1;1H" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestRelativeMotion(t *testing.T) {
	s, buf := newTestScreen()

	s.MoveUp(2)
	s.MoveDown(1)
	s.MoveRight(4)
	s.MoveLeft(3)
	s.MoveUp(0) // no-op
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}

	want := "\x1b[2A\x1b[1B\x1b[4C\x1b[3D"
	if got := buf.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestClearAndStyle(t *testing.T) {
	s, buf := newTestScreen()

	s.Clear()
	s.SetStyle(Style{FG: 15, BG: 4, Reverse: true})
	s.ResetStyle()
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}

	want := "\x1b[2J\x1b[H" + "\x1b[0m\x1b[7m\x1b[38;5;15m\x1b[48;5;4m" + "\x1b[0m"
	if got := buf.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDefaultStyleEmitsOnlyReset(t *testing.T) {
	s, buf := newTestScreen()

	s.SetStyle(DefaultStyle)
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}

	if got := buf.String(); got != "\x1b[0m" {
		t.Errorf("expected bare reset, got %q", got)
	}
}

func TestCursorVisibility(t *testing.T) {
	s, buf := newTestScreen()

	s.HideCursor()
	s.ShowCursor()
	s.SaveCursor()
	s.RestoreCursor()
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}

	want := "\x1b[?25l\x1b[?25h\x1b7\x1b8"
	if got := buf.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestWriteTextTranscodesLatin1(t *testing.T) {
	s, buf := newTestScreen()

	// "café" with the é as the Latin-1 byte 0xE9.
	s.WriteText("caf\xe9")
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}

	if got := buf.String(); got != "café" {
		t.Errorf("expected UTF-8 café, got %q", got)
	}
}

func TestParseCursorReport(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		rows  int
		cols  int
		ok    bool
	}{
		{"valid", "\x1b[24;80R", 24, 80, true},
		{"large", "\x1b[120;312R", 120, 312, true},
		{"empty", "", 0, 0, false},
		{"no escape", "24;80R", 0, 0, false},
		{"no semicolon", "\x1b[2480R", 0, 0, false},
		{"bad digits", "\x1b[a;bR", 0, 0, false},
		{"zero size", "\x1b[0;80R", 0, 0, false},
		{"unterminated", "\x1b[24;80", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, cols, ok := parseCursorReport(strings.NewReader(tt.reply))
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if rows != tt.rows || cols != tt.cols {
				t.Errorf("got %dx%d, want %dx%d", rows, cols, tt.rows, tt.cols)
			}
		})
	}
}
