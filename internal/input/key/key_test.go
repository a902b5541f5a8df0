package key

import (
	"errors"
	"testing"
)

func TestSymbolicKeysAboveByteRange(t *testing.T) {
	symbolic := []Key{
		KeyUnknown, KeyUp, KeyDown, KeyRight, KeyLeft, KeyHome, KeyEnd,
		KeyInsert, KeyDelete, KeyPageUp, KeyPageDown, KeyF1, KeyF12,
	}
	for _, k := range symbolic {
		if k <= 0xFF {
			t.Errorf("%v collides with the literal byte range", k)
		}
		if k.IsByte() {
			t.Errorf("%v reported as a literal byte", k)
		}
	}
}

func TestCtrl(t *testing.T) {
	if Ctrl('x') != 0x18 {
		t.Errorf("expected 0x18, got %#x", int(Ctrl('x')))
	}
	if Ctrl('a') != 0x01 {
		t.Errorf("expected 0x01, got %#x", int(Ctrl('a')))
	}
}

func TestIsPrintable(t *testing.T) {
	tests := []struct {
		k    Key
		want bool
	}{
		{'a', true},
		{' ', true},
		{'~', true},
		{KeyTab, true},
		{0xA0, true},
		{0xFF, true},
		{Ctrl('c'), false},
		{0x7F, false},
		{0x9F, false},
		{KeyUp, false},
		{KeyUnknown, false},
	}
	for _, tt := range tests {
		if got := tt.k.IsPrintable(); got != tt.want {
			t.Errorf("IsPrintable(%v) = %v, want %v", tt.k, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Key
	}{
		{"a", 'a'},
		{"A", 'A'},
		{"/", '/'},
		{"C-x", Ctrl('x')},
		{"C-X", Ctrl('x')},
		{"C-space", KeyCtrlSpace},
		{"Up", KeyUp},
		{"enter", KeyEnter},
		{"F5", KeyF5},
		{"Backspace", KeyBackspace},
		{"space", ' '},
		{"ä", 0xE4},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, spec := range []string{"", "C-", "C-1", "nosuchkey", "日"} {
		if _, err := Parse(spec); err == nil {
			t.Errorf("Parse(%q) should fail", spec)
		}
	}

	if _, err := Parse(""); !errors.Is(err, ErrEmptySpec) {
		t.Errorf("expected ErrEmptySpec, got %v", err)
	}
	if _, err := Parse("C-1"); !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("expected ErrInvalidSpec, got %v", err)
	}
}

func TestParseSequence(t *testing.T) {
	keys, err := ParseSequence("C-x C-s")
	if err != nil {
		t.Fatalf("ParseSequence failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != Ctrl('x') || keys[1] != Ctrl('s') {
		t.Errorf("unexpected sequence: %v", keys)
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		k    Key
		want string
	}{
		{'a', "a"},
		{Ctrl('x'), "C-x"},
		{' ', "Space"},
		{KeyUp, "Up"},
		{KeyF7, "F7"},
		{KeyEnter, "Enter"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", int(tt.k), got, tt.want)
		}
	}
}
