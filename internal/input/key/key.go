package key

import (
	"fmt"
	"strings"
)

// Key is a logical key code. Values 0-255 are literal Latin-1 bytes;
// symbolic keys start at symbolicBase.
type Key int

// Control bytes with dedicated meaning in the editor.
const (
	KeyCtrlSpace Key = 0x00
	KeyTab       Key = 0x09
	KeyEnter     Key = 0x0D
	KeyEscape    Key = 0x1B
	KeyBackspace Key = 0x7F
)

// symbolicBase is the first code above the literal byte range.
const symbolicBase Key = 0x100

// Symbolic keys for function and navigation keys.
const (
	KeyUnknown Key = symbolicBase + iota
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Ctrl returns the control-key code for a letter, so Ctrl('x') is the
// byte produced by pressing Ctrl-X.
func Ctrl(c byte) Key {
	return Key(c & 0x1F)
}

// IsByte reports whether k is a literal byte rather than a symbolic key.
func (k Key) IsByte() bool {
	return k >= 0 && k <= 0xFF
}

// IsPrintable reports whether k is a key the editor inserts literally
// when it has no binding: printable ASCII, printable Latin-1, or tab.
func (k Key) IsPrintable() bool {
	if k == KeyTab {
		return true
	}
	return (k >= 0x20 && k <= 0x7E) || (k >= 0xA0 && k <= 0xFF)
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyTab:
		return "Tab"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Esc"
	case KeyBackspace:
		return "Backspace"
	case KeyUnknown:
		return "Unknown"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyRight:
		return "Right"
	case KeyLeft:
		return "Left"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyInsert:
		return "Insert"
	case KeyDelete:
		return "Delete"
	case KeyPageUp:
		return "PgUp"
	case KeyPageDown:
		return "PgDn"
	}
	if k >= KeyF1 && k <= KeyF12 {
		return fmt.Sprintf("F%d", int(k-KeyF1)+1)
	}
	if k.IsByte() {
		b := byte(k)
		switch {
		case b < 0x20:
			return "C-" + string('a'+rune(b)-1)
		case b == 0x20:
			return "Space"
		case k.IsPrintable():
			return string(rune(b))
		}
		return fmt.Sprintf("\\x%02x", b)
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// keyNameMap maps lowercase key names to symbolic codes for binding
// specifications.
var keyNameMap = map[string]Key{
	"tab":       KeyTab,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"cr":        KeyEnter,
	"esc":       KeyEscape,
	"escape":    KeyEscape,
	"backspace": KeyBackspace,
	"bs":        KeyBackspace,
	"space":     Key(' '),
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"home":      KeyHome,
	"end":       KeyEnd,
	"insert":    KeyInsert,
	"ins":       KeyInsert,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"pageup":    KeyPageUp,
	"pgup":      KeyPageUp,
	"pagedown":  KeyPageDown,
	"pgdn":      KeyPageDown,
	"f1":        KeyF1,
	"f2":        KeyF2,
	"f3":        KeyF3,
	"f4":        KeyF4,
	"f5":        KeyF5,
	"f6":        KeyF6,
	"f7":        KeyF7,
	"f8":        KeyF8,
	"f9":        KeyF9,
	"f10":       KeyF10,
	"f11":       KeyF11,
	"f12":       KeyF12,
}

// Parse errors.
var (
	ErrEmptySpec   = fmt.Errorf("empty key specification")
	ErrInvalidSpec = fmt.Errorf("invalid key specification")
)

// Parse parses a single key specification into a Key.
//
// Supported formats:
//   - Single character: "a", "A", "/", "ä"  (Latin-1 only)
//   - Control keys: "C-x", "C-space"
//   - Named keys: "Up", "Enter", "F5", "Backspace"
func Parse(spec string) (Key, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return 0, ErrEmptySpec
	}

	if len(spec) > 2 && (strings.HasPrefix(spec, "C-") || strings.HasPrefix(spec, "c-")) {
		rest := spec[2:]
		if len(rest) == 1 {
			c := rest[0]
			if c >= 'A' && c <= 'Z' {
				c += 'a' - 'A'
			}
			if c < 'a' || c > 'z' {
				return 0, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
			}
			return Ctrl(c), nil
		}
		if strings.EqualFold(rest, "space") {
			return KeyCtrlSpace, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
	}

	if k, ok := keyNameMap[strings.ToLower(spec)]; ok {
		return k, nil
	}

	runes := []rune(spec)
	if len(runes) == 1 && runes[0] <= 0xFF {
		return Key(runes[0]), nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
}

// ParseSequence parses a whitespace-separated key sequence such as
// "C-x C-s" into its component keys.
func ParseSequence(spec string) ([]Key, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return nil, ErrEmptySpec
	}

	keys := make([]Key, 0, len(fields))
	for _, f := range fields {
		k, err := Parse(f)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Key {
	k, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return k
}
