package keymap

import (
	"github.com/dshills/inkwell/internal/input/key"
)

// defaultBinding pairs a key specification with an action name.
type defaultBinding struct {
	keys   string
	action string
}

// defaultBindings is the stock global keymap. C-x and Esc are prefix
// keys; everything else is a single-key binding.
var defaultBindings = []defaultBinding{
	// Cursor motion
	{"C-f", "cursor.right"},
	{"C-b", "cursor.left"},
	{"C-n", "cursor.down"},
	{"C-p", "cursor.up"},
	{"Right", "cursor.right"},
	{"Left", "cursor.left"},
	{"Down", "cursor.down"},
	{"Up", "cursor.up"},
	{"C-a", "cursor.lineStart"},
	{"C-e", "cursor.lineEnd"},
	{"Home", "cursor.lineStart"},
	{"End", "cursor.lineEnd"},
	{"C-v", "cursor.pageDown"},
	{"PgDn", "cursor.pageDown"},
	{"PgUp", "cursor.pageUp"},

	// Editing
	{"Enter", "edit.newline"},
	{"Backspace", "edit.backspace"},
	{"C-h", "edit.backspace"},
	{"Delete", "edit.deleteChar"},
	{"C-d", "edit.deleteChar"},
	{"C-k", "edit.killLine"},
	{"C-y", "edit.yank"},
	{"C-w", "edit.killRegion"},
	{"C-space", "mark.set"},
	{"C-g", "app.abort"},
	{"C-l", "view.redraw"},

	// Search
	{"C-s", "search.forward"},
	{"C-r", "search.backward"},

	// Help
	{"F1", "help.show"},

	// C-x prefix
	{"C-x C-s", "file.save"},
	{"C-x C-w", "file.saveAs"},
	{"C-x C-f", "file.open"},
	{"C-x C-c", "app.quit"},
	{"C-x b", "buffer.new"},
	{"C-x n", "buffer.next"},
	{"C-x p", "buffer.prev"},
	{"C-x u", "edit.undo"},
	{"C-x r", "edit.redo"},
	{"C-x h", "help.show"},
	{"C-x (", "macro.record"},
	{"C-x )", "macro.stop"},
	{"C-x e", "macro.play"},
	{"C-x s", "macro.save"},
	{"C-x l", "macro.load"},

	// Esc prefix (Meta)
	{"Esc v", "cursor.pageUp"},
	{"Esc <", "cursor.bufferStart"},
	{"Esc >", "cursor.bufferEnd"},
	{"Esc g", "cursor.gotoLine"},
	{"Esc w", "edit.copyRegion"},
	{"Esc %", "search.replace"},
	{"Esc n", "buffer.next"},
	{"Esc p", "buffer.prev"},
}

// DefaultGlobal builds the stock global binding table.
func DefaultGlobal() *Table {
	t := NewTable()
	for _, b := range defaultBindings {
		// Stock specs are static; a bad one is a programming fault.
		if err := t.BindSpec(b.keys, b.action); err != nil {
			panic("default binding " + b.keys + ": " + err.Error())
		}
	}

	// C-_ undo, bound directly: 0x1F has no printable spec form.
	t.Set(key.Key(0x1F), Action("edit.undo"))

	return t
}
