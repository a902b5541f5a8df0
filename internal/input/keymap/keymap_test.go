package keymap

import (
	"errors"
	"testing"

	"github.com/dshills/inkwell/internal/input/key"
)

func TestBindAndLookupLeaf(t *testing.T) {
	tbl := NewTable()
	if err := tbl.BindSpec("C-s", "search.forward"); err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	e, ok := tbl.Lookup(key.Ctrl('s'))
	if !ok {
		t.Fatal("expected a binding")
	}
	a, ok := e.(Action)
	if !ok {
		t.Fatalf("expected a leaf action, got %T", e)
	}
	if a != "search.forward" {
		t.Errorf("expected search.forward, got %q", a)
	}
}

func TestBindPrefixSequence(t *testing.T) {
	tbl := NewTable()
	if err := tbl.BindSpec("C-x C-s", "file.save"); err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	if err := tbl.BindSpec("C-x C-c", "app.quit"); err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	e, ok := tbl.Lookup(key.Ctrl('x'))
	if !ok {
		t.Fatal("expected a prefix entry")
	}
	sub, ok := e.(*Table)
	if !ok {
		t.Fatalf("expected a nested table, got %T", e)
	}
	if sub.Len() != 2 {
		t.Errorf("expected 2 nested entries, got %d", sub.Len())
	}

	e, ok = sub.Lookup(key.Ctrl('s'))
	if !ok {
		t.Fatal("expected nested binding")
	}
	if a := e.(Action); a != "file.save" {
		t.Errorf("expected file.save, got %q", a)
	}
}

func TestBindThroughLeafRejected(t *testing.T) {
	tbl := NewTable()
	if err := tbl.BindSpec("C-x", "some.action"); err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	err := tbl.BindSpec("C-x C-s", "file.save")
	if !errors.Is(err, ErrPrefixLeaf) {
		t.Errorf("expected ErrPrefixLeaf, got %v", err)
	}
}

func TestBindEmptySequence(t *testing.T) {
	tbl := NewTable()
	if err := tbl.Bind(nil, "x"); !errors.Is(err, ErrEmptySequence) {
		t.Errorf("expected ErrEmptySequence, got %v", err)
	}
}

func TestRebindReplacesLeaf(t *testing.T) {
	tbl := NewTable()
	if err := tbl.BindSpec("a", "one"); err != nil {
		t.Fatal(err)
	}
	if err := tbl.BindSpec("a", "two"); err != nil {
		t.Fatal(err)
	}

	e, _ := tbl.Lookup('a')
	if a := e.(Action); a != "two" {
		t.Errorf("expected two, got %q", a)
	}
}

func TestUnbind(t *testing.T) {
	tbl := NewTable()
	if err := tbl.BindSpec("C-x C-s", "file.save"); err != nil {
		t.Fatal(err)
	}

	if err := tbl.UnbindSpec("C-x C-s"); err != nil {
		t.Fatal(err)
	}

	e, ok := tbl.Lookup(key.Ctrl('x'))
	if !ok {
		t.Fatal("prefix table should remain")
	}
	sub := e.(*Table)
	if _, ok := sub.Lookup(key.Ctrl('s')); ok {
		t.Error("binding should be removed")
	}

	// Unbinding a missing sequence is not an error.
	if err := tbl.UnbindSpec("C-x C-q"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestResolverLocalWinsOverGlobal(t *testing.T) {
	global := NewTable()
	local := NewTable()
	if err := global.BindSpec("q", "global.action"); err != nil {
		t.Fatal(err)
	}
	if err := global.BindSpec("w", "global.other"); err != nil {
		t.Fatal(err)
	}
	if err := local.BindSpec("q", "local.action"); err != nil {
		t.Fatal(err)
	}

	r := Resolver{Local: local, Global: global}

	e, ok := r.Resolve('q')
	if !ok || e.(Action) != "local.action" {
		t.Errorf("expected local.action, got %v", e)
	}

	e, ok = r.Resolve('w')
	if !ok || e.(Action) != "global.other" {
		t.Errorf("expected fall-through to global, got %v", e)
	}

	if _, ok := r.Resolve('z'); ok {
		t.Error("unbound key should not resolve")
	}
}

func TestResolverNilTables(t *testing.T) {
	r := Resolver{}
	if _, ok := r.Resolve('a'); ok {
		t.Error("empty resolver should resolve nothing")
	}
}

func TestDefaultGlobal(t *testing.T) {
	tbl := DefaultGlobal()

	// Spot-check a leaf.
	e, ok := tbl.Lookup(key.KeyUp)
	if !ok || e.(Action) != "cursor.up" {
		t.Errorf("expected cursor.up on Up, got %v", e)
	}

	// Spot-check the two prefix tables.
	for _, k := range []key.Key{key.Ctrl('x'), key.KeyEscape} {
		e, ok := tbl.Lookup(k)
		if !ok {
			t.Fatalf("expected prefix entry for %v", k)
		}
		if _, ok := e.(*Table); !ok {
			t.Errorf("expected %v to be a prefix key, got %T", k, e)
		}
	}

	// The nested save binding.
	sub := mustTable(t, tbl, key.Ctrl('x'))
	e, ok = sub.Lookup(key.Ctrl('s'))
	if !ok || e.(Action) != "file.save" {
		t.Errorf("expected file.save on C-x C-s, got %v", e)
	}
}

func mustTable(t *testing.T, tbl *Table, k key.Key) *Table {
	t.Helper()
	e, ok := tbl.Lookup(k)
	if !ok {
		t.Fatalf("no entry for %v", k)
	}
	sub, ok := e.(*Table)
	if !ok {
		t.Fatalf("entry for %v is not a table", k)
	}
	return sub
}

func TestDescribe(t *testing.T) {
	tbl := NewTable()
	if err := tbl.BindSpec("C-s", "search.forward"); err != nil {
		t.Fatal(err)
	}
	if err := tbl.BindSpec("C-x C-s", "file.save"); err != nil {
		t.Fatal(err)
	}

	desc := tbl.Describe()
	if len(desc) != 2 {
		t.Fatalf("expected 2 descriptions, got %d", len(desc))
	}
	// Sorted by action name.
	if desc[0].Action != "file.save" || desc[0].Keys != "C-x C-s" {
		t.Errorf("unexpected first description: %+v", desc[0])
	}
	if desc[1].Action != "search.forward" || desc[1].Keys != "C-s" {
		t.Errorf("unexpected second description: %+v", desc[1])
	}
}
