package keymap

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/inkwell/internal/input/key"
)

// Binding errors.
var (
	ErrEmptySequence = errors.New("empty key sequence")
	ErrPrefixLeaf    = errors.New("sequence passes through a bound action")
)

// Entry is a tagged binding variant: an Action leaf or a nested *Table.
type Entry interface {
	entry()
}

// Action is a leaf entry naming the command to run, e.g. "cursor.down".
type Action string

func (Action) entry() {}

// Table is a binding table. Binding a key to a nested table makes it a
// prefix key.
type Table struct {
	entries map[key.Key]Entry
}

func (*Table) entry() {}

// NewTable creates an empty binding table.
func NewTable() *Table {
	return &Table{entries: make(map[key.Key]Entry)}
}

// Lookup resolves a single key in this table.
func (t *Table) Lookup(k key.Key) (Entry, bool) {
	e, ok := t.entries[k]
	return e, ok
}

// Set binds a single key directly to an entry, replacing any previous
// binding for that key.
func (t *Table) Set(k key.Key, e Entry) {
	t.entries[k] = e
}

// Bind binds a key sequence to an action, creating nested tables for
// every prefix key. Rebinding through an existing leaf action fails
// rather than silently discarding it.
func (t *Table) Bind(keys []key.Key, action string) error {
	if len(keys) == 0 {
		return ErrEmptySequence
	}

	cur := t
	for _, k := range keys[:len(keys)-1] {
		next, ok := cur.entries[k]
		if !ok {
			sub := NewTable()
			cur.entries[k] = sub
			cur = sub
			continue
		}
		sub, ok := next.(*Table)
		if !ok {
			return fmt.Errorf("%w: %v", ErrPrefixLeaf, k)
		}
		cur = sub
	}

	cur.entries[keys[len(keys)-1]] = Action(action)
	return nil
}

// BindSpec binds a parsed key specification such as "C-x C-s".
func (t *Table) BindSpec(spec, action string) error {
	keys, err := key.ParseSequence(spec)
	if err != nil {
		return err
	}
	return t.Bind(keys, action)
}

// Unbind removes the binding for a key sequence. Removing a missing
// binding is not an error.
func (t *Table) Unbind(keys []key.Key) {
	if len(keys) == 0 {
		return
	}

	cur := t
	for _, k := range keys[:len(keys)-1] {
		next, ok := cur.entries[k]
		if !ok {
			return
		}
		sub, ok := next.(*Table)
		if !ok {
			return
		}
		cur = sub
	}
	delete(cur.entries, keys[len(keys)-1])
}

// UnbindSpec removes the binding for a key specification.
func (t *Table) UnbindSpec(spec string) error {
	keys, err := key.ParseSequence(spec)
	if err != nil {
		return err
	}
	t.Unbind(keys)
	return nil
}

// Len returns the number of direct entries in the table.
func (t *Table) Len() int { return len(t.entries) }

// Described is one binding flattened for display.
type Described struct {
	Keys   string
	Action string
}

// Describe flattens the table into sorted key/action pairs, descending
// into nested tables with space-separated key names.
func (t *Table) Describe() []Described {
	var out []Described
	t.describe("", &out)
	sort.Slice(out, func(i, j int) bool { return out[i].Action < out[j].Action })
	return out
}

func (t *Table) describe(prefix string, out *[]Described) {
	for k, e := range t.entries {
		name := k.String()
		if prefix != "" {
			name = prefix + " " + name
		}
		switch v := e.(type) {
		case Action:
			*out = append(*out, Described{Keys: name, Action: string(v)})
		case *Table:
			v.describe(name, out)
		}
	}
}

// Resolver performs the two-level lookup across a local and a global
// table. Either table may be nil.
type Resolver struct {
	Local  *Table
	Global *Table
}

// Resolve looks the key up in the local table first, then the global
// table.
func (r Resolver) Resolve(k key.Key) (Entry, bool) {
	if r.Local != nil {
		if e, ok := r.Local.Lookup(k); ok {
			return e, true
		}
	}
	if r.Global != nil {
		if e, ok := r.Global.Lookup(k); ok {
			return e, true
		}
	}
	return nil, false
}

// FormatSequence renders a key sequence the way Describe does.
func FormatSequence(keys []key.Key) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return strings.Join(names, " ")
}
