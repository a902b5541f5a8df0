package dispatch

import (
	"github.com/dshills/inkwell/internal/input/key"
	"github.com/dshills/inkwell/internal/input/keymap"
	"github.com/dshills/inkwell/internal/input/macro"
)

// ActionFunc executes one named command. User-level problems go to the
// status line; a returned error is a fault that unwinds the loop.
type ActionFunc func(*Context) error

// macroControl actions steer the recorder and are never recorded
// themselves.
var macroControl = map[string]bool{
	"macro.record": true,
	"macro.stop":   true,
	"macro.play":   true,
	"macro.save":   true,
	"macro.load":   true,
}

// killActions keep a kill run alive for register coalescing.
var killActions = map[string]bool{
	"edit.killLine":   true,
	"edit.killRegion": true,
}

// Dispatcher holds the action registry.
type Dispatcher struct {
	registry map[string]ActionFunc
}

// New creates a dispatcher with the standard command set registered.
func New() *Dispatcher {
	d := &Dispatcher{registry: make(map[string]ActionFunc)}
	d.registerStandard()
	return d
}

// Register adds or replaces a named action.
func (d *Dispatcher) Register(name string, fn ActionFunc) {
	d.registry[name] = fn
}

// Dispatch resolves one key and runs what it is bound to.
func (d *Dispatcher) Dispatch(ctx *Context, k key.Key) error {
	resolver := keymap.Resolver{Local: ctx.Local(), Global: ctx.Global}

	entry, ok := resolver.Resolve(k)
	if !ok {
		return d.unbound(ctx, []key.Key{k})
	}

	keys := []key.Key{k}
	for {
		switch e := entry.(type) {
		case keymap.Action:
			return d.Run(ctx, string(e))
		case *keymap.Table:
			// Prefix key: read exactly one more key.
			next, err := ctx.Keys.Next()
			if err != nil {
				return err
			}
			keys = append(keys, next)
			sub, ok := e.Lookup(next)
			if !ok {
				ctx.SetStatus("%s is unbound", keymap.FormatSequence(keys))
				ctx.Session.BreakKillRun()
				return nil
			}
			entry = sub
		}
	}
}

// unbound handles a key with no binding: printable keys self-insert,
// everything else reports.
func (d *Dispatcher) unbound(ctx *Context, keys []key.Key) error {
	k := keys[len(keys)-1]
	if len(keys) == 1 && k.IsPrintable() {
		d.selfInsert(ctx, k)
		return nil
	}
	ctx.SetStatus("%s is unbound", keymap.FormatSequence(keys))
	ctx.Session.BreakKillRun()
	return nil
}

// selfInsert inserts a printable key into the active buffer and
// records it as a literal macro step.
func (d *Dispatcher) selfInsert(ctx *Context, k key.Key) {
	ctx.Session.Recorder().Record(macro.Literal(k))
	ctx.Session.Active().Insert([]string{string([]byte{byte(k)})})
	ctx.Session.BreakKillRun()
}

// Run executes a named action, feeding the recorder and the kill-run
// marker.
func (d *Dispatcher) Run(ctx *Context, name string) error {
	fn, ok := d.registry[name]
	if !ok {
		ctx.SetStatus("unknown action %q", name)
		ctx.Session.BreakKillRun()
		return nil
	}

	if !macroControl[name] {
		ctx.Session.Recorder().Record(macro.ActionRef(name))
	}

	err := fn(ctx)
	if !killActions[name] {
		ctx.Session.BreakKillRun()
	}
	return err
}

// registerStandard installs the stock command set.
func (d *Dispatcher) registerStandard() {
	for name, fn := range cursorActions {
		d.Register(name, fn)
	}
	for name, fn := range editActions {
		d.Register(name, fn)
	}
	for name, fn := range fileActions {
		d.Register(name, fn)
	}
	for name, fn := range searchActions {
		d.Register(name, fn)
	}
	for name, fn := range macroActions(d) {
		d.Register(name, fn)
	}
	for name, fn := range appActions {
		d.Register(name, fn)
	}
}
