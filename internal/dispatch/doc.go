// Package dispatch routes decoded keys to editor commands.
//
// A key resolves through the active buffer's local binding table, then
// the global table. Prefix keys read exactly one more key and resolve
// in the nested table. Unbound printable keys fall back to
// self-insert; anything else reports on the status line. Every
// dispatched action and self-inserted key feeds the macro recorder.
package dispatch
