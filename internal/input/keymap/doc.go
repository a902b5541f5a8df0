// Package keymap maps logical keys to editor actions.
//
// A binding table entry is a tagged variant: either a leaf action name
// or a nested table. A key bound to a nested table is a prefix key;
// the dispatcher reads exactly one further key and resolves it in the
// nested table.
//
// Lookup consults the active buffer's local table first, then the
// global table. Tables are plain data; executing an action is the
// dispatcher's job.
package keymap
