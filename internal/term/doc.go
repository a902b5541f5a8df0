// Package term is the editor's terminal collaborator: raw-mode
// save/set/restore and write-only escape emission for the redisplay
// engine.
//
// Raw mode is a scoped acquisition. It is saved once at startup and
// must be restored on every exit path, including an unrecovered fault,
// before anything is printed to the user's shell.
package term
