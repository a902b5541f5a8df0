// Package app wires the editor together and owns the main loop:
// read a key, dispatch it, redisplay. Raw terminal mode is acquired
// once at startup and restored on every exit path, including panics.
package app
