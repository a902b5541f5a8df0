// Package session owns the cross-buffer editor state: the open buffer
// ring, the kill register, the remembered search pattern, and the
// macro recorder.
package session
