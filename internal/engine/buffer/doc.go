// Package buffer implements the editor's text buffer: ordered Latin-1
// lines plus a cursor, an optional selection anchor, scroll state, and
// the undo log.
//
// Text changes flow through exactly two mutators, Insert and Delete.
// Every other operation is a cursor move or a read-only query, which
// keeps the undo log trivially complete: recording the two mutators
// records everything.
//
// Positions are 1-based by line and 0-based by byte column. A cursor
// column equal to the line length is valid and means "after the last
// byte".
package buffer
