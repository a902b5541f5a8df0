// Package history implements the edit log backing undo and redo.
//
// The log is append-only with a movable top pointer. Undo steps the
// pointer back and hands out the record to invert; redo hands out the
// record to reapply and steps the pointer forward. Pushing a new record
// while the pointer is below the end discards every record beyond it,
// so redo history does not survive a new edit.
//
// The log stores plain data. Applying a record against a buffer is the
// caller's job; the log never mutates text itself.
package history
