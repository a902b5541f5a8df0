package history

import "errors"

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Kind tags an edit record.
type Kind uint8

const (
	// Insert records text that was added to the buffer.
	Insert Kind = iota
	// Delete records text that was removed from the buffer.
	Delete
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// Record is one edit: the exact affected lines and the cursor position
// before the edit was applied. Line is 1-based, Col is a 0-based byte
// column, matching buffer positions.
//
// Lines uses the same convention as buffer insertion: a single element
// is in-line text, two or more elements carry embedded line breaks.
type Record struct {
	Kind  Kind
	Line  int
	Col   int
	Lines []string
}

// Log is an append-only sequence of records with a movable top pointer.
// Records below the pointer are undoable, records at or above it are
// redoable. Not safe for concurrent use; the editor is single-threaded.
type Log struct {
	records []Record
	top     int
	limit   int
}

// NewLog creates an edit log holding at most limit records. A limit
// of zero or less keeps every record.
func NewLog(limit int) *Log {
	return &Log{limit: limit}
}

// Push appends a record at the top pointer, discarding any redo
// records beyond it.
func (l *Log) Push(rec Record) {
	l.records = l.records[:l.top]
	l.records = append(l.records, rec)
	l.top = len(l.records)

	if l.limit > 0 && len(l.records) > l.limit {
		excess := len(l.records) - l.limit
		l.records = l.records[excess:]
		l.top -= excess
	}
}

// StepBack returns the record below the top pointer and moves the
// pointer back. The caller applies the record's inverse.
func (l *Log) StepBack() (Record, error) {
	if l.top == 0 {
		return Record{}, ErrNothingToUndo
	}
	l.top--
	return l.records[l.top], nil
}

// StepForward returns the record at the top pointer and moves the
// pointer ahead. The caller reapplies the record.
func (l *Log) StepForward() (Record, error) {
	if l.top == len(l.records) {
		return Record{}, ErrNothingToRedo
	}
	rec := l.records[l.top]
	l.top++
	return rec, nil
}

// CanUndo reports whether any record is below the top pointer.
func (l *Log) CanUndo() bool { return l.top > 0 }

// CanRedo reports whether any record is at or above the top pointer.
func (l *Log) CanRedo() bool { return l.top < len(l.records) }

// Len returns the total number of records in the log.
func (l *Log) Len() int { return len(l.records) }

// Top returns the current top pointer.
func (l *Log) Top() int { return l.top }

// Clear removes every record. Used when buffer content is replaced
// wholesale, which intentionally forfeits history.
func (l *Log) Clear() {
	l.records = nil
	l.top = 0
}
