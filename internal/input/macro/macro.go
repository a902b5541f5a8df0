package macro

import (
	"errors"

	"github.com/dshills/inkwell/internal/input/key"
)

// Recorder errors, surfaced on the status line rather than as faults.
var (
	ErrAlreadyRecording = errors.New("already recording a macro")
	ErrNotRecording     = errors.New("not recording a macro")
	ErrPlayWhileRecord  = errors.New("cannot play a macro while recording")
	ErrEmptyMacro       = errors.New("no macro recorded")
)

// Step is a tagged variant: a Literal key to self-insert or an
// ActionRef naming a command to run.
type Step interface {
	step()
}

// Literal is a key inserted verbatim during playback.
type Literal key.Key

func (Literal) step() {}

// ActionRef names a dispatched action.
type ActionRef string

func (ActionRef) step() {}

// Recorder owns the macro recording state and the last recorded
// sequence. Not safe for concurrent use.
type Recorder struct {
	recording bool
	steps     []Step
	saved     []Step
}

// NewRecorder creates an idle recorder with no saved macro.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Start begins recording. Starting while a recording is active is
// rejected, never silently nested.
func (r *Recorder) Start() error {
	if r.recording {
		return ErrAlreadyRecording
	}
	r.recording = true
	r.steps = nil
	return nil
}

// Stop ends the recording and saves the step sequence.
func (r *Recorder) Stop() error {
	if !r.recording {
		return ErrNotRecording
	}
	r.recording = false
	r.saved = r.steps
	r.steps = nil
	return nil
}

// Recording reports whether a recording is active.
func (r *Recorder) Recording() bool { return r.recording }

// Record appends a step to the active recording. Does nothing when
// idle.
func (r *Recorder) Record(s Step) {
	if r.recording {
		r.steps = append(r.steps, s)
	}
}

// Steps returns the saved macro for playback. Playback while recording
// is rejected; an empty register is reported as such.
func (r *Recorder) Steps() ([]Step, error) {
	if r.recording {
		return nil, ErrPlayWhileRecord
	}
	if len(r.saved) == 0 {
		return nil, ErrEmptyMacro
	}
	out := make([]Step, len(r.saved))
	copy(out, r.saved)
	return out, nil
}

// Len returns the number of steps recorded so far, or in the saved
// macro when idle.
func (r *Recorder) Len() int {
	if r.recording {
		return len(r.steps)
	}
	return len(r.saved)
}

// SetSteps replaces the saved macro, used when loading from disk.
func (r *Recorder) SetSteps(steps []Step) {
	saved := make([]Step, len(steps))
	copy(saved, steps)
	r.saved = saved
}
