package macro

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/inkwell/internal/input/key"
)

func TestRecordAndPlay(t *testing.T) {
	r := NewRecorder()

	if err := r.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	r.Record(Literal('a'))
	r.Record(Literal('b'))
	r.Record(ActionRef("cursor.left"))
	if err := r.Stop(); err != nil {
		t.Fatalf("stop failed: %v", err)
	}

	steps, err := r.Steps()
	if err != nil {
		t.Fatalf("steps failed: %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	if l, ok := steps[0].(Literal); !ok || l != 'a' {
		t.Errorf("step 0: expected literal a, got %v", steps[0])
	}
	if a, ok := steps[2].(ActionRef); !ok || a != "cursor.left" {
		t.Errorf("step 2: expected cursor.left, got %v", steps[2])
	}
}

func TestNestedRecordingRejected(t *testing.T) {
	r := NewRecorder()
	if err := r.Start(); err != nil {
		t.Fatal(err)
	}

	if err := r.Start(); !errors.Is(err, ErrAlreadyRecording) {
		t.Errorf("expected ErrAlreadyRecording, got %v", err)
	}
}

func TestPlayWhileRecordingRejected(t *testing.T) {
	r := NewRecorder()
	if err := r.Start(); err != nil {
		t.Fatal(err)
	}
	r.Record(Literal('x'))

	if _, err := r.Steps(); !errors.Is(err, ErrPlayWhileRecord) {
		t.Errorf("expected ErrPlayWhileRecord, got %v", err)
	}
}

func TestStopWithoutStart(t *testing.T) {
	r := NewRecorder()
	if err := r.Stop(); !errors.Is(err, ErrNotRecording) {
		t.Errorf("expected ErrNotRecording, got %v", err)
	}
}

func TestEmptyRegister(t *testing.T) {
	r := NewRecorder()
	if _, err := r.Steps(); !errors.Is(err, ErrEmptyMacro) {
		t.Errorf("expected ErrEmptyMacro, got %v", err)
	}
}

func TestRecordWhileIdleIgnored(t *testing.T) {
	r := NewRecorder()
	r.Record(Literal('x'))

	if r.Len() != 0 {
		t.Error("recording while idle must be ignored")
	}
}

func TestRestartDiscardsPartialSteps(t *testing.T) {
	r := NewRecorder()
	if err := r.Start(); err != nil {
		t.Fatal(err)
	}
	r.Record(Literal('a'))
	if err := r.Stop(); err != nil {
		t.Fatal(err)
	}

	if err := r.Start(); err != nil {
		t.Fatal(err)
	}
	r.Record(Literal('z'))
	if err := r.Stop(); err != nil {
		t.Fatal(err)
	}

	steps, err := r.Steps()
	if err != nil {
		t.Fatal(err)
	}
	if len(steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(steps))
	}
	if l := steps[0].(Literal); l != 'z' {
		t.Errorf("expected z, got %v", l)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macro.json")

	steps := []Step{
		Literal('a'),
		ActionRef("cursor.down"),
		Literal(key.KeyTab),
		Literal(0xE4),
		ActionRef("edit.killLine"),
	}

	if err := Save(path, steps); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != len(steps) {
		t.Fatalf("expected %d steps, got %d", len(steps), len(loaded))
	}
	for i := range steps {
		if loaded[i] != steps[i] {
			t.Errorf("step %d: expected %v, got %v", i, steps[i], loaded[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]string{
		"garbage.json": "{not json",
		"version.json": `{"version": 99, "steps": []}`,
		"step.json":    `{"version": 1, "steps": [{"neither": true}]}`,
	}
	for name, content := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}
