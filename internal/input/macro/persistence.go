package macro

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/inkwell/internal/input/key"
)

// formatVersion is bumped when the on-disk shape changes.
const formatVersion = 1

// Save writes the step sequence to a JSON file. Literal steps carry
// the numeric key code, action steps the action name.
func Save(path string, steps []Step) error {
	out := "{}"
	out, _ = sjson.Set(out, "version", formatVersion)
	out, _ = sjson.Set(out, "steps", []any{})

	for i, s := range steps {
		var err error
		switch v := s.(type) {
		case Literal:
			out, err = sjson.Set(out, fmt.Sprintf("steps.%d.key", i), int(v))
		case ActionRef:
			out, err = sjson.Set(out, fmt.Sprintf("steps.%d.action", i), string(v))
		default:
			err = fmt.Errorf("unknown step type %T", s)
		}
		if err != nil {
			return fmt.Errorf("encoding macro step %d: %w", i, err)
		}
	}

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing macro file: %w", err)
	}
	return nil
}

// Load reads a step sequence from a JSON file written by Save.
func Load(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading macro file: %w", err)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("macro file %s: malformed JSON", path)
	}

	root := gjson.ParseBytes(data)
	if v := root.Get("version").Int(); v != formatVersion {
		return nil, fmt.Errorf("macro file %s: unsupported version %d", path, v)
	}

	var steps []Step
	for i, item := range root.Get("steps").Array() {
		if a := item.Get("action"); a.Exists() {
			steps = append(steps, ActionRef(a.String()))
			continue
		}
		if k := item.Get("key"); k.Exists() {
			steps = append(steps, Literal(key.Key(k.Int())))
			continue
		}
		return nil, fmt.Errorf("macro file %s: step %d has neither key nor action", path, i)
	}
	return steps, nil
}
