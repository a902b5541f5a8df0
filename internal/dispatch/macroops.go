package dispatch

import (
	"errors"

	"github.com/dshills/inkwell/internal/input/macro"
)

// macroActions close over the dispatcher: playback re-enters Run.
func macroActions(d *Dispatcher) map[string]ActionFunc {
	return map[string]ActionFunc{
		"macro.record": macroRecord,
		"macro.stop":   macroStop,
		"macro.play":   d.macroPlay,
		"macro.save":   macroSave,
		"macro.load":   macroLoad,
	}
}

func macroRecord(ctx *Context) error {
	if err := ctx.Session.Recorder().Start(); err != nil {
		ctx.SetStatus("%v", err)
		return nil
	}
	ctx.SetStatus("Recording macro...")
	return nil
}

func macroStop(ctx *Context) error {
	r := ctx.Session.Recorder()
	if err := r.Stop(); err != nil {
		ctx.SetStatus("%v", err)
		return nil
	}
	ctx.SetStatus("Macro recorded (%d steps)", r.Len())
	return nil
}

// macroPlay replays the saved macro against whichever buffer is
// current now, not the one it was recorded in.
func (d *Dispatcher) macroPlay(ctx *Context) error {
	steps, err := ctx.Session.Recorder().Steps()
	if err != nil {
		ctx.SetStatus("%v", err)
		return nil
	}

	for _, s := range steps {
		switch v := s.(type) {
		case macro.Literal:
			ctx.Session.Active().Insert([]string{string([]byte{byte(v)})})
			ctx.Session.BreakKillRun()
		case macro.ActionRef:
			if err := d.Run(ctx, string(v)); err != nil {
				return err
			}
		}
		if ctx.QuitRequested() {
			break
		}
	}
	return nil
}

func macroSave(ctx *Context) error {
	steps, err := ctx.Session.Recorder().Steps()
	if err != nil {
		ctx.SetStatus("%v", err)
		return nil
	}

	path, err := ctx.ReadString("Save macro to: ")
	if err != nil {
		if errors.Is(err, ErrPromptAborted) {
			ctx.SetStatus("Quit")
			return nil
		}
		return err
	}
	if path == "" {
		ctx.SetStatus("No file name")
		return nil
	}

	if err := macro.Save(path, steps); err != nil {
		ctx.SetStatus("%v", err)
		return nil
	}
	ctx.SetStatus("Macro saved to %s", path)
	return nil
}

func macroLoad(ctx *Context) error {
	path, err := ctx.ReadString("Load macro from: ")
	if err != nil {
		if errors.Is(err, ErrPromptAborted) {
			ctx.SetStatus("Quit")
			return nil
		}
		return err
	}
	if path == "" {
		ctx.SetStatus("No file name")
		return nil
	}

	steps, err := macro.Load(path)
	if err != nil {
		ctx.SetStatus("%v", err)
		return nil
	}
	ctx.Session.Recorder().SetSteps(steps)
	ctx.SetStatus("Macro loaded (%d steps)", len(steps))
	return nil
}
