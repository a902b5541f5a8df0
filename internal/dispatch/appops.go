package dispatch

// appActions control the editor itself.
var appActions = map[string]ActionFunc{
	"app.quit":    appQuit,
	"app.abort":   appAbort,
	"view.redraw": viewRedraw,
}

// appQuit asks for confirmation when unsaved buffers exist.
func appQuit(ctx *Context) error {
	if unsaved := ctx.Session.Unsaved(); len(unsaved) > 0 {
		k, err := ctx.ReadKey("Unsaved buffers exist; quit anyway? (y/n) ")
		if err != nil {
			return err
		}
		if k != 'y' && k != 'Y' {
			ctx.SetStatus("Quit aborted")
			return nil
		}
	}
	ctx.RequestQuit()
	return nil
}

// appAbort is top-level Ctrl-G: drop the selection and reset the
// status line.
func appAbort(ctx *Context) error {
	ctx.Session.Active().ClearMark()
	ctx.SetStatus("Quit")
	return nil
}

// viewRedraw forces a full repaint from scratch.
func viewRedraw(ctx *Context) error {
	if ctx.Screen != nil {
		ctx.Screen.Clear()
	}
	ctx.Session.Active().MarkDirty()
	return nil
}
