package dispatch

import (
	"errors"

	"github.com/dshills/inkwell/internal/input/key"
)

// ErrPromptAborted is the sentinel for Ctrl-G inside a prompt. It
// cancels the prompting command only; no other state unwinds.
var ErrPromptAborted = errors.New("prompt aborted")

// ReadString runs a one-line prompt on the status line. Printable keys
// append, backspace removes, Enter accepts, Ctrl-G aborts.
func (c *Context) ReadString(prompt string) (string, error) {
	var input []byte
	for {
		c.drawPrompt(prompt + string(input))

		k, err := c.Keys.Next()
		if err != nil {
			return "", err
		}

		switch {
		case k == key.KeyEnter:
			return string(input), nil
		case k == key.Ctrl('g'):
			return "", ErrPromptAborted
		case k == key.KeyBackspace || k == key.Ctrl('h'):
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		case k.IsPrintable() && k != key.KeyTab:
			input = append(input, byte(k))
		}
	}
}

// ReadKey shows a prompt and reads a single key, for y/n style
// questions.
func (c *Context) ReadKey(prompt string) (key.Key, error) {
	c.drawPrompt(prompt)
	return c.Keys.Next()
}

func (c *Context) drawPrompt(text string) {
	if c.Render == nil || c.Screen == nil {
		return
	}
	c.Render.DrawStatus(c.StatusRow, c.Cols, text, "")
	_ = c.Screen.Flush()
}
