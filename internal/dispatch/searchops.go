package dispatch

import (
	"errors"
	"fmt"

	"github.com/dshills/inkwell/internal/engine/buffer"
	"github.com/dshills/inkwell/internal/engine/search"
)

// searchActions cover prompted search and interactive replace.
var searchActions = map[string]ActionFunc{
	"search.forward":  searchForward,
	"search.backward": searchBackward,
	"search.replace":  searchReplace,
}

// promptPattern asks for a search pattern, offering the remembered one
// as the default for an empty answer.
func promptPattern(ctx *Context, verb string) (string, error) {
	label := verb + ": "
	if prev := ctx.Session.Pattern(); prev != "" {
		label = fmt.Sprintf("%s (default %q): ", verb, prev)
	}

	answer, err := ctx.ReadString(label)
	if err != nil {
		return "", err
	}
	if answer == "" {
		answer = ctx.Session.Pattern()
	}
	ctx.Session.SetPattern(answer)
	return answer, nil
}

func searchForward(ctx *Context) error {
	return doSearch(ctx, "Search", search.Forward)
}

func searchBackward(ctx *Context) error {
	return doSearch(ctx, "Search backward", search.Backward)
}

func doSearch(ctx *Context, verb string,
	find func(*buffer.Buffer, buffer.Position, string) (buffer.Position, bool)) error {

	pattern, err := promptPattern(ctx, verb)
	if err != nil {
		if errors.Is(err, ErrPromptAborted) {
			ctx.SetStatus("Quit")
			return nil
		}
		return err
	}
	if pattern == "" {
		ctx.SetStatus("No search pattern")
		return nil
	}

	b := ctx.Session.Active()
	pos, found := find(b, b.Cursor(), pattern)
	if !found {
		ctx.SetStatus("Not found: %q", pattern)
		return nil
	}
	b.SetCursor(pos)
	return nil
}

// searchReplace is the interactive query-replace: y replaces, n skips,
// ! replaces the rest unprompted, q or Ctrl-G stops.
func searchReplace(ctx *Context) error {
	pattern, err := ctx.ReadString("Replace: ")
	if err != nil {
		if errors.Is(err, ErrPromptAborted) {
			ctx.SetStatus("Quit")
			return nil
		}
		return err
	}
	if pattern == "" {
		ctx.SetStatus("No pattern")
		return nil
	}

	with, err := ctx.ReadString(fmt.Sprintf("Replace %q with: ", pattern))
	if err != nil {
		if errors.Is(err, ErrPromptAborted) {
			ctx.SetStatus("Quit")
			return nil
		}
		return err
	}
	ctx.Session.SetPattern(pattern)

	b := ctx.Session.Active()
	replaced := 0
	all := false

	// Start one byte back so a match at the cursor itself is found.
	from := b.Cursor()
	from.Col--

	// Visit each match once: the count bounds the loop so replacements
	// that reintroduce the pattern, or repeated skips across the wrap,
	// cannot cycle forever.
	total := search.Count(b, pattern)
	for i := 0; i < total; i++ {
		pos, found := search.Forward(b, from, pattern)
		if !found {
			break
		}
		b.SetCursor(pos)

		if !all {
			answer, err := ctx.askReplace(pattern, with)
			if err != nil {
				return err
			}
			switch answer {
			case replaceQuit:
				ctx.SetStatus("Replaced %d occurrences", replaced)
				return nil
			case replaceSkip:
				from = pos
				continue
			case replaceAll:
				all = true
			case replaceOne:
			}
		}

		end := buffer.Position{Line: pos.Line, Col: pos.Col + len(pattern)}
		if _, err := b.Delete(end); err != nil {
			ctx.SetStatus("Replace failed: %v", err)
			return nil
		}
		b.Insert([]string{with})
		replaced++
		from = b.Cursor()
		from.Col--
	}

	ctx.SetStatus("Replaced %d occurrences", replaced)
	return nil
}

type replaceAnswer int

const (
	replaceOne replaceAnswer = iota
	replaceSkip
	replaceAll
	replaceQuit
)

// askReplace repaints so the match is visible, then reads one key.
func (ctx *Context) askReplace(pattern, with string) (replaceAnswer, error) {
	if ctx.Render != nil {
		_ = ctx.Render.Render(ctx.Session.Active())
	}

	for {
		k, err := ctx.ReadKey(fmt.Sprintf("Replace %q with %q? (y/n/!/q) ", pattern, with))
		if err != nil {
			return replaceQuit, err
		}
		switch byte(k) {
		case 'y', ' ':
			return replaceOne, nil
		case 'n':
			return replaceSkip, nil
		case '!':
			return replaceAll, nil
		case 'q', 0x07: // Ctrl-G
			return replaceQuit, nil
		}
	}
}
