// Package style resolves theme colors into terminal styles.
//
// Theme colors are written as hex strings in the configuration and
// mapped to the nearest xterm 256-color palette index. The first 16
// palette slots are skipped: their colors depend on the user's
// terminal theme and cannot be matched reliably.
package style

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/inkwell/internal/term"
)

// Theme is the resolved style set used by the redisplay engine.
type Theme struct {
	Normal    term.Style
	Selection term.Style
	Status    term.Style
}

// Default is the stock theme: terminal default colors, reverse video
// for selection and the status line.
func Default() Theme {
	return Theme{
		Normal:    term.DefaultStyle,
		Selection: term.Style{FG: -1, BG: -1, Reverse: true},
		Status:    term.Style{FG: -1, BG: -1, Reverse: true},
	}
}

// Colors configures a theme from hex color strings. Empty strings keep
// the terminal default for that slot.
type Colors struct {
	Foreground  string
	Background  string
	SelectionFg string
	SelectionBg string
}

// FromColors resolves hex colors into a theme. An unparsable color is
// a configuration error.
func FromColors(c Colors) (Theme, error) {
	th := Default()

	var err error
	if th.Normal.FG, err = resolve(c.Foreground); err != nil {
		return Theme{}, fmt.Errorf("foreground: %w", err)
	}
	if th.Normal.BG, err = resolve(c.Background); err != nil {
		return Theme{}, fmt.Errorf("background: %w", err)
	}

	selFG, err := resolve(c.SelectionFg)
	if err != nil {
		return Theme{}, fmt.Errorf("selection foreground: %w", err)
	}
	selBG, err := resolve(c.SelectionBg)
	if err != nil {
		return Theme{}, fmt.Errorf("selection background: %w", err)
	}
	if selFG >= 0 || selBG >= 0 {
		th.Selection = term.Style{FG: selFG, BG: selBG}
	}

	return th, nil
}

// resolve maps a hex color to a palette index, or -1 for "terminal
// default" when the string is empty.
func resolve(hex string) (int, error) {
	if hex == "" {
		return -1, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, err
	}
	return nearestIndex(c), nil
}

// cubeLevels are the RGB steps of the 6x6x6 xterm color cube.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// palette is the xterm palette from index 16 up, built once.
var palette = buildPalette()

func buildPalette() []colorful.Color {
	out := make([]colorful.Color, 0, 240)
	for _, r := range cubeLevels {
		for _, g := range cubeLevels {
			for _, b := range cubeLevels {
				out = append(out, rgb(r, g, b))
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := uint8(8 + 10*i)
		out = append(out, rgb(v, v, v))
	}
	return out
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

// nearestIndex finds the perceptually closest palette entry.
func nearestIndex(c colorful.Color) int {
	best := 0
	bestDist := c.DistanceLab(palette[0])
	for i := 1; i < len(palette); i++ {
		if d := c.DistanceLab(palette[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best + 16
}
