// Package layout maps buffer bytes to rendered screen columns.
//
// Tabs expand to the next multiple of the tab width; control-range
// bytes (0x00-0x1F other than tab, and 0x7F-0x9F) render as a single
// placeholder glyph. All other Latin-1 bytes occupy one cell.
package layout

import "strings"

// Placeholder is the glyph shown for control-range bytes.
const Placeholder = '?'

// DefaultTabWidth matches the classic terminal tab stop.
const DefaultTabWidth = 8

// Cell is one rendered screen cell: the glyph to draw and the byte
// index it came from. Tab fill cells share the tab's byte index.
type Cell struct {
	Ch   byte
	Byte int
}

// Expander expands buffer lines into rendered cells.
type Expander struct {
	tabWidth int
}

// NewExpander creates an expander with the given tab width.
func NewExpander(tabWidth int) *Expander {
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	return &Expander{tabWidth: tabWidth}
}

// TabWidth returns the configured tab width.
func (e *Expander) TabWidth() int { return e.tabWidth }

// nextTabStop returns the first tab stop after col.
func (e *Expander) nextTabStop(col int) int {
	return col + e.tabWidth - (col % e.tabWidth)
}

// isControl reports whether b renders as the placeholder glyph.
func isControl(b byte) bool {
	return (b < 0x20 && b != '\t') || (b >= 0x7F && b <= 0x9F)
}

// Expand converts a line into rendered cells.
func (e *Expander) Expand(line string) []Cell {
	cells := make([]Cell, 0, len(line))
	for i := 0; i < len(line); i++ {
		b := line[i]
		switch {
		case b == '\t':
			stop := e.nextTabStop(len(cells))
			for len(cells) < stop {
				cells = append(cells, Cell{Ch: ' ', Byte: i})
			}
		case isControl(b):
			cells = append(cells, Cell{Ch: Placeholder, Byte: i})
		default:
			cells = append(cells, Cell{Ch: b, Byte: i})
		}
	}
	return cells
}

// DisplayWidth returns the rendered width of a whole line.
func (e *Expander) DisplayWidth(line string) int {
	col := 0
	for i := 0; i < len(line); i++ {
		if line[i] == '\t' {
			col = e.nextTabStop(col)
		} else {
			col++
		}
	}
	return col
}

// ColumnFor returns the rendered column of a byte index. A byte index
// equal to the line length maps to the column after the last cell,
// which is where the cursor sits at end of line.
func (e *Expander) ColumnFor(line string, byteCol int) int {
	if byteCol > len(line) {
		byteCol = len(line)
	}
	col := 0
	for i := 0; i < byteCol; i++ {
		if line[i] == '\t' {
			col = e.nextTabStop(col)
		} else {
			col++
		}
	}
	return col
}

// ByteFor returns the byte index whose rendered span covers the given
// column, for mapping screen positions back into the line. Columns
// past the end map to the line length.
func (e *Expander) ByteFor(line string, col int) int {
	cells := e.Expand(line)
	if col < 0 {
		return 0
	}
	if col >= len(cells) {
		return len(line)
	}
	return cells[col].Byte
}

// Text renders cells into the string to draw.
func Text(cells []Cell) string {
	var sb strings.Builder
	sb.Grow(len(cells))
	for _, c := range cells {
		sb.WriteByte(c.Ch)
	}
	return sb.String()
}
