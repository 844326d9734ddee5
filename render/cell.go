package render

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// continuation marks the trailing cell of a double-width rune
const continuation rune = -1

// Cell is one character position with its colors
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// DefaultCell is a blank white-on-black cell
var DefaultCell = Cell{Rune: ' ', Fg: DefaultForeground, Bg: DefaultBackground}

// Glyph returns the rune to emit, replacing layout control characters with a space
func (c Cell) Glyph() rune {
	switch c.Rune {
	case '\n', '\r', '\t', 0:
		return ' '
	}
	return c.Rune
}

// Blank reports whether the cell renders as whitespace
func (c Cell) Blank() bool {
	return unicode.IsSpace(c.Glyph())
}

// CharBuffer is a row-major grid of cells, typically a widget's private surface
type CharBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewCharBuffer creates a buffer filled with DefaultCell
func NewCharBuffer(width, height int) *CharBuffer {
	b := &CharBuffer{}
	b.Resize(width, height)
	return b
}

// Resize changes dimensions and clears content; reallocates only if capacity is insufficient
func (b *CharBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	}
	b.cells = b.cells[:size]
	b.width, b.height = width, height
	b.Fill(DefaultCell)
}

func (b *CharBuffer) Width() int  { return b.width }
func (b *CharBuffer) Height() int { return b.height }

// Cells exposes the backing slice for DrawCharBuffer
func (b *CharBuffer) Cells() []Cell { return b.cells }

// Index maps a coordinate to a slice offset. Out-of-range coordinates wrap modulo the buffer size
func (b *CharBuffer) Index(x, y int) int {
	return Index(x, y, b.width, len(b.cells))
}

// Index computes (y*width + x) mod total, always non-negative. Returns 0 for an empty buffer
func Index(x, y, width, total int) int {
	if total <= 0 {
		return 0
	}
	i := (y*width + x) % total
	if i < 0 {
		i += total
	}
	return i
}

// Set writes a cell at (x, y)
func (b *CharBuffer) Set(x, y int, c Cell) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[b.Index(x, y)] = c
}

// At returns the cell at (x, y)
func (b *CharBuffer) At(x, y int) Cell {
	if len(b.cells) == 0 {
		return DefaultCell
	}
	return b.cells[b.Index(x, y)]
}

// Fill sets every cell to c
func (b *CharBuffer) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// ClearRow blanks one row
func (b *CharBuffer) ClearRow(y int) {
	if len(b.cells) == 0 {
		return
	}
	start := b.Index(0, y)
	for i := start; i < start+b.width; i++ {
		b.cells[i] = DefaultCell
	}
}

// WriteString writes s starting at (x, y) without wrapping and returns columns used.
// Double-width runes take two cells; a wide rune that would straddle the right edge is dropped
func (b *CharBuffer) WriteString(x, y int, s string, fg, bg Color) int {
	col := x
	for _, r := range s {
		if col >= b.width {
			break
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if w == 2 && col+1 >= b.width {
			break
		}
		b.Set(col, y, Cell{Rune: r, Fg: fg, Bg: bg})
		if w == 2 {
			b.Set(col+1, y, Cell{Rune: continuation, Fg: fg, Bg: bg})
		}
		col += w
	}
	return col - x
}

// ScrollUp shifts content up by n rows, blanking the rows exposed at the bottom
func (b *CharBuffer) ScrollUp(n int) {
	if n <= 0 || b.width == 0 {
		return
	}
	if n >= b.height {
		b.Fill(DefaultCell)
		return
	}
	copy(b.cells, b.cells[n*b.width:])
	for y := b.height - n; y < b.height; y++ {
		b.ClearRow(y)
	}
}
