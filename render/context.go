package render

import (
	"bytes"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// Pre-allocated sequence fragments
var (
	csi             = []byte("\x1b[")
	seqFg256        = []byte("\x1b[38;5;")
	seqBg256        = []byte("\x1b[48;5;")
	seqClearLine    = []byte("\x1b[2K")
	seqInvert       = []byte("\x1b[7m")
	seqRevert       = []byte("\x1b[27m")
	seqResetColors  = []byte("\x1b[97m\x1b[40m")
	seqHome         = []byte("\x1b[;H")
	seqClearToEnd   = []byte("\x1b[J")
	seqCursorRight1 = []byte("\x1b[C")
)

// Context accumulates one frame of escape sequences and remembers the previous frame.
//
// The fg/bg registers mirror the terminal's current SGR colors so redundant color
// changes are not emitted. A Context is owned by the main loop and not safe for
// concurrent use
type Context struct {
	current bytes.Buffer
	last    bytes.Buffer

	fg Color
	bg Color

	// ElideBlankRows skips all-whitespace rows in DrawCharBuffer. Opt-in: anything
	// drawn underneath a skipped row by a lower layer shows through it
	ElideBlankRows bool

	line []Cell
}

// NewContext creates a context with default registers
func NewContext() *Context {
	c := &Context{
		fg: DefaultForeground,
		bg: DefaultBackground,
	}
	c.current.Grow(4096)
	c.last.Grow(4096)
	return c
}

// appendInt writes a non-negative integer without allocation
func appendInt(b *bytes.Buffer, n int) {
	if n < 0 {
		n = -n
	}
	if n < 10 {
		b.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		b.WriteByte(byte(n/10) + '0')
		b.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	b.Write(buf[i:])
}

// SetCursorPosition moves the cursor to 0-indexed (x, y); negative coordinates clamp to 0
func (c *Context) SetCursorPosition(x, y int) {
	x, y = max(x, 0), max(y, 0)
	c.current.Write(csi)
	appendInt(&c.current, y+1)
	c.current.WriteByte(';')
	appendInt(&c.current, x+1)
	c.current.WriteByte('H')
}

// ClearLine erases the whole current line
func (c *Context) ClearLine() {
	c.current.Write(seqClearLine)
}

// CursorForward moves the cursor right by n columns
func (c *Context) CursorForward(n int) {
	if n <= 0 {
		return
	}
	if n == 1 {
		c.current.Write(seqCursorRight1)
		return
	}
	c.current.Write(csi)
	appendInt(&c.current, n)
	c.current.WriteByte('C')
}

// DrawText appends s verbatim
func (c *Context) DrawText(s string) {
	c.current.WriteString(s)
}

// DrawTextClipped appends s truncated to width display columns
func (c *Context) DrawTextClipped(s string, width int) {
	if width <= 0 {
		return
	}
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "")
	}
	c.current.WriteString(s)
}

// DrawChar appends one rune
func (c *Context) DrawChar(r rune) {
	if r < utf8.RuneSelf {
		c.current.WriteByte(byte(r))
		return
	}
	c.current.WriteRune(r)
}

// DrawBox outlines a rectangle with the ASCII box style
func (c *Context) DrawBox(x, y, width, height int) {
	c.DrawBoxStyle(x, y, width, height, BoxASCII)
}

// DrawBoxStyle outlines a rectangle; the interior is skipped with cursor-forward
func (c *Context) DrawBoxStyle(x, y, width, height int, s BoxStyle) {
	if width < 2 || height < 2 {
		return
	}

	c.SetCursorPosition(x, y)
	c.DrawChar(s.TopLeft)
	for range width - 2 {
		c.DrawChar(s.Horizontal)
	}
	c.DrawChar(s.TopRight)

	for i := 1; i < height-1; i++ {
		c.SetCursorPosition(x, y+i)
		c.DrawChar(s.Vertical)
		c.CursorForward(width - 2)
		c.DrawChar(s.Vertical)
	}

	c.SetCursorPosition(x, y+height-1)
	c.DrawChar(s.BottomLeft)
	for range width - 2 {
		c.DrawChar(s.Horizontal)
	}
	c.DrawChar(s.BottomRight)
}

// FillRect paints a rectangle with spaces in the current colors
func (c *Context) FillRect(x, y, width, height int) {
	for row := range height {
		c.SetCursorPosition(x, y+row)
		for range width {
			c.current.WriteByte(' ')
		}
	}
}

// SetForeground emits a foreground change unless the register already holds color
func (c *Context) SetForeground(color Color) bool {
	if color == c.fg {
		return false
	}
	c.fg = color
	c.current.Write(seqFg256)
	appendInt(&c.current, int(color))
	c.current.WriteByte('m')
	return true
}

// SetBackground emits a background change unless the register already holds color
func (c *Context) SetBackground(color Color) bool {
	if color == c.bg {
		return false
	}
	c.bg = color
	c.current.Write(seqBg256)
	appendInt(&c.current, int(color))
	c.current.WriteByte('m')
	return true
}

// SetColors applies both registers and reports whether either changed
func (c *Context) SetColors(fg, bg Color) bool {
	bgChanged := c.SetBackground(bg)
	fgChanged := c.SetForeground(fg)
	return bgChanged || fgChanged
}

// EnterColorContext runs body under fg/bg and resets to defaults afterwards if anything changed
func (c *Context) EnterColorContext(fg, bg Color, body func()) {
	changed := c.SetColors(fg, bg)
	body()
	if changed {
		c.ResetColors()
	}
}

// Invert swaps foreground and background for following output
func (c *Context) Invert() {
	c.current.Write(seqInvert)
}

// Revert undoes Invert
func (c *Context) Revert() {
	c.current.Write(seqRevert)
}

// ResetColors sets both registers to default and appends the white-on-black sequence
func (c *Context) ResetColors() {
	c.fg = DefaultForeground
	c.bg = DefaultBackground
	c.current.Write(seqResetColors)
}

// Colors returns the tracked registers
func (c *Context) Colors() (fg, bg Color) {
	return c.fg, c.bg
}

// Preamble homes the cursor, clears to end of screen and resets colors
func (c *Context) Preamble() {
	c.current.Write(seqHome)
	c.current.Write(seqClearToEnd)
	c.ResetColors()
}

// DrawCharBuffer blits a viewW x viewH window of cells (row stride `stride`) at (x, y).
// Each row is positioned explicitly; with ElideBlankRows, rows that are entirely
// whitespace are skipped
func (c *Context) DrawCharBuffer(x, y, viewW, viewH, stride int, cells []Cell) {
	if viewW <= 0 || viewH <= 0 || len(cells) == 0 {
		return
	}

	for row := range viewH {
		c.line = c.line[:0]
		blank := c.ElideBlankRows
		for col := range viewW {
			cell := cells[Index(col, row, stride, len(cells))]
			c.line = append(c.line, cell)
			blank = blank && (cell.Rune == continuation || cell.Blank())
		}
		if blank {
			continue
		}

		c.SetCursorPosition(x, y+row)
		for _, cell := range c.line {
			if cell.Rune == continuation {
				continue
			}
			c.SetForeground(cell.Fg)
			c.SetBackground(cell.Bg)
			c.DrawChar(cell.Glyph())
		}
	}
}

// Commit reports whether the current frame differs from the last stored frame
func (c *Context) Commit() bool {
	return !bytes.Equal(c.current.Bytes(), c.last.Bytes())
}

// Store copies the current frame into last
func (c *Context) Store() {
	c.last.Reset()
	c.last.Write(c.current.Bytes())
}

// Clear empties the current frame
func (c *Context) Clear() {
	c.current.Reset()
}

// Bytes returns the current frame. The slice is valid until the next mutation
func (c *Context) Bytes() []byte {
	return c.current.Bytes()
}

// Last returns the stored previous frame
func (c *Context) Last() []byte {
	return c.last.Bytes()
}

// Len returns the current frame size in bytes
func (c *Context) Len() int {
	return c.current.Len()
}

// Invalidate forgets the stored frame so the next commit always reports a change
func (c *Context) Invalidate() {
	c.last.Reset()
}
