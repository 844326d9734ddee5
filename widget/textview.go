package widget

import (
	"strings"

	"github.com/lixenwraith/vtframe/core"
	"github.com/lixenwraith/vtframe/layer"
	"github.com/lixenwraith/vtframe/render"
	"github.com/lixenwraith/vtframe/terminal"
)

// DefaultMaxLines bounds TextView history
const DefaultMaxLines = 1000

// TextView is a scrollable, append-only log of lines rendered through a cell buffer
type TextView struct {
	layer.WidgetBase

	core.Rect
	Fg, Bg   render.Color
	MaxLines int
	// Follow keeps the view pinned to the newest line until the user scrolls up
	Follow bool

	Anchor func(d core.Dimensions) core.Rect

	lines  []string
	offset int
	buf    *render.CharBuffer
	dirty  bool
}

// NewTextView creates a following text view over r
func NewTextView(r core.Rect) *TextView {
	return &TextView{
		Rect:     r,
		Fg:       render.DefaultForeground,
		Bg:       render.DefaultBackground,
		MaxLines: DefaultMaxLines,
		Follow:   true,
		buf:      render.NewCharBuffer(max(r.Width, 0), max(r.Height, 0)),
		dirty:    true,
	}
}

// Append adds text, splitting on newlines
func (v *TextView) Append(text string) {
	for line := range strings.SplitSeq(text, "\n") {
		v.lines = append(v.lines, line)
	}
	if v.MaxLines > 0 && len(v.lines) > v.MaxLines {
		drop := len(v.lines) - v.MaxLines
		v.lines = append(v.lines[:0], v.lines[drop:]...)
		v.offset = max(v.offset-drop, 0)
	}
	if v.Follow {
		v.offset = v.maxOffset()
	}
	v.dirty = true
}

// Lines returns the retained history
func (v *TextView) Lines() []string {
	return v.lines
}

// Offset returns the index of the first visible line
func (v *TextView) Offset() int {
	return v.offset
}

// Clear drops all lines
func (v *TextView) Clear() {
	v.lines = v.lines[:0]
	v.offset = 0
	v.dirty = true
}

// ScrollBy moves the view by delta lines; reaching the bottom re-enables Follow
func (v *TextView) ScrollBy(delta int) {
	v.offset = min(max(v.offset+delta, 0), v.maxOffset())
	v.Follow = v.offset == v.maxOffset()
	v.dirty = true
}

func (v *TextView) maxOffset() int {
	return max(len(v.lines)-v.Height, 0)
}

// OnKey scrolls with arrows and page keys
func (v *TextView) OnKey(ev terminal.Event) {
	switch ev.Key {
	case terminal.KeyUp:
		v.ScrollBy(-1)
	case terminal.KeyDown:
		v.ScrollBy(1)
	case terminal.KeyPageUp:
		v.ScrollBy(-max(v.Height/2, 1))
	case terminal.KeyPageDown:
		v.ScrollBy(max(v.Height/2, 1))
	case terminal.KeyHome:
		v.ScrollBy(-len(v.lines))
	case terminal.KeyEnd:
		v.ScrollBy(len(v.lines))
	}
}

func (v *TextView) UpdateLayout(d core.Dimensions) {
	if v.Anchor == nil {
		return
	}
	r := v.Anchor(d)
	if r != v.Rect {
		v.Rect = r
		if v.Follow {
			v.offset = v.maxOffset()
		}
		v.offset = min(v.offset, v.maxOffset())
		v.dirty = true
	}
}

// refresh re-renders visible lines into the cell buffer
func (v *TextView) refresh() {
	if v.buf.Width() != v.Width || v.buf.Height() != v.Height {
		v.buf.Resize(v.Width, v.Height)
	}
	v.buf.Fill(render.Cell{Rune: ' ', Fg: v.Fg, Bg: v.Bg})
	for row := range v.Height {
		i := v.offset + row
		if i >= len(v.lines) {
			break
		}
		v.buf.WriteString(0, row, v.lines[i], v.Fg, v.Bg)
	}
	v.dirty = false
}

func (v *TextView) Draw(ctx *render.Context) {
	if v.Width <= 0 || v.Height <= 0 {
		return
	}
	if v.dirty {
		v.refresh()
	}
	ctx.DrawCharBuffer(v.X, v.Y, v.Width, v.Height, v.buf.Width(), v.buf.Cells())
	ctx.ResetColors()
}
