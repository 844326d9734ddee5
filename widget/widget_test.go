package widget

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vtframe/core"
	"github.com/lixenwraith/vtframe/input"
	"github.com/lixenwraith/vtframe/render"
	"github.com/lixenwraith/vtframe/terminal"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "hel…", Truncate("hello", 4))
	assert.Equal(t, "…", Truncate("hello", 1))
	assert.Equal(t, "", Truncate("hello", 0))
	assert.Equal(t, "…llo", TruncateLeft("hello", 4))
	assert.Equal(t, "ab  ", PadRight("ab", 4))
	assert.Equal(t, 2, CenterOffset("ab", 6))
	assert.Equal(t, 0, CenterOffset("abcdef", 2))
}

func TestLabelDrawScopedColors(t *testing.T) {
	ctx := render.NewContext()
	l := NewLabel(2, 1, "hi")
	l.Fg = render.Red

	l.Draw(ctx)
	out := string(ctx.Bytes())
	assert.True(t, strings.HasPrefix(out, "\x1b[2;3H"))
	assert.Contains(t, out, "hi")
	fg, bg := ctx.Colors()
	assert.Equal(t, render.DefaultForeground, fg)
	assert.Equal(t, render.DefaultBackground, bg)
}

func TestLabelCenterTo(t *testing.T) {
	l := NewLabel(0, 0, "abcd")
	l.CenterTo(10, 3)
	assert.Equal(t, 8, l.X)
	assert.Equal(t, 3, l.Y)
}

func TestPanelAnchorAndDraw(t *testing.T) {
	p := NewPanel(core.Rect{}, "stats")
	p.Anchor = func(d core.Dimensions) core.Rect {
		return core.Rect{X: 0, Y: 0, Width: d.WindowWidth, Height: 4}
	}
	p.UpdateLayout(core.Dimensions{WindowWidth: 20, WindowHeight: 10})
	assert.Equal(t, 20, p.Width)
	assert.Equal(t, core.Rect{X: 1, Y: 1, Width: 18, Height: 2}, p.Inner())

	ctx := render.NewContext()
	p.Draw(ctx)
	out := string(ctx.Bytes())
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, " stats ")
}

func TestTextViewFollowAndScroll(t *testing.T) {
	v := NewTextView(core.Rect{X: 0, Y: 0, Width: 10, Height: 3})
	for i := range 5 {
		v.Append(strings.Repeat("x", i+1))
	}
	assert.Equal(t, 2, v.Offset())

	v.OnKey(terminal.KeyEvent(terminal.KeyUp, terminal.ModNone))
	assert.Equal(t, 1, v.Offset())
	assert.False(t, v.Follow)

	v.Append("new")
	assert.Equal(t, 1, v.Offset())

	v.OnKey(terminal.KeyEvent(terminal.KeyEnd, terminal.ModNone))
	assert.True(t, v.Follow)
	assert.Equal(t, 3, v.Offset())
}

func TestTextViewMaxLines(t *testing.T) {
	v := NewTextView(core.Rect{Width: 5, Height: 2})
	v.MaxLines = 3
	v.Append("a\nb\nc\nd")
	assert.Equal(t, []string{"b", "c", "d"}, v.Lines())
	assert.Equal(t, 1, v.Offset())
}

func TestTextViewDraw(t *testing.T) {
	v := NewTextView(core.Rect{X: 1, Y: 1, Width: 4, Height: 2})
	v.Append("ab")
	ctx := render.NewContext()
	v.Draw(ctx)
	out := string(ctx.Bytes())
	assert.Contains(t, out, "\x1b[2;2Hab  ")
	assert.Contains(t, out, "\x1b[3;2H    ")
}

func TestInputLineEditing(t *testing.T) {
	l := NewInputLine(0, 0, 20, "")
	assert.True(t, strings.HasPrefix(l.Handle(), "input-"))

	var submitted string
	l.OnSubmit = func(s string) { submitted = s }

	for _, r := range "hello world" {
		l.OnKey(terminal.RuneEvent(r))
	}
	assert.Equal(t, "hello world", l.Value())

	l.OnKey(terminal.KeyEvent(terminal.KeyCtrlW, terminal.ModCtrl))
	assert.Equal(t, "hello ", l.Value())

	l.OnKey(terminal.KeyEvent(terminal.KeyHome, terminal.ModNone))
	l.OnKey(terminal.RuneEvent('>'))
	assert.Equal(t, ">hello ", l.Value())
	assert.Equal(t, 1, l.Cursor())

	l.OnKey(terminal.KeyEvent(terminal.KeyBackspace, terminal.ModNone))
	l.OnKey(terminal.KeyEvent(terminal.KeyDelete, terminal.ModNone))
	assert.Equal(t, "ello ", l.Value())

	l.OnKey(terminal.KeyEvent(terminal.KeyEnter, terminal.ModNone))
	assert.Equal(t, "ello ", submitted)
	assert.Empty(t, l.Value())
}

func TestInputLinePumpsHandle(t *testing.T) {
	h := input.NewHandles()
	l := NewInputLine(0, 0, 10, "cmd")
	l.Open(h)
	require.Equal(t, "cmd", h.Active())

	h.Dispatch(terminal.RuneEvent('o'))
	h.Dispatch(terminal.RuneEvent('k'))
	assert.Equal(t, 2, l.Pump(h))
	assert.Equal(t, "ok", l.Value())
	assert.Equal(t, 0, l.Pump(h))

	l.Close(h)
	assert.False(t, h.Has("cmd"))
}

func TestInputLineScrollsToCursor(t *testing.T) {
	l := NewInputLine(0, 0, 6, "x")
	l.SetValue("abcdefgh")
	ctx := render.NewContext()
	l.Draw(ctx)
	out := string(ctx.Bytes())
	assert.Contains(t, out, "> ")
	assert.Contains(t, out, "fgh")
	assert.NotContains(t, out, "abc")
}
