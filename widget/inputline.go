package widget

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/vtframe/core"
	"github.com/lixenwraith/vtframe/input"
	"github.com/lixenwraith/vtframe/layer"
	"github.com/lixenwraith/vtframe/render"
	"github.com/lixenwraith/vtframe/terminal"
)

// InputLine is a single-line text editor. Keys arrive either through OnKey
// (when focused) or from its named input handle via Pump
type InputLine struct {
	layer.WidgetBase

	X, Y, Width int
	Prompt      string
	Fg, Bg      render.Color
	CursorFg    render.Color
	CursorBg    render.Color

	// OnSubmit receives the text when Enter is pressed; the line is then cleared
	OnSubmit func(text string)

	Anchor func(d core.Dimensions) (x, y, width int)

	handle string
	edit   lineEditor
}

// NewInputLine creates an input line; an empty handle name is replaced with a random one
func NewInputLine(x, y, width int, handle string) *InputLine {
	if handle == "" {
		handle = "input-" + uuid.NewString()
	}
	return &InputLine{
		X:        x,
		Y:        y,
		Width:    width,
		Prompt:   "> ",
		Fg:       render.DefaultForeground,
		Bg:       render.DefaultBackground,
		CursorFg: render.Black,
		CursorBg: render.White,
		handle:   handle,
	}
}

// Handle returns the input handle name
func (l *InputLine) Handle() string { return l.handle }

// Value returns the current text
func (l *InputLine) Value() string { return l.edit.value() }

// SetValue replaces the text, moving the cursor to the end
func (l *InputLine) SetValue(s string) { l.edit.set(s) }

// Cursor returns the insertion point in runes
func (l *InputLine) Cursor() int { return l.edit.cursor }

// Open registers the line's handle and makes it the active sink
func (l *InputLine) Open(h *input.Handles) {
	h.Open(l.handle, true)
}

// Close removes the line's handle
func (l *InputLine) Close(h *input.Handles) {
	h.Close(l.handle)
}

// Pump drains every pending event queued on the line's handle
func (l *InputLine) Pump(h *input.Handles) int {
	n := 0
	for {
		ev, ok := h.Key(l.handle)
		if !ok {
			return n
		}
		l.OnKey(ev)
		n++
	}
}

func (l *InputLine) OnKey(ev terminal.Event) {
	if ev.Key == terminal.KeyEnter {
		text := l.edit.value()
		l.edit.set("")
		if l.OnSubmit != nil {
			l.OnSubmit(text)
		}
		return
	}
	l.edit.handle(ev)
}

func (l *InputLine) UpdateLayout(d core.Dimensions) {
	if l.Anchor != nil {
		l.X, l.Y, l.Width = l.Anchor(d)
	}
}

func (l *InputLine) Draw(ctx *render.Context) {
	prompt := Truncate(l.Prompt, l.Width)
	field := l.Width - len([]rune(prompt))
	if field <= 0 {
		return
	}
	l.edit.adjustScroll(field)

	text := l.edit.text[l.edit.scroll:min(len(l.edit.text), l.edit.scroll+field)]
	cur := l.edit.cursor - l.edit.scroll

	ctx.SetCursorPosition(l.X, l.Y)
	ctx.EnterColorContext(l.Fg, l.Bg, func() {
		ctx.DrawText(prompt)
		for i := range field {
			r := ' '
			if i < len(text) {
				r = text[i]
			}
			if i == cur {
				ctx.SetColors(l.CursorFg, l.CursorBg)
				ctx.DrawChar(r)
				ctx.SetColors(l.Fg, l.Bg)
				continue
			}
			ctx.DrawChar(r)
		}
	})
}
