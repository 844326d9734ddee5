package widget

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/lixenwraith/vtframe/layer"
	"github.com/lixenwraith/vtframe/render"
)

// Label draws one line of text at a fixed position
type Label struct {
	layer.WidgetBase

	X, Y   int
	Width  int // Clip width; 0 draws unclipped
	Text   string
	Fg, Bg render.Color
}

// NewLabel creates a white-on-black label
func NewLabel(x, y int, text string) *Label {
	return &Label{X: x, Y: y, Text: text, Fg: render.DefaultForeground, Bg: render.DefaultBackground}
}

// CenterTo positions the label horizontally centered on column cx
func (l *Label) CenterTo(cx, y int) {
	l.X = cx - ansi.StringWidth(l.Text)/2
	if l.X < 0 {
		l.X = 0
	}
	l.Y = y
}

func (l *Label) Draw(ctx *render.Context) {
	ctx.SetCursorPosition(l.X, l.Y)
	ctx.EnterColorContext(l.Fg, l.Bg, func() {
		if l.Width > 0 {
			ctx.DrawText(PadRight(Truncate(l.Text, l.Width), l.Width))
			return
		}
		ctx.DrawText(l.Text)
	})
}
