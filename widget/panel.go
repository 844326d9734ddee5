package widget

import (
	"github.com/lixenwraith/vtframe/core"
	"github.com/lixenwraith/vtframe/layer"
	"github.com/lixenwraith/vtframe/render"
)

// Panel draws a bordered, optionally filled and titled box
type Panel struct {
	layer.WidgetBase

	core.Rect
	Title  string
	Style  render.BoxStyle
	Fg, Bg render.Color
	Fill   bool

	// Anchor, when set, recomputes Rect on every layout pass
	Anchor func(d core.Dimensions) core.Rect
}

// NewPanel creates a rounded panel over r
func NewPanel(r core.Rect, title string) *Panel {
	return &Panel{
		Rect:  r,
		Title: title,
		Style: render.BoxRounded,
		Fg:    render.DefaultForeground,
		Bg:    render.DefaultBackground,
	}
}

// Inner returns the area inside the border
func (p *Panel) Inner() core.Rect {
	return core.Rect{X: p.X + 1, Y: p.Y + 1, Width: p.Width - 2, Height: p.Height - 2}
}

func (p *Panel) UpdateLayout(d core.Dimensions) {
	if p.Anchor != nil {
		p.Rect = p.Anchor(d)
	}
}

func (p *Panel) Draw(ctx *render.Context) {
	if p.Width < 2 || p.Height < 2 {
		return
	}
	ctx.EnterColorContext(p.Fg, p.Bg, func() {
		if p.Fill {
			ctx.FillRect(p.X, p.Y, p.Width, p.Height)
		}
		ctx.DrawBoxStyle(p.X, p.Y, p.Width, p.Height, p.Style)
		if p.Title != "" && p.Width > 4 {
			title := " " + Truncate(p.Title, p.Width-4) + " "
			ctx.SetCursorPosition(p.X+2, p.Y)
			ctx.DrawText(title)
		}
	})
}
