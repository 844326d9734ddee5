package render

import (
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vtframe/terminal"
)

// Color is an xterm-256 palette index
type Color uint8

// Base palette entries
const (
	Black       Color = 0
	DarkRed     Color = 1
	DarkGreen   Color = 2
	DarkYellow  Color = 3
	DarkBlue    Color = 4
	DarkMagenta Color = 5
	DarkCyan    Color = 6
	DarkGray    Color = 7
	Gray        Color = 8
	Red         Color = 9
	Green       Color = 10
	Yellow      Color = 11
	Blue        Color = 12
	Magenta     Color = 13
	Cyan        Color = 14
	White       Color = 15
)

// Default register values after ResetColors
const (
	DefaultForeground = White
	DefaultBackground = Black
)

// RGBColor maps a 24-bit color to the nearest palette index
func RGBColor(r, g, b uint8) Color {
	return Color(terminal.RGBTo256(terminal.RGB{R: r, G: g, B: b}))
}

// ParseColor accepts "#rrggbb" / "#rgb" hex or a decimal palette index
func ParseColor(s string) (Color, error) {
	if idx, err := strconv.Atoi(s); err == nil {
		if idx < 0 || idx > 255 {
			return 0, fmt.Errorf("palette index %d out of range", idx)
		}
		return Color(idx), nil
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGBColor(r, g, b), nil
}

// Blend mixes two hex colors in Lab space and returns the nearest palette entry, t in [0,1]
func Blend(from, to string, t float64) (Color, error) {
	a, err := colorful.Hex(from)
	if err != nil {
		return 0, err
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return 0, err
	}
	r, g, bl := a.BlendLab(b, t).Clamped().RGB255()
	return RGBColor(r, g, bl), nil
}
