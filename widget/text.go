package widget

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// Truncate clips s to width columns with a trailing ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return ellipsis
	}
	return ansi.Truncate(s, width, ellipsis)
}

// TruncateLeft keeps the end of s, prefixing an ellipsis
func TruncateLeft(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	if w <= width {
		return s
	}
	if width == 1 {
		return ellipsis
	}
	return ellipsis + ansi.TruncateLeft(s, w-width+1, "")
}

// PadRight pads s with spaces to width columns
func PadRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// CenterOffset returns the column at which s starts when centered in width
func CenterOffset(s string, width int) int {
	off := (width - ansi.StringWidth(s)) / 2
	if off < 0 {
		return 0
	}
	return off
}
