package render

// BoxStyle holds the glyphs used by DrawBox
type BoxStyle struct {
	TopLeft, TopRight       rune
	BottomLeft, BottomRight rune
	Horizontal, Vertical    rune
}

var (
	// BoxASCII draws corners with slashes so any font renders it
	BoxASCII = BoxStyle{
		TopLeft: '/', TopRight: '\\',
		BottomLeft: '\\', BottomRight: '/',
		Horizontal: '-', Vertical: '|',
	}

	BoxSingle = BoxStyle{
		TopLeft: '┌', TopRight: '┐',
		BottomLeft: '└', BottomRight: '┘',
		Horizontal: '─', Vertical: '│',
	}

	BoxRounded = BoxStyle{
		TopLeft: '╭', TopRight: '╮',
		BottomLeft: '╰', BottomRight: '╯',
		Horizontal: '─', Vertical: '│',
	}
)
