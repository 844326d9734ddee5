package core

// Dimensions is a snapshot of the console window and buffer size
type Dimensions struct {
	WindowWidth  int
	WindowHeight int
	BufferWidth  int
	BufferHeight int
}

// Different reports whether any field differs
func (d Dimensions) Different(o Dimensions) bool {
	return d != o
}

// HorizontalCenter returns the column at the middle of the window
func (d Dimensions) HorizontalCenter() int {
	return d.WindowWidth / 2
}

// VerticalCenter returns the row at the middle of the window
func (d Dimensions) VerticalCenter() int {
	return d.WindowHeight / 2
}

// Bounds returns the window as a rectangle at the origin
func (d Dimensions) Bounds() Rect {
	return Rect{Width: d.WindowWidth, Height: d.WindowHeight}
}

// Zero reports whether the window has no rows, which happens on some hosts while minimized
func (d Dimensions) Zero() bool {
	return d.WindowHeight == 0
}

// FrameState is the per-tick view of pipeline counters published by the main loop
type FrameState struct {
	FPS               int
	PreviousFPS       int
	LastFrameTime     float64 // milliseconds
	Dimensions        Dimensions
	DimensionsChanged bool
	FrameBytes        int
}
