package core

// Rect is a rectangular region in cell coordinates
type Rect struct {
	X, Y          int // Top-left corner
	Width, Height int
}

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Collides reports whether two rectangles overlap
func (r Rect) Collides(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Center returns a rectangle of the given size centered inside r
func (r Rect) Center(width, height int) Rect {
	return Rect{
		X:      r.X + (r.Width-width)/2,
		Y:      r.Y + (r.Height-height)/2,
		Width:  width,
		Height: height,
	}
}
