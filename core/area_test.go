package core

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 2}
	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d): expected %v, got %v", tt.x, tt.y, tt.want, got)
		}
	}
}

func TestRectCollides(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 4, Height: 4}
	if !a.Collides(Rect{X: 3, Y: 3, Width: 2, Height: 2}) {
		t.Error("Expected overlapping rects to collide")
	}
	if a.Collides(Rect{X: 4, Y: 0, Width: 2, Height: 2}) {
		t.Error("Expected adjacent rects not to collide")
	}
}

func TestRectCenter(t *testing.T) {
	c := Rect{Width: 80, Height: 24}.Center(20, 6)
	if c.X != 30 || c.Y != 9 {
		t.Errorf("Expected (30,9), got (%d,%d)", c.X, c.Y)
	}
}

func TestDimensionsDifferent(t *testing.T) {
	a := Dimensions{WindowWidth: 80, WindowHeight: 24, BufferWidth: 80, BufferHeight: 24}
	b := a
	if a.Different(b) {
		t.Error("Expected identical dimensions to compare equal")
	}
	b.BufferHeight = 1000
	if !a.Different(b) {
		t.Error("Expected buffer height change to be detected")
	}
	if a.HorizontalCenter() != 40 || a.VerticalCenter() != 12 {
		t.Errorf("Expected center (40,12), got (%d,%d)", a.HorizontalCenter(), a.VerticalCenter())
	}
}
