package engine

// CoordsFromOffset advances offset cells from (x, y), wrapping at the right window
// edge. A start outside the window yields (0, 0)
func (e *Engine) CoordsFromOffset(offset, x, y int) (int, int) {
	d := e.Dimensions()
	return coordsFromOffset(d.WindowWidth, d.WindowHeight, offset, x, y)
}

func coordsFromOffset(width, height, offset, x, y int) (int, int) {
	if x < 0 || x >= width || y < 0 || y >= height {
		return 0, 0
	}
	if offset <= 0 {
		return x, y
	}
	linear := y*width + x + offset
	return linear % width, linear / width
}

// DumpFrames appends the next n frames to the dump writer. No-op without one
func (e *Engine) DumpFrames(n int) bool {
	if e.dump == nil || n <= 0 {
		return false
	}
	e.dump.Request(n)
	e.log.Info("frame dump requested", "frames", n)
	return true
}
