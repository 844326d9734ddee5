package engine

import (
	"time"

	"github.com/lixenwraith/vtframe/core"
	"github.com/lixenwraith/vtframe/timing"
)

// waitResizeStable blocks the main loop until the console size has held still for the
// stability window. Screen clearing and cursor hiding are done by the caller
func (e *Engine) waitResizeStable() core.Dimensions {
	e.metrics.Resizing.Store(true)
	defer e.metrics.Resizing.Store(false)

	from := e.frame.Dimensions
	d := debounce(e.clock, e.sampleDimensions, e.resizePoll, e.resizeStable, e.running.Load)

	// Acknowledge the worker's changes only if its latest sample is the settled one
	gen := e.dimsGen.Load()
	if cur := e.dims.Load(); cur != nil && *cur == d {
		e.seenGen = gen
	}

	e.log.Debug("resize settled",
		"from_width", from.WindowWidth,
		"from_height", from.WindowHeight,
		"width", d.WindowWidth,
		"height", d.WindowHeight,
	)
	return d
}

// debounce polls sample every poll interval and returns once the value has been
// unchanged for stable. Any change restarts the window. It also returns when alive
// reports false
func debounce(clock timing.Clock, sample func() core.Dimensions, poll, stable time.Duration, alive func() bool) core.Dimensions {
	last := sample()
	since := clock.Now()
	for {
		clock.Sleep(poll)

		cur := sample()
		now := clock.Now()
		if cur.Different(last) {
			last = cur
			since = now
		}
		if now.Sub(since) >= stable || !alive() {
			return last
		}
	}
}
