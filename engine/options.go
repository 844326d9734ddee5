package engine

import (
	"io"
	"time"

	"pkt.systems/pslog"

	"github.com/lixenwraith/vtframe/status"
	"github.com/lixenwraith/vtframe/timing"
)

// Tunable poll intervals
const (
	DefaultResizePoll     = 10 * time.Millisecond
	DefaultResizeStable   = 100 * time.Millisecond
	DefaultPausePoll      = 25 * time.Millisecond
	DefaultFrameRateLimit = 60
	DefaultLayerCount     = 3

	fpsWindow = time.Second
)

// Ringer plays an audible alert
type Ringer interface {
	Ring()
}

// Option configures an Engine
type Option func(*Engine)

// WithClock replaces the wall clock for both loops and the limiters
func WithClock(c timing.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithPrecision sets the scheduler-precision backend used during coarse sleeps
func WithPrecision(p timing.Precision) Option {
	return func(e *Engine) { e.precision = p }
}

// WithFrameRateLimit sets ticks per second for both loops; 0 is uncapped
func WithFrameRateLimit(limit int) Option {
	return func(e *Engine) { e.frameRateLimit.Store(int64(max(limit, 0))) }
}

// WithLayerCount sets the number of z-slots
func WithLayerCount(n int) Option {
	return func(e *Engine) { e.layerCount = n }
}

// WithResizeDebounce sets the debounce poll interval and stability window
func WithResizeDebounce(poll, stable time.Duration) Option {
	return func(e *Engine) {
		e.resizePoll = poll
		e.resizeStable = stable
	}
}

// WithPausePoll sets the pause-wait poll interval
func WithPausePoll(d time.Duration) Option {
	return func(e *Engine) { e.pausePoll = d }
}

// WithElideBlankRows enables whitespace-row elision in DrawCharBuffer.
// Lower layers show through rows a higher layer leaves blank
func WithElideBlankRows(on bool) Option {
	return func(e *Engine) { e.elideBlankRows = on }
}

// WithLogger sets the engine logger; Run also picks one up from its context
func WithLogger(l pslog.Logger) Option {
	return func(e *Engine) {
		e.log = l
		e.explicitLog = l != nil
	}
}

// WithStatus publishes pipeline metrics into r
func WithStatus(r *status.Registry) Option {
	return func(e *Engine) { e.status = r }
}

// WithDumpWriter sets the destination for DumpFrames
func WithDumpWriter(w io.Writer) Option {
	return func(e *Engine) { e.dumpWriter = w }
}

// WithRinger plays r when a modal opens
func WithRinger(r Ringer) Option {
	return func(e *Engine) { e.ringer = r }
}
