package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"pkt.systems/pslog"

	"github.com/lixenwraith/vtframe/core"
	"github.com/lixenwraith/vtframe/input"
	"github.com/lixenwraith/vtframe/layer"
	"github.com/lixenwraith/vtframe/render"
	"github.com/lixenwraith/vtframe/status"
	"github.com/lixenwraith/vtframe/terminal"
	"github.com/lixenwraith/vtframe/timing"
)

var (
	ErrAlreadyInitialized = errors.New("engine already initialized")
	ErrNotInitialized     = errors.New("engine not initialized")
	ErrAlreadyRunning     = errors.New("engine already running")
	ErrStopped            = errors.New("engine stopped")
)

// Engine is the frame pipeline context: terminal, loops, layers, tasks and input
type Engine struct {
	term        terminal.Terminal
	clock       timing.Clock
	precision   timing.Precision
	log         pslog.Logger
	explicitLog bool

	layerCount     int
	resizePoll     time.Duration
	resizeStable   time.Duration
	pausePoll      time.Duration
	elideBlankRows bool
	frameRateLimit atomic.Int64

	// Main loop state
	ctx       *render.Context
	tasks     *layer.Tasks
	focus     *layer.Focus
	layers    *layer.Registry
	frame     core.FrameState
	mainSleep timing.SleepState
	mainLimit *timing.Limiter

	keysMu     sync.RWMutex
	globalKeys input.Bindings
	queue      input.Queue
	handles    *input.Handles

	// Worker state
	workerSleep timing.SleepState
	workerLimit *timing.Limiter
	workerDims  core.Dimensions

	// Worker → main loop. dimsGen increments after every stored change; the main
	// loop compares it with seenGen
	dims    atomic.Pointer[core.Dimensions]
	dimsGen atomic.Uint64
	seenGen uint64

	// FPS window, owned by the main loop
	iterations  atomic.Int64
	fps         atomic.Int64
	prevFPS     int
	windowStart time.Time
	fpsEnabled  atomic.Bool

	// restartWindow asks the main loop to reset windowStart
	restartWindow atomic.Bool

	initialized    atomic.Bool
	running        atomic.Bool
	pauseRequested atomic.Bool
	paused         atomic.Bool
	forceRedraw    atomic.Bool
	stop           chan struct{}
	stopOnce       sync.Once

	dumpWriter io.Writer
	dump       *render.FrameDump
	ringer     Ringer

	status  *status.Registry
	metrics *status.FrameMetrics
}

// New creates an engine over term. Call Init before Run
func New(term terminal.Terminal, opts ...Option) *Engine {
	e := &Engine{
		term:         term,
		clock:        timing.RealClock(),
		precision:    timing.NoPrecision(),
		layerCount:   DefaultLayerCount,
		resizePoll:   DefaultResizePoll,
		resizeStable: DefaultResizeStable,
		pausePoll:    DefaultPausePoll,
		globalKeys:   input.Bindings{},
		handles:      input.NewHandles(),
		mainSleep:    timing.NewSleepState(),
		workerSleep:  timing.NewSleepState(),
		stop:         make(chan struct{}),
	}
	e.frameRateLimit.Store(DefaultFrameRateLimit)
	for _, opt := range opts {
		opt(e)
	}

	if e.log == nil {
		e.log = pslog.NewWithOptions(io.Discard, pslog.Options{Mode: pslog.ModeStructured, NoColor: true})
	}
	if e.status == nil {
		e.status = status.NewRegistry()
	}
	e.metrics = status.NewFrameMetrics(e.status)

	e.ctx = render.NewContext()
	e.ctx.ElideBlankRows = e.elideBlankRows
	e.tasks = layer.NewTasks()
	e.focus = &layer.Focus{}
	e.layers = layer.NewRegistry(e.layerCount, e.tasks, e.focus)

	onPrecisionErr := timing.WithPrecisionError(func(err error) {
		e.log.Warn("precision timing unavailable", "err", err)
	})
	e.mainLimit = timing.NewLimiter(timing.WithClock(e.clock), timing.WithPrecision(e.precision), onPrecisionErr)
	e.workerLimit = timing.NewLimiter(timing.WithClock(e.clock), timing.WithPrecision(e.precision), onPrecisionErr)

	if e.dumpWriter != nil {
		e.dump = render.NewFrameDump(e.dumpWriter)
	}
	return e
}

// Init prepares the terminal and takes the first dimension sample.
// A second call returns ErrAlreadyInitialized
func (e *Engine) Init() error {
	if !e.initialized.CompareAndSwap(false, true) {
		return ErrAlreadyInitialized
	}
	if err := e.term.Init(); err != nil {
		e.initialized.Store(false)
		return fmt.Errorf("init terminal: %w", err)
	}
	if err := e.term.SetCursorVisible(false); err != nil {
		e.log.Warn("hide cursor failed", "err", err)
	}

	d := e.sampleDimensions()
	e.workerDims = d
	e.dims.Store(&d)
	e.frame.Dimensions = d

	e.log.Info("engine initialized",
		"width", d.WindowWidth,
		"height", d.WindowHeight,
		"layers", e.layerCount,
		"frame_rate_limit", e.FrameRateLimit(),
	)
	return nil
}

// MustInit calls Init and panics on failure
func (e *Engine) MustInit() {
	if err := e.Init(); err != nil {
		panic(err)
	}
}

// Run starts the worker and main loops and blocks until SignalExit is called or ctx
// is cancelled. On return the cursor is visible, colors are reset and the screen is cleared
func (e *Engine) Run(ctx context.Context) error {
	if !e.initialized.Load() {
		return ErrNotInitialized
	}
	select {
	case <-e.stop:
		return ErrStopped
	default:
	}
	if !e.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	if !e.explicitLog {
		e.log = pslog.Ctx(ctx)
	}

	e.windowStart = e.clock.Now()
	e.fpsEnabled.Store(true)
	e.log.Info("engine running")

	var g errgroup.Group
	g.Go(core.Guard(func() error {
		e.mainLoop()
		return nil
	}))
	g.Go(core.Guard(func() error {
		e.workerLoop()
		return nil
	}))
	g.Go(func() error {
		select {
		case <-ctx.Done():
			e.SignalExit()
		case <-e.stop:
		}
		return nil
	})

	err := g.Wait()

	e.term.SetCursorVisible(true)
	e.term.ResetColor()
	e.term.Clear()
	e.log.Info("engine stopped", "err", err)
	return err
}

// SignalExit asks both loops to finish their current iteration and return
func (e *Engine) SignalExit() {
	e.stopOnce.Do(func() {
		e.running.Store(false)
		close(e.stop)
	})
}

// Running reports whether the loops are active
func (e *Engine) Running() bool {
	return e.running.Load()
}

// FrameRateLimit returns ticks per second; 0 is uncapped
func (e *Engine) FrameRateLimit() int {
	return int(e.frameRateLimit.Load())
}

// SetFrameRateLimit changes the tick rate of both loops; negative values are treated as 0
func (e *Engine) SetFrameRateLimit(limit int) {
	e.frameRateLimit.Store(int64(max(limit, 0)))
}

// FPS returns the main-loop iteration count of the last completed one-second window
func (e *Engine) FPS() int {
	return int(e.fps.Load())
}

// Dimensions returns the worker's latest sample
func (e *Engine) Dimensions() core.Dimensions {
	if d := e.dims.Load(); d != nil {
		return *d
	}
	return core.Dimensions{}
}

// Layers returns the layer registry. Mutate it only from the main loop
func (e *Engine) Layers() *layer.Registry {
	return e.layers
}

// Focus returns the focus tracker
func (e *Engine) Focus() *layer.Focus {
	return e.focus
}

// Status returns the metrics registry
func (e *Engine) Status() *status.Registry {
	return e.status
}

// Terminal returns the underlying console
func (e *Engine) Terminal() terminal.Terminal {
	return e.term
}

// sampleDimensions reads the console size. Unix consoles have no separate scrollback
// buffer size, so buffer dimensions mirror the window
func (e *Engine) sampleDimensions() core.Dimensions {
	w, h := e.term.Size()
	return core.Dimensions{
		WindowWidth:  w,
		WindowHeight: h,
		BufferWidth:  w,
		BufferHeight: h,
	}
}
