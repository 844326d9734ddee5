package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"
)

// escapeTimeout is the quiet period after which a buffered lone ESC is taken as the Escape key
const escapeTimeout = 50 * time.Millisecond

// Terminal is the console surface consumed by the frame pipeline.
// Key and size methods are safe for concurrent use; Write is called from one goroutine at a time
type Terminal interface {
	// Init enters raw mode and the alternate screen, hides the cursor and starts reading input
	Init() error
	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current window dimensions in cells
	Size() (width, height int)

	// KeyAvailable reports whether ReadKey would return an event
	KeyAvailable() bool
	// ReadKey dequeues the oldest decoded key event without blocking
	ReadKey() (Event, bool)

	Write(p []byte) error
	Clear() error
	SetCursorVisible(visible bool) error
	// ResetColor restores the default white on black pair
	ResetColor() error
	// Bell writes BEL
	Bell() error
}

// termImpl implements Terminal using the Backend interface
type termImpl struct {
	backend Backend

	width  atomic.Int32
	height atomic.Int32

	inMu      sync.Mutex
	parser    Parser
	queue     []Event
	lastInput time.Time

	stopCh chan struct{}
	doneCh chan struct{}

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New wraps a backend as a Terminal
func New(backend Backend) Terminal {
	return &termImpl{backend: backend}
}

func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	w, h := t.backend.Size()
	t.storeSize(w, h)
	t.backend.SetResizeHandler(t.storeSize)

	if err := t.backend.Write(enterSequence()); err != nil {
		t.backend.Fini()
		return fmt.Errorf("enter alternate screen: %w", err)
	}

	t.stopCh = make(chan struct{})
	t.doneCh = make(chan struct{})
	go t.readLoop()

	t.initialized = true
	return nil
}

func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	close(t.stopCh)
	<-t.doneCh

	t.backend.Write(exitSequence())
	t.backend.Fini()

	t.finalized = true
}

func (t *termImpl) storeSize(w, h int) {
	t.width.Store(int32(w))
	t.height.Store(int32(h))
}

func (t *termImpl) Size() (int, int) {
	return int(t.width.Load()), int(t.height.Load())
}

// readLoop is the input reading goroutine
func (t *termImpl) readLoop() {
	defer close(t.doneCh)

	defer func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mINPUT READER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		data, err := t.backend.Read(t.stopCh)
		if err != nil || len(data) == 0 {
			return
		}

		t.inMu.Lock()
		t.queue = append(t.queue, t.parser.Feed(data)...)
		t.lastInput = time.Now()
		t.inMu.Unlock()
	}
}

// flushStaleLocked releases a lone ESC once no follow-up bytes arrived within escapeTimeout
func (t *termImpl) flushStaleLocked() {
	if t.parser.Pending() && time.Since(t.lastInput) >= escapeTimeout {
		t.queue = append(t.queue, t.parser.Flush()...)
	}
}

func (t *termImpl) KeyAvailable() bool {
	t.inMu.Lock()
	defer t.inMu.Unlock()
	t.flushStaleLocked()
	return len(t.queue) > 0
}

func (t *termImpl) ReadKey() (Event, bool) {
	t.inMu.Lock()
	defer t.inMu.Unlock()
	t.flushStaleLocked()
	if len(t.queue) == 0 {
		return Event{}, false
	}
	ev := t.queue[0]
	t.queue[0] = Event{}
	t.queue = t.queue[1:]
	return ev, true
}

func (t *termImpl) Write(p []byte) error {
	return t.backend.Write(p)
}

func (t *termImpl) Clear() error {
	return t.backend.Write(csiClear)
}

func (t *termImpl) SetCursorVisible(visible bool) error {
	if visible {
		return t.backend.Write(csiCursorShow)
	}
	return t.backend.Write(csiCursorHide)
}

func (t *termImpl) ResetColor() error {
	return t.backend.Write(csiDefaultColors)
}

func (t *termImpl) Bell() error {
	return t.backend.Write(bel)
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
