//go:build unix

package terminal

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

const (
	readBufSize = 4096
	// pollMs bounds how long Read waits before rechecking its stop channel
	pollMs = 50

	fallbackWidth  = 80
	fallbackHeight = 24
)

// unixBackend puts a tty into raw mode with x/term and reads it with poll(2)
type unixBackend struct {
	in, out     *os.File
	inFd, outFd int
	saved       *term.State
	buf         []byte

	onResize atomic.Pointer[func(width, height int)]
	winch    chan os.Signal
	winchEnd chan struct{}
}

func newBackend() Backend {
	return NewFileBackend(os.Stdin, os.Stdout)
}

// NewFileBackend creates a raw-mode backend over explicit files, e.g. a pty pair
func NewFileBackend(in, out *os.File) Backend {
	return &unixBackend{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
	}
}

func (b *unixBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return fmt.Errorf("input fd %d is not a terminal", b.inFd)
	}
	saved, err := term.MakeRaw(b.inFd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	b.saved = saved
	b.watchResize()
	return nil
}

func (b *unixBackend) Fini() {
	if b.winch != nil {
		signal.Stop(b.winch)
		close(b.winchEnd)
		b.winch = nil
	}
	if b.saved != nil {
		term.Restore(b.inFd, b.saved)
		b.saved = nil
	}
}

// watchResize forwards SIGWINCH to whichever handler is installed at the time
func (b *unixBackend) watchResize() {
	b.winch = make(chan os.Signal, 1)
	b.winchEnd = make(chan struct{})
	signal.Notify(b.winch, syscall.SIGWINCH)

	sig, end := b.winch, b.winchEnd
	go func() {
		for {
			select {
			case <-end:
				return
			case <-sig:
				if fn := b.onResize.Load(); fn != nil {
					(*fn)(b.Size())
				}
			}
		}
	}()
}

func (b *unixBackend) SetResizeHandler(handler func(width, height int)) {
	b.onResize.Store(&handler)
}

// Size queries the output fd, then the input fd, then falls back to 80x24
func (b *unixBackend) Size() (int, int) {
	for _, fd := range [2]int{b.outFd, b.inFd} {
		if ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ); err == nil && ws.Col > 0 {
			return int(ws.Col), int(ws.Row)
		}
	}
	return fallbackWidth, fallbackHeight
}

func (b *unixBackend) Write(p []byte) error {
	_, err := b.out.Write(p)
	return err
}

func (b *unixBackend) Read(stop <-chan struct{}) ([]byte, error) {
	if b.buf == nil {
		b.buf = make([]byte, readBufSize)
	}

	for {
		select {
		case <-stop:
			return nil, nil
		default:
		}

		ready, err := b.readable(pollMs)
		if err != nil {
			return nil, err
		}
		if !ready {
			continue
		}

		n, err := unix.Read(b.inFd, b.buf)
		switch {
		case errors.Is(err, unix.EINTR), errors.Is(err, unix.EAGAIN):
			continue
		case err != nil:
			return nil, fmt.Errorf("read input: %w", err)
		case n == 0:
			return nil, nil
		}
		return bytes.Clone(b.buf[:n]), nil
	}
}

// readable waits up to timeoutMs for input or hangup on the input fd
func (b *unixBackend) readable(timeoutMs int) (bool, error) {
	fds := [1]unix.PollFd{{Fd: int32(b.inFd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds[:], timeoutMs)
	if errors.Is(err, unix.EINTR) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("poll input: %w", err)
	}
	return n > 0 && fds[0].Revents&(unix.POLLIN|unix.POLLHUP) != 0, nil
}
