//go:build unix

package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// tcellBackend drives /dev/tty through tcell's Tty, leaving decoding to the Parser
type tcellBackend struct {
	tty tcell.Tty

	readOnce sync.Once
	dataCh   chan []byte
	errCh    chan error
}

func newTcellBackend() (Backend, error) {
	tty, err := tcell.NewDevTty()
	if err != nil {
		return nil, fmt.Errorf("open tty: %w", err)
	}
	return &tcellBackend{
		tty:    tty,
		dataCh: make(chan []byte, 16),
		errCh:  make(chan error, 1),
	}, nil
}

func (b *tcellBackend) Init() error {
	if err := b.tty.Start(); err != nil {
		return fmt.Errorf("start tty: %w", err)
	}
	return nil
}

func (b *tcellBackend) Fini() {
	b.tty.NotifyResize(nil)
	b.tty.Drain()
	b.tty.Stop()
}

func (b *tcellBackend) Size() (int, int) {
	ws, err := b.tty.WindowSize()
	if err != nil || ws.Width == 0 {
		return 80, 24
	}
	return ws.Width, ws.Height
}

func (b *tcellBackend) Write(p []byte) error {
	_, err := b.tty.Write(p)
	return err
}

// pump is the only goroutine calling tty.Read; Drain unblocks it on Fini
func (b *tcellBackend) pump() {
	buf := make([]byte, 256)
	for {
		n, err := b.tty.Read(buf)
		if n > 0 {
			ret := make([]byte, n)
			copy(ret, buf[:n])
			b.dataCh <- ret
		}
		if err != nil {
			b.errCh <- err
			return
		}
	}
}

func (b *tcellBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	b.readOnce.Do(func() { go b.pump() })

	select {
	case <-stopCh:
		return nil, nil
	case data := <-b.dataCh:
		return data, nil
	case err := <-b.errCh:
		return nil, err
	}
}

func (b *tcellBackend) SetResizeHandler(handler func(width, height int)) {
	b.tty.NotifyResize(func() {
		w, h := b.Size()
		handler(w, h)
	})
}
