//go:build linux || darwin

package terminal

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
)

func openPTY(t *testing.T, cols, rows uint16) (ptmx, tty *os.File) {
	t.Helper()
	m, s, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	if err := pty.Setsize(s, &pty.Winsize{Cols: cols, Rows: rows}); err != nil {
		m.Close()
		s.Close()
		t.Fatalf("setsize: %v", err)
	}
	t.Cleanup(func() {
		s.Close()
		m.Close()
	})
	return m, s
}

func TestUnixBackendSizeAndRead(t *testing.T) {
	m, s := openPTY(t, 100, 30)

	b := NewFileBackend(s, s)
	if err := b.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer b.Fini()

	if w, h := b.Size(); w != 100 || h != 30 {
		t.Errorf("Expected 100x30, got %dx%d", w, h)
	}

	if _, err := m.Write([]byte("\x1b[1;5D")); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := b.Read(make(chan struct{}))
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var p Parser
	evs := p.Feed(data)
	if len(evs) != 1 || evs[0].Key != KeyLeft || evs[0].Modifiers != ModCtrl {
		t.Errorf("Expected ctrl+left, got %+v from %q", evs, data)
	}
}

func TestUnixBackendReadStops(t *testing.T) {
	_, s := openPTY(t, 80, 24)

	b := NewFileBackend(s, s)
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		data, err := b.Read(stop)
		if data != nil || err != nil {
			t.Errorf("Expected nil read on stop, got %q, %v", data, err)
		}
	}()

	close(stop)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Read did not return after stop")
	}
}

func TestTerminalOverPTY(t *testing.T) {
	m, s := openPTY(t, 120, 40)
	go io.Copy(io.Discard, m)

	term := New(NewFileBackend(s, s))
	if err := term.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer term.Fini()

	if w, h := term.Size(); w != 120 || h != 40 {
		t.Errorf("Expected 120x40, got %dx%d", w, h)
	}

	m.Write([]byte("z"))

	deadline := time.Now().Add(2 * time.Second)
	for !term.KeyAvailable() {
		if time.Now().After(deadline) {
			t.Fatal("Key never became available")
		}
		time.Sleep(5 * time.Millisecond)
	}

	ev, ok := term.ReadKey()
	if !ok || ev.Rune != 'z' {
		t.Errorf("Expected 'z', got %+v", ev)
	}
}
