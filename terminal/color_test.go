package terminal

import "testing"

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		c    RGB
		want uint8
	}{
		{RGB{0, 0, 0}, 16},
		{RGB{255, 255, 255}, 231},
		{RGB{255, 0, 0}, 196},
		{RGB{0, 0, 255}, 21},
		{RGB{128, 128, 128}, 244},
	}
	for _, tt := range tests {
		if got := RGBTo256(tt.c); got != tt.want {
			t.Errorf("RGBTo256(%v): expected %d, got %d", tt.c, tt.want, got)
		}
	}
}

func TestParseColorMode(t *testing.T) {
	if ParseColorMode("256") != ColorMode256 {
		t.Error("Expected 256 mode")
	}
	if ParseColorMode("truecolor") != ColorModeTrueColor {
		t.Error("Expected truecolor mode")
	}
}

func TestMemoryTerminal(t *testing.T) {
	m := NewMemory(40, 10)
	m.PushBytes([]byte("q\x1b[A"))

	if !m.KeyAvailable() {
		t.Fatal("Expected queued keys")
	}
	ev, _ := m.ReadKey()
	if ev.Rune != 'q' {
		t.Errorf("Expected 'q', got %+v", ev)
	}
	ev, _ = m.ReadKey()
	if ev.Key != KeyUp {
		t.Errorf("Expected up, got %+v", ev)
	}
	if _, ok := m.ReadKey(); ok {
		t.Error("Expected empty queue")
	}

	m.SetSize(100, 30)
	if w, h := m.Size(); w != 100 || h != 30 {
		t.Errorf("Expected 100x30, got %dx%d", w, h)
	}
}
