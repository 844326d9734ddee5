package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
)

// TestBellGracefulDegradation verifies operations don't panic when not initialized
func TestBellGracefulDegradation(t *testing.T) {
	b := NewBell()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Bell operations panicked without initialization: %v", r)
		}
	}()

	b.Ring()
	b.SetVolume(2)
	b.Close()
	if b.Initialized() {
		t.Error("Expected bell to stay uninitialized")
	}
}

// TestBellInitialization tolerates missing audio devices
func TestBellInitialization(t *testing.T) {
	b := NewBell()

	if err := b.Initialize(); err != nil {
		t.Logf("Speaker initialization failed (expected in test environment): %v", err)
		return
	}

	if err := b.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got: %v", err)
	}
	b.Ring()
	b.Close()
}

func TestToneGeneratorEnvelope(t *testing.T) {
	sr := beep.SampleRate(48000)
	g := NewToneGenerator(sr, 880, 1760, 1.0)

	buf := make([][2]float64, sr.N(bellDuration))
	n, ok := g.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Stream returned (%d, %v), want (%d, true)", n, ok, len(buf))
	}
	if g.Err() != nil {
		t.Errorf("unexpected error: %v", g.Err())
	}

	if buf[0][0] != 0 {
		t.Errorf("expected silent first sample, got %f", buf[0][0])
	}

	peakEarly, peakLate := 0.0, 0.0
	for i, s := range buf {
		if s[0] != s[1] {
			t.Fatalf("sample %d not mono: %v", i, s)
		}
		if math.Abs(s[0]) > 1 {
			t.Fatalf("sample %d out of range: %f", i, s[0])
		}
		if i < len(buf)/4 {
			peakEarly = max(peakEarly, math.Abs(s[0]))
		} else if i > 3*len(buf)/4 {
			peakLate = max(peakLate, math.Abs(s[0]))
		}
	}
	if peakLate >= peakEarly {
		t.Errorf("expected decay: early peak %f, late peak %f", peakEarly, peakLate)
	}
}
