// Package audio plays the optional modal bell through the system speaker.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	bellDuration = 180 * time.Millisecond
	bellFreq     = 880.0 // A5
	bellOvertone = 1760.0
)

// Bell plays a short two-partial tone. Every method is a no-op until Initialize succeeds
type Bell struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewBell creates an uninitialized bell
func NewBell() *Bell {
	return &Bell{
		mixer:  &beep.Mixer{},
		volume: 0.5,
	}
}

// Initialize opens the speaker. Safe to call more than once
func (b *Bell) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// SetVolume scales subsequent tones; clamped to [0, 1]
func (b *Bell) SetVolume(v float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.volume = min(max(v, 0), 1)
}

// Ring queues one bell tone on the mixer
func (b *Bell) Ring() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}

	tone := NewToneGenerator(sampleRate, bellFreq, bellOvertone, b.volume)
	speaker.Lock()
	b.mixer.Add(beep.Take(sampleRate.N(bellDuration), tone))
	speaker.Unlock()
}

// Initialized reports whether the speaker is open
func (b *Bell) Initialized() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.initialized
}

// Close silences queued tones and closes the speaker
func (b *Bell) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	b.initialized = false
}
