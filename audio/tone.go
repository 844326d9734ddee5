package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const toneAttack = 5 * time.Millisecond

// ToneGenerator streams a fundamental plus one overtone with a fast attack and exponential decay
type ToneGenerator struct {
	sr       beep.SampleRate
	freq     float64
	overtone float64
	volume   float64
	attack   int
	pos      int
}

// NewToneGenerator creates a tone; overtone 0 disables the second partial
func NewToneGenerator(sr beep.SampleRate, freq, overtone, volume float64) *ToneGenerator {
	return &ToneGenerator{
		sr:       sr,
		freq:     freq,
		overtone: overtone,
		volume:   volume,
		attack:   max(sr.N(toneAttack), 1),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		env := math.Exp(-t * 12)
		if g.pos < g.attack {
			env *= float64(g.pos) / float64(g.attack)
		}

		// 70% fundamental, 30% overtone
		sample := 0.7 * math.Sin(2*math.Pi*g.freq*t)
		if g.overtone > 0 {
			sample += 0.3 * math.Sin(2*math.Pi*g.overtone*t)
		}
		sample *= env * g.volume

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
