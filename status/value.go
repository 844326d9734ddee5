package status

import (
	"math"
	"sync/atomic"

	"github.com/mattn/go-runewidth"
)

// MaxStringWidth caps string metrics in terminal columns so they fit a metrics row
const MaxStringWidth = 24

// AtomicFloat is a float64 stored as its IEEE bits. The zero value is 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add returns the updated value
func (f *AtomicFloat) Add(delta float64) float64 {
	return f.update(func(cur float64) (float64, bool) { return cur + delta, true })
}

// SetMax keeps the larger of val and the stored value, returning the result
func (f *AtomicFloat) SetMax(val float64) float64 {
	return f.update(func(cur float64) (float64, bool) { return val, val > cur })
}

// update applies fn in a CAS loop; fn returns false to leave the value as is
func (f *AtomicFloat) update(fn func(cur float64) (float64, bool)) float64 {
	for {
		old := f.bits.Load()
		cur := math.Float64frombits(old)
		next, ok := fn(cur)
		if !ok {
			return cur
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// AtomicString holds a short label. The zero value is ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store truncates val to MaxStringWidth columns
func (s *AtomicString) Store(val string) {
	if runewidth.StringWidth(val) > MaxStringWidth {
		val = runewidth.Truncate(val, MaxStringWidth, "")
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
