package timing

import (
	"sync"
	"time"
)

// Clock is the monotonic time source used by the limiter
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time        { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

// RealClock returns the wall clock
func RealClock() Clock { return realClock{} }

// FakeClock is a deterministic Clock. Sleep advances by the requested duration plus
// SleepOverhead; every Now call advances by NowStep so spin loops terminate
type FakeClock struct {
	mu            sync.Mutex
	now           time.Time
	SleepOverhead time.Duration
	NowStep       time.Duration
	sleeps        int
}

// NewFakeClock creates a FakeClock starting at an arbitrary fixed instant
func NewFakeClock() *FakeClock {
	return &FakeClock{
		now:     time.Unix(1_700_000_000, 0),
		NowStep: time.Microsecond,
	}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.NowStep)
	return c.now
}

func (c *FakeClock) Sleep(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d + c.SleepOverhead)
	c.sleeps++
	c.mu.Unlock()
}

// Advance moves the clock forward without counting a sleep
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Sleeps returns the number of Sleep calls
func (c *FakeClock) Sleeps() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sleeps
}
