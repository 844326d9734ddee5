package timing

import "time"

// sleepSlice is the coarse sleep requested per power-saving iteration
const sleepSlice = time.Millisecond

// Stats describes the last Limit call
type Stats struct {
	PowerSavingRatio float64 // share of the wait spent in coarse sleeps
	SpinRatio        float64 // share of the wait spent busy-waiting
	SleepIterations  int
	SpinIterations   int
}

// Limiter waits out the remainder of a frame period with sub-millisecond accuracy.
// A Limiter is owned by one loop goroutine
type Limiter struct {
	clock     Clock
	precision Precision
	onError   func(error)
	errShown  bool
	last      Stats
}

// Option configures a Limiter
type Option func(*Limiter)

// WithClock replaces the wall clock
func WithClock(c Clock) Option {
	return func(l *Limiter) { l.clock = c }
}

// WithPrecision sets the precision-timing backend
func WithPrecision(p Precision) Option {
	return func(l *Limiter) { l.precision = p }
}

// WithPrecisionError registers a callback for the first precision backend failure
func WithPrecisionError(fn func(error)) Option {
	return func(l *Limiter) { l.onError = fn }
}

// NewLimiter creates a limiter using the wall clock and no precision elevation by default
func NewLimiter(opts ...Option) *Limiter {
	l := &Limiter{
		clock:     realClock{},
		precision: noopPrecision{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Limit blocks for remaining, updating s with every observed coarse sleep.
// Non-positive remaining returns immediately
func (l *Limiter) Limit(remaining time.Duration, s *SleepState) {
	if remaining <= 0 {
		return
	}
	if s.Count < 1 {
		*s = NewSleepState()
	}

	seconds := remaining.Seconds()
	sleeps := 0

	psStart := l.clock.Now()
	if seconds > s.Estimate {
		restore, err := l.precision.Enable()
		if err != nil && !l.errShown {
			l.errShown = true
			if l.onError != nil {
				l.onError(err)
			}
		}
		for seconds > s.Estimate {
			start := l.clock.Now()
			l.clock.Sleep(sleepSlice)
			observed := l.clock.Now().Sub(start).Seconds()
			seconds -= observed
			s.Update(observed)
			sleeps++
		}
		restore()
	}
	psTime := l.clock.Now().Sub(psStart).Seconds()

	spins := 0
	spinStart := l.clock.Now()
	for l.clock.Now().Sub(spinStart).Seconds() < seconds {
		spins++
	}
	spinTime := l.clock.Now().Sub(spinStart).Seconds()

	total := psTime + spinTime
	if total > 0 {
		l.last = Stats{
			PowerSavingRatio: psTime / total,
			SpinRatio:        spinTime / total,
			SleepIterations:  sleeps,
			SpinIterations:   spins,
		}
	}
}

// Last returns statistics for the most recent Limit call
func (l *Limiter) Last() Stats {
	return l.last
}

// Remaining computes how long to wait for a tick that started at start to fill period.
// A zero period means uncapped and yields zero
func Remaining(period, elapsed time.Duration) time.Duration {
	if period <= 0 {
		return 0
	}
	return period - elapsed
}

// Period converts a frames-per-second limit to a tick period; zero or negative is uncapped
func Period(limit int) time.Duration {
	if limit <= 0 {
		return 0
	}
	return time.Second / time.Duration(limit)
}
