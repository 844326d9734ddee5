package timing

import "math"

// Initial estimate for a 1ms sleep slice, in seconds
const defaultSleepEstimate = 0.0015

// SleepState tracks the running mean and variance of observed sleep slices.
// One instance per loop; not safe for concurrent use
type SleepState struct {
	Estimate float64
	Mean     float64
	M2       float64
	Count    int64
}

// NewSleepState returns the seeded estimator state
func NewSleepState() SleepState {
	return SleepState{
		Estimate: defaultSleepEstimate,
		Mean:     defaultSleepEstimate,
		Count:    1,
	}
}

// Update folds one observed slice length (seconds) into the state and returns the new estimate
func (s *SleepState) Update(observed float64) float64 {
	if s.Count < 1 {
		*s = NewSleepState()
	}
	delta := observed - s.Mean
	s.Count++
	s.Mean += delta / float64(s.Count)
	s.M2 += delta * (observed - s.Mean)
	stddev := math.Sqrt(s.M2 / float64(s.Count-1))
	s.Estimate = s.Mean + stddev
	return s.Estimate
}

// StdDev returns the current sample standard deviation
func (s *SleepState) StdDev() float64 {
	if s.Count < 2 {
		return 0
	}
	return math.Sqrt(s.M2 / float64(s.Count-1))
}
