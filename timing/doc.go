// Package timing paces loops to a target frame period.
//
// A Limiter sleeps in ~1ms slices while the remaining time exceeds a running
// estimate of how long such a slice really takes, then busy-waits the rest.
// The estimate is mean + one standard deviation of observed slice lengths,
// maintained per loop with Welford's online algorithm.
package timing
