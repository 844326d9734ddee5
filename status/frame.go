package status

import "sync/atomic"

// Metric keys published by the frame pipeline
const (
	KeyFPS          = "frame.fps"
	KeyFrameMs      = "frame.ms"
	KeyFramePeakMs  = "frame.peak_ms"
	KeyFrameBytes   = "frame.bytes"
	KeyFramesWrote  = "frame.written"
	KeyFramesSkip   = "frame.unchanged"
	KeyPowerSaving  = "sleep.powersaving_ratio"
	KeySpin         = "sleep.spin_ratio"
	KeySleepIters   = "sleep.iterations"
	KeySpinIters    = "sleep.spin_iterations"
	KeyPaused       = "engine.paused"
	KeyResizing     = "engine.resizing"
	KeyActiveLayers = "layer.active"
	KeyBackend      = "terminal.backend"
)

// FrameMetrics holds cached pointers into a Registry for the per-tick hot path
type FrameMetrics struct {
	FPS          *atomic.Int64
	FrameMs      *AtomicFloat
	FramePeakMs  *AtomicFloat
	FrameBytes   *atomic.Int64
	FramesWrote  *atomic.Int64
	FramesSkip   *atomic.Int64
	PowerSaving  *AtomicFloat
	Spin         *AtomicFloat
	SleepIters   *atomic.Int64
	SpinIters    *atomic.Int64
	Paused       *atomic.Bool
	Resizing     *atomic.Bool
	ActiveLayers *atomic.Int64
	Backend      *AtomicString
}

// NewFrameMetrics registers the pipeline metrics in r
func NewFrameMetrics(r *Registry) *FrameMetrics {
	return &FrameMetrics{
		FPS:          r.Ints.Get(KeyFPS),
		FrameMs:      r.Floats.Get(KeyFrameMs),
		FramePeakMs:  r.Floats.Get(KeyFramePeakMs),
		FrameBytes:   r.Ints.Get(KeyFrameBytes),
		FramesWrote:  r.Ints.Get(KeyFramesWrote),
		FramesSkip:   r.Ints.Get(KeyFramesSkip),
		PowerSaving:  r.Floats.Get(KeyPowerSaving),
		Spin:         r.Floats.Get(KeySpin),
		SleepIters:   r.Ints.Get(KeySleepIters),
		SpinIters:    r.Ints.Get(KeySpinIters),
		Paused:       r.Bools.Get(KeyPaused),
		Resizing:     r.Bools.Get(KeyResizing),
		ActiveLayers: r.Ints.Get(KeyActiveLayers),
		Backend:      r.Strings.Get(KeyBackend),
	}
}
