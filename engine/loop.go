package engine

import (
	"github.com/lixenwraith/vtframe/layer"
	"github.com/lixenwraith/vtframe/timing"
)

// mainLoop runs ticks until SignalExit, pacing each against the frame period
func (e *Engine) mainLoop() {
	for e.running.Load() {
		start := e.clock.Now()
		e.mainTick()
		if !e.running.Load() {
			return
		}
		period := timing.Period(e.FrameRateLimit())
		e.mainLimit.Limit(timing.Remaining(period, e.clock.Now().Sub(start)), &e.mainSleep)
		e.publishSleepStats(e.mainLimit.Last())
	}
}

// workerLoop polls input and dimensions until SignalExit
func (e *Engine) workerLoop() {
	for e.running.Load() {
		start := e.clock.Now()
		e.workerTick()
		period := timing.Period(e.FrameRateLimit())
		e.workerLimit.Limit(timing.Remaining(period, e.clock.Now().Sub(start)), &e.workerSleep)
	}
}

// workerTick drains available keys into the global queue and the active handle,
// then resamples dimensions
func (e *Engine) workerTick() {
	for e.term.KeyAvailable() {
		ev, ok := e.term.ReadKey()
		if !ok {
			break
		}
		e.queue.Push(ev)
		e.handles.Dispatch(ev)
	}

	d := e.sampleDimensions()
	if d.Different(e.workerDims) {
		e.workerDims = d
		e.dims.Store(&d)
		e.dimsGen.Add(1)
	}
}

// mainTick runs one main-loop iteration and reports whether a frame was produced
func (e *Engine) mainTick() bool {
	e.rollFPSWindow()

	if e.pauseRequested.Load() {
		e.parkPaused()
		if !e.running.Load() {
			return false
		}
	}

	if limit := int64(e.FrameRateLimit()); limit > 0 && e.iterations.Load() >= limit {
		return false
	}

	start := e.clock.Now()

	e.frame.PreviousFPS = e.prevFPS
	e.frame.FPS = e.FPS()
	gen := e.dimsGen.Load()
	e.frame.Dimensions = e.Dimensions()
	e.frame.DimensionsChanged = gen != e.seenGen
	e.seenGen = gen

	if e.frame.Dimensions.Zero() {
		return false
	}

	if e.frame.DimensionsChanged {
		e.term.Clear()
		e.term.SetCursorVisible(false)
		e.frame.Dimensions = e.waitResizeStable()
		e.ctx.Invalidate()
	}

	e.dispatchKey()

	e.tasks.Run(e.frame)

	e.ctx.Preamble()
	active := 0
	e.layers.Each(func(_ int, _ string, l layer.Layer) {
		l.UpdateLayout(e.frame.Dimensions)
		l.Draw(e.ctx)
		active++
	})

	frame := e.ctx.Bytes()
	e.frame.FrameBytes = len(frame)

	if e.dump != nil && e.dump.Pending() > 0 {
		if err := e.dump.Capture(frame); err != nil {
			e.log.Warn("frame dump failed", "err", err)
		}
	}

	changed := e.ctx.Commit()
	if e.forceRedraw.Swap(false) {
		changed = true
	}
	if changed {
		if err := e.term.Write(frame); err != nil {
			e.log.Error("frame write failed", "err", err)
		}
		e.metrics.FramesWrote.Add(1)
	} else {
		e.metrics.FramesSkip.Add(1)
	}
	e.ctx.Store()
	e.ctx.Clear()

	e.iterations.Add(1)

	elapsed := e.clock.Now().Sub(start)
	e.frame.LastFrameTime = float64(elapsed.Microseconds()) / 1000

	e.metrics.FrameMs.Set(e.frame.LastFrameTime)
	e.metrics.FramePeakMs.SetMax(e.frame.LastFrameTime)
	e.metrics.FrameBytes.Store(int64(e.frame.FrameBytes))
	e.metrics.ActiveLayers.Store(int64(active))
	return true
}

// rollFPSWindow publishes the iteration count once per window while not paused
func (e *Engine) rollFPSWindow() {
	if !e.fpsEnabled.Load() {
		return
	}
	now := e.clock.Now()
	if e.restartWindow.Swap(false) || e.windowStart.IsZero() {
		e.windowStart = now
		return
	}
	if now.Sub(e.windowStart) < fpsWindow {
		return
	}
	e.prevFPS = e.FPS()
	e.fps.Store(e.iterations.Swap(0))
	e.metrics.FPS.Store(e.fps.Load())
	e.windowStart = now
}

func (e *Engine) publishSleepStats(s timing.Stats) {
	e.metrics.PowerSaving.Set(s.PowerSavingRatio)
	e.metrics.Spin.Set(s.SpinRatio)
	e.metrics.SleepIters.Store(int64(s.SleepIterations))
	e.metrics.SpinIters.Store(int64(s.SpinIterations))
}
