package engine

// Pause parks the main loop at the start of its next tick and blocks until it is parked.
// The worker keeps polling. Must not be called from the main loop
func (e *Engine) Pause() {
	e.pauseRequested.Store(true)
	e.metrics.Paused.Store(true)
	for e.running.Load() && !e.paused.Load() {
		e.clock.Sleep(e.pausePoll)
	}
	e.fpsEnabled.Store(false)
}

// Resume releases a paused main loop and restarts the FPS window
func (e *Engine) Resume() {
	e.pauseRequested.Store(false)
	e.iterations.Store(0)
	e.restartWindow.Store(true)
	e.fpsEnabled.Store(true)
	e.paused.Store(false)
	e.metrics.Paused.Store(false)
}

// Paused reports whether the main loop is parked
func (e *Engine) Paused() bool {
	return e.paused.Load()
}

// parkPaused holds the main loop until Resume or SignalExit
func (e *Engine) parkPaused() {
	e.paused.Store(true)
	e.log.Debug("main loop paused")
	for e.running.Load() && e.paused.Load() {
		e.clock.Sleep(e.pausePoll)
	}
	e.log.Debug("main loop resumed")
}
