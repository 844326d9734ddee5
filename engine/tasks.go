package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vtframe/core"
	"github.com/lixenwraith/vtframe/layer"
)

// AddUpdateTask installs fn under key; false if the key is taken
func (e *Engine) AddUpdateTask(key string, fn layer.TaskFunc) bool {
	return e.tasks.Add(key, fn)
}

// RemoveUpdateTask removes key; false if absent
func (e *Engine) RemoveUpdateTask(key string) bool {
	return e.tasks.Remove(key)
}

// HasUpdateTask reports whether key is installed
func (e *Engine) HasUpdateTask(key string) bool {
	return e.tasks.Has(key)
}

// After runs fn on the main loop once d has elapsed, through a self-removing update
// task. The returned key cancels it with RemoveUpdateTask
func (e *Engine) After(d time.Duration, fn func()) string {
	key := "Engine.After." + uuid.NewString()
	deadline := e.clock.Now().Add(d)
	e.tasks.Add(key, func(core.FrameState) {
		if e.clock.Now().Before(deadline) {
			return
		}
		e.tasks.Remove(key)
		fn()
	})
	return key
}
