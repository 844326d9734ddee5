package layer

import (
	"sync"

	"github.com/lixenwraith/vtframe/core"
)

// TaskFunc is invoked once per main-loop tick
type TaskFunc func(fs core.FrameState)

// Task is a named per-tick callback contributed by a layer
type Task struct {
	Name string
	Fn   TaskFunc
}

// Tasks is the global update-task map. Iteration order is unspecified
type Tasks struct {
	mu sync.RWMutex
	m  map[string]TaskFunc

	scratch []TaskFunc
}

// NewTasks creates an empty task map
func NewTasks() *Tasks {
	return &Tasks{m: make(map[string]TaskFunc)}
}

// Add installs fn under key; returns false if the key is taken or fn is nil
func (t *Tasks) Add(key string, fn TaskFunc) bool {
	if fn == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.m[key]; ok {
		return false
	}
	t.m[key] = fn
	return true
}

// Remove deletes key; returns false if absent
func (t *Tasks) Remove(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.m[key]; !ok {
		return false
	}
	delete(t.m, key)
	return true
}

// Has reports whether key is installed
func (t *Tasks) Has(key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.m[key]
	return ok
}

// Len returns the number of installed tasks
func (t *Tasks) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.m)
}

// Keys returns installed keys in unspecified order
func (t *Tasks) Keys() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	keys := make([]string, 0, len(t.m))
	for k := range t.m {
		keys = append(keys, k)
	}
	return keys
}

// Run invokes every task with fs. Tasks may add or remove tasks while running;
// changes take effect on the next Run. Not reentrant
func (t *Tasks) Run(fs core.FrameState) {
	t.mu.RLock()
	t.scratch = t.scratch[:0]
	for _, fn := range t.m {
		t.scratch = append(t.scratch, fn)
	}
	t.mu.RUnlock()

	for i, fn := range t.scratch {
		fn(fs)
		t.scratch[i] = nil
	}
}
