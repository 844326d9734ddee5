package input

import (
	"sync"

	"github.com/lixenwraith/vtframe/terminal"
)

// Handles is a set of named input queues with at most one active receiver
type Handles struct {
	mu     sync.RWMutex
	queues map[string]*Queue
	active string
}

// NewHandles creates an empty handle set
func NewHandles() *Handles {
	return &Handles{queues: make(map[string]*Queue)}
}

// Open creates a handle; returns false if name is empty or already open.
// With activate, the handle becomes the active receiver
func (h *Handles) Open(name string, activate bool) bool {
	if name == "" {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.queues[name]; ok {
		return false
	}
	h.queues[name] = &Queue{}
	if activate {
		h.active = name
	}
	return true
}

// Close removes a handle, clearing the active receiver if it was this one
func (h *Handles) Close(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.queues[name]; !ok {
		return false
	}
	delete(h.queues, name)
	if h.active == name {
		h.active = ""
	}
	return true
}

// Activate makes an open handle the receiver; an empty name deactivates all
func (h *Handles) Activate(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if name == "" {
		h.active = ""
		return true
	}
	if _, ok := h.queues[name]; !ok {
		return false
	}
	h.active = name
	return true
}

// Active returns the current receiver name, empty if none
func (h *Handles) Active() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.active
}

// Has reports whether a handle is open
func (h *Handles) Has(name string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.queues[name]
	return ok
}

// Dispatch copies ev into the active handle's queue. Returns false if there is none
func (h *Handles) Dispatch(ev terminal.Event) bool {
	h.mu.RLock()
	q := h.queues[h.active]
	h.mu.RUnlock()

	if q == nil {
		return false
	}
	q.Push(ev)
	return true
}

// Key dequeues the oldest event for name
func (h *Handles) Key(name string) (terminal.Event, bool) {
	h.mu.RLock()
	q := h.queues[name]
	h.mu.RUnlock()

	if q == nil {
		return terminal.Event{}, false
	}
	return q.Pop()
}

// Available reports whether name has queued events
func (h *Handles) Available(name string) bool {
	h.mu.RLock()
	q := h.queues[name]
	h.mu.RUnlock()
	return q != nil && q.Len() > 0
}
