package engine

import (
	"github.com/lixenwraith/vtframe/input"
	"github.com/lixenwraith/vtframe/terminal"
)

// OpenInputHandle registers a named key sink; activate also makes it the receiver
func (e *Engine) OpenInputHandle(name string, activate bool) bool {
	return e.handles.Open(name, activate)
}

// CloseInputHandle removes a sink
func (e *Engine) CloseInputHandle(name string) bool {
	return e.handles.Close(name)
}

// ActivateInputHandle makes name the receiver; "" deactivates every handle
func (e *Engine) ActivateInputHandle(name string) bool {
	return e.handles.Activate(name)
}

// HasInputHandle reports whether name is open
func (e *Engine) HasInputHandle(name string) bool {
	return e.handles.Has(name)
}

// ActiveInputHandle returns the receiving handle name
func (e *Engine) ActiveInputHandle() string {
	return e.handles.Active()
}

// Key dequeues the oldest event on handle name
func (e *Engine) Key(name string) (terminal.Event, bool) {
	return e.handles.Key(name)
}

// KeyAvailable reports whether name has queued events
func (e *Engine) KeyAvailable(name string) bool {
	return e.handles.Available(name)
}

// InjectKey queues ev as if the worker had read it
func (e *Engine) InjectKey(ev terminal.Event) {
	e.queue.Push(ev)
	e.handles.Dispatch(ev)
}

// Handles returns the named input sinks, for widgets that pump their own handle
func (e *Engine) Handles() *input.Handles {
	return e.handles
}
