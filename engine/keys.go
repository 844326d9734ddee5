package engine

import (
	"github.com/lixenwraith/vtframe/input"
	"github.com/lixenwraith/vtframe/layer"
	"github.com/lixenwraith/vtframe/terminal"
)

// BindKey installs a global key action, consulted before layer actions
func (e *Engine) BindKey(b input.Binding, fn input.Action) {
	e.keysMu.Lock()
	e.globalKeys.Bind(b, fn)
	e.keysMu.Unlock()
}

// UnbindKey removes a global key action
func (e *Engine) UnbindKey(b input.Binding) {
	e.keysMu.Lock()
	e.globalKeys.Unbind(b)
	e.keysMu.Unlock()
}

// BindNamedKeys resolves a config table of action name → key name against actions
func (e *Engine) BindNamedKeys(keys map[string]string, actions map[string]input.Action) error {
	e.keysMu.Lock()
	defer e.keysMu.Unlock()
	return e.globalKeys.BindNamed(keys, actions)
}

// dispatchKey consumes at most one event from the global queue and routes it to the
// global action, then every active layer with key actions enabled, then the focused widget
func (e *Engine) dispatchKey() {
	ev, ok := e.queue.Pop()
	if !ok {
		return
	}

	e.keysMu.RLock()
	fn, bound := e.globalKeys[input.BindingOf(ev)]
	e.keysMu.RUnlock()
	if bound && fn != nil {
		fn(ev)
	}

	e.layers.Each(func(_ int, _ string, l layer.Layer) {
		if l.KeyActionsEnabled() {
			l.KeyActions().Handle(ev)
		}
	})

	e.deliverFocused(ev)
}

func (e *Engine) deliverFocused(ev terminal.Event) {
	w := e.focus.Current()
	if w == nil || !w.Visible() {
		return
	}
	if _, ok := e.layers.OwnerOf(w); !ok {
		return
	}
	layer.DeliverKey(w, ev)
}
