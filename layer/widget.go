package layer

import (
	"github.com/lixenwraith/vtframe/core"
	"github.com/lixenwraith/vtframe/input"
	"github.com/lixenwraith/vtframe/render"
	"github.com/lixenwraith/vtframe/terminal"
)

// KeyActionMode controls how a widget's bound key actions combine with its OnKey handler
type KeyActionMode uint8

const (
	// KeyActionsDisabled ignores bindings; only OnKey runs
	KeyActionsDisabled KeyActionMode = iota
	// KeyActionsOverride runs the binding instead of OnKey
	KeyActionsOverride
	// KeyActionsBefore runs the binding, then OnKey
	KeyActionsBefore
	// KeyActionsAfter runs OnKey, then the binding
	KeyActionsAfter
)

// Widget is a drawable, optionally focusable element owned by one layer.
// Implementations embed WidgetBase
type Widget interface {
	Draw(ctx *render.Context)
	OnKey(ev terminal.Event)
	UpdateLayout(d core.Dimensions)

	Visible() bool
	Focused() bool
	KeyActions() input.Bindings
	KeyActionMode() KeyActionMode

	base() *WidgetBase
}

// WidgetBase carries the state shared by all widgets. Zero value is a visible, unfocused widget
type WidgetBase struct {
	hidden  bool
	focused bool
	mode    KeyActionMode
	actions input.Bindings
}

func (w *WidgetBase) base() *WidgetBase { return w }

// Visible reports whether the widget should be drawn
func (w *WidgetBase) Visible() bool { return !w.hidden }

// SetVisible shows or hides the widget
func (w *WidgetBase) SetVisible(v bool) { w.hidden = !v }

// Focused reports whether the widget holds focus
func (w *WidgetBase) Focused() bool { return w.focused }

// KeyActionMode returns the current dispatch mode
func (w *WidgetBase) KeyActionMode() KeyActionMode { return w.mode }

// SetKeyActionMode selects how bindings and OnKey interact
func (w *WidgetBase) SetKeyActionMode(m KeyActionMode) { w.mode = m }

// KeyActions returns the widget's bindings, possibly nil
func (w *WidgetBase) KeyActions() input.Bindings { return w.actions }

// AddKeyAction binds fn to b unless b is already bound
func (w *WidgetBase) AddKeyAction(b input.Binding, fn input.Action) bool {
	if w.actions == nil {
		w.actions = input.Bindings{}
	}
	if _, ok := w.actions[b]; ok {
		return false
	}
	w.actions[b] = fn
	return true
}

// OverrideKeyAction replaces an existing binding; no-op if b is unbound
func (w *WidgetBase) OverrideKeyAction(b input.Binding, fn input.Action) bool {
	if _, ok := w.actions[b]; !ok {
		return false
	}
	w.actions[b] = fn
	return true
}

// RemoveKeyAction unbinds b
func (w *WidgetBase) RemoveKeyAction(b input.Binding) bool {
	if _, ok := w.actions[b]; !ok {
		return false
	}
	delete(w.actions, b)
	return true
}

// OnKey is the default no-op key handler
func (w *WidgetBase) OnKey(terminal.Event) {}

// UpdateLayout is the default no-op layout hook
func (w *WidgetBase) UpdateLayout(core.Dimensions) {}

// DeliverKey routes ev to w according to its KeyActionMode
func DeliverKey(w Widget, ev terminal.Event) {
	actions := w.KeyActions()
	switch w.KeyActionMode() {
	case KeyActionsOverride:
		actions.Handle(ev)
	case KeyActionsBefore:
		actions.Handle(ev)
		w.OnKey(ev)
	case KeyActionsAfter:
		w.OnKey(ev)
		actions.Handle(ev)
	default:
		w.OnKey(ev)
	}
}
