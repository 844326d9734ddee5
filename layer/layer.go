package layer

import (
	"reflect"
	"strings"

	"github.com/lixenwraith/vtframe/core"
	"github.com/lixenwraith/vtframe/input"
	"github.com/lixenwraith/vtframe/render"
)

// Layer is a full-screen drawable occupying one z-slot while active.
// Implementations embed Base and override the hooks they need
type Layer interface {
	// UpdateTasks is read on activation; each task is installed as "{Type}.{Name}".
	// While another instance of the same type is active its keys are taken, so
	// this instance's tasks do not run, and hiding it leaves the other's tasks in place
	UpdateTasks() []Task
	Widgets() []Widget
	KeyActions() input.Bindings
	KeyActionsEnabled() bool

	UpdateLayout(d core.Dimensions)
	Draw(ctx *render.Context)
	OnShow(args ...any)
	OnHide()
}

// Named lets a layer choose the prefix of its task keys
type Named interface {
	TypeName() string
}

// Base provides default no-op hooks, a widget list, a task list and key actions
type Base struct {
	tasks       []Task
	widgets     []Widget
	actions     input.Bindings
	keysBlocked bool
}

// AddTask registers a per-tick task installed whenever the layer is shown
func (b *Base) AddTask(name string, fn TaskFunc) {
	b.tasks = append(b.tasks, Task{Name: name, Fn: fn})
}

// AddWidget appends w to the draw order
func (b *Base) AddWidget(ws ...Widget) {
	b.widgets = append(b.widgets, ws...)
}

// BindKey installs a layer key action
func (b *Base) BindKey(bind input.Binding, fn input.Action) {
	if b.actions == nil {
		b.actions = input.Bindings{}
	}
	b.actions.Bind(bind, fn)
}

// SetKeyActionsEnabled toggles layer key dispatch; enabled by default
func (b *Base) SetKeyActionsEnabled(enabled bool) { b.keysBlocked = !enabled }

// UpdateTasks returns tasks added via AddTask
func (b *Base) UpdateTasks() []Task { return b.tasks }

// Widgets returns widgets in draw order
func (b *Base) Widgets() []Widget { return b.widgets }

// KeyActions returns layer bindings, possibly nil
func (b *Base) KeyActions() input.Bindings { return b.actions }

// KeyActionsEnabled reports whether layer bindings are dispatched
func (b *Base) KeyActionsEnabled() bool { return !b.keysBlocked }

// OnShow is called after the layer's tasks are installed
func (b *Base) OnShow(...any) {}

// OnHide is called after the layer's tasks are removed
func (b *Base) OnHide() {}

// UpdateLayout forwards d to every widget
func (b *Base) UpdateLayout(d core.Dimensions) {
	for _, w := range b.widgets {
		w.UpdateLayout(d)
	}
}

// Draw renders visible widgets in insertion order
func (b *Base) Draw(ctx *render.Context) {
	for _, w := range b.widgets {
		if w.Visible() {
			w.Draw(ctx)
		}
	}
}

// TypeNameOf returns the task key prefix for l
func TypeNameOf(l Layer) string {
	if n, ok := l.(Named); ok {
		return n.TypeName()
	}
	t := reflect.TypeOf(l)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return strings.TrimLeft(t.String(), "*")
}

// TaskKey composes the global key for a layer task
func TaskKey(l Layer, task string) string {
	return TypeNameOf(l) + "." + task
}
