package layer

import (
	"errors"
	"slices"
)

var (
	ErrEmptyID     = errors.New("layer id is empty")
	ErrDuplicateID = errors.New("layer id already registered")
	ErrNilLayer    = errors.New("layer is nil")
)

type slot struct {
	id    string
	layer Layer
	tasks []string // keys this activation installed
}

// Registry maps ids to layers and layers to z-slots
type Registry struct {
	layers map[string]Layer
	slots  []slot
	tasks  *Tasks
	focus  *Focus
}

// NewRegistry creates a registry with capacity z-slots, installing layer tasks into tasks
func NewRegistry(capacity int, tasks *Tasks, focus *Focus) *Registry {
	if capacity < 1 {
		capacity = 1
	}
	if tasks == nil {
		tasks = NewTasks()
	}
	if focus == nil {
		focus = &Focus{}
	}
	return &Registry{
		layers: make(map[string]Layer),
		slots:  make([]slot, capacity),
		tasks:  tasks,
		focus:  focus,
	}
}

// Register adds a layer under id without showing it
func (r *Registry) Register(id string, l Layer) error {
	if id == "" {
		return ErrEmptyID
	}
	if l == nil {
		return ErrNilLayer
	}
	if _, ok := r.layers[id]; ok {
		return ErrDuplicateID
	}
	r.layers[id] = l
	return nil
}

// Unregister hides the layer if active and forgets it
func (r *Registry) Unregister(id string) bool {
	if _, ok := r.layers[id]; !ok {
		return false
	}
	if z := r.ZIndex(id); z >= 0 {
		r.hide(z)
	}
	delete(r.layers, id)
	return true
}

// Activate places layer id in slot z, hiding the previous occupant.
// An empty id only clears the slot. Unknown ids and out-of-range z are no-ops.
// A layer already showing in another slot is hidden from it first
func (r *Registry) Activate(z int, id string, args ...any) bool {
	if z < 0 || z >= len(r.slots) {
		return false
	}
	var l Layer
	if id != "" {
		var ok bool
		if l, ok = r.layers[id]; !ok {
			return false
		}
	}

	r.hide(z)
	if id == "" {
		return true
	}
	if prev := r.ZIndex(id); prev >= 0 {
		r.hide(prev)
	}

	s := slot{id: id, layer: l}
	for _, t := range l.UpdateTasks() {
		key := TaskKey(l, t.Name)
		if r.tasks.Add(key, t.Fn) {
			s.tasks = append(s.tasks, key)
		}
	}
	r.slots[z] = s
	l.OnShow(args...)
	return true
}

// Deactivate clears slot z
func (r *Registry) Deactivate(z int) bool {
	return r.Activate(z, "")
}

// Hide removes layer id from whichever slot it occupies
func (r *Registry) Hide(id string) bool {
	z := r.ZIndex(id)
	if z < 0 {
		return false
	}
	r.hide(z)
	return true
}

func (r *Registry) hide(z int) {
	s := r.slots[z]
	if s.layer == nil {
		return
	}
	r.slots[z] = slot{}
	for _, key := range s.tasks {
		r.tasks.Remove(key)
	}
	if f := r.focus.Current(); f != nil && slices.Contains(s.layer.Widgets(), f) {
		r.focus.Clear()
	}
	s.layer.OnHide()
}

// Visible reports whether id occupies any slot
func (r *Registry) Visible(id string) bool {
	return r.ZIndex(id) >= 0
}

// ZIndex returns the slot of id or -1
func (r *Registry) ZIndex(id string) int {
	if id == "" {
		return -1
	}
	for z, s := range r.slots {
		if s.id == id {
			return z
		}
	}
	return -1
}

// At returns the occupant of slot z; nil when empty or out of range
func (r *Registry) At(z int) (string, Layer) {
	if z < 0 || z >= len(r.slots) {
		return "", nil
	}
	return r.slots[z].id, r.slots[z].layer
}

// Get returns the registered layer for id
func (r *Registry) Get(id string) (Layer, bool) {
	l, ok := r.layers[id]
	return l, ok
}

// Each visits active layers in ascending z
func (r *Registry) Each(fn func(z int, id string, l Layer)) {
	for z, s := range r.slots {
		if s.layer != nil {
			fn(z, s.id, s.layer)
		}
	}
}

// ActiveCount returns the number of occupied slots
func (r *Registry) ActiveCount() int {
	n := 0
	for _, s := range r.slots {
		if s.layer != nil {
			n++
		}
	}
	return n
}

// Capacity returns the number of z-slots
func (r *Registry) Capacity() int {
	return len(r.slots)
}

// Tasks returns the task map layers are installed into
func (r *Registry) Tasks() *Tasks {
	return r.tasks
}

// Focus returns the focus tracker
func (r *Registry) Focus() *Focus {
	return r.focus
}

// OwnerOf returns the active layer containing w
func (r *Registry) OwnerOf(w Widget) (Layer, bool) {
	for _, s := range r.slots {
		if s.layer != nil && slices.Contains(s.layer.Widgets(), w) {
			return s.layer, true
		}
	}
	return nil, false
}
