package engine

import "github.com/lixenwraith/vtframe/layer"

// RegisterLayer adds l under id
func (e *Engine) RegisterLayer(id string, l layer.Layer) error {
	return e.layers.Register(id, l)
}

// SetLayer shows layer id at z, hiding the previous occupant. An empty id clears z
func (e *Engine) SetLayer(z int, id string, args ...any) bool {
	return e.layers.Activate(z, id, args...)
}

// RemoveLayer clears slot z
func (e *Engine) RemoveLayer(z int) bool {
	return e.layers.Deactivate(z)
}

// IsLayerVisible reports whether id occupies a slot
func (e *Engine) IsLayerVisible(id string) bool {
	return e.layers.Visible(id)
}

// Layer returns the occupant of z, or nil
func (e *Engine) Layer(z int) layer.Layer {
	_, l := e.layers.At(z)
	return l
}

// SetFocus moves focus to w; nil clears it
func (e *Engine) SetFocus(w layer.Widget) {
	e.focus.Set(w)
}
