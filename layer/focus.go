package layer

// Focus tracks the single focused widget
type Focus struct {
	current Widget
}

// Set moves focus to w, clearing the previous holder. Nil clears focus
func (f *Focus) Set(w Widget) {
	if f.current == w {
		return
	}
	if f.current != nil {
		f.current.base().focused = false
	}
	f.current = w
	if w != nil {
		w.base().focused = true
	}
}

// Current returns the focused widget, or nil
func (f *Focus) Current() Widget {
	return f.current
}

// Clear removes focus
func (f *Focus) Clear() {
	f.Set(nil)
}

// Release clears focus if w currently holds it
func (f *Focus) Release(w Widget) {
	if f.current == w {
		f.Set(nil)
	}
}
