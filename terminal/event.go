package terminal

// Event is one decoded key press
type Event struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
}

// Is reports whether the event is the given key, matching runes by value when key is KeyRune
func (e Event) Is(key Key, r rune) bool {
	if e.Key != key {
		return false
	}
	return key != KeyRune || e.Rune == r
}

// RuneEvent builds a printable-character event
func RuneEvent(r rune) Event {
	if r == ' ' {
		return Event{Key: KeySpace, Rune: ' '}
	}
	return Event{Key: KeyRune, Rune: r}
}

// KeyEvent builds a non-printable key event
func KeyEvent(k Key, mod Modifier) Event {
	return Event{Key: k, Modifiers: mod}
}
