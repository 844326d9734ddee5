package widget

import (
	"slices"
	"unicode"

	"github.com/lixenwraith/vtframe/terminal"
)

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// lineEditor holds the editable text and cursor of an InputLine
type lineEditor struct {
	text   []rune
	cursor int // Insertion point, 0 = before first rune
	scroll int // First visible rune
}

func (e *lineEditor) value() string { return string(e.text) }

func (e *lineEditor) set(s string) {
	e.text = []rune(s)
	e.cursor = len(e.text)
	e.scroll = 0
}

func (e *lineEditor) insert(r rune) {
	e.text = slices.Insert(e.text, e.cursor, r)
	e.cursor++
}

func (e *lineEditor) deleteBackward() bool {
	if e.cursor == 0 {
		return false
	}
	e.text = slices.Delete(e.text, e.cursor-1, e.cursor)
	e.cursor--
	return true
}

func (e *lineEditor) deleteForward() bool {
	if e.cursor >= len(e.text) {
		return false
	}
	e.text = slices.Delete(e.text, e.cursor, e.cursor+1)
	return true
}

func (e *lineEditor) deleteWordBackward() bool {
	if e.cursor == 0 {
		return false
	}
	start := e.cursor
	for start > 0 && !isWordChar(e.text[start-1]) {
		start--
	}
	for start > 0 && isWordChar(e.text[start-1]) {
		start--
	}
	e.text = slices.Delete(e.text, start, e.cursor)
	e.cursor = start
	return true
}

func (e *lineEditor) wordLeft() {
	for e.cursor > 0 && !isWordChar(e.text[e.cursor-1]) {
		e.cursor--
	}
	for e.cursor > 0 && isWordChar(e.text[e.cursor-1]) {
		e.cursor--
	}
}

func (e *lineEditor) wordRight() {
	for e.cursor < len(e.text) && isWordChar(e.text[e.cursor]) {
		e.cursor++
	}
	for e.cursor < len(e.text) && !isWordChar(e.text[e.cursor]) {
		e.cursor++
	}
}

// adjustScroll keeps the cursor inside a viewport of width runes
func (e *lineEditor) adjustScroll(width int) {
	if width <= 0 {
		return
	}
	if e.cursor < e.scroll {
		e.scroll = e.cursor
	}
	if e.cursor >= e.scroll+width {
		e.scroll = e.cursor - width + 1
	}
}

// handle applies an editing key and reports whether the text or cursor changed
func (e *lineEditor) handle(ev terminal.Event) bool {
	ctrl := ev.Modifiers&terminal.ModCtrl != 0
	switch ev.Key {
	case terminal.KeyLeft:
		if ctrl {
			e.wordLeft()
		} else if e.cursor > 0 {
			e.cursor--
		}
	case terminal.KeyRight:
		if ctrl {
			e.wordRight()
		} else if e.cursor < len(e.text) {
			e.cursor++
		}
	case terminal.KeyHome, terminal.KeyCtrlA:
		e.cursor = 0
	case terminal.KeyEnd, terminal.KeyCtrlE:
		e.cursor = len(e.text)
	case terminal.KeyBackspace:
		return e.deleteBackward()
	case terminal.KeyDelete:
		return e.deleteForward()
	case terminal.KeyCtrlW:
		return e.deleteWordBackward()
	case terminal.KeyCtrlU:
		e.text = e.text[e.cursor:]
		e.cursor, e.scroll = 0, 0
	case terminal.KeyCtrlK:
		e.text = e.text[:e.cursor]
	case terminal.KeySpace:
		e.insert(' ')
	case terminal.KeyRune:
		if ev.Rune < ' ' {
			return false
		}
		e.insert(ev.Rune)
	default:
		return false
	}
	return true
}
