package terminal

import "strings"

// Key represents a decoded input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeySpace

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Ctrl+letter, contiguous so KeyCtrlA+n maps byte 0x01+n
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ

	KeyCtrlSpace
	KeyCtrlBackslash
	KeyCtrlBracketRight
	KeyCtrlCaret
	KeyCtrlUnderscore
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

var keyNames = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeySpace:     "space",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
	KeyInsert:   "insert",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",

	KeyCtrlSpace:        "ctrl_space",
	KeyCtrlBackslash:    "ctrl_backslash",
	KeyCtrlBracketRight: "ctrl_bracket_right",
	KeyCtrlCaret:        "ctrl_caret",
	KeyCtrlUnderscore:   "ctrl_underscore",
}

var nameKeys = func() map[string]Key {
	m := make(map[string]Key, len(keyNames)+26)
	for k, n := range keyNames {
		m[n] = k
	}
	for i := range 26 {
		m["ctrl_"+string(rune('a'+i))] = KeyCtrlA + Key(i)
	}
	return m
}()

// String returns the canonical config name of the key
func (k Key) String() string {
	if k >= KeyCtrlA && k <= KeyCtrlZ {
		return "ctrl_" + string(rune('a'+int(k-KeyCtrlA)))
	}
	if n, ok := keyNames[k]; ok {
		return n
	}
	if k == KeyRune {
		return "rune"
	}
	return "none"
}

// ParseKey resolves a config name such as "ctrl_q" or "f5" back to a Key
func ParseKey(name string) (Key, bool) {
	k, ok := nameKeys[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// xtermModifier decodes the "1;N" modifier parameter used by xterm (N = 1 + bitmask)
func xtermModifier(n int) Modifier {
	if n < 2 {
		return ModNone
	}
	return Modifier(n-1) & (ModShift | ModAlt | ModCtrl)
}

// csiFinal maps the final byte of "ESC [ [1;mod] X" sequences
var csiFinal = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
	'Z': KeyBacktab,
}

// csiTilde maps the numeric parameter of "ESC [ N [;mod] ~" sequences
var csiTilde = map[int]Key{
	1:  KeyHome,
	2:  KeyInsert,
	3:  KeyDelete,
	4:  KeyEnd,
	5:  KeyPageUp,
	6:  KeyPageDown,
	7:  KeyHome,
	8:  KeyEnd,
	11: KeyF1,
	12: KeyF2,
	13: KeyF3,
	14: KeyF4,
	15: KeyF5,
	17: KeyF6,
	18: KeyF7,
	19: KeyF8,
	20: KeyF9,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
}

// ss3Final maps "ESC O X" sequences sent in application cursor mode
var ss3Final = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
	'M': KeyEnter,
}
