package terminal

import "bytes"

// Pre-allocated ANSI sequence fragments
var (
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0  = []byte("\x1b[0m")
	csiClear = []byte("\x1b[2J\x1b[H")

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// ?7l disables wrapping, preventing scroll when writing to bottom-right corner
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")

	// White on black, the pipeline's default color pair
	csiDefaultColors = []byte("\x1b[97m\x1b[40m")

	bel = []byte{0x07}
)

// enterSequence is written once when the console is opened
func enterSequence() []byte {
	var b bytes.Buffer
	b.Write(csiAltScreenEnter)
	b.Write(csiAutoWrapOff)
	b.Write(csiCursorHide)
	b.Write(csiClear)
	return b.Bytes()
}

// exitSequence undoes enterSequence and leaves the cursor visible
func exitSequence() []byte {
	var b bytes.Buffer
	b.Write(csiSGR0)
	b.Write(csiClear)
	b.Write(csiAutoWrapOn)
	b.Write(csiCursorShow)
	b.Write(csiAltScreenExit)
	return b.Bytes()
}
