package render

import (
	"bytes"
	"strings"
	"testing"
)

func TestCommitIdempotent(t *testing.T) {
	c := NewContext()
	c.DrawText("hello")

	if !c.Commit() {
		t.Fatal("Expected first commit to report a change")
	}
	c.Store()

	if c.Commit() {
		t.Error("Expected second commit without changes to return false")
	}
}

func TestCommitComparesContent(t *testing.T) {
	c := NewContext()
	c.DrawText("abc")
	c.Store()
	c.Clear()

	c.DrawText("abd")
	if !c.Commit() {
		t.Error("Expected same-length different content to be a change")
	}
	c.Clear()
	c.DrawText("abc")
	if c.Commit() {
		t.Error("Expected identical rebuilt frame to be unchanged")
	}
}

func TestColorElision(t *testing.T) {
	c := NewContext()

	if !c.SetForeground(Cyan) {
		t.Error("Expected first set to emit")
	}
	if c.SetForeground(Cyan) {
		t.Error("Expected repeated set to be elided")
	}
	if got := strings.Count(string(c.Bytes()), "\x1b[38;5;14m"); got != 1 {
		t.Errorf("Expected sequence once, got %d", got)
	}

	if c.SetBackground(DefaultBackground) {
		t.Error("Expected default background to be elided on fresh context")
	}
}

func TestSetColorsAppliesBoth(t *testing.T) {
	c := NewContext()
	if !c.SetColors(Yellow, DarkBlue) {
		t.Fatal("Expected change")
	}
	fg, bg := c.Colors()
	if fg != Yellow || bg != DarkBlue {
		t.Errorf("Expected registers (11,4), got (%d,%d)", fg, bg)
	}
	if string(c.Bytes()) != "\x1b[48;5;4m\x1b[38;5;11m" {
		t.Errorf("Unexpected output %q", c.Bytes())
	}
}

func TestEnterColorContext(t *testing.T) {
	c := NewContext()
	c.EnterColorContext(Red, Black, func() { c.DrawText("x") })

	want := "\x1b[38;5;9mx\x1b[97m\x1b[40m"
	if string(c.Bytes()) != want {
		t.Errorf("Expected %q, got %q", want, c.Bytes())
	}
	if fg, bg := c.Colors(); fg != DefaultForeground || bg != DefaultBackground {
		t.Errorf("Expected default registers, got (%d,%d)", fg, bg)
	}

	c.Clear()
	c.EnterColorContext(White, Black, func() { c.DrawText("y") })
	if string(c.Bytes()) != "y" {
		t.Errorf("Expected no reset when nothing changed, got %q", c.Bytes())
	}
}

func TestResetColors(t *testing.T) {
	c := NewContext()
	c.SetColors(Green, Blue)
	c.Clear()
	c.ResetColors()

	if !bytes.Equal(c.Bytes(), []byte("\x1b[97m\x1b[40m")) {
		t.Errorf("Unexpected reset output %q", c.Bytes())
	}
	if fg, bg := c.Colors(); fg != White || bg != Black {
		t.Errorf("Expected white on black, got (%d,%d)", fg, bg)
	}
}

func TestCursorSequences(t *testing.T) {
	c := NewContext()
	c.SetCursorPosition(0, 0)
	c.SetCursorPosition(119, 41)
	c.CursorForward(1)
	c.CursorForward(12)
	c.CursorForward(0)
	c.ClearLine()

	want := "\x1b[1;1H\x1b[42;120H\x1b[C\x1b[12C\x1b[2K"
	if string(c.Bytes()) != want {
		t.Errorf("Expected %q, got %q", want, c.Bytes())
	}
}

func TestCursorPositionClampsNegative(t *testing.T) {
	c := NewContext()
	c.SetCursorPosition(-3, -2)
	c.SetCursorPosition(4, -1)

	want := "\x1b[1;1H\x1b[1;5H"
	if string(c.Bytes()) != want {
		t.Errorf("Expected %q, got %q", want, c.Bytes())
	}
}

func TestDrawBox(t *testing.T) {
	c := NewContext()
	c.DrawBox(1, 1, 4, 3)

	want := "\x1b[2;2H/--\\" +
		"\x1b[3;2H|\x1b[2C|" +
		"\x1b[4;2H\\--/"
	if string(c.Bytes()) != want {
		t.Errorf("Expected %q, got %q", want, c.Bytes())
	}
}

func TestDrawCharBuffer(t *testing.T) {
	b := NewCharBuffer(3, 2)
	b.WriteString(0, 0, "ab", Red, Black)
	b.Set(2, 1, Cell{Rune: '\t', Fg: White, Bg: Black})

	c := NewContext()
	c.DrawCharBuffer(5, 2, 3, 2, b.Width(), b.Cells())

	want := "\x1b[3;6H\x1b[38;5;9mab\x1b[38;5;15m " +
		"\x1b[4;6H   "
	if string(c.Bytes()) != want {
		t.Errorf("Expected %q, got %q", want, c.Bytes())
	}
}

func TestDrawCharBufferElideBlankRows(t *testing.T) {
	b := NewCharBuffer(4, 3)
	b.WriteString(0, 2, "z", White, Black)

	c := NewContext()
	c.ElideBlankRows = true
	c.DrawCharBuffer(0, 0, 4, 3, 4, b.Cells())

	want := "\x1b[3;1Hz   "
	if string(c.Bytes()) != want {
		t.Errorf("Expected %q, got %q", want, c.Bytes())
	}
}

func TestDrawCharBufferViewport(t *testing.T) {
	b := NewCharBuffer(10, 2)
	b.WriteString(0, 0, "0123456789", White, Black)
	b.WriteString(0, 1, "abcdefghij", White, Black)

	c := NewContext()
	c.DrawCharBuffer(0, 0, 3, 2, 10, b.Cells())

	want := "\x1b[1;1H012\x1b[2;1Habc"
	if string(c.Bytes()) != want {
		t.Errorf("Expected %q, got %q", want, c.Bytes())
	}
}

func TestDrawTextClipped(t *testing.T) {
	c := NewContext()
	c.DrawTextClipped("overflowing", 4)
	if string(c.Bytes()) != "over" {
		t.Errorf("Expected %q, got %q", "over", c.Bytes())
	}
}

func TestPreamble(t *testing.T) {
	c := NewContext()
	c.SetForeground(Red)
	c.Clear()
	c.Preamble()

	want := "\x1b[;H\x1b[J\x1b[97m\x1b[40m"
	if string(c.Bytes()) != want {
		t.Errorf("Expected %q, got %q", want, c.Bytes())
	}
}
