package render

import (
	"bytes"
	"strings"
	"testing"
)

func TestIndexWraps(t *testing.T) {
	tests := []struct {
		x, y, w, total, want int
	}{
		{0, 0, 10, 100, 0},
		{3, 2, 10, 100, 23},
		{0, 10, 10, 100, 0},
		{-1, 0, 10, 100, 99},
		{5, 0, 10, 0, 0},
	}
	for _, tt := range tests {
		if got := Index(tt.x, tt.y, tt.w, tt.total); got != tt.want {
			t.Errorf("Index(%d,%d,%d,%d): expected %d, got %d", tt.x, tt.y, tt.w, tt.total, tt.want, got)
		}
	}
}

func TestGlyphControlChars(t *testing.T) {
	for _, r := range []rune{'\n', '\r', '\t', 0} {
		if g := (Cell{Rune: r}).Glyph(); g != ' ' {
			t.Errorf("Expected %q to render as space, got %q", r, g)
		}
	}
	if g := (Cell{Rune: 'x'}).Glyph(); g != 'x' {
		t.Errorf("Expected 'x', got %q", g)
	}
}

func TestWriteStringWide(t *testing.T) {
	b := NewCharBuffer(5, 1)
	n := b.WriteString(0, 0, "世界!", White, Black)
	if n != 5 {
		t.Errorf("Expected 5 columns, got %d", n)
	}
	if b.At(1, 0).Rune != continuation {
		t.Error("Expected continuation cell after wide rune")
	}

	c := NewContext()
	c.DrawCharBuffer(0, 0, 5, 1, 5, b.Cells())
	if !strings.HasSuffix(string(c.Bytes()), "世界!") {
		t.Errorf("Expected wide runes emitted once, got %q", c.Bytes())
	}
}

func TestWriteStringClipsWideAtEdge(t *testing.T) {
	b := NewCharBuffer(3, 1)
	if n := b.WriteString(0, 0, "ab世", White, Black); n != 2 {
		t.Errorf("Expected wide rune dropped at edge, got %d columns", n)
	}
}

func TestScrollUp(t *testing.T) {
	b := NewCharBuffer(2, 3)
	b.WriteString(0, 0, "aa", White, Black)
	b.WriteString(0, 1, "bb", White, Black)
	b.WriteString(0, 2, "cc", White, Black)

	b.ScrollUp(1)
	if b.At(0, 0).Rune != 'b' || b.At(0, 1).Rune != 'c' || b.At(0, 2).Rune != ' ' {
		t.Errorf("Unexpected rows after scroll: %q %q %q", b.At(0, 0).Rune, b.At(0, 1).Rune, b.At(0, 2).Rune)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", 196},
		{"#000000", 16},
		{"#ffffff", 231},
		{"14", Cyan},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q): expected %d, got %d", tt.in, tt.want, got)
		}
	}
	if _, err := ParseColor("chartreuse-ish"); err == nil {
		t.Error("Expected error for invalid color")
	}
	if _, err := ParseColor("300"); err == nil {
		t.Error("Expected error for out-of-range index")
	}
}

func TestFrameDump(t *testing.T) {
	var buf bytes.Buffer
	d := NewFrameDump(&buf)

	d.Capture([]byte("ignored"))
	if buf.Len() != 0 {
		t.Fatal("Expected no capture without request")
	}

	d.Request(1)
	d.Capture([]byte("\x1b[1;1Hx"))
	d.Capture([]byte("second"))

	out := buf.String()
	if !strings.Contains(out, "frame 1 (7 bytes)") {
		t.Errorf("Expected header, got %q", out)
	}
	if strings.Contains(out, "second") {
		t.Error("Expected only one frame captured")
	}
	if d.Pending() != 0 {
		t.Errorf("Expected 0 pending, got %d", d.Pending())
	}
}
