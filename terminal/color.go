package terminal

import (
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// ParseColorMode maps a config value to a ColorMode; "auto" and unknown values detect from env
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(s) {
	case "256":
		return ColorMode256
	case "truecolor", "24bit":
		return ColorModeTrueColor
	}
	return DetectColorMode()
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Levels of the 6x6x6 cube (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to nearest cube level 0-5
var cubeIndex = func() (idx [256]uint8) {
	for i := range 256 {
		best := 0
		bestDist := abs(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			if d := abs(i - int(cubeValues[j])); d < bestDist {
				bestDist = d
				best = j
			}
		}
		idx[i] = uint8(best)
	}
	return idx
}()

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 finds the nearest xterm-256 palette index, preferring the gray ramp for near-neutral colors
func RGBTo256(c RGB) uint8 {
	r, g, b := int(c.R), int(c.G), int(c.B)
	cr, cg, cb := cubeIndex[c.R], cubeIndex[c.G], cubeIndex[c.B]
	cube := 16 + 36*cr + 6*cg + cb

	gray := (r + g + b) / 3
	if max(abs(r-gray), abs(g-gray), abs(b-gray)) >= 10 {
		return cube
	}
	if gray < 4 {
		return 16
	}
	if gray > 243 {
		return 231
	}

	grayIdx := min(232+(gray-8)/10, 255)
	level := 8 + (grayIdx-232)*10
	grayDist := abs(r-level) + abs(g-level) + abs(b-level)
	cubeDist := abs(r-int(cubeValues[cr])) + abs(g-int(cubeValues[cg])) + abs(b-int(cubeValues[cb]))
	if grayDist < cubeDist {
		return uint8(grayIdx)
	}
	return cube
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}
