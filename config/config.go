// Package config loads vtframe settings from YAML with environment overrides.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// EnvPrefix is prepended to upper-cased keys for environment overrides (VTFRAME_FRAME_RATE_LIMIT)
const EnvPrefix = "VTFRAME"

// Config is the top-level configuration
type Config struct {
	FrameRateLimit int               `mapstructure:"frame_rate_limit" yaml:"frame_rate_limit"`
	LayerCount     int               `mapstructure:"layer_count" yaml:"layer_count"`
	PausePollMs    int               `mapstructure:"pause_poll_ms" yaml:"pause_poll_ms"`
	Resize         ResizeConfig      `mapstructure:"resize" yaml:"resize"`
	Render         RenderConfig      `mapstructure:"render" yaml:"render"`
	Terminal       TerminalConfig    `mapstructure:"terminal" yaml:"terminal"`
	Theme          ThemeConfig       `mapstructure:"theme" yaml:"theme"`
	Audio          AudioConfig       `mapstructure:"audio" yaml:"audio"`
	Log            LogConfig         `mapstructure:"log" yaml:"log"`
	Keys           map[string]string `mapstructure:"keys" yaml:"keys"`
}

// ResizeConfig tunes the resize debounce
type ResizeConfig struct {
	PollMs   int `mapstructure:"poll_ms" yaml:"poll_ms"`
	StableMs int `mapstructure:"stable_ms" yaml:"stable_ms"`
}

// RenderConfig controls frame construction
type RenderConfig struct {
	ElideBlankRows bool   `mapstructure:"elide_blank_rows" yaml:"elide_blank_rows"`
	DumpFile       string `mapstructure:"dump_file" yaml:"dump_file"`
}

// TerminalConfig selects the console backend
type TerminalConfig struct {
	Backend   string `mapstructure:"backend" yaml:"backend"`
	ColorMode string `mapstructure:"color_mode" yaml:"color_mode"`
}

// ThemeConfig holds hex or palette-index colors
type ThemeConfig struct {
	Foreground string `mapstructure:"foreground" yaml:"foreground"`
	Background string `mapstructure:"background" yaml:"background"`
	Accent     string `mapstructure:"accent" yaml:"accent"`
}

// AudioConfig toggles the modal bell
type AudioConfig struct {
	Bell bool `mapstructure:"bell" yaml:"bell"`
}

// LogConfig locates debug logs
type LogConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// DefaultConfig returns built-in defaults
func DefaultConfig() Config {
	return Config{
		FrameRateLimit: 60,
		LayerCount:     3,
		PausePollMs:    25,
		Resize: ResizeConfig{
			PollMs:   10,
			StableMs: 100,
		},
		Render: RenderConfig{
			DumpFile: "vtframe-frames.txt",
		},
		Terminal: TerminalConfig{
			Backend:   "ansi",
			ColorMode: "auto",
		},
		Theme: ThemeConfig{
			Foreground: "#ffffff",
			Background: "#000000",
			Accent:     "#5fafff",
		},
		Log: LogConfig{
			Dir: "logs",
		},
		Keys: map[string]string{
			"quit":  "ctrl_q",
			"help":  "f1",
			"dump":  "f12",
			"focus": "tab",
		},
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/vtframe/config.yaml or its home-directory equivalent
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "vtframe", "config.yaml"), nil
}

// ResizePoll returns the debounce poll interval
func (c Config) ResizePoll() time.Duration {
	return time.Duration(c.Resize.PollMs) * time.Millisecond
}

// ResizeStable returns the debounce stability window
func (c Config) ResizeStable() time.Duration {
	return time.Duration(c.Resize.StableMs) * time.Millisecond
}

// PausePoll returns the pause-wait poll interval
func (c Config) PausePoll() time.Duration {
	return time.Duration(c.PausePollMs) * time.Millisecond
}
