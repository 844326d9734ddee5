package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vtframe/render"
	"github.com/lixenwraith/vtframe/terminal"
)

// Load reads configuration from path. An empty path uses DefaultConfigPath; a missing file yields defaults
func Load(path string) (Config, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return Config{}, errors.Wrap(err, "resolve config path")
		}
		path = defaultPath
	}

	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("frame_rate_limit", cfg.FrameRateLimit)
	v.SetDefault("layer_count", cfg.LayerCount)
	v.SetDefault("pause_poll_ms", cfg.PausePollMs)
	v.SetDefault("resize.poll_ms", cfg.Resize.PollMs)
	v.SetDefault("resize.stable_ms", cfg.Resize.StableMs)
	v.SetDefault("render.elide_blank_rows", cfg.Render.ElideBlankRows)
	v.SetDefault("render.dump_file", cfg.Render.DumpFile)
	v.SetDefault("terminal.backend", cfg.Terminal.Backend)
	v.SetDefault("terminal.color_mode", cfg.Terminal.ColorMode)
	v.SetDefault("theme.foreground", cfg.Theme.Foreground)
	v.SetDefault("theme.background", cfg.Theme.Background)
	v.SetDefault("theme.accent", cfg.Theme.Accent)
	v.SetDefault("audio.bell", cfg.Audio.Bell)
	v.SetDefault("log.dir", cfg.Log.Dir)
	v.SetDefault("keys", cfg.Keys)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects out-of-range values and unknown names
func (c Config) Validate() error {
	if c.FrameRateLimit < 0 {
		return errors.Errorf("frame_rate_limit must be >= 0, got %d", c.FrameRateLimit)
	}
	if c.LayerCount < 1 {
		return errors.Errorf("layer_count must be >= 1, got %d", c.LayerCount)
	}
	if c.Resize.PollMs <= 0 || c.Resize.StableMs <= 0 {
		return errors.New("resize.poll_ms and resize.stable_ms must be positive")
	}
	if c.PausePollMs <= 0 {
		return errors.New("pause_poll_ms must be positive")
	}
	switch terminal.BackendKind(c.Terminal.Backend) {
	case terminal.BackendANSI, terminal.BackendTcell:
	default:
		return errors.Errorf("unsupported terminal.backend %q", c.Terminal.Backend)
	}
	switch strings.ToLower(c.Terminal.ColorMode) {
	case "auto", "256", "truecolor", "24bit":
	default:
		return errors.Errorf("unsupported terminal.color_mode %q", c.Terminal.ColorMode)
	}
	for name, value := range map[string]string{
		"theme.foreground": c.Theme.Foreground,
		"theme.background": c.Theme.Background,
		"theme.accent":     c.Theme.Accent,
	} {
		if _, err := render.ParseColor(value); err != nil {
			return errors.Wrap(err, name)
		}
	}
	return nil
}

// WriteDefault writes the default config to path and returns the path written
func WriteDefault(path string, overwrite bool) (string, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", errors.Wrap(err, "resolve config path")
		}
		path = defaultPath
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", errors.Errorf("config already exists at %s", path)
		}
	}

	data, err := Marshal(DefaultConfig())
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", errors.Wrap(err, "create config directory")
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", errors.Wrap(err, "write config")
	}
	return path, nil
}

// Marshal renders cfg as YAML
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "encode config")
	}
	return data, nil
}
