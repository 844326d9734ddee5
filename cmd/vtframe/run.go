package main

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"github.com/lixenwraith/vtframe/audio"
	"github.com/lixenwraith/vtframe/config"
	"github.com/lixenwraith/vtframe/core"
	"github.com/lixenwraith/vtframe/engine"
	"github.com/lixenwraith/vtframe/render"
	"github.com/lixenwraith/vtframe/status"
	"github.com/lixenwraith/vtframe/terminal"
	"github.com/lixenwraith/vtframe/timing"
)

func newRunCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			return runDashboard(cmd.Context(), cfg, flags.debug)
		},
	}
}

func runDashboard(ctx context.Context, cfg config.Config, debug bool) error {
	logger, logFile, err := setupLogging(cfg.Log.Dir, debug)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	ctx = pslog.ContextWithLogger(ctx, logger)

	th, err := parseTheme(cfg.Theme)
	if err != nil {
		return err
	}

	backend, err := terminal.NewBackend(terminal.BackendKind(cfg.Terminal.Backend))
	if err != nil {
		return errors.Wrapf(err, "open %s backend", cfg.Terminal.Backend)
	}
	term := terminal.New(backend)
	defer term.Fini()
	core.SetCrashCleanup(func() {
		term.Fini()
		terminal.EmergencyReset(os.Stdout)
	})

	reg := status.NewRegistry()
	reg.Strings.Get(status.KeyBackend).Store(cfg.Terminal.Backend)
	mode := "256"
	if terminal.ParseColorMode(cfg.Terminal.ColorMode) == terminal.ColorModeTrueColor {
		mode = "truecolor"
	}
	reg.Strings.Get("terminal.color_mode").Store(mode)

	opts := engineOptions(cfg, logger, reg)
	opts = append(opts, engine.WithPrecision(timing.PlatformPrecision()))

	if cfg.Audio.Bell {
		bell := audio.NewBell()
		if err := bell.Initialize(); err != nil {
			logger.Warn("audio bell unavailable", "err", err)
		} else {
			defer bell.Close()
			opts = append(opts, engine.WithRinger(bell))
		}
	}

	var dump *lazyFile
	if cfg.Render.DumpFile != "" {
		dump = &lazyFile{path: cfg.Render.DumpFile}
		defer dump.Close()
		opts = append(opts, engine.WithDumpWriter(dump))
	}

	eng := engine.New(term, opts...)
	if _, err := newApp(eng, th, cfg.Keys); err != nil {
		return err
	}
	if err := eng.Init(); err != nil {
		return err
	}
	return eng.Run(ctx)
}

// engineOptions maps config onto engine options shared by run and bench
func engineOptions(cfg config.Config, logger pslog.Logger, reg *status.Registry) []engine.Option {
	return []engine.Option{
		engine.WithLogger(logger),
		engine.WithStatus(reg),
		engine.WithFrameRateLimit(cfg.FrameRateLimit),
		engine.WithLayerCount(cfg.LayerCount),
		engine.WithResizeDebounce(cfg.ResizePoll(), cfg.ResizeStable()),
		engine.WithPausePoll(cfg.PausePoll()),
		engine.WithElideBlankRows(cfg.Render.ElideBlankRows),
	}
}

func parseTheme(tc config.ThemeConfig) (theme, error) {
	var th theme
	var err error
	if th.fg, err = render.ParseColor(tc.Foreground); err != nil {
		return th, errors.Wrap(err, "theme foreground")
	}
	if th.bg, err = render.ParseColor(tc.Background); err != nil {
		return th, errors.Wrap(err, "theme background")
	}
	if th.accent, err = render.ParseColor(tc.Accent); err != nil {
		return th, errors.Wrap(err, "theme accent")
	}
	return th, nil
}

// discardLogger is used where no log destination applies
func discardLogger() pslog.Logger {
	return pslog.NewWithOptions(io.Discard, pslog.Options{Mode: pslog.ModeStructured, NoColor: true})
}
