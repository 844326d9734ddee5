package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/vtframe/config"
	"github.com/lixenwraith/vtframe/engine"
	"github.com/lixenwraith/vtframe/status"
	"github.com/lixenwraith/vtframe/terminal"
)

type benchOptions struct {
	duration time.Duration
	width    int
	height   int
	fps      int
}

func newBenchCmd(flags *rootFlags) *cobra.Command {
	opts := benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the dashboard headless against an in-memory console and print pipeline metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("fps") {
				cfg.FrameRateLimit = opts.fps
			}
			return runBench(cmd.Context(), cfg, opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().DurationVar(&opts.duration, "duration", 2*time.Second, "How long to run")
	cmd.Flags().IntVar(&opts.width, "width", 120, "Console width")
	cmd.Flags().IntVar(&opts.height, "height", 40, "Console height")
	cmd.Flags().IntVar(&opts.fps, "fps", 0, "Override frame_rate_limit (0 is uncapped)")
	return cmd
}

func runBench(ctx context.Context, cfg config.Config, opts benchOptions, out io.Writer) error {
	if opts.width <= 0 || opts.height <= 0 {
		return errors.Errorf("invalid size %dx%d", opts.width, opts.height)
	}
	th, err := parseTheme(cfg.Theme)
	if err != nil {
		return err
	}

	mem := terminal.NewMemory(opts.width, opts.height)
	reg := status.NewRegistry()
	reg.Strings.Get(status.KeyBackend).Store("memory")

	eng := engine.New(mem, engineOptions(cfg, discardLogger(), reg)...)
	a, err := newApp(eng, th, cfg.Keys)
	if err != nil {
		return err
	}
	a.dash.Logf("bench %s at %dx%d", opts.duration, opts.width, opts.height)
	if err := eng.Init(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, opts.duration)
	defer cancel()
	if err := eng.Run(ctx); err != nil {
		return err
	}

	snap := reg.Snapshot()
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(out, "%-28s %s\n", k, snap[k]); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(out, "%-28s %d\n", "terminal.writes", mem.Writes())
	return err
}
