package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"pkt.systems/psi"
	"pkt.systems/pslog"
)

// Set by -ldflags at release time
var (
	version = "dev"
	commit  = "none"
)

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	root := newRootCmd()
	if err := fang.Execute(ctx, root,
		fang.WithVersion(version),
		fang.WithCommit(commit),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("vtframe command failed")
		return 1
	}
	return 0
}

type rootFlags struct {
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "vtframe",
		Short:         "Layered terminal frame pipeline with a live metrics dashboard",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to config file (default: user config dir)")
	root.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "Write debug logs to the configured log directory")

	root.AddCommand(newRunCmd(flags))
	root.AddCommand(newBenchCmd(flags))
	root.AddCommand(newKeysCmd(flags))
	root.AddCommand(newConfigCmd(flags))
	return root
}
