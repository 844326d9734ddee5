package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"github.com/lixenwraith/vtframe/config"
	"github.com/lixenwraith/vtframe/core"
	"github.com/lixenwraith/vtframe/engine"
	"github.com/lixenwraith/vtframe/input"
	"github.com/lixenwraith/vtframe/layer"
	"github.com/lixenwraith/vtframe/terminal"
	"github.com/lixenwraith/vtframe/widget"
)

const keyLogHandle = "keylog"

func newKeysCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Show decoded key events; Ctrl+C or Ctrl+Q quits",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			return runKeys(cmd.Context(), cfg, flags.debug)
		},
	}
}

// keyLog lists decoded events pulled from its input handle
type keyLog struct {
	layer.Base
	eng    *engine.Engine
	view   *widget.TextView
	status *widget.Label
	count  int
}

func newKeyLog(eng *engine.Engine) *keyLog {
	k := &keyLog{eng: eng, view: widget.NewTextView(core.Rect{}), status: widget.NewLabel(0, 0, "")}
	title := widget.NewLabel(1, 0, "Key test - press keys, Ctrl+C or Ctrl+Q quits")
	k.view.Anchor = func(d core.Dimensions) core.Rect {
		return core.Rect{X: 1, Y: 2, Width: d.WindowWidth - 2, Height: max(d.WindowHeight-4, 0)}
	}
	k.AddWidget(title, k.view, k.status)
	k.AddTask("Drain", k.drain)
	return k
}

func (k *keyLog) OnShow(...any) {
	k.eng.OpenInputHandle(keyLogHandle, true)
}

func (k *keyLog) OnHide() {
	k.eng.CloseInputHandle(keyLogHandle)
}

func (k *keyLog) UpdateLayout(d core.Dimensions) {
	k.Base.UpdateLayout(d)
	k.status.X, k.status.Y = 1, d.WindowHeight-1
	k.status.Text = fmt.Sprintf("Size: %dx%d | Events: %d", d.WindowWidth, d.WindowHeight, k.count)
}

func (k *keyLog) drain(core.FrameState) {
	for {
		ev, ok := k.eng.Key(keyLogHandle)
		if !ok {
			return
		}
		k.count++
		k.view.Append(formatKeyEvent(ev))
	}
}

// formatKeyEvent renders modifiers and the binding name, quoting printable runes
func formatKeyEvent(ev terminal.Event) string {
	var b strings.Builder
	b.WriteString("KEY: ")
	if ev.Modifiers&terminal.ModShift != 0 {
		b.WriteString("Shift+")
	}
	if ev.Modifiers&terminal.ModAlt != 0 {
		b.WriteString("Alt+")
	}
	if ev.Modifiers&terminal.ModCtrl != 0 {
		b.WriteString("Ctrl+")
	}

	switch {
	case ev.Key != terminal.KeyRune:
		b.WriteString(ev.Key.String())
	case ev.Rune >= 0x20 && ev.Rune < 0x7f:
		fmt.Fprintf(&b, "'%c'", ev.Rune)
	default:
		fmt.Fprintf(&b, "U+%04X", ev.Rune)
	}
	return b.String()
}

func runKeys(ctx context.Context, cfg config.Config, debug bool) error {
	logger, logFile, err := setupLogging(cfg.Log.Dir, debug)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	ctx = pslog.ContextWithLogger(ctx, logger)

	backend, err := terminal.NewBackend(terminal.BackendKind(cfg.Terminal.Backend))
	if err != nil {
		return err
	}
	term := terminal.New(backend)
	defer term.Fini()
	core.SetCrashCleanup(func() {
		term.Fini()
		terminal.EmergencyReset(os.Stdout)
	})

	eng := engine.New(term, engine.WithLogger(logger), engine.WithLayerCount(1))
	quit := func(terminal.Event) { eng.SignalExit() }
	eng.BindKey(input.KeyBinding(terminal.KeyCtrlC), quit)
	eng.BindKey(input.KeyBinding(terminal.KeyCtrlQ), quit)

	if err := eng.RegisterLayer(keyLogHandle, newKeyLog(eng)); err != nil {
		return err
	}
	eng.SetLayer(0, keyLogHandle)

	if err := eng.Init(); err != nil {
		return err
	}
	return eng.Run(ctx)
}
