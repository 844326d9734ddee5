package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/vtframe/core"
	"github.com/lixenwraith/vtframe/engine"
	"github.com/lixenwraith/vtframe/input"
	"github.com/lixenwraith/vtframe/layer"
	"github.com/lixenwraith/vtframe/render"
	"github.com/lixenwraith/vtframe/terminal"
	"github.com/lixenwraith/vtframe/widget"
)

// Z-slots used by the dashboard
const (
	zDashboard = 0
	zNotice    = 1
	zPrompt    = 2

	metricsWidth   = 36
	noticeDuration = 2 * time.Second
)

// Layer ids
const (
	idDashboard = "dashboard"
	idNotice    = "notice"
	idPrompt    = "prompt"
)

type theme struct {
	fg, bg, accent render.Color
}

// dashboard is the base layer: a framed event log with a live metrics column
type dashboard struct {
	layer.Base
	eng   *engine.Engine
	theme theme

	frame   *widget.Panel
	metrics *widget.Panel
	log     *widget.TextView
	rows    []*widget.Label
}

func newDashboard(eng *engine.Engine, th theme) *dashboard {
	d := &dashboard{eng: eng, theme: th}

	d.frame = widget.NewPanel(core.Rect{}, "vtframe")
	d.frame.Fg, d.frame.Bg = th.accent, th.bg
	d.frame.Fill = true
	d.frame.Anchor = func(dim core.Dimensions) core.Rect {
		return core.Rect{Width: dim.WindowWidth, Height: dim.WindowHeight - 1}
	}

	d.metrics = widget.NewPanel(core.Rect{}, "metrics")
	d.metrics.Fg, d.metrics.Bg = th.accent, th.bg
	d.metrics.Anchor = func(dim core.Dimensions) core.Rect {
		w := min(metricsWidth, dim.WindowWidth/2)
		return core.Rect{X: dim.WindowWidth - w - 1, Y: 1, Width: w, Height: dim.WindowHeight - 3}
	}

	d.log = widget.NewTextView(core.Rect{})
	d.log.Fg, d.log.Bg = th.fg, th.bg
	d.log.Anchor = func(dim core.Dimensions) core.Rect {
		w := dim.WindowWidth - min(metricsWidth, dim.WindowWidth/2) - 3
		return core.Rect{X: 1, Y: 1, Width: max(w, 0), Height: max(dim.WindowHeight-3, 0)}
	}

	d.AddWidget(d.frame, d.metrics, d.log)
	d.AddTask("Metrics", d.refreshMetrics)
	return d
}

// Logf appends a line to the event log
func (d *dashboard) Logf(format string, args ...any) {
	d.log.Append(fmt.Sprintf(format, args...))
}

func (d *dashboard) OnShow(...any) {
	d.Logf("dashboard shown")
}

// refreshMetrics copies the status registry into one label per metric, sorted by key
func (d *dashboard) refreshMetrics(fs core.FrameState) {
	snap := d.eng.Status().Snapshot()
	snap["frame.size"] = strconv.Itoa(fs.Dimensions.WindowWidth) + "x" + strconv.Itoa(fs.Dimensions.WindowHeight)

	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for len(d.rows) < len(keys) {
		l := widget.NewLabel(0, 0, "")
		l.Fg, l.Bg = d.theme.fg, d.theme.bg
		d.rows = append(d.rows, l)
		d.AddWidget(l)
	}

	inner := d.metrics.Inner()
	for i, l := range d.rows {
		if i >= len(keys) || i >= inner.Height {
			l.SetVisible(false)
			continue
		}
		l.SetVisible(true)
		l.X, l.Y, l.Width = inner.X, inner.Y+i, inner.Width
		l.Text = widget.PadRight(keys[i], inner.Width-12) + " " + snap[keys[i]]
	}
}

// notice is a one-line banner centered near the top of the screen
type notice struct {
	layer.Base
	label *widget.Label
}

func newNotice(th theme) *notice {
	n := &notice{label: widget.NewLabel(0, 0, "")}
	n.label.Fg, n.label.Bg = th.bg, th.accent
	n.AddWidget(n.label)
	return n
}

func (n *notice) OnShow(args ...any) {
	if len(args) > 0 {
		if s, ok := args[0].(string); ok {
			n.label.Text = " " + s + " "
		}
	}
}

func (n *notice) UpdateLayout(d core.Dimensions) {
	n.label.CenterTo(d.HorizontalCenter(), 2)
}

// prompt is the bottom input line. Keys reach it through its own input handle
type prompt struct {
	layer.Base
	eng  *engine.Engine
	line *widget.InputLine
}

func newPrompt(eng *engine.Engine, th theme, submit func(string)) *prompt {
	p := &prompt{eng: eng, line: widget.NewInputLine(0, 0, 0, "prompt")}
	p.line.Fg, p.line.Bg = th.fg, th.bg
	p.line.OnSubmit = submit
	p.line.Anchor = func(d core.Dimensions) (int, int, int) {
		return 0, d.WindowHeight - 1, d.WindowWidth
	}
	p.AddWidget(p.line)
	p.AddTask("Pump", func(core.FrameState) { p.line.Pump(eng.Handles()) })
	return p
}

func (p *prompt) OnShow(...any) {
	p.eng.OpenInputHandle(p.line.Handle(), true)
}

func (p *prompt) OnHide() {
	p.eng.CloseInputHandle(p.line.Handle())
}

// app wires the dashboard layers to the engine and the configured key table
type app struct {
	eng    *engine.Engine
	keys   map[string]string
	dash   *dashboard
	notice *notice
	prompt *prompt

	// scrolling is true while the log, not the prompt, receives keys
	scrolling bool
}

func newApp(eng *engine.Engine, th theme, keys map[string]string) (*app, error) {
	a := &app{eng: eng, keys: keys}
	a.dash = newDashboard(eng, th)
	a.notice = newNotice(th)
	a.prompt = newPrompt(eng, th, a.submit)

	for id, l := range map[string]layer.Layer{idDashboard: a.dash, idNotice: a.notice, idPrompt: a.prompt} {
		if err := eng.RegisterLayer(id, l); err != nil {
			return nil, err
		}
	}

	actions := map[string]input.Action{
		"quit":  func(terminal.Event) { eng.SignalExit() },
		"help":  func(terminal.Event) { a.help() },
		"dump":  func(terminal.Event) { a.dump(1) },
		"focus": func(terminal.Event) { a.toggleFocus() },
	}
	if err := eng.BindNamedKeys(keys, actions); err != nil {
		return nil, err
	}

	eng.SetLayer(zDashboard, idDashboard)
	eng.SetLayer(zPrompt, idPrompt)
	return a, nil
}

// notify shows msg in the notice slot and hides it again after noticeDuration
func (a *app) notify(msg string) {
	a.eng.SetLayer(zNotice, idNotice, msg)
	a.eng.After(noticeDuration, func() {
		if _, ok := a.eng.Layer(zNotice).(*notice); ok {
			a.eng.RemoveLayer(zNotice)
		}
	})
}

func (a *app) help() {
	names := make([]string, 0, len(a.keys))
	for name := range a.keys {
		names = append(names, name)
	}
	slices.Sort(names)

	msgs := []string{"vtframe", ""}
	for _, name := range names {
		msgs = append(msgs, fmt.Sprintf("%-8s %s", name, a.keys[name]))
	}
	msgs = append(msgs, "", "/fps N  /dump N  /help  /quit")

	quit, err := input.ParseBinding(a.keys["help"])
	if err != nil {
		quit = input.KeyBinding(terminal.KeyEscape)
	}
	a.eng.Modal(quit, msgs...)
}

func (a *app) dump(n int) {
	if a.eng.DumpFrames(n) {
		a.notify(fmt.Sprintf("dumping %d frame(s)", n))
		return
	}
	a.notify("no dump file configured")
}

// toggleFocus switches key delivery between the prompt handle and the scrollable log
func (a *app) toggleFocus() {
	a.scrolling = !a.scrolling
	if a.scrolling {
		a.eng.ActivateInputHandle("")
		a.eng.SetFocus(a.dash.log)
		a.notify("scroll mode")
		return
	}
	a.eng.SetFocus(nil)
	a.eng.ActivateInputHandle(a.prompt.line.Handle())
	a.notify("input mode")
}

// submit handles a line entered at the prompt
func (a *app) submit(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if !strings.HasPrefix(text, "/") {
		a.dash.Logf("> %s", text)
		return
	}

	fields := strings.Fields(text)
	arg := func(def int) int {
		if len(fields) < 2 {
			return def
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return def
		}
		return n
	}

	switch fields[0] {
	case "/fps":
		a.eng.SetFrameRateLimit(arg(a.eng.FrameRateLimit()))
		a.dash.Logf("frame rate limit %d", a.eng.FrameRateLimit())
	case "/dump":
		a.dump(arg(1))
	case "/help":
		a.help()
	case "/quit":
		a.eng.SignalExit()
	default:
		a.dash.Logf("unknown command %s", fields[0])
	}
}
