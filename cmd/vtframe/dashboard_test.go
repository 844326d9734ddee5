package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vtframe/config"
	"github.com/lixenwraith/vtframe/core"
	"github.com/lixenwraith/vtframe/engine"
	"github.com/lixenwraith/vtframe/terminal"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	cfg := config.DefaultConfig()
	th, err := parseTheme(cfg.Theme)
	require.NoError(t, err)

	eng := engine.New(terminal.NewMemory(80, 24))
	a, err := newApp(eng, th, cfg.Keys)
	require.NoError(t, err)
	return a
}

func TestAppInitialLayers(t *testing.T) {
	a := newTestApp(t)
	assert.True(t, a.eng.IsLayerVisible(idDashboard))
	assert.True(t, a.eng.IsLayerVisible(idPrompt))
	assert.False(t, a.eng.IsLayerVisible(idNotice))
	assert.Equal(t, a.prompt.line.Handle(), a.eng.ActiveInputHandle())
	assert.True(t, a.eng.HasUpdateTask("dashboard.Metrics"))
	assert.True(t, a.eng.HasUpdateTask("prompt.Pump"))
}

func TestSubmitCommands(t *testing.T) {
	a := newTestApp(t)

	a.submit("hello")
	assert.Contains(t, a.dash.log.Lines(), "> hello")

	a.submit("/fps 30")
	assert.Equal(t, 30, a.eng.FrameRateLimit())

	a.submit("/fps nope")
	assert.Equal(t, 30, a.eng.FrameRateLimit())

	a.submit("/bogus")
	assert.Contains(t, a.dash.log.Lines(), "unknown command /bogus")

	a.submit("/dump 2")
	assert.True(t, a.eng.IsLayerVisible(idNotice))
	assert.Contains(t, a.notice.label.Text, "no dump file configured")

	a.submit("   ")
	a.submit("/quit")
	assert.False(t, a.eng.Running())
}

func TestToggleFocus(t *testing.T) {
	a := newTestApp(t)

	a.toggleFocus()
	assert.True(t, a.scrolling)
	assert.Empty(t, a.eng.ActiveInputHandle())
	assert.Same(t, a.dash.log, a.eng.Focus().Current())

	a.toggleFocus()
	assert.False(t, a.scrolling)
	assert.Nil(t, a.eng.Focus().Current())
	assert.Equal(t, a.prompt.line.Handle(), a.eng.ActiveInputHandle())
}

func TestNewAppRejectsUnknownAction(t *testing.T) {
	th, err := parseTheme(config.DefaultConfig().Theme)
	require.NoError(t, err)

	_, err = newApp(engine.New(terminal.NewMemory(80, 24)), th, map[string]string{"explode": "x"})
	assert.ErrorContains(t, err, "explode")
}

func TestBenchPrintsMetrics(t *testing.T) {
	var out bytes.Buffer
	opts := benchOptions{duration: 200 * time.Millisecond, width: 80, height: 24}
	require.NoError(t, runBench(context.Background(), config.DefaultConfig(), opts, &out))

	s := out.String()
	assert.Contains(t, s, "frame.written")
	assert.Contains(t, s, "terminal.backend")
	assert.Contains(t, s, "memory")
	assert.Contains(t, s, "terminal.writes")
}

func TestBenchRejectsBadSize(t *testing.T) {
	err := runBench(context.Background(), config.DefaultConfig(), benchOptions{duration: time.Millisecond}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestFormatKeyEvent(t *testing.T) {
	tests := []struct {
		ev   terminal.Event
		want string
	}{
		{terminal.RuneEvent('a'), "KEY: 'a'"},
		{terminal.RuneEvent('é'), "KEY: U+00E9"},
		{terminal.KeyEvent(terminal.KeyUp, terminal.ModShift|terminal.ModCtrl), "KEY: Shift+Ctrl+up"},
		{terminal.KeyEvent(terminal.KeyCtrlQ, terminal.ModNone), "KEY: ctrl_q"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatKeyEvent(tt.ev))
	}
}

func TestKeyLogDrainsHandle(t *testing.T) {
	eng := engine.New(terminal.NewMemory(80, 24), engine.WithLayerCount(1))
	k := newKeyLog(eng)
	require.NoError(t, eng.RegisterLayer(keyLogHandle, k))
	require.True(t, eng.SetLayer(0, keyLogHandle))
	assert.Equal(t, keyLogHandle, eng.ActiveInputHandle())

	eng.InjectKey(terminal.RuneEvent('x'))
	eng.InjectKey(terminal.KeyEvent(terminal.KeyF5, terminal.ModNone))
	k.drain(core.FrameState{})

	assert.Equal(t, 2, k.count)
	assert.Equal(t, []string{"KEY: 'x'", "KEY: f5"}, k.view.Lines())
}
