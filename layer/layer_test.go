package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vtframe/core"
	"github.com/lixenwraith/vtframe/input"
	"github.com/lixenwraith/vtframe/render"
	"github.com/lixenwraith/vtframe/terminal"
)

type recordingLayer struct {
	Base
	name   string
	events *[]string
	args   []any
	ticks  int
	onShow func()
}

func newRecordingLayer(name string, events *[]string) *recordingLayer {
	l := &recordingLayer{name: name, events: events}
	l.AddTask("Tick", func(core.FrameState) { l.ticks++ })
	l.AddTask("Blink", func(core.FrameState) {})
	return l
}

func (l *recordingLayer) TypeName() string { return "Recording" + l.name }

func (l *recordingLayer) OnShow(args ...any) {
	l.args = args
	if l.onShow != nil {
		l.onShow()
	}
	*l.events = append(*l.events, "show:"+l.name)
}

func (l *recordingLayer) OnHide() {
	*l.events = append(*l.events, "hide:"+l.name)
}

type plainLayer struct{ Base }

func TestTaskKeyUsesTypeName(t *testing.T) {
	var events []string
	assert.Equal(t, "RecordingA.Tick", TaskKey(newRecordingLayer("A", &events), "Tick"))
	assert.Equal(t, "plainLayer.Run", TaskKey(&plainLayer{}, "Run"))
}

func TestRegisterRejectsEmptyAndDuplicate(t *testing.T) {
	r := NewRegistry(3, nil, nil)
	var events []string

	assert.ErrorIs(t, r.Register("", newRecordingLayer("A", &events)), ErrEmptyID)
	assert.ErrorIs(t, r.Register("a", nil), ErrNilLayer)
	require.NoError(t, r.Register("a", newRecordingLayer("A", &events)))
	assert.ErrorIs(t, r.Register("a", newRecordingLayer("A", &events)), ErrDuplicateID)
}

func TestCapacityThreeScenario(t *testing.T) {
	tasks := NewTasks()
	r := NewRegistry(3, tasks, nil)
	var events []string
	a := newRecordingLayer("A", &events)
	b := newRecordingLayer("B", &events)
	require.NoError(t, r.Register("A", a))
	require.NoError(t, r.Register("B", b))

	assert.True(t, r.Activate(0, "A"))
	assert.True(t, r.Activate(1, "B"))
	assert.True(t, r.Visible("A"))
	assert.True(t, r.Visible("B"))
	id, l := r.At(0)
	assert.Equal(t, "A", id)
	assert.Same(t, a, l)
	assert.True(t, tasks.Has("RecordingA.Tick"))
	assert.Equal(t, 4, tasks.Len())

	assert.True(t, r.Activate(0, ""))
	assert.False(t, r.Visible("A"))
	id, l = r.At(0)
	assert.Empty(t, id)
	assert.Nil(t, l)
	assert.False(t, tasks.Has("RecordingA.Tick"))
	assert.False(t, tasks.Has("RecordingA.Blink"))
	assert.True(t, tasks.Has("RecordingB.Tick"))
	assert.Equal(t, 1, r.ActiveCount())
}

func TestActivateReplacesOccupantInOrder(t *testing.T) {
	tasks := NewTasks()
	r := NewRegistry(2, tasks, nil)
	var events []string
	a := newRecordingLayer("A", &events)
	b := newRecordingLayer("B", &events)
	require.NoError(t, r.Register("A", a))
	require.NoError(t, r.Register("B", b))

	r.Activate(1, "A")
	events = events[:0]

	var tasksAtShow []string
	b.onShow = func() { tasksAtShow = tasks.Keys() }
	r.Activate(1, "B", "x", 7)

	assert.Equal(t, []string{"hide:A", "show:B"}, events)
	assert.ElementsMatch(t, []string{"RecordingB.Tick", "RecordingB.Blink"}, tasksAtShow)
	assert.Equal(t, []any{"x", 7}, b.args)
	assert.False(t, r.Visible("A"))
	assert.Equal(t, 1, r.ZIndex("B"))
}

func TestActivateNoOps(t *testing.T) {
	r := NewRegistry(3, nil, nil)
	var events []string
	require.NoError(t, r.Register("A", newRecordingLayer("A", &events)))

	assert.False(t, r.Activate(3, "A"))
	assert.False(t, r.Activate(-1, "A"))
	assert.False(t, r.Activate(0, "missing"))
	assert.Empty(t, events)
	assert.Equal(t, -1, r.ZIndex("A"))

	id, l := r.At(99)
	assert.Empty(t, id)
	assert.Nil(t, l)
}

func TestLayerOccupiesOneSlot(t *testing.T) {
	tasks := NewTasks()
	r := NewRegistry(3, tasks, nil)
	var events []string
	require.NoError(t, r.Register("A", newRecordingLayer("A", &events)))

	r.Activate(0, "A")
	r.Activate(2, "A")

	assert.Equal(t, 2, r.ZIndex("A"))
	assert.Equal(t, 1, r.ActiveCount())
	assert.Equal(t, []string{"show:A", "hide:A", "show:A"}, events)
	assert.Equal(t, 2, tasks.Len())
}

func TestUnregisterHidesActiveLayer(t *testing.T) {
	tasks := NewTasks()
	r := NewRegistry(3, tasks, nil)
	var events []string
	require.NoError(t, r.Register("A", newRecordingLayer("A", &events)))
	r.Activate(0, "A")

	assert.True(t, r.Unregister("A"))
	assert.False(t, r.Unregister("A"))
	assert.Equal(t, 0, tasks.Len())
	assert.Equal(t, []string{"show:A", "hide:A"}, events)
	_, ok := r.Get("A")
	assert.False(t, ok)
}

func TestEachAscendingZ(t *testing.T) {
	r := NewRegistry(3, nil, nil)
	var events []string
	for _, n := range []string{"A", "B", "C"} {
		require.NoError(t, r.Register(n, newRecordingLayer(n, &events)))
	}
	r.Activate(2, "A")
	r.Activate(0, "C")

	var order []string
	r.Each(func(z int, id string, _ Layer) { order = append(order, id) })
	assert.Equal(t, []string{"C", "A"}, order)
}

func TestSameTypeInstancesKeepFirstTasks(t *testing.T) {
	tasks := NewTasks()
	r := NewRegistry(3, tasks, nil)
	var events []string
	first := newRecordingLayer("A", &events)
	second := newRecordingLayer("A", &events)
	require.NoError(t, r.Register("first", first))
	require.NoError(t, r.Register("second", second))

	require.True(t, r.Activate(0, "first"))
	require.True(t, r.Activate(1, "second"))
	assert.Equal(t, 2, tasks.Len())

	tasks.Run(core.FrameState{})
	assert.Equal(t, 1, first.ticks)
	assert.Equal(t, 0, second.ticks)

	require.True(t, r.Hide("second"))
	assert.True(t, tasks.Has("RecordingA.Tick"))
	assert.True(t, tasks.Has("RecordingA.Blink"))
	tasks.Run(core.FrameState{})
	assert.Equal(t, 2, first.ticks)

	require.True(t, r.Hide("first"))
	assert.Equal(t, 0, tasks.Len())
}

func TestTasksAddIsTryAdd(t *testing.T) {
	tasks := NewTasks()
	calls := 0
	assert.True(t, tasks.Add("k", func(core.FrameState) { calls++ }))
	assert.False(t, tasks.Add("k", func(core.FrameState) { calls += 100 }))
	assert.False(t, tasks.Add("nil", nil))

	tasks.Run(core.FrameState{})
	assert.Equal(t, 1, calls)
}

func TestTasksSelfRemovalDuringRun(t *testing.T) {
	tasks := NewTasks()
	calls := 0
	tasks.Add("once", func(core.FrameState) {
		calls++
		tasks.Remove("once")
	})

	tasks.Run(core.FrameState{})
	tasks.Run(core.FrameState{})
	assert.Equal(t, 1, calls)
	assert.False(t, tasks.Has("once"))
}

type stubWidget struct {
	WidgetBase
	keys  []string
	drawn int
}

func (w *stubWidget) Draw(*render.Context) { w.drawn++ }

func (w *stubWidget) OnKey(ev terminal.Event) {
	w.keys = append(w.keys, "key:"+string(ev.Rune))
}

func TestFocusMutualExclusion(t *testing.T) {
	var f Focus
	a, b, c := &stubWidget{}, &stubWidget{}, &stubWidget{}

	f.Set(a)
	assert.True(t, a.Focused())

	f.Set(b)
	assert.False(t, a.Focused())
	assert.True(t, b.Focused())
	assert.False(t, c.Focused())
	assert.Same(t, b, f.Current())

	f.Set(b)
	assert.True(t, b.Focused())

	f.Release(a)
	assert.True(t, b.Focused())
	f.Release(b)
	assert.False(t, b.Focused())
	assert.Nil(t, f.Current())
}

func TestHidingLayerReleasesFocus(t *testing.T) {
	r := NewRegistry(1, nil, nil)
	var events []string
	l := newRecordingLayer("A", &events)
	w := &stubWidget{}
	l.AddWidget(w)
	require.NoError(t, r.Register("A", l))
	r.Activate(0, "A")
	r.Focus().Set(w)

	owner, ok := r.OwnerOf(w)
	assert.True(t, ok)
	assert.Same(t, l, owner)

	r.Deactivate(0)
	assert.False(t, w.Focused())
	assert.Nil(t, r.Focus().Current())
}

func TestDeliverKeyModes(t *testing.T) {
	ev := terminal.RuneEvent('x')
	cases := []struct {
		mode KeyActionMode
		want []string
	}{
		{KeyActionsDisabled, []string{"key:x"}},
		{KeyActionsOverride, []string{"action"}},
		{KeyActionsBefore, []string{"action", "key:x"}},
		{KeyActionsAfter, []string{"key:x", "action"}},
	}
	for _, tc := range cases {
		w := &stubWidget{}
		w.SetKeyActionMode(tc.mode)
		w.AddKeyAction(input.RuneBinding('x'), func(terminal.Event) { w.keys = append(w.keys, "action") })

		DeliverKey(w, ev)
		assert.Equal(t, tc.want, w.keys, "mode %d", tc.mode)
	}
}

func TestWidgetKeyActionEditing(t *testing.T) {
	w := &stubWidget{}
	b := input.KeyBinding(terminal.KeyEnter)
	hits := ""

	assert.False(t, w.OverrideKeyAction(b, func(terminal.Event) { hits += "o" }))
	assert.True(t, w.AddKeyAction(b, func(terminal.Event) { hits += "a" }))
	assert.False(t, w.AddKeyAction(b, func(terminal.Event) { hits += "x" }))
	assert.True(t, w.OverrideKeyAction(b, func(terminal.Event) { hits += "o" }))

	w.KeyActions().Handle(terminal.KeyEvent(terminal.KeyEnter, terminal.ModNone))
	assert.Equal(t, "o", hits)

	assert.True(t, w.RemoveKeyAction(b))
	assert.False(t, w.RemoveKeyAction(b))
}

func TestBaseDrawSkipsHiddenWidgets(t *testing.T) {
	var l plainLayer
	shown, hidden := &stubWidget{}, &stubWidget{}
	hidden.SetVisible(false)
	l.AddWidget(shown, hidden)

	l.Draw(render.NewContext())
	assert.Equal(t, 1, shown.drawn)
	assert.Equal(t, 0, hidden.drawn)
	assert.True(t, l.KeyActionsEnabled())
	l.SetKeyActionsEnabled(false)
	assert.False(t, l.KeyActionsEnabled())
}
