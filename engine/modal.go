package engine

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/lixenwraith/vtframe/core"
	"github.com/lixenwraith/vtframe/input"
	"github.com/lixenwraith/vtframe/render"
)

// Modal pauses the main loop and draws a centered message window directly to the
// console until quit is pressed. It returns immediately; the channel closes once the
// modal is dismissed and the main loop resumed
func (e *Engine) Modal(quit input.Binding, messages ...string) <-chan struct{} {
	done := make(chan struct{})
	core.Go(func() {
		defer close(done)

		e.Pause()
		if !e.running.Load() {
			return
		}

		e.queue.Clear()
		frame := modalFrame(e.Dimensions(), quit, messages)
		if err := e.term.Write(frame); err != nil {
			e.log.Warn("modal write failed", "err", err)
		}
		if e.ringer != nil {
			e.ringer.Ring()
		}
		e.log.Debug("modal shown", "messages", len(messages), "quit", quit.String())

		e.awaitKey(quit)

		e.forceRedraw.Store(true)
		e.Resume()
	})
	return done
}

// awaitKey polls the global queue until quit arrives, discarding other keys
func (e *Engine) awaitKey(quit input.Binding) {
	for e.running.Load() {
		ev, ok := e.queue.Pop()
		if !ok {
			e.clock.Sleep(e.pausePoll)
			continue
		}
		if input.BindingOf(ev) == quit {
			return
		}
	}
}

// modalFrame renders the rounded modal window and its contents
func modalFrame(d core.Dimensions, quit input.Binding, messages []string) []byte {
	prompt := "<press " + strings.ToUpper(quit.String()) + " to continue>"

	inner := ansi.StringWidth(prompt)
	for _, m := range messages {
		inner = max(inner, ansi.StringWidth(m))
	}
	width := inner + 4
	height := 5 + len(messages)
	x := max(d.HorizontalCenter()-width/2, 0)
	y := max(d.VerticalCenter()-height/2-1, 0)

	ctx := render.NewContext()
	ctx.ResetColors()
	ctx.FillRect(x, y, width, height)
	ctx.DrawBoxStyle(x, y, width, height, render.BoxRounded)

	for i, m := range messages {
		ctx.SetCursorPosition(x+width/2-ansi.StringWidth(m)/2, y+2+i)
		ctx.DrawText(m)
	}
	ctx.SetCursorPosition(x+width/2-ansi.StringWidth(prompt)/2, y+height-2)
	ctx.DrawText(prompt)

	return ctx.Bytes()
}
