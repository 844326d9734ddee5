package input

import (
	"sync"

	"github.com/lixenwraith/vtframe/terminal"
)

// Queue is an unbounded FIFO of key events, safe for one producer and many consumers
type Queue struct {
	mu     sync.Mutex
	events []terminal.Event
}

// Push appends an event
func (q *Queue) Push(ev terminal.Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Pop removes and returns the oldest event
func (q *Queue) Pop() (terminal.Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return terminal.Event{}, false
	}
	ev := q.events[0]
	q.events[0] = terminal.Event{}
	q.events = q.events[1:]
	return ev, true
}

// Len returns the number of queued events
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Clear drops all queued events
func (q *Queue) Clear() {
	q.mu.Lock()
	q.events = nil
	q.mu.Unlock()
}
