package terminal

import (
	"bytes"
	"sync"
)

// Memory is an in-process Terminal with scripted input and captured output.
// Used for headless runs and tests
type Memory struct {
	mu      sync.Mutex
	width   int
	height  int
	keys    []Event
	out     bytes.Buffer
	writes  int
	cursor  bool
	inited  bool
	bells   int
	cleared int
}

// NewMemory creates a Memory terminal of the given size
func NewMemory(width, height int) *Memory {
	return &Memory{width: width, height: height, cursor: true}
}

func (m *Memory) Init() error {
	m.mu.Lock()
	m.inited = true
	m.mu.Unlock()
	return nil
}

func (m *Memory) Fini() {
	m.mu.Lock()
	m.inited = false
	m.cursor = true
	m.mu.Unlock()
}

func (m *Memory) Size() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, m.height
}

// SetSize changes the reported window size
func (m *Memory) SetSize(width, height int) {
	m.mu.Lock()
	m.width, m.height = width, height
	m.mu.Unlock()
}

// Push queues key events for ReadKey
func (m *Memory) Push(events ...Event) {
	m.mu.Lock()
	m.keys = append(m.keys, events...)
	m.mu.Unlock()
}

// PushBytes decodes raw input through a Parser and queues the result
func (m *Memory) PushBytes(data []byte) {
	var p Parser
	events := append(p.Feed(data), p.Flush()...)
	m.Push(events...)
}

func (m *Memory) KeyAvailable() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.keys) > 0
}

func (m *Memory) ReadKey() (Event, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.keys) == 0 {
		return Event{}, false
	}
	ev := m.keys[0]
	m.keys = m.keys[1:]
	return ev, true
}

func (m *Memory) Write(p []byte) error {
	m.mu.Lock()
	m.out.Write(p)
	m.writes++
	m.mu.Unlock()
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	m.cleared++
	m.out.Write(csiClear)
	m.mu.Unlock()
	return nil
}

func (m *Memory) SetCursorVisible(visible bool) error {
	m.mu.Lock()
	m.cursor = visible
	m.mu.Unlock()
	return nil
}

func (m *Memory) ResetColor() error {
	return m.Write(csiDefaultColors)
}

func (m *Memory) Bell() error {
	m.mu.Lock()
	m.bells++
	m.mu.Unlock()
	return nil
}

// Output returns a copy of everything written so far
func (m *Memory) Output() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return bytes.Clone(m.out.Bytes())
}

// Writes returns the number of Write calls
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Clears returns the number of Clear calls
func (m *Memory) Clears() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cleared
}

// CursorVisible reports the last cursor visibility set
func (m *Memory) CursorVisible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cursor
}

// Bells returns the number of Bell calls
func (m *Memory) Bells() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bells
}

// TakeOutput returns captured output and clears the capture buffer
func (m *Memory) TakeOutput() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := bytes.Clone(m.out.Bytes())
	m.out.Reset()
	return out
}
