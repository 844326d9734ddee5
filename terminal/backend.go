package terminal

// Backend abstracts platform-specific console operations
type Backend interface {
	// Init enters raw mode
	Init() error
	// Fini restores the mode captured by Init. Safe to call more than once
	Fini()

	// Size returns the current window size in cells
	Size() (width, height int)

	// Write writes raw bytes to the console output
	Write(p []byte) error

	// Read blocks until input is available, the stop channel is closed, or an error occurs.
	// A nil slice with nil error means stop or EOF
	Read(stopCh <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback for window resize notifications
	SetResizeHandler(handler func(width, height int))
}

// BackendKind selects a Backend implementation by name
type BackendKind string

const (
	BackendANSI  BackendKind = "ansi"
	BackendTcell BackendKind = "tcell"
)

// NewBackend returns the backend for kind, defaulting to the ANSI backend on unknown names
func NewBackend(kind BackendKind) (Backend, error) {
	switch kind {
	case BackendTcell:
		return newTcellBackend()
	default:
		return newBackend(), nil
	}
}
