package timing

// Precision raises timer resolution for the calling goroutine during coarse sleeps.
// Per-call state belongs in the returned restore; one Precision serves several loops.
// The returned restore is never nil, even on error, and must run on the same goroutine
type Precision interface {
	Enable() (restore func(), err error)
}

type noopPrecision struct{}

func (noopPrecision) Enable() (func(), error) { return func() {}, nil }

// NoPrecision returns a Precision that does nothing
func NoPrecision() Precision { return noopPrecision{} }
