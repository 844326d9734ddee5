package render

import (
	"fmt"
	"io"
	"strconv"
	"sync/atomic"
)

// FrameDump copies a requested number of upcoming frames to a writer for offline inspection.
// Request may be called from any goroutine; Capture only from the main loop
type FrameDump struct {
	w       io.Writer
	pending atomic.Int64
	seq     int
}

// NewFrameDump creates a dumper writing to w
func NewFrameDump(w io.Writer) *FrameDump {
	return &FrameDump{w: w}
}

// Request schedules the next n frames for capture, replacing any outstanding request
func (d *FrameDump) Request(n int) {
	d.pending.Store(int64(max(n, 0)))
}

// Pending returns how many frames remain to be captured
func (d *FrameDump) Pending() int {
	return int(d.pending.Load())
}

// Capture writes frame if a request is outstanding. Escape bytes are quoted so the dump stays readable
func (d *FrameDump) Capture(frame []byte) error {
	if d == nil || d.w == nil || d.pending.Load() <= 0 {
		return nil
	}
	d.pending.Add(-1)
	d.seq++

	if _, err := fmt.Fprintf(d.w, "--- frame %d (%d bytes) ---\n", d.seq, len(frame)); err != nil {
		return err
	}
	q := strconv.AppendQuote(nil, string(frame))
	q = append(q, '\n')
	_, err := d.w.Write(q)
	return err
}
