package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"pkt.systems/pslog"
)

const logFileName = "vtframe.log"

// setupLogging returns a file logger under dir when debug is set. The console belongs
// to the frame pipeline, so without debug all log output is discarded
func setupLogging(dir string, debug bool) (pslog.Logger, io.Closer, error) {
	if !debug {
		return pslog.NewWithOptions(io.Discard, pslog.Options{Mode: pslog.ModeStructured, NoColor: true}), nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, errors.Wrapf(err, "create log dir %s", dir)
	}
	f, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open log file")
	}

	logger := pslog.NewWithOptions(f, pslog.Options{
		Mode:     pslog.ModeStructured,
		NoColor:  true,
		MinLevel: pslog.DebugLevel,
	})
	return logger, f, nil
}

// lazyFile opens its path on the first write so unused dump files are never created
type lazyFile struct {
	path string
	f    *os.File
}

func (l *lazyFile) Write(p []byte) (int, error) {
	if l.f == nil {
		f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return 0, errors.Wrap(err, "open dump file")
		}
		l.f = f
	}
	return l.f.Write(p)
}

func (l *lazyFile) Close() error {
	if l.f == nil {
		return nil
	}
	return l.f.Close()
}
