//go:build !unix

package terminal

import "errors"

var errUnsupported = errors.New("terminal: raw console not supported on this platform")

type nullBackend struct{}

func newBackend() Backend { return nullBackend{} }

func (nullBackend) Init() error                         { return errUnsupported }
func (nullBackend) Fini()                               {}
func (nullBackend) Size() (int, int)                    { return 80, 24 }
func (nullBackend) Write(p []byte) error                { return errUnsupported }
func (nullBackend) Read(<-chan struct{}) ([]byte, error) { return nil, errUnsupported }
func (nullBackend) SetResizeHandler(func(int, int))     {}

func resetTerminalMode() {}

func newTcellBackend() (Backend, error) { return nil, errUnsupported }
