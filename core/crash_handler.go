package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/vtframe/terminal"
)

var (
	crashMu      sync.Mutex
	crashCleanup func()
)

// SetCrashCleanup registers the console restore hook invoked before the stack trace is printed
// Passing nil falls back to terminal.EmergencyReset on stdout
func SetCrashCleanup(fn func()) {
	crashMu.Lock()
	crashCleanup = fn
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	cleanup := crashCleanup
	crashMu.Unlock()

	if cleanup != nil {
		cleanup()
	} else {
		terminal.EmergencyReset(os.Stdout)
	}

	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}

// Guard wraps fn so a panic inside it is routed through HandleCrash
// Used for goroutines started by errgroup, which cannot use Go directly
func Guard(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		return fn()
	}
}
