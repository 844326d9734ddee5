//go:build linux

package timing

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// rrMinPriority is the lowest SCHED_RR priority on Linux
const rrMinPriority = 1

type schedPrecision struct{}

// PlatformPrecision switches the calling thread to SCHED_RR for the duration of coarse sleeps
func PlatformPrecision() Precision {
	return schedPrecision{}
}

func (schedPrecision) Enable() (func(), error) {
	runtime.LockOSThread()

	saved, err := unix.SchedGetAttr(0, 0)
	if err != nil {
		runtime.UnlockOSThread()
		return func() {}, fmt.Errorf("sched_getattr: %w", err)
	}

	rr := *saved
	rr.Policy = unix.SCHED_RR
	rr.Priority = rrMinPriority
	rr.Nice = 0
	if err := unix.SchedSetAttr(0, &rr, 0); err != nil {
		runtime.UnlockOSThread()
		return func() {}, fmt.Errorf("sched_setattr SCHED_RR: %w", err)
	}

	return func() {
		// A thread still in SCHED_RR stays locked; it exits with its goroutine
		if err := unix.SchedSetAttr(0, saved, 0); err != nil {
			return
		}
		runtime.UnlockOSThread()
	}, nil
}
