//go:build linux

package timing

import (
	"errors"
	"runtime"
	"sync"
	"testing"

	"golang.org/x/sys/unix"
)

// requireRealtime skips when the process may not switch to SCHED_RR
func requireRealtime(t *testing.T) {
	t.Helper()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	restore, err := PlatformPrecision().Enable()
	defer restore()
	if errors.Is(err, unix.EPERM) {
		t.Skip("SCHED_RR not permitted (needs CAP_SYS_NICE or RLIMIT_RTPRIO)")
	}
	if err != nil {
		t.Fatalf("Unexpected enable error: %v", err)
	}
}

func threadPolicy(t *testing.T) uint32 {
	attr, err := unix.SchedGetAttr(0, 0)
	if err != nil {
		t.Fatalf("sched_getattr: %v", err)
	}
	return attr.Policy
}

func TestPlatformPrecisionRestoresPolicy(t *testing.T) {
	requireRealtime(t)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	original := threadPolicy(t)
	restore, err := PlatformPrecision().Enable()
	if err != nil {
		t.Fatalf("Unexpected enable error: %v", err)
	}
	if got := threadPolicy(t); got != unix.SCHED_RR {
		t.Errorf("Expected SCHED_RR while enabled, got %d", got)
	}
	restore()
	if got := threadPolicy(t); got != original {
		t.Errorf("Expected policy %d after restore, got %d", original, got)
	}
}

func TestPlatformPrecisionSharedAcrossGoroutines(t *testing.T) {
	requireRealtime(t)

	p := PlatformPrecision()
	var wg sync.WaitGroup
	var mu sync.Mutex
	leaked := 0

	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()

			for range 200 {
				restore, err := p.Enable()
				if err != nil {
					t.Errorf("Unexpected enable error: %v", err)
					return
				}
				runtime.Gosched()
				restore()
				attr, err := unix.SchedGetAttr(0, 0)
				if err != nil {
					t.Errorf("sched_getattr: %v", err)
					return
				}
				if attr.Policy == unix.SCHED_RR {
					mu.Lock()
					leaked++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	if leaked != 0 {
		t.Errorf("Expected no thread left in SCHED_RR, got %d", leaked)
	}
}

func TestPlatformPrecisionRestoreAlwaysUsable(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	original := threadPolicy(t)
	restore, err := PlatformPrecision().Enable()
	if restore == nil {
		t.Fatal("Expected non-nil restore")
	}
	restore()
	if err != nil {
		t.Logf("enable failed: %v", err)
	}
	if got := threadPolicy(t); got != original {
		t.Errorf("Expected policy %d after restore, got %d", original, got)
	}
}
