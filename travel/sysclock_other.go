//go:build !linux

package travel

import (
	"sync"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
)

// Degraded fallback for platforms without direct clock_gettime access: the
// wall clock comes from a swappable clockwork source and monotonic clocks
// from a process-start reference. CPU-time clocks are not available here.

var (
	sysClockMu sync.RWMutex
	sysClock   clockwork.Clock = clockwork.NewRealClock()

	processStart = time.Now()
)

// SetSystemClock swaps the genuine time source so tests can freeze the
// sub-second fields. Pass nil to reset to the real clock.
func SetSystemClock(c clockwork.Clock) {
	sysClockMu.Lock()
	defer sysClockMu.Unlock()
	if c == nil {
		sysClock = clockwork.NewRealClock()
		return
	}
	sysClock = c
}

func systemNow() time.Time {
	sysClockMu.RLock()
	defer sysClockMu.RUnlock()
	return sysClock.Now()
}

func resolveTime() func(*int64) int64 {
	return func(t *int64) int64 {
		sec := systemNow().Unix()
		if t != nil {
			*t = sec
		}
		return sec
	}
}

func resolveGettimeofday() func(*Timeval) error {
	return func(tv *Timeval) error {
		if tv == nil {
			// Matches the kernel treating a NULL output as "don't fill".
			return nil
		}
		now := systemNow()
		tv.Sec = now.Unix()
		tv.Usec = int64(now.Nanosecond() / 1e3)
		return nil
	}
}

func resolveClockGettime() func(ClockID, *Timespec) error {
	return func(id ClockID, ts *Timespec) error {
		if ts == nil {
			return syscall.EFAULT
		}
		switch id {
		case ClockRealtime:
			now := systemNow()
			ts.Sec = now.Unix()
			ts.Nsec = int64(now.Nanosecond())
		case ClockMonotonic, ClockMonotonicRaw, ClockBoottime:
			d := time.Since(processStart)
			ts.Sec = int64(d / time.Second)
			ts.Nsec = int64(d % time.Second)
		default:
			return syscall.EINVAL
		}
		return nil
	}
}
