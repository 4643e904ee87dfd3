//go:build linux

package travel

import (
	"syscall"
	"unsafe"
)

// resolveTime binds the wall-clock seconds reader. Modern libc derives
// time(2) from clock_gettime(CLOCK_REALTIME), and so does this binding;
// the realtime clock cannot fail on Linux.
func resolveTime() func(*int64) int64 {
	return func(t *int64) int64 {
		var ts Timespec
		_ = sysClockGettime(ClockRealtime, &ts)
		if t != nil {
			*t = ts.Sec
		}
		return ts.Sec
	}
}

func resolveGettimeofday() func(*Timeval) error {
	return sysGettimeofday
}

func resolveClockGettime() func(ClockID, *Timespec) error {
	return sysClockGettime
}

func sysGettimeofday(tv *Timeval) error {
	if tv == nil {
		// The kernel treats a NULL output as "don't fill".
		return syscall.Gettimeofday(nil)
	}
	var stv syscall.Timeval
	if err := syscall.Gettimeofday(&stv); err != nil {
		return err
	}
	tv.Sec = int64(stv.Sec)
	tv.Usec = int64(stv.Usec)
	return nil
}

func sysClockGettime(id ClockID, ts *Timespec) error {
	var sts syscall.Timespec
	var errno syscall.Errno
	if ts == nil {
		_, _, errno = syscall.Syscall(syscall.SYS_CLOCK_GETTIME, uintptr(id), 0, 0)
	} else {
		_, _, errno = syscall.Syscall(syscall.SYS_CLOCK_GETTIME, uintptr(id), uintptr(unsafe.Pointer(&sts)), 0)
	}
	if errno != 0 {
		return errno
	}
	if ts != nil {
		ts.Sec = int64(sts.Sec)
		ts.Nsec = int64(sts.Nsec)
	}
	return nil
}
