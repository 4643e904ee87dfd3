package travel

import (
	"strconv"
	"sync"
)

// Timeval mirrors the {seconds, microseconds} pair of gettimeofday(2).
type Timeval struct {
	Sec  int64
	Usec int64
}

// Timespec mirrors the {seconds, nanoseconds} pair of clock_gettime(2).
type Timespec struct {
	Sec  int64
	Nsec int64
}

// Timezone mirrors the obsolete second argument of gettimeofday(2). It is
// accepted for call-shape compatibility and never examined.
type Timezone struct {
	Minuteswest int32
	Dsttime     int32
}

// ClockID selects the clock read by ClockGettime. Values follow Linux
// numbering.
type ClockID int32

const (
	ClockRealtime ClockID = iota
	ClockMonotonic
	ClockProcessCPUTimeID
	ClockThreadCPUTimeID
	ClockMonotonicRaw
)

// ClockBoottime is the Linux suspend-aware monotonic clock.
const ClockBoottime ClockID = 7

func (c ClockID) String() string {
	switch c {
	case ClockRealtime:
		return "realtime"
	case ClockMonotonic:
		return "monotonic"
	case ClockProcessCPUTimeID:
		return "process_cputime"
	case ClockThreadCPUTimeID:
		return "thread_cputime"
	case ClockMonotonicRaw:
		return "monotonic_raw"
	case ClockBoottime:
		return "boottime"
	}
	return "clock_" + strconv.Itoa(int(c))
}

// Genuine-facility bindings. Each call shape resolves its underlying
// implementation independently on first use and keeps it for the life of
// the process.
var (
	realTimeOnce sync.Once
	realTime     func(*int64) int64

	realGettimeofdayOnce sync.Once
	realGettimeofday     func(*Timeval) error

	realClockGettimeOnce sync.Once
	realClockGettime     func(ClockID, *Timespec) error
)

func setTravel(sec *int64) {
	if sec == nil {
		return
	}
	*sec = Instant()
}

// Time reads the wall clock, then reports the travel instant both as the
// return value and through t when t is non-nil. The underlying facility
// cannot fail, so no error is modeled.
func Time(t *int64) int64 {
	realTimeOnce.Do(func() { realTime = resolveTime() })
	res := realTime(t)
	setTravel(t)
	setTravel(&res)
	metrics().intercepted.WithLabelValues("time").Inc()
	return res
}

// Gettimeofday reads the time of day into tv. A genuine failure is returned
// untouched with tv left as is; on success only the seconds field is
// rewritten, microseconds stay as observed. tz is ignored.
func Gettimeofday(tv *Timeval, tz *Timezone) error {
	realGettimeofdayOnce.Do(func() { realGettimeofday = resolveGettimeofday() })
	if err := realGettimeofday(tv); err != nil {
		metrics().failures.WithLabelValues("gettimeofday").Inc()
		return err
	}
	if tv != nil {
		setTravel(&tv.Sec)
	}
	metrics().intercepted.WithLabelValues("gettimeofday").Inc()
	return nil
}

// GetTimeOfDay aliases Gettimeofday. The platform facility this layer
// mirrors is reachable under both a public and an internal name, and
// callers may bind either.
func GetTimeOfDay(tv *Timeval, tz *Timezone) error {
	return Gettimeofday(tv, tz)
}

// ClockGettime reads the clock named by id into ts. Failures and non-wall
// clocks pass through untouched; only a successful realtime read has its
// seconds field rewritten, nanoseconds stay as observed.
func ClockGettime(id ClockID, ts *Timespec) error {
	realClockGettimeOnce.Do(func() { realClockGettime = resolveClockGettime() })
	if err := realClockGettime(id, ts); err != nil {
		metrics().failures.WithLabelValues("clock_gettime").Inc()
		return err
	}
	if id != ClockRealtime {
		metrics().passthrough.WithLabelValues(id.String()).Inc()
		return nil
	}
	if ts != nil {
		setTravel(&ts.Sec)
	}
	metrics().intercepted.WithLabelValues("clock_gettime").Inc()
	return nil
}
