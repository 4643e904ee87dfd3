// Package patch rewrites the process's view of time.Now so unmodified code
// observes the fixed travel instant.
//
// Runtime patching stands in for dynamic-loader interposition, which Go has
// no equivalent of. Apply the patch before the program exposes any
// concurrency; it affects every caller of time.Now from then on. Timers,
// tickers and the runtime's monotonic clock stay genuine, so elapsed-time
// behavior is undisturbed. Values returned by the patched time.Now carry no
// monotonic reading, which means time.Since on them measures against the
// fake wall clock; callers measuring durations should use
// travel.ClockGettime with ClockMonotonic instead.
package patch

import (
	"sync"
	"time"

	"bou.ke/monkey"

	"github.com/LLLLLLs/timetravel/log"
	"github.com/LLLLLLs/timetravel/log/field"
	"github.com/LLLLLLs/timetravel/sign"
	"github.com/LLLLLLs/timetravel/travel"
)

var (
	mu      sync.Mutex
	patched bool

	lg = log.NewNopLogger()
)

// SetLogger attaches a logger. Silent by default.
func SetLogger(l log.Logger) {
	if l == nil {
		lg = log.NewNopLogger()
		return
	}
	lg = l
}

// Patch replaces time.Now process-wide. Idempotent.
func Patch() {
	mu.Lock()
	defer mu.Unlock()
	if patched {
		return
	}
	monkey.Patch(time.Now, Now)
	patched = true
	lg.Info("time travel engaged", field.Int64(sign.INSTANT.String(), travel.Instant()))
}

// Unpatch restores the genuine time.Now.
func Unpatch() {
	mu.Lock()
	defer mu.Unlock()
	if !patched {
		return
	}
	monkey.Unpatch(time.Now)
	patched = false
	lg.Info("time travel disengaged")
}
