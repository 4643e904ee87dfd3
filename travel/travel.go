// Package travel implements a fixed-instant time interception layer.
//
// The package exposes drop-in replacements for the three call shapes a
// process normally uses to read time: Time, Gettimeofday and ClockGettime.
// Each replacement obtains the genuine result from the underlying platform
// facility, then overwrites only the seconds field with the fixed travel
// instant. Sub-second fields, error results and non-wall clocks always pass
// through untouched, so callers can still detect real failures and measure
// real elapsed durations.
//
// The travel instant is fixed once per process, by the first of Init or the
// first intercepted read, and is immutable afterwards.
package travel

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/LLLLLLs/timetravel/log"
	"github.com/LLLLLLs/timetravel/log/field"
	"github.com/LLLLLLs/timetravel/sign"
)

// DefaultInstant is the built-in travel destination.
const DefaultInstant int64 = 1661140800 // date -d "2022-08-22" '+%s'

// EnvTravelAt names the environment variable consulted when Init was not
// called before the first read. Accepts integer epoch seconds or an RFC3339
// timestamp.
const EnvTravelAt = "TRAVEL_AT"

var (
	instantOnce sync.Once
	instant     int64

	lg = log.NewNopLogger()
)

// SetLogger attaches a logger to the layer. The layer is silent by default
// since it may be linked into processes that own their own output.
func SetLogger(l log.Logger) {
	if l == nil {
		lg = log.NewNopLogger()
		return
	}
	lg = l
}

// Init fixes the travel instant explicitly. Only the first of Init or the
// first intercepted read takes effect; later calls are no-ops.
func Init(unix int64) {
	instantOnce.Do(func() {
		instant = unix
		lg.Info("travel instant fixed", field.Int64(sign.INSTANT.String(), unix))
	})
}

// Instant returns the fixed travel instant, loading it on first use.
func Instant() int64 {
	instantOnce.Do(loadInstant)
	return instant
}

func loadInstant() {
	instant = DefaultInstant
	v := os.Getenv(EnvTravelAt)
	if v == "" {
		return
	}
	sec, err := parseInstant(v)
	if err != nil {
		// Travelling to the wrong instant is worse than failing loudly.
		panic(err)
	}
	instant = sec
	lg.Info("travel instant loaded",
		field.String(sign.TRAVEL_AT.String(), v),
		field.Int64(sign.INSTANT.String(), sec),
	)
}

func parseInstant(v string) (int64, error) {
	if sec, err := strconv.ParseInt(v, 10, 64); err == nil {
		return sec, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s %q", EnvTravelAt, v)
	}
	return t.Unix(), nil
}
