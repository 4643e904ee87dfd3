// Command traveldemo engages process-wide time travel, then prints what the
// process observes: the wall-clock seconds reader's result, time.Now, the
// time of day and one monotonic read. With the default instant the first
// three lines show 1661140800 regardless of the host clock.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/LLLLLLs/timetravel/log"
	"github.com/LLLLLLs/timetravel/log/field"
	"github.com/LLLLLLs/timetravel/patch"
	"github.com/LLLLLLs/timetravel/sign"
	"github.com/LLLLLLs/timetravel/travel"
)

func main() {
	lg := log.NewDefaultLogger()
	travel.SetLogger(lg)
	patch.SetLogger(lg)
	patch.Patch()

	var sec int64
	fmt.Println(travel.Time(&sec))
	fmt.Println(time.Now().Unix())

	var tv travel.Timeval
	if err := travel.Gettimeofday(&tv, nil); err != nil {
		lg.Error("gettimeofday failed",
			field.String(sign.ENTRY.String(), "gettimeofday"),
			field.Err(err),
		)
		os.Exit(1)
	}
	fmt.Printf("%d.%06d\n", tv.Sec, tv.Usec)

	var ts travel.Timespec
	if err := travel.ClockGettime(travel.ClockMonotonic, &ts); err != nil {
		lg.Error("clock read failed",
			field.String(sign.CLOCK_ID.String(), travel.ClockMonotonic.String()),
			field.Err(err),
		)
		os.Exit(1)
	}
	fmt.Printf("monotonic %d.%09d\n", ts.Sec, ts.Nsec)
}
