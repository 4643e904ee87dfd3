package travel

import (
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeAlwaysReturnsInstant(t *testing.T) {
	for i := 0; i < 100; i++ {
		var out int64
		res := Time(&out)
		require.Equal(t, testInstant, res)
		require.Equal(t, res, out, "return value and out-parameter must agree")
	}
}

func TestTimeNilOut(t *testing.T) {
	assert.Equal(t, testInstant, Time(nil))
}

func TestGettimeofdayTravelsSecondsOnly(t *testing.T) {
	var tv Timeval
	require.NoError(t, Gettimeofday(&tv, nil))
	assert.Equal(t, testInstant, tv.Sec)
	assert.GreaterOrEqual(t, tv.Usec, int64(0))
	assert.Less(t, tv.Usec, int64(1000000))
}

func TestGettimeofdayMicrosecondsGenuine(t *testing.T) {
	var a, b Timeval
	require.NoError(t, Gettimeofday(&a, nil))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, Gettimeofday(&b, nil))

	assert.Equal(t, testInstant, a.Sec)
	assert.Equal(t, testInstant, b.Sec)
	assert.NotEqual(t, a.Usec, b.Usec, "microseconds must keep advancing genuinely")
}

func TestGetTimeOfDayAlias(t *testing.T) {
	var a, b Timeval
	require.NoError(t, Gettimeofday(&a, nil))
	require.NoError(t, GetTimeOfDay(&b, &Timezone{}))
	assert.Equal(t, a.Sec, b.Sec)
}

func TestClockGettimeRealtime(t *testing.T) {
	var ts Timespec
	require.NoError(t, ClockGettime(ClockRealtime, &ts))
	assert.Equal(t, testInstant, ts.Sec)
	assert.GreaterOrEqual(t, ts.Nsec, int64(0))
	assert.Less(t, ts.Nsec, int64(time.Second))
}

func TestClockGettimeMonotonicPassthrough(t *testing.T) {
	var a, b Timespec
	require.NoError(t, ClockGettime(ClockMonotonic, &a))
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, ClockGettime(ClockMonotonic, &b))

	assert.NotEqual(t, testInstant, a.Sec, "monotonic reads must not be travel-adjusted")
	elapsed := time.Duration(b.Sec-a.Sec)*time.Second + time.Duration(b.Nsec-a.Nsec)
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
	assert.Less(t, elapsed, 5*time.Second)
}

func TestInvalidClockFailsUntouched(t *testing.T) {
	var ts Timespec
	err := ClockGettime(ClockID(-1), &ts)
	require.Error(t, err)
	assert.Equal(t, syscall.EINVAL, err)
	assert.Equal(t, Timespec{}, ts, "output must stay untouched on failure")
}

func TestNilTimespecFailurePassthrough(t *testing.T) {
	require.Error(t, ClockGettime(ClockRealtime, nil))
}

func TestConcurrentFirstUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var out int64
			assert.Equal(t, testInstant, Time(&out))

			var tv Timeval
			if assert.NoError(t, Gettimeofday(&tv, nil)) {
				assert.Equal(t, testInstant, tv.Sec)
			}

			var ts Timespec
			if assert.NoError(t, ClockGettime(ClockRealtime, &ts)) {
				assert.Equal(t, testInstant, ts.Sec)
			}
		}()
	}
	wg.Wait()
}

func TestClockIDString(t *testing.T) {
	assert.Equal(t, "realtime", ClockRealtime.String())
	assert.Equal(t, "monotonic", ClockMonotonic.String())
	assert.Equal(t, "boottime", ClockBoottime.String())
	assert.Equal(t, "clock_42", ClockID(42).String())
}
