package travel

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testInstant is pinned for the whole test binary before any read happens.
const testInstant int64 = 1661140800

func TestMain(m *testing.M) {
	Init(testInstant)
	os.Exit(m.Run())
}

func TestInstantPinned(t *testing.T) {
	assert.Equal(t, testInstant, Instant())
}

func TestInitFirstWins(t *testing.T) {
	Init(12345)
	assert.Equal(t, testInstant, Instant(), "instant must be immutable after the first Init")
}

func TestParseInstant(t *testing.T) {
	t.Run("epoch seconds", func(t *testing.T) {
		sec, err := parseInstant("1661140800")
		require.NoError(t, err)
		assert.Equal(t, int64(1661140800), sec)
	})

	t.Run("rfc3339", func(t *testing.T) {
		sec, err := parseInstant("2022-08-22T00:00:00Z")
		require.NoError(t, err)
		assert.Equal(t, int64(1661126400), sec)
	})

	t.Run("rfc3339 with offset", func(t *testing.T) {
		sec, err := parseInstant("2022-08-22T00:00:00-04:00")
		require.NoError(t, err)
		assert.Equal(t, int64(1661140800), sec)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := parseInstant("not-a-time")
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvTravelAt)
	})

	t.Run("negative epoch", func(t *testing.T) {
		sec, err := parseInstant("-1")
		require.NoError(t, err)
		assert.Equal(t, int64(-1), sec)
	})
}

func TestSetLoggerNilResets(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, lg)
}
