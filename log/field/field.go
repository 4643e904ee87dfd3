// Package field re-exports zap's strongly typed fields so facade callers
// do not import zap directly.
package field

import (
	"time"

	"go.uber.org/zap"
)

type Field = zap.Field

func String(key, val string) Field {
	return zap.String(key, val)
}

func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

func Int(key string, val int) Field {
	return zap.Int(key, val)
}

func Int32(key string, val int32) Field {
	return zap.Int32(key, val)
}

func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

func Err(err error) Field {
	return zap.Error(err)
}

func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}
