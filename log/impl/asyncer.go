package impl

import (
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat/go-file-rotatelogs"
	"go.uber.org/zap/zapcore"
)

// newFileWriteASyncer builds the write syncer for one level's file,
// rotating daily and keeping a week of history.
func newFileWriteASyncer(appName, dir, level string, async bool) zapcore.WriteSyncer {
	name := level + ".log"
	if appName != "" {
		name = appName + "." + name
	}
	w, err := rotatelogs.New(
		filepath.Join(dir, name+".%Y%m%d"),
		rotatelogs.WithLinkName(filepath.Join(dir, name)),
		rotatelogs.WithRotationTime(24*time.Hour),
		rotatelogs.WithMaxAge(7*24*time.Hour),
	)
	checkErr(err)

	ws := zapcore.AddSync(w)
	if async {
		ws = &zapcore.BufferedWriteSyncer{
			WS:            ws,
			FlushInterval: time.Second,
		}
	}
	return ws
}
