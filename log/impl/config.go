package impl

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level re-exports zap's level type for WithLevel.
type Level = zapcore.Level

const (
	DEBUG = zapcore.DebugLevel
	INFO  = zapcore.InfoLevel
	WARN  = zapcore.WarnLevel
	ERROR = zapcore.ErrorLevel
)

type config struct {
	zap.Config

	appName    string
	regionId   int32
	stdout     bool
	stdoutType string
	toFile     bool
	fileDir    string
	fileAsync  bool
}

func newDefaultConfig() *config {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return &config{
		Config:     zc,
		stdout:     true,
		stdoutType: "console",
	}
}

func checkErr(err error) {
	if err != nil {
		panic(err)
	}
}
