// Package log is a thin facade over zap. Callers depend on the Logger
// interface and the field package only; the impl package builds configured
// loggers.
package log

import (
	"go.uber.org/zap"

	"github.com/LLLLLLs/timetravel/log/field"
)

type Logger interface {
	With(fields ...field.Field) Logger
	Debug(msg string, fields ...field.Field)
	Info(msg string, fields ...field.Field)
	Warn(msg string, fields ...field.Field)
	Error(msg string, fields ...field.Field)
}

type zapLogger struct {
	base *zap.Logger
}

func (l *zapLogger) With(fields ...field.Field) Logger {
	return &zapLogger{base: l.base.With(fields...)}
}

func (l *zapLogger) Debug(msg string, fields ...field.Field) {
	l.base.Debug(msg, fields...)
}

func (l *zapLogger) Info(msg string, fields ...field.Field) {
	l.base.Info(msg, fields...)
}

func (l *zapLogger) Warn(msg string, fields ...field.Field) {
	l.base.Warn(msg, fields...)
}

func (l *zapLogger) Error(msg string, fields ...field.Field) {
	l.base.Error(msg, fields...)
}

// NewDefaultLogger returns a console logger at debug level.
func NewDefaultLogger() Logger {
	base, err := zap.NewDevelopment(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	return &zapLogger{base: base}
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() Logger {
	return &zapLogger{base: zap.NewNop()}
}
