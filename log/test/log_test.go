package test

import (
	"testing"

	"github.com/LLLLLLs/timetravel/log"
	"github.com/LLLLLLs/timetravel/log/field"
	"github.com/LLLLLLs/timetravel/log/impl"
)

func TestDefault(t *testing.T) {
	d := log.NewDefaultLogger()
	d.With(field.Any("slice", []int{12345})).Debug("debug")
	d.Info("info", field.Int("test_id", 123))
	d.Warn("warn")
	d.Error("error")
}

func TestNop(t *testing.T) {
	nop := log.NewNopLogger()
	nop.Debug("debug")
	nop.Info("info")
	nop.Warn("warn")
	nop.Error("error")
}

func TestLogger(t *testing.T) {
	lg := impl.New(
		impl.WithStdout(true, "json"),
		impl.WithFileOut(true, t.TempDir()),
		impl.WithAppName("timetravel"),
		impl.WithLevel(impl.INFO),
		impl.WithRegionId(1),
	)
	travelLg := lg.With(field.Int64("instant", 1661140800))
	travelLg.Debug("debug")
	travelLg.Info("info")
	travelLg.Warn("warn", field.String("name", "test"))
}

func TestDefaultSingleton(t *testing.T) {
	a := impl.Default()
	b := impl.Default()
	if a != b {
		t.Fatal("Default must return the same logger")
	}
	a.Info("singleton")
}
