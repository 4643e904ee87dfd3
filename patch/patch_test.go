package patch

import (
	"testing"
	"time"

	"github.com/LLLLLLs/timetravel/travel"
)

func TestMain(m *testing.M) {
	travel.Init(1661140800)
	Patch()
	m.Run()
}

func TestNowTravels(t *testing.T) {
	if got := time.Now().Unix(); got != travel.Instant() {
		t.Fatalf("time.Now().Unix() = %d, want %d", got, travel.Instant())
	}
}

func TestSubSecondAdvances(t *testing.T) {
	a := time.Now()
	time.Sleep(5 * time.Millisecond)
	b := time.Now()
	if a.Nanosecond() == b.Nanosecond() {
		t.Fatalf("nanoseconds did not advance: %d", a.Nanosecond())
	}
}

func TestPatchIdempotent(t *testing.T) {
	Patch()
	Patch()
	if got := time.Now().Unix(); got != travel.Instant() {
		t.Fatalf("time.Now().Unix() = %d after repeated Patch, want %d", got, travel.Instant())
	}
}

func TestUnpatchRestores(t *testing.T) {
	Unpatch()
	defer Patch()
	sec, _, _ := now()
	if got := time.Now().Unix(); got != sec && got != sec+1 {
		t.Fatalf("time.Now().Unix() = %d after Unpatch, want about %d", got, sec)
	}
}
