package display

import (
	"testing"
	"time"
)

func TestManualClock(t *testing.T) {
	var c ManualClock
	if c.Armed() {
		t.Fatal("zero clock should be disarmed")
	}
	if !c.Arm(5 * time.Millisecond) {
		t.Fatal("manual clock always arms")
	}
	if !c.Armed() || c.Period() != 5*time.Millisecond || c.Arms() != 1 {
		t.Errorf("unexpected state armed=%v period=%v arms=%d", c.Armed(), c.Period(), c.Arms())
	}
	c.Disarm()
	if c.Armed() {
		t.Error("disarm should clear armed")
	}
}

func TestPacer_Due(t *testing.T) {
	p := Pacer{Period: 16 * time.Millisecond, MaxCatchUp: 3}
	frame := time.Second / 60

	total := 0
	for i := 0; i < 60; i++ {
		total += p.Due(frame)
	}
	if total != 62 {
		t.Errorf("expected 62 ticks in one second, got %d", total)
	}

	p.Reset()
	if n := p.Due(time.Second); n != 3 {
		t.Errorf("expected backlog capped at 3, got %d", n)
	}
	if n := p.Due(time.Millisecond); n != 0 {
		t.Errorf("dropped backlog should not carry over, got %d", n)
	}

	var zero Pacer
	if zero.Due(time.Second) != 0 {
		t.Error("pacer without a period never ticks")
	}
}
