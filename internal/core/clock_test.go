package core

import (
	"testing"
	"time"
)

func TestFrameClockTick(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base
	clock := &FrameClock{now: func() time.Time { return now }}

	if dt := clock.Tick(); dt != 0 {
		t.Fatalf("first Tick = %v, want 0", dt)
	}
	now = now.Add(250 * time.Millisecond)
	if dt := clock.Tick(); dt != 0.25 {
		t.Fatalf("Tick = %v, want 0.25", dt)
	}

	clock.SetPaused(true)
	now = now.Add(time.Second)
	if dt := clock.Tick(); dt != 0 {
		t.Fatalf("paused Tick = %v, want 0", dt)
	}
	clock.SetPaused(false)
	now = now.Add(100 * time.Millisecond)
	if dt := clock.Tick(); dt < 0.0999 || dt > 0.1001 {
		t.Fatalf("resumed Tick = %v, want 0.1", dt)
	}

	now = now.Add(-time.Second)
	if dt := clock.Tick(); dt != 0 {
		t.Fatalf("Tick after clock went backwards = %v, want 0", dt)
	}
}
