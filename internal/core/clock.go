package core

import "time"

// FrameClock measures wall-clock time between frames for the host loop.
type FrameClock struct {
	now    func() time.Time
	last   time.Time
	paused bool
}

// NewFrameClock constructs a FrameClock reading time.Now.
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Tick returns the seconds elapsed since the previous Tick. The first call, and
// every call while paused, returns 0. The result is never negative.
func (f *FrameClock) Tick() float64 {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	delta := now.Sub(f.last)
	f.last = now
	if f.paused || delta < 0 {
		return 0
	}
	return delta.Seconds()
}

// SetPaused freezes or resumes the clock. Time spent paused is dropped.
func (f *FrameClock) SetPaused(paused bool) {
	f.paused = paused
}

// Paused reports whether the clock is frozen.
func (f *FrameClock) Paused() bool { return f.paused }
