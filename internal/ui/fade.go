package ui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade eases a visibility value between 0 and 1.
type Fade struct {
	duration float32
	value    float32
	shown    bool
	tween    *gween.Tween
}

// NewFade returns a fade that starts fully shown or fully hidden. duration is
// the time a complete 0 to 1 transition takes, in seconds.
func NewFade(duration float32, shown bool) *Fade {
	f := &Fade{duration: duration, shown: shown}
	if shown {
		f.value = 1
	}
	return f
}

// Show starts fading in from the current value.
func (f *Fade) Show() { f.retarget(true) }

// Hide starts fading out from the current value.
func (f *Fade) Hide() { f.retarget(false) }

// Toggle reverses the current target.
func (f *Fade) Toggle() { f.retarget(!f.shown) }

// Update advances the fade by dt seconds and returns the new value.
func (f *Fade) Update(dt float32) float32 {
	if f.tween == nil {
		return f.value
	}
	v, done := f.tween.Update(dt)
	f.value = min(max(v, 0), 1)
	if done {
		f.tween = nil
	}
	return f.value
}

// Value returns the current visibility in [0, 1].
func (f *Fade) Value() float32 { return f.value }

// Shown reports the target state, which may still be fading in.
func (f *Fade) Shown() bool { return f.shown }

// Visible reports whether anything needs drawing.
func (f *Fade) Visible() bool { return f.value > 0 }

// Done reports whether no transition is in progress.
func (f *Fade) Done() bool { return f.tween == nil }

func (f *Fade) retarget(shown bool) {
	f.shown = shown
	target := float32(0)
	if shown {
		target = 1
	}
	dist := target - f.value
	if dist < 0 {
		dist = -dist
	}
	if dist == 0 || f.duration <= 0 {
		f.value = target
		f.tween = nil
		return
	}
	f.tween = gween.New(f.value, target, f.duration*dist, ease.InOutQuad)
}
