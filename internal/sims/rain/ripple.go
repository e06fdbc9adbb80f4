package rain

import (
	"github.com/go-gl/mathgl/mgl32"

	"backdrop/internal/core"
)

// rippleFreeEpsilon separates the inactive sentinel from a just-spawned ripple.
const rippleFreeEpsilon = 1e-6

// Ripple is an expanding ring left by a drop hitting the ground. A negative
// Radius marks a free slot.
type Ripple struct {
	Position mgl32.Vec3
	Radius   float32
	Alpha    float32
}

// Active reports whether the ripple occupies its slot.
func (r Ripple) Active() bool { return r.Radius >= 0 }

// RippleTrack stores ripples in reusable slots. Free slots are reused before
// the backing slice grows.
type RippleTrack struct {
	cfg   RippleConfig
	rng   core.Random
	slots []Ripple
}

// NewRippleTrack constructs an empty track.
func NewRippleTrack(cfg RippleConfig, rng core.Random) *RippleTrack {
	return &RippleTrack{cfg: cfg, rng: rng}
}

// Reset frees every slot and drops the backing storage.
func (t *RippleTrack) Reset() {
	t.slots = t.slots[:0]
}

// Spawn starts a ripple at pos in the first free slot, appending one if none is free.
func (t *RippleTrack) Spawn(pos mgl32.Vec3) {
	idx := -1
	for i := range t.slots {
		if t.slots[i].Radius < -rippleFreeEpsilon {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.slots = append(t.slots, Ripple{})
		idx = len(t.slots) - 1
	}
	t.slots[idx] = Ripple{
		Position: pos,
		Radius:   core.RandomRange32(t.rng, 0, float32(t.cfg.InitialRadiusMax)),
		Alpha:    1,
	}
}

// Step expands every active ripple and frees those that faded out.
func (t *RippleTrack) Step(dt float64) {
	grow := float32(dt * t.cfg.ExpandSpeed)
	maxRadius := float32(t.cfg.MaxRadius)
	for i := range t.slots {
		r := &t.slots[i]
		if r.Radius < 0 {
			continue
		}
		r.Radius += grow
		r.Alpha = mgl32.Clamp(1-r.Radius/maxRadius, -1, 1)
		if r.Alpha <= 0 {
			r.Radius = -1
			r.Alpha = 0
		}
	}
}

// Active appends the active ripples to dst. Free slots are never included.
func (t *RippleTrack) Active(dst []Ripple) []Ripple {
	for _, r := range t.slots {
		if r.Active() {
			dst = append(dst, r)
		}
	}
	return dst
}

// Count returns the number of active ripples.
func (t *RippleTrack) Count() int {
	n := 0
	for _, r := range t.slots {
		if r.Active() {
			n++
		}
	}
	return n
}

// Slots returns the size of the backing storage, active or not.
func (t *RippleTrack) Slots() int { return len(t.slots) }
