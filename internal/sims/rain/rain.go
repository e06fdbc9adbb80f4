package rain

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"backdrop/internal/core"
)

// Drop is one falling raindrop.
type Drop struct {
	Position   mgl32.Vec3
	SpeedRatio float32
	Alpha      float32
	TailLength float32
}

var (
	speedTiers = []core.Weighted[float32]{
		{Value: 0.8, Weight: 3},
		{Value: 1.0, Weight: 5},
		{Value: 1.3, Weight: 2},
	}
	dropColor   = core.MustHex("#a9c4e8")
	rippleColor = core.MustHex("#7f9cc4")
	sky         = core.MustHex("#0b0f1a")
	flash       = core.MustHex("#d8e4ff")
)

// Rain is falling rain with ground ripples and lightning flashes.
type Rain struct {
	cfg       Config
	pool      *core.Pool[Drop]
	ripples   *RippleTrack
	lightning *Lightning

	impacts int
	scratch []Ripple
}

// New creates a Rain animation using the provided configuration and random source.
func New(cfg Config, rng core.Random) *Rain {
	r := &Rain{
		cfg:       cfg,
		ripples:   NewRippleTrack(cfg.Ripples, rng),
		lightning: NewLightning(cfg.Lightning, rng),
	}
	r.pool = core.NewPool(cfg.Count, rng, core.Behavior[Drop]{
		Spawn:    r.spawn,
		Advance:  r.advance,
		Expired:  r.expired,
		OnExpire: r.impact,
	})
	return r
}

// Name returns the animation identifier.
func (r *Rain) Name() string { return "rain" }

// Kind returns core.KindRain.
func (r *Rain) Kind() core.Kind { return core.KindRain }

// Initialize repopulates the drops and clears ripples and lightning.
func (r *Rain) Initialize() {
	r.ripples.Reset()
	r.lightning.Reset()
	r.impacts = 0
	r.pool.Initialize()
}

// Step advances ripples, lightning and drops by dt seconds. Ripples spawned by
// this step's impacts are left untouched until the next step.
func (r *Rain) Step(dt float64) {
	r.ripples.Step(dt)
	r.lightning.Step(dt)
	r.pool.Step(dt)
}

// Drops exposes the current drop slice.
func (r *Rain) Drops() []Drop { return r.pool.Particles() }

// Ripples returns a snapshot of the active ripples.
func (r *Rain) Ripples() []Ripple {
	r.scratch = r.ripples.Active(r.scratch[:0])
	return r.scratch
}

// RippleTrack exposes the ripple storage.
func (r *Rain) RippleTrack() *RippleTrack { return r.ripples }

// Lightning exposes the lightning timer.
func (r *Rain) Lightning() *Lightning { return r.lightning }

// Impacts counts drops that hit the ground since Initialize.
func (r *Rain) Impacts() int { return r.impacts }

// Recycled reports how many drops the last Step recycled.
func (r *Rain) Recycled() int { return r.pool.Recycled() }

// Config returns the active configuration.
func (r *Rain) Config() Config { return r.cfg }

// ClearColor blends the lightning flash into the sky color.
func (r *Rain) ClearColor() colorful.Color {
	return sky.BlendRgb(flash, float64(r.lightning.Alpha())).Clamped()
}

// AppendSprites appends a streak per drop and a ring per active ripple.
func (r *Rain) AppendSprites(dst []core.Sprite) []core.Sprite {
	for _, d := range r.pool.Particles() {
		dst = append(dst, core.Sprite{
			Shape:    core.ShapeStreak,
			Position: d.Position,
			Color:    dropColor,
			Alpha:    d.Alpha,
			Size:     0.05,
			Length:   d.TailLength,
		})
	}
	for _, rp := range r.ripples.slots {
		if !rp.Active() {
			continue
		}
		dst = append(dst, core.Sprite{
			Shape:    core.ShapeRing,
			Position: rp.Position,
			Color:    rippleColor,
			Alpha:    rp.Alpha,
			Length:   rp.Radius,
		})
	}
	return dst
}

func (r *Rain) spawn(d *Drop, rng core.Random, _ core.SpawnPhase) {
	half := float32(r.cfg.Range)
	h := float32(r.cfg.Height)
	d.Position = mgl32.Vec3{
		core.RandomRange32(rng, -half, half),
		core.RandomRange32(rng, 0.1*h, 1.5*h),
		core.RandomRange32(rng, -half, half),
	}
	d.SpeedRatio = core.Pick(rng, speedTiers)
	d.Alpha = core.RandomRange32(rng, 0.3, 0.8)
	d.TailLength = core.RandomRange32(rng, 1, 3)
}

func (r *Rain) advance(d *Drop, dt float32) {
	d.Position[1] -= float32(r.cfg.DropSpeed) * d.SpeedRatio * dt
}

func (r *Rain) expired(d *Drop) bool {
	return float64(d.Position.Y()) < r.cfg.GroundY
}

func (r *Rain) impact(d *Drop) {
	r.impacts++
	r.ripples.Spawn(mgl32.Vec3{d.Position.X(), float32(r.cfg.GroundY), d.Position.Z()})
}

func init() {
	core.Register(core.KindRain, func(cfg map[string]string, rng core.Random) core.Animation {
		return New(FromMap(cfg), rng)
	})
}
