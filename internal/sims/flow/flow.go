package flow

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"backdrop/internal/core"
)

// Star is one particle of the starfield.
type Star struct {
	Position   mgl32.Vec3
	Color      colorful.Color
	Size       float32
	SpeedRatio float32
	Alpha      float32
}

var (
	speedTiers = []core.Weighted[float32]{
		{Value: 0.6, Weight: 6},
		{Value: 1.0, Weight: 3},
		{Value: 1.8, Weight: 1},
	}
	sizeTiers = []core.Weighted[float32]{
		{Value: 0.25, Weight: 10},
		{Value: 0.4, Weight: 4},
		{Value: 0.6, Weight: 1},
	}
	colorTiers = []core.Weighted[colorful.Color]{
		{Value: core.MustHex("#ffffff"), Weight: 8},
		{Value: core.MustHex("#cad7ff"), Weight: 4},
		{Value: core.MustHex("#fff4ea"), Weight: 3},
		{Value: core.MustHex("#ffd2a1"), Weight: 1},
	}
	background = core.MustHex("#02030a")
)

// Flow is a starfield drifting along a constant direction.
type Flow struct {
	cfg      Config
	pool     *core.Pool[Star]
	velocity mgl32.Vec3
	// fieldAlpha fades the whole field in after Initialize.
	fieldAlpha float32
}

// New creates a Flow using the provided configuration and random source.
func New(cfg Config, rng core.Random) *Flow {
	f := &Flow{cfg: cfg}
	f.updateVelocity()
	f.pool = core.NewPool(cfg.Count, rng, core.Behavior[Star]{
		Spawn:   f.spawn,
		Advance: f.advance,
		Expired: f.expired,
	})
	return f
}

// Name returns the animation identifier.
func (f *Flow) Name() string { return "flow" }

// Kind returns core.KindFlow.
func (f *Flow) Kind() core.Kind { return core.KindFlow }

// Initialize repopulates the field and restarts the field fade-in.
func (f *Flow) Initialize() {
	f.fieldAlpha = 0
	f.pool.Initialize()
}

// Step advances every star by dt seconds.
func (f *Flow) Step(dt float64) {
	f.fieldAlpha = min(1, f.fieldAlpha+float32(dt*f.cfg.FieldFadeRate))
	f.pool.Step(dt)
}

// Stars exposes the current star slice.
func (f *Flow) Stars() []Star { return f.pool.Particles() }

// FieldAlpha returns the whole-field fade-in multiplier.
func (f *Flow) FieldAlpha() float32 { return f.fieldAlpha }

// Recycled reports how many stars the last Step recycled.
func (f *Flow) Recycled() int { return f.pool.Recycled() }

// Config returns the active configuration.
func (f *Flow) Config() Config { return f.cfg }

// ClearColor returns the background color.
func (f *Flow) ClearColor() colorful.Color { return background }

// AppendSprites appends one point per star.
func (f *Flow) AppendSprites(dst []core.Sprite) []core.Sprite {
	for _, s := range f.pool.Particles() {
		dst = append(dst, core.Sprite{
			Shape:    core.ShapePoint,
			Position: s.Position,
			Color:    s.Color,
			Alpha:    s.Alpha * f.fieldAlpha,
			Size:     s.Size,
		})
	}
	return dst
}

func (f *Flow) updateVelocity() {
	dir := f.cfg.FlowDirection
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	f.velocity = dir.Mul(float32(f.cfg.FlowSpeed))
}

func (f *Flow) spawn(s *Star, r core.Random, phase core.SpawnPhase) {
	half := float32(f.cfg.Range)
	s.Position = mgl32.Vec3{
		core.RandomRange32(r, -half, half),
		core.RandomRange32(r, -half, half),
		core.RandomRange32(r, -half, half),
	}
	s.Color = core.Pick(r, colorTiers)
	s.Size = core.Pick(r, sizeTiers)
	s.SpeedRatio = core.Pick(r, speedTiers)
	// Recycled stars fade in; the initial field appears at once.
	if phase == core.SpawnInitial {
		s.Alpha = core.RandomRange32(r, 0.5, 1.0)
	} else {
		s.Alpha = 0
	}
}

func (f *Flow) advance(s *Star, dt float32) {
	s.Position = s.Position.Add(f.velocity.Mul(s.SpeedRatio * dt))
	if s.Alpha < 1 {
		s.Alpha = min(1, s.Alpha+float32(f.cfg.FadeInRate)*dt)
	}
}

func (f *Flow) expired(s *Star) bool {
	half := float32(f.cfg.Range)
	p := s.Position
	if p.X() < -half || p.X() > half || p.Y() < -half || p.Y() > half || p.Z() < -half || p.Z() > half {
		return true
	}
	return p.Sub(f.cfg.CameraEye).Dot(f.cfg.CameraDirection) < 0
}

func init() {
	core.Register(core.KindFlow, func(cfg map[string]string, rng core.Random) core.Animation {
		return New(FromMap(cfg), rng)
	})
}
