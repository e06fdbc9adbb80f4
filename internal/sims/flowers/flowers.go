package flowers

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"backdrop/internal/core"
)

// Petal is one falling flower petal.
type Petal struct {
	Position mgl32.Vec3
	// Rotation holds Euler angles in radians, wrapped to [0, 2π).
	Rotation          mgl32.Vec3
	Spin              mgl32.Vec3
	FallingSpeedRatio float32
	Color             colorful.Color
}

var (
	fallTiers = []core.Weighted[float32]{
		{Value: 0.7, Weight: 4},
		{Value: 1.0, Weight: 4},
		{Value: 1.4, Weight: 2},
	}
	colorTiers = []core.Weighted[colorful.Color]{
		{Value: core.MustHex("#ffc0d3"), Weight: 6},
		{Value: core.MustHex("#ff9bb8"), Weight: 3},
		{Value: core.MustHex("#fff1f5"), Weight: 2},
		{Value: core.MustHex("#e8739a"), Weight: 1},
	}
	background = core.MustHex("#1b1424")
)

const twoPi = 2 * math.Pi

// Flowers is a field of petals drifting down with the wind.
type Flowers struct {
	cfg  Config
	pool *core.Pool[Petal]
}

// New creates a Flowers animation using the provided configuration and random source.
func New(cfg Config, rng core.Random) *Flowers {
	f := &Flowers{cfg: cfg}
	f.pool = core.NewPool(cfg.Count, rng, core.Behavior[Petal]{
		Spawn:   f.spawn,
		Advance: f.advance,
		Expired: f.expired,
	})
	return f
}

// Name returns the animation identifier.
func (f *Flowers) Name() string { return "flowers" }

// Kind returns core.KindFlowers.
func (f *Flowers) Kind() core.Kind { return core.KindFlowers }

// Initialize repopulates every petal.
func (f *Flowers) Initialize() { f.pool.Initialize() }

// Step advances every petal by dt seconds.
func (f *Flowers) Step(dt float64) { f.pool.Step(dt) }

// Petals exposes the current petal slice.
func (f *Flowers) Petals() []Petal { return f.pool.Particles() }

// Recycled reports how many petals the last Step recycled.
func (f *Flowers) Recycled() int { return f.pool.Recycled() }

// Config returns the active configuration.
func (f *Flowers) Config() Config { return f.cfg }

// ClearColor returns the background color.
func (f *Flowers) ClearColor() colorful.Color { return background }

// AppendSprites appends one petal sprite per particle.
func (f *Flowers) AppendSprites(dst []core.Sprite) []core.Sprite {
	for _, p := range f.pool.Particles() {
		dst = append(dst, core.Sprite{
			Shape:    core.ShapePetal,
			Position: p.Position,
			Rotation: p.Rotation,
			Color:    p.Color,
			Alpha:    0.9,
			Size:     0.6,
		})
	}
	return dst
}

// Velocity returns the petal's current velocity including wind.
func (f *Flowers) Velocity(p *Petal) mgl32.Vec3 {
	return mgl32.Vec3{0, -float32(f.cfg.FallSpeed) * p.FallingSpeedRatio, 0}.Add(f.cfg.Wind)
}

func (f *Flowers) spawn(p *Petal, r core.Random, _ core.SpawnPhase) {
	half := float32(f.cfg.Range)
	h := float32(f.cfg.Height)
	p.Position = mgl32.Vec3{
		core.RandomRange32(r, -half, half),
		core.RandomRange32(r, 0.1*h, 1.5*h),
		core.RandomRange32(r, -half, half),
	}
	for i := 0; i < 3; i++ {
		p.Rotation[i] = core.RandomRange32(r, 0, twoPi)
	}
	spin := float32(f.cfg.MaxSpin)
	for i := 0; i < 3; i++ {
		p.Spin[i] = core.RandomRange32(r, -spin, spin)
	}
	p.FallingSpeedRatio = core.Pick(r, fallTiers)
	p.Color = core.Pick(r, colorTiers)
}

func (f *Flowers) advance(p *Petal, dt float32) {
	p.Position = p.Position.Add(f.Velocity(p).Mul(dt))
	for i := 0; i < 3; i++ {
		p.Rotation[i] = wrapAngle(p.Rotation[i] + p.Spin[i]*dt)
	}
}

func (f *Flowers) expired(p *Petal) bool {
	return float64(p.Position.Y()) < f.cfg.GroundY
}

func wrapAngle(a float32) float32 {
	w := float32(math.Mod(float64(a), twoPi))
	if w < 0 {
		w += twoPi
	}
	if w >= twoPi {
		w = 0
	}
	return w
}

func init() {
	core.Register(core.KindFlowers, func(cfg map[string]string, rng core.Random) core.Animation {
		return New(FromMap(cfg), rng)
	})
}
