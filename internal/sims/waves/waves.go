package waves

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"backdrop/internal/core"
)

// Wave is one front travelling from FarZ to NearZ.
type Wave struct {
	Progress float64
	XBias    float64
	// carry holds the fractional foam owed to the next step.
	carry float64
}

// Depth returns the wave's z coordinate for the given depth range.
func (w Wave) Depth(farZ, nearZ float64) float32 {
	return float32(farZ + (nearZ-farZ)*w.Progress)
}

// Foam is a short-lived fragment shed by a breaking wave. It never moves;
// only Rotation and Age advance.
type Foam struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Spin     mgl32.Vec3
	Age      float32
}

var (
	seaColor   = core.MustHex("#06202e")
	crestColor = core.MustHex("#5fa8c4")
	foamColor  = core.MustHex("#eef8ff")
)

// Waves is a set of wave fronts breaking into foam near the shore.
type Waves struct {
	cfg   Config
	rng   core.Random
	pool  *core.Pool[Wave]
	foam  []Foam
	shed  int
	total int
}

// New creates a Waves animation using the provided configuration and random source.
func New(cfg Config, rng core.Random) *Waves {
	w := &Waves{cfg: cfg, rng: rng}
	w.pool = core.NewPool(cfg.Count, rng, core.Behavior[Wave]{
		Spawn:   w.spawn,
		Advance: w.advance,
		Expired: func(wv *Wave) bool { return wv.Progress >= 1 },
	})
	return w
}

// Name returns the animation identifier.
func (w *Waves) Name() string { return "waves" }

// Kind returns core.KindWaves.
func (w *Waves) Kind() core.Kind { return core.KindWaves }

// Initialize staggers the wave fronts and clears all foam.
func (w *Waves) Initialize() {
	w.foam = w.foam[:0]
	w.shed = 0
	w.total = 0
	w.pool.Initialize()
}

// Step ages the existing foam, advances the waves, then lets every breaking
// wave shed new foam.
func (w *Waves) Step(dt float64) {
	w.ageFoam(dt)
	w.pool.Step(dt)

	budget := w.cfg.MaxFoamPerStep
	w.shed = 0
	waves := w.pool.Particles()
	for i := range waves {
		wv := &waves[i]
		if wv.Progress <= w.cfg.BreakThreshold {
			wv.carry = 0
			continue
		}
		wv.carry += w.cfg.FoamRate * dt
		n := int(math.Floor(wv.carry))
		wv.carry -= float64(n)
		if n > budget {
			n = budget
			wv.carry = 0
		}
		for j := 0; j < n; j++ {
			w.foam = append(w.foam, w.newFoam(wv))
		}
		budget -= n
		w.shed += n
	}
	w.total += w.shed
}

// Waves exposes the current wave fronts.
func (w *Waves) Waves() []Wave { return w.pool.Particles() }

// Foam exposes the live foam. Callers must not retain it across frames.
func (w *Waves) Foam() []Foam { return w.foam }

// Shed reports how much foam the last Step spawned.
func (w *Waves) Shed() int { return w.shed }

// TotalShed counts the foam spawned since Initialize.
func (w *Waves) TotalShed() int { return w.total }

// Recycled reports how many waves reached the shore in the last Step.
func (w *Waves) Recycled() int { return w.pool.Recycled() }

// Config returns the active configuration.
func (w *Waves) Config() Config { return w.cfg }

// ClearColor returns the sea color.
func (w *Waves) ClearColor() colorful.Color { return seaColor }

// AppendSprites appends a crest line per wave and a fleck per foam particle.
func (w *Waves) AppendSprites(dst []core.Sprite) []core.Sprite {
	for _, wv := range w.pool.Particles() {
		dst = append(dst, core.Sprite{
			Shape:    core.ShapeCrest,
			Position: mgl32.Vec3{0, float32(w.cfg.CrestHeight), wv.Depth(w.cfg.FarZ, w.cfg.NearZ)},
			Color:    crestColor,
			Alpha:    float32(0.2 + 0.6*wv.Progress),
			Size:     0.3,
			Length:   float32(w.cfg.Range),
		})
	}
	for _, f := range w.foam {
		dst = append(dst, core.Sprite{
			Shape:    core.ShapeFoam,
			Position: f.Position,
			Rotation: f.Rotation,
			Color:    foamColor,
			Alpha:    1 - f.Age,
			Size:     0.35,
		})
	}
	return dst
}

func (w *Waves) spawn(wv *Wave, r core.Random, phase core.SpawnPhase) {
	if phase == core.SpawnInitial {
		wv.Progress = r.Float64()
	}
	wv.XBias = core.RandomRange(r, -1, 1)
}

func (w *Waves) advance(wv *Wave, dt float32) {
	wv.Progress += w.cfg.Rate * float64(dt)
}

func (w *Waves) newFoam(wv *Wave) Foam {
	spin := float32(w.cfg.MaxSpin)
	f := Foam{
		Position: mgl32.Vec3{
			float32(w.cfg.Range * skew(w.rng.Float64(), wv.XBias)),
			core.RandomRange32(w.rng, 0, float32(w.cfg.CrestHeight)),
			wv.Depth(w.cfg.FarZ, w.cfg.NearZ),
		},
	}
	for i := 0; i < 3; i++ {
		f.Rotation[i] = core.RandomRange32(w.rng, 0, 2*math.Pi)
		f.Spin[i] = core.RandomRange32(w.rng, -spin, spin)
	}
	return f
}

// ageFoam advances every foam particle and swap-removes the expired ones.
func (w *Waves) ageFoam(dt float64) {
	step := float32(dt / w.cfg.FoamLifetime)
	fdt := float32(dt)
	for i := 0; i < len(w.foam); {
		f := &w.foam[i]
		f.Age += step
		if f.Age >= 1 {
			last := len(w.foam) - 1
			w.foam[i] = w.foam[last]
			w.foam = w.foam[:last]
			continue
		}
		f.Rotation = f.Rotation.Add(f.Spin.Mul(fdt))
		i++
	}
}

// skew maps u in [0, 1) to [-1, 1), leaning toward +1 for positive bias and
// toward -1 for negative bias. A zero bias is uniform.
func skew(u, bias float64) float64 {
	return 2*math.Pow(u, math.Exp2(-bias)) - 1
}

func init() {
	core.Register(core.KindWaves, func(cfg map[string]string, rng core.Random) core.Animation {
		return New(FromMap(cfg), rng)
	})
}
