package rain

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"backdrop/internal/core"
)

func TestDropHittingGroundSpawnsOneRipple(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 1
	cfg.GroundY = 0
	cfg.DropSpeed = 20
	r := New(cfg, core.NewRNG(4))
	r.Initialize()

	d := &r.Drops()[0]
	d.Position = mgl32.Vec3{3, 0.05, -2}
	d.SpeedRatio = 2
	d.Alpha = 5
	d.TailLength = 99

	r.Step(0.01)

	ripples := r.Ripples()
	if len(ripples) != 1 {
		t.Fatalf("active ripples = %d, want 1", len(ripples))
	}
	rp := ripples[0]
	if rp.Position != (mgl32.Vec3{3, 0, -2}) {
		t.Fatalf("ripple at %v, want (3, 0, -2)", rp.Position)
	}
	if rp.Radius < 0 || float64(rp.Radius) >= cfg.Ripples.InitialRadiusMax {
		t.Fatalf("ripple radius = %v, want within [0, %v)", rp.Radius, cfg.Ripples.InitialRadiusMax)
	}
	if rp.Alpha != 1 {
		t.Fatalf("ripple alpha = %v, want 1", rp.Alpha)
	}
	if r.Impacts() != 1 || r.Recycled() != 1 {
		t.Fatalf("impacts=%d recycled=%d, want 1 and 1", r.Impacts(), r.Recycled())
	}

	reset := r.Drops()[0]
	y := reset.Position.Y()
	if float64(y) < 0.1*cfg.Height || float64(y) > 1.5*cfg.Height {
		t.Fatalf("reset drop y = %v, want within [%v, %v]", y, 0.1*cfg.Height, 1.5*cfg.Height)
	}
	for _, v := range []float32{reset.Position.X(), reset.Position.Z()} {
		if float64(v) < -cfg.Range || float64(v) > cfg.Range {
			t.Fatalf("reset drop at %v, want x and z within [-%v, %v]", reset.Position, cfg.Range, cfg.Range)
		}
	}
	if !isSpeedTier(reset.SpeedRatio) {
		t.Fatalf("reset speed ratio = %v, want one of %v", reset.SpeedRatio, speedTiers)
	}
	if reset.Alpha < 0.3 || reset.Alpha >= 0.8 {
		t.Fatalf("reset alpha = %v, want within [0.3, 0.8)", reset.Alpha)
	}
	if reset.TailLength < 1 || reset.TailLength >= 3 {
		t.Fatalf("reset tail length = %v, want within [1, 3)", reset.TailLength)
	}
}

func isSpeedTier(v float32) bool {
	for _, tier := range speedTiers {
		if tier.Value == v {
			return true
		}
	}
	return false
}

func TestDropsFallAtTheirSpeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 1
	cfg.DropSpeed = 10
	r := New(cfg, core.NewRNG(8))
	r.Initialize()
	d := &r.Drops()[0]
	d.Position = mgl32.Vec3{0, 30, 0}
	d.SpeedRatio = 1.3

	r.Step(0.5)
	if y := r.Drops()[0].Position.Y(); y < 23.49 || y > 23.51 {
		t.Fatalf("drop y = %v, want 23.5", y)
	}
	if len(r.Ripples()) != 0 {
		t.Fatal("ripple spawned without an impact")
	}
}

func TestInitializeResetsDerivedState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 50
	r := New(cfg, core.NewRNG(12))
	r.Initialize()
	for i := 0; i < 200; i++ {
		r.Step(0.05)
	}
	if r.Impacts() == 0 {
		t.Fatal("expected impacts after 10 seconds of rain")
	}
	r.Initialize()
	if r.Impacts() != 0 || len(r.Ripples()) != 0 || r.RippleTrack().Slots() != 0 {
		t.Fatal("Initialize did not clear ripples and impact counter")
	}
	if r.Lightning().Alpha() != 0 || r.Lightning().Phase() != PhaseWaiting {
		t.Fatal("Initialize did not reset lightning")
	}
	if len(r.Drops()) != 50 {
		t.Fatalf("drops = %d, want 50", len(r.Drops()))
	}
}

func TestHugeStepRecyclesEverything(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 100
	r := New(cfg, core.NewRNG(21))
	r.Initialize()
	r.Step(1e6)
	if r.Recycled() != 100 {
		t.Fatalf("recycled = %d, want 100", r.Recycled())
	}
	if got := len(r.Ripples()); got != 100 {
		t.Fatalf("ripples = %d, want 100", got)
	}
	a := r.Lightning().Alpha()
	if a < 0 || a > 1 {
		t.Fatalf("lightning alpha = %v after huge step", a)
	}
}

func TestClearColorFollowsLightning(t *testing.T) {
	r := New(DefaultConfig(), core.NewRNG(1))
	r.Initialize()
	if r.ClearColor() != sky {
		t.Fatalf("clear color = %v, want sky %v without a flash", r.ClearColor(), sky)
	}
	r.lightning.alpha = 1
	if got := r.ClearColor(); got.DistanceRgb(flash) > 1e-9 {
		t.Fatalf("clear color = %v at full flash, want %v", got, flash)
	}
}

func TestSpritesIncludeOnlyActiveRipples(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 2
	r := New(cfg, core.NewRNG(3))
	r.Initialize()
	r.ripples.Spawn(mgl32.Vec3{})
	r.ripples.Spawn(mgl32.Vec3{1, 0, 1})
	r.ripples.slots[0].Radius = -1

	rings := 0
	for _, sp := range r.AppendSprites(nil) {
		if sp.Shape == core.ShapeRing {
			rings++
		}
	}
	if rings != 1 {
		t.Fatalf("ring sprites = %d, want 1", rings)
	}
}
