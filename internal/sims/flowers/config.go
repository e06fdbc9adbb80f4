package flowers

import (
	"github.com/go-gl/mathgl/mgl32"

	"backdrop/internal/core"
)

// Config controls the falling petals.
type Config struct {
	Count int
	// Range is the half-width of the spawn box on x and z.
	Range float64
	// Height scales the vertical spawn band [0.1*Height, 1.5*Height].
	Height    float64
	GroundY   float64
	FallSpeed float64
	Wind      mgl32.Vec3
	// MaxSpin bounds the per-axis angular speed in radians per second.
	MaxSpin float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Count:     1000,
		Range:     100,
		Height:    60,
		GroundY:   0,
		FallSpeed: 6,
		Wind:      mgl32.Vec3{2.5, 0, 0.8},
		MaxSpin:   2.5,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.IntFrom(cfg, "count", &c.Count)
	core.NonNegativeFloatFrom(cfg, "range", &c.Range)
	core.NonNegativeFloatFrom(cfg, "height", &c.Height)
	core.FloatFrom(cfg, "ground_y", &c.GroundY)
	core.NonNegativeFloatFrom(cfg, "fall_speed", &c.FallSpeed)
	core.NonNegativeFloatFrom(cfg, "max_spin", &c.MaxSpin)

	wx, wz := float64(c.Wind.X()), float64(c.Wind.Z())
	core.FloatFrom(cfg, "wind_x", &wx)
	core.FloatFrom(cfg, "wind_z", &wz)
	c.Wind = mgl32.Vec3{float32(wx), 0, float32(wz)}
	return c
}
