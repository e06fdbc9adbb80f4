package flow

import (
	"github.com/go-gl/mathgl/mgl32"

	"backdrop/internal/core"
)

// Config controls the starfield.
type Config struct {
	Count int
	// Range is the half-width of the cube stars live in.
	Range float64

	FlowDirection mgl32.Vec3
	FlowSpeed     float64

	// CameraEye and CameraDirection define the camera plane; stars behind it
	// are recycled.
	CameraEye       mgl32.Vec3
	CameraDirection mgl32.Vec3

	// FadeInRate is the per-second alpha gain of a recycled star.
	FadeInRate float64
	// FieldFadeRate is the per-second gain of the whole-field fade-in.
	FieldFadeRate float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Count:           2000,
		Range:           200,
		FlowDirection:   mgl32.Vec3{0, 0, 1},
		FlowSpeed:       20,
		CameraEye:       mgl32.Vec3{0, 0, 200},
		CameraDirection: mgl32.Vec3{0, 0, -1},
		FadeInRate:      0.8,
		FieldFadeRate:   0.5,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.IntFrom(cfg, "count", &c.Count)
	r := c.Range
	core.NonNegativeFloatFrom(cfg, "range", &r)
	if r > 0 {
		c.Range = r
		c.CameraEye = mgl32.Vec3{0, 0, float32(r)}
	}
	core.NonNegativeFloatFrom(cfg, "flow_speed", &c.FlowSpeed)
	core.NonNegativeFloatFrom(cfg, "fade_in_rate", &c.FadeInRate)
	core.NonNegativeFloatFrom(cfg, "field_fade_rate", &c.FieldFadeRate)
	return c
}
