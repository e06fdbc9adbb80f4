package waves

import "backdrop/internal/core"

// Config controls the breaking waves.
type Config struct {
	// Count is the number of wave fronts cycling toward the shore.
	Count int
	// Range is the half-width of the shoreline on x.
	Range float64
	// FarZ and NearZ are the depths a wave travels between over one cycle.
	FarZ  float64
	NearZ float64
	// Rate is the progress gained per second.
	Rate float64
	// BreakThreshold is the progress above which a wave sheds foam.
	BreakThreshold float64

	// FoamRate is the number of foam particles a breaking wave sheds per second.
	FoamRate float64
	// MaxFoamPerStep caps the foam spawned by a single Step.
	MaxFoamPerStep int
	// FoamLifetime is the time in seconds a foam particle takes to age out.
	FoamLifetime float64
	CrestHeight  float64
	MaxSpin      float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Count:          5,
		Range:          100,
		FarZ:           -150,
		NearZ:          40,
		Rate:           0.08,
		BreakThreshold: 0.6,
		FoamRate:       150,
		MaxFoamPerStep: 400,
		FoamLifetime:   2.5,
		CrestHeight:    1.5,
		MaxSpin:        3,
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
	core.FloatFrom(cfg, "far_z", &c.FarZ)
	core.FloatFrom(cfg, "near_z", &c.NearZ)
	core.NonNegativeFloatFrom(cfg, "rate", &c.Rate)
	core.NonNegativeFloatFrom(cfg, "break_threshold", &c.BreakThreshold)
	if c.BreakThreshold > 1 {
		c.BreakThreshold = 1
	}
	core.NonNegativeFloatFrom(cfg, "foam_rate", &c.FoamRate)
	core.IntFrom(cfg, "max_foam_per_step", &c.MaxFoamPerStep)
	lifetime := c.FoamLifetime
	core.NonNegativeFloatFrom(cfg, "foam_lifetime", &lifetime)
	if lifetime > 0 {
		c.FoamLifetime = lifetime
	}
	core.NonNegativeFloatFrom(cfg, "crest_height", &c.CrestHeight)
	core.NonNegativeFloatFrom(cfg, "max_spin", &c.MaxSpin)
	return c
}
