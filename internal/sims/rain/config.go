package rain

import "backdrop/internal/core"

// RippleConfig controls the ground ripples spawned by drop impacts.
type RippleConfig struct {
	ExpandSpeed      float64
	MaxRadius        float64
	InitialRadiusMax float64
}

// LightningConfig controls the lightning pulse timer.
type LightningConfig struct {
	MinInterval     float64
	MaxInterval     float64
	MaxBurst        float64
	PeakProbability float64
	MinFlashAlpha   float64
	// FastDecay is the exponential decay rate of a flash while bursting.
	FastDecay float64
	// FlashThreshold is the alpha below which the next flash may fire.
	FlashThreshold float64
	// EmberDuration is how long the last flash of a burst takes to fade out.
	EmberDuration float64
}

// Config controls the rain animation.
type Config struct {
	Count int
	// Range is the half-width of the spawn box on x and z.
	Range float64
	// Height scales the vertical spawn band [0.1*Height, 1.5*Height].
	Height    float64
	GroundY   float64
	DropSpeed float64

	Ripples   RippleConfig
	Lightning LightningConfig
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Count:     1000,
		Range:     100,
		Height:    60,
		GroundY:   0,
		DropSpeed: 40,
		Ripples: RippleConfig{
			ExpandSpeed:      6,
			MaxRadius:        3,
			InitialRadiusMax: 0.2,
		},
		Lightning: LightningConfig{
			MinInterval:     6,
			MaxInterval:     18,
			MaxBurst:        5,
			PeakProbability: 0.15,
			MinFlashAlpha:   0.4,
			FastDecay:       12,
			FlashThreshold:  0.02,
			EmberDuration:   1.5,
		},
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
	core.NonNegativeFloatFrom(cfg, "drop_speed", &c.DropSpeed)

	core.NonNegativeFloatFrom(cfg, "ripple_expand_speed", &c.Ripples.ExpandSpeed)
	core.NonNegativeFloatFrom(cfg, "ripple_max_radius", &c.Ripples.MaxRadius)
	core.NonNegativeFloatFrom(cfg, "ripple_initial_radius_max", &c.Ripples.InitialRadiusMax)
	if c.Ripples.MaxRadius <= 0 {
		c.Ripples.MaxRadius = DefaultConfig().Ripples.MaxRadius
	}

	l := &c.Lightning
	core.NonNegativeFloatFrom(cfg, "lightning_min_interval", &l.MinInterval)
	core.NonNegativeFloatFrom(cfg, "lightning_max_interval", &l.MaxInterval)
	if l.MaxInterval < l.MinInterval {
		l.MaxInterval = l.MinInterval
	}
	core.NonNegativeFloatFrom(cfg, "lightning_max_burst", &l.MaxBurst)
	if l.MaxBurst < 1 {
		l.MaxBurst = 1
	}
	core.NonNegativeFloatFrom(cfg, "lightning_peak_probability", &l.PeakProbability)
	core.NonNegativeFloatFrom(cfg, "lightning_min_flash_alpha", &l.MinFlashAlpha)
	if l.MinFlashAlpha > 1 {
		l.MinFlashAlpha = 1
	}
	core.NonNegativeFloatFrom(cfg, "lightning_fast_decay", &l.FastDecay)
	core.NonNegativeFloatFrom(cfg, "lightning_ember_duration", &l.EmberDuration)
	return c
}
