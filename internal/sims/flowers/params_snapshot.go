package flowers

import (
	"github.com/go-gl/mathgl/mgl32"

	"backdrop/internal/core"
)

// Parameters publishes the tunables for the HUD.
func (f *Flowers) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Petals",
			Params: []core.Parameter{
				core.IntParam("count", "Petals", f.cfg.Count),
				core.FloatParam("fall_speed", "Fall speed", f.cfg.FallSpeed),
				core.FloatParam("max_spin", "Max spin", f.cfg.MaxSpin),
			},
		},
		{
			Name: "Wind",
			Params: []core.Parameter{
				core.FloatParam("wind_x", "Wind x", float64(f.cfg.Wind.X())),
				core.FloatParam("wind_z", "Wind z", float64(f.cfg.Wind.Z())),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (f *Flowers) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "fall_speed", Label: "Fall speed", Step: 0.5, Min: 0, Max: 60, HasMin: true, HasMax: true},
		{Key: "wind_x", Label: "Wind x", Step: 0.5, Min: -20, Max: 20, HasMin: true, HasMax: true},
		{Key: "wind_z", Label: "Wind z", Step: 0.5, Min: -20, Max: 20, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter applies a HUD adjustment. Spin changes only affect petals
// spawned afterwards.
func (f *Flowers) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "fall_speed":
		f.cfg.FallSpeed = value
	case "wind_x":
		f.cfg.Wind = mgl32.Vec3{float32(value), f.cfg.Wind.Y(), f.cfg.Wind.Z()}
	case "wind_z":
		f.cfg.Wind = mgl32.Vec3{f.cfg.Wind.X(), f.cfg.Wind.Y(), float32(value)}
	case "max_spin":
		f.cfg.MaxSpin = value
	default:
		return false
	}
	return true
}
