package waves

import "backdrop/internal/core"

// Parameters publishes the tunables for the HUD.
func (w *Waves) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Waves",
			Params: []core.Parameter{
				core.IntParam("count", "Fronts", w.cfg.Count),
				core.FloatParam("rate", "Rate", w.cfg.Rate),
				core.FloatParam("break_threshold", "Break at", w.cfg.BreakThreshold),
			},
		},
		{
			Name: "Foam",
			Params: []core.Parameter{
				core.FloatParam("foam_rate", "Foam rate", w.cfg.FoamRate),
				core.FloatParam("foam_lifetime", "Lifetime", w.cfg.FoamLifetime),
				core.IntParam("foam", "Live foam", len(w.foam)),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (w *Waves) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "rate", Label: "Rate", Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "break_threshold", Label: "Break at", Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "foam_rate", Label: "Foam rate", Step: 10, Min: 0, Max: 1000, HasMin: true, HasMax: true},
		{Key: "foam_lifetime", Label: "Lifetime", Step: 0.25, Min: 0.25, Max: 10, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter applies a HUD adjustment.
func (w *Waves) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "rate":
		w.cfg.Rate = value
	case "break_threshold":
		w.cfg.BreakThreshold = value
	case "foam_rate":
		w.cfg.FoamRate = value
	case "foam_lifetime":
		if value <= 0 {
			return false
		}
		w.cfg.FoamLifetime = value
	default:
		return false
	}
	return true
}
