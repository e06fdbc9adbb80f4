package rain

import "backdrop/internal/core"

// Parameters publishes the tunables and live lightning state for the HUD.
func (r *Rain) Parameters() core.ParameterSnapshot {
	l := r.cfg.Lightning
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Rain",
			Params: []core.Parameter{
				core.IntParam("count", "Drops", r.cfg.Count),
				core.FloatParam("drop_speed", "Drop speed", r.cfg.DropSpeed),
				core.IntParam("ripples", "Active ripples", r.ripples.Count()),
			},
		},
		{
			Name: "Ripples",
			Params: []core.Parameter{
				core.FloatParam("ripple_expand_speed", "Expand speed", r.cfg.Ripples.ExpandSpeed),
				core.FloatParam("ripple_max_radius", "Max radius", r.cfg.Ripples.MaxRadius),
			},
		},
		{
			Name:    "Lightning",
			Summary: r.lightning.Phase().String(),
			Params: []core.Parameter{
				core.FloatParam("lightning_min_interval", "Min interval", l.MinInterval),
				core.FloatParam("lightning_max_interval", "Max interval", l.MaxInterval),
				core.FloatParam("lightning_peak_probability", "Peak probability", l.PeakProbability),
				core.FloatParam("lightning_alpha", "Flash", float64(r.lightning.Alpha())),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (r *Rain) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "drop_speed", Label: "Drop speed", Step: 2, Min: 0, Max: 200, HasMin: true, HasMax: true},
		{Key: "ripple_expand_speed", Label: "Ripple speed", Step: 0.5, Min: 0, Max: 50, HasMin: true, HasMax: true},
		{Key: "ripple_max_radius", Label: "Ripple radius", Step: 0.25, Min: 0.25, Max: 20, HasMin: true, HasMax: true},
		{Key: "lightning_peak_probability", Label: "Flash chance", Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter applies a HUD adjustment.
func (r *Rain) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "drop_speed":
		r.cfg.DropSpeed = value
	case "ripple_expand_speed":
		r.cfg.Ripples.ExpandSpeed = value
		r.ripples.cfg.ExpandSpeed = value
	case "ripple_max_radius":
		if value <= 0 {
			return false
		}
		r.cfg.Ripples.MaxRadius = value
		r.ripples.cfg.MaxRadius = value
	case "lightning_peak_probability":
		r.cfg.Lightning.PeakProbability = value
		r.lightning.cfg.PeakProbability = value
	default:
		return false
	}
	return true
}
