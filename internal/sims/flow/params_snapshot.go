package flow

import "backdrop/internal/core"

// Parameters publishes the tunables for the HUD.
func (f *Flow) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				core.IntParam("count", "Stars", f.cfg.Count),
				core.FloatParam("range", "Range", f.cfg.Range),
			},
		},
		{
			Name: "Motion",
			Params: []core.Parameter{
				core.FloatParam("flow_speed", "Flow speed", f.cfg.FlowSpeed),
				core.FloatParam("fade_in_rate", "Fade-in rate", f.cfg.FadeInRate),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (f *Flow) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "flow_speed", Label: "Flow speed", Step: 2, Min: 0, Max: 200, HasMin: true, HasMax: true},
		{Key: "fade_in_rate", Label: "Fade-in rate", Step: 0.1, Min: 0, Max: 5, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter applies a HUD adjustment.
func (f *Flow) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "flow_speed":
		f.cfg.FlowSpeed = value
		f.updateVelocity()
	case "fade_in_rate":
		f.cfg.FadeInRate = value
	default:
		return false
	}
	return true
}
