package life

import (
	"strconv"

	"toruslife/pkg/core"

	"go.uber.org/zap"
)

// Parameters reports the engine's current configuration.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				{Key: "w", Label: "Width", Type: core.ParamTypeInt, Value: strconv.Itoa(l.w)},
				{Key: "h", Label: "Height", Type: core.ParamTypeInt, Value: strconv.Itoa(l.h)},
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(l.density, 'f', -1, 64)},
			},
		},
	}}
}

// ParameterControls lists the adjustable parameters.
func (l *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a float parameter, reporting whether key is known
// and value accepted.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "density":
		if !validProbability(value) {
			return false
		}
		l.density = value
		l.logger.Debug("density changed", zap.Float64("density", value))
		return true
	}
	return false
}
