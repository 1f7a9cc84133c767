package caves

import (
	"strconv"

	"cave-ca/internal/core"
	"cave-ca/internal/render"
)

var controls = []core.ParameterControl{
	{Key: "p", Label: "Seed chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "steps", Label: "Steps", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 10, HasMin: true, HasMax: true},
	{Key: "birth_limit", Label: "Birth limit", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 10, HasMin: true, HasMax: true},
	{Key: "death_limit", Label: "Death limit", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 10, HasMin: true, HasMax: true},
	{Key: "overcrowd_limit", Label: "Overcrowd limit", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 8, HasMin: true, HasMax: true},
}

// Parameters reports the current configuration for display.
func (w *World[T]) Parameters() core.ParameterSnapshot {
	c := w.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Map",
			Params: []core.Parameter{
				intParam("w", "Width", c.Width),
				intParam("h", "Height", c.Height),
				int64Param("seed", "Seed", w.seed),
			},
		},
		{
			Name: "Automaton",
			Params: []core.Parameter{
				floatParam("p", "Seed chance", c.SeedProbability),
				intParam("steps", "Steps", c.Steps),
				intParam("birth_limit", "Birth limit", c.BirthLimit),
				intParam("death_limit", "Death limit", c.DeathLimit),
				intParam("overcrowd_limit", "Overcrowd limit", c.OvercrowdLimit),
			},
		},
		{
			Name: "Colors",
			Params: []core.Parameter{
				{Key: "alive_color", Label: "Alive", Type: core.ParamTypeColor, Value: render.FormatHexColor(c.AliveColor)},
				{Key: "dead_color", Label: "Dead", Type: core.ParamTypeColor, Value: render.FormatHexColor(c.DeadColor)},
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable tunables with their slider ranges.
func (w *World[T]) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, len(controls))
	copy(out, controls)
	return out
}

// SetIntParameter clamps and applies an integer tunable, then regenerates the
// map with the current seed.
func (w *World[T]) SetIntParameter(key string, value int) bool {
	ctrl, ok := lookupControl(key, core.ParamTypeInt)
	if !ok {
		return false
	}
	value = ctrl.ClampInt(value)
	next := w.cfg
	switch key {
	case "steps":
		next.Steps = value
	case "birth_limit":
		next.BirthLimit = value
	case "death_limit":
		next.DeathLimit = value
	case "overcrowd_limit":
		next.OvercrowdLimit = value
	}
	return w.apply(next)
}

// SetFloatParameter clamps and applies a float tunable, then regenerates the
// map with the current seed.
func (w *World[T]) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := lookupControl(key, core.ParamTypeFloat)
	if !ok {
		return false
	}
	next := w.cfg
	if key == "p" {
		next.SeedProbability = ctrl.ClampFloat(value)
	}
	return w.apply(next)
}

func (w *World[T]) apply(next Config) bool {
	if err := w.auto.SetParams(next.Params()); err != nil {
		return false
	}
	w.cfg = next
	if w.auto.Seeded() {
		return w.Reset(w.seed) == nil
	}
	return true
}

func lookupControl(key string, typ core.ParamType) (core.ParameterControl, bool) {
	for _, c := range controls {
		if c.Key == key && c.Type == typ {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
