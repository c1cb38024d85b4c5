package sketch

import (
	"strconv"

	"gridlines/internal/core"
)

// Parameter keys shared with the HUD and FromMap.
const (
	KeySeed      = "seed"
	KeyLineWidth = "line_width"
	KeyGridSize  = "grid"
)

func (s *Sketch) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Canvas",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				{Key: "layout", Label: "Layout", Type: core.ParamTypeText, Value: string(s.cfg.Layout)},
			},
		},
		{
			Name: "Sketch",
			Params: []core.Parameter{
				{Key: KeySeed, Label: "Seed", Type: core.ParamTypeText, Value: s.cfg.Seed},
				intParam(KeyLineWidth, "Line width", s.cfg.LineWidth),
				intParam(KeyGridSize, "Grid size", s.cfg.GridSize),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values adjustable from the HUD.
func (s *Sketch) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: KeySeed, Label: "Seed", Type: core.ParamTypeText},
		{
			Key: KeyLineWidth, Label: "Line width", Type: core.ParamTypeInt,
			Step: 1, Min: MinLineWidth, Max: MaxLineWidth, HasMin: true, HasMax: true,
		},
		{
			Key: KeyGridSize, Label: "Grid size", Type: core.ParamTypeInt,
			Step: 1, Min: MinGridSize, Max: MaxGridSize, HasMin: true, HasMax: true,
		},
	}
}

// SetIntParameter clamps value into the control range and stores it. It
// reports whether the configuration changed.
func (s *Sketch) SetIntParameter(key string, value int) bool {
	switch key {
	case KeyLineWidth:
		value = clampInt(value, MinLineWidth, MaxLineWidth)
		if value == s.cfg.LineWidth {
			return false
		}
		s.cfg.LineWidth = value
	case KeyGridSize:
		value = clampInt(value, MinGridSize, MaxGridSize)
		if value == s.cfg.GridSize {
			return false
		}
		s.cfg.GridSize = value
	default:
		return false
	}
	return true
}

// SetTextParameter stores the seed. Any string, including the empty one,
// is accepted.
func (s *Sketch) SetTextParameter(key string, value string) bool {
	if key != KeySeed || value == s.cfg.Seed {
		return false
	}
	s.cfg.Seed = value
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
