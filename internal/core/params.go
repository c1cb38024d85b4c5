package core

import "math"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeText denotes free-text parameters such as the seed.
	ParamTypeText ParamType = "text"
)

// Parameter describes a single tunable value exposed by a sketch.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of tunables exposed by a sketch.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the parameter stored under key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, group := range s.Groups {
		for _, param := range group.Params {
			if param.Key == key {
				return param, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an adjustable parameter that should be exposed on
// the HUD. Steps and bounds are optional and interpreted based on the
// parameter type.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// ClampInt limits value to the control's bounds.
func (c ParameterControl) ClampInt(value int) int {
	if c.HasMin {
		if min := int(math.Round(c.Min)); value < min {
			value = min
		}
	}
	if c.HasMax {
		if max := int(math.Round(c.Max)); value > max {
			value = max
		}
	}
	return value
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// ParameterProvider exposes the current parameter values.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// IntParameterSetter allows HUD interactions to update integer parameters.
// It reports whether the stored value changed.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// TextParameterSetter allows HUD interactions to update text parameters.
// It reports whether the stored value changed.
type TextParameterSetter interface {
	SetTextParameter(key string, value string) bool
}
