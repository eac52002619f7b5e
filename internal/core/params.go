package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeEnum denotes a parameter picked from a fixed set of names.
	ParamTypeEnum ParamType = "enum"
)

// Parameter describes a single tunable value exposed by a rule.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterSnapshot captures the current set of tunables exposed by a rule.
type ParameterSnapshot struct {
	Rule   string
	Params []Parameter
}

// ParameterProvider is implemented by rules with tunables.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// ParameterControl describes an adjustable parameter that should be exposed on
// the HUD. Bounds are optional.
type ParameterControl struct {
	Key   string
	Label string
	Step  float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// Clamp limits v to the control's bounds.
func (c ParameterControl) Clamp(v float64) float64 {
	if c.HasMin && v < c.Min {
		v = c.Min
	}
	if c.HasMax && v > c.Max {
		v = c.Max
	}
	return v
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters. It returns a rule carrying the new value, leaving the receiver
// untouched, and false when the key is unknown.
type FloatParameterSetter interface {
	WithFloatParameter(key string, value float64) (Rule, bool)
}
