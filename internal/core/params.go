package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Parameter describes a single value shown on the HUD.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of values exposed by a session.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds the parameter with the given key in any group.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// Merge returns a snapshot holding the groups of s followed by those of o.
func (s ParameterSnapshot) Merge(o ParameterSnapshot) ParameterSnapshot {
	groups := make([]ParameterGroup, 0, len(s.Groups)+len(o.Groups))
	groups = append(groups, s.Groups...)
	groups = append(groups, o.Groups...)
	return ParameterSnapshot{Groups: groups}
}

// ParameterControl describes an adjustable parameter. Steps and bounds are
// interpreted based on the parameter type.
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

// Clamp limits v to the control bounds.
func (c ParameterControl) Clamp(v float64) float64 {
	if c.HasMin && v < c.Min {
		v = c.Min
	}
	if c.HasMax && v > c.Max {
		v = c.Max
	}
	return v
}

// Nudge moves v by n steps and clamps the result.
func (c ParameterControl) Nudge(v float64, n int) float64 {
	return c.Clamp(v + float64(n)*c.Step)
}

// SpeedControl bounds the auto-tick speed.
var SpeedControl = ParameterControl{
	Key: "speed", Label: "Speed", Type: ParamTypeInt,
	Step: 1, Min: 1, Max: 10, HasMin: true, HasMax: true,
}

// ZoomControl bounds the view zoom factor.
var ZoomControl = ParameterControl{
	Key: "zoom", Label: "Zoom", Type: ParamTypeFloat,
	Step: 0.1, Min: 0.1, Max: 5, HasMin: true, HasMax: true,
}

func intParam(key, label string, v int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(v)}
}

func floatParam(key, label string, v float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', 1, 64)}
}
