// Package average implements the default step rule: every cell becomes the
// mean of its four edge-adjacent neighbours on a torus.
package average

import "gridstep/internal/core"

// Name is the registry key of the rule.
const Name = "average4"

// Average is the von Neumann neighbour mean with wrap-around boundary.
type Average struct{}

// New returns the rule. It has no tunables.
func New() *Average { return &Average{} }

// Name returns the rule identifier.
func (a *Average) Name() string { return Name }

// Radius returns the neighbourhood reach.
func (a *Average) Radius() int { return 1 }

// Apply writes out[i,j] = (up + down + left + right) / 4. The summation order
// is fixed so results are bit-reproducible.
func (a *Average) Apply(out, in []float32, n int) {
	for i := 0; i < n; i++ {
		row := i * n
		up := ((i - 1 + n) % n) * n
		down := ((i + 1) % n) * n
		for j := 0; j < n; j++ {
			left := (j - 1 + n) % n
			right := (j + 1) % n
			out[row+j] = (in[up+j] + in[down+j] + in[row+left] + in[row+right]) * 0.25
		}
	}
}

// Parameters reports the fixed configuration.
func (a *Average) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Rule: Name,
		Params: []core.Parameter{{
			Key:         "boundary",
			Label:       "Boundary",
			Type:        core.ParamTypeEnum,
			Value:       core.Wrap.String(),
			Description: "edge cells read the opposite edge",
		}},
	}
}

func init() {
	core.Register(Name, func(map[string]string) core.Rule { return New() })
}
