// Package moore implements the eight-neighbour mean with a configurable
// boundary policy.
package moore

import (
	"gridstep/internal/core"
)

// Name is the registry key of the rule.
const Name = "average8"

// Moore averages the Moore neighbourhood, centre excluded.
type Moore struct {
	boundary core.Boundary
}

// New returns a Moore rule using the given boundary policy.
func New(b core.Boundary) *Moore { return &Moore{boundary: b} }

// Name returns the rule identifier.
func (m *Moore) Name() string { return Name }

// Radius returns the neighbourhood reach.
func (m *Moore) Radius() int { return 1 }

// Boundary returns the configured edge policy.
func (m *Moore) Boundary() core.Boundary { return m.boundary }

// Apply writes the mean of the eight neighbours, visiting them row by row.
// Neighbours outside the grid under core.Zero count as 0 and still divide by 8.
func (m *Moore) Apply(out, in []float32, n int) {
	g := core.MakeGrid(in, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float32
			for di := -1; di <= 1; di++ {
				for dj := -1; dj <= 1; dj++ {
					if di == 0 && dj == 0 {
						continue
					}
					if idx, ok := g.Neighbor(i, j, di, dj, m.boundary); ok {
						sum += in[idx]
					}
				}
			}
			out[g.Index(i, j)] = sum * 0.125
		}
	}
}

// Parameters reports the active configuration.
func (m *Moore) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Rule: Name,
		Params: []core.Parameter{{
			Key:         "boundary",
			Label:       "Boundary",
			Type:        core.ParamTypeEnum,
			Value:       m.boundary.String(),
			Description: "wrap, clamp or zero",
		}},
	}
}

// Config holds parameters for the Moore rule.
type Config struct {
	Boundary core.Boundary
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Boundary: core.Wrap}
}

// FromMap populates a Config from a string map. Invalid values keep defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["boundary"]; ok {
		if parsed, err := core.ParseBoundary(v); err == nil {
			c.Boundary = parsed
		}
	}
	return c
}

func init() {
	core.Register(Name, func(cfg map[string]string) core.Rule {
		return New(FromMap(cfg).Boundary)
	})
}
