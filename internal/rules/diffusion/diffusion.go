// Package diffusion implements an explicit heat-diffusion stencil.
package diffusion

import (
	"strconv"

	"gridstep/internal/core"
)

// Name is the registry key of the rule.
const Name = "diffusion"

// MaxAlpha is the largest stable rate for the five-point Laplacian.
const MaxAlpha = 0.25

// Diffusion computes out = in + alpha * laplacian(in).
type Diffusion struct {
	cfg   Config
	alpha float32
}

// New returns a Diffusion rule for cfg. Alpha is clamped to [0, MaxAlpha].
func New(cfg Config) *Diffusion {
	if cfg.Alpha < 0 {
		cfg.Alpha = 0
	}
	if cfg.Alpha > MaxAlpha {
		cfg.Alpha = MaxAlpha
	}
	return &Diffusion{cfg: cfg, alpha: float32(cfg.Alpha)}
}

// Name returns the rule identifier.
func (d *Diffusion) Name() string { return Name }

// Radius returns the neighbourhood reach.
func (d *Diffusion) Radius() int { return 1 }

// Config returns the effective configuration.
func (d *Diffusion) Config() Config { return d.cfg }

// Apply runs one explicit Euler step. Neighbours outside the grid under
// core.Zero read as 0, so mass leaks through the edge.
func (d *Diffusion) Apply(out, in []float32, n int) {
	g := core.MakeGrid(in, n)
	b := d.cfg.Boundary
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c := g.At(i, j)
			sum := at(&g, b, i, j, -1, 0) + at(&g, b, i, j, 1, 0) + at(&g, b, i, j, 0, -1) + at(&g, b, i, j, 0, 1)
			// Explicit conversions round each product so no platform fuses
			// them into an FMA.
			lap := sum - float32(4*c)
			out[g.Index(i, j)] = c + float32(d.alpha*lap)
		}
	}
}

func at(g *core.Grid, b core.Boundary, i, j, di, dj int) float32 {
	idx, ok := g.Neighbor(i, j, di, dj, b)
	if !ok {
		return 0
	}
	return g.Cells()[idx]
}

// Parameters reports the active configuration.
func (d *Diffusion) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Rule: Name,
		Params: []core.Parameter{
			{
				Key:         "alpha",
				Label:       "Alpha",
				Type:        core.ParamTypeFloat,
				Value:       strconv.FormatFloat(d.cfg.Alpha, 'f', 3, 64),
				Description: "fraction of the Laplacian applied per step",
			},
			{
				Key:         "boundary",
				Label:       "Boundary",
				Type:        core.ParamTypeEnum,
				Value:       d.cfg.Boundary.String(),
				Description: "wrap, clamp or zero",
			},
		},
	}
}

// ParameterControls exposes alpha on the HUD.
func (d *Diffusion) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    "alpha",
		Label:  "Alpha",
		Step:   0.01,
		Min:    0,
		Max:    MaxAlpha,
		HasMin: true,
		HasMax: true,
	}}
}

// WithFloatParameter returns a copy with key set to value.
func (d *Diffusion) WithFloatParameter(key string, value float64) (core.Rule, bool) {
	if key != "alpha" {
		return d, false
	}
	cfg := d.cfg
	cfg.Alpha = value
	return New(cfg), true
}

// Config holds parameters for the diffusion rule.
type Config struct {
	Alpha    float64
	Boundary core.Boundary
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Alpha: 0.2, Boundary: core.Wrap}
}

// FromMap populates a Config from a string map. Invalid values keep defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["alpha"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Alpha = parsed
		}
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
		return New(FromMap(cfg))
	})
}
