// Package shortcut implements the min-plus "shortcut" step: treating the
// grid as a dense matrix of direct edge costs d, every cell becomes the
// cheapest route of at most two hops,
//
//	out[i,j] = min over k of (d[i,k] + d[k,j]).
//
// The result depends on a whole row and a whole column of the input, so the
// rule reports core.RadiusGlobal.
package shortcut

import (
	"math"

	"gridstep/internal/core"
)

// Name is the registry key of the rule.
const Name = "shortcut"

var inf = float32(math.Inf(1))

// Shortcut is the baseline triple loop with k ascending.
type Shortcut struct{}

// New returns the rule.
func New() *Shortcut { return &Shortcut{} }

// Name returns the rule identifier.
func (s *Shortcut) Name() string { return Name }

// Radius reports that any input cell may influence any output cell.
func (s *Shortcut) Radius() int { return core.RadiusGlobal }

// Apply starts every cell at +Inf and lowers it over k. A NaN candidate never
// compares lower, so it is skipped; a row/column pair made only of NaN sums
// yields +Inf.
func (s *Shortcut) Apply(out, in []float32, n int) {
	for i := 0; i < n; i++ {
		row := in[i*n : i*n+n]
		for j := 0; j < n; j++ {
			v := inf
			for k, x := range row {
				if z := x + in[k*n+j]; z < v {
					v = z
				}
			}
			out[i*n+j] = v
		}
	}
}

func init() {
	core.Register(Name, func(map[string]string) core.Rule { return New() })
}
