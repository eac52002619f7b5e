package core

import "fmt"

// Boundary selects how neighbour lookups past the grid edge are resolved.
type Boundary uint8

const (
	// Wrap treats the grid as a torus: row -1 is row n-1.
	Wrap Boundary = iota
	// Clamp repeats the nearest edge cell.
	Clamp
	// Zero treats every cell outside the grid as 0.
	Zero
)

// String returns the config name of the policy.
func (b Boundary) String() string {
	switch b {
	case Wrap:
		return "wrap"
	case Clamp:
		return "clamp"
	case Zero:
		return "zero"
	default:
		return fmt.Sprintf("boundary(%d)", uint8(b))
	}
}

// ParseBoundary maps a config name onto a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "wrap", "torus", "":
		return Wrap, nil
	case "clamp", "edge":
		return Clamp, nil
	case "zero", "pad":
		return Zero, nil
	}
	return Wrap, fmt.Errorf("unknown boundary %q", s)
}

// Resolve maps coordinate v on an axis of length n onto a valid coordinate.
// ok is false only under Zero when v lies outside [0, n).
func (b Boundary) Resolve(v, n int) (int, bool) {
	if v >= 0 && v < n {
		return v, true
	}
	switch b {
	case Clamp:
		if v < 0 {
			return 0, true
		}
		return n - 1, true
	case Zero:
		return 0, false
	default:
		return (v%n + n) % n, true
	}
}

// Grid is a square, row-major view over float32 cells. It never owns the
// backing memory.
type Grid struct {
	N     int
	cells []float32
}

// MakeGrid returns a grid value over the first n*n elements of cells without
// allocating. cells must hold at least n*n elements.
func MakeGrid(cells []float32, n int) Grid {
	return Grid{N: n, cells: cells[: n*n : n*n]}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []float32 { return g.cells }

// Index returns the linear slice index for row i, column j.
func (g *Grid) Index(i, j int) int { return i*g.N + j }

// At returns the value at row i, column j.
func (g *Grid) At(i, j int) float32 { return g.cells[i*g.N+j] }

// Neighbor resolves the linear index of the cell at offset (di, dj) from
// (i, j). ok is false when the policy places the neighbour outside the grid.
func (g *Grid) Neighbor(i, j, di, dj int, b Boundary) (idx int, ok bool) {
	ni, iok := b.Resolve(i+di, g.N)
	nj, jok := b.Resolve(j+dj, g.N)
	if !iok || !jok {
		return 0, false
	}
	return ni*g.N + nj, true
}
