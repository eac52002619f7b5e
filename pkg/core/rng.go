package core

import (
	"fmt"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float32 returns a value in [lo, hi).
func (r *RNG) Float32(lo, hi float32) float32 {
	return lo + r.r.Float32()*(hi-lo)
}

// IntN returns a value in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// FillUniform fills buf with values in [lo, hi).
func FillUniform(r *RNG, buf []float32, lo, hi float32) {
	for i := range buf {
		buf[i] = r.Float32(lo, hi)
	}
}

// FillSpots clears buf and drops count unit impulses at random cells of an
// n*n grid. Spots may coincide.
func FillSpots(r *RNG, buf []float32, n, count int) {
	for i := range buf {
		buf[i] = 0
	}
	if n <= 0 {
		return
	}
	for s := 0; s < count; s++ {
		buf[r.IntN(n)*n+r.IntN(n)] = 1
	}
}

// Patterns lists the names accepted by FillPattern.
var Patterns = []string{"uniform", "spots", "impulse", "index", "distance"}

// FillPattern fills the n*n prefix of buf with a named starting state:
//
//	uniform   values in [0, 1)
//	spots     n/4+1 unit impulses at random cells
//	impulse   a single 1 at the centre
//	index     every cell holds its own linear index
//	distance  random edge costs in [1, 10) with a zero diagonal
func FillPattern(name string, r *RNG, buf []float32, n int) error {
	if n < 0 || len(buf) < n*n {
		return fmt.Errorf("pattern %q: buffer of %d cells cannot hold n=%d", name, len(buf), n)
	}
	cells := buf[:n*n]
	switch name {
	case "uniform":
		FillUniform(r, cells, 0, 1)
	case "spots":
		FillSpots(r, cells, n, n/4+1)
	case "impulse":
		for i := range cells {
			cells[i] = 0
		}
		if n > 0 {
			cells[(n/2)*n+n/2] = 1
		}
	case "index":
		for i := range cells {
			cells[i] = float32(i)
		}
	case "distance":
		FillUniform(r, cells, 1, 10)
		for i := 0; i < n; i++ {
			cells[i*n+i] = 0
		}
	default:
		return fmt.Errorf("unknown pattern %q", name)
	}
	return nil
}
