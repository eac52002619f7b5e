// Package kernel is the checked entry point for one grid step.
//
// Step and Apply validate the call (dimension, buffer lengths, aliasing) and
// then hand two exact n*n views to a core.Rule. They never allocate, never
// log and keep no state, so concurrent calls on disjoint buffers are safe.
package kernel

import (
	"fmt"
	"math"

	"gridstep/internal/core"
	"gridstep/internal/rules/average"
)

// DefaultRule names the rule used by Step.
const DefaultRule = average.Name

// MaxSide is the largest n whose n*n cells fit in the address space.
var MaxSide = maxSide()

func maxSide() int {
	limit := math.MaxInt / core.CellSize
	s := int(math.Sqrt(float64(limit)))
	for s > 0 && s > limit/s {
		s--
	}
	return s
}

var defaultRule core.Rule = average.New()

// Step advances in by one step into out using the default rule.
func Step(out, in []float32, n int) error {
	return Apply(defaultRule, out, in, n)
}

// Apply advances in by one step into out using r. Only the first n*n
// elements of each slice are touched. n == 0 is a valid no-op.
func Apply(r core.Rule, out, in []float32, n int) error {
	count, err := CellCount(n)
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	if len(out) < count {
		return fmt.Errorf("output has %d cells, need %d: %w", len(out), count, ErrShortBuffer)
	}
	if len(in) < count {
		return fmt.Errorf("input has %d cells, need %d: %w", len(in), count, ErrShortBuffer)
	}
	if core.CellsOverlap(out, in, count) {
		return ErrAliased
	}
	r.Apply(out[:count:count], in[:count:count], n)
	return nil
}

// CellCount validates n and returns n*n.
func CellCount(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("n=%d: %w", n, ErrNegativeDimension)
	}
	if n > MaxSide {
		return 0, fmt.Errorf("n=%d exceeds %d: %w", n, MaxSide, ErrDimensionTooLarge)
	}
	return n * n, nil
}
