// Package stats summarises grid states for host-side tools.
package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds aggregate values of one grid state. NaN and ±Inf cells are
// counted separately and excluded from the other fields, matching the finite
// range used for heatmaps.
type Summary struct {
	Cells  int
	NaN    int
	Inf    int
	Min    float64
	Max    float64
	Sum    float64
	Mean   float64
	StdDev float64
}

// String formats the summary for log lines.
func (s Summary) String() string {
	return fmt.Sprintf("cells=%d min=%.6g max=%.6g mean=%.6g std=%.6g sum=%.6g nan=%d inf=%d",
		s.Cells, s.Min, s.Max, s.Mean, s.StdDev, s.Sum, s.NaN, s.Inf)
}

// Summarizer reuses a float64 scratch slice across calls.
type Summarizer struct {
	scratch []float64
}

// Summarize computes the aggregate values of cells.
func (z *Summarizer) Summarize(cells []float32) Summary {
	s := Summary{Cells: len(cells)}
	z.scratch = z.scratch[:0]
	for _, c := range cells {
		v := float64(c)
		switch {
		case math.IsNaN(v):
			s.NaN++
			continue
		case math.IsInf(v, 0):
			s.Inf++
			continue
		}
		z.scratch = append(z.scratch, v)
	}
	if len(z.scratch) == 0 {
		return s
	}
	s.Min = floats.Min(z.scratch)
	s.Max = floats.Max(z.scratch)
	s.Sum = floats.Sum(z.scratch)
	if len(z.scratch) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(z.scratch, nil)
	} else {
		s.Mean = z.scratch[0]
	}
	return s
}

// Summarize is a one-shot convenience around Summarizer.
func Summarize(cells []float32) Summary {
	var z Summarizer
	return z.Summarize(cells)
}
