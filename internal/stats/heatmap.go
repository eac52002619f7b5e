package stats

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// gridXYZ adapts a row-major n*n grid to plotter.GridXYZ with row 0 drawn at
// the top.
type gridXYZ struct {
	n     int
	cells []float32
}

func (g gridXYZ) Dims() (c, r int)   { return g.n, g.n }
func (g gridXYZ) Z(c, r int) float64 { return float64(g.cells[(g.n-1-r)*g.n+c]) }
func (g gridXYZ) X(c int) float64    { return float64(c) }
func (g gridXYZ) Y(r int) float64    { return float64(r) }

// rowTicks labels the Y axis with grid row indices, which grow downwards while
// plot coordinates grow upwards.
type rowTicks struct{ n int }

func (t rowTicks) Ticks(lo, hi float64) []plot.Tick {
	stride := max(1, t.n/8)
	var ticks []plot.Tick
	for row := t.n - 1; row >= 0; row-- {
		y := float64(t.n - 1 - row)
		if y < lo || y > hi {
			continue
		}
		tick := plot.Tick{Value: y}
		if row%stride == 0 {
			tick.Label = strconv.Itoa(row)
		}
		ticks = append(ticks, tick)
	}
	return ticks
}

// WriteHeatmap renders the grid to path. The format follows the extension
// (.png, .svg, .pdf, ...).
func WriteHeatmap(path, title string, cells []float32, n int) error {
	if n <= 0 || len(cells) < n*n {
		return fmt.Errorf("heatmap: need n*n=%d cells, have %d", n*n, len(cells))
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.Y.Tick.Marker = rowTicks{n: n}

	hm := plotter.NewHeatMap(gridXYZ{n: n, cells: cells[:n*n]}, palette.Heat(64, 1))
	hm.NaN = color.Transparent
	hm.Underflow = color.Black
	hm.Overflow = color.White
	// The palette index divides by Max-Min, so a flat or infinite range has
	// to be replaced by a finite, non-empty one.
	lo, hi := finiteRange(cells[:n*n])
	if hi <= lo {
		hi = lo + 1
	}
	hm.Min, hm.Max = lo, hi
	p.Add(hm)

	size := vg.Length(6) * vg.Inch
	if err := p.Save(size, size, path); err != nil {
		return fmt.Errorf("heatmap: save %s: %w", path, err)
	}
	return nil
}

func finiteRange(cells []float32) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, c := range cells {
		v := float64(c)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 1) {
		return 0, 1
	}
	return lo, hi
}
