package render

import (
	"image/color"
	"math"

	"github.com/crazy3lf/colorconv"
)

// PaletteSize is the number of entries built by NewHeatPalette.
const PaletteSize = 256

// NewHeatPalette builds a blue-to-red ramp by sweeping the HSV hue from 240
// down to 0 at full saturation and value.
func NewHeatPalette(size int) []color.RGBA {
	if size < 2 {
		size = 2
	}
	pal := make([]color.RGBA, size)
	for i := range pal {
		hue := 240 * (1 - float64(i)/float64(size-1))
		r, g, b, err := colorconv.HSVToRGB(hue, 1, 1)
		if err != nil {
			continue
		}
		pal[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return pal
}

// nanColor marks cells holding NaN.
var nanColor = color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}

// fillHeatRGBA converts float cells into RGBA pixels in buf, mapping [lo, hi]
// linearly onto the palette. Values outside the range clamp to its ends.
func fillHeatRGBA(buf []byte, cells []float32, lo, hi float32, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	span := hi - lo
	for i, c := range cells {
		col := nanColor
		if !math.IsNaN(float64(c)) {
			idx := 0
			switch {
			case span <= 0 || c <= lo:
				idx = 0
			case c >= hi:
				idx = last
			default:
				idx = int((c - lo) / span * float32(last))
			}
			col = palette[idx]
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Range returns the finite minimum and maximum of cells, or (0, 1) when no
// finite value exists.
func Range(cells []float32) (lo, hi float32) {
	lo, hi = float32(math.Inf(1)), float32(math.Inf(-1))
	for _, c := range cells {
		if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
			continue
		}
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}
	if lo > hi {
		return 0, 1
	}
	return lo, hi
}
