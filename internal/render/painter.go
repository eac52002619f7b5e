//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on float cell data.
type GridPainter struct {
	n       int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
}

// NewGridPainter allocates a painter for an n*n grid.
func NewGridPainter(n int) *GridPainter {
	if n < 1 {
		n = 1
	}
	gp := &GridPainter{n: n, buf: make([]byte, 4*n*n), palette: NewHeatPalette(PaletteSize)}
	gp.img = ebiten.NewImage(n, n)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it. The
// colour range is taken from the finite values of the current frame.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []float32, scale int) {
	if len(cells) != gp.n*gp.n {
		return
	}
	lo, hi := Range(cells)
	fillHeatRGBA(gp.buf, cells, lo, hi, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the side of the underlying image.
func (gp *GridPainter) Size() int { return gp.n }
