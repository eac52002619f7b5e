package render

import (
	"image/color"
	"math"
	"testing"
)

func TestNewHeatPaletteEnds(t *testing.T) {
	pal := NewHeatPalette(PaletteSize)
	if len(pal) != PaletteSize {
		t.Fatalf("palette size %d, expected %d", len(pal), PaletteSize)
	}
	if got := pal[0]; got != (color.RGBA{B: 0xff, A: 0xff}) {
		t.Fatalf("palette start %v, expected blue", got)
	}
	if got := pal[len(pal)-1]; got != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Fatalf("palette end %v, expected red", got)
	}
	if len(NewHeatPalette(0)) != 2 {
		t.Fatal("tiny palettes must be widened to two entries")
	}
}

func TestFillHeatRGBA(t *testing.T) {
	pal := []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}, {B: 3, A: 255}}
	cells := []float32{-5, 0, 0.5, 1, 9, float32(math.NaN())}
	buf := make([]byte, 4*len(cells))
	fillHeatRGBA(buf, cells, 0, 1, pal)

	expects := []color.RGBA{pal[0], pal[0], pal[1], pal[2], pal[2], nanColor}
	for i, want := range expects {
		got := color.RGBA{R: buf[i*4], G: buf[i*4+1], B: buf[i*4+2], A: buf[i*4+3]}
		if got != want {
			t.Fatalf("cell %d colour %v, expected %v", i, got, want)
		}
	}
}

func TestFillHeatRGBAFlatRange(t *testing.T) {
	pal := NewHeatPalette(4)
	buf := make([]byte, 8)
	fillHeatRGBA(buf, []float32{2, 2}, 2, 2, pal)
	if buf[2] != pal[0].B || buf[6] != pal[0].B {
		t.Fatalf("flat grid should map to palette start, got %v", buf)
	}
}

func TestRange(t *testing.T) {
	lo, hi := Range([]float32{3, float32(math.Inf(1)), -2, float32(math.NaN())})
	if lo != -2 || hi != 3 {
		t.Fatalf("Range = (%v, %v), expected (-2, 3)", lo, hi)
	}
	lo, hi = Range(nil)
	if lo != 0 || hi != 1 {
		t.Fatalf("empty Range = (%v, %v), expected (0, 1)", lo, hi)
	}
}
