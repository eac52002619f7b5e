package core

import "testing"

func TestIsAligned(t *testing.T) {
	for _, tc := range []struct {
		addr uintptr
		want bool
	}{{0, true}, {4, true}, {8, true}, {1, false}, {6, false}} {
		if got := IsAligned(tc.addr, 4); got != tc.want {
			t.Errorf("IsAligned(%d, 4) = %v, want %v", tc.addr, got, tc.want)
		}
	}
}

func TestRangesOverlap(t *testing.T) {
	cases := []struct {
		a, aLen, b, bLen uintptr
		want             bool
	}{
		{100, 16, 116, 16, false},
		{116, 16, 100, 16, false},
		{100, 16, 115, 16, true},
		{100, 16, 100, 16, true},
		{100, 64, 120, 4, true},
		{100, 0, 100, 16, false},
	}
	for _, tc := range cases {
		if got := RangesOverlap(tc.a, tc.aLen, tc.b, tc.bLen); got != tc.want {
			t.Errorf("RangesOverlap(%d,%d,%d,%d) = %v, want %v", tc.a, tc.aLen, tc.b, tc.bLen, got, tc.want)
		}
	}
}

func TestCellsOverlap(t *testing.T) {
	buf := make([]float32, 20)
	if !CellsOverlap(buf, buf, 4) {
		t.Error("a slice overlaps itself")
	}
	if !CellsOverlap(buf[0:], buf[3:], 4) {
		t.Error("offset views inside the first 4 cells overlap")
	}
	if CellsOverlap(buf[0:], buf[4:], 4) {
		t.Error("adjacent ranges do not overlap")
	}
	if CellsOverlap(buf, make([]float32, 4), 4) {
		t.Error("separate allocations do not overlap")
	}
	if CellsOverlap(buf, buf, 0) {
		t.Error("empty ranges never overlap")
	}
}
