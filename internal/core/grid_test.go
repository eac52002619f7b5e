package core

import "testing"

func TestBoundaryResolve(t *testing.T) {
	const n = 4
	cases := []struct {
		b      Boundary
		v      int
		want   int
		wantOK bool
	}{
		{Wrap, -1, 3, true},
		{Wrap, 4, 0, true},
		{Wrap, -5, 3, true},
		{Wrap, 2, 2, true},
		{Clamp, -1, 0, true},
		{Clamp, 4, 3, true},
		{Clamp, 1, 1, true},
		{Zero, -1, 0, false},
		{Zero, 4, 0, false},
		{Zero, 3, 3, true},
	}
	for _, tc := range cases {
		got, ok := tc.b.Resolve(tc.v, n)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("%s.Resolve(%d, %d) = (%d, %v), want (%d, %v)", tc.b, tc.v, n, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestParseBoundary(t *testing.T) {
	for _, b := range []Boundary{Wrap, Clamp, Zero} {
		got, err := ParseBoundary(b.String())
		if err != nil || got != b {
			t.Fatalf("ParseBoundary(%q) = %v, %v", b.String(), got, err)
		}
	}
	if _, err := ParseBoundary("mirror"); err == nil {
		t.Fatal("expected an error for an unknown policy")
	}
	if got, _ := ParseBoundary(""); got != Wrap {
		t.Fatalf("empty name should mean wrap, got %s", got)
	}
}

func TestGridNeighborEdges(t *testing.T) {
	const n = 5
	backing := make([]float32, n*n)
	for i := range backing {
		backing[i] = float32(i)
	}
	g := MakeGrid(backing, n)

	type probe struct{ i, j, di, dj int }
	wrapWant := map[probe]int{
		{0, 0, -1, 0}:         g.Index(n-1, 0),
		{0, 0, 0, -1}:         g.Index(0, n-1),
		{n - 1, 2, 1, 0}:      g.Index(0, 2),
		{2, n - 1, 0, 1}:      g.Index(2, 0),
		{n - 1, n - 1, 1, 1}:  g.Index(0, 0),
		{0, n - 1, -1, 1}:     g.Index(n-1, 0),
		{2, 2, 1, -1}:         g.Index(3, 1),
		{n - 1, 0, 1, -1}:     g.Index(0, n-1),
		{0, 0, -1, -1}:        g.Index(n-1, n-1),
		{n - 1, n - 1, -1, 0}: g.Index(n-2, n-1),
	}
	for p, want := range wrapWant {
		idx, ok := g.Neighbor(p.i, p.j, p.di, p.dj, Wrap)
		if !ok || idx != want {
			t.Errorf("wrap neighbour of (%d,%d)+(%d,%d) = %d, want %d", p.i, p.j, p.di, p.dj, idx, want)
		}
	}

	if idx, ok := g.Neighbor(0, 3, -1, 0, Clamp); !ok || idx != g.Index(0, 3) {
		t.Errorf("clamp above row 0 should stay on (0,3), got %d", idx)
	}
	if idx, ok := g.Neighbor(n-1, n-1, 1, 1, Clamp); !ok || idx != g.Index(n-1, n-1) {
		t.Errorf("clamp past the corner should stay on the corner, got %d", idx)
	}
	if _, ok := g.Neighbor(0, 2, -1, 0, Zero); ok {
		t.Error("zero policy should report an outside neighbour")
	}
	if _, ok := g.Neighbor(2, 0, 0, -1, Zero); ok {
		t.Error("zero policy should report an outside neighbour on column -1")
	}
}

func TestGridAccessors(t *testing.T) {
	backing := []float32{0, 1, 2, 3, 4, 5, 6, 7, 8}
	g := MakeGrid(backing, 3)
	if g.Index(2, 1) != 7 || g.At(2, 1) != 7 {
		t.Fatalf("Index/At(2,1) = %d/%v, want 7", g.Index(2, 1), g.At(2, 1))
	}
	g.Cells()[4] = 40
	if backing[4] != 40 {
		t.Fatal("grid should write through to the backing slice")
	}
}

func TestMakeGridIsAValueView(t *testing.T) {
	backing := []float32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	g := MakeGrid(backing, 3)
	if len(g.Cells()) != 9 || cap(g.Cells()) != 9 {
		t.Fatalf("view should cover exactly 9 cells, got len %d cap %d", len(g.Cells()), cap(g.Cells()))
	}
	if idx, ok := g.Neighbor(0, 0, -1, -1, Wrap); !ok || g.Cells()[idx] != 8 {
		t.Fatalf("wrapped corner neighbour = %d, want index 8", idx)
	}

	allocs := testing.AllocsPerRun(20, func() {
		g := MakeGrid(backing, 3)
		if _, ok := g.Neighbor(2, 2, 1, 1, Zero); ok {
			t.Fatal("zero policy should report an outside neighbour")
		}
	})
	if allocs != 0 {
		t.Fatalf("MakeGrid allocated %v times", allocs)
	}

	if empty := MakeGrid(nil, 0); len(empty.Cells()) != 0 {
		t.Fatal("n=0 grid should be empty")
	}
}
