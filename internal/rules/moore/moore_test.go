package moore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridstep/internal/core"
)

func ones(n int) []float32 {
	cells := make([]float32, n*n)
	for i := range cells {
		cells[i] = 1
	}
	return cells
}

func TestUniformGridIsFixedUnderWrapAndClamp(t *testing.T) {
	for _, b := range []core.Boundary{core.Wrap, core.Clamp} {
		out := make([]float32, 16)
		New(b).Apply(out, ones(4), 4)
		for i, v := range out {
			require.Equal(t, float32(1), v, "%s cell %d", b, i)
		}
	}
}

func TestZeroBoundaryCountsMissingNeighbours(t *testing.T) {
	const n = 4
	out := make([]float32, n*n)
	New(core.Zero).Apply(out, ones(n), n)

	assert.Equal(t, float32(3)/8, out[0], "corner sees 3 neighbours")
	assert.Equal(t, float32(5)/8, out[1], "edge sees 5 neighbours")
	assert.Equal(t, float32(1), out[1*n+1], "interior sees 8 neighbours")
}

func TestClampRepeatsEdge(t *testing.T) {
	// Row 0 is [1 2 3]; clamping above (0,0) reads (0,0) and (0,1) again.
	in := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	out := make([]float32, 9)
	New(core.Clamp).Apply(out, in, 3)
	want := (1 + 1 + 2 + 1 + 2 + 4 + 4 + 5) * float32(0.125)
	assert.Equal(t, want, out[0])
}

func TestFromMap(t *testing.T) {
	assert.Equal(t, core.Wrap, FromMap(nil).Boundary)
	assert.Equal(t, core.Zero, FromMap(map[string]string{"boundary": "zero"}).Boundary)
	assert.Equal(t, core.Wrap, FromMap(map[string]string{"boundary": "bogus"}).Boundary)

	r, err := core.Lookup(Name, map[string]string{"boundary": "clamp"})
	require.NoError(t, err)
	assert.Equal(t, core.Clamp, r.(*Moore).Boundary())
	assert.Equal(t, "clamp", r.(core.ParameterProvider).Parameters().Params[0].Value)
}

func TestApplyDoesNotAllocate(t *testing.T) {
	const n = 8
	in, out := ones(n), make([]float32, n*n)
	for _, b := range []core.Boundary{core.Wrap, core.Clamp, core.Zero} {
		m := New(b)
		allocs := testing.AllocsPerRun(10, func() { m.Apply(out, in, n) })
		assert.Zero(t, allocs, b.String())
	}
}
