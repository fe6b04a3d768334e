package converters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tricount/builder"
	"github.com/katalvlaran/tricount/converters"
	"github.com/katalvlaran/tricount/csr"
	"github.com/katalvlaran/tricount/triangle"
)

// traceTriangles computes trace(A³)/6, the closed 3-walks of A per triangle.
func traceTriangles(a *mat.SymDense) uint64 {
	var a2, a3 mat.Dense
	a2.Mul(a, a)
	a3.Mul(&a2, a)
	return uint64(mat.Trace(&a3)+0.5) / 6
}

func TestDense_TraceMatchesCount(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(60, 0.15))
		require.NoError(t, err)

		a, err := converters.ToDense(g)
		require.NoError(t, err)

		got, err := triangle.Count(g)
		require.NoError(t, err)
		assert.Equal(t, traceTriangles(a), got, "seed %d", seed)
	}
}

func TestDense_RoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.PlatonicSolid(builder.Dodecahedron, true))
	require.NoError(t, err)

	a, err := converters.ToDense(g)
	require.NoError(t, err)
	r, c := a.Dims()
	assert.Equal(t, 21, r)
	assert.Equal(t, 21, c)

	back, err := converters.FromDense(a)
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
}

func TestFromDense_IgnoresDiagonal(t *testing.T) {
	a := mat.NewSymDense(3, []float64{
		1, 2, 0,
		2, 0, 1,
		0, 1, 5,
	})
	g, err := converters.FromDense(a)
	require.NoError(t, err)
	assert.Equal(t, []csr.VertexID{1}, g.Neighbors(0))
	assert.Equal(t, []csr.VertexID{0, 2}, g.Neighbors(1))
}

func TestDense_Errors(t *testing.T) {
	_, err := converters.ToDense(nil)
	require.ErrorIs(t, err, converters.ErrNilGraph)

	empty, err := csr.FromEdges(0, nil)
	require.NoError(t, err)
	_, err = converters.ToDense(empty)
	require.ErrorIs(t, err, converters.ErrEmptyMatrix)

	_, err = converters.FromDense(nil)
	require.ErrorIs(t, err, converters.ErrNilGraph)
}
