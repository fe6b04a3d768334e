package csr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tricount/csr"
)

// triangleEdges is K3 on {0,1,2}.
var triangleEdges = [][2]csr.VertexID{{0, 1}, {1, 2}, {0, 2}}

func TestFromEdges_Triangle(t *testing.T) {
	g, err := csr.FromEdges(3, triangleEdges)
	require.NoError(t, err)

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount(), "each undirected edge is stored twice")
	assert.Equal(t, []int{0, 2, 4, 6}, g.RowPtr())
	assert.Equal(t, []csr.VertexID{1, 2, 0, 2, 0, 1}, g.ColInd())
	assert.Equal(t, 2, g.Degree(1))
	assert.Equal(t, []csr.VertexID{0, 2}, g.Neighbors(1))
	assert.Equal(t, 2, g.MaxDegree())
	require.NoError(t, csr.Validate(g))
}

func TestFromEdges_SortsRegardlessOfInputOrder(t *testing.T) {
	g, err := csr.FromEdges(5, [][2]csr.VertexID{{4, 0}, {3, 0}, {0, 1}, {2, 0}})
	require.NoError(t, err)
	assert.Equal(t, []csr.VertexID{1, 2, 3, 4}, g.Neighbors(0))
	assert.True(t, csr.IsSorted(g))
}

func TestFromEdges_Errors(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges [][2]csr.VertexID
		want  error
	}{
		{"negative n", -1, nil, csr.ErrNegativeVertexCount},
		{"self loop", 3, [][2]csr.VertexID{{1, 1}}, csr.ErrSelfLoop},
		{"duplicate same orientation", 3, [][2]csr.VertexID{{0, 1}, {0, 1}}, csr.ErrDuplicateEdge},
		{"duplicate reversed", 3, [][2]csr.VertexID{{0, 1}, {1, 0}}, csr.ErrDuplicateEdge},
		{"out of range", 2, [][2]csr.VertexID{{0, 2}}, csr.ErrVertexOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := csr.FromEdges(tc.n, tc.edges)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFromEdges_Empty(t *testing.T) {
	g, err := csr.FromEdges(0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 0, g.MaxDegree())
	require.NoError(t, csr.Validate(g))

	g, err = csr.FromEdges(4, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, g.RowPtr())
	assert.Empty(t, g.Neighbors(3))
}

func TestNew_CopiesInput(t *testing.T) {
	rowPtr := []int{0, 1, 2}
	colInd := []csr.VertexID{1, 0}
	g, err := csr.New(2, rowPtr, colInd)
	require.NoError(t, err)

	// Mutating the caller's arrays must not leak into g.
	rowPtr[1] = 2
	colInd[0] = 0
	assert.Equal(t, []int{0, 1, 2}, g.RowPtr())
	assert.Equal(t, []csr.VertexID{1, 0}, g.ColInd())
}

func TestNew_StructuralErrors(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		rowPtr []int
		colInd []csr.VertexID
		want   error
	}{
		{"negative n", -2, []int{0}, nil, csr.ErrNegativeVertexCount},
		{"short rowPtr", 2, []int{0, 1}, []csr.VertexID{1}, csr.ErrRowPtrLength},
		{"nonzero start", 1, []int{1, 1}, nil, csr.ErrRowPtrStart},
		{"decreasing", 2, []int{0, 2, 1}, []csr.VertexID{1}, csr.ErrRowPtrNonMonotonic},
		{"total mismatch", 2, []int{0, 1, 2}, []csr.VertexID{1}, csr.ErrEdgeCountMismatch},
		{"id out of range", 2, []int{0, 1, 2}, []csr.VertexID{2, 0}, csr.ErrVertexOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := csr.New(tc.n, tc.rowPtr, tc.colInd)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNeighbors_AppendDoesNotClobber(t *testing.T) {
	g, err := csr.FromEdges(3, triangleEdges)
	require.NoError(t, err)

	nb := g.Neighbors(0)
	_ = append(nb, 99)
	assert.Equal(t, []csr.VertexID{0, 2}, g.Neighbors(1))
}

func TestCloneAndEqual(t *testing.T) {
	g, err := csr.FromEdges(3, triangleEdges)
	require.NoError(t, err)

	c := g.Clone()
	assert.True(t, g.Equal(c))
	assert.NotSame(t, &g.ColInd()[0], &c.ColInd()[0], "clone must not alias")

	h, err := csr.FromEdges(3, triangleEdges[:2])
	require.NoError(t, err)
	assert.False(t, g.Equal(h))

	var nilGraph *csr.Graph
	assert.True(t, nilGraph.Equal(nil))
	assert.False(t, g.Equal(nil))
	assert.Equal(t, "csr.Graph{n=3 m=6}", g.String())
}

func TestAdopt_TakesOwnership(t *testing.T) {
	rowPtr := []int{0, 1, 2}
	colInd := []csr.VertexID{1, 0}
	g, err := csr.Adopt(2, rowPtr, colInd)
	require.NoError(t, err)
	assert.Same(t, &colInd[0], &g.ColInd()[0])

	_, err = csr.Adopt(2, []int{0, 1}, colInd)
	require.ErrorIs(t, err, csr.ErrRowPtrLength)
}
