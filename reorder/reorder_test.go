package reorder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tricount/builder"
	"github.com/katalvlaran/tricount/csr"
	"github.com/katalvlaran/tricount/reorder"
)

func path4(t *testing.T) *csr.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)
	return g
}

func TestPermutation_TieBreakByID(t *testing.T) {
	g := path4(t) // degrees: 1 2 2 1

	perm, err := reorder.Permutation(g, reorder.HighestDegreeFirst)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0, 3}, perm)

	perm, err = reorder.Permutation(g, reorder.LowestDegreeFirst)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 1, 2}, perm)
}

func TestByDegree_StarCenterFirst(t *testing.T) {
	// Star centred on 0, then relabel the hub to the middle via Apply.
	g, err := builder.BuildGraph(nil, builder.Star(5))
	require.NoError(t, err)
	moved, err := reorder.Apply(g, []int{2, 1, 0, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 4, moved.Degree(2))

	out, perm, err := reorder.ByDegree(moved, reorder.HighestDegreeFirst)
	require.NoError(t, err)
	assert.Equal(t, 2, perm[0])
	assert.Equal(t, 4, out.Degree(0))
	assert.Equal(t, []csr.VertexID{1, 2, 3, 4}, out.Neighbors(0))
}

func TestByDegree_OutputValidAndInputUntouched(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(3)},
		builder.RandomSparse(80, 0.08), builder.Wheel(20))
	require.NoError(t, err)
	before := g.Clone()

	for _, dir := range []reorder.Direction{reorder.HighestDegreeFirst, reorder.LowestDegreeFirst} {
		out, perm, err := reorder.ByDegree(g, dir)
		require.NoError(t, err, dir.String())
		require.NoError(t, csr.Validate(out), dir.String())
		assert.Equal(t, g.VertexCount(), out.VertexCount())
		assert.Equal(t, g.EdgeCount(), out.EdgeCount())

		// Degree sequence is monotone in the chosen direction.
		for i := 1; i < out.VertexCount(); i++ {
			prev, cur := out.Degree(csr.VertexID(i-1)), out.Degree(csr.VertexID(i))
			if dir == reorder.HighestDegreeFirst {
				assert.GreaterOrEqual(t, prev, cur)
			} else {
				assert.LessOrEqual(t, prev, cur)
			}
		}

		// Every new edge maps back to an old edge.
		for nv := 0; nv < out.VertexCount(); nv++ {
			for _, nw := range out.Neighbors(csr.VertexID(nv)) {
				old := g.Neighbors(csr.VertexID(perm[nv]))
				assert.Contains(t, old, csr.VertexID(perm[nw]))
			}
		}
	}
	assert.True(t, g.Equal(before), "input must not be mutated")
}

func TestInverse(t *testing.T) {
	perm := []int{3, 0, 2, 1}
	rank := reorder.Inverse(perm)
	for i, v := range perm {
		assert.Equal(t, i, rank[v])
	}
}

func TestErrors(t *testing.T) {
	g := path4(t)

	_, _, err := reorder.ByDegree(nil, reorder.HighestDegreeFirst)
	require.ErrorIs(t, err, reorder.ErrGraphNil)

	_, err = reorder.Permutation(g, reorder.Direction(9))
	require.ErrorIs(t, err, reorder.ErrUnknownDirection)

	_, err = reorder.Apply(g, []int{0, 1, 2})
	require.ErrorIs(t, err, reorder.ErrNotPermutation)
	_, err = reorder.Apply(g, []int{0, 1, 1, 3})
	require.ErrorIs(t, err, reorder.ErrNotPermutation)
	_, err = reorder.Apply(g, []int{0, 1, 2, 4})
	require.ErrorIs(t, err, reorder.ErrNotPermutation)
}

func TestParseDirection(t *testing.T) {
	for _, d := range []reorder.Direction{reorder.HighestDegreeFirst, reorder.LowestDegreeFirst} {
		got, err := reorder.ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	_, err := reorder.ParseDirection("sideways")
	require.ErrorIs(t, err, reorder.ErrUnknownDirection)
	assert.Equal(t, "unknown", reorder.Direction(7).String())
}

func TestByDegree_Empty(t *testing.T) {
	g, err := csr.FromEdges(0, nil)
	require.NoError(t, err)
	out, perm, err := reorder.ByDegree(g, reorder.HighestDegreeFirst)
	require.NoError(t, err)
	assert.Empty(t, perm)
	assert.Equal(t, 0, out.VertexCount())
}
