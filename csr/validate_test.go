package csr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tricount/csr"
)

// mustNew builds a structurally valid graph without content checks.
func mustNew(t *testing.T, n int, rowPtr []int, colInd []csr.VertexID) *csr.Graph {
	t.Helper()
	g, err := csr.New(n, rowPtr, colInd)
	require.NoError(t, err)
	return g
}

func TestValidate_ContentErrors(t *testing.T) {
	tests := []struct {
		name string
		g    *csr.Graph
		want error
	}{
		{
			name: "unsorted row",
			// 0:{2,1} 1:{0} 2:{0}
			g:    mustNew(t, 3, []int{0, 2, 3, 4}, []csr.VertexID{2, 1, 0, 0}),
			want: csr.ErrUnsorted,
		},
		{
			name: "duplicate arc",
			g:    mustNew(t, 2, []int{0, 2, 4}, []csr.VertexID{1, 1, 0, 0}),
			want: csr.ErrDuplicateEdge,
		},
		{
			name: "self loop",
			g:    mustNew(t, 2, []int{0, 2, 3}, []csr.VertexID{0, 1, 0}),
			want: csr.ErrSelfLoop,
		},
		{
			name: "missing reverse arc",
			// 0:{1,2} 1:{0} 2:{}
			g:    mustNew(t, 3, []int{0, 2, 3, 3}, []csr.VertexID{1, 2, 0}),
			want: csr.ErrAsymmetric,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, csr.Validate(tc.g), tc.want)
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	require.ErrorIs(t, csr.Validate(nil), csr.ErrRowPtrLength)
}

func TestIsSorted(t *testing.T) {
	sorted := mustNew(t, 3, []int{0, 2, 3, 4}, []csr.VertexID{1, 2, 0, 0})
	unsorted := mustNew(t, 3, []int{0, 2, 3, 4}, []csr.VertexID{2, 1, 0, 0})
	assert.True(t, csr.IsSorted(sorted))
	assert.False(t, csr.IsSorted(unsorted))
	require.NoError(t, csr.Validate(sorted))
}
