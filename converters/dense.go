// File: dense.go
// Role: dense adjacency-matrix view of a csr.Graph (gonum/mat).
// Determinism:
//   - Row/column i is CSR vertex i.
// Concurrency:
//   - Read-only on the source.

package converters

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tricount/builder"
	"github.com/katalvlaran/tricount/csr"
)

// ErrEmptyMatrix is returned for a 0×0 adjacency matrix, which gonum cannot
// represent.
var ErrEmptyMatrix = errors.New("converters: empty adjacency matrix")

// ToDense returns the 0/1 adjacency matrix of g. Memory is O(n²); intended
// for small graphs and cross-checks.
func ToDense(g *csr.Graph) (*mat.SymDense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, ErrEmptyMatrix
	}

	a := mat.NewSymDense(n, nil)
	for v := 0; v < n; v++ {
		for _, w := range g.Neighbors(csr.VertexID(v)) {
			a.SetSym(v, int(w), 1)
		}
	}
	return a, nil
}

// FromDense builds a graph from a symmetric matrix: every nonzero entry
// a[i][j] with i≠j is an edge. The diagonal is ignored.
//
// Complexity: O(n²).
func FromDense(a mat.Symmetric) (*csr.Graph, error) {
	if a == nil {
		return nil, ErrNilGraph
	}
	n := a.SymmetricDim()
	es := builder.NewEdgeSet()
	es.Grow(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if a.At(i, j) == 0 {
				continue
			}
			if _, err := es.Add(i, j); err != nil {
				return nil, fmt.Errorf("converters: FromDense: %w", err)
			}
		}
	}
	return es.Graph()
}
