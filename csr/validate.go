// File: validate.go
// Role: structural and content checks of the CSR contract.
// Determinism:
//   - Vertices are scanned in ascending order; the first violation found is reported.
// Concurrency:
//   - Read-only; safe on shared graphs.

package csr

import (
	"fmt"
	"slices"
)

// checkStructure verifies the shape of CSR arrays: n in range, rowPtr length,
// start, monotonicity, total, and that every neighbor id is < n.
//
// Complexity: O(n + m).
func checkStructure(n int, rowPtr []int, colInd []VertexID) error {
	if n < 0 {
		return fmt.Errorf("%w: n=%d", ErrNegativeVertexCount, n)
	}
	if int64(n) > MaxVertices {
		return fmt.Errorf("%w: n=%d", ErrTooManyVertices, n)
	}
	if len(rowPtr) != n+1 {
		return fmt.Errorf("%w: got %d, want %d", ErrRowPtrLength, len(rowPtr), n+1)
	}
	if rowPtr[0] != 0 {
		return fmt.Errorf("%w: rowPtr[0]=%d", ErrRowPtrStart, rowPtr[0])
	}
	for v := 0; v < n; v++ {
		if rowPtr[v+1] < rowPtr[v] {
			return fmt.Errorf("%w: rowPtr[%d]=%d > rowPtr[%d]=%d",
				ErrRowPtrNonMonotonic, v, rowPtr[v], v+1, rowPtr[v+1])
		}
	}
	if rowPtr[n] != len(colInd) {
		return fmt.Errorf("%w: rowPtr[n]=%d, len(colInd)=%d", ErrEdgeCountMismatch, rowPtr[n], len(colInd))
	}
	for i, w := range colInd {
		if int(w) >= n {
			return fmt.Errorf("%w: colInd[%d]=%d with n=%d", ErrVertexOutOfRange, i, w, n)
		}
	}

	return nil
}

// Validate checks the full input contract of the counting engines:
// the structural invariants of New plus strictly ascending adjacency slices,
// no self-loops and symmetry.
//
// A nil graph is reported as ErrRowPtrLength (there is no rowPtr at all).
//
// Complexity: O(n + m·log d_max) time, O(1) extra space.
func Validate(g *Graph) error {
	if g == nil {
		return fmt.Errorf("%w: nil graph", ErrRowPtrLength)
	}
	if err := checkStructure(g.n, g.rowPtr, g.colInd); err != nil {
		return err
	}

	// Stage 1: per-row order, duplicates and loops.
	var row []VertexID
	for v := 0; v < g.n; v++ {
		row = g.colInd[g.rowPtr[v]:g.rowPtr[v+1]]
		for i := range row {
			if int(row[i]) == v {
				return fmt.Errorf("%w: vertex %d", ErrSelfLoop, v)
			}
			if i == 0 {
				continue
			}
			switch {
			case row[i] == row[i-1]:
				return fmt.Errorf("%w: {%d,%d}", ErrDuplicateEdge, v, row[i])
			case row[i] < row[i-1]:
				return fmt.Errorf("%w: vertex %d at position %d", ErrUnsorted, v, i)
			}
		}
	}

	// Stage 2: symmetry via binary search in the (now known sorted) reverse row.
	var (
		u     VertexID
		found bool
	)
	for v := 0; v < g.n; v++ {
		for _, u = range g.colInd[g.rowPtr[v]:g.rowPtr[v+1]] {
			_, found = slices.BinarySearch(g.colInd[g.rowPtr[u]:g.rowPtr[u+1]], VertexID(v))
			if !found {
				return fmt.Errorf("%w: arc %d->%d has no reverse", ErrAsymmetric, v, u)
			}
		}
	}

	return nil
}

// IsSorted reports whether every adjacency slice of g is sorted ascending
// (ties allowed). It does not check loops or symmetry.
//
// Complexity: O(m).
func IsSorted(g *Graph) bool {
	for v := 0; v < g.n; v++ {
		if !slices.IsSorted(g.colInd[g.rowPtr[v]:g.rowPtr[v+1]]) {
			return false
		}
	}
	return true
}
