// File: reorder.go
// Role: degree-ordered relabeling of CSR graphs (non-mutating view).
// Determinism:
//   - Ties on degree are broken by ascending original id.
// Concurrency:
//   - Reads the source only; the result is a fresh graph.

package reorder

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/tricount/csr"
)

// ByDegree returns a relabeled copy of g ordered by dir, together with the
// permutation P used (P[newID] = oldID).
//
// Complexity: O(n·log n + m·log d_max) time, O(n + m) space.
func ByDegree(g *csr.Graph, dir Direction) (*csr.Graph, []int, error) {
	perm, err := Permutation(g, dir)
	if err != nil {
		return nil, nil, err
	}
	out, err := Apply(g, perm)
	if err != nil {
		return nil, nil, err
	}

	return out, perm, nil
}

// Permutation computes P sorting the vertices of g by dir, ties broken by
// ascending original id.
//
// Complexity: O(n·log n).
func Permutation(g *csr.Graph, dir Direction) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if dir != HighestDegreeFirst && dir != LowestDegreeFirst {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, int(dir))
	}

	n := g.VertexCount()
	rowPtr := g.RowPtr()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	degree := func(v int) int { return rowPtr[v+1] - rowPtr[v] }
	slices.SortFunc(perm, func(a, b int) int {
		da, db := degree(a), degree(b)
		if da != db {
			if dir == HighestDegreeFirst {
				return db - da
			}
			return da - db
		}
		return a - b
	})

	return perm, nil
}

// Inverse returns rank with rank[perm[i]] = i.
// perm must be a permutation of 0..len(perm)-1.
func Inverse(perm []int) []int {
	rank := make([]int, len(perm))
	for i, v := range perm {
		rank[v] = i
	}
	return rank
}

// Apply relabels g so that new vertex i is old vertex perm[i]. Every
// adjacency slice of the result is sorted ascending.
//
// Steps:
//  1. rank = Inverse(perm).
//  2. new rowPtr from degrees in permuted order.
//  3. new colInd by mapping each old neighbor through rank.
//  4. sort each new slice (relabeling breaks the old order).
//
// Complexity: O(n + m·log d_max) time, O(n + m) space.
func Apply(g *csr.Graph, perm []int) (*csr.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if err := checkPermutation(perm, n); err != nil {
		return nil, err
	}

	rowPtr := g.RowPtr()
	colInd := g.ColInd()
	rank := Inverse(perm)

	newRowPtr := make([]int, n+1)
	for i, old := range perm {
		newRowPtr[i+1] = newRowPtr[i] + (rowPtr[old+1] - rowPtr[old])
	}

	newColInd := make([]csr.VertexID, len(colInd))
	var (
		pos int
		row []csr.VertexID
	)
	for i, old := range perm {
		pos = newRowPtr[i]
		for _, w := range colInd[rowPtr[old]:rowPtr[old+1]] {
			newColInd[pos] = csr.VertexID(rank[w])
			pos++
		}
		row = newColInd[newRowPtr[i]:newRowPtr[i+1]]
		slices.Sort(row)
	}

	return csr.Adopt(n, newRowPtr, newColInd)
}

// checkPermutation verifies len(perm) == n and that perm hits every id once.
func checkPermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("%w: len=%d, n=%d", ErrNotPermutation, len(perm), n)
	}
	seen := make([]bool, n)
	for i, v := range perm {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: perm[%d]=%d out of range", ErrNotPermutation, i, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: perm[%d]=%d repeated", ErrNotPermutation, i, v)
		}
		seen[v] = true
	}
	return nil
}
