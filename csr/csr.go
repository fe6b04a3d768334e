// File: csr.go
// Role: Graph constructors and read-only accessors.
// Determinism:
//   - FromEdges emits every adjacency slice sorted ascending, independent of input order.
// Concurrency:
//   - A Graph is immutable; all methods are safe for concurrent use.

package csr

import (
	"fmt"
	"slices"
)

// New builds a Graph from CSR arrays after copying them, so later writes to
// rowPtr or colInd by the caller cannot affect the Graph.
//
// Only structural invariants are checked here (see doc.go); content checks
// (sortedness, loops, symmetry) are left to Validate.
//
// Complexity: O(n + m) time and space.
func New(n int, rowPtr []int, colInd []VertexID) (*Graph, error) {
	if err := checkStructure(n, rowPtr, colInd); err != nil {
		return nil, err
	}

	g := &Graph{
		n:      n,
		rowPtr: slices.Clone(rowPtr),
		colInd: slices.Clone(colInd),
	}
	return g, nil
}

// Adopt is like New but takes ownership of rowPtr and colInd instead of
// copying them. The caller must not use either slice afterwards.
// Views such as reorder.Apply use it to avoid a second O(n+m) allocation.
func Adopt(n int, rowPtr []int, colInd []VertexID) (*Graph, error) {
	if err := checkStructure(n, rowPtr, colInd); err != nil {
		return nil, err
	}
	return &Graph{n: n, rowPtr: rowPtr, colInd: colInd}, nil
}

// FromEdges builds a symmetric, sorted Graph on n vertices from undirected
// edges, each listed once in either orientation.
//
// Self-loops yield ErrSelfLoop and repeated pairs ({u,v} given twice, in any
// orientation) yield ErrDuplicateEdge; ids ≥ n yield ErrVertexOutOfRange.
//
// Complexity: O(n + m·log d_max) time, O(n + m) space.
func FromEdges(n int, edges [][2]VertexID) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeVertexCount, n)
	}
	if int64(n) > MaxVertices {
		return nil, fmt.Errorf("%w: n=%d", ErrTooManyVertices, n)
	}

	// Pass 1: degree histogram with range/loop checks.
	rowPtr := make([]int, n+1)
	var u, v VertexID
	for i, e := range edges {
		u, v = e[0], e[1]
		if int(u) >= n || int(v) >= n {
			return nil, fmt.Errorf("%w: edge %d (%d,%d) with n=%d", ErrVertexOutOfRange, i, u, v, n)
		}
		if u == v {
			return nil, fmt.Errorf("%w: edge %d at vertex %d", ErrSelfLoop, i, u)
		}
		rowPtr[u+1]++
		rowPtr[v+1]++
	}
	for i := 0; i < n; i++ {
		rowPtr[i+1] += rowPtr[i]
	}

	// Pass 2: scatter both directions using a moving cursor per row.
	colInd := make([]VertexID, rowPtr[n])
	cursor := slices.Clone(rowPtr[:n])
	for _, e := range edges {
		u, v = e[0], e[1]
		colInd[cursor[u]] = v
		cursor[u]++
		colInd[cursor[v]] = u
		cursor[v]++
	}

	// Pass 3: sort rows and reject parallel edges.
	var row []VertexID
	for x := 0; x < n; x++ {
		row = colInd[rowPtr[x]:rowPtr[x+1]]
		slices.Sort(row)
		for i := 1; i < len(row); i++ {
			if row[i] == row[i-1] {
				return nil, fmt.Errorf("%w: {%d,%d}", ErrDuplicateEdge, x, row[i])
			}
		}
	}

	return &Graph{n: n, rowPtr: rowPtr, colInd: colInd}, nil
}

// VertexCount returns n.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns m, the number of stored arcs (twice the undirected edge count).
func (g *Graph) EdgeCount() int { return len(g.colInd) }

// Degree returns the number of neighbors of v.
// v must be in [0, n); out-of-range ids panic like a slice index would.
func (g *Graph) Degree(v VertexID) int {
	return g.rowPtr[v+1] - g.rowPtr[v]
}

// Neighbors returns N(v) as a read-only sub-slice of the backing array.
// The capacity is clipped so an append by the caller cannot clobber the
// next vertex's list.
func (g *Graph) Neighbors(v VertexID) []VertexID {
	lo, hi := g.rowPtr[v], g.rowPtr[v+1]
	return g.colInd[lo:hi:hi]
}

// MaxDegree returns the largest degree in g, or 0 for an empty graph.
func (g *Graph) MaxDegree() int {
	best := 0
	for v := 0; v < g.n; v++ {
		if d := g.rowPtr[v+1] - g.rowPtr[v]; d > best {
			best = d
		}
	}
	return best
}

// RowPtr returns the live offset array (length n+1). Do not modify.
func (g *Graph) RowPtr() []int { return g.rowPtr }

// ColInd returns the live neighbor array (length m). Do not modify.
func (g *Graph) ColInd() []VertexID { return g.colInd }

// Clone returns a deep copy of g.
// Complexity: O(n + m).
func (g *Graph) Clone() *Graph {
	return &Graph{
		n:      g.n,
		rowPtr: slices.Clone(g.rowPtr),
		colInd: slices.Clone(g.colInd),
	}
}

// Equal reports whether g and h have identical vertex counts and CSR arrays.
func (g *Graph) Equal(h *Graph) bool {
	if g == nil || h == nil {
		return g == h
	}
	return g.n == h.n && slices.Equal(g.rowPtr, h.rowPtr) && slices.Equal(g.colInd, h.colInd)
}

// String renders a short summary such as "csr.Graph{n=4 m=12}".
func (g *Graph) String() string {
	return fmt.Sprintf("csr.Graph{n=%d m=%d}", g.n, len(g.colInd))
}
