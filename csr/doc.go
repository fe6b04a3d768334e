// Package csr provides an immutable compressed-sparse-row (CSR) view over a
// simple undirected graph, the input format of the tricount engines.
//
// A Graph G = (V,E) with n vertices and m directed arcs (each undirected edge
// is stored twice, once per direction) is described by two arrays:
//
//	rowPtr[0..n]   non-decreasing offsets, rowPtr[0] == 0, rowPtr[n] == m
//	colInd[0..m)   neighbor ids; N(v) = colInd[rowPtr[v]:rowPtr[v+1]]
//
// Contract enforced by Validate (and assumed by the counting engines):
//
//   - every adjacency slice is sorted strictly ascending (no parallel edges),
//   - no vertex lists itself (no self-loops),
//   - u ∈ N(v) ⇔ v ∈ N(u) (symmetric).
//
// New performs only the structural checks (lengths, offsets, id range) in
// O(n+m); Validate adds the content checks in O(m·log d_max).
//
// Graphs never change after construction. Neighbors, RowPtr and ColInd expose
// live read-only slices of the backing arrays so hot loops can walk them
// without copying; callers must not write through them.
//
// Errors:
//
//	ErrNegativeVertexCount - n < 0.
//	ErrRowPtrLength        - len(rowPtr) != n+1.
//	ErrRowPtrStart         - rowPtr[0] != 0.
//	ErrRowPtrNonMonotonic  - rowPtr decreases somewhere.
//	ErrEdgeCountMismatch   - rowPtr[n] != len(colInd).
//	ErrVertexOutOfRange    - a neighbor id ≥ n.
//	ErrUnsorted            - an adjacency slice is not ascending.
//	ErrDuplicateEdge       - an adjacency slice repeats an id.
//	ErrSelfLoop            - v ∈ N(v).
//	ErrAsymmetric          - u ∈ N(v) but v ∉ N(u).
package csr
