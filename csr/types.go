package csr

import "errors"

// VertexID is a dense vertex label in [0, n).
type VertexID = uint32

// MaxVertices is the largest vertex count representable by VertexID.
const MaxVertices int64 = 1 << 32

// Sentinel errors for CSR construction and validation.
var (
	// ErrNegativeVertexCount is returned when n < 0.
	ErrNegativeVertexCount = errors.New("csr: negative vertex count")

	// ErrTooManyVertices is returned when n does not fit in VertexID.
	ErrTooManyVertices = errors.New("csr: vertex count exceeds VertexID range")

	// ErrRowPtrLength is returned when len(rowPtr) != n+1.
	ErrRowPtrLength = errors.New("csr: rowPtr length must be n+1")

	// ErrRowPtrStart is returned when rowPtr[0] != 0.
	ErrRowPtrStart = errors.New("csr: rowPtr must start at 0")

	// ErrRowPtrNonMonotonic is returned when rowPtr decreases.
	ErrRowPtrNonMonotonic = errors.New("csr: rowPtr is not non-decreasing")

	// ErrEdgeCountMismatch is returned when rowPtr[n] != len(colInd).
	ErrEdgeCountMismatch = errors.New("csr: rowPtr[n] does not match len(colInd)")

	// ErrVertexOutOfRange is returned when a neighbor id is ≥ n.
	ErrVertexOutOfRange = errors.New("csr: neighbor id out of range")

	// ErrUnsorted is returned when an adjacency slice is not ascending.
	ErrUnsorted = errors.New("csr: adjacency list not sorted ascending")

	// ErrDuplicateEdge is returned for parallel edges.
	ErrDuplicateEdge = errors.New("csr: duplicate edge")

	// ErrSelfLoop is returned when a vertex is its own neighbor.
	ErrSelfLoop = errors.New("csr: self-loop")

	// ErrAsymmetric is returned when an arc has no reverse arc.
	ErrAsymmetric = errors.New("csr: adjacency is not symmetric")
)

// Graph is an immutable CSR adjacency structure.
//
// rowPtr has n+1 entries; colInd has rowPtr[n] entries. Both are owned by the
// Graph: constructors copy caller input, views allocate fresh arrays.
type Graph struct {
	n      int
	rowPtr []int
	colInd []VertexID
}
