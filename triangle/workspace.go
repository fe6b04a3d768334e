// File: workspace.go
// Role: backward-neighbor lists for the forward algorithm, plus scratch
//       size estimation for the workspace limit.
// Determinism:
//   - Lists grow in call order only.
// Concurrency:
//   - One workspace per run; never shared.

package triangle

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/tricount/csr"
)

// workspace stores backward(v) in backward[rowPtr[v] : rowPtr[v]+size[v]].
// Invariant: size[v] ≤ degree(v).
type workspace struct {
	rowPtr   []int
	size     []int
	backward []csr.VertexID
}

func newWorkspace(g *csr.Graph) *workspace {
	return &workspace{
		rowPtr:   g.RowPtr(),
		size:     make([]int, g.VertexCount()),
		backward: make([]csr.VertexID, g.EdgeCount()),
	}
}

// list returns the current backward list of v.
func (w *workspace) list(v csr.VertexID) []csr.VertexID {
	lo := w.rowPtr[v]
	return w.backward[lo : lo+w.size[v]]
}

// push appends s to backward(t).
func (w *workspace) push(t, s csr.VertexID) error {
	lo, hi := w.rowPtr[t], w.rowPtr[t+1]
	if lo+w.size[t] >= hi {
		return fmt.Errorf("%w: vertex %d (degree %d) after %d", ErrCorruptWorkspace, t, hi-lo, s)
	}
	w.backward[lo+w.size[t]] = s
	w.size[t]++
	return nil
}

const (
	sizeofInt = int64(unsafe.Sizeof(int(0)))
	sizeofID  = int64(unsafe.Sizeof(csr.VertexID(0)))
)

// estimateWorkspace returns the scratch bytes a run of method on an n-vertex,
// m-arc graph allocates, including the relabeled copy when reordered.
func estimateWorkspace(method Method, n, m int, reordered bool) int64 {
	nn, mm := int64(n), int64(m)
	var b int64
	switch {
	case method.forward():
		b = nn*sizeofInt + mm*sizeofID // size + backward
		if method.strategy().NeedsMarker() {
			b += nn
		}
		if reordered {
			// perm + rank + rowPtr + colInd of the copy
			b += 2*nn*sizeofInt + (nn+1)*sizeofInt + mm*sizeofID
		}
	default: // Direct, Oriented
		b = nn
	}
	return b
}
