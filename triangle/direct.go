// File: direct.go
// Role: small-graph mark-and-sweep counter.
// Determinism:
//   - Single pass in label order.
// Concurrency:
//   - Read-only on g; the marker is local to the call.

package triangle

import (
	"fmt"

	"github.com/katalvlaran/tricount/csr"
	"github.com/katalvlaran/tricount/intersect"
)

// directDivisor is the number of ordered (j,k,x) walks per triangle.
const directDivisor = 6

// Direct counts triangles by marking N(j) and summing marked vertices over
// every 2-path j→k→x. Each triangle is discovered six times.
//
// Returns ErrNotDivisible (with the raw total) when the raw total is not a
// multiple of 6.
//
// Complexity: O(Σ_j Σ_{k∈N(j)} deg(k)) time, O(n) space.
func Direct(g *csr.Graph) (uint64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	n := g.VertexCount()
	marker := intersect.NewMarker(n)

	var raw uint64
	for i := 0; i < n; i++ {
		nj := g.Neighbors(csr.VertexID(i))
		marker.Mark(nj)
		for _, k := range nj {
			raw += marker.Count(g.Neighbors(k))
		}
		marker.Unmark(nj)
	}

	if raw%directDivisor != 0 {
		return 0, fmt.Errorf("%w: raw=%d", ErrNotDivisible, raw)
	}
	return raw / directDivisor, nil
}
