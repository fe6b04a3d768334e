// File: oriented.go
// Role: counting along the low-to-high orientation of each edge.
// Determinism:
//   - Single pass in label order.
// Concurrency:
//   - Read-only on g; the marker is local to the call.

package triangle

import (
	"github.com/katalvlaran/tricount/csr"
	"github.com/katalvlaran/tricount/intersect"
)

// Oriented counts each triangle u<v<w once at u: it marks the higher
// neighbors of u, then for each higher neighbor v counts the marked higher
// neighbors of v.
//
// Complexity: O(Σ_u Σ_{v∈N⁺(u)} deg(v)) time, O(n) space.
func Oriented(g *csr.Graph) (uint64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	n := g.VertexCount()
	marker := intersect.NewMarker(n)

	var count uint64
	for i := 0; i < n; i++ {
		u := csr.VertexID(i)
		nu := g.Neighbors(u)
		for _, v := range nu {
			if v > u {
				marker.Set(v)
			}
		}
		for _, v := range nu {
			if v <= u {
				continue
			}
			for _, w := range g.Neighbors(v) {
				if w > v && marker.Has(w) {
					count++
				}
			}
		}
		for _, v := range nu {
			if v > u {
				marker.Unset(v)
			}
		}
	}

	return count, nil
}
