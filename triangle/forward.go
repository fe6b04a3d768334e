// File: forward.go
// Role: forward triangle counting over backward-neighbor lists.
// Determinism:
//   - Vertices in label order; edges (s,t) with s<t in adjacency order.
// Concurrency:
//   - Read-only on g; scratch is local to the call.

package triangle

import (
	"fmt"

	"github.com/katalvlaran/tricount/csr"
	"github.com/katalvlaran/tricount/intersect"
)

// Forward counts the triangles of g with the forward algorithm, intersecting
// backward lists with strat. g is used with its current labels; relabeling is
// the caller's choice (see Run).
//
// For each vertex s in increasing order and each neighbor t > s:
//
//	count += |backward(s) ∩ backward(t)|
//	backward(t) ← backward(t) ∪ {s}
//
// A common element r satisfies r < s < t with (r,s), (r,t) and (s,t) all
// edges, so each triangle is counted once, at its edge with the two largest
// labels.
//
// Returns ErrCorruptWorkspace if g is not symmetric.
//
// Complexity: O(m^1.5) intersections work on degree-ordered graphs, O(n + m) space.
func Forward(g *csr.Graph, strat intersect.Strategy) (uint64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	f := strat.Func()
	if f == nil {
		return 0, fmt.Errorf("%w: strategy %v", ErrUnknownMethod, strat)
	}

	var marker *intersect.Marker
	if strat.NeedsMarker() {
		marker = intersect.NewMarker(g.VertexCount())
	}

	return forward(g, f, marker)
}

func forward(g *csr.Graph, f intersect.Func, marker *intersect.Marker) (uint64, error) {
	ws := newWorkspace(g)
	var count uint64

	n := g.VertexCount()
	for i := 0; i < n; i++ {
		s := csr.VertexID(i)
		for _, t := range g.Neighbors(s) {
			if t <= s {
				continue
			}
			count += f(marker, ws.list(s), ws.list(t))
			if err := ws.push(t, s); err != nil {
				return 0, err
			}
		}
	}

	return count, nil
}
