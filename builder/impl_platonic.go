// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// impl_platonic.go - implementation of PlatonicSolid(name, withCenter) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}.
//   • Unknown name → ErrOptionViolation.
//   • Shell vertices 0..V-1; edges emitted in dataset order.
//   • If withCenter, hub vertex V is added with spokes to 0..V-1 ascending.
//     Every shell edge then closes one extra triangle with the hub.
//
// Complexity:
//   • O(V+E) for the selected solid (V≤20, E≤30).

package builder

import "fmt"

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor that builds the chosen Platonic shell,
// optionally stellated with a hub connected to every shell vertex.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(es *EdgeSet, _ builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		edges, ok := platonicEdgeSets[name]
		if !ok {
			return fmt.Errorf("%s: missing edge set for %q: %w", methodPlatonicSolid, name, ErrConstructFailed)
		}

		es.Grow(n)
		for _, ch := range edges {
			if err := addEdge(es, methodPlatonicSolid, ch.U, ch.V); err != nil {
				return err
			}
		}

		if withCenter {
			hub := n
			for i := 0; i < n; i++ {
				if err := addEdge(es, methodPlatonicSolid, hub, i); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
