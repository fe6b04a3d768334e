// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = hub CenterVertex (0) + rim cycle on vertices 1..n-1.
//   • Therefore n ≥ 4 (the rim must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • Rim edges i-i+1 (1 ≤ i < n-1) then (n-1)-1, then spokes 0-i ascending.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds the wheel graph W_n.
func Wheel(n int) Constructor {
	return func(es *EdgeSet, _ builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		es.Grow(n)

		rim := n - 1
		for i := 0; i < rim; i++ {
			u := 1 + i
			v := 1 + (i+1)%rim
			if err := addEdge(es, methodWheel, u, v); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := addEdge(es, methodWheel, CenterVertex, i); err != nil {
				return err
			}
		}
		return nil
	}
}
