// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Ring edges i-(i+1) mod n for i ascending.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(es *EdgeSet, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		es.Grow(n)
		for i := 0; i < n; i++ {
			if err := addEdge(es, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}
}
