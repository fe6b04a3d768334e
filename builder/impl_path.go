// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Edges i-(i+1) for i = 0..n-2.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(es *EdgeSet, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		es.Grow(n)
		for i := 0; i+1 < n; i++ {
			if err := addEdge(es, methodPath, i, i+1); err != nil {
				return err
			}
		}
		return nil
	}
}
