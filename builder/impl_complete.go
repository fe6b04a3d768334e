// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Vertices 0..n-1; emits each unordered pair {i,j} with i<j exactly once.
//
// Complexity:
//   • Time: O(n²) edges emission. Space: O(1) extra.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(es *EdgeSet, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		es.Grow(n)

		// Stable lexicographic order by (i,j), i<j.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(es, methodComplete, i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
