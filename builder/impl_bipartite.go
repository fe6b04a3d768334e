// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left part 0..n1-1, right part n1..n1+n2-1.
//   • Emits every left×right pair, left index ascending then right ascending.

package builder

import "fmt"

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(es *EdgeSet, _ builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: partitions (%d,%d) < min=%d: %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		es.Grow(n1 + n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := addEdge(es, methodCompleteBipartite, i, n1+j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
