// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Hub is vertex CenterVertex (0); leaves 1..n-1 in ascending order.

package builder

import "fmt"

// CenterVertex is the hub id used by Star and Wheel.
const CenterVertex = 0

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(es *EdgeSet, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		es.Grow(n)
		for leaf := 1; leaf < n; leaf++ {
			if err := addEdge(es, methodStar, CenterVertex, leaf); err != nil {
				return err
			}
		}
		return nil
	}
}
