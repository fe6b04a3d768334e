// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex (r,c) has id r*cols + c (row-major).
//   • 4-neighborhood: right edge then down edge per cell, row-major order.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(es *EdgeSet, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: dims (%d,%d) < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		es.Grow(rows * cols)

		var id int
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id = r*cols + c
				if c+1 < cols {
					if err := addEdge(es, methodGrid, id, id+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(es, methodGrid, id, id+cols); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
