// SPDX-License-Identifier: MIT
// Package: tricount/builder
//
// api.go - public entry-point and edge accumulator.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in order,
//     then materializes the accumulated edges through csr.FromEdges.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tricount/csr"
)

// Constructor adds vertices and edges to an EdgeSet. Constructors MUST
// validate parameters early, return sentinel errors (no panics) and emit
// edges in a stable order.
type Constructor func(es *EdgeSet, cfg builderConfig) error

// EdgeSet accumulates a simple undirected edge set over dense vertex ids.
// Duplicate edges (in either orientation) are ignored; self-loops are rejected.
type EdgeSet struct {
	n     int
	seen  map[[2]csr.VertexID]struct{}
	edges [][2]csr.VertexID
}

// NewEdgeSet returns an empty EdgeSet.
func NewEdgeSet() *EdgeSet {
	return &EdgeSet{seen: make(map[[2]csr.VertexID]struct{})}
}

// Grow ensures the vertex count is at least n.
func (es *EdgeSet) Grow(n int) {
	if n > es.n {
		es.n = n
	}
}

// Add inserts the undirected edge {u,v}. It returns false if the edge was
// already present. Self-loops and ids outside the VertexID range yield
// ErrConstructFailed.
func (es *EdgeSet) Add(u, v int) (bool, error) {
	if u == v {
		return false, fmt.Errorf("self-loop at %d: %w", u, ErrConstructFailed)
	}
	if u < 0 || v < 0 || int64(u) >= csr.MaxVertices || int64(v) >= csr.MaxVertices {
		return false, fmt.Errorf("vertex id out of range (%d,%d): %w", u, v, ErrConstructFailed)
	}
	if u > v {
		u, v = v, u
	}
	key := [2]csr.VertexID{csr.VertexID(u), csr.VertexID(v)}
	if _, ok := es.seen[key]; ok {
		return false, nil
	}
	es.seen[key] = struct{}{}
	es.edges = append(es.edges, key)
	es.Grow(v + 1)

	return true, nil
}

// Len returns the number of distinct undirected edges.
func (es *EdgeSet) Len() int { return len(es.edges) }

// VertexCount returns the current vertex count.
func (es *EdgeSet) VertexCount() int { return es.n }

// Edges returns the distinct edges in insertion order, each as {min,max}.
func (es *EdgeSet) Edges() [][2]csr.VertexID { return es.edges }

// Graph materializes the set as a CSR graph.
func (es *EdgeSet) Graph() (*csr.Graph, error) {
	g, err := csr.FromEdges(es.n, es.edges)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstructFailed, err)
	}
	return g, nil
}

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order on a fresh EdgeSet and returns the resulting graph.
// Any constructor error is wrapped with "BuildGraph: %w".
//
// Complexity: Σ cost of constructors + O(n + m·log d_max) for materialization.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*csr.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	es := NewEdgeSet()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(es, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := es.Graph()
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// addEdge is the shared emission helper: wraps EdgeSet errors with method context.
func addEdge(es *EdgeSet, method string, u, v int) error {
	if _, err := es.Add(u, v); err != nil {
		return fmt.Errorf("%s: Add(%d,%d): %w", method, u, v, err)
	}
	return nil
}
