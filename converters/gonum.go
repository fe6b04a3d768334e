// File: gonum.go
// Role: adapters between csr.Graph and gonum.org/v1/gonum/graph.
// Determinism:
//   - Gonum nodes are relabeled in ascending ID order.
// Concurrency:
//   - Read-only on the source graph.

package converters

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/tricount/builder"
	"github.com/katalvlaran/tricount/csr"
)

// ErrNilGraph is returned when a nil source graph is passed.
var ErrNilGraph = errors.New("converters: graph is nil")

// FromGonum converts an undirected gonum graph to CSR. Node IDs are mapped
// to dense labels in ascending order; ids[i] is the gonum ID of CSR vertex i.
//
// Complexity: O(n·log n + m) plus CSR materialization.
func FromGonum(g graph.Undirected) (*csr.Graph, []int64, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	var ids []int64
	for nodes := g.Nodes(); nodes.Next(); {
		ids = append(ids, nodes.Node().ID())
	}
	slices.Sort(ids)

	label := make(map[int64]int, len(ids))
	for i, id := range ids {
		label[id] = i
	}

	es := builder.NewEdgeSet()
	es.Grow(len(ids))
	for u, id := range ids {
		for to := g.From(id); to.Next(); {
			v := label[to.Node().ID()]
			if v <= u {
				continue
			}
			if _, err := es.Add(u, v); err != nil {
				return nil, nil, fmt.Errorf("converters: FromGonum: %w", err)
			}
		}
	}

	out, err := es.Graph()
	if err != nil {
		return nil, nil, fmt.Errorf("converters: FromGonum: %w", err)
	}
	return out, ids, nil
}

// ToGonum converts g to a gonum undirected graph with node IDs 0..n-1.
//
// Complexity: O(n + m).
func ToGonum(g *csr.Graph) (*simple.UndirectedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	out := simple.NewUndirectedGraph()
	n := g.VertexCount()
	for v := 0; v < n; v++ {
		out.AddNode(simple.Node(int64(v)))
	}
	for v := 0; v < n; v++ {
		for _, w := range g.Neighbors(csr.VertexID(v)) {
			if int(w) <= v {
				continue
			}
			out.SetEdge(simple.Edge{F: simple.Node(int64(v)), T: simple.Node(int64(w))})
		}
	}

	return out, nil
}
