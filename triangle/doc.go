// Package triangle counts the triangles (unordered 3-cliques) of a simple
// undirected csr.Graph exactly and sequentially.
//
// Counters:
//
//   - Forward(g, strat): the forward algorithm. Vertices are visited in label
//     order; for every edge (s,t) with s<t the backward lists of s and t are
//     intersected and s is appended to backward(t). Each triangle is counted
//     once, at its edge with the two largest labels. Backward lists are built
//     in increasing label order, so they are sorted whatever the order of the
//     input adjacency slices.
//   - Direct(g): mark-and-sweep over every 2-path. Each triangle is seen six
//     times; a raw total not divisible by 6 is reported as ErrNotDivisible.
//   - Oriented(g): marks the higher neighbors of each vertex and counts each
//     triangle once at its lowest vertex.
//
// Selector:
//
//	Count(g, opts...) / Run(g, opts...)
//
// With Method Auto (the default), graphs with fewer than
// SmallGraphThreshold vertices (100) use Direct. Larger graphs use Forward:
// below ReorderEdgeThreshold directed edges (16384) with merge-path on the
// original labels, at or above it with hash-mark on a copy relabeled by
// descending degree. The choice only affects speed; every method returns the
// same count.
//
// Options:
//
//	– WithMethod(m)                 force a counter.
//	– WithSmallGraphThreshold(n)    vertex threshold for Direct (n ≥ 0).
//	– WithReorderEdgeThreshold(m)   edge threshold for degree reordering (m ≥ 0).
//	– WithReorder(dir) / WithoutReorder()  override reordering for Forward.
//	– WithValidation(bool)          run csr.Validate first (default true).
//	– WithMaxWorkspace(bytes)       refuse runs whose scratch would exceed bytes.
//	– WithLogger(l)                 debug trace of the chosen plan.
//
// Errors (sentinel):
//
//	– ErrGraphNil           nil graph.
//	– ErrOptionViolation    invalid option value.
//	– ErrUnknownMethod      Method or Strategy out of range.
//	– ErrInvalidGraph       csr.Validate failed (the csr sentinel is wrapped too).
//	– ErrWorkspaceTooLarge  estimated scratch above WithMaxWorkspace.
//	– ErrNotDivisible       Direct raw total is not a multiple of 6.
//	– ErrCorruptWorkspace   a backward list overflowed its vertex degree.
//
// Every call allocates its own scratch. Concurrent calls on one shared graph
// are safe; the input graph is never mutated.
package triangle
