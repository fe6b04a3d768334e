// Package tricount computes the exact number of triangles (unordered
// 3-cliques) of large sparse undirected graphs stored in compressed-sparse-row
// form.
//
// Everything is organized under these subpackages:
//
//	csr/        – immutable CSR graph: construction, validation, neighbor views
//	reorder/    – degree-ordered relabeling (highest- or lowest-degree first)
//	intersect/  – hash-mark, merge-path and galloping binary-search intersection
//	triangle/   – forward, direct and oriented counters plus the size-based selector
//	builder/    – deterministic fixture graphs (complete, wheel, grid, G(n,p), ...)
//	converters/ – gonum graph and matrix adapters, text edge lists
//	cmd/tricount – command-line front end (count, generate)
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, builder.Complete(5))
//	n, _ := triangle.Count(g) // 10
//
// Counting is single-threaded per call and never mutates its input; any
// number of calls may share one graph concurrently.
package tricount
