// Package converters moves graphs in and out of csr.Graph:
//   - gonum/graph: FromGonum imports any graph.Undirected, ToGonum exports
//     a *simple.UndirectedGraph.
//   - gonum/mat: ToDense / FromDense for a 0/1 adjacency matrix.
//   - text edge lists: ReadEdgeList / WriteEdgeList.
//
// Edge-list format: one edge "u v" per line, fields separated by whitespace
// or commas; extra fields (weights, timestamps) are ignored. Lines starting
// with '#' or '%' are comments, except a "# vertices N" line, which fixes
// the vertex count so that trailing isolated vertices survive a round trip.
// Edges are undirected: "u v" and "v u" denote the same edge, repeats are
// collapsed and self-loops are skipped.
package converters
