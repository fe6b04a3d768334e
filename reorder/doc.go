// Package reorder relabels a csr.Graph by vertex degree.
//
// Degree ordering puts high-degree vertices first (HighestDegreeFirst) so
// that, in the forward triangle algorithm, the backward-neighbor lists of hubs
// stay short and every intersection is bounded by the smaller side. The
// opposite order (LowestDegreeFirst) is provided for benchmarking.
//
// The order is total and deterministic: ties on degree are broken by
// ascending original id, so the same input always yields the same labels.
//
// Relabeling destroys the ascending order of adjacency slices, so Apply
// re-sorts every slice of the result. Callers may rely on the output being
// sorted whenever the input satisfied csr.Validate.
//
// The input graph is never mutated; results are independently owned.
//
//	g2, perm, err := reorder.ByDegree(g, reorder.HighestDegreeFirst)
//	// perm[i] is the original id of new vertex i.
package reorder
