// Package intersect counts |a ∩ b| for two neighbor slices of a csr.Graph.
//
// Three interchangeable strategies are provided:
//
//   - HashMark: mark the shorter slice in a Marker, probe the longer one,
//     then unmark. Order-independent; needs a Marker sized to the vertex count.
//   - MergePath: linear two-pointer merge. Both slices sorted ascending.
//   - BinarySearch: walk the shorter slice and locate each id in the
//     remaining suffix of the longer one by galloping binary search.
//     Both slices sorted ascending. Wins when lengths are very skewed.
//
// On duplicate-free inputs (sorted, where required) all three return the same
// count. The Marker is left clean after every HashMark call, so one Marker can
// serve any number of consecutive intersections within a single goroutine.
//
// Strategy names a primitive and adapts it to the common Func signature:
//
//	f := intersect.Merge.Func()
//	c := f(nil, a, b) // Merge and Binary ignore the marker
package intersect
