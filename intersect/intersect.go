// File: intersect.go
// Role: set-intersection cardinality over neighbor slices.
// Determinism:
//   - Results depend only on the set contents.
// Concurrency:
//   - MergePath and BinarySearch are pure. HashMark mutates its Marker
//     and restores it before returning.

package intersect

import (
	"sort"

	"github.com/katalvlaran/tricount/csr"
)

// HashMark returns |a ∩ b| by marking the shorter slice in m, counting
// marked ids of the longer slice, then unmarking. Input order is irrelevant.
// m must cover every id in a and b and be clean on entry; it is clean on
// return.
//
// Complexity: O(|a| + |b|) time, no allocation.
func HashMark(m *Marker, a, b []csr.VertexID) uint64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	m.Mark(a)
	c := m.Count(b)
	m.Unmark(a)

	return c
}

// MergePath returns |a ∩ b| for ascending a and b.
//
// Complexity: O(|a| + |b|) time, no allocation.
func MergePath(a, b []csr.VertexID) uint64 {
	var (
		c    uint64
		i, j int
	)
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			c++
			i++
			j++
		}
	}
	return c
}

// BinarySearch returns |a ∩ b| for ascending a and b. Each id of the
// shorter slice is located in the remaining suffix of the longer one by
// galloping (doubling the step) and then binary search within the bracket,
// so the search window only moves forward.
//
// Complexity: O(|short| · log(|long| / |short|)) time, no allocation.
func BinarySearch(a, b []csr.VertexID) uint64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	var (
		c  uint64
		lo int
	)
	for _, x := range a {
		if lo >= len(b) {
			break
		}
		hi := gallop(b, lo, x)
		lo += sort.Search(hi-lo, func(k int) bool { return b[lo+k] >= x })
		if lo < len(b) && b[lo] == x {
			c++
			lo++
		}
	}
	return c
}

// gallop returns an exclusive bound hi > lo such that either hi == len(b) or
// b[hi-1] >= x, probing b at lo, lo+1, lo+2, lo+4, lo+8, ...
func gallop(b []csr.VertexID, lo int, x csr.VertexID) int {
	step := 1
	hi := lo
	for hi < len(b) && b[hi] < x {
		hi = lo + step
		step <<= 1
	}
	if hi >= len(b) {
		return len(b)
	}
	return hi + 1
}
