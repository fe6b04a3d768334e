// File: marker.go
// Role: reusable boolean scratch indexed by vertex id.
// Determinism:
//   - Pure state; no iteration order is exposed.
// Concurrency:
//   - Not safe for concurrent use. Allocate one Marker per goroutine.

package intersect

import "github.com/katalvlaran/tricount/csr"

// Marker is a boolean set over vertex ids [0, n).
type Marker struct {
	bits []bool
}

// NewMarker returns an all-clear Marker for n vertices.
func NewMarker(n int) *Marker {
	return &Marker{bits: make([]bool, n)}
}

// Len returns the id capacity.
func (m *Marker) Len() int { return len(m.bits) }

// Mark sets every id in ids.
func (m *Marker) Mark(ids []csr.VertexID) {
	for _, v := range ids {
		m.bits[v] = true
	}
}

// Unmark clears every id in ids.
func (m *Marker) Unmark(ids []csr.VertexID) {
	for _, v := range ids {
		m.bits[v] = false
	}
}

// Set marks a single id.
func (m *Marker) Set(id csr.VertexID) { m.bits[id] = true }

// Unset clears a single id.
func (m *Marker) Unset(id csr.VertexID) { m.bits[id] = false }

// Has reports whether id is marked.
func (m *Marker) Has(id csr.VertexID) bool { return m.bits[id] }

// Clean reports whether no id is marked. O(n); meant for tests and
// post-run consistency checks.
func (m *Marker) Clean() bool {
	for _, b := range m.bits {
		if b {
			return false
		}
	}
	return true
}

// Count returns how many ids of probe are marked.
func (m *Marker) Count(probe []csr.VertexID) uint64 {
	var c uint64
	for _, v := range probe {
		if m.bits[v] {
			c++
		}
	}
	return c
}
