package intersect

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tricount/csr"
)

// Func is the common signature of all intersection primitives.
// m may be nil for strategies that do not need scratch space.
type Func func(m *Marker, a, b []csr.VertexID) uint64

// Strategy selects an intersection primitive.
type Strategy int

const (
	// Hash marks the shorter slice and probes the longer one.
	Hash Strategy = iota

	// Merge walks both sorted slices in lockstep.
	Merge

	// Binary gallops through the longer sorted slice.
	Binary
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
var ErrUnknownStrategy = errors.New("intersect: unknown strategy")

// String returns "hash", "merge" or "binary".
func (s Strategy) String() string {
	switch s {
	case Hash:
		return "hash"
	case Merge:
		return "merge"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a name produced by String back to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "hash":
		return Hash, nil
	case "merge":
		return Merge, nil
	case "binary":
		return Binary, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// NeedsSorted reports whether the strategy requires ascending input.
func (s Strategy) NeedsSorted() bool { return s != Hash }

// NeedsMarker reports whether the strategy uses a Marker.
func (s Strategy) NeedsMarker() bool { return s == Hash }

// Func returns the primitive for s, or nil for an unknown strategy.
func (s Strategy) Func() Func {
	switch s {
	case Hash:
		return HashMark
	case Merge:
		return func(_ *Marker, a, b []csr.VertexID) uint64 { return MergePath(a, b) }
	case Binary:
		return func(_ *Marker, a, b []csr.VertexID) uint64 { return BinarySearch(a, b) }
	default:
		return nil
	}
}
