package reorder

import "errors"

// Direction selects the degree sort key.
type Direction int

const (
	// HighestDegreeFirst labels vertices by descending degree.
	HighestDegreeFirst Direction = iota

	// LowestDegreeFirst labels vertices by ascending degree.
	LowestDegreeFirst
)

// String returns "highest" or "lowest".
func (d Direction) String() string {
	switch d {
	case HighestDegreeFirst:
		return "highest"
	case LowestDegreeFirst:
		return "lowest"
	default:
		return "unknown"
	}
}

// ParseDirection maps "highest"/"lowest" back to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "highest":
		return HighestDegreeFirst, nil
	case "lowest":
		return LowestDegreeFirst, nil
	default:
		return 0, ErrUnknownDirection
	}
}

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("reorder: graph is nil")

	// ErrUnknownDirection is returned for an unsupported Direction.
	ErrUnknownDirection = errors.New("reorder: unknown direction")

	// ErrNotPermutation is returned when a permutation is malformed.
	ErrNotPermutation = errors.New("reorder: not a permutation of vertex ids")
)
