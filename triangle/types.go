package triangle

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/tricount/intersect"
	"github.com/katalvlaran/tricount/reorder"
)

// Sentinel errors returned by the triangle package.
var (
	// ErrGraphNil indicates that a nil *csr.Graph was passed.
	ErrGraphNil = errors.New("triangle: graph is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("triangle: invalid option")

	// ErrUnknownMethod indicates a Method or intersection Strategy out of range.
	ErrUnknownMethod = errors.New("triangle: unknown method")

	// ErrInvalidGraph indicates that the input failed csr.Validate.
	ErrInvalidGraph = errors.New("triangle: invalid graph")

	// ErrWorkspaceTooLarge indicates that the estimated scratch memory
	// exceeds the configured limit. Nothing was allocated.
	ErrWorkspaceTooLarge = errors.New("triangle: workspace exceeds limit")

	// ErrNotDivisible indicates that the Direct raw total is not a multiple
	// of 6, i.e. the input is not a simple symmetric graph.
	ErrNotDivisible = errors.New("triangle: raw direct total not divisible by 6")

	// ErrCorruptWorkspace indicates that a backward list grew beyond its
	// vertex degree, i.e. the input is not symmetric.
	ErrCorruptWorkspace = errors.New("triangle: backward list overflow")
)

// Method selects a counting algorithm.
type Method int

const (
	// Auto picks a counter from the graph size.
	Auto Method = iota

	// MethodDirect is the small-graph mark-and-sweep counter.
	MethodDirect

	// MethodForwardHash is Forward with hash-mark intersection.
	MethodForwardHash

	// MethodForwardMerge is Forward with merge-path intersection.
	MethodForwardMerge

	// MethodForwardBinary is Forward with galloping binary-search intersection.
	MethodForwardBinary

	// MethodOriented counts each triangle at its lowest vertex.
	MethodOriented
)

var methodNames = [...]string{
	Auto:                "auto",
	MethodDirect:        "direct",
	MethodForwardHash:   "forward-hash",
	MethodForwardMerge:  "forward-merge",
	MethodForwardBinary: "forward-binary",
	MethodOriented:      "oriented",
}

// String returns the CLI/config name of m.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// ParseMethod maps a name produced by String back to a Method.
func ParseMethod(s string) (Method, error) {
	for i, name := range methodNames {
		if name == s {
			return Method(i), nil
		}
	}
	return Auto, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// valid reports whether m is a defined Method.
func (m Method) valid() bool { return m >= Auto && int(m) < len(methodNames) }

// forward reports whether m runs the forward algorithm.
func (m Method) forward() bool {
	return m == MethodForwardHash || m == MethodForwardMerge || m == MethodForwardBinary
}

// strategy returns the intersection primitive used by a forward method.
func (m Method) strategy() intersect.Strategy {
	switch m {
	case MethodForwardMerge:
		return intersect.Merge
	case MethodForwardBinary:
		return intersect.Binary
	default:
		return intersect.Hash
	}
}

// ReorderPolicy controls degree relabeling for forward methods.
type ReorderPolicy int

const (
	// ReorderAuto relabels when the edge count reaches ReorderEdgeThreshold.
	ReorderAuto ReorderPolicy = iota

	// ReorderAlways relabels in Options.Direction.
	ReorderAlways

	// ReorderNever counts on the original labels.
	ReorderNever
)

// Default tuning constants.
const (
	// DefaultSmallGraphThreshold is the vertex count below which Auto uses Direct.
	DefaultSmallGraphThreshold = 100

	// DefaultReorderEdgeThreshold is the directed edge count at which Auto
	// switches from reorder-free merge-path to degree-ordered hash-mark.
	DefaultReorderEdgeThreshold = 16384
)

// Options configures Count and Run.
//
// Method               – counter to use; Auto picks by size.
// SmallGraphThreshold  – n below which Auto uses Direct. Must be ≥ 0.
// ReorderEdgeThreshold – directed m at which forward runs relabel by degree
// (under ReorderAuto). Must be ≥ 0.
// Reorder, Direction   – relabeling policy for forward methods.
// Validate             – run csr.Validate before counting.
// MaxWorkspace         – byte limit on scratch memory; 0 disables the check.
// Logger               – debug sink; nil discards.
type Options struct {
	Method               Method
	SmallGraphThreshold  int
	ReorderEdgeThreshold int
	Reorder              ReorderPolicy
	Direction            reorder.Direction
	Validate             bool
	MaxWorkspace         int64
	Logger               *log.Logger

	err error // first invalid option, surfaced by Run
}

// Option represents a functional option for Count and Run.
type Option func(*Options)

// DefaultOptions returns the Auto configuration with validation enabled.
func DefaultOptions() Options {
	return Options{
		Method:               Auto,
		SmallGraphThreshold:  DefaultSmallGraphThreshold,
		ReorderEdgeThreshold: DefaultReorderEdgeThreshold,
		Reorder:              ReorderAuto,
		Direction:            reorder.HighestDegreeFirst,
		Validate:             true,
	}
}

// fail records the first option violation.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// WithMethod forces a counter. An undefined Method is an option violation.
func WithMethod(m Method) Option {
	return func(o *Options) {
		if !m.valid() {
			o.fail(fmt.Errorf("%w: %w: %d", ErrOptionViolation, ErrUnknownMethod, int(m)))
			return
		}
		o.Method = m
	}
}

// WithSmallGraphThreshold sets the vertex count below which Auto uses Direct.
func WithSmallGraphThreshold(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(fmt.Errorf("%w: SmallGraphThreshold=%d < 0", ErrOptionViolation, n))
			return
		}
		o.SmallGraphThreshold = n
	}
}

// WithReorderEdgeThreshold sets the directed edge count at which forward
// runs relabel by degree.
func WithReorderEdgeThreshold(m int) Option {
	return func(o *Options) {
		if m < 0 {
			o.fail(fmt.Errorf("%w: ReorderEdgeThreshold=%d < 0", ErrOptionViolation, m))
			return
		}
		o.ReorderEdgeThreshold = m
	}
}

// WithReorder always relabels forward runs in direction dir.
func WithReorder(dir reorder.Direction) Option {
	return func(o *Options) {
		if dir != reorder.HighestDegreeFirst && dir != reorder.LowestDegreeFirst {
			o.fail(fmt.Errorf("%w: %w", ErrOptionViolation, reorder.ErrUnknownDirection))
			return
		}
		o.Reorder = ReorderAlways
		o.Direction = dir
	}
}

// WithoutReorder runs forward methods on the original labels.
func WithoutReorder() Option {
	return func(o *Options) {
		o.Reorder = ReorderNever
	}
}

// WithValidation toggles the csr.Validate pre-check.
func WithValidation(on bool) Option {
	return func(o *Options) {
		o.Validate = on
	}
}

// WithMaxWorkspace caps the estimated scratch memory in bytes; 0 disables.
func WithMaxWorkspace(bytes int64) Option {
	return func(o *Options) {
		if bytes < 0 {
			o.fail(fmt.Errorf("%w: MaxWorkspace=%d < 0", ErrOptionViolation, bytes))
			return
		}
		o.MaxWorkspace = bytes
	}
}

// WithLogger sets a debug logger. nil discards.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Result reports a count together with the plan that produced it.
type Result struct {
	Triangles uint64
	Method    Method             // concrete counter (never Auto)
	Strategy  intersect.Strategy // meaningful for forward methods only
	Reordered bool
	Direction reorder.Direction // meaningful when Reordered
	Elapsed   time.Duration
}
