// File: select.go
// Role: size-based dispatch among the counters (top-level entry point).
// Determinism:
//   - The plan depends only on n, m and Options.
// Concurrency:
//   - Safe for concurrent calls on one graph; each call owns its scratch
//     and any relabeled copy.

package triangle

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/tricount/csr"
	"github.com/katalvlaran/tricount/intersect"
	"github.com/katalvlaran/tricount/reorder"
)

// plan is the resolved execution choice for one run.
type plan struct {
	method    Method
	strategy  intersect.Strategy
	reordered bool
	direction reorder.Direction
}

// Count returns the exact number of triangles in g. See Run.
func Count(g *csr.Graph, opts ...Option) (uint64, error) {
	res, err := Run(g, opts...)
	if err != nil {
		return 0, err
	}
	return res.Triangles, nil
}

// Run counts the triangles of g and reports the plan used.
//
// Steps:
//  1. Apply options; the first invalid one aborts with ErrOptionViolation.
//  2. Reject nil g (ErrGraphNil) and, if enabled, graphs failing csr.Validate
//     (ErrInvalidGraph).
//  3. Resolve the plan (Auto: Direct below SmallGraphThreshold vertices,
//     otherwise Forward, degree-reordered with hash-mark at or above
//     ReorderEdgeThreshold arcs and merge-path on the original labels below).
//  4. Refuse plans whose estimated scratch exceeds MaxWorkspace.
//  5. Count; a relabeled copy, if any, is dropped before returning.
//
// g is never mutated.
func Run(g *csr.Graph, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if g == nil {
		return Result{}, ErrGraphNil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if cfg.Validate {
		if err := csr.Validate(g); err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
		}
	}

	n, m := g.VertexCount(), g.EdgeCount()
	p := resolve(cfg, n, m)

	if cfg.MaxWorkspace > 0 {
		need := estimateWorkspace(p.method, n, m, p.reordered)
		if need > cfg.MaxWorkspace {
			return Result{}, fmt.Errorf("%w: need %d bytes, limit %d", ErrWorkspaceTooLarge, need, cfg.MaxWorkspace)
		}
	}

	logger.Debug("triangle plan",
		"n", n, "m", m,
		"method", p.method, "strategy", p.strategy,
		"reordered", p.reordered, "direction", p.direction)

	start := time.Now()
	count, err := execute(g, p)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Triangles: count,
		Method:    p.method,
		Strategy:  p.strategy,
		Reordered: p.reordered,
		Direction: p.direction,
		Elapsed:   time.Since(start),
	}
	logger.Debug("triangle count", "triangles", res.Triangles, "elapsed", res.Elapsed)

	return res, nil
}

// resolve maps Options and graph size to a concrete plan.
func resolve(cfg Options, n, m int) plan {
	p := plan{method: cfg.Method, direction: cfg.Direction}
	if p.method == Auto {
		switch {
		case n < cfg.SmallGraphThreshold:
			p.method = MethodDirect
		case m < cfg.ReorderEdgeThreshold:
			p.method = MethodForwardMerge
		default:
			p.method = MethodForwardHash
		}
	}
	if !p.method.forward() {
		return p
	}

	p.strategy = p.method.strategy()
	switch cfg.Reorder {
	case ReorderAlways:
		p.reordered = true
	case ReorderNever:
		p.reordered = false
	default:
		p.reordered = m >= cfg.ReorderEdgeThreshold
	}

	return p
}

// execute runs the plan. The relabeled copy lives only inside this call.
func execute(g *csr.Graph, p plan) (uint64, error) {
	switch p.method {
	case MethodDirect:
		return Direct(g)
	case MethodOriented:
		return Oriented(g)
	case MethodForwardHash, MethodForwardMerge, MethodForwardBinary:
		work := g
		if p.reordered {
			rg, _, err := reorder.ByDegree(g, p.direction)
			if err != nil {
				return 0, fmt.Errorf("triangle: reorder: %w", err)
			}
			work = rg
		}
		return Forward(work, p.strategy)
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownMethod, p.method)
	}
}
