// Package builder provides deterministic generators of simple undirected
// CSR graphs, used as fixtures by tests, benchmarks and the tricount CLI.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(bopts, cons...): resolves options, runs constructors in order,
//     and materializes the collected edges as a *csr.Graph.
//     – Constructor: func(*EdgeSet, builderConfig) error.
//   - Topologies (each returns a Constructor):
//     – Complete(n), Cycle(n), Path(n), Star(n), Wheel(n)
//     – CompleteBipartite(n1, n2), Grid(rows, cols)
//     – RandomSparse(n, p), PlatonicSolid(name, withCenter)
//   - Options:
//     – WithSeed(seed), WithRand(r): RNG for stochastic constructors.
//
// Vertex ids are dense integers. Constructors overlay on the same id space
// (vertex i of Cycle and vertex i of Star are the same vertex), and
// re-emitting an existing edge is a no-op, so composing constructors is
// idempotent. The vertex count of the result is the largest id touched + 1.
//
// Known triangle counts (handy for tests):
//
//	Complete(n)            C(n,3)
//	Cycle(3)               1;   Cycle(n≥4) 0
//	Wheel(n)               4 for n=4 (K4), n-1 for n≥5
//	Star, Path, Grid,
//	CompleteBipartite      0
//	Tetrahedron            4
//	Octahedron             8
//	Icosahedron            20
//	Cube, Dodecahedron     0
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Structured errors: sentinel errors wrapped with the constructor name.
//   - Option constructors panic on nil arguments; constructors never panic.
package builder
