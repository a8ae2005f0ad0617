// Package domain defines the shape-agnostic contract between a reference
// polytope and the nonlinear solver searching it for symmetric quadrature
// rules.
//
// 🚀 The contract
//
//	Each shape (prism, tetrahedron, ...) publishes a fixed catalog of orbit
//	kinds: families of points related by the shape's symmetry group and
//	described by a small parameter slice instead of per-point coordinates.
//	The solver owns the flat parameter vector, the point batch, and the
//	basis matrix; the shape only reads and writes inside offset ranges it
//	is handed. Domain collects the operations every shape must provide:
//
//	  descriptor  — OrbitCount, PointsForOrbit, ParamsForOrbit, BasisSize
//	  expansion   — ExpandOrbit: parameters → concrete point rows
//	  seeding     — SeedOrbit: draw a feasible random parameter slice
//	  projection  — ClampOrbit: pull parameters back into feasibility
//	  canonical   — CanonOrbit: collapse relabeling-symmetric parameter
//	                slices onto one representative
//	  validation  — ValidateOrbits: gate structurally invalid orbit-count
//	                combinations
//	  basis       — EvalOrthoBasis: orthonormal polynomial values at a
//	                point batch, one row per basis function
//
// Point batches and basis matrices are gonum mat.Dense values; parameter
// vectors are plain []float64, matching what derivative-free optimizers
// consume directly.
//
// ✨ Guarantees required of every implementation:
//   - Stateless: no operation keeps state between calls; randomness enters
//     only through the injected Rand source
//   - Offset-local: an operation keyed by orbit kind i touches exactly the
//     ParamsForOrbit(i) parameters / PointsForOrbit(i) rows at its offsets
//   - Fail-loud: an orbit kind outside the catalog is a programming error
//     and panics; it is never reported as a recoverable error
//
// The package-level helpers (Seed, Expand, Clamp, Canon, RuleSize,
// ParamCount) iterate a whole orbit-count vector, deriving the per-instance
// offsets so solvers do not re-implement the bookkeeping.
package domain
