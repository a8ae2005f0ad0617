package domain

import "gonum.org/v1/gonum/mat"

// Domain is the per-shape contract consumed by the quadrature solver.
//
// Implementations must be stateless: every method is a pure, synchronous,
// in-place transformation over the caller-supplied buffers, keyed by an
// orbit kind index and offsets into those buffers. Passing an orbit kind
// outside 0..OrbitCount()-1 is a contract violation and panics.
type Domain interface {
	// Dim reports the embedding-space dimension of the reference polytope.
	Dim() int

	// OrbitCount reports the number of orbit kinds in the shape's catalog.
	OrbitCount() int

	// PointsForOrbit reports the point multiplicity of orbit kind i.
	PointsForOrbit(i int) int

	// ParamsForOrbit reports the free-parameter count of orbit kind i.
	ParamsForOrbit(i int) int

	// BasisSize reports the number of orthonormal basis functions spanning
	// polynomials of total degree ≤ qdeg on the shape.
	BasisSize(qdeg int) int

	// ValidateOrbits reports whether the orbit-count combination counts
	// (instances chosen per kind) is structurally permitted on the shape.
	// len(counts) must equal OrbitCount.
	ValidateOrbits(counts []int) bool

	// SeedOrbit writes ParamsForOrbit(i) feasible random values into
	// args[aoff:], drawing entropy from rng.
	SeedOrbit(rng Rand, i, aoff int, args []float64)

	// ExpandOrbit writes the PointsForOrbit(i) embedding-space points of
	// orbit kind i into rows poff.. of pts, as a function of the
	// ParamsForOrbit(i) parameters at args[aoff:] and nothing else.
	ExpandOrbit(i, aoff, poff int, args []float64, pts *mat.Dense)

	// ClampOrbit projects args[aoff:] for orbit kind i back into its
	// feasible region, in place. Idempotent.
	ClampOrbit(i, aoff int, args []float64)

	// CanonOrbit rewrites args[aoff:] for orbit kind i into the canonical
	// representative of its relabeling-equivalence class, in place. A
	// no-op for kinds without internal relabeling symmetry. Idempotent.
	CanonOrbit(i, aoff int, args []float64)

	// EvalOrthoBasis writes into out the orthonormal basis values for the
	// point batch pts (one point per row, Dim columns, native
	// coordinates): out must be BasisSize(qdeg) rows by pts-row-count
	// columns, one row per basis function, one column per point.
	EvalOrthoBasis(qdeg int, pts mat.Matrix, out *mat.Dense)
}
