package prism

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/WillTrojak/Polyquad/domain"
)

const (
	// Dim is the embedding-space dimension of the reference prism.
	Dim = 3

	// OrbitCount is the number of orbit kinds in the prism catalog.
	OrbitCount = 6

	// third is the barycentric centroid weight.
	third = 1.0 / 3.0
)

// Fixed-size arrays so a catalog/table length mismatch cannot compile.
var (
	// orbitPoints is the point multiplicity of each orbit kind.
	orbitPoints = [OrbitCount]int{1, 2, 3, 6, 6, 12}

	// orbitParams is the free-parameter count of each orbit kind.
	orbitParams = [OrbitCount]int{0, 1, 1, 2, 2, 3}
)

// Domain implements domain.Domain for the reference triangular prism.
// It is stateless; the zero value is ready to use.
type Domain struct{}

var _ domain.Domain = Domain{}

// New returns the prism domain.
func New() Domain { return Domain{} }

// Dim reports the embedding-space dimension, 3.
func (Domain) Dim() int { return Dim }

// OrbitCount reports the size of the orbit catalog, 6.
func (Domain) OrbitCount() int { return OrbitCount }

// PointsForOrbit reports the point multiplicity of orbit kind i.
func (Domain) PointsForOrbit(i int) int {
	checkOrbit(i)
	return orbitPoints[i]
}

// ParamsForOrbit reports the free-parameter count of orbit kind i.
func (Domain) ParamsForOrbit(i int) int {
	checkOrbit(i)
	return orbitParams[i]
}

// ValidateOrbits reports whether the orbit-count combination counts is
// structurally permitted: the centroid orbit (kind 0) is unique, so at
// most one instance of it may appear.
func (Domain) ValidateOrbits(counts []int) bool {
	if len(counts) != OrbitCount {
		panic(fmt.Sprintf("prism: counts has %d kinds, catalog has %d", len(counts), OrbitCount))
	}
	return counts[0] <= 1
}

// SeedOrbit writes a feasible random parameter slice for orbit kind i at
// args[aoff:]. The three primitive draws are fixed per kind:
//
//	seedA — uniform in [0, 1/2]   (symmetric in-plane parameter)
//	seedB — uniform in [0, 1/3]   (asymmetric in-plane parameter pair)
//	seedC — sqrt(1 - u²), u ~ U[0,1)  (axial offset, biased toward ±1)
//
// Seed and clamp ranges are specified independently per kind; every seeded
// slice is nonetheless feasible as drawn.
func (Domain) SeedOrbit(rng domain.Rand, i, aoff int, args []float64) {
	seedA := func() float64 { return rng.Uniform(0, 0.5) }
	seedB := func() float64 { return rng.Uniform(0, third) }
	seedC := func() float64 { u := rng.Float64(); return math.Sqrt(1 - u*u) }

	switch i {
	case 0:
	case 1:
		args[aoff] = seedC()
	case 2:
		args[aoff] = seedA()
	case 3:
		args[aoff+0] = seedA()
		args[aoff+1] = seedC()
	case 4:
		args[aoff+0] = seedB()
		args[aoff+1] = seedB()
	case 5:
		args[aoff+0] = seedB()
		args[aoff+1] = seedB()
		args[aoff+2] = seedC()
	default:
		badOrbit(i)
	}
}

// ExpandOrbit writes the points of orbit kind i into rows poff.. of pts,
// one closed-form symmetric generator per kind (see package docs for the
// catalog).
func (Domain) ExpandOrbit(i, aoff, poff int, args []float64, pts *mat.Dense) {
	switch i {
	case 0:
		setBaryRow(pts, poff, third, third, third, 0)
	case 1:
		b := args[aoff]
		setBaryRow(pts, poff+0, third, third, third, -b)
		setBaryRow(pts, poff+1, third, third, third, b)
	case 2:
		a := args[aoff]
		setBaryRow(pts, poff+0, a, a, 1-2*a, 0)
		setBaryRow(pts, poff+1, a, 1-2*a, a, 0)
		setBaryRow(pts, poff+2, 1-2*a, a, a, 0)
	case 3:
		a, b := args[aoff+0], args[aoff+1]
		setBaryRow(pts, poff+0, a, a, 1-2*a, -b)
		setBaryRow(pts, poff+1, a, 1-2*a, a, -b)
		setBaryRow(pts, poff+2, 1-2*a, a, a, -b)
		setBaryRow(pts, poff+3, a, a, 1-2*a, b)
		setBaryRow(pts, poff+4, a, 1-2*a, a, b)
		setBaryRow(pts, poff+5, 1-2*a, a, a, b)
	case 4:
		a, b := args[aoff+0], args[aoff+1]
		setBaryRow(pts, poff+0, a, b, 1-a-b, 0)
		setBaryRow(pts, poff+1, a, 1-a-b, b, 0)
		setBaryRow(pts, poff+2, b, a, 1-a-b, 0)
		setBaryRow(pts, poff+3, b, 1-a-b, a, 0)
		setBaryRow(pts, poff+4, 1-a-b, a, b, 0)
		setBaryRow(pts, poff+5, 1-a-b, b, a, 0)
	case 5:
		a, b, c := args[aoff+0], args[aoff+1], args[aoff+2]
		setBaryRow(pts, poff+0, a, b, 1-a-b, -c)
		setBaryRow(pts, poff+1, a, 1-a-b, b, -c)
		setBaryRow(pts, poff+2, b, a, 1-a-b, -c)
		setBaryRow(pts, poff+3, b, 1-a-b, a, -c)
		setBaryRow(pts, poff+4, 1-a-b, a, b, -c)
		setBaryRow(pts, poff+5, 1-a-b, b, a, -c)
		setBaryRow(pts, poff+6, a, b, 1-a-b, c)
		setBaryRow(pts, poff+7, a, 1-a-b, b, c)
		setBaryRow(pts, poff+8, b, a, 1-a-b, c)
		setBaryRow(pts, poff+9, b, 1-a-b, a, c)
		setBaryRow(pts, poff+10, 1-a-b, a, b, c)
		setBaryRow(pts, poff+11, 1-a-b, b, a, c)
	default:
		badOrbit(i)
	}
}

// ClampOrbit projects args[aoff:] for orbit kind i onto its feasible
// region, in place. Per-kind intervals; the second parameter of kinds 4
// and 5 is clamped to [0, 1-a] with a the already-clamped first parameter,
// enforcing the simplex constraint a+b ≤ 1. Idempotent.
func (Domain) ClampOrbit(i, aoff int, args []float64) {
	switch i {
	case 0:
	case 1:
		args[aoff] = clamp(0, args[aoff], 1)
	case 2:
		args[aoff] = clamp(0, args[aoff], 0.5)
	case 3:
		args[aoff+0] = clamp(0, args[aoff+0], 0.5)
		args[aoff+1] = clamp(0, args[aoff+1], 1)
	case 4:
		args[aoff+0] = clamp(0, args[aoff+0], 1)
		args[aoff+1] = clamp(0, args[aoff+1], 1-args[aoff+0])
	case 5:
		args[aoff+0] = clamp(0, args[aoff+0], 1)
		args[aoff+1] = clamp(0, args[aoff+1], 1-args[aoff+0])
		args[aoff+2] = clamp(0, args[aoff+2], 1)
	default:
		badOrbit(i)
	}
}

// CanonOrbit rewrites args[aoff:] for orbit kind i into the canonical
// representative of its relabeling class. Kinds 4 and 5 are parameterized
// by an unordered barycentric triple {a, b, 1-a-b}; the canonical slice
// holds the two smallest of the three values in ascending order (the
// discarded largest is recoverable as 1-a-b). A no-op for other kinds.
func (Domain) CanonOrbit(i, aoff int, args []float64) {
	checkOrbit(i)
	if i != 4 && i != 5 {
		return
	}

	bary := []float64{
		args[aoff+0],
		args[aoff+1],
		1 - args[aoff+0] - args[aoff+1],
	}
	sort.Float64s(bary)
	copy(args[aoff:aoff+2], bary[:2])
}

// setBaryRow embeds the barycentric triple (p1,p2,p3) at axial coordinate
// z into row r of pts.
func setBaryRow(pts *mat.Dense, r int, p1, p2, p3, z float64) {
	pts.Set(r, 0, -p1+p2-p3)
	pts.Set(r, 1, -p1-p2+p3)
	pts.Set(r, 2, z)
}

// clamp returns x pulled to the nearest point of [lo, hi].
func clamp(lo, x, hi float64) float64 {
	return math.Min(math.Max(lo, x), hi)
}

// checkOrbit panics when i lies outside the orbit catalog. Desynchronized
// catalogs between solver and shape are never recoverable.
func checkOrbit(i int) {
	if i < 0 || i >= OrbitCount {
		badOrbit(i)
	}
}

func badOrbit(i int) {
	panic(fmt.Sprintf("prism: orbit kind %d outside catalog 0..%d", i, OrbitCount-1))
}
