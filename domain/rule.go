package domain

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// The helpers below walk a whole orbit-count vector, deriving the
// per-instance parameter and point offsets the per-orbit operations need.
// They exist so solvers share one copy of the offset bookkeeping; each is
// a thin loop over the corresponding Domain method.
//
// All of them treat a counts vector whose length differs from
// d.OrbitCount(), or which holds a negative count, as a contract violation
// and panic.

// RuleSize returns the total number of quadrature points produced by the
// orbit-count combination counts.
func RuleSize(d Domain, counts []int) int {
	checkCounts(d, counts)

	n := 0
	for i, c := range counts {
		n += c * d.PointsForOrbit(i)
	}
	return n
}

// ParamCount returns the total number of free parameters carried by the
// orbit-count combination counts.
func ParamCount(d Domain, counts []int) int {
	checkCounts(d, counts)

	n := 0
	for i, c := range counts {
		n += c * d.ParamsForOrbit(i)
	}
	return n
}

// Seed fills args with one feasible random parameter slice per orbit
// instance of counts, in catalog order, drawing from rng.
// len(args) must be at least ParamCount(d, counts).
func Seed(d Domain, rng Rand, counts []int, args []float64) {
	if need := ParamCount(d, counts); len(args) < need {
		panic(fmt.Sprintf("domain: args holds %d parameters, combination needs %d", len(args), need))
	}

	aoff := 0
	for i, c := range counts {
		for n := 0; n < c; n++ {
			d.SeedOrbit(rng, i, aoff, args)
			aoff += d.ParamsForOrbit(i)
		}
	}
}

// Expand materializes the full point batch of the orbit-count combination
// counts from the parameter vector args, writing contiguous row blocks into
// pts in catalog order. pts must have at least RuleSize(d, counts) rows and
// d.Dim() columns.
func Expand(d Domain, counts []int, args []float64, pts *mat.Dense) {
	rows, cols := pts.Dims()
	if need := RuleSize(d, counts); rows < need || cols != d.Dim() {
		panic(fmt.Sprintf("domain: point batch is %dx%d, combination needs %dx%d", rows, cols, need, d.Dim()))
	}

	aoff, poff := 0, 0
	for i, c := range counts {
		for n := 0; n < c; n++ {
			d.ExpandOrbit(i, aoff, poff, args, pts)
			aoff += d.ParamsForOrbit(i)
			poff += d.PointsForOrbit(i)
		}
	}
}

// Clamp projects every per-instance slice of args back into its feasible
// region, in place. Applied after each unconstrained solver update.
func Clamp(d Domain, counts []int, args []float64) {
	eachInstance(d, counts, args, d.ClampOrbit)
}

// Canon rewrites every per-instance slice of args into its canonical
// representative, in place. Applied periodically so relabeling-symmetric
// parameterizations never survive as distinct solver states.
func Canon(d Domain, counts []int, args []float64) {
	eachInstance(d, counts, args, d.CanonOrbit)
}

// eachInstance applies op to every orbit instance's parameter slice.
func eachInstance(d Domain, counts []int, args []float64, op func(i, aoff int, args []float64)) {
	if need := ParamCount(d, counts); len(args) < need {
		panic(fmt.Sprintf("domain: args holds %d parameters, combination needs %d", len(args), need))
	}

	aoff := 0
	for i, c := range counts {
		for n := 0; n < c; n++ {
			op(i, aoff, args)
			aoff += d.ParamsForOrbit(i)
		}
	}
}

// checkCounts validates the counts vector shape shared by every helper.
func checkCounts(d Domain, counts []int) {
	if len(counts) != d.OrbitCount() {
		panic(fmt.Sprintf("domain: counts has %d kinds, catalog has %d", len(counts), d.OrbitCount()))
	}
	for i, c := range counts {
		if c < 0 {
			panic(fmt.Sprintf("domain: negative count %d for orbit kind %d", c, i))
		}
	}
}
