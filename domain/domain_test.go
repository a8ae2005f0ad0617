package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/WillTrojak/Polyquad/domain"
	"github.com/WillTrojak/Polyquad/prism"
)

// TestNewRand_Deterministic verifies that equal seeds yield equal draw
// streams and that Uniform respects its half-open interval.
func TestNewRand_Deterministic(t *testing.T) {
	a := domain.NewRand(42)
	b := domain.NewRand(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64(), "draw %d", i)
	}

	c := domain.NewRand(7)
	for i := 0; i < 1000; i++ {
		v := c.Uniform(-2, 3)
		assert.GreaterOrEqual(t, v, -2.0)
		assert.Less(t, v, 3.0)
	}
}

// TestRuleSizeAndParamCount pins the combination bookkeeping against the
// prism catalog.
func TestRuleSizeAndParamCount(t *testing.T) {
	d := prism.New()

	counts := []int{1, 1, 1, 1, 1, 1}
	assert.Equal(t, 1+2+3+6+6+12, domain.RuleSize(d, counts))
	assert.Equal(t, 0+1+1+2+2+3, domain.ParamCount(d, counts))

	empty := []int{0, 0, 0, 0, 0, 0}
	assert.Equal(t, 0, domain.RuleSize(d, empty))
	assert.Equal(t, 0, domain.ParamCount(d, empty))

	multi := []int{0, 3, 0, 0, 2, 0}
	assert.Equal(t, 3*2+2*6, domain.RuleSize(d, multi))
	assert.Equal(t, 3*1+2*2, domain.ParamCount(d, multi))
}

// TestSeedExpandRoundTrip drives the whole-rule helpers over a mixed
// combination and checks the expanded batch is fully populated with
// feasible points.
func TestSeedExpandRoundTrip(t *testing.T) {
	d := prism.New()
	rng := domain.NewRand(2024)

	counts := []int{1, 2, 1, 0, 2, 1}
	args := make([]float64, domain.ParamCount(d, counts))
	domain.Seed(d, rng, counts, args)
	domain.Clamp(d, counts, args)
	domain.Canon(d, counts, args)

	npts := domain.RuleSize(d, counts)
	pts := mat.NewDense(npts, d.Dim(), nil)
	domain.Expand(d, counts, args, pts)

	for r := 0; r < npts; r++ {
		x, y, z := pts.At(r, 0), pts.At(r, 1), pts.At(r, 2)
		p1, p2, p3 := -(x+y)/2, (1+x)/2, (1+y)/2
		assert.InDelta(t, 1.0, p1+p2+p3, 1e-12, "row %d barycentric sum", r)
		assert.False(t, math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(z), "row %d", r)
		assert.LessOrEqual(t, math.Abs(z), 1.0, "row %d axial coordinate", r)
	}
}

// TestCanonStability verifies the helper's quotient behavior: canonicalizing
// an already-canonical vector changes nothing, and clamping after
// canonicalization is a no-op (canonical slices stay feasible).
func TestCanonStability(t *testing.T) {
	d := prism.New()

	counts := []int{0, 0, 0, 0, 1, 1}
	args := []float64{0.6, 0.1, 0.5, 0.2, 0.9}
	domain.Canon(d, counts, args)
	once := append([]float64(nil), args...)

	domain.Canon(d, counts, args)
	assert.Equal(t, once, args, "canonicalization must be idempotent")

	domain.Clamp(d, counts, args)
	assert.Equal(t, once, args, "canonical slices must remain feasible")
}

// TestContractViolationsPanic exercises the helper-level fail-loud paths:
// mis-shaped counts vectors and undersized buffers.
func TestContractViolationsPanic(t *testing.T) {
	d := prism.New()
	rng := domain.NewRand(1)

	assert.Panics(t, func() { domain.RuleSize(d, []int{1, 2, 3}) }, "short counts")
	assert.Panics(t, func() { domain.ParamCount(d, []int{1, 0, 0, 0, 0, 0, 0}) }, "long counts")
	assert.Panics(t, func() { domain.RuleSize(d, []int{0, -1, 0, 0, 0, 0}) }, "negative count")

	counts := []int{0, 0, 0, 0, 1, 0}
	assert.Panics(t, func() { domain.Seed(d, rng, counts, make([]float64, 1)) }, "short args")
	assert.Panics(t, func() {
		domain.Expand(d, counts, make([]float64, 2), mat.NewDense(3, 3, nil)) // 6 rows needed
	}, "short batch")
	assert.Panics(t, func() {
		domain.Expand(d, counts, make([]float64, 2), mat.NewDense(6, 2, nil)) // wrong dim
	}, "wrong batch width")
}
