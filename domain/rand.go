package domain

import "math/rand/v2"

// Rand is the uniform entropy source injected into seeding operations.
//
// Keeping the source an explicit argument (rather than process-global
// state) keeps domains pure and lets tests drive seeding with a fixed
// stream. Implementations need not be safe for concurrent use; solvers
// that parallelize seeding must give each worker its own source.
type Rand interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64

	// Uniform returns a uniform draw in [lo, hi).
	Uniform(lo, hi float64) float64
}

// pcgRand adapts math/rand/v2's PCG generator to the Rand contract.
type pcgRand struct {
	r *rand.Rand
}

// NewRand returns a deterministic Rand seeded from seed. Two sources built
// from the same seed produce identical draw streams.
func NewRand(seed uint64) Rand {
	return &pcgRand{r: rand.New(rand.NewPCG(seed, seed))}
}

func (p *pcgRand) Float64() float64 { return p.r.Float64() }

func (p *pcgRand) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*p.r.Float64()
}
