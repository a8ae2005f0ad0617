package orthopoly

import "fmt"

// Legendre evaluates the Legendre polynomial family P_n at a fixed batch of
// abscissae. It is the (α,β) = (0,0) member of the Jacobi family with the
// classical two-coefficient recurrence:
//
//	n·P_n = (2n-1)·x·P_{n-1} - (n-1)·P_{n-2}
//
// seeded by P_0 = 1 and P_1 = x. Caching behaves as in Jacobi.
type Legendre struct {
	x    []float64
	vals [][]float64
}

// NewLegendre binds a Legendre evaluator to the abscissae x. The batch is
// referenced, not copied.
func NewLegendre(x []float64) *Legendre {
	return &Legendre{x: x}
}

// At returns P_n evaluated at every abscissa of the batch, in batch order.
// The returned slice is owned by the evaluator; callers must treat it as
// read-only.
//
// Panics if n < 0.
func (p *Legendre) At(n int) []float64 {
	if n < 0 {
		panic(fmt.Sprintf("orthopoly: negative Legendre degree %d", n))
	}
	for len(p.vals) <= n {
		p.vals = append(p.vals, p.next())
	}
	return p.vals[n]
}

// next produces the values for degree len(p.vals) from the cached tail.
func (p *Legendre) next() []float64 {
	n := len(p.vals)
	out := make([]float64, len(p.x))

	switch n {
	case 0:
		for k := range out {
			out[k] = 1
		}
	case 1:
		copy(out, p.x)
	default:
		fn := float64(n)
		pm1, pm2 := p.vals[n-1], p.vals[n-2]
		for k, x := range p.x {
			out[k] = ((2*fn-1)*x*pm1[k] - (fn-1)*pm2[k]) / fn
		}
	}

	return out
}
