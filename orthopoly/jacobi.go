package orthopoly

import "fmt"

// Jacobi evaluates the Jacobi polynomial family P_n^(α,β) at a fixed batch
// of abscissae.
//
// Recurrence (n ≥ 2, with s = α+β):
//
//	2n(n+s)(2n+s-2)·P_n = (2n+s-1)·[(2n+s)(2n+s-2)·x + α²-β²]·P_{n-1}
//	                      - 2(n+α-1)(n+β-1)(2n+s)·P_{n-2}
//
// seeded by P_0 = 1 and P_1 = ((s+2)·x + α-β)/2.
//
// Every degree computed so far is cached, so interleaved and repeated At
// calls cost one recurrence step per new degree and nothing otherwise.
type Jacobi struct {
	alpha, beta float64
	x           []float64
	vals        [][]float64 // vals[n][k] = P_n(x[k])
}

// NewJacobi binds a Jacobi evaluator with parameters (alpha, beta) to the
// abscissae x. The batch is referenced, not copied; callers must not mutate
// x while the evaluator is live.
//
// Panics if alpha ≤ -1 or beta ≤ -1 (the family is undefined there).
func NewJacobi(alpha, beta float64, x []float64) *Jacobi {
	if alpha <= -1 || beta <= -1 {
		panic(fmt.Sprintf("orthopoly: Jacobi parameters must exceed -1, got (%g, %g)", alpha, beta))
	}
	return &Jacobi{alpha: alpha, beta: beta, x: x}
}

// At returns P_n^(α,β) evaluated at every abscissa of the batch, in batch
// order. The returned slice is owned by the evaluator; callers must treat
// it as read-only.
//
// Panics if n < 0.
func (p *Jacobi) At(n int) []float64 {
	if n < 0 {
		panic(fmt.Sprintf("orthopoly: negative Jacobi degree %d", n))
	}
	for len(p.vals) <= n {
		p.vals = append(p.vals, p.next())
	}
	return p.vals[n]
}

// next produces the values for degree len(p.vals) from the cached tail.
func (p *Jacobi) next() []float64 {
	n := len(p.vals)
	out := make([]float64, len(p.x))

	switch n {
	case 0:
		for k := range out {
			out[k] = 1
		}
	case 1:
		for k, x := range p.x {
			out[k] = ((p.alpha+p.beta+2)*x + p.alpha - p.beta) / 2
		}
	default:
		fn, s := float64(n), p.alpha+p.beta
		// Scalar recurrence coefficients; only the x term varies per point.
		a0 := 2 * fn * (fn + s) * (2*fn + s - 2)
		a1 := (2*fn + s - 1) * (p.alpha*p.alpha - p.beta*p.beta)
		a2 := (2*fn + s - 1) * (2*fn + s) * (2*fn + s - 2)
		a3 := 2 * (fn + p.alpha - 1) * (fn + p.beta - 1) * (2*fn + s)

		pm1, pm2 := p.vals[n-1], p.vals[n-2]
		for k, x := range p.x {
			out[k] = ((a1+a2*x)*pm1[k] - a3*pm2[k]) / a0
		}
	}

	return out
}
