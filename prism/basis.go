package prism

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/WillTrojak/Polyquad/orthopoly"
)

// BasisSize reports the number of orthonormal basis functions spanning
// polynomials of total degree ≤ qdeg on the prism. The enumeration runs
// i over even values 0..qdeg, j over i..qdeg-i, and k over even values
// 0..qdeg-i-j; odd i and k are absent because the corresponding components
// vanish under the prism's reflective symmetries.
//
// Panics if qdeg < 0.
func (Domain) BasisSize(qdeg int) int {
	checkDegree(qdeg)

	n := 0
	for i := 0; i <= qdeg; i += 2 {
		for j := i; j <= qdeg-i; j++ {
			for k := 0; k <= qdeg-i-j; k += 2 {
				n++
			}
		}
	}
	return n
}

// EvalOrthoBasis writes into out the orthonormal basis values for the
// point batch pts, one row per basis function in BasisSize enumeration
// order, one column per point. pts carries one point per row in the
// prism's native (x, y, z) coordinates; out must be BasisSize(qdeg) rows
// by pts-row-count columns.
//
// The batch is first collapsed to the tensor coordinates
//
//	a = 2(1+x)/(1-y) - 1,  b = y,  c = z
//
// with a taken as 0 on the degenerate edge y = 1 (a removable singularity:
// the (1-b)^i factor annihilates the a-dependence there, so the substitute
// value is a fixed numerical convention, not an approximation). The basis
// value for the triple (i,j,k) is
//
//	cᵢⱼₖ · (1-b)^i · P_i(a) · P_j^(2i+1,0)(b) · P_k(c)
//
// where cᵢⱼₖ = f·sqrt((2i+1)(2k+1)(i+j+1)) and both f (starting at 1/2,
// divided by 4 per outer step) and (1-b)^i are accumulated across the
// outer loop rather than recomputed.
func (d Domain) EvalOrthoBasis(qdeg int, pts mat.Matrix, out *mat.Dense) {
	checkDegree(qdeg)

	npts, dim := pts.Dims()
	if dim != Dim {
		panic(fmt.Sprintf("prism: point batch has %d columns, want %d", dim, Dim))
	}
	if rows, cols := out.Dims(); rows != d.BasisSize(qdeg) || cols != npts {
		panic(fmt.Sprintf("prism: basis matrix is %dx%d, want %dx%d",
			rows, cols, d.BasisSize(qdeg), npts))
	}

	a := make([]float64, npts)
	b := make([]float64, npts)
	c := make([]float64, npts)
	for n := 0; n < npts; n++ {
		x, y, z := pts.At(n, 0), pts.At(n, 1), pts.At(n, 2)
		if y != 1 {
			a[n] = 2*(1+x)/(1-y) - 1
		}
		b[n] = y
		c[n] = z
	}

	pa := orthopoly.NewLegendre(a)
	pc := orthopoly.NewLegendre(c)

	// pow2 = 2^-(i+1); pow1mb[n] = (1-b[n])^i. Both advance with i.
	pow2 := 0.5
	pow1mb := make([]float64, npts)
	for n := range pow1mb {
		pow1mb[n] = 1
	}

	off := 0
	for i := 0; i <= qdeg; i += 2 {
		pb := orthopoly.NewJacobi(float64(2*i+1), 0, b)

		for j := i; j <= qdeg-i; j++ {
			for k := 0; k <= qdeg-i-j; k += 2 {
				cijk := pow2 * math.Sqrt(float64((2*i+1)*(2*k+1)*(i+j+1)))

				vi, vj, vk := pa.At(i), pb.At(j), pc.At(k)
				for n := 0; n < npts; n++ {
					out.Set(off, n, cijk*pow1mb[n]*vi[n]*vj[n]*vk[n])
				}
				off++
			}
		}

		for n := 0; n < npts; n++ {
			omb := 1 - b[n]
			pow1mb[n] *= omb * omb
		}
		pow2 /= 4
	}
}

// checkDegree panics on a negative target degree.
func checkDegree(qdeg int) {
	if qdeg < 0 {
		panic(fmt.Sprintf("prism: negative quadrature degree %d", qdeg))
	}
}
