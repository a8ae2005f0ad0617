// Package orthopoly evaluates classical orthogonal polynomial families at
// fixed batches of abscissae via their three-term recurrences.
//
// 🚀 Why batches?
//
//	Quadrature basis assembly evaluates the same polynomial sequence at
//	every candidate point of a rule, degree after degree. Each evaluator
//	here is therefore bound to a batch of abscissae at construction and
//	advances its recurrence one degree at a time, caching every degree it
//	has produced so that At(n) is O(1) for any degree already visited.
//
// Families provided:
//   - Jacobi   — P_n^(α,β), the weighted family on [-1,1] with weight
//     (1-x)^α (1+x)^β, for α, β > -1
//   - Legendre — P_n, the α=β=0 member, with its simpler dedicated
//     recurrence
//
// Evaluators are cheap to construct and not safe for concurrent use; build
// one per goroutine (they share no state).
//
// Errors: a negative degree is a programmer error and panics. No operation
// returns an error.
package orthopoly
