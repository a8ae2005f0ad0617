// Package polyquad provides the symmetry primitives behind fully symmetric
// numerical-integration (quadrature) rules on reference polytopes.
//
// 🚀 What is Polyquad?
//
//	A quadrature rule is a minimal set of weighted points that integrates
//	every polynomial up to a target degree exactly. Polyquad searches for
//	such rules by exploiting the point-group symmetry of each reference
//	domain: candidate points are grouped into "orbits" — families of points
//	related by the domain's symmetry transformations and described by a
//	small parameter vector rather than by independent coordinates.
//
// This module is the per-shape core the surrounding nonlinear solver calls
// into. It is organized under three subpackages:
//
//	domain/    — the shape-agnostic contract: orbit catalog descriptor,
//	             expansion, seeding, clamping, canonicalization, basis
//	             evaluation, plus whole-rule iteration helpers
//	orthopoly/ — incremental Jacobi and Legendre recurrence evaluators
//	             over point batches
//	prism/     — the triangular-prism instantiation of the contract
//
// ✨ Design guarantees:
//   - Stateless & allocation-shy — every operation is an in-place
//     transformation over caller-supplied buffers
//   - Deterministic — randomness enters only through an injected source
//   - Fail-loud — orbit-catalog contract violations panic immediately;
//     no errors cross the boundary on the normal path
//
// The solver itself — orbit-combination enumeration, residual iteration,
// rule persistence — lives outside this module and is generic over
// domain.Domain.
package polyquad
