// Package prism instantiates the quadrature domain contract for the
// reference triangular prism.
//
// 🚀 The reference prism
//
//	The domain is the tensor product of the reference triangle with
//	vertices (-1,-1), (1,-1), (-1,1) and the axial interval [-1,1]:
//	in-plane position is naturally barycentric over the triangle, axial
//	position is a plain coordinate z. A barycentric triple (p1,p2,p3)
//	with p1+p2+p3 = 1 embeds via the fixed linear map
//
//	  (x, y, z) = (-p1 + p2 - p3,  -p1 - p2 + p3,  z)
//
// The symmetry group is the triangle's three-fold dihedral symmetry
// crossed with the axial reflection z ↦ -z, giving six orbit kinds:
//
//	kind  points  params  generator
//	 0       1      0     centroid
//	 1       2      1     centroid at axial offsets ∓b
//	 2       3      1     cyclic images of (a, a, 1-2a), mid-plane
//	 3       6      2     kind 2 at axial offsets ∓b
//	 4       6      2     all images of (a, b, 1-a-b), mid-plane
//	 5      12      3     kind 4 at axial offsets ∓c
//
// Kinds 4 and 5 carry an internal relabeling symmetry — six parameter
// slices describe the same physical orbit — which CanonOrbit collapses to
// the two smallest barycentric values in ascending order.
//
// The orthonormal basis uses the collapsed coordinate system of the
// triangular cross-section: a = 2(1+x)/(1-y) - 1 (taken as 0 on the
// degenerate edge y = 1), b = y, c = z, combining even Legendre sequences
// along a and c with Jacobi (2i+1, 0) sequences along b. Only even degrees
// appear along a and c because odd components vanish under the reflective
// symmetries.
//
// All operations are stateless and offset-local; an orbit kind outside the
// catalog panics (see domain package docs for the contract).
package prism
