// SPDX-License-Identifier: MIT

// Package matrix provides a small dense linear-algebra kernel used to solve
// the square collocation systems that arise when interpolating data with a
// B-spline.
//
// 🚀 What is inside?
//
//	• Dense: row-major float64 storage with safe At/Set accessors
//	• LU: Doolittle factorization A = L·U (unit lower L, upper U)
//	• Solve: LU followed by forward and backward substitution
//	• MatVec: y = A·x, used to check residuals
//	• Validators: one source of truth for nil/shape/length checks
//
// ✨ Why no pivoting?
//
//	B-spline collocation matrices are totally positive, so Gaussian
//	elimination without row exchanges is stable for them (de Boor). Keeping
//	the elimination order fixed makes the kernel fully deterministic: the
//	same input always yields bit-identical factors.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sinspline/matrix"
//
//	a, _ := matrix.NewDenseFrom(2, 2, []float64{4, 1, 2, 3})
//	x, err := matrix.Solve(a, []float64{1, 2})
//
// Errors:
//
//	Every failure is a package sentinel (ErrSingular, ErrDimensionMismatch, …)
//	wrapped with an operation tag; match with errors.Is.
//
// Complexity:
//
//   - LU:    O(n³) time, O(n²) memory
//   - Solve: O(n³) time (factorization) + O(n²) substitution
package matrix
