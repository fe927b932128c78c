// Package bspline evaluates B-spline curves from scratch with the recursive
// Cox–de Boor formula.
//
// 🚀 What is a B-spline?
//
//	A B-spline of degree d is a piecewise polynomial S(x) = Σ c[i]·B(d,i,x)
//	built from a non-decreasing knot vector t and a coefficient vector c.
//	The basis functions B(k,i,x) are defined recursively:
//
//	  B(0,i,x) = 1 if t[i] ≤ x < t[i+1], else 0
//	  B(k,i,x) = (x−t[i])/(t[i+k]−t[i])·B(k−1,i,x)
//	           + (t[i+k+1]−x)/(t[i+k+1]−t[i+1])·B(k−1,i+1,x)
//
//	where a term whose denominator is zero (a degenerate knot span) is 0.
//
// ✨ Key features:
//   - Recursive mode: the literal double recursion, O(2^d) calls per basis value.
//   - Memoized mode: the same recursion with a per-call (k,i) table; results are
//     bit-identical to Recursive because every value is computed by the same
//     arithmetic exactly once.
//   - BasisSum probe for partition-of-unity checks.
//
// ⚠️ Right boundary:
//
//	The degree-0 interval is half-open, so at the last knot every basis value is 0
//	and S(t[len(t)-1]) == 0 rather than the limiting value from the left. This is
//	the literal definition and is kept as is; fitpack.Eval closes the last
//	interval instead, so the two differ exactly there.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sinspline/bspline"
//
//	s, err := bspline.New(knots, coefs, 3, nil)
//	if err != nil { ... }
//	y := s.Eval(1.25)
//	ys := s.Curve(xs)
//
// Performance:
//
//   - Recursive: O(n·2^d) per point, n = len(t)−d−1
//   - Memoized:  O(n·d) per point, O(d·len(t)) scratch per call
//
// Intended for demo-scale work (d ≤ 5, thousands of points).
package bspline
