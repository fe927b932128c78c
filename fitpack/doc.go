// Package fitpack derives interpolating B-splines from sample points and
// evaluates them with de Boor's algorithm.
//
// It is the library side of the "reference implementation + oracle" pair:
// bspline evaluates a spline from the literal Cox–de Boor recursion, fitpack
// computes the knots and coefficients and evaluates the same spline with an
// independent, numerically stable triangular scheme. The two share nothing but
// the knot and coefficient slices.
//
// Fit follows the classic FITPACK placement for interpolation (s = 0):
//
//	t = [x0 × (d+1), interior…, x_{m-1} × (d+1)],  len(t) = m + d + 1
//	odd d:  interior = x[d/2+1 … m−d/2−2]
//	even d: interior = midpoints (x[j−1]+x[j])/2, j = d/2+1 …
//
// and solves the m×m collocation system Σ c_i·B_i(x_j) = y_j with an LU
// factorization from package matrix.
//
// Eval closes the last knot interval and extrapolates outside [t[d], t[n]]
// with the end polynomial pieces, so Eval(t[n]) is the limiting value.
package fitpack
