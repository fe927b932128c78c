package fitpack

import (
	"fmt"
	"math"
)

// checkSpline validates (t, c, k) for evaluation and returns n = len(t)−k−1.
func checkSpline(t, c []float64, k int) (int, error) {
	if k < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrBadDegree, k)
	}
	n := len(t) - k - 1
	if n < k+1 {
		return 0, fmt.Errorf("%w: %d knots, degree %d", ErrTooFewKnots, len(t), k)
	}
	if len(c) < n {
		return 0, fmt.Errorf("%w: %d coefficients, %d basis functions", ErrCoefficientCount, len(c), n)
	}
	if !(t[k] < t[n]) {
		return 0, fmt.Errorf("%w: t[%d]=%g, t[%d]=%g", ErrEmptySpan, k, t[k], n, t[n])
	}

	return n, nil
}

// findInterval returns l with t[l] ≤ x < t[l+1] and k ≤ l ≤ n−1.
// x below t[k] maps to the first interval, x at or above t[n] to the last
// non-degenerate one, which closes the right end of the span.
func findInterval(t []float64, k, n int, x float64) int {
	if x >= t[n] {
		l := n - 1
		for l > k && t[l] == t[n] {
			l--
		}

		return l
	}
	if x < t[k] {
		l := k
		for l < n-1 && t[l+1] == t[k] {
			l++
		}

		return l
	}

	// Binary search on [k, n): invariant t[lo] ≤ x < t[hi].
	lo, hi := k, n
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= t[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}

// basisFuns returns the k+1 non-zero basis values B(k, l−k+r, x), r = 0..k,
// for the knot interval l, using the stable triangular recurrence.
func basisFuns(t []float64, k, l int, x float64) []float64 {
	nb := make([]float64, k+1)
	left := make([]float64, k+1)
	right := make([]float64, k+1)
	nb[0] = 1.0
	for j := 1; j <= k; j++ {
		left[j] = x - t[l+1-j]
		right[j] = t[l+j] - x
		saved := 0.0
		for r := 0; r < j; r++ {
			tmp := nb[r] / (right[r+1] + left[j-r])
			nb[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		nb[j] = saved
	}

	return nb
}

// Eval returns the spline value at x using de Boor's algorithm.
//
// Errors:
//   - ErrBadDegree, ErrTooFewKnots, ErrCoefficientCount, ErrEmptySpan.
//   - ErrNonFinite when x is NaN.
//
// Complexity: O(k² + log n).
func Eval(x float64, knots, coefs []float64, degree int) (float64, error) {
	n, err := checkSpline(knots, coefs, degree)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(x) {
		return 0, ErrNonFinite
	}

	return deBoor(x, knots, coefs, degree, findInterval(knots, degree, n, x)), nil
}

// deBoor runs the triangular scheme on interval l.
func deBoor(x float64, t, c []float64, k, l int) float64 {
	d := make([]float64, k+1)
	copy(d, c[l-k:l+1])
	for r := 1; r <= k; r++ {
		for j := k; j >= r; j-- {
			lo := t[j+l-k]
			alpha := (x - lo) / (t[j+1+l-r] - lo)
			d[j] = (1-alpha)*d[j-1] + alpha*d[j]
		}
	}

	return d[k]
}

// EvalCurve evaluates the spline at every x in xs.
func EvalCurve(xs, knots, coefs []float64, degree int) ([]float64, error) {
	n, err := checkSpline(knots, coefs, degree)
	if err != nil {
		return nil, err
	}

	ys := make([]float64, len(xs))
	for j, x := range xs {
		if math.IsNaN(x) {
			return nil, fmt.Errorf("%w: xs[%d]", ErrNonFinite, j)
		}
		ys[j] = deBoor(x, knots, coefs, degree, findInterval(knots, degree, n, x))
	}

	return ys, nil
}
