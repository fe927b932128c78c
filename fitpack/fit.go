package fitpack

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sinspline/matrix"
)

// Fit returns the knot vector and coefficients of the degree-d B-spline that
// interpolates (xs[j], ys[j]) for every j.
//
// Contract:
//   - len(knots) == len(xs) + degree + 1
//   - len(coefs) == len(xs)
//
// Errors:
//   - ErrLengthMismatch, ErrBadDegree, ErrTooFewPoints, ErrNotIncreasing, ErrNonFinite.
//   - matrix.ErrSingular (wrapped) if the collocation system cannot be factorized.
//   - ErrResidual if the solution does not reproduce ys.
//
// Complexity: O(m³) for the dense solve, m = len(xs).
func Fit(xs, ys []float64, degree int) (knots, coefs []float64, err error) {
	if err = checkSamples(xs, ys, degree); err != nil {
		return nil, nil, err
	}

	knots = InterpolationKnots(xs, degree)
	m := len(xs)
	n := len(knots) - degree - 1 // == m

	a, err := matrix.NewDense(m, m)
	if err != nil {
		return nil, nil, fmt.Errorf("fitpack: collocation matrix: %w", err)
	}
	for j, x := range xs {
		l := findInterval(knots, degree, n, x)
		for r, v := range basisFuns(knots, degree, l, x) {
			if err = a.Set(j, l-degree+r, v); err != nil {
				return nil, nil, fmt.Errorf("fitpack: collocation row %d: %w", j, err)
			}
		}
	}

	coefs, err = matrix.Solve(a, ys)
	if err != nil {
		return nil, nil, fmt.Errorf("fitpack: collocation solve: %w", err)
	}
	if err = checkResidual(a, coefs, ys); err != nil {
		return nil, nil, err
	}

	return knots, coefs, nil
}

// residualTol bounds max|A·c − y| relative to 1 + max|y|.
const residualTol = 1e-8

// checkResidual reports ErrResidual when the solved coefficients do not
// reproduce the samples.
func checkResidual(a matrix.Matrix, coefs, ys []float64) error {
	got, err := matrix.MatVec(a, coefs)
	if err != nil {
		return fmt.Errorf("fitpack: residual: %w", err)
	}
	scale := 1.0
	worst := 0.0
	for j := range ys {
		scale = math.Max(scale, 1+math.Abs(ys[j]))
		worst = math.Max(worst, math.Abs(got[j]-ys[j]))
	}
	if worst > residualTol*scale {
		return fmt.Errorf("%w: max residual %g", ErrResidual, worst)
	}

	return nil
}

// checkSamples validates Fit input.
func checkSamples(xs, ys []float64, degree int) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xs), len(ys))
	}
	if degree < 1 {
		return fmt.Errorf("%w: got %d", ErrBadDegree, degree)
	}
	if len(xs) < degree+1 {
		return fmt.Errorf("%w: %d points, degree %d", ErrTooFewPoints, len(xs), degree)
	}
	for j := range xs {
		if math.IsNaN(xs[j]) || math.IsInf(xs[j], 0) || math.IsNaN(ys[j]) || math.IsInf(ys[j], 0) {
			return fmt.Errorf("%w: sample %d", ErrNonFinite, j)
		}
		if j > 0 && !(xs[j] > xs[j-1]) {
			return fmt.Errorf("%w: xs[%d]=%g, xs[%d]=%g", ErrNotIncreasing, j-1, xs[j-1], j, xs[j])
		}
	}

	return nil
}

// InterpolationKnots places the knots for interpolating xs with a degree-d
// spline: d+1 boundary knots at each end and m−d−1 interior knots taken from
// the data (odd d) or from midpoints between consecutive samples (even d).
// xs must hold at least d+1 strictly increasing values.
func InterpolationKnots(xs []float64, degree int) []float64 {
	m := len(xs)
	t := make([]float64, 0, m+degree+1)
	for i := 0; i <= degree; i++ {
		t = append(t, xs[0])
	}

	half := degree / 2
	for l := 0; l < m-degree-1; l++ {
		j := half + 1 + l
		if degree%2 == 1 {
			t = append(t, xs[j])
		} else {
			t = append(t, (xs[j]+xs[j-1])*0.5)
		}
	}

	for i := 0; i <= degree; i++ {
		t = append(t, xs[m-1])
	}

	return t
}
