package bspline

import (
	"fmt"
	"math"
)

// Spline is an immutable B-spline S(x) = Σ_{i<n} c[i]·B(d,i,x), n = len(t)−d−1.
// It is safe for concurrent use.
type Spline struct {
	knots  []float64
	coefs  []float64 // first n coefficients only
	degree int
	n      int
	mode   EvalMode
}

// New validates and copies the knot and coefficient vectors.
//
// Preconditions (checked):
//   - degree ≥ 1                         (ErrBadDegree)
//   - n = len(knots)−degree−1 ≥ degree+1 (ErrTooFewKnots)
//   - len(coefs) ≥ n                     (ErrCoefficientCount)
//   - knots non-decreasing               (ErrKnotOrder)
//   - all knots and used coefficients finite (ErrNonFinite)
//
// Extra trailing coefficients (padding) are ignored. opts may be nil.
func New(knots, coefs []float64, degree int, opts *Options) (*Spline, error) {
	mode := Recursive
	if opts != nil {
		mode = opts.Mode
	}
	if mode != Recursive && mode != Memoized {
		return nil, fmt.Errorf("%w: %d", ErrBadMode, mode)
	}
	if degree < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDegree, degree)
	}

	n := len(knots) - degree - 1
	if n < degree+1 {
		return nil, fmt.Errorf("%w: %d knots, degree %d", ErrTooFewKnots, len(knots), degree)
	}
	if len(coefs) < n {
		return nil, fmt.Errorf("%w: %d coefficients, %d basis functions", ErrCoefficientCount, len(coefs), n)
	}

	for i, v := range knots {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: knot %d", ErrNonFinite, i)
		}
		if i > 0 && v < knots[i-1] {
			return nil, fmt.Errorf("%w: t[%d]=%g < t[%d]=%g", ErrKnotOrder, i, v, i-1, knots[i-1])
		}
	}
	for i := 0; i < n; i++ {
		if math.IsNaN(coefs[i]) || math.IsInf(coefs[i], 0) {
			return nil, fmt.Errorf("%w: coefficient %d", ErrNonFinite, i)
		}
	}

	s := &Spline{
		knots:  make([]float64, len(knots)),
		coefs:  make([]float64, n),
		degree: degree,
		n:      n,
		mode:   mode,
	}
	copy(s.knots, knots)
	copy(s.coefs, coefs[:n])

	return s, nil
}

// Degree returns d.
func (s *Spline) Degree() int { return s.degree }

// NumBasis returns n = len(t)−d−1.
func (s *Spline) NumBasis() int { return s.n }

// Mode returns the evaluation mode.
func (s *Spline) Mode() EvalMode { return s.mode }

// Knots returns a copy of the knot vector.
func (s *Spline) Knots() []float64 {
	out := make([]float64, len(s.knots))
	copy(out, s.knots)

	return out
}

// Coefficients returns a copy of the n used coefficients.
func (s *Spline) Coefficients() []float64 {
	out := make([]float64, len(s.coefs))
	copy(out, s.coefs)

	return out
}

// Domain returns [t[d], t[n]], the span where the basis sums to one.
func (s *Spline) Domain() (lo, hi float64) {
	return s.knots[s.degree], s.knots[s.n]
}

// Basis returns B(d,i,x) for 0 ≤ i < n.
func (s *Spline) Basis(i int, x float64) (float64, error) {
	if i < 0 || i >= s.n {
		return 0, ErrBasisIndex
	}
	if s.mode == Memoized {
		return newBasisTable(x, s.knots, s.degree).at(s.degree, i), nil
	}

	return basisRecursive(s.degree, i, x, s.knots), nil
}

// Eval returns S(x) = Σ_{i<n} c[i]·B(d,i,x).
// At x == t[len(t)−1] every basis value is 0, so Eval returns 0 there.
func (s *Spline) Eval(x float64) float64 {
	var sum float64
	if s.mode == Memoized {
		bt := newBasisTable(x, s.knots, s.degree)
		for i := 0; i < s.n; i++ {
			sum += s.coefs[i] * bt.at(s.degree, i)
		}

		return sum
	}

	for i := 0; i < s.n; i++ {
		sum += s.coefs[i] * basisRecursive(s.degree, i, x, s.knots)
	}

	return sum
}

// BasisSum returns Σ_{i<n} B(d,i,x). It is 1 on [t[d], t[n]) up to rounding.
func (s *Spline) BasisSum(x float64) float64 {
	var sum float64
	if s.mode == Memoized {
		bt := newBasisTable(x, s.knots, s.degree)
		for i := 0; i < s.n; i++ {
			sum += bt.at(s.degree, i)
		}

		return sum
	}

	for i := 0; i < s.n; i++ {
		sum += basisRecursive(s.degree, i, x, s.knots)
	}

	return sum
}

// Curve evaluates S at every x in xs. The result has len(xs) values.
func (s *Spline) Curve(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for j, x := range xs {
		ys[j] = s.Eval(x)
	}

	return ys
}
