package sinspline

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Target is the function being approximated together with its domain.
// It is passed into construction explicitly; nothing is read from globals.
type Target struct {
	Name  string                  // label for plots, e.g. "sin(5x)·cos²(x)"
	F     func(x float64) float64 // must be pure
	Lower float64
	Upper float64
}

// DefaultTarget returns f(x) = sin(5x)·cos²(x) on [0, 2π].
func DefaultTarget() Target {
	return Target{
		Name: "sin(5x)·cos²(x)",
		F: func(x float64) float64 {
			c := math.Cos(x)
			return math.Sin(5*x) * c * c
		},
		Lower: 0,
		Upper: 2 * math.Pi,
	}
}

// Validate reports ErrInvalidParameters for a nil function, non-finite bounds
// or Lower >= Upper.
func (t Target) Validate() error {
	if t.F == nil {
		return fmt.Errorf("%w: target function is nil", ErrInvalidParameters)
	}
	if math.IsNaN(t.Lower) || math.IsInf(t.Lower, 0) || math.IsNaN(t.Upper) || math.IsInf(t.Upper, 0) {
		return fmt.Errorf("%w: domain bounds must be finite", ErrInvalidParameters)
	}
	if !(t.Lower < t.Upper) {
		return fmt.Errorf("%w: domain [%g, %g] is empty", ErrInvalidParameters, t.Lower, t.Upper)
	}

	return nil
}

// Sample returns n ≥ 2 evenly spaced points over [Lower, Upper] with f(x).
// Both end points are included exactly.
func (t Target) Sample(n int) Series {
	xs := floats.Span(make([]float64, n), t.Lower, t.Upper)
	xs[n-1] = t.Upper // the last tick must coincide with the last knot

	ys := make([]float64, n)
	for i, x := range xs {
		ys[i] = t.F(x)
	}

	return Series{X: xs, Y: ys}
}
