package sinspline

import (
	"fmt"

	"github.com/katalvlaran/sinspline/bspline"
)

// Model is an immutable B-spline approximation of a Target.
type Model struct {
	target  Target
	degree  int
	base    Series // ticks with f(x)
	control Series // control points with f(x)
	knots   []float64
	coefs   []float64
	spline  *bspline.Spline
	native  []float64 // spline at every tick, Cox–de Boor
	library []float64 // spline at every tick, evaluation collaborator
}

// NewDefault builds a Model for DefaultTarget.
func NewDefault(tickCount, controlCount, degree int, opts ...Option) (*Model, error) {
	return New(DefaultTarget(), tickCount, controlCount, degree, opts...)
}

// New samples the target, fits the control points and evaluates the fitted
// spline at every tick both natively and through the evaluation collaborator.
//
// Errors:
//   - ErrInvalidParameters: degree < 1, tickCount < 2, controlCount < degree+1,
//     or an invalid target; reported before any computation.
//   - ErrMalformedFitResult: the fit broke len(knots) == len(coefs)+degree+1,
//     returned the wrong number of coefficients, or knots the native evaluator rejects.
//   - ErrEvaluation: the evaluation collaborator failed.
//   - any error from the Fitter, wrapped.
func New(target Target, tickCount, controlCount, degree int, opts ...Option) (*Model, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateParams(target, tickCount, controlCount, degree); err != nil {
		return nil, err
	}

	m := &Model{
		target:  target,
		degree:  degree,
		base:    target.Sample(tickCount),
		control: target.Sample(controlCount),
	}

	knots, coefs, err := o.fitter.Fit(cloneFloats(m.control.X), cloneFloats(m.control.Y), degree)
	if err != nil {
		return nil, fmt.Errorf("sinspline: fit: %w", err)
	}
	if len(knots) != len(coefs)+degree+1 {
		return nil, fmt.Errorf("%w: %d knots, %d coefficients, degree %d",
			ErrMalformedFitResult, len(knots), len(coefs), degree)
	}
	if len(coefs) != controlCount {
		return nil, fmt.Errorf("%w: %d coefficients for %d control points",
			ErrMalformedFitResult, len(coefs), controlCount)
	}
	m.knots = cloneFloats(knots)
	m.coefs = cloneFloats(coefs)

	m.spline, err = bspline.New(m.knots, m.coefs, degree, &bspline.Options{Mode: o.mode})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedFitResult, err)
	}
	m.native = m.spline.Curve(m.base.X)

	m.library = make([]float64, tickCount)
	for i, x := range m.base.X {
		if m.library[i], err = o.evaluator.Eval(x, m.knots, m.coefs, degree); err != nil {
			return nil, fmt.Errorf("%w: tick %d (x=%g): %w", ErrEvaluation, i, x, err)
		}
	}

	return m, nil
}

// validateParams checks every construction precondition up front.
func validateParams(target Target, tickCount, controlCount, degree int) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if degree < 1 {
		return fmt.Errorf("%w: degree %d < 1", ErrInvalidParameters, degree)
	}
	if tickCount < 2 {
		return fmt.Errorf("%w: tick count %d < 2", ErrInvalidParameters, tickCount)
	}
	if controlCount < degree+1 {
		return fmt.Errorf("%w: %d control points cannot fit degree %d (need %d)",
			ErrInvalidParameters, controlCount, degree, degree+1)
	}

	return nil
}

// Target returns the approximated target.
func (m *Model) Target() Target { return m.target }

// Degree returns the spline degree.
func (m *Model) Degree() int { return m.degree }

// TickCount returns the number of ticks.
func (m *Model) TickCount() int { return m.base.Len() }

// ControlCount returns the number of control points.
func (m *Model) ControlCount() int { return m.control.Len() }

// EvalMode returns the native evaluation mode.
func (m *Model) EvalMode() bspline.EvalMode { return m.spline.Mode() }

// BaseCurve returns the ticks paired with the exact target values.
func (m *Model) BaseCurve() Series { return m.base.Clone() }

// ControlPoints returns the control points.
func (m *Model) ControlPoints() Series { return m.control.Clone() }

// Knots returns a copy of the fitted knot vector.
func (m *Model) Knots() []float64 { return cloneFloats(m.knots) }

// Coefficients returns a copy of the fitted coefficients.
func (m *Model) Coefficients() []float64 { return cloneFloats(m.coefs) }

// EvaluateNative returns the Cox–de Boor spline value at x.
func (m *Model) EvaluateNative(x float64) float64 { return m.spline.Eval(x) }

// NativeCurve returns the ticks paired with EvaluateNative at each tick.
func (m *Model) NativeCurve() Series {
	return Series{X: cloneFloats(m.base.X), Y: cloneFloats(m.native)}
}

// LibraryCurve returns the ticks paired with the evaluation collaborator's values.
func (m *Model) LibraryCurve() Series {
	return Series{X: cloneFloats(m.base.X), Y: cloneFloats(m.library)}
}

// KnotPoints returns each distinct knot with the native spline value there.
// The last knot reads 0 by the half-open base case.
func (m *Model) KnotPoints() Series {
	var s Series
	for i, t := range m.knots {
		if i > 0 && t == m.knots[i-1] {
			continue
		}
		s.X = append(s.X, t)
		s.Y = append(s.Y, m.spline.Eval(t))
	}

	return s
}
