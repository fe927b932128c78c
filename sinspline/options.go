package sinspline

import (
	"github.com/katalvlaran/sinspline/bspline"
	"github.com/katalvlaran/sinspline/fitpack"
)

// Fitter derives a knot vector and coefficients from control points.
// Contract: len(knots) == len(xs)+degree+1 and len(coefs) == len(xs).
type Fitter interface {
	Fit(xs, ys []float64, degree int) (knots, coefs []float64, err error)
}

// FitterFunc adapts a plain function to Fitter.
type FitterFunc func(xs, ys []float64, degree int) ([]float64, []float64, error)

// Fit calls f.
func (f FitterFunc) Fit(xs, ys []float64, degree int) ([]float64, []float64, error) {
	return f(xs, ys, degree)
}

// Evaluator evaluates a fitted spline at one point. It is the oracle the
// native evaluator is compared against.
type Evaluator interface {
	Eval(x float64, knots, coefs []float64, degree int) (float64, error)
}

// EvaluatorFunc adapts a plain function to Evaluator.
type EvaluatorFunc func(x float64, knots, coefs []float64, degree int) (float64, error)

// Eval calls f.
func (f EvaluatorFunc) Eval(x float64, knots, coefs []float64, degree int) (float64, error) {
	return f(x, knots, coefs, degree)
}

// Option configures New.
type Option func(*options)

type options struct {
	fitter    Fitter
	evaluator Evaluator
	mode      bspline.EvalMode
}

func defaultOptions() options {
	return options{
		fitter:    FitterFunc(fitpack.Fit),
		evaluator: EvaluatorFunc(fitpack.Eval),
		mode:      bspline.Recursive,
	}
}

// WithFitter replaces the fitting collaborator. A nil f keeps the default.
func WithFitter(f Fitter) Option {
	return func(o *options) {
		if f != nil {
			o.fitter = f
		}
	}
}

// WithEvaluator replaces the evaluation collaborator. A nil e keeps the default.
func WithEvaluator(e Evaluator) Option {
	return func(o *options) {
		if e != nil {
			o.evaluator = e
		}
	}
}

// WithEvalMode selects how the native Cox–de Boor recursion runs.
func WithEvalMode(m bspline.EvalMode) Option {
	return func(o *options) { o.mode = m }
}
