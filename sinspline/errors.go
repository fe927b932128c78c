package sinspline

import "errors"

var (
	// ErrInvalidParameters indicates construction parameters that cannot describe
	// a spline: degree < 1, tickCount < 2, controlCount < degree+1, or a bad target.
	ErrInvalidParameters = errors.New("sinspline: invalid parameters")

	// ErrMalformedFitResult indicates the fitting collaborator returned knots and
	// coefficients that violate len(knots) == len(coefs) + degree + 1 (or are
	// otherwise unusable by the native evaluator).
	ErrMalformedFitResult = errors.New("sinspline: malformed fit result")

	// ErrEvaluation indicates the evaluation collaborator failed on a tick.
	ErrEvaluation = errors.New("sinspline: library evaluation failed")
)
