package fitpack

import "errors"

var (
	// ErrLengthMismatch indicates len(xs) != len(ys).
	ErrLengthMismatch = errors.New("fitpack: xs and ys must have the same length")

	// ErrBadDegree indicates a degree below 1.
	ErrBadDegree = errors.New("fitpack: degree must be >= 1")

	// ErrTooFewPoints indicates fewer than degree+1 sample points.
	ErrTooFewPoints = errors.New("fitpack: need at least degree+1 points")

	// ErrNotIncreasing indicates sample abscissae that are not strictly increasing.
	ErrNotIncreasing = errors.New("fitpack: xs must be strictly increasing")

	// ErrNonFinite indicates a NaN or ±Inf sample.
	ErrNonFinite = errors.New("fitpack: NaN or Inf in input")

	// ErrTooFewKnots indicates a knot vector with fewer than degree+1 basis functions.
	ErrTooFewKnots = errors.New("fitpack: knot vector too short for degree")

	// ErrCoefficientCount indicates fewer coefficients than basis functions.
	ErrCoefficientCount = errors.New("fitpack: fewer coefficients than basis functions")

	// ErrResidual indicates a collocation solution that misses the samples.
	ErrResidual = errors.New("fitpack: collocation residual too large")

	// ErrEmptySpan indicates t[d] == t[n], leaving no interval to evaluate on.
	ErrEmptySpan = errors.New("fitpack: knot span is empty")
)
