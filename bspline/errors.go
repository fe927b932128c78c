package bspline

import "errors"

var (
	// ErrBadDegree indicates a degree below 1.
	ErrBadDegree = errors.New("bspline: degree must be >= 1")

	// ErrTooFewKnots indicates len(t)-degree-1 < degree+1.
	ErrTooFewKnots = errors.New("bspline: knot vector too short for degree")

	// ErrCoefficientCount indicates fewer coefficients than basis functions.
	ErrCoefficientCount = errors.New("bspline: fewer coefficients than basis functions")

	// ErrKnotOrder indicates a knot vector that is not non-decreasing.
	ErrKnotOrder = errors.New("bspline: knots must be non-decreasing")

	// ErrNonFinite indicates a NaN or ±Inf knot or coefficient.
	ErrNonFinite = errors.New("bspline: NaN or Inf in knots or coefficients")

	// ErrBasisOrder indicates a negative basis order k.
	ErrBasisOrder = errors.New("bspline: basis order must be >= 0")

	// ErrBasisIndex indicates a basis index outside the knot vector.
	ErrBasisIndex = errors.New("bspline: basis index out of range")

	// ErrBadMode indicates an unknown EvalMode.
	ErrBadMode = errors.New("bspline: unknown evaluation mode")
)
