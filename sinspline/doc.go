// Package sinspline builds B-spline approximations of a target function and
// evaluates them two ways for comparison.
//
// A Model is constructed once from (target, tickCount, controlCount, degree):
//
//	ticks: tickCount evenly spaced x over [Lower, Upper] with f(x)
//	control points: controlCount evenly spaced x over the same domain with f(x)
//	knots, coefs: fitted by the Fitter collaborator (fitpack.Fit by default)
//	native curve: Cox–de Boor recursion (package bspline) at every tick
//	library curve: Evaluator collaborator (fitpack.Eval by default) at every tick
//
// The model is immutable; every accessor returns a copy and may be called from
// many goroutines. A parameter change means constructing a new Model.
//
// The default target is f(x) = sin(5x)·cos²(x) on [0, 2π].
//
// Right boundary:
//
//	The native evaluator uses half-open knot intervals, so at the last tick
//	(x == Upper == last knot) the native curve reads 0 while the library curve
//	returns the limiting value. Compare reports that tick separately.
package sinspline
