package bspline

import (
	"fmt"
	"strings"
)

// EvalMode controls how the Cox–de Boor recursion is carried out.
//
//   - Recursive: the literal double recursion. Overlapping subproblems are
//     recomputed; cost grows as 2^degree per basis value.
//
//   - Memoized: the same recursion, caching B(k,i,x) per (k,i) for the
//     duration of one evaluation. Same results, linear cost in degree.
type EvalMode int

const (
	// Recursive evaluates the naive double recursion.
	Recursive EvalMode = iota

	// Memoized caches intermediate basis values within one evaluation call.
	Memoized
)

// String returns the mode name.
func (m EvalMode) String() string {
	switch m {
	case Recursive:
		return "recursive"
	case Memoized:
		return "memoized"
	default:
		return "unknown"
	}
}

// ParseEvalMode maps "recursive" or "memoized" (any case) to an EvalMode.
// The empty string means Recursive.
func ParseEvalMode(s string) (EvalMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "recursive":
		return Recursive, nil
	case "memoized":
		return Memoized, nil
	default:
		return Recursive, fmt.Errorf("%w: %q", ErrBadMode, s)
	}
}

// Options configures a Spline.
//
// Fields:
//   - Mode: Recursive (default) or Memoized.
//
// Example:
//
//	opts := bspline.DefaultOptions()
//	opts.Mode = bspline.Memoized
//	s, err := bspline.New(t, c, 3, &opts)
type Options struct {
	Mode EvalMode
}

// DefaultOptions returns Options with Mode = Recursive.
func DefaultOptions() Options {
	return Options{Mode: Recursive}
}
