package sinspline

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultTolerance is the agreement bound between native and library curves.
const DefaultTolerance = 1e-6

// Comparison summarizes native vs library evaluation over the ticks.
//
// The last tick sits on the last knot, where the native half-open base case
// yields 0; it is excluded from the interior statistics and reported on its own.
type Comparison struct {
	Tolerance       float64 `json:"tolerance"`
	MaxInterior     float64 `json:"maxInterior"`     // max |native−library| over all but the last tick
	WorstIndex      int     `json:"worstIndex"`      // tick index of MaxInterior
	RMSInterior     float64 `json:"rmsInterior"`     // root mean square of the same differences
	BoundaryNative  float64 `json:"boundaryNative"`  // native value at the last tick
	BoundaryLibrary float64 `json:"boundaryLibrary"` // library value at the last tick
	BoundaryDelta   float64 `json:"boundaryDelta"`   // |BoundaryNative−BoundaryLibrary|
	Agree           bool    `json:"agree"`           // MaxInterior <= Tolerance
}

// Compare measures how far the native curve is from the library curve.
// A non-positive or NaN tol means DefaultTolerance.
func (m *Model) Compare(tol float64) Comparison {
	if !(tol > 0) {
		tol = DefaultTolerance
	}

	last := len(m.native) - 1
	diff := make([]float64, len(m.native))
	floats.SubTo(diff, m.native, m.library)
	for i, d := range diff {
		diff[i] = math.Abs(d)
	}

	interior := diff[:last]
	worst := floats.MaxIdx(interior)

	c := Comparison{
		Tolerance:       tol,
		MaxInterior:     interior[worst],
		WorstIndex:      worst,
		RMSInterior:     floats.Norm(interior, 2) / math.Sqrt(float64(len(interior))),
		BoundaryNative:  m.native[last],
		BoundaryLibrary: m.library[last],
		BoundaryDelta:   diff[last],
	}
	c.Agree = c.MaxInterior <= tol

	return c
}

// ApproximationError returns max |spline−f| over the ticks (library values),
// i.e. how well the fitted spline tracks the target between control points.
func (m *Model) ApproximationError() float64 {
	return floats.Distance(m.library, m.base.Y, math.Inf(1))
}
