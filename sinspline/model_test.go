package sinspline_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/sinspline/bspline"
	"github.com/katalvlaran/sinspline/fitpack"
	"github.com/katalvlaran/sinspline/sinspline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustModel(t *testing.T, ticks, control, degree int, opts ...sinspline.Option) *sinspline.Model {
	t.Helper()
	m, err := sinspline.NewDefault(ticks, control, degree, opts...)
	require.NoError(t, err, "ticks=%d control=%d degree=%d", ticks, control, degree)

	return m
}

func TestNew_InvalidParameters(t *testing.T) {
	cases := []struct {
		name                   string
		ticks, control, degree int
	}{
		{"too few control points for cubic", 200, 2, 3},
		{"degree zero", 200, 10, 0},
		{"negative degree", 200, 10, -2},
		{"single tick", 1, 10, 2},
		{"control equals degree", 50, 5, 5},
	}
	for _, tc := range cases {
		_, err := sinspline.NewDefault(tc.ticks, tc.control, tc.degree)
		assert.ErrorIs(t, err, sinspline.ErrInvalidParameters, tc.name)
	}

	target := sinspline.DefaultTarget()
	target.F = nil
	_, err := sinspline.New(target, 10, 5, 2)
	assert.ErrorIs(t, err, sinspline.ErrInvalidParameters, "nil function")

	target = sinspline.DefaultTarget()
	target.Lower, target.Upper = 1, 1
	_, err = sinspline.New(target, 10, 5, 2)
	assert.ErrorIs(t, err, sinspline.ErrInvalidParameters, "empty domain")

	target.Upper = math.Inf(1)
	_, err = sinspline.New(target, 10, 5, 2)
	assert.ErrorIs(t, err, sinspline.ErrInvalidParameters, "infinite bound")
}

// TestNew_ReportsBeforeFitting makes sure parameter errors never reach the fitter.
func TestNew_ReportsBeforeFitting(t *testing.T) {
	called := false
	fitter := sinspline.FitterFunc(func(xs, ys []float64, degree int) ([]float64, []float64, error) {
		called = true
		return fitpack.Fit(xs, ys, degree)
	})

	_, err := sinspline.NewDefault(200, 2, 3, sinspline.WithFitter(fitter))
	assert.ErrorIs(t, err, sinspline.ErrInvalidParameters)
	assert.False(t, called)
}

func TestNew_MalformedFitResult(t *testing.T) {
	extraKnot := sinspline.FitterFunc(func(xs, ys []float64, degree int) ([]float64, []float64, error) {
		knots, coefs, err := fitpack.Fit(xs, ys, degree)
		return append(knots, knots[len(knots)-1]), coefs, err
	})
	_, err := sinspline.NewDefault(50, 7, 3, sinspline.WithFitter(extraKnot))
	assert.ErrorIs(t, err, sinspline.ErrMalformedFitResult)

	shortFit := sinspline.FitterFunc(func(xs, ys []float64, degree int) ([]float64, []float64, error) {
		knots, coefs, err := fitpack.Fit(xs, ys, degree)
		return knots[1:], coefs[1:], err
	})
	_, err = sinspline.NewDefault(50, 7, 3, sinspline.WithFitter(shortFit))
	assert.ErrorIs(t, err, sinspline.ErrMalformedFitResult, "coefficient count must match control points")

	unordered := sinspline.FitterFunc(func(xs, ys []float64, degree int) ([]float64, []float64, error) {
		knots, coefs, err := fitpack.Fit(xs, ys, degree)
		knots[4], knots[5] = knots[5], knots[4]
		return knots, coefs, err
	})
	_, err = sinspline.NewDefault(50, 7, 3, sinspline.WithFitter(unordered))
	assert.ErrorIs(t, err, sinspline.ErrMalformedFitResult)
	assert.ErrorIs(t, err, bspline.ErrKnotOrder)
}

func TestNew_CollaboratorErrors(t *testing.T) {
	failingFit := sinspline.FitterFunc(func([]float64, []float64, int) ([]float64, []float64, error) {
		return nil, nil, fitpack.ErrNotIncreasing
	})
	_, err := sinspline.NewDefault(50, 7, 3, sinspline.WithFitter(failingFit))
	assert.ErrorIs(t, err, fitpack.ErrNotIncreasing)

	failingEval := sinspline.EvaluatorFunc(func(float64, []float64, []float64, int) (float64, error) {
		return 0, fitpack.ErrEmptySpan
	})
	_, err = sinspline.NewDefault(50, 7, 3, sinspline.WithEvaluator(failingEval))
	assert.ErrorIs(t, err, sinspline.ErrEvaluation)
	assert.ErrorIs(t, err, fitpack.ErrEmptySpan)
}

func TestNew_LengthInvariant(t *testing.T) {
	for degree := 1; degree <= 5; degree++ {
		for _, control := range []int{degree + 1, degree + 2, 10, 25} {
			m := mustModel(t, 30, control, degree)
			assert.Len(t, m.Knots(), len(m.Coefficients())+degree+1)
			assert.Len(t, m.Coefficients(), control)
		}
	}
}

// TestModel_ConcreteScenario covers ticks=200, control=7, degree=3.
func TestModel_ConcreteScenario(t *testing.T) {
	m := mustModel(t, 200, 7, 3)

	native := m.NativeCurve()
	library := m.LibraryCurve()
	base := m.BaseCurve()
	require.Equal(t, 200, native.Len())
	require.Equal(t, 200, library.Len())
	assert.Equal(t, base.X, native.X)
	assert.Equal(t, 0.0, base.X[0])
	assert.Equal(t, 2*math.Pi, base.X[199])

	for i := 0; i < 199; i++ {
		assert.InDelta(t, library.Y[i], native.Y[i], 1e-6, "tick %d", i)
	}

	third := 2 * math.Pi / 3
	wantKnots := []float64{0, 0, 0, 0, third, math.Pi, 2 * third, 2 * math.Pi, 2 * math.Pi, 2 * math.Pi, 2 * math.Pi}
	assert.InDeltaSlice(t, wantKnots, m.Knots(), 1e-12)
	assert.InDeltaSlice(t, []float64{0, -0.204478, -0.348816, 0, 0.348816, 0.204478, 0}, m.Coefficients(), 1e-6)

	// The interpolating spline passes through every control point.
	cp := m.ControlPoints()
	for i := 0; i < cp.Len()-1; i++ {
		assert.InDelta(t, cp.Y[i], m.EvaluateNative(cp.X[i]), 1e-9, "control point %d", i)
	}
}

func TestModel_AgreementGrid(t *testing.T) {
	for degree := 1; degree <= 5; degree++ {
		for _, control := range []int{degree + 1, 8, 15, 40} {
			for _, ticks := range []int{2, 17, 200} {
				m := mustModel(t, ticks, control, degree)
				c := m.Compare(1e-6)
				assert.True(t, c.Agree, "ticks=%d control=%d degree=%d max=%g at %d",
					ticks, control, degree, c.MaxInterior, c.WorstIndex)
			}
		}
	}
}

func TestModel_DegreeOneInterpolates(t *testing.T) {
	for _, control := range []int{2, 5, 12, 33} {
		m := mustModel(t, 100, control, 1)
		cp := m.ControlPoints()
		for i := 0; i < cp.Len()-1; i++ {
			assert.InDelta(t, cp.Y[i], m.EvaluateNative(cp.X[i]), 1e-12, "control=%d point %d", control, i)
		}
		// Degree 1 coefficients are the control values themselves.
		assert.InDeltaSlice(t, cp.Y, m.Coefficients(), 1e-12)
	}
}

func TestModel_Deterministic(t *testing.T) {
	a := mustModel(t, 150, 11, 4)
	b := mustModel(t, 150, 11, 4)

	assert.Equal(t, a.Knots(), b.Knots())
	assert.Equal(t, a.Coefficients(), b.Coefficients())
	assert.Equal(t, a.NativeCurve(), b.NativeCurve())
	assert.Equal(t, a.LibraryCurve(), b.LibraryCurve())
	assert.Equal(t, a.BaseCurve(), b.BaseCurve())
}

func TestModel_MemoizedMatchesRecursive(t *testing.T) {
	rec := mustModel(t, 120, 9, 5)
	memo := mustModel(t, 120, 9, 5, sinspline.WithEvalMode(bspline.Memoized))

	assert.Equal(t, bspline.Memoized, memo.EvalMode())
	assert.Equal(t, rec.NativeCurve(), memo.NativeCurve())
}

// TestModel_PartitionOfUnity checks the fitted knot vectors themselves.
func TestModel_PartitionOfUnity(t *testing.T) {
	for degree := 1; degree <= 5; degree++ {
		m := mustModel(t, 10, 12, degree)
		s, err := bspline.New(m.Knots(), m.Coefficients(), degree, nil)
		require.NoError(t, err)
		for j := 1; j < 64; j++ {
			x := 2 * math.Pi * float64(j) / 64
			assert.InDelta(t, 1.0, s.BasisSum(x), 1e-12, "degree=%d x=%g", degree, x)
		}
	}
}

// TestModel_RightBoundaryDivergence pins the half-open base case on a target
// whose limit at the upper bound is not zero.
func TestModel_RightBoundaryDivergence(t *testing.T) {
	target := sinspline.Target{Name: "cos", F: math.Cos, Lower: 0, Upper: 2 * math.Pi}
	m, err := sinspline.New(target, 50, 8, 3)
	require.NoError(t, err)

	native := m.NativeCurve()
	library := m.LibraryCurve()
	last := native.Len() - 1

	assert.Equal(t, 0.0, native.Y[last], "native reads 0 on the last knot")
	assert.InDelta(t, 1.0, library.Y[last], 1e-9, "library returns the limiting value")
	assert.InDelta(t, 1.0, m.EvaluateNative(math.Nextafter(2*math.Pi, 0)), 1e-6)

	c := m.Compare(0)
	assert.Equal(t, sinspline.DefaultTolerance, c.Tolerance)
	assert.True(t, c.Agree)
	assert.InDelta(t, 1.0, c.BoundaryDelta, 1e-9)
	assert.Equal(t, 0.0, c.BoundaryNative)
}

func TestModel_AccessorsReturnCopies(t *testing.T) {
	m := mustModel(t, 20, 6, 2)

	base := m.BaseCurve()
	base.Y[0] = 42
	knots := m.Knots()
	knots[0] = 42
	native := m.NativeCurve()
	native.X[0] = 42

	assert.NotEqual(t, 42.0, m.BaseCurve().Y[0])
	assert.NotEqual(t, 42.0, m.Knots()[0])
	assert.NotEqual(t, 42.0, m.NativeCurve().X[0])
	assert.Equal(t, 20, m.TickCount())
	assert.Equal(t, 6, m.ControlCount())
	assert.Equal(t, 2, m.Degree())
	assert.Equal(t, "sin(5x)·cos²(x)", m.Target().Name)
}

func TestModel_KnotPoints(t *testing.T) {
	m := mustModel(t, 200, 7, 3)
	kp := m.KnotPoints()

	third := 2 * math.Pi / 3
	want := []float64{0, third, math.Pi, 2 * third, 2 * math.Pi}
	if diff := cmp.Diff(want, kp.X, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("KnotPoints().X mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, kp.Y, len(kp.X))
	assert.Equal(t, 0.0, kp.Y[len(kp.Y)-1])
}

func TestModel_ApproximationImprovesWithControlPoints(t *testing.T) {
	coarse := mustModel(t, 200, 7, 3).ApproximationError()
	fine := mustModel(t, 200, 40, 3).ApproximationError()

	assert.Greater(t, coarse, 0.5)
	assert.Less(t, fine, 0.02)
}
