// Package plot draws a sinspline.Model as one annotated chart: the target
// curve, the fitted spline, the control polygon and, optionally, the knots
// and the library evaluation.
package plot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/sinspline/sinspline"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"
)

// Title is the chart title.
const Title = "Drawing B-Spline on trigonometric function"

// Legend entries, in drawing order.
const (
	LegendTarget  = "y = f(x)"
	LegendSpline  = "Spline"
	LegendLinear  = "Linear interpolation"
	LegendControl = "Control points"
	LegendKnots   = "Knots"
	LegendLibrary = "Spline (library)"
)

// ErrNilModel indicates a nil model.
var ErrNilModel = errors.New("plot: nil model")

// Options controls the chart.
type Options struct {
	Width, Height int  // pixels; non-positive means the default size
	ShowKnots     bool // mark distinct knots on the native spline
	ShowLibrary   bool // overlay the library curve
}

// DefaultOptions returns a 1024×576 chart with knots shown and the library
// curve hidden.
func DefaultOptions() Options {
	return Options{Width: 1024, Height: 576, ShowKnots: true}
}

func lineStyle(c drawing.Color, width float64, dashes ...float64) chart.Style {
	return chart.Style{StrokeColor: c, StrokeWidth: width, StrokeDashArray: dashes}
}

func pointStyle(c drawing.Color, size float64) chart.Style {
	return chart.Style{StrokeWidth: chart.Disabled, StrokeColor: c, DotWidth: size, DotColor: c}
}

func series(name string, s sinspline.Series, style chart.Style) chart.ContinuousSeries {
	return chart.ContinuousSeries{Name: name, XValues: s.X, YValues: s.Y, Style: style}
}

// yRange pads the joint y extent of all series so a flat curve still has a
// non-empty axis.
func yRange(all ...sinspline.Series) *chart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range all {
		if s.Len() == 0 {
			continue
		}
		lo = math.Min(lo, floats.Min(s.Y))
		hi = math.Max(hi, floats.Max(s.Y))
	}
	pad := 0.05 * (hi - lo)
	if !(pad > 1e-9) {
		pad = 1
	}

	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

// Figure assembles the chart for m.
func Figure(m *sinspline.Model, opts Options) (*chart.Chart, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	d := DefaultOptions()
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = d.Width, d.Height
	}

	base, native, control := m.BaseCurve(), m.NativeCurve(), m.ControlPoints()
	shown := []sinspline.Series{base, native, control}

	ch := &chart.Chart{
		Title:  Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{Name: "X"},
		Series: []chart.Series{
			series(LegendTarget, base, lineStyle(chart.ColorBlue, 2, 6, 4)),
			series(LegendSpline, native, lineStyle(chart.ColorRed, 2)),
			series(LegendLinear, control, lineStyle(chart.ColorGreen, 1)),
			series(LegendControl, control, pointStyle(chart.ColorOrange, 5)),
		},
	}

	if opts.ShowKnots {
		knots := m.KnotPoints()
		shown = append(shown, knots)
		ch.Series = append(ch.Series, series(LegendKnots, knots, pointStyle(chart.ColorBlack, 3)))
	}
	if opts.ShowLibrary {
		library := m.LibraryCurve()
		shown = append(shown, library)
		ch.Series = append(ch.Series, series(LegendLibrary, library, lineStyle(chart.ColorAlternateGray, 1, 2, 2)))
	}

	ch.YAxis = chart.YAxis{Name: "Y", Range: yRange(shown...)}
	ch.Elements = []chart.Renderable{chart.Legend(ch)}

	return ch, nil
}

// WriteSVG renders the chart for m as SVG into w.
func WriteSVG(w io.Writer, m *sinspline.Model, opts Options) error {
	ch, err := Figure(m, opts)
	if err != nil {
		return err
	}
	if err = ch.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("plot: render svg: %w", err)
	}

	return nil
}

// SVG is WriteSVG into a byte slice.
func SVG(m *sinspline.Model, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, m, opts); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
