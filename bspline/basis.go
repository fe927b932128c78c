package bspline

import (
	"fmt"
	"math"
)

// Basis returns the Cox–de Boor basis value B(k,i,x) over knot vector t.
//
// Description:
//
//	k = 0:  1 if t[i] ≤ x < t[i+1], else 0 (half-open interval).
//	k > 0:  c1 + c2 with
//	        c1 = 0 if t[i+k] == t[i],   else (x−t[i])/(t[i+k]−t[i])·B(k−1,i,x)
//	        c2 = 0 if t[i+k+1] == t[i+1], else (t[i+k+1]−x)/(t[i+k+1]−t[i+1])·B(k−1,i+1,x)
//
// Errors:
//   - ErrBasisOrder: k < 0.
//   - ErrBasisIndex: i < 0 or i+k+1 ≥ len(t).
//
// Complexity:
//
//	Time = O(2^k), Memory = O(k) stack.
func Basis(k, i int, x float64, t []float64) (float64, error) {
	if k < 0 {
		return 0, fmt.Errorf("%w: k=%d", ErrBasisOrder, k)
	}
	if i < 0 || i+k+1 >= len(t) {
		return 0, fmt.Errorf("%w: i=%d k=%d with %d knots", ErrBasisIndex, i, k, len(t))
	}

	return basisRecursive(k, i, x, t), nil
}

// basisRecursive is the literal recursion. Indices are assumed valid.
func basisRecursive(k, i int, x float64, t []float64) float64 {
	if k == 0 {
		if t[i] <= x && x < t[i+1] {
			return 1.0
		}
		return 0.0
	}

	var c1, c2 float64
	if t[i+k] != t[i] {
		c1 = (x - t[i]) / (t[i+k] - t[i]) * basisRecursive(k-1, i, x, t)
	}
	if t[i+k+1] != t[i+1] {
		c2 = (t[i+k+1] - x) / (t[i+k+1] - t[i+1]) * basisRecursive(k-1, i+1, x, t)
	}

	return c1 + c2
}

// basisTable memoizes B(k,i,x) for one fixed x. Unset cells hold NaN,
// which the recursion itself never produces for finite knots and x.
type basisTable struct {
	x      float64
	t      []float64
	stride int       // len(t)
	cells  []float64 // (degree+1)*stride, row k holds B(k,·,x)
}

// newBasisTable allocates a table for degrees 0..degree.
func newBasisTable(x float64, t []float64, degree int) *basisTable {
	cells := make([]float64, (degree+1)*len(t))
	nan := math.NaN()
	for idx := range cells {
		cells[idx] = nan
	}

	return &basisTable{x: x, t: t, stride: len(t), cells: cells}
}

// at returns B(k,i,x), computing and caching it on first use.
// The arithmetic mirrors basisRecursive term by term.
func (bt *basisTable) at(k, i int) float64 {
	off := k*bt.stride + i
	if v := bt.cells[off]; !math.IsNaN(v) {
		return v
	}

	t, x := bt.t, bt.x
	var v float64
	if k == 0 {
		if t[i] <= x && x < t[i+1] {
			v = 1.0
		}
	} else {
		var c1, c2 float64
		if t[i+k] != t[i] {
			c1 = (x - t[i]) / (t[i+k] - t[i]) * bt.at(k-1, i)
		}
		if t[i+k+1] != t[i+1] {
			c2 = (t[i+k+1] - x) / (t[i+k+1] - t[i+1]) * bt.at(k-1, i+1)
		}
		v = c1 + c2
	}
	bt.cells[off] = v

	return v
}
