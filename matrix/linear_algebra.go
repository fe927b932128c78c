// SPDX-License-Identifier: MIT
// Package matrix: LU factorization, triangular solves and matrix-vector product.
//
// Purpose:
//   - Solve square systems A·x = b exactly the same way on every run.
//   - Keep the elimination order fixed (no pivoting) so results are bit-reproducible.
//
// Notes:
//   - All kernels validate through validators.go and wrap failures via matrixErrorf.

package matrix

import "fmt"

// matrixErrorf wraps err with an operation tag, keeping it reachable through errors.Is.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns m as *Dense, copying through the interface when needed.
// Kernels then run a single flat-slice code path.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// LU computes the Doolittle factorization A = L·U.
//
// Implementation:
//   - Stage 1: Validate m is non-nil and square.
//   - Stage 2: For i = 0..n-1 compute row i of U (j ≥ i), check the pivot,
//     then column i of L (j > i). L has a unit diagonal.
//
// Behavior highlights:
//   - No pivoting: a zero pivot fails with ErrSingular instead of swapping rows.
//   - The input is never mutated; L and U are fresh *Dense values.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//   - ErrSingular on a zero pivot.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix) (Matrix, Matrix, error) {
	l, u, err := luDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	return l, u, nil
}

// luDense is the shared kernel behind LU and Solve.
func luDense(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, err
	}
	a, err := toDense(m)
	if err != nil {
		return nil, nil, err
	}

	n := a.r
	l, _ := NewDense(n, n)
	u, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		l.data[i*n+i] = 1.0
	}

	var i, j, k, baseI, baseJ int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		baseI = i * n
		// U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[baseI+k] * u.data[k*n+j]
			}
			u.data[baseI+j] = a.data[baseI+j] - sum
		}

		pivot = u.data[baseI+i]
		if pivot == ZeroPivot {
			return nil, nil, ErrSingular
		}

		// L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			baseJ = j * n
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[baseJ+k] * u.data[k*n+i]
			}
			l.data[baseJ+i] = (a.data[baseJ+i] - sum) / pivot
		}
	}

	return l, u, nil
}

// Solve returns x with A·x = b.
//
// Implementation:
//   - Stage 1: Validate A square and len(b) == n.
//   - Stage 2: Factorize A = L·U (no pivoting).
//   - Stage 3: Forward substitution L·y = b, then backward substitution U·x = y.
//
// Behavior highlights:
//   - Neither A nor b is mutated.
//   - Deterministic: identical inputs give bit-identical x.
//
// Inputs:
//   - a: square system matrix.
//   - b: right-hand side, length a.Rows().
//
// Returns:
//   - []float64: the solution vector (fresh allocation).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (wrapped with "Solve").
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Safe without pivoting only for matrices whose leading principal minors are
//     non-zero (diagonally dominant, totally positive). Collocation matrices of
//     B-splines at Schoenberg–Whitney sites qualify.
func Solve(a Matrix, b []float64) ([]float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	l, u, err := luDense(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n := a.Rows()
	y := make([]float64, n)
	x := make([]float64, n)

	var i, k, base int
	var sum float64
	// Forward: L has a unit diagonal.
	for i = 0; i < n; i++ {
		sum = ZeroSum
		base = i * n
		for k = 0; k < i; k++ {
			sum += l.data[base+k] * y[k]
		}
		y[i] = b[i] - sum
	}
	// Backward.
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		base = i * n
		for k = i + 1; k < n; k++ {
			sum += u.data[base+k] * x[k]
		}
		x[i] = (y[i] - sum) / u.data[base+i]
	}

	return x, nil
}

// MatVec computes y = m·x.
//
// Errors:
//   - ErrNilMatrix (nil m or nil x), ErrDimensionMismatch (len(x) != Cols).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}
