// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sinspline/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDenseDefaultZero(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, 0.0, v)
		}
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense(0, 3)
	AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(3, -1)
	AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseFrom_RejectsNaNInf(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	AssertErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.NewDenseFrom(1, 2, []float64{math.Inf(-1), 1})
	AssertErrorIs(t, err, matrix.ErrNaNInf)
}

func TestNewDenseFrom_CopiesInput(t *testing.T) {
	t.Parallel()

	data := []float64{1, 2, 3, 4}
	m := NewFilledDense(t, 2, 2, data)
	data[0] = 99

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "caller buffer must not alias the matrix")
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	require.NoError(t, m.Set(1, 1, 7))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	_, err = m.At(2, 0)
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
	AssertErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	AssertErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, -1))

	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
