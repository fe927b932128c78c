// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/sinspline/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their interface (non-*Dense) paths.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): want err == nil, got: %v", r, c, err)
	}

	return m
}

// NewFilledDense builds an r×c *Dense from row-major data or fails the test.
func NewFilledDense(t *testing.T, r, c int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): want err == nil, got: %v", r, c, err)
	}

	return m
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want errors.Is(err, %v), got: %v", target, err)
	}
}
