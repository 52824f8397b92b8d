// SPDX-License-Identifier: MIT
// Package linalg: sentinel errors, numeric policy and validators.
//
// Validators return plain sentinels (no wrapping) so call sites can wrap
// uniformly with their own stage context; tests match via errors.Is.
package linalg

import (
	"errors"
	"math"
)

// Sentinel errors returned by the linalg package.
var (
	// ErrEmptyMatrix indicates a nil or zero-row matrix.
	ErrEmptyMatrix = errors.New("linalg: matrix is empty")

	// ErrRaggedMatrix indicates rows of unequal length.
	ErrRaggedMatrix = errors.New("linalg: matrix rows have unequal length")

	// ErrNonSquare indicates a square matrix was required but rows != cols.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrNotFinite indicates a NaN or ±Inf entry where finite values are
	// required by the numeric policy.
	ErrNotFinite = errors.New("linalg: NaN or Inf encountered")

	// ErrAsymmetric indicates |a[i][j]-a[j][i]| exceeded the tolerance for
	// a matrix that must be symmetric.
	ErrAsymmetric = errors.New("linalg: matrix is not symmetric within eps")

	// ErrDimNotPowerOfTwo indicates the matrix dimension is not 2^k, k >= 1.
	ErrDimNotPowerOfTwo = errors.New("linalg: dimension is not a power of two")

	// ErrEigenFailed indicates the Jacobi iteration did not converge under
	// the sweep cap.
	ErrEigenFailed = errors.New("linalg: eigen decomposition failed to converge")

	// ErrZeroVector indicates a vector with (near-)zero Euclidean norm
	// where a normalizable vector is required.
	ErrZeroVector = errors.New("linalg: vector has zero norm")

	// ErrBadLength indicates a vector length that does not match the
	// expected dimension.
	ErrBadLength = errors.New("linalg: vector length mismatch")
)

// Numeric policy defaults (single source of truth).
const (
	// DefaultEpsilon is the symmetry tolerance for ValidateSymmetric.
	DefaultEpsilon = 1e-9

	// DefaultEigenTol is the Jacobi convergence threshold.
	DefaultEigenTol = 1e-10

	// DefaultMaxSweeps caps Jacobi iterations.
	DefaultMaxSweeps = 300
)

// ValidateSquare checks that a is non-empty, non-ragged and square.
// Order: empty -> ragged -> non-square. Complexity: O(rows).
func ValidateSquare(a [][]float64) error {
	if len(a) == 0 {
		return ErrEmptyMatrix
	}
	n := len(a)
	for _, row := range a {
		if len(row) != n {
			if len(row) != len(a[0]) {
				return ErrRaggedMatrix
			}

			return ErrNonSquare
		}
	}

	return nil
}

// ValidateFinite checks every entry for NaN/±Inf. Assumes a is well
// formed (use ValidateSquare first). Complexity: O(n²).
func ValidateFinite(a [][]float64) error {
	for _, row := range a {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNotFinite
			}
		}
	}

	return nil
}

// ValidateSymmetric checks |a[i][j]-a[j][i]| <= eps on the upper
// triangle. Assumes a is square. Complexity: O(n²/2).
func ValidateSymmetric(a [][]float64, eps float64) error {
	n := len(a)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(a[i][j]-a[j][i]) > eps {
				return ErrAsymmetric
			}
		}
	}

	return nil
}

// IsPowerOfTwo reports whether n is 2^k for k >= 0.
func IsPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }

// Log2Dim returns k such that n == 2^k, or ErrDimNotPowerOfTwo.
// The solver needs k >= 1: a one-element system has no qubits to carry.
func Log2Dim(n int) (int, error) {
	if n < 2 || !IsPowerOfTwo(n) {
		return 0, ErrDimNotPowerOfTwo
	}
	k := 0
	for m := n; m > 1; m >>= 1 {
		k++
	}

	return k, nil
}

// ValidateSystem runs the full precondition chain for a solver matrix:
// square -> finite -> power-of-two dimension -> symmetric within eps.
// Returns the first violated sentinel.
func ValidateSystem(a [][]float64, eps float64) error {
	if err := ValidateSquare(a); err != nil {
		return err
	}
	if err := ValidateFinite(a); err != nil {
		return err
	}
	if _, err := Log2Dim(len(a)); err != nil {
		return err
	}

	return ValidateSymmetric(a, eps)
}
