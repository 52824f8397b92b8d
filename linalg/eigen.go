// SPDX-License-Identifier: MIT
// Package linalg: Jacobi eigendecomposition for symmetric matrices.
package linalg

import "math"

// EigenSym computes eigenvalues and eigenvectors of a symmetric matrix
// via classical Jacobi sweeps.
//
// Pivot selection scans the upper triangle in fixed i→j order for the
// largest |A[p][q]|, so results are fully deterministic. Rotations with
// |A[p][q]| <= tol are skipped to avoid numerical blow-ups.
//
// Inputs:
//   - a: symmetric matrix (validated: square, finite, symmetric within tol).
//   - tol: convergence threshold (DefaultEigenTol is a good choice).
//   - maxSweeps: iteration cap (DefaultMaxSweeps).
//
// Returns:
//   - vals: eigenvalues, vals[k] pairs with eigenvector column k of vecs.
//   - vecs: orthogonal matrix whose columns are eigenvectors.
//
// Errors: ErrNonSquare/ErrNotFinite/ErrAsymmetric from validation, and
// ErrEigenFailed if the max off-diagonal still exceeds tol after
// maxSweeps rotations.
//
// Complexity: O(maxSweeps * n³) time, O(n²) space.
func EigenSym(a [][]float64, tol float64, maxSweeps int) (vals []float64, vecs [][]float64, err error) {
	if err = ValidateSquare(a); err != nil {
		return nil, nil, err
	}
	if err = ValidateFinite(a); err != nil {
		return nil, nil, err
	}
	if err = ValidateSymmetric(a, tol); err != nil {
		return nil, nil, err
	}

	n := len(a)
	// Working copy of A and identity accumulator Q.
	w := make([][]float64, n)
	q := make([][]float64, n)
	for i := 0; i < n; i++ {
		w[i] = append([]float64(nil), a[i]...)
		q[i] = make([]float64, n)
		q[i][i] = 1.0
	}

	for iter := 0; iter < maxSweeps; iter++ {
		// Pivot: largest |w[p][q]| over the upper triangle, fixed order.
		p, pq, maxOff := 0, 1, 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if off := math.Abs(w[i][j]); off > maxOff {
					maxOff, p, pq = off, i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		app, aqq, apq := w[p][p], w[pq][pq], w[p][pq]
		if math.Abs(apq) <= tol {
			continue
		}
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		// Rotate rows/columns p and pq of the working matrix.
		for i := 0; i < n; i++ {
			if i == p || i == pq {
				continue
			}
			aip, aiq := w[i][p], w[i][pq]
			nip := c*aip - s*aiq
			niq := s*aip + c*aiq
			w[i][p], w[p][i] = nip, nip
			w[i][pq], w[pq][i] = niq, niq
		}
		w[p][p] = c*c*app - 2*c*s*apq + s*s*aqq
		w[pq][pq] = s*s*app + 2*c*s*apq + c*c*aqq
		w[p][pq], w[pq][p] = 0, 0

		// Accumulate the rotation into Q.
		for i := 0; i < n; i++ {
			qip, qiq := q[i][p], q[i][pq]
			q[i][p] = c*qip - s*qiq
			q[i][pq] = s*qip + c*qiq
		}
	}

	// Convergence check on the final working matrix.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(w[i][j]) >= tol {
				return nil, nil, ErrEigenFailed
			}
		}
	}

	vals = make([]float64, n)
	for i := 0; i < n; i++ {
		vals[i] = w[i][i]
	}

	return vals, q, nil
}

// MatVec computes y = a*x. Assumes a is square; fails with ErrBadLength
// when len(x) differs from the dimension. Complexity: O(n²).
func MatVec(a [][]float64, x []float64) ([]float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, err
	}
	n := len(a)
	if len(x) != n {
		return nil, ErrBadLength
	}

	y := make([]float64, n)
	for i := 0; i < n; i++ {
		acc := 0.0
		for j := 0; j < n; j++ {
			if x[j] != 0 {
				acc += a[i][j] * x[j]
			}
		}
		y[i] = acc
	}

	return y, nil
}
