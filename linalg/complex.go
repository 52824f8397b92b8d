// SPDX-License-Identifier: MIT
// Package linalg: complex vector helpers and unitary synthesis.
package linalg

import (
	"math"
	"math/cmplx"
)

// Norm2 returns the Euclidean norm of a complex vector.
func Norm2(v []complex128) float64 {
	acc := 0.0
	for _, c := range v {
		acc += real(c)*real(c) + imag(c)*imag(c)
	}

	return math.Sqrt(acc)
}

// Normalize returns v scaled to unit Euclidean norm.
// Fails with ErrZeroVector when the norm is below tol.
func Normalize(v []complex128, tol float64) ([]complex128, error) {
	n := Norm2(v)
	if n <= tol {
		return nil, ErrZeroVector
	}
	out := make([]complex128, len(v))
	inv := complex(1.0/n, 0)
	for i, c := range v {
		out[i] = c * inv
	}

	return out, nil
}

// UnitaryExp synthesizes U = exp(iAt) from the spectrum A = V Λ Vᵀ:
// U[j][k] = Σ_m e^{i·vals[m]·t} · vecs[j][m] · vecs[k][m].
//
// vals and vecs must come from EigenSym on the same matrix; vecs columns
// are the eigenvectors. The result is unitary by construction.
// Complexity: O(n³) time, O(n²) space.
func UnitaryExp(vals []float64, vecs [][]float64, t float64) ([][]complex128, error) {
	n := len(vals)
	if n == 0 || len(vecs) != n {
		return nil, ErrBadLength
	}
	for _, row := range vecs {
		if len(row) != n {
			return nil, ErrBadLength
		}
	}

	phases := make([]complex128, n)
	for m, lam := range vals {
		phases[m] = cmplx.Exp(complex(0, lam*t))
	}

	u := make([][]complex128, n)
	for j := 0; j < n; j++ {
		u[j] = make([]complex128, n)
		for k := 0; k < n; k++ {
			var acc complex128
			for m := 0; m < n; m++ {
				acc += phases[m] * complex(vecs[j][m]*vecs[k][m], 0)
			}
			u[j][k] = acc
		}
	}

	return u, nil
}

// CompleteBasis extends a unit-norm vector v to a full unitary whose
// FIRST COLUMN is v, via Gram–Schmidt over the standard basis. Applying
// the result to |0...0> prepares the state with amplitudes v.
//
// The candidate basis vector least aligned with v is dropped first, so
// the construction never degenerates. Fails with ErrZeroVector if v is
// (near-)zero.
//
// Complexity: O(n³) time, O(n²) space.
func CompleteBasis(v []complex128) ([][]complex128, error) {
	n := len(v)
	first, err := Normalize(v, 1e-12)
	if err != nil {
		return nil, err
	}

	// cols[0] = v; remaining columns picked from standard basis vectors,
	// skipping the index where |v| is largest (it is the most redundant).
	drop := 0
	best := 0.0
	for i, c := range first {
		if a := cmplx.Abs(c); a > best {
			best, drop = a, i
		}
	}

	cols := make([][]complex128, 0, n)
	cols = append(cols, first)
	for i := 0; i < n && len(cols) < n; i++ {
		if i == drop {
			continue
		}
		cand := make([]complex128, n)
		cand[i] = 1

		// Orthogonalize against accepted columns.
		for _, c := range cols {
			var dot complex128
			for k := 0; k < n; k++ {
				dot += cmplx.Conj(c[k]) * cand[k]
			}
			for k := 0; k < n; k++ {
				cand[k] -= dot * c[k]
			}
		}
		norm := Norm2(cand)
		if norm <= 1e-12 {
			continue
		}
		inv := complex(1.0/norm, 0)
		for k := range cand {
			cand[k] *= inv
		}
		cols = append(cols, cand)
	}
	if len(cols) != n {
		return nil, ErrZeroVector
	}

	// Column-major assembly: u[row][col].
	u := make([][]complex128, n)
	for r := 0; r < n; r++ {
		u[r] = make([]complex128, n)
		for c := 0; c < n; c++ {
			u[r][c] = cols[c][r]
		}
	}

	return u, nil
}
