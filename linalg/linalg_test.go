// Package linalg_test validates the validation chain, the Jacobi
// eigendecomposition and the complex helpers.
package linalg_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsolve/linalg"
)

// ------------------------------------------------------------------------
// 1. Validators.
// ------------------------------------------------------------------------

func TestValidateSystem_ErrorPriority(t *testing.T) {
	require.ErrorIs(t, linalg.ValidateSystem(nil, linalg.DefaultEpsilon), linalg.ErrEmptyMatrix)

	ragged := [][]float64{{1, 2}, {3}}
	require.ErrorIs(t, linalg.ValidateSystem(ragged, linalg.DefaultEpsilon), linalg.ErrRaggedMatrix)

	rect := [][]float64{{1, 2, 3}, {4, 5, 6}}
	require.ErrorIs(t, linalg.ValidateSquare(rect), linalg.ErrNonSquare)

	nan := [][]float64{{1, math.NaN()}, {math.NaN(), 1}}
	require.ErrorIs(t, linalg.ValidateSystem(nan, linalg.DefaultEpsilon), linalg.ErrNotFinite)

	odd := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	require.ErrorIs(t, linalg.ValidateSystem(odd, linalg.DefaultEpsilon), linalg.ErrDimNotPowerOfTwo)

	asym := [][]float64{{1, 2}, {3, 1}}
	require.ErrorIs(t, linalg.ValidateSystem(asym, linalg.DefaultEpsilon), linalg.ErrAsymmetric)

	ok := [][]float64{{2, 1}, {1, 2}}
	require.NoError(t, linalg.ValidateSystem(ok, linalg.DefaultEpsilon))
}

func TestLog2Dim(t *testing.T) {
	cases := map[int]int{2: 1, 4: 2, 8: 3, 16: 4}
	for dim, want := range cases {
		got, err := linalg.Log2Dim(dim)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	for _, dim := range []int{0, 1, 3, 6, 12} {
		_, err := linalg.Log2Dim(dim)
		require.ErrorIs(t, err, linalg.ErrDimNotPowerOfTwo)
	}
}

// ------------------------------------------------------------------------
// 2. Jacobi eigendecomposition.
// ------------------------------------------------------------------------

func TestEigenSym_Diagonal(t *testing.T) {
	a := [][]float64{{3, 0}, {0, 7}}
	vals, vecs, err := linalg.EigenSym(a, linalg.DefaultEigenTol, linalg.DefaultMaxSweeps)
	require.NoError(t, err)
	require.Len(t, vals, 2)

	// Diagonal input: spectrum is the diagonal, Q stays the identity.
	require.InDelta(t, 3.0, vals[0], 1e-12)
	require.InDelta(t, 7.0, vals[1], 1e-12)
	require.InDelta(t, 1.0, vecs[0][0], 1e-12)
	require.InDelta(t, 1.0, vecs[1][1], 1e-12)
}

func TestEigenSym_ReconstructsMatrix(t *testing.T) {
	a := [][]float64{
		{2, 1, 0, 0},
		{1, 2, 1, 0},
		{0, 1, 2, 1},
		{0, 0, 1, 2},
	}
	vals, vecs, err := linalg.EigenSym(a, linalg.DefaultEigenTol, linalg.DefaultMaxSweeps)
	require.NoError(t, err)

	// A == V diag(vals) Vᵀ within tolerance.
	n := len(a)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			acc := 0.0
			for m := 0; m < n; m++ {
				acc += vals[m] * vecs[i][m] * vecs[j][m]
			}
			require.InDelta(t, a[i][j], acc, 1e-8, "entry (%d,%d)", i, j)
		}
	}
}

func TestEigenSym_RejectsAsymmetric(t *testing.T) {
	a := [][]float64{{1, 2}, {0, 1}}
	_, _, err := linalg.EigenSym(a, linalg.DefaultEigenTol, linalg.DefaultMaxSweeps)
	require.ErrorIs(t, err, linalg.ErrAsymmetric)
}

func TestMatVec(t *testing.T) {
	a := [][]float64{{1, 2}, {3, 4}}
	y, err := linalg.MatVec(a, []float64{1, 1})
	require.NoError(t, err)
	require.InDelta(t, 3.0, y[0], 1e-12)
	require.InDelta(t, 7.0, y[1], 1e-12)

	_, err = linalg.MatVec(a, []float64{1})
	require.ErrorIs(t, err, linalg.ErrBadLength)
}

// ------------------------------------------------------------------------
// 3. Complex helpers.
// ------------------------------------------------------------------------

func TestUnitaryExp_IsUnitaryAndDiagonalCase(t *testing.T) {
	a := [][]float64{{1, 0}, {0, 2}}
	vals, vecs, err := linalg.EigenSym(a, linalg.DefaultEigenTol, linalg.DefaultMaxSweeps)
	require.NoError(t, err)

	tEvo := 0.5
	u, err := linalg.UnitaryExp(vals, vecs, tEvo)
	require.NoError(t, err)

	// Diagonal A: U = diag(e^{i·1·t}, e^{i·2·t}).
	require.InDelta(t, 0.0, cmplx.Abs(u[0][1]), 1e-12)
	require.InDelta(t, 0.0, cmplx.Abs(u[1][0]), 1e-12)
	require.InDelta(t, 0.0, cmplx.Abs(u[0][0]-cmplx.Exp(complex(0, 1*tEvo))), 1e-12)
	require.InDelta(t, 0.0, cmplx.Abs(u[1][1]-cmplx.Exp(complex(0, 2*tEvo))), 1e-12)
}

func TestUnitaryExp_NonDiagonalStaysUnitary(t *testing.T) {
	a := [][]float64{{2, 1}, {1, 2}}
	vals, vecs, err := linalg.EigenSym(a, linalg.DefaultEigenTol, linalg.DefaultMaxSweeps)
	require.NoError(t, err)
	u, err := linalg.UnitaryExp(vals, vecs, 1.3)
	require.NoError(t, err)

	// U Uᴴ == I.
	n := len(u)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var acc complex128
			for k := 0; k < n; k++ {
				acc += u[i][k] * cmplx.Conj(u[j][k])
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDelta(t, want, real(acc), 1e-10)
			require.InDelta(t, 0.0, imag(acc), 1e-10)
		}
	}
}

func TestCompleteBasis_FirstColumnAndUnitarity(t *testing.T) {
	v := []complex128{complex(0.6, 0), complex(0, 0.8)}
	u, err := linalg.CompleteBasis(v)
	require.NoError(t, err)

	// First column is the (already unit-norm) input vector.
	require.InDelta(t, 0.0, cmplx.Abs(u[0][0]-v[0]), 1e-12)
	require.InDelta(t, 0.0, cmplx.Abs(u[1][0]-v[1]), 1e-12)

	// Columns are orthonormal.
	n := len(u)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			var acc complex128
			for k := 0; k < n; k++ {
				acc += cmplx.Conj(u[k][a]) * u[k][b]
			}
			want := 0.0
			if a == b {
				want = 1.0
			}
			require.InDelta(t, want, real(acc), 1e-10)
			require.InDelta(t, 0.0, imag(acc), 1e-10)
		}
	}
}

func TestCompleteBasis_ZeroVector(t *testing.T) {
	_, err := linalg.CompleteBasis([]complex128{0, 0})
	require.ErrorIs(t, err, linalg.ErrZeroVector)
}

func TestNormalize(t *testing.T) {
	v, err := linalg.Normalize([]complex128{3, 4}, 1e-12)
	require.NoError(t, err)
	require.InDelta(t, 1.0, linalg.Norm2(v), 1e-12)

	_, err = linalg.Normalize([]complex128{0}, 1e-12)
	require.ErrorIs(t, err, linalg.ErrZeroVector)
}
