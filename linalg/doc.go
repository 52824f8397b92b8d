// Package linalg provides the small dense linear-algebra kernel the
// solver pipeline needs: fail-fast validation of real symmetric
// matrices, a deterministic Jacobi eigendecomposition, and complex
// vector/unitary helpers used to synthesize circuit payloads.
//
// Overview:
//
//   - Matrices are plain [][]float64 in row-major order. The package
//     validates rather than wraps: every kernel checks its preconditions
//     and returns a sentinel error before touching data.
//   - EigenSym runs classical Jacobi sweeps with a deterministic pivot
//     scan (largest off-diagonal, fixed i→j order), so identical inputs
//     always produce identical spectra and eigenvectors.
//   - UnitaryExp synthesizes U = exp(iAt) from a precomputed spectrum,
//     the payload the eigenvalue-estimation collaborator attaches to its
//     controlled gates.
//   - CompleteBasis extends a normalized complex vector to a full
//     unitary via Gram–Schmidt, used for amplitude-encoding an initial
//     state.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyMatrix, ErrNonSquare, ErrRaggedMatrix, ErrNotFinite,
//     ErrAsymmetric, ErrDimNotPowerOfTwo for validation,
//   - ErrEigenFailed when Jacobi fails to converge under the sweep cap,
//   - ErrZeroVector, ErrBadLength for vector helpers.
//
// Determinism: no randomness, no global state, fixed loop orders
// throughout. All kernels are pure; inputs are never mutated.
package linalg
