// Package eigs implements the eigenvalue-estimation collaborator of the
// qsolve pipeline: textbook quantum phase estimation over the unitary
// U = exp(iAt).
//
// Overview:
//
//   - The estimator diagonalizes the (symmetric, positive-definite)
//     matrix once at construction via linalg.EigenSym and synthesizes
//     each controlled power U^(2^j) as a dense unitary payload. The
//     inverse Fourier transform on the ancilla register is likewise a
//     synthesized exact unitary, so the fragment's adjoint is exact.
//   - Ancilla qubit j controls U^(2^j), making the ancilla register
//     value m (qubit 0 least significant) the phase estimate: an
//     eigenvalue λ maps to m ≈ λ·t·2^num_a/(2π).
//   - The default evolution time t = 2π(1-2^-num_a)/λ_max spreads the
//     spectrum across the estimable phase range without wrap-around.
//   - ConstructInverse returns the exact adjoint of the most recently
//     constructed forward fragment — same parameters, reversed — which
//     the assembler uses to un-compute the estimation ancillae.
//
// Negative or zero eigenvalues are rejected at construction: the phase
// mapping wraps for λ ≤ 0 and the downstream reciprocal rotation has no
// sign channel. Promote the system (e.g. shift the spectrum) before
// configuring the estimator.
package eigs
