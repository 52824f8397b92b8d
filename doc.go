// Package qsolve assembles and simulates the circuits of the HHL
// quantum linear-system algorithm: given a symmetric matrix A and a
// vector b, it produces the circuit whose post-selected success branch
// encodes x with A·x = b, and can execute it on an exact state-vector
// simulator.
//
// 🚀 What is qsolve?
//
//	A deterministic toolkit that brings together:
//		• Registers & gates: a compact vocabulary with exact adjoints
//		• Phase estimation: dense-unitary synthesis from the Jacobi spectrum
//		• Reciprocal rotation: the lookup-addressed 1/λ conditioning
//		• Exact extraction: post-selected, renormalized solution decoding
//		• Backends: exact state-vector evolution and seeded sampling
//		• YAML configuration and an OpenQASM 2.0 exporter
//
// ✨ Why choose qsolve?
//
//   - Deterministic – fixed register allocation, reproducible sampling
//   - Fail-fast – every package validates with sentinel errors
//   - Pluggable – estimator, initial state, rotator and backend are
//     interfaces behind the solver
//
// Under the hood, everything is organized under focused subpackages:
//
//	circuit/    — registers, gates, fragments, adjoints, QASM export
//	linalg/     — validation, Jacobi eigendecomposition, complex kernels
//	hhl/        — planning, five-stage assembly, modes, extraction
//	eigs/       — the quantum-phase-estimation collaborator
//	reciprocal/ — the lookup reciprocal-rotation collaborator
//	initstate/  — zero and amplitude-encoded initial states
//	simulate/   — state-vector and sampler execution backends
//	config/     — the YAML problem description
//	cmd/qsolve  — the command-line front end
//
// Start with hhl.New, or feed a YAML document to config.Load and Build.
package qsolve
