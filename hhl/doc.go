// Package hhl orchestrates a quantum linear-system solver: given a
// symmetric matrix A with power-of-two dimension and an input vector b
// encoded as amplitudes, it assembles the HHL circuit — initial state,
// eigenvalue estimation, conditioned reciprocal rotation, un-computation
// — and, in exact-simulation mode, extracts a state proportional to
// A⁻¹b together with the post-selection success probability.
//
// Overview:
//
//   - Collaborators (initial-state preparer, eigenvalue estimator,
//     reciprocal rotator, execution backend) are injected as interfaces;
//     the solver never looks components up by name. Concrete variants
//     live in the initstate, eigs, reciprocal and simulate packages and
//     are selected by the config package.
//   - The circuit is assembled in a strict, non-reorderable order:
//     InitialState → EigenvalueEstimation → ReciprocalRotation →
//     InverseEigenvalueEstimation → optional Measurement. The inverse
//     block is the exact adjoint of the forward block with the same
//     parameters. Register handles produced mid-pipeline (eigenvalue
//     register, success qubit) are retained on the Outcome; the
//     extractor depends on their allocation-order positions.
//   - Mode is a three-state dispatcher fixed before assembly:
//     ModeCircuit returns the artifact and registers without executing;
//     ModeExactSimulation executes on a state-vector-capable backend and
//     post-processes the amplitudes; ModeStateTomography is an explicit
//     unsupported stub.
//
// Allocation-order contract (relied on by ExtractExactState):
//
//	qubits [0..num_q)            io register      (trailing num_q bits)
//	qubits [num_q..num_q+num_a)  eigenvalue register
//	qubit  N-1                   success ancilla  (most significant bit)
//
// Error handling (sentinel errors, matched via errors.Is):
//
//   - ErrConfiguration — malformed matrix or vector, register-size
//     contract violation, incompatible backend/mode pairing. Raised at
//     construction time, before any circuit work.
//   - ErrConstruction — a collaborator failed while composing the
//     artifact; no partial artifact is ever returned.
//   - ErrExtraction — the backend result exposes no retrievable state
//     vector, or the vector is malformed.
//   - ErrNotSupported — the state-tomography state was entered.
//
// The pipeline is single-threaded and one-shot: one Run produces one
// fresh artifact, nothing is cached or retried, and matrix, vector and
// collaborators are captured at construction and never mutated.
package hhl
