// Package circuit provides the gate-level building blocks used by the
// qsolve pipeline: quantum registers, classical registers, gates,
// fragments (ordered gate sequences) and composite circuits.
//
// Overview:
//
//   - A Circuit owns qubit allocation. Registers are allocated in call
//     order and receive contiguous global qubit indices; amplitude index
//     bit k always corresponds to qubit k (little-endian). Downstream
//     consumers (the exact-state extractor in package hhl) rely on this
//     allocation-order contract, so registers record their exact spans.
//   - A Fragment is an ordered, append-only gate sequence produced by a
//     collaborator (initial state, eigenvalue estimation, reciprocal
//     rotation). Fragments are composed into a Circuit by the assembler;
//     a fragment never allocates qubits itself.
//   - Every purely unitary fragment has an exact Adjoint: gates are
//     reversed and each gate is replaced by its inverse (negated angles,
//     conjugate-transposed unitary payloads). Measurements have no
//     adjoint and make Adjoint fail with ErrNotInvertible.
//   - Circuits can be serialized to OpenQASM 2.0. Gates without a QASM
//     primitive (dense unitaries, patterned multi-controlled rotations)
//     are emitted as comments so the textual form stays loadable.
//
// Error handling (sentinel errors):
//
//   - ErrBadRegisterSize: a register was requested with size < 1.
//   - ErrDuplicateRegister: a register name was allocated twice.
//   - ErrQubitOutOfRange: a gate references a qubit the circuit does not own.
//   - ErrNilFragment: a nil fragment was appended.
//   - ErrNotInvertible: Adjoint was requested for a fragment containing
//     a measurement.
//   - ErrBadUnitary: a dense gate payload is not square or does not match
//     the target count.
//   - ErrBadControl: a control list is inconsistent (duplicate qubits,
//     control overlapping a target, or a pattern wider than the controls).
//
// All mutating operations are fail-fast and leave the receiver unchanged
// on error. Circuits are not safe for concurrent mutation; the pipeline
// builds each circuit on a single goroutine and never mutates it after
// construction.
package circuit
