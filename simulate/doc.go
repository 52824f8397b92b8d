// Package simulate provides noiseless execution backends for assembled
// circuits.
//
// Two backends exist:
//
//   - StateVector evolves the full 2^N amplitude array gate by gate and
//     exposes the exact final state. It is state-vector capable and is
//     the only backend the exact-simulation mode accepts.
//   - Sampler evolves the same amplitudes but exposes only measurement
//     counts over the circuit's classical bits, drawn from the exact
//     distribution with a seeded generator. It is NOT state-vector
//     capable; asking its result for a state vector fails with
//     ErrNoStateVector. It exists for circuit-mode experimentation and
//     to exercise the capability guard of the solver.
//
// The engine applies the full gate vocabulary of package circuit:
// named single- and two-qubit gates, pattern-controlled rotations and
// dense (optionally controlled) unitary payloads. Amplitude index bit k
// corresponds to qubit k, matching the circuit package's allocation
// contract.
//
// Execution is synchronous and single-threaded; the context is checked
// between gates so a cancelled run stops early.
package simulate
