// Package circuit: domain types, gate vocabulary and sentinel errors.
package circuit

import "errors"

// Sentinel errors returned by the circuit package.
var (
	// ErrBadRegisterSize indicates a register was requested with size < 1.
	ErrBadRegisterSize = errors.New("circuit: register size must be positive")

	// ErrDuplicateRegister indicates a register name was allocated twice
	// on the same circuit.
	ErrDuplicateRegister = errors.New("circuit: duplicate register name")

	// ErrQubitOutOfRange indicates a gate references a qubit index outside
	// the circuit's allocated range.
	ErrQubitOutOfRange = errors.New("circuit: qubit index out of range")

	// ErrCbitOutOfRange indicates a measurement targets a classical bit
	// outside its register.
	ErrCbitOutOfRange = errors.New("circuit: classical bit index out of range")

	// ErrNilFragment indicates a nil *Fragment was appended to a circuit.
	ErrNilFragment = errors.New("circuit: fragment is nil")

	// ErrNotInvertible indicates Adjoint was requested for a fragment that
	// contains a non-unitary operation (measurement).
	ErrNotInvertible = errors.New("circuit: fragment contains a non-unitary gate")

	// ErrBadUnitary indicates a dense gate payload is not square, empty,
	// or does not match 2^len(targets).
	ErrBadUnitary = errors.New("circuit: unitary payload has wrong shape")

	// ErrBadControl indicates an inconsistent control specification:
	// duplicate qubits, a control that is also a target, or a control
	// pattern wider than the control list.
	ErrBadControl = errors.New("circuit: invalid control specification")
)

// Gate name constants. The simulator and the QASM exporter switch on
// these; keeping them as constants avoids magic strings at call sites.
const (
	GateH       = "h"       // Hadamard
	GateX       = "x"       // Pauli-X
	GateZ       = "z"       // Pauli-Z
	GateRY      = "ry"      // rotation about Y, Params[0] = theta
	GatePhase   = "p"       // phase gate, Params[0] = lambda
	GateCX      = "cx"      // controlled-X
	GateCPhase  = "cp"      // controlled phase, Params[0] = lambda
	GateSwap    = "swap"    // qubit swap
	GateUnitary = "unitary" // dense unitary payload over Targets
	GateMCRY    = "mcry"    // pattern-controlled RY, Params[0] = theta
	GateMeasure = "measure" // projective measurement into a classical bit
)

// Register is a named, ordered sequence of qubit slots. Registers are
// created exclusively by Circuit.AddRegister, which fixes the global
// index span; the extractor's bit-index algebra depends on that span
// staying exactly as allocated.
type Register struct {
	name  string
	start int // first global qubit index
	size  int // number of qubits
}

// Name returns the register name.
func (r *Register) Name() string { return r.name }

// Size returns the number of qubits in the register.
func (r *Register) Size() int { return r.size }

// Qubit returns the global index of the i-th qubit of the register.
// Panics on a programmer error (i outside [0, Size)).
func (r *Register) Qubit(i int) int {
	if i < 0 || i >= r.size {
		panic("circuit: register qubit index out of range")
	}

	return r.start + i
}

// Qubits returns the global indices of all register qubits in order.
func (r *Register) Qubits() []int {
	out := make([]int, r.size)
	for i := range out {
		out[i] = r.start + i
	}

	return out
}

// ClassicalRegister is a named sequence of classical bits receiving
// measurement outcomes.
type ClassicalRegister struct {
	name string
	size int
}

// Name returns the classical register name.
func (c *ClassicalRegister) Name() string { return c.name }

// Size returns the number of classical bits.
func (c *ClassicalRegister) Size() int { return c.size }

// Gate is a single operation on the circuit. Exactly one of the payload
// conventions applies, keyed by Name:
//   - single/two-qubit named gates use Targets (and Controls for cx/cp),
//   - GateUnitary carries a dense Matrix over Targets (Targets[0] is the
//     least significant subspace bit), optionally with Controls,
//   - GateMCRY rotates Targets[0] when every Controls[i] matches bit i of
//     CtrlPattern,
//   - GateMeasure maps Targets[0] into classical bit Cbit of Creg.
type Gate struct {
	Name        string
	Targets     []int
	Controls    []int
	CtrlPattern uint64 // required control values; bit i gates Controls[i]
	Params      []float64
	Matrix      [][]complex128 // dense payload for GateUnitary
	Creg        *ClassicalRegister
	Cbit        int // classical bit index for GateMeasure, -1 otherwise
}
