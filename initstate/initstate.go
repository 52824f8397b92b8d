// Package initstate implements the initial-state collaborators of the
// qsolve pipeline.
//
// Two variants exist, mirroring the configuration surface:
//
//   - Zero leaves the io register in |0...0>; its fragment is empty.
//   - Custom amplitude-encodes an arbitrary complex vector by applying
//     one dense unitary whose first column is the normalized vector
//     (Gram–Schmidt completion), so U|0...0> carries the requested
//     amplitudes.
//
// Fragments never allocate qubits or mutate the circuit; the assembler
// appends them to the io register it allocated.
package initstate

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/qsolve/circuit"
	"github.com/katalvlaran/qsolve/linalg"
)

// Sentinel errors returned by the initstate package.
var (
	// ErrLengthMismatch indicates the amplitude vector length differs
	// from 2^(register size).
	ErrLengthMismatch = errors.New("initstate: amplitude vector length mismatch")

	// ErrZeroAmplitudes indicates a (near-)zero amplitude vector.
	ErrZeroAmplitudes = errors.New("initstate: amplitude vector has zero norm")

	// ErrNilRegister indicates a nil target register.
	ErrNilRegister = errors.New("initstate: target register is nil")
)

// Zero prepares |0...0>: the all-zeros computational basis state.
type Zero struct{}

// NewZero returns the zero-state preparer.
func NewZero() *Zero { return &Zero{} }

// ConstructCircuit returns an empty fragment; the simulator starts in
// |0...0> already and hardware resets to it.
func (z *Zero) ConstructCircuit(target *circuit.Register) (*circuit.Fragment, error) {
	if target == nil {
		return nil, ErrNilRegister
	}

	return circuit.NewFragment(), nil
}

// Custom amplitude-encodes a caller-supplied complex vector.
type Custom struct {
	amplitudes []complex128
}

// NewCustom captures a copy of the amplitude vector. The vector is
// normalized during construction of the fragment, not here, so a
// zero-padded unnormalized vector is acceptable.
func NewCustom(amplitudes []complex128) *Custom {
	return &Custom{amplitudes: append([]complex128(nil), amplitudes...)}
}

// ConstructCircuit returns the amplitude-encoding fragment for the
// target register: a single dense unitary with the normalized vector as
// its first column. A vector that already is |0...0> yields an empty
// fragment.
func (c *Custom) ConstructCircuit(target *circuit.Register) (*circuit.Fragment, error) {
	if target == nil {
		return nil, ErrNilRegister
	}
	want := 1 << uint(target.Size())
	if len(c.amplitudes) != want {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(c.amplitudes), want)
	}

	normalized, err := linalg.Normalize(c.amplitudes, 1e-12)
	if err != nil {
		return nil, ErrZeroAmplitudes
	}

	frag := circuit.NewFragment()
	if isBasisZero(normalized) {
		return frag, nil
	}

	u, err := linalg.CompleteBasis(normalized)
	if err != nil {
		return nil, fmt.Errorf("initstate: %w", err)
	}
	frag.Append(circuit.Unitary(u, target.Qubits()...))

	return frag, nil
}

// isBasisZero reports whether v is |0...0> up to global phase and
// numerical noise.
func isBasisZero(v []complex128) bool {
	if cmplx.Abs(v[0]) < 1-1e-12 {
		return false
	}
	for _, a := range v[1:] {
		if cmplx.Abs(a) > 1e-12 {
			return false
		}
	}

	return true
}
