// Package reciprocal implements the lookup-style reciprocal-rotation
// collaborator: a conditioned Y-rotation of a fresh success ancilla by
// an angle proportional to the reciprocal of the eigenvalue estimate
// held in the eigenvalue register.
//
// For each ancilla-register basis value m in [1, 2^num_a), the rotation
// angle is 2·asin(scale/m): the estimate m is proportional to the
// eigenvalue, so the rotated amplitude carries the 1/λ factor HHL
// needs. The m = 0 branch is left untouched — a zero estimate has no
// reciprocal and must never reach the success branch. The default
// scale 1 makes the smallest resolvable estimate rotate fully onto
// the success state.
package reciprocal

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/qsolve/circuit"
)

// Sentinel errors returned by the reciprocal package.
var (
	// ErrBadScale indicates a scale outside (0, 1]; asin needs its
	// argument in [-1, 1] and a non-positive scale rotates nothing.
	ErrBadScale = errors.New("reciprocal: scale must be in (0, 1]")

	// ErrRegisterTooWide indicates an eigenvalue register too wide to
	// enumerate (the lookup addresses every basis value).
	ErrRegisterTooWide = errors.New("reciprocal: eigenvalue register too wide")

	// ErrNilRegister indicates a nil eigenvalue register.
	ErrNilRegister = errors.New("reciprocal: eigenvalue register is nil")
)

// Defaults.
const (
	// DefaultScale rotates the smallest resolvable estimate (m = 1)
	// fully onto the success state.
	DefaultScale = 1.0

	// maxRegisterWidth caps the 2^num_a lookup enumeration.
	maxRegisterWidth = 20

	// SuccessRegisterName is the one-qubit register allocated by
	// ConstructCircuit.
	SuccessRegisterName = "anc"
)

// options gathers functional configuration for New.
type options struct {
	scale float64
}

// Option mutates rotator options.
type Option func(*options)

// WithScale sets the rotation scale C as a fraction of the smallest
// resolvable eigenvalue estimate (default DefaultScale). Validated by
// New.
func WithScale(s float64) Option {
	return func(o *options) { o.scale = s }
}

// Rotator is a configured reciprocal-rotation collaborator.
type Rotator struct {
	scale float64
}

// New validates the configuration and returns a rotator.
func New(opts ...Option) (*Rotator, error) {
	o := options{scale: DefaultScale}
	for _, opt := range opts {
		opt(&o)
	}
	if o.scale <= 0 || o.scale > 1 || math.IsNaN(o.scale) {
		return nil, fmt.Errorf("%w: got %g", ErrBadScale, o.scale)
	}

	return &Rotator{scale: o.scale}, nil
}

// Scale returns the configured rotation scale.
func (r *Rotator) Scale() float64 { return r.scale }

// ConstructCircuit allocates the success ancilla on qc and returns the
// rotation fragment: one pattern-controlled RY per eigenvalue-register
// basis value m >= 1, with angle 2·asin(scale/m). Gates are not
// appended here; the assembler owns composition order.
func (r *Rotator) ConstructCircuit(qc *circuit.Circuit, eigenvalues *circuit.Register) (*circuit.Fragment, *circuit.Register, error) {
	if eigenvalues == nil {
		return nil, nil, ErrNilRegister
	}
	if eigenvalues.Size() > maxRegisterWidth {
		return nil, nil, fmt.Errorf("%w: %d qubits", ErrRegisterTooWide, eigenvalues.Size())
	}

	anc, err := qc.AddRegister(SuccessRegisterName, 1)
	if err != nil {
		return nil, nil, fmt.Errorf("reciprocal: %w", err)
	}

	controls := eigenvalues.Qubits()
	frag := circuit.NewFragment()
	for m := uint64(1); m < uint64(1)<<uint(eigenvalues.Size()); m++ {
		theta := 2 * math.Asin(r.scale/float64(m))
		frag.Append(circuit.MCRY(theta, controls, m, anc.Qubit(0)))
	}

	return frag, anc, nil
}
