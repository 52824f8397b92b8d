// Package eigs: estimator configuration and QPE fragment construction.
package eigs

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qsolve/circuit"
	"github.com/katalvlaran/qsolve/linalg"
)

// Sentinel errors returned by the eigs package.
var (
	// ErrBadAncillae indicates a non-positive or oversized ancilla count.
	ErrBadAncillae = errors.New("eigs: ancilla count must be in [1, 10]")

	// ErrBadEvolutionTime indicates a non-positive or non-finite
	// evolution time.
	ErrBadEvolutionTime = errors.New("eigs: evolution time must be positive and finite")

	// ErrNonPositiveSpectrum indicates an eigenvalue <= 0; the phase
	// mapping requires a positive-definite matrix.
	ErrNonPositiveSpectrum = errors.New("eigs: matrix must be positive definite")

	// ErrRegisterMismatch indicates the target register width differs
	// from the planned num_q.
	ErrRegisterMismatch = errors.New("eigs: target register size mismatch")

	// ErrNoForward indicates ConstructInverse was called before any
	// forward fragment was constructed.
	ErrNoForward = errors.New("eigs: no forward fragment to invert")
)

// Defaults (single source of truth).
const (
	// DefaultAncillae is the eigenvalue-register width used when
	// WithAncillae is not supplied, mirroring the configuration surface.
	DefaultAncillae = 6

	// maxAncillae caps the dense inverse-QFT payload; 2^10 x 2^10
	// complex entries is the largest payload worth materializing.
	maxAncillae = 10

	// EigenvalueRegisterName is the register allocated by
	// ConstructCircuit.
	EigenvalueRegisterName = "eigs"
)

// options gathers functional configuration for New.
type options struct {
	ancillae int
	evoTime  float64 // 0 means derive from the spectrum
}

// Option mutates estimator options.
type Option func(*options)

// WithAncillae sets the eigenvalue-register width (default
// DefaultAncillae). Validated by New.
func WithAncillae(n int) Option {
	return func(o *options) { o.ancillae = n }
}

// WithEvolutionTime overrides the Hamiltonian evolution time. When
// absent, t = 2π(1-2^-num_a)/λ_max is derived from the spectrum.
func WithEvolutionTime(t float64) Option {
	return func(o *options) { o.evoTime = t }
}

// Estimator is a configured phase-estimation collaborator. It is
// immutable after New apart from the forward-fragment capture consumed
// by ConstructInverse.
type Estimator struct {
	numQ    int
	numA    int
	evoTime float64

	vals []float64
	vecs [][]float64

	forward *circuit.Fragment
}

// New diagonalizes the matrix and fixes the estimation parameters.
// The matrix must satisfy the solver preconditions (square, finite,
// power-of-two dimension, symmetric) and be positive definite.
func New(matrix [][]float64, opts ...Option) (*Estimator, error) {
	o := options{ancillae: DefaultAncillae}
	for _, opt := range opts {
		opt(&o)
	}
	if o.ancillae < 1 || o.ancillae > maxAncillae {
		return nil, fmt.Errorf("%w: got %d", ErrBadAncillae, o.ancillae)
	}

	if err := linalg.ValidateSystem(matrix, linalg.DefaultEpsilon); err != nil {
		return nil, fmt.Errorf("eigs: %w", err)
	}
	numQ, err := linalg.Log2Dim(len(matrix))
	if err != nil {
		return nil, fmt.Errorf("eigs: %w", err)
	}

	vals, vecs, err := linalg.EigenSym(matrix, linalg.DefaultEigenTol, linalg.DefaultMaxSweeps)
	if err != nil {
		return nil, fmt.Errorf("eigs: %w", err)
	}
	lambdaMax := 0.0
	for _, lam := range vals {
		if lam <= 0 {
			return nil, fmt.Errorf("%w: eigenvalue %g", ErrNonPositiveSpectrum, lam)
		}
		if lam > lambdaMax {
			lambdaMax = lam
		}
	}

	evoTime := o.evoTime
	if evoTime == 0 {
		// Largest phase lands on the top estimable value (2^num_a - 1).
		evoTime = 2 * math.Pi * (1 - math.Pow(2, -float64(o.ancillae))) / lambdaMax
	}
	if evoTime <= 0 || math.IsNaN(evoTime) || math.IsInf(evoTime, 0) {
		return nil, fmt.Errorf("%w: got %g", ErrBadEvolutionTime, evoTime)
	}

	return &Estimator{
		numQ:    numQ,
		numA:    o.ancillae,
		evoTime: evoTime,
		vals:    vals,
		vecs:    vecs,
	}, nil
}

// RegisterSizes returns (num_q, num_a).
func (e *Estimator) RegisterSizes() (numQ, numA int) { return e.numQ, e.numA }

// EvolutionTime returns the fixed evolution time t of U = exp(iAt).
func (e *Estimator) EvolutionTime() float64 { return e.evoTime }

// Eigenvalues returns a copy of the spectrum, ascending-unordered as
// produced by the Jacobi sweep. Diagnostic only.
func (e *Estimator) Eigenvalues() []float64 {
	return append([]float64(nil), e.vals...)
}

// ConstructCircuit allocates the eigenvalue register on qc and returns
// the forward QPE fragment:
//
//	H on every ancilla; ancilla j controls U^(2^j) on the target
//	register; exact inverse QFT on the ancillae.
//
// The fragment is retained so ConstructInverse can produce its exact
// adjoint. Gates are not appended here; the assembler owns composition
// order.
func (e *Estimator) ConstructCircuit(qc *circuit.Circuit, target *circuit.Register) (*circuit.Fragment, *circuit.Register, error) {
	if target == nil || target.Size() != e.numQ {
		return nil, nil, ErrRegisterMismatch
	}

	ev, err := qc.AddRegister(EigenvalueRegisterName, e.numA)
	if err != nil {
		return nil, nil, fmt.Errorf("eigs: %w", err)
	}

	frag := circuit.NewFragment()
	for j := 0; j < e.numA; j++ {
		frag.Append(circuit.H(ev.Qubit(j)))
	}
	for j := 0; j < e.numA; j++ {
		power := float64(uint64(1) << uint(j))
		u, err := linalg.UnitaryExp(e.vals, e.vecs, e.evoTime*power)
		if err != nil {
			return nil, nil, fmt.Errorf("eigs: %w", err)
		}
		frag.Append(circuit.ControlledUnitary(u, ev.Qubit(j), target.Qubits()...))
	}
	frag.Append(circuit.Unitary(inverseQFT(e.numA), ev.Qubits()...))

	e.forward = frag

	return frag, ev, nil
}

// ConstructInverse returns the exact adjoint of the most recently
// constructed forward fragment. Fails with ErrNoForward before any
// ConstructCircuit call.
func (e *Estimator) ConstructInverse() (*circuit.Fragment, error) {
	if e.forward == nil {
		return nil, ErrNoForward
	}

	return e.forward.Adjoint()
}

// inverseQFT returns the exact inverse Fourier transform on n qubits as
// a dense payload: M[x][y] = e^{-2πi·x·y/2^n} / √(2^n), with subspace
// bit 0 the least significant (matching circuit.Unitary's convention).
func inverseQFT(n int) [][]complex128 {
	dim := 1 << uint(n)
	scale := 1.0 / math.Sqrt(float64(dim))
	m := make([][]complex128, dim)
	for x := 0; x < dim; x++ {
		m[x] = make([]complex128, dim)
		for y := 0; y < dim; y++ {
			angle := -2 * math.Pi * float64(x*y) / float64(dim)
			m[x][y] = cmplx.Rect(scale, angle)
		}
	}

	return m
}
