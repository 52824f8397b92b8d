// Package hhl: modes, sentinel errors, collaborator interfaces and the
// structured outcome.
package hhl

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/qsolve/circuit"
)

// Sentinel errors returned by the hhl package. Wrapped occurrences keep
// the failing stage in the message; match with errors.Is.
var (
	// ErrConfiguration indicates an invalid solver configuration: a
	// malformed matrix or input vector, a register-size contract
	// violation, or a backend incompatible with the selected mode.
	// Always raised before any circuit construction.
	ErrConfiguration = errors.New("hhl: invalid configuration")

	// ErrConstruction indicates a collaborator failure while composing
	// the circuit artifact. Construction is all-or-nothing.
	ErrConstruction = errors.New("hhl: circuit construction failed")

	// ErrExtraction indicates the execution result exposes no retrievable
	// or well-formed state vector.
	ErrExtraction = errors.New("hhl: state extraction failed")

	// ErrNotSupported indicates the state-tomography mode was entered;
	// it is an explicit unimplemented stub.
	ErrNotSupported = errors.New("hhl: mode not supported")
)

// Mode selects the solver's terminal behavior. It is fixed for the
// artifact's lifetime and chosen before assembly; there are no intra-run
// transitions.
type Mode int

const (
	// ModeCircuit assembles the artifact and returns it with its register
	// handles; nothing is executed.
	ModeCircuit Mode = iota

	// ModeExactSimulation executes the artifact on a state-vector-capable
	// backend and post-processes the exact amplitudes. No measurement is
	// appended in this mode.
	ModeExactSimulation

	// ModeStateTomography is reserved; entering it fails with
	// ErrNotSupported.
	ModeStateTomography
)

// Mode spellings used on the configuration surface.
const (
	modeNameCircuit         = "circuit"
	modeNameExactSimulation = "exact_simulation"
	modeNameStateTomography = "state_tomography"
)

// String returns the configuration spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeCircuit:
		return modeNameCircuit
	case ModeExactSimulation:
		return modeNameExactSimulation
	case ModeStateTomography:
		return modeNameStateTomography
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps a configuration spelling to a Mode.
// Fails with ErrConfiguration on unknown spellings.
func ParseMode(s string) (Mode, error) {
	switch s {
	case modeNameCircuit:
		return ModeCircuit, nil
	case modeNameExactSimulation:
		return ModeExactSimulation, nil
	case modeNameStateTomography:
		return ModeStateTomography, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrConfiguration, s)
	}
}

// InitialStatePreparer contributes the state-preparation fragment
// targeting the io register.
type InitialStatePreparer interface {
	// ConstructCircuit returns the preparation fragment for the target
	// register. It must not mutate the circuit; the assembler appends.
	ConstructCircuit(target *circuit.Register) (*circuit.Fragment, error)
}

// EigenvalueEstimator contributes phase estimation and its exact
// inverse. RegisterSizes is consulted during planning, before any
// construction.
type EigenvalueEstimator interface {
	// RegisterSizes returns (num_q, num_a): the io width the estimator
	// expects and the ancilla width it owns.
	RegisterSizes() (numQ, numA int)

	// ConstructCircuit allocates the eigenvalue register on qc and
	// returns the forward estimation fragment together with that
	// register. It must not append gates itself.
	ConstructCircuit(qc *circuit.Circuit, target *circuit.Register) (*circuit.Fragment, *circuit.Register, error)

	// ConstructInverse returns the exact adjoint of the most recently
	// constructed forward fragment, with identical parameters.
	ConstructInverse() (*circuit.Fragment, error)
}

// ReciprocalRotator contributes the conditioned reciprocal rotation,
// allocating and returning the one-qubit success ancilla.
type ReciprocalRotator interface {
	ConstructCircuit(qc *circuit.Circuit, eigenvalues *circuit.Register) (*circuit.Fragment, *circuit.Register, error)
}

// Result is the outcome of a backend execution. Backends that cannot
// produce exact amplitudes return an error from StateVector.
type Result interface {
	StateVector() ([]complex128, error)
}

// ExecutionBackend executes an assembled circuit. Required only for
// ModeExactSimulation; SupportsStateVector is checked once at
// configuration time, never at execution time.
type ExecutionBackend interface {
	Execute(ctx context.Context, qc *circuit.Circuit) (Result, error)
	SupportsStateVector() bool
}

// Outcome is the structured result of a run. Circuit, register handles
// and Mode are always populated; Solution and SuccessProbability only in
// exact-simulation mode; SuccessBit only when a measurement was
// appended (every mode except exact simulation).
type Outcome struct {
	Mode Mode

	Circuit            *circuit.Circuit
	IORegister         *circuit.Register
	EigenvalueRegister *circuit.Register
	SuccessQubit       *circuit.Register
	SuccessBit         *circuit.ClassicalRegister

	// Solution maps fixed-width io-register bitstrings to renormalized
	// real amplitudes of the post-selected success branch.
	Solution map[string]float64

	// SuccessProbability is the probability mass of the success branch
	// before renormalization. Returned as part of the structured result
	// rather than logged (see DESIGN.md).
	SuccessProbability float64
}
