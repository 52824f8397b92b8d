// Package hhl: solver construction and register planning.
package hhl

import (
	"fmt"

	"github.com/katalvlaran/qsolve/linalg"
)

// Solver is the configured pipeline. All inputs are captured at New and
// treated as immutable; each Run assembles a fresh artifact.
type Solver struct {
	matrix [][]float64
	invec  []complex128

	initState  InitialStatePreparer
	estimator  EigenvalueEstimator
	reciprocal ReciprocalRotator
	backend    ExecutionBackend

	mode Mode
	numQ int
	numA int
}

// New validates the linear system and plans the registers, returning a
// configured solver. Every failure here is ErrConfiguration, raised
// before any circuit work begins:
//
//   - matrix must be square, finite, symmetric within the tolerance, and
//     of power-of-two dimension (padding is the caller's responsibility);
//   - invec must have the matrix dimension and non-zero norm;
//   - the estimator's num_q must equal log₂(dim);
//   - ModeExactSimulation requires a state-vector-capable backend.
func New(
	matrix [][]float64,
	invec []complex128,
	estimator EigenvalueEstimator,
	initState InitialStatePreparer,
	reciprocal ReciprocalRotator,
	opts ...Option,
) (*Solver, error) {
	if estimator == nil || initState == nil || reciprocal == nil {
		return nil, fmt.Errorf("%w: planning: missing collaborator", ErrConfiguration)
	}

	o := options{mode: DefaultMode, epsilon: linalg.DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}

	if err := linalg.ValidateSystem(matrix, o.epsilon); err != nil {
		return nil, fmt.Errorf("%w: planning: %v", ErrConfiguration, err)
	}
	dim := len(matrix)
	if len(invec) != dim {
		return nil, fmt.Errorf("%w: planning: input vector length %d, want %d",
			ErrConfiguration, len(invec), dim)
	}
	if linalg.Norm2(invec) == 0 {
		return nil, fmt.Errorf("%w: planning: input vector is zero", ErrConfiguration)
	}

	// Register planning: num_q is dictated by the matrix, num_a is opaque
	// and owned by the estimator's precision configuration.
	wantQ, err := linalg.Log2Dim(dim)
	if err != nil {
		return nil, fmt.Errorf("%w: planning: %v", ErrConfiguration, err)
	}
	numQ, numA := estimator.RegisterSizes()
	if numQ != wantQ {
		return nil, fmt.Errorf("%w: planning: estimator num_q %d, matrix needs %d",
			ErrConfiguration, numQ, wantQ)
	}
	if numA < 1 {
		return nil, fmt.Errorf("%w: planning: estimator num_a %d", ErrConfiguration, numA)
	}

	// Mode guard: exact simulation demands exact amplitudes. Checked
	// once here, never deferred to execution time.
	if o.mode == ModeExactSimulation {
		if o.backend == nil {
			return nil, fmt.Errorf("%w: dispatch: exact_simulation requires a backend",
				ErrConfiguration)
		}
		if !o.backend.SupportsStateVector() {
			return nil, fmt.Errorf("%w: dispatch: backend is not state-vector capable",
				ErrConfiguration)
		}
	}

	// Defensive copies: the solver owns its inputs for the run's duration.
	m := make([][]float64, dim)
	for i, row := range matrix {
		m[i] = append([]float64(nil), row...)
	}

	return &Solver{
		matrix:     m,
		invec:      append([]complex128(nil), invec...),
		initState:  initState,
		estimator:  estimator,
		reciprocal: reciprocal,
		backend:    o.backend,
		mode:       o.mode,
		numQ:       numQ,
		numA:       numA,
	}, nil
}

// Mode returns the configured mode.
func (s *Solver) Mode() Mode { return s.mode }

// RegisterSizes returns the planned (num_q, num_a).
func (s *Solver) RegisterSizes() (numQ, numA int) { return s.numQ, s.numA }
