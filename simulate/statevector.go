package simulate

import (
	"context"

	"github.com/katalvlaran/qsolve/circuit"
	"github.com/katalvlaran/qsolve/hhl"
)

// StateVector is the exact-amplitude backend. The zero value is ready
// to use.
type StateVector struct{}

// NewStateVector returns the exact-amplitude backend.
func NewStateVector() *StateVector { return &StateVector{} }

// SupportsStateVector reports true; results expose the full amplitude
// array.
func (s *StateVector) SupportsStateVector() bool { return true }

// Execute evolves the circuit and returns a result wrapping the final
// amplitudes. Measurement gates are ignored; the caller post-processes
// the unmeasured state.
func (s *StateVector) Execute(ctx context.Context, qc *circuit.Circuit) (hhl.Result, error) {
	state, err := run(ctx, qc)
	if err != nil {
		return nil, err
	}

	return &stateResult{state: state}, nil
}

// stateResult carries the final amplitudes of one execution.
type stateResult struct {
	state []complex128
}

// StateVector returns a copy of the amplitudes, index bit k = qubit k.
func (r *stateResult) StateVector() ([]complex128, error) {
	out := make([]complex128, len(r.state))
	copy(out, r.state)

	return out, nil
}
