// Package hhl: the mode dispatcher.
package hhl

import (
	"context"
	"fmt"
)

// Run assembles a fresh artifact and dispatches on the configured mode.
// All three states are terminal:
//
//   - ModeCircuit returns the artifact and its register handles.
//   - ModeExactSimulation executes on the configured backend, waits for
//     the state vector, and extracts the renormalized solution mapping
//     plus the success probability.
//   - ModeStateTomography fails with ErrNotSupported.
//
// The call blocks until the backend has produced its result; extraction
// never overlaps execution.
func (s *Solver) Run(ctx context.Context) (*Outcome, error) {
	out, err := s.assemble()
	if err != nil {
		return nil, err
	}

	switch s.mode {
	case ModeCircuit:
		return out, nil

	case ModeExactSimulation:
		res, err := s.backend.Execute(ctx, out.Circuit)
		if err != nil {
			return nil, fmt.Errorf("hhl: execute: %w", err)
		}
		sv, err := res.StateVector()
		if err != nil {
			return nil, fmt.Errorf("%w: extraction: %v", ErrExtraction, err)
		}
		solution, p, err := ExtractExactState(sv, s.numQ)
		if err != nil {
			return nil, err
		}
		out.Solution = solution
		out.SuccessProbability = p

		return out, nil

	case ModeStateTomography:
		return nil, fmt.Errorf("%w: dispatch: state_tomography", ErrNotSupported)

	default:
		return nil, fmt.Errorf("%w: dispatch: unknown mode %d", ErrConfiguration, int(s.mode))
	}
}
