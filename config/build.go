// Package config: turning a decoded document into a configured solver.
package config

import (
	"fmt"
	"os"

	"github.com/katalvlaran/qsolve/eigs"
	"github.com/katalvlaran/qsolve/hhl"
	"github.com/katalvlaran/qsolve/initstate"
	"github.com/katalvlaran/qsolve/reciprocal"
	"github.com/katalvlaran/qsolve/simulate"
)

// Load reads and decodes a YAML document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}

// Build assembles the collaborators the document names and returns the
// configured solver. Validation of the linear system itself is the
// solver's job; Build only resolves names and defaults.
func (d *Document) Build() (*hhl.Solver, error) {
	modeName := d.Mode
	if modeName == "" {
		modeName = hhl.ModeCircuit.String()
	}
	mode, err := hhl.ParseMode(modeName)
	if err != nil {
		return nil, err
	}

	invec := d.paddedVector()

	estimator, err := d.buildEstimator()
	if err != nil {
		return nil, err
	}
	prep, err := d.buildInitialState(invec)
	if err != nil {
		return nil, err
	}
	rotator, err := d.buildReciprocal()
	if err != nil {
		return nil, err
	}
	backend, err := d.buildBackend()
	if err != nil {
		return nil, err
	}

	opts := []hhl.Option{hhl.WithMode(mode)}
	if backend != nil {
		opts = append(opts, hhl.WithBackend(backend))
	}

	return hhl.New(d.Matrix, invec, estimator, prep, rotator, opts...)
}

// paddedVector converts the amplitudes and zero-pads them up to the
// matrix dimension. A vector longer than the matrix passes through
// unchanged so the solver reports the mismatch.
func (d *Document) paddedVector() []complex128 {
	n := len(d.InputVector)
	if len(d.Matrix) > n {
		n = len(d.Matrix)
	}
	out := make([]complex128, n)
	for i, a := range d.InputVector {
		out[i] = complex128(a)
	}

	return out
}

func (d *Document) buildEstimator() (*eigs.Estimator, error) {
	var opts []eigs.Option
	if d.Eigs.Ancillae != 0 {
		opts = append(opts, eigs.WithAncillae(d.Eigs.Ancillae))
	}
	if d.Eigs.EvolutionTime > 0 {
		opts = append(opts, eigs.WithEvolutionTime(d.Eigs.EvolutionTime))
	}

	return eigs.New(d.Matrix, opts...)
}

func (d *Document) buildInitialState(invec []complex128) (hhl.InitialStatePreparer, error) {
	name := d.InitialState.Name
	if name == "" {
		name = InitialStateCustom
		if isFirstBasis(invec) {
			name = InitialStateZero
		}
	}

	switch name {
	case InitialStateZero:
		return initstate.NewZero(), nil
	case InitialStateCustom:
		return initstate.NewCustom(invec), nil
	default:
		return nil, fmt.Errorf("%w: initial_state %q", ErrUnknownComponent, name)
	}
}

func (d *Document) buildReciprocal() (*reciprocal.Rotator, error) {
	var opts []reciprocal.Option
	if d.Reciprocal.Scale != 0 {
		opts = append(opts, reciprocal.WithScale(d.Reciprocal.Scale))
	}

	return reciprocal.New(opts...)
}

func (d *Document) buildBackend() (hhl.ExecutionBackend, error) {
	switch d.Backend.Name {
	case "":
		return nil, nil
	case BackendStateVector:
		return simulate.NewStateVector(), nil
	case BackendSampler:
		var opts []simulate.SamplerOption
		if d.Backend.Shots > 0 {
			opts = append(opts, simulate.WithShots(d.Backend.Shots))
		}
		if d.Backend.Seed != 0 {
			opts = append(opts, simulate.WithSeed(d.Backend.Seed))
		}

		return simulate.NewSampler(opts...), nil
	default:
		return nil, fmt.Errorf("%w: backend %q", ErrUnknownComponent, d.Backend.Name)
	}
}

// isFirstBasis reports whether v is a non-zero multiple of the first
// computational basis vector.
func isFirstBasis(v []complex128) bool {
	if len(v) == 0 || v[0] == 0 {
		return false
	}
	for _, a := range v[1:] {
		if a != 0 {
			return false
		}
	}

	return true
}
