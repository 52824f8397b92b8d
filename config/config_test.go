// Package config_test validates YAML decoding and solver construction.
package config_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsolve/config"
	"github.com/katalvlaran/qsolve/hhl"
)

const exactDoc = `
mode: exact_simulation
matrix:
  - [1.5, 0.5]
  - [0.5, 1.5]
input_vector: [1, 0]
eigs:
  ancillae: 3
  evolution_time: 1.5707963267948966
backend:
  name: statevector
`

// ------------------------------------------------------------------------
// 1. Decoding.
// ------------------------------------------------------------------------

func TestParse_FullDocument(t *testing.T) {
	doc, err := config.Parse([]byte(exactDoc))
	require.NoError(t, err)
	require.Equal(t, "exact_simulation", doc.Mode)
	require.Equal(t, [][]float64{{1.5, 0.5}, {0.5, 1.5}}, doc.Matrix)
	require.Equal(t, 3, doc.Eigs.Ancillae)
	require.Equal(t, config.BackendStateVector, doc.Backend.Name)
	require.Len(t, doc.InputVector, 2)
	require.Equal(t, complex128(1), complex128(doc.InputVector[0]))
}

func TestParse_AmplitudePairs(t *testing.T) {
	doc, err := config.Parse([]byte(`input_vector: [[0.5, -0.5], 1]`))
	require.NoError(t, err)
	require.Equal(t, complex(0.5, -0.5), complex128(doc.InputVector[0]))
	require.Equal(t, complex(1, 0), complex128(doc.InputVector[1]))
}

func TestParse_RejectsBadAmplitude(t *testing.T) {
	_, err := config.Parse([]byte(`input_vector: [[1, 2, 3]]`))
	require.ErrorIs(t, err, config.ErrBadDocument)

	_, err = config.Parse([]byte(`input_vector: [{re: 1}]`))
	require.ErrorIs(t, err, config.ErrBadDocument)
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := config.Parse([]byte(`matrx: []`))
	require.ErrorIs(t, err, config.ErrBadDocument)
}

// ------------------------------------------------------------------------
// 2. Building.
// ------------------------------------------------------------------------

func TestBuild_ExactSimulationSolves(t *testing.T) {
	doc, err := config.Parse([]byte(exactDoc))
	require.NoError(t, err)

	solver, err := doc.Build()
	require.NoError(t, err)
	require.Equal(t, hhl.ModeExactSimulation, solver.Mode())

	out, err := solver.Run(context.Background())
	require.NoError(t, err)
	require.InDelta(t, 3/math.Sqrt(10), out.Solution["0"], 1e-8)
	require.InDelta(t, -1/math.Sqrt(10), out.Solution["1"], 1e-8)
}

func TestBuild_DefaultsToCircuitMode(t *testing.T) {
	doc, err := config.Parse([]byte(`
matrix:
  - [2, 0]
  - [0, 2]
input_vector: [1, 0]
`))
	require.NoError(t, err)

	solver, err := doc.Build()
	require.NoError(t, err)
	require.Equal(t, hhl.ModeCircuit, solver.Mode())

	// Defaults: 6 ancillae.
	_, numA := solver.RegisterSizes()
	require.Equal(t, 6, numA)
}

func TestBuild_PadsInputVector(t *testing.T) {
	doc, err := config.Parse([]byte(`
matrix:
  - [2, 0, 0, 0]
  - [0, 2, 0, 0]
  - [0, 0, 2, 0]
  - [0, 0, 0, 2]
input_vector: [1, 1]
eigs:
  ancillae: 2
`))
	require.NoError(t, err)

	_, err = doc.Build()
	require.NoError(t, err)
}

func TestBuild_UnknownComponents(t *testing.T) {
	doc, err := config.Parse([]byte(exactDoc))
	require.NoError(t, err)

	doc.InitialState.Name = "bell"
	_, err = doc.Build()
	require.ErrorIs(t, err, config.ErrUnknownComponent)

	doc.InitialState.Name = ""
	doc.Backend.Name = "hardware"
	_, err = doc.Build()
	require.ErrorIs(t, err, config.ErrUnknownComponent)
}

func TestBuild_SamplerRejectedForExactSimulation(t *testing.T) {
	doc, err := config.Parse([]byte(exactDoc))
	require.NoError(t, err)

	doc.Backend.Name = config.BackendSampler
	_, err = doc.Build()
	require.ErrorIs(t, err, hhl.ErrConfiguration)
}

func TestBuild_UnknownMode(t *testing.T) {
	doc, err := config.Parse([]byte(exactDoc))
	require.NoError(t, err)

	doc.Mode = "qasm"
	_, err = doc.Build()
	require.ErrorIs(t, err, hhl.ErrConfiguration)
}
