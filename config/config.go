// Package config: the document schema and its YAML decoding.
package config

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Sentinel errors returned by the config package.
var (
	// ErrBadDocument indicates the YAML document could not be decoded.
	ErrBadDocument = errors.New("config: malformed document")

	// ErrBadAmplitude indicates an input_vector entry that is neither a
	// number nor an [re, im] pair.
	ErrBadAmplitude = errors.New("config: amplitude must be a number or an [re, im] pair")

	// ErrUnknownComponent indicates an initial_state or backend name with
	// no registered factory.
	ErrUnknownComponent = errors.New("config: unknown component")
)

// Component and mode names accepted by Build.
const (
	InitialStateZero   = "zero"
	InitialStateCustom = "custom"

	BackendStateVector = "statevector"
	BackendSampler     = "sampler"
)

// Amplitude is one complex entry of the input vector. YAML accepts a
// plain scalar (real part only) or a two-element [re, im] sequence.
type Amplitude complex128

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Amplitude) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var re float64
		if err := node.Decode(&re); err != nil {
			return fmt.Errorf("%w: %v", ErrBadAmplitude, err)
		}
		*a = Amplitude(complex(re, 0))

		return nil
	case yaml.SequenceNode:
		var pair []float64
		if err := node.Decode(&pair); err != nil || len(pair) != 2 {
			return fmt.Errorf("%w: line %d", ErrBadAmplitude, node.Line)
		}
		*a = Amplitude(complex(pair[0], pair[1]))

		return nil
	default:
		return fmt.Errorf("%w: line %d", ErrBadAmplitude, node.Line)
	}
}

// EigsConfig configures the phase-estimation collaborator.
type EigsConfig struct {
	// Ancillae is the eigenvalue-register width; 0 keeps the default.
	Ancillae int `yaml:"ancillae"`

	// EvolutionTime overrides the spectrum-derived evolution time when
	// positive.
	EvolutionTime float64 `yaml:"evolution_time"`
}

// InitialStateConfig names the state-preparation collaborator.
type InitialStateConfig struct {
	// Name is "zero" or "custom"; empty picks "zero" for a first-basis
	// input vector and "custom" otherwise.
	Name string `yaml:"name"`
}

// ReciprocalConfig configures the lookup rotation.
type ReciprocalConfig struct {
	// Scale is the rotation scale in (0, 1]; 0 keeps the default.
	Scale float64 `yaml:"scale"`
}

// BackendConfig names the execution backend.
type BackendConfig struct {
	// Name is "statevector" or "sampler"; empty configures no backend.
	Name string `yaml:"name"`

	// Shots and Seed apply to the sampler only.
	Shots int   `yaml:"shots"`
	Seed  int64 `yaml:"seed"`
}

// Document is the full YAML problem description.
type Document struct {
	Mode         string             `yaml:"mode"`
	Matrix       [][]float64        `yaml:"matrix"`
	InputVector  []Amplitude        `yaml:"input_vector"`
	Eigs         EigsConfig         `yaml:"eigs"`
	InitialState InitialStateConfig `yaml:"initial_state"`
	Reciprocal   ReciprocalConfig   `yaml:"reciprocal"`
	Backend      BackendConfig      `yaml:"backend"`
}

// Parse decodes a YAML document. Strict decoding: unknown fields fail.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return &doc, nil
}
