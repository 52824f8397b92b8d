// Package config declares the YAML problem description and builds a
// configured solver from it.
//
// A minimal document:
//
//	mode: exact_simulation
//	matrix:
//	  - [1.5, 0.5]
//	  - [0.5, 1.5]
//	input_vector: [1, 0]
//	eigs:
//	  ancillae: 3
//	backend:
//	  name: statevector
//
// Omitted sections fall back to the documented defaults: circuit mode,
// 6 ancillae, spectrum-derived evolution time, the zero initial state
// when the input vector is the first basis vector (a custom
// amplitude-encoding otherwise), lookup scale 1 and no backend.
// Amplitudes accept either a plain number or an [re, im] pair. An input
// vector shorter than the matrix dimension is zero-padded.
package config
