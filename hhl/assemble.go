// Package hhl: circuit assembly — the strict five-stage composition.
package hhl

import (
	"fmt"

	"github.com/katalvlaran/qsolve/circuit"
)

// Register names used by the assembler. The allocation order of these
// registers is the contract the extractor's bit-index algebra relies on.
const (
	ioRegisterName = "io"
	successBitName = "success_bit"
)

// assemble builds a fresh artifact in the fixed order:
//
//  1. allocate the io register,
//  2. append the initial-state fragment,
//  3. append forward eigenvalue estimation (allocates the eigenvalue
//     register),
//  4. append the reciprocal rotation (allocates the success qubit),
//  5. append the exact inverse of step 3,
//  6. unless mode is exact simulation: measure the success qubit into a
//     fresh 1-bit classical register.
//
// All-or-nothing: any collaborator failure aborts with ErrConstruction
// and no partial artifact escapes. Given fixed collaborators the result
// is structurally deterministic across calls.
func (s *Solver) assemble() (*Outcome, error) {
	qc := circuit.New()

	io, err := qc.AddRegister(ioRegisterName, s.numQ)
	if err != nil {
		return nil, constructionErr("io register", err)
	}

	frag, err := s.initState.ConstructCircuit(io)
	if err != nil {
		return nil, constructionErr("initial state", err)
	}
	if err = qc.Append(frag); err != nil {
		return nil, constructionErr("initial state", err)
	}

	forward, ev, err := s.estimator.ConstructCircuit(qc, io)
	if err != nil {
		return nil, constructionErr("eigenvalue estimation", err)
	}
	if ev == nil || ev.Size() != s.numA {
		return nil, constructionErr("eigenvalue estimation",
			fmt.Errorf("eigenvalue register size mismatch"))
	}
	if err = qc.Append(forward); err != nil {
		return nil, constructionErr("eigenvalue estimation", err)
	}

	rot, anc, err := s.reciprocal.ConstructCircuit(qc, ev)
	if err != nil {
		return nil, constructionErr("reciprocal rotation", err)
	}
	if anc == nil || anc.Size() != 1 {
		return nil, constructionErr("reciprocal rotation",
			fmt.Errorf("success register must hold exactly one qubit"))
	}
	if err = qc.Append(rot); err != nil {
		return nil, constructionErr("reciprocal rotation", err)
	}

	inverse, err := s.estimator.ConstructInverse()
	if err != nil {
		return nil, constructionErr("inverse eigenvalue estimation", err)
	}
	if err = qc.Append(inverse); err != nil {
		return nil, constructionErr("inverse eigenvalue estimation", err)
	}

	out := &Outcome{
		Mode:               s.mode,
		Circuit:            qc,
		IORegister:         io,
		EigenvalueRegister: ev,
		SuccessQubit:       anc,
	}

	if s.mode != ModeExactSimulation {
		bit, err := qc.AddClassical(successBitName, 1)
		if err != nil {
			return nil, constructionErr("measurement", err)
		}
		if err = qc.Measure(anc.Qubit(0), bit, 0); err != nil {
			return nil, constructionErr("measurement", err)
		}
		out.SuccessBit = bit
	}

	return out, nil
}

// constructionErr wraps a collaborator failure with the failing assembly
// stage. The sentinel stays matchable via errors.Is.
func constructionErr(stage string, err error) error {
	return fmt.Errorf("%w: assembly: %s: %v", ErrConstruction, stage, err)
}
