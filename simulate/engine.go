// Package simulate: the gate-application engine.
package simulate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qsolve/circuit"
)

// Sentinel errors returned by the simulate package.
var (
	// ErrNilCircuit indicates a nil circuit was submitted.
	ErrNilCircuit = errors.New("simulate: circuit is nil")

	// ErrNoQubits indicates a circuit with no allocated qubits.
	ErrNoQubits = errors.New("simulate: circuit has no qubits")

	// ErrTooManyQubits guards the 2^N amplitude allocation.
	ErrTooManyQubits = errors.New("simulate: circuit exceeds the qubit limit")

	// ErrUnknownGate indicates a gate name the engine cannot apply.
	ErrUnknownGate = errors.New("simulate: unknown gate")

	// ErrNoStateVector indicates the result carries no retrievable state
	// vector (sampler results).
	ErrNoStateVector = errors.New("simulate: result carries no state vector")
)

// MaxQubits bounds the amplitude array (2^26 complex128 = 1 GiB).
const MaxQubits = 26

// run evolves |0...0> through every non-measurement gate of the circuit
// and returns the final amplitudes. Measurement gates are skipped here;
// backends that need them post-process the returned state.
func run(ctx context.Context, qc *circuit.Circuit) ([]complex128, error) {
	if qc == nil {
		return nil, ErrNilCircuit
	}
	n := qc.NumQubits()
	if n == 0 {
		return nil, ErrNoQubits
	}
	if n > MaxQubits {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyQubits, n, MaxQubits)
	}

	state := make([]complex128, 1<<uint(n))
	state[0] = 1

	for i, g := range qc.Gates() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := apply(state, g); err != nil {
			return nil, fmt.Errorf("simulate: gate %d (%s): %w", i, g.Name, err)
		}
	}

	return state, nil
}

// apply dispatches one gate onto the state in place.
func apply(state []complex128, g circuit.Gate) error {
	switch g.Name {
	case circuit.GateH:
		h := complex(1/math.Sqrt2, 0)
		return apply2x2(state, g, [2][2]complex128{{h, h}, {h, -h}})
	case circuit.GateX, circuit.GateCX:
		return apply2x2(state, g, [2][2]complex128{{0, 1}, {1, 0}})
	case circuit.GateZ:
		return apply2x2(state, g, [2][2]complex128{{1, 0}, {0, -1}})
	case circuit.GateRY, circuit.GateMCRY:
		c := complex(math.Cos(g.Params[0]/2), 0)
		s := complex(math.Sin(g.Params[0]/2), 0)
		return apply2x2(state, g, [2][2]complex128{{c, -s}, {s, c}})
	case circuit.GatePhase, circuit.GateCPhase:
		return apply2x2(state, g, [2][2]complex128{{1, 0}, {0, cmplx.Rect(1, g.Params[0])}})
	case circuit.GateSwap:
		return applySwap(state, g)
	case circuit.GateUnitary:
		return applyUnitary(state, g)
	case circuit.GateMeasure:
		return nil // deferred to the backend
	default:
		return ErrUnknownGate
	}
}

// controlsOpen reports whether every control qubit of g matches its
// required pattern bit at amplitude index i.
func controlsOpen(i int, g circuit.Gate) bool {
	for k, q := range g.Controls {
		bit := (i >> uint(q)) & 1
		want := int((g.CtrlPattern >> uint(k)) & 1)
		if bit != want {
			return false
		}
	}

	return true
}

// apply2x2 applies a single-qubit matrix to Targets[0] on every index
// pair whose controls are open. Controls are disjoint from the target
// (validated on Append), so both pair members share the control check.
func apply2x2(state []complex128, g circuit.Gate, m [2][2]complex128) error {
	bit := 1 << uint(g.Targets[0])
	for i := range state {
		if i&bit != 0 || !controlsOpen(i, g) {
			continue
		}
		j := i | bit
		a0, a1 := state[i], state[j]
		state[i] = m[0][0]*a0 + m[0][1]*a1
		state[j] = m[1][0]*a0 + m[1][1]*a1
	}

	return nil
}

// applySwap exchanges the two target bits on every open index.
func applySwap(state []complex128, g circuit.Gate) error {
	b0 := 1 << uint(g.Targets[0])
	b1 := 1 << uint(g.Targets[1])
	for i := range state {
		// Visit each pair once: bit0 set, bit1 clear.
		if i&b0 == 0 || i&b1 != 0 || !controlsOpen(i, g) {
			continue
		}
		j := (i &^ b0) | b1
		state[i], state[j] = state[j], state[i]
	}

	return nil
}

// applyUnitary applies a dense payload over k target qubits: for every
// base index with all target bits clear and controls open, the 2^k
// amplitudes of the target subspace are gathered, multiplied and
// scattered back. Subspace bit b corresponds to Targets[b].
func applyUnitary(state []complex128, g circuit.Gate) error {
	k := len(g.Targets)
	dim := 1 << uint(k)
	if len(g.Matrix) != dim {
		return circuit.ErrBadUnitary
	}

	// offsets[v] spreads subspace value v over the target qubits.
	offsets := make([]int, dim)
	for v := 0; v < dim; v++ {
		off := 0
		for b := 0; b < k; b++ {
			if v&(1<<uint(b)) != 0 {
				off |= 1 << uint(g.Targets[b])
			}
		}
		offsets[v] = off
	}
	targetMask := offsets[dim-1]

	in := make([]complex128, dim)
	for base := range state {
		if base&targetMask != 0 || !controlsOpen(base, g) {
			continue
		}
		for v := 0; v < dim; v++ {
			in[v] = state[base|offsets[v]]
		}
		for v := 0; v < dim; v++ {
			var acc complex128
			row := g.Matrix[v]
			for w := 0; w < dim; w++ {
				acc += row[w] * in[w]
			}
			state[base|offsets[v]] = acc
		}
	}

	return nil
}
