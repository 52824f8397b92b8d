// Package circuit: gate constructors and per-gate adjoints.
package circuit

// H returns a Hadamard gate on qubit q.
func H(q int) Gate { return Gate{Name: GateH, Targets: []int{q}, Cbit: -1} }

// X returns a Pauli-X gate on qubit q.
func X(q int) Gate { return Gate{Name: GateX, Targets: []int{q}, Cbit: -1} }

// Z returns a Pauli-Z gate on qubit q.
func Z(q int) Gate { return Gate{Name: GateZ, Targets: []int{q}, Cbit: -1} }

// RY returns a Y-axis rotation by theta on qubit q.
func RY(theta float64, q int) Gate {
	return Gate{Name: GateRY, Targets: []int{q}, Params: []float64{theta}, Cbit: -1}
}

// Phase returns a phase gate by lambda on qubit q.
func Phase(lambda float64, q int) Gate {
	return Gate{Name: GatePhase, Targets: []int{q}, Params: []float64{lambda}, Cbit: -1}
}

// CX returns a controlled-X with control c and target t.
func CX(c, t int) Gate {
	return Gate{Name: GateCX, Targets: []int{t}, Controls: []int{c}, CtrlPattern: 1, Cbit: -1}
}

// CPhase returns a controlled phase by lambda with control c and target t.
func CPhase(lambda float64, c, t int) Gate {
	return Gate{
		Name:        GateCPhase,
		Targets:     []int{t},
		Controls:    []int{c},
		CtrlPattern: 1,
		Params:      []float64{lambda},
		Cbit:        -1,
	}
}

// Swap returns a swap of qubits a and b.
func Swap(a, b int) Gate { return Gate{Name: GateSwap, Targets: []int{a, b}, Cbit: -1} }

// Unitary returns a dense unitary gate acting on targets; targets[0] is
// the least significant bit of the payload subspace. The payload must be
// a square 2^len(targets) matrix (checked on Append).
func Unitary(m [][]complex128, targets ...int) Gate {
	return Gate{Name: GateUnitary, Targets: targets, Matrix: m, Cbit: -1}
}

// ControlledUnitary returns a dense unitary applied only when the single
// control qubit is |1>.
func ControlledUnitary(m [][]complex128, control int, targets ...int) Gate {
	return Gate{
		Name:        GateUnitary,
		Targets:     targets,
		Controls:    []int{control},
		CtrlPattern: 1,
		Matrix:      m,
		Cbit:        -1,
	}
}

// MCRY returns a Y-rotation by theta on target, applied only when every
// controls[i] equals bit i of pattern. Zero pattern bits act as
// control-on-zero, which the reciprocal lookup uses to address each
// eigenvalue-register basis state.
func MCRY(theta float64, controls []int, pattern uint64, target int) Gate {
	return Gate{
		Name:        GateMCRY,
		Targets:     []int{target},
		Controls:    controls,
		CtrlPattern: pattern,
		Params:      []float64{theta},
		Cbit:        -1,
	}
}

// Measure returns a projective measurement of qubit q into bit `bit` of
// classical register creg.
func Measure(q int, creg *ClassicalRegister, bit int) Gate {
	return Gate{Name: GateMeasure, Targets: []int{q}, Creg: creg, Cbit: bit}
}

// adjoint returns the inverse of g, or ErrNotInvertible for measurements.
// h/x/z/cx/swap are self-inverse; rotations and phases negate their
// angle; dense payloads are conjugate-transposed.
func (g Gate) adjoint() (Gate, error) {
	switch g.Name {
	case GateH, GateX, GateZ, GateCX, GateSwap:
		return g, nil
	case GateRY, GatePhase, GateCPhase, GateMCRY:
		inv := g
		inv.Params = []float64{-g.Params[0]}

		return inv, nil
	case GateUnitary:
		inv := g
		inv.Matrix = conjTranspose(g.Matrix)

		return inv, nil
	default:
		return Gate{}, ErrNotInvertible
	}
}

// conjTranspose returns the conjugate transpose of a square matrix.
func conjTranspose(m [][]complex128) [][]complex128 {
	n := len(m)
	out := make([][]complex128, n)
	for i := 0; i < n; i++ {
		out[i] = make([]complex128, n)
		for j := 0; j < n; j++ {
			re, im := real(m[j][i]), imag(m[j][i])
			out[i][j] = complex(re, -im)
		}
	}

	return out
}

// validate checks the internal consistency of a gate against a circuit
// with numQubits allocated qubits. Returns a sentinel error on the first
// violation in a fixed order: qubit range -> control set -> payload.
func (g Gate) validate(numQubits int) error {
	seen := make(map[int]bool, len(g.Targets)+len(g.Controls))
	for _, q := range g.Targets {
		if q < 0 || q >= numQubits {
			return ErrQubitOutOfRange
		}
		if seen[q] {
			return ErrBadControl
		}
		seen[q] = true
	}
	for _, q := range g.Controls {
		if q < 0 || q >= numQubits {
			return ErrQubitOutOfRange
		}
		if seen[q] {
			return ErrBadControl
		}
		seen[q] = true
	}
	if len(g.Controls) < 64 && g.CtrlPattern >= uint64(1)<<uint(len(g.Controls)) {
		return ErrBadControl
	}

	if g.Name == GateUnitary {
		want := 1 << uint(len(g.Targets))
		if len(g.Targets) == 0 || len(g.Matrix) != want {
			return ErrBadUnitary
		}
		for _, row := range g.Matrix {
			if len(row) != want {
				return ErrBadUnitary
			}
		}
	}
	if g.Name == GateMeasure {
		if g.Creg == nil || g.Cbit < 0 || g.Cbit >= g.Creg.Size() {
			return ErrCbitOutOfRange
		}
	}

	return nil
}
