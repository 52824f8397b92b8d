// Package circuit: fragments — ordered gate sequences built by
// collaborators and composed into circuits by the assembler.
package circuit

// Fragment is an append-only ordered gate sequence. A fragment does not
// own qubits; gate indices are resolved against the circuit it is later
// appended to.
type Fragment struct {
	gates []Gate
}

// NewFragment returns an empty fragment.
func NewFragment() *Fragment { return &Fragment{} }

// Append adds gates to the fragment in order.
func (f *Fragment) Append(gates ...Gate) { f.gates = append(f.gates, gates...) }

// Extend appends all gates of other, preserving order. A nil other is a
// no-op.
func (f *Fragment) Extend(other *Fragment) {
	if other == nil {
		return
	}
	f.gates = append(f.gates, other.gates...)
}

// Len returns the number of gates in the fragment.
func (f *Fragment) Len() int { return len(f.gates) }

// Gates returns a copy of the gate sequence.
func (f *Fragment) Gates() []Gate {
	out := make([]Gate, len(f.gates))
	copy(out, f.gates)

	return out
}

// Adjoint returns the exact inverse of the fragment: gates in reverse
// order, each replaced by its per-gate adjoint. Fails with
// ErrNotInvertible if the fragment contains a measurement. The receiver
// is not modified.
//
// Complexity: O(g + u) where g = gate count and u = total unitary
// payload size (conjugate transposition copies payloads).
func (f *Fragment) Adjoint() (*Fragment, error) {
	inv := &Fragment{gates: make([]Gate, 0, len(f.gates))}
	for i := len(f.gates) - 1; i >= 0; i-- {
		g, err := f.gates[i].adjoint()
		if err != nil {
			return nil, err
		}
		inv.gates = append(inv.gates, g)
	}

	return inv, nil
}
