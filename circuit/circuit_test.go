// Package circuit_test validates register allocation, fragment
// composition, adjoints and QASM export.
package circuit_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsolve/circuit"
)

// ------------------------------------------------------------------------
// 1. Register allocation: contiguous spans in call order.
// ------------------------------------------------------------------------

func TestAddRegister_AllocationOrder(t *testing.T) {
	qc := circuit.New()

	io, err := qc.AddRegister("io", 2)
	require.NoError(t, err)
	ev, err := qc.AddRegister("eigs", 3)
	require.NoError(t, err)
	anc, err := qc.AddRegister("anc", 1)
	require.NoError(t, err)

	// io occupies [0,1], eigs [2,4], anc [5].
	require.Equal(t, []int{0, 1}, io.Qubits())
	require.Equal(t, []int{2, 3, 4}, ev.Qubits())
	require.Equal(t, 5, anc.Qubit(0))
	require.Equal(t, 6, qc.NumQubits())
}

func TestAddRegister_Invalid(t *testing.T) {
	qc := circuit.New()
	_, err := qc.AddRegister("io", 0)
	require.ErrorIs(t, err, circuit.ErrBadRegisterSize)

	_, err = qc.AddRegister("io", 2)
	require.NoError(t, err)
	_, err = qc.AddRegister("io", 1)
	require.ErrorIs(t, err, circuit.ErrDuplicateRegister)
}

// ------------------------------------------------------------------------
// 2. Fragment append: validation is all-or-nothing.
// ------------------------------------------------------------------------

func TestAppend_OutOfRangeLeavesCircuitUntouched(t *testing.T) {
	qc := circuit.New()
	_, err := qc.AddRegister("io", 1)
	require.NoError(t, err)

	f := circuit.NewFragment()
	f.Append(circuit.H(0), circuit.X(7)) // second gate out of range
	err = qc.Append(f)
	require.ErrorIs(t, err, circuit.ErrQubitOutOfRange)
	require.Equal(t, 0, qc.NumGates())
}

func TestAppend_NilFragment(t *testing.T) {
	qc := circuit.New()
	require.ErrorIs(t, qc.Append(nil), circuit.ErrNilFragment)
}

func TestAppend_BadUnitaryShape(t *testing.T) {
	qc := circuit.New()
	_, err := qc.AddRegister("io", 2)
	require.NoError(t, err)

	// 2x2 payload on a 2-qubit target needs 4x4.
	bad := [][]complex128{{1, 0}, {0, 1}}
	f := circuit.NewFragment()
	f.Append(circuit.Unitary(bad, 0, 1))
	require.ErrorIs(t, qc.Append(f), circuit.ErrBadUnitary)
}

func TestAppend_ControlOverlapsTarget(t *testing.T) {
	qc := circuit.New()
	_, err := qc.AddRegister("io", 2)
	require.NoError(t, err)

	f := circuit.NewFragment()
	f.Append(circuit.CX(1, 1))
	require.ErrorIs(t, qc.Append(f), circuit.ErrBadControl)
}

// ------------------------------------------------------------------------
// 3. Adjoints: reversal, angle negation, conjugate transpose.
// ------------------------------------------------------------------------

func TestAdjoint_ReversesAndNegates(t *testing.T) {
	f := circuit.NewFragment()
	f.Append(circuit.H(0), circuit.RY(math.Pi/3, 1), circuit.CPhase(0.25, 0, 1))

	inv, err := f.Adjoint()
	require.NoError(t, err)
	gates := inv.Gates()
	require.Len(t, gates, 3)

	// Reverse order: cp first, h last.
	require.Equal(t, circuit.GateCPhase, gates[0].Name)
	require.InDelta(t, -0.25, gates[0].Params[0], 1e-15)
	require.Equal(t, circuit.GateRY, gates[1].Name)
	require.InDelta(t, -math.Pi/3, gates[1].Params[0], 1e-15)
	require.Equal(t, circuit.GateH, gates[2].Name)
}

func TestAdjoint_ConjugateTransposesUnitary(t *testing.T) {
	u := [][]complex128{
		{0, complex(0, -1)},
		{complex(0, 1), 0},
	}
	f := circuit.NewFragment()
	f.Append(circuit.Unitary(u, 0))

	inv, err := f.Adjoint()
	require.NoError(t, err)
	got := inv.Gates()[0].Matrix
	require.Equal(t, complex128(complex(0, -1)), got[0][1])
	require.Equal(t, complex128(complex(0, 1)), got[1][0])

	// The original payload is untouched.
	require.Equal(t, complex128(complex(0, -1)), u[0][1])
}

func TestAdjoint_MeasurementNotInvertible(t *testing.T) {
	qc := circuit.New()
	_, err := qc.AddRegister("io", 1)
	require.NoError(t, err)
	creg, err := qc.AddClassical("c", 1)
	require.NoError(t, err)

	f := circuit.NewFragment()
	f.Append(circuit.H(0), circuit.Measure(0, creg, 0))
	_, err = f.Adjoint()
	require.ErrorIs(t, err, circuit.ErrNotInvertible)
}

// ------------------------------------------------------------------------
// 4. QASM export.
// ------------------------------------------------------------------------

func TestQASM_NamedGatesAndMeasurement(t *testing.T) {
	qc := circuit.New()
	io, err := qc.AddRegister("io", 2)
	require.NoError(t, err)
	creg, err := qc.AddClassical("success", 1)
	require.NoError(t, err)

	f := circuit.NewFragment()
	f.Append(circuit.H(io.Qubit(0)), circuit.CX(io.Qubit(0), io.Qubit(1)))
	require.NoError(t, qc.Append(f))
	require.NoError(t, qc.Measure(io.Qubit(1), creg, 0))

	out := qc.QASM()
	require.Contains(t, out, "OPENQASM 2.0;")
	require.Contains(t, out, "qreg q[2];")
	require.Contains(t, out, "creg success[1];")
	require.Contains(t, out, "h q[0];")
	require.Contains(t, out, "cx q[0], q[1];")
	require.Contains(t, out, "measure q[1] -> success[0];")
}

func TestQASM_UnitaryEmittedAsComment(t *testing.T) {
	qc := circuit.New()
	_, err := qc.AddRegister("io", 1)
	require.NoError(t, err)

	u := [][]complex128{{1, 0}, {0, 1}}
	f := circuit.NewFragment()
	f.Append(circuit.Unitary(u, 0))
	require.NoError(t, qc.Append(f))

	for _, line := range strings.Split(qc.QASM(), "\n") {
		if strings.Contains(line, "unitary") {
			require.True(t, strings.HasPrefix(line, "//"))

			return
		}
	}
	t.Fatal("unitary gate missing from QASM output")
}

func TestQASM_OneLinePerGate(t *testing.T) {
	qc := circuit.New()
	_, err := qc.AddRegister("io", 3)
	require.NoError(t, err)
	creg, err := qc.AddClassical("c", 1)
	require.NoError(t, err)

	u := [][]complex128{{1, 0}, {0, 1}}
	f := circuit.NewFragment()
	f.Append(
		circuit.H(0),
		circuit.MCRY(0.5, []int{1, 2}, 2, 0),
		circuit.Unitary(u, 1),
		circuit.Swap(0, 2),
	)
	require.NoError(t, qc.Append(f))
	require.NoError(t, qc.Measure(0, creg, 0))

	// The gate section follows the last blank line; every gate, comment
	// rendered or not, occupies exactly one line.
	out := qc.QASM()
	section := out[strings.LastIndex(out, "\n\n")+2:]
	lines := strings.Split(strings.TrimRight(section, "\n"), "\n")
	require.Len(t, lines, qc.NumGates())
}

// ------------------------------------------------------------------------
// 5. Measurement bookkeeping.
// ------------------------------------------------------------------------

func TestHasMeasurement(t *testing.T) {
	qc := circuit.New()
	_, err := qc.AddRegister("io", 1)
	require.NoError(t, err)
	require.False(t, qc.HasMeasurement())

	creg, err := qc.AddClassical("c", 1)
	require.NoError(t, err)
	require.NoError(t, qc.Measure(0, creg, 0))
	require.True(t, qc.HasMeasurement())
}

func TestMeasure_CbitOutOfRange(t *testing.T) {
	qc := circuit.New()
	_, err := qc.AddRegister("io", 1)
	require.NoError(t, err)
	creg, err := qc.AddClassical("c", 1)
	require.NoError(t, err)
	require.ErrorIs(t, qc.Measure(0, creg, 3), circuit.ErrCbitOutOfRange)
}
