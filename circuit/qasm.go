// Package circuit: OpenQASM 2.0 export.
//
// The exporter covers the named-gate subset (h, x, z, ry, p, cx, cp,
// swap, measure). Dense unitaries and patterned multi-controlled
// rotations have no QASM 2.0 primitive; they are emitted as comment
// lines carrying the gate name and operand indices so the output stays
// parseable by QASM tooling while remaining faithful to the circuit
// structure.
package circuit

import (
	"fmt"
	"strings"
)

// QASM renders the circuit as an OpenQASM 2.0 program. Registers are
// flattened into a single qreg in allocation order, matching the global
// qubit indexing used everywhere else in the package.
func (c *Circuit) QASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")

	for _, r := range c.registers {
		fmt.Fprintf(&sb, "// %s: qubits [%d..%d]\n", r.name, r.start, r.start+r.size-1)
	}
	fmt.Fprintf(&sb, "qreg q[%d];\n", maxInt(c.numQubits, 1))
	for _, cr := range c.classical {
		fmt.Fprintf(&sb, "creg %s[%d];\n", cr.name, cr.size)
	}
	sb.WriteString("\n")

	for _, g := range c.gates {
		writeQASMGate(&sb, g)
	}

	return sb.String()
}

func writeQASMGate(sb *strings.Builder, g Gate) {
	switch g.Name {
	case GateH, GateX, GateZ:
		fmt.Fprintf(sb, "%s q[%d];\n", g.Name, g.Targets[0])
	case GateRY:
		fmt.Fprintf(sb, "ry(%.12g) q[%d];\n", g.Params[0], g.Targets[0])
	case GatePhase:
		fmt.Fprintf(sb, "p(%.12g) q[%d];\n", g.Params[0], g.Targets[0])
	case GateCX:
		fmt.Fprintf(sb, "cx q[%d], q[%d];\n", g.Controls[0], g.Targets[0])
	case GateCPhase:
		fmt.Fprintf(sb, "cp(%.12g) q[%d], q[%d];\n", g.Params[0], g.Controls[0], g.Targets[0])
	case GateSwap:
		fmt.Fprintf(sb, "swap q[%d], q[%d];\n", g.Targets[0], g.Targets[1])
	case GateMeasure:
		fmt.Fprintf(sb, "measure q[%d] -> %s[%d];\n", g.Targets[0], g.Creg.Name(), g.Cbit)
	case GateUnitary:
		fmt.Fprintf(sb, "// unitary[%dx%d]", len(g.Matrix), len(g.Matrix))
		writeOperands(sb, g)
	case GateMCRY:
		fmt.Fprintf(sb, "// mcry(%.12g) pattern=%b", g.Params[0], g.CtrlPattern)
		writeOperands(sb, g)
	default:
		fmt.Fprintf(sb, "// %s", g.Name)
		writeOperands(sb, g)
	}
}

func writeOperands(sb *strings.Builder, g Gate) {
	for _, q := range g.Controls {
		fmt.Fprintf(sb, " c:q[%d]", q)
	}
	for _, q := range g.Targets {
		fmt.Fprintf(sb, " q[%d]", q)
	}
	sb.WriteString("\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
