// Package circuit: the composite Circuit type — register allocation and
// fragment composition.
package circuit

import "fmt"

// Circuit is a linear, acyclic composition of gates over registers
// allocated in call order. Qubit indices are global and contiguous:
// the first register occupies indices [0, size), the next register
// continues where the previous one ended, and amplitude index bit k
// corresponds to qubit k. The exact-state extractor relies on this
// ordering, so a built circuit must never be reordered.
type Circuit struct {
	registers []*Register
	classical []*ClassicalRegister
	numQubits int
	gates     []Gate
}

// New returns an empty circuit with no registers.
func New() *Circuit { return &Circuit{} }

// AddRegister allocates a named quantum register of the given size at
// the end of the current qubit span and returns its handle.
// Fails with ErrBadRegisterSize or ErrDuplicateRegister.
func (c *Circuit) AddRegister(name string, size int) (*Register, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %q size %d", ErrBadRegisterSize, name, size)
	}
	for _, r := range c.registers {
		if r.name == name {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRegister, name)
		}
	}

	reg := &Register{name: name, start: c.numQubits, size: size}
	c.registers = append(c.registers, reg)
	c.numQubits += size

	return reg, nil
}

// AddClassical allocates a named classical register of the given size.
func (c *Circuit) AddClassical(name string, size int) (*ClassicalRegister, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %q size %d", ErrBadRegisterSize, name, size)
	}
	for _, r := range c.classical {
		if r.name == name {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRegister, name)
		}
	}

	reg := &ClassicalRegister{name: name, size: size}
	c.classical = append(c.classical, reg)

	return reg, nil
}

// Append validates and appends every gate of the fragment in order.
// All-or-nothing: on a validation failure no gate of the fragment is
// appended, keeping the circuit consistent.
func (c *Circuit) Append(f *Fragment) error {
	if f == nil {
		return ErrNilFragment
	}
	for i, g := range f.gates {
		if err := g.validate(c.numQubits); err != nil {
			return fmt.Errorf("gate %d (%s): %w", i, g.Name, err)
		}
	}
	c.gates = append(c.gates, f.gates...)

	return nil
}

// Measure appends a measurement of qubit q into bit `bit` of creg.
func (c *Circuit) Measure(q int, creg *ClassicalRegister, bit int) error {
	g := Measure(q, creg, bit)
	if err := g.validate(c.numQubits); err != nil {
		return err
	}
	c.gates = append(c.gates, g)

	return nil
}

// NumQubits returns the total number of allocated qubits.
func (c *Circuit) NumQubits() int { return c.numQubits }

// NumGates returns the number of appended gates.
func (c *Circuit) NumGates() int { return len(c.gates) }

// Gates returns a copy of the gate sequence in append order.
func (c *Circuit) Gates() []Gate {
	out := make([]Gate, len(c.gates))
	copy(out, c.gates)

	return out
}

// Registers returns the quantum registers in allocation order.
func (c *Circuit) Registers() []*Register {
	out := make([]*Register, len(c.registers))
	copy(out, c.registers)

	return out
}

// ClassicalRegisters returns the classical registers in allocation order.
func (c *Circuit) ClassicalRegisters() []*ClassicalRegister {
	out := make([]*ClassicalRegister, len(c.classical))
	copy(out, c.classical)

	return out
}

// HasMeasurement reports whether any appended gate is a measurement.
func (c *Circuit) HasMeasurement() bool {
	for _, g := range c.gates {
		if g.Name == GateMeasure {
			return true
		}
	}

	return false
}
