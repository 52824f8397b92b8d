// Package hhl: functional configuration for the solver.
package hhl

// Default configuration values.
const (
	// DefaultMode is the mode used when WithMode is not supplied,
	// mirroring the configuration surface default.
	DefaultMode = ModeCircuit
)

// options is the internal solver configuration gathered from Option
// values. Fields are unexported; public APIs consume ...Option.
type options struct {
	mode    Mode
	backend ExecutionBackend
	epsilon float64 // symmetry tolerance for matrix validation
}

// Option mutates solver options. Safe to apply repeatedly; the last
// write wins.
type Option func(*options)

// WithMode selects the solver mode (default DefaultMode).
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithBackend injects the execution backend. Required for
// ModeExactSimulation; ignored by ModeCircuit.
func WithBackend(b ExecutionBackend) Option {
	return func(o *options) { o.backend = b }
}

// WithEpsilon overrides the symmetry tolerance used when validating the
// matrix. Non-positive values are ignored and the default kept.
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		if eps > 0 {
			o.epsilon = eps
		}
	}
}
