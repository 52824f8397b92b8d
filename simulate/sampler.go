package simulate

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/qsolve/circuit"
	"github.com/katalvlaran/qsolve/hhl"
)

// ErrNoMeasurement indicates a sampled circuit without measurement
// gates; counts would be meaningless.
var ErrNoMeasurement = errors.New("simulate: circuit has no measurements")

// Sampler defaults.
const (
	// DefaultShots is the sample count used when WithShots is absent.
	DefaultShots = 1024

	// DefaultSeed fixes the generator for reproducible counts.
	DefaultSeed = 1
)

// SamplerOption mutates sampler configuration.
type SamplerOption func(*Sampler)

// WithShots sets the number of samples per execution. Values < 1 keep
// the default.
func WithShots(n int) SamplerOption {
	return func(s *Sampler) {
		if n >= 1 {
			s.shots = n
		}
	}
}

// WithSeed fixes the random source so counts are reproducible.
func WithSeed(seed int64) SamplerOption {
	return func(s *Sampler) { s.seed = seed }
}

// Sampler is the counts-only backend: it evolves the exact amplitudes
// internally but exposes only measurement counts, like shot-based
// hardware. It deliberately reports no state-vector capability.
type Sampler struct {
	shots int
	seed  int64
}

// NewSampler returns a counts-only backend.
func NewSampler(opts ...SamplerOption) *Sampler {
	s := &Sampler{shots: DefaultShots, seed: DefaultSeed}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SupportsStateVector reports false; sampler results carry counts only.
func (s *Sampler) SupportsStateVector() bool { return false }

// Execute evolves the circuit, then draws shots from the exact
// distribution of the measured qubits. Each sampled key is the measured
// classical bits, most significant bit first.
func (s *Sampler) Execute(ctx context.Context, qc *circuit.Circuit) (hhl.Result, error) {
	state, err := run(ctx, qc)
	if err != nil {
		return nil, err
	}

	measured := measuredQubits(qc)
	if len(measured) == 0 {
		return nil, ErrNoMeasurement
	}

	probs := marginal(state, measured)
	keys := make([]string, 0, len(probs))
	for k := range probs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rng := rand.New(rand.NewSource(s.seed))
	counts := make(map[string]int)
	for shot := 0; shot < s.shots; shot++ {
		r := rng.Float64()
		acc := 0.0
		for _, k := range keys {
			acc += probs[k]
			if r < acc {
				counts[k]++
				break
			}
		}
	}

	return &SampleResult{counts: counts, shots: s.shots}, nil
}

// measuredQubits returns, in classical-bit order, the qubit measured
// into each bit. Bit order follows the measure gates' Cbit indices;
// a bit measured twice keeps the last assignment.
func measuredQubits(qc *circuit.Circuit) []int {
	byBit := make(map[int]int)
	maxBit := -1
	for _, g := range qc.Gates() {
		if g.Name != circuit.GateMeasure {
			continue
		}
		byBit[g.Cbit] = g.Targets[0]
		if g.Cbit > maxBit {
			maxBit = g.Cbit
		}
	}
	if maxBit < 0 {
		return nil
	}

	out := make([]int, 0, maxBit+1)
	for bit := 0; bit <= maxBit; bit++ {
		if q, ok := byBit[bit]; ok {
			out = append(out, q)
		}
	}

	return out
}

// marginal collapses the amplitude distribution onto the measured
// qubits. Keys are bitstrings with the highest classical bit first.
func marginal(state []complex128, measured []int) map[string]float64 {
	probs := make(map[string]float64)
	buf := make([]byte, len(measured))
	for i, a := range state {
		p := real(a)*real(a) + imag(a)*imag(a)
		if p == 0 {
			continue
		}
		for pos, q := range measured {
			// Highest bit leftmost.
			if i&(1<<uint(q)) != 0 {
				buf[len(measured)-1-pos] = '1'
			} else {
				buf[len(measured)-1-pos] = '0'
			}
		}
		probs[string(buf)] += p
	}

	return probs
}

// SampleResult carries measurement counts from one sampled execution.
type SampleResult struct {
	counts map[string]int
	shots  int
}

// Counts returns a copy of the outcome histogram keyed by classical
// bitstring.
func (r *SampleResult) Counts() map[string]int {
	out := make(map[string]int, len(r.counts))
	for k, v := range r.counts {
		out[k] = v
	}

	return out
}

// Shots returns the number of samples drawn.
func (r *SampleResult) Shots() int { return r.shots }

// StateVector always fails: the sampler does not retain amplitudes.
func (r *SampleResult) StateVector() ([]complex128, error) {
	return nil, fmt.Errorf("%w: sampled execution", ErrNoStateVector)
}
