// Package hhl: exact-state post-processing.
package hhl

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qsolve/linalg"
)

// AmplitudeEpsilon is the magnitude below which an amplitude is treated
// as numerical noise and discarded before branch selection.
const AmplitudeEpsilon = 1e-10

// ExtractExactState converts a raw simulated state vector into the
// decoded, renormalized solution mapping plus the success probability.
//
// The vector covers all N qubits in allocation order (see the package
// doc), so the success ancilla is the most significant bit: an index
// belongs to the success branch iff index >= 2^(N-1). The io register
// occupies the trailing numQ bits of the width-N binary representation.
//
// Algorithm:
//
//	a. drop amplitudes with magnitude <= AmplitudeEpsilon,
//	b. keep the success branch (most significant bit set),
//	c. success probability p = Σ |amplitude|² over that branch,
//	d. renormalize the branch by its Euclidean norm,
//	e. decode each surviving index to its trailing numQ bits and map the
//	   bitstring to the renormalized amplitude's real component.
//
// A state with no success-branch mass yields an empty mapping and p = 0.
// Fails with ErrExtraction when the vector length is not a power of two
// or numQ leaves no room for the success ancilla.
func ExtractExactState(sv []complex128, numQ int) (map[string]float64, float64, error) {
	if len(sv) < 4 || !linalg.IsPowerOfTwo(len(sv)) {
		return nil, 0, fmt.Errorf("%w: extraction: state vector length %d is not a power of two >= 4",
			ErrExtraction, len(sv))
	}
	total := 0
	for m := len(sv); m > 1; m >>= 1 {
		total++
	}
	if numQ < 1 || numQ > total-1 {
		return nil, 0, fmt.Errorf("%w: extraction: num_q %d incompatible with %d qubits",
			ErrExtraction, numQ, total)
	}

	// Success branch: indices with the most significant bit set. Noise
	// suppression happens before the probability sum, matching the
	// filtering order of the decode step.
	half := len(sv) / 2
	idxs := make([]int, 0, 8)
	p := 0.0
	for i := half; i < len(sv); i++ {
		re, im := real(sv[i]), imag(sv[i])
		mag := math.Sqrt(re*re + im*im)
		if mag <= AmplitudeEpsilon {
			continue
		}
		idxs = append(idxs, i)
		p += mag * mag
	}
	if len(idxs) == 0 {
		return map[string]float64{}, 0, nil
	}

	// Post-selection invariant: renormalized probabilities sum to 1.
	norm := math.Sqrt(p)
	mask := (1 << uint(numQ)) - 1
	out := make(map[string]float64, len(idxs))
	for _, i := range idxs {
		key := fmt.Sprintf("%0*b", numQ, i&mask)
		out[key] = real(sv[i]) / norm
	}

	return out, p, nil
}
