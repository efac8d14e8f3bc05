// SPDX-License-Identifier: MIT

package potential

import (
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/katalvlaran/bnetkit/core"
	"gonum.org/v1/gonum/floats"
)

// ConditionalPotential wraps a Potential whose last ord_node is the focus,
// representing P(focus | parents) classically or an amplitude
// A(focus | parents) for a quantum node (SPEC_FULL.md §4.4).
type ConditionalPotential struct {
	*Potential
}

// NewConditionalClassical builds a ConditionalPotential over
// parents++[focus]; ord_nodes must therefore list the focus node last.
func NewConditionalClassical(ordNodes []*core.BayesNode, data []float64, bias float64) (*ConditionalPotential, error) {
	if len(ordNodes) == 0 {
		return nil, ErrEmptyFocusSlice
	}
	p, err := NewClassical(ordNodes, data, bias)
	if err != nil {
		return nil, err
	}
	return &ConditionalPotential{Potential: p}, nil
}

// NewConditionalQuantum builds a quantum ConditionalPotential; see
// NewConditionalClassical.
func NewConditionalQuantum(ordNodes []*core.BayesNode, data []complex128, bias complex128) (*ConditionalPotential, error) {
	if len(ordNodes) == 0 {
		return nil, ErrEmptyFocusSlice
	}
	p, err := NewQuantum(ordNodes, data, bias)
	if err != nil {
		return nil, err
	}
	return &ConditionalPotential{Potential: p}, nil
}

// Divisor records the normalization constant applied (or that would be
// applied) to one parent-state slice; ParentIndex is empty for a
// single-axis (uni-)potential.
type Divisor struct {
	ParentIndex []int
	Value       float64
}

func (cp *ConditionalPotential) focusSize() int {
	return cp.shape[len(cp.shape)-1]
}

func (cp *ConditionalPotential) parentShape() []int {
	return cp.shape[:len(cp.shape)-1]
}

// normalizeSlices is the shared engine behind Normalize, NormalizePostpone,
// and NormalizeReturningDivisors (SPEC_FULL.md §4.4's postpone/returns
// modes): it always computes every parent slice's divisor, and applies it
// in-place only when apply is true.
func (cp *ConditionalPotential) normalizeSlices(apply bool) ([]Divisor, error) {
	focusSize := cp.focusSize()
	parentShape := cp.parentShape()
	parentIdx := newAxisIndexer(parentShape)

	var divisors []Divisor
	var firstErr error

	full := make([]int, len(cp.shape))
	parentIdx.forEach(func(_ int, pIdx []int) {
		copy(full, pIdx)
		var divisor float64
		if cp.isQuantum {
			slice := make([]complex128, focusSize)
			for s := 0; s < focusSize; s++ {
				full[len(full)-1] = s
				slice[s] = cp.AtC(full)
			}
			magSq := make([]float64, focusSize)
			for i, v := range slice {
				magSq[i] = real(v * cmplx.Conj(v))
			}
			divisor = math.Sqrt(floats.Sum(magSq))
		} else {
			slice := make([]float64, focusSize)
			for s := 0; s < focusSize; s++ {
				full[len(full)-1] = s
				slice[s] = cp.At(full)
			}
			divisor = floats.Sum(slice)
		}

		pCopy := append([]int{}, pIdx...)
		divisors = append(divisors, Divisor{ParentIndex: pCopy, Value: divisor})

		if divisor < degenerateThreshold {
			if firstErr == nil {
				firstErr = &UnNormalizablePotError{ParentIndex: pCopy}
			}
			return
		}
		if !apply {
			return
		}
		for s := 0; s < focusSize; s++ {
			full[len(full)-1] = s
			if cp.isQuantum {
				cp.SetC(full, cp.AtC(full)/complex(divisor, 0))
			} else {
				cp.Set(full, cp.At(full)/divisor)
			}
		}
	})
	if firstErr != nil {
		return divisors, firstErr
	}
	return divisors, nil
}

// Normalize divides every parent slice by its sum (classical) or 2-norm
// (quantum), in place. Returns *UnNormalizablePotError on the first
// degenerate slice encountered.
func (cp *ConditionalPotential) Normalize() error {
	_, err := cp.normalizeSlices(true)
	return err
}

// NormalizePostpone computes every slice's divisor without applying it.
func (cp *ConditionalPotential) NormalizePostpone() ([]Divisor, error) {
	return cp.normalizeSlices(false)
}

// NormalizeReturningDivisors applies normalization and also returns the
// per-slice divisor table, used by bayesnet.Validate's total-probabilities
// diagnostic (SPEC_FULL.md §12).
func (cp *ConditionalPotential) NormalizeReturningDivisors() ([]Divisor, error) {
	return cp.normalizeSlices(true)
}

// ProbabilitiesFromAmplitudes returns a new classical ConditionalPotential
// computed as |amp|^2 element-wise (supplemented from
// original_source/potentials/DiscreteUniPot.py's get_probs_from_amps;
// SPEC_FULL.md §12). Panics if cp is not quantum — callers are expected to
// branch on IsQuantum() before calling, mirroring the original's assert.
func (cp *ConditionalPotential) ProbabilitiesFromAmplitudes() (*ConditionalPotential, error) {
	if !cp.isQuantum {
		panic("potential: ProbabilitiesFromAmplitudes called on a classical potential")
	}
	out := make([]float64, len(cp.cplx))
	for i, v := range cp.cplx {
		out[i] = real(v * cmplx.Conj(v))
	}
	return NewConditionalClassical(cp.ordNodes, out, 0)
}

// Sample draws a state of the focus node from a single-axis
// ConditionalPotential (a uni-potential, len(Nodes()) == 1), normalizing
// it first. Classically it samples directly from the (normalized)
// distribution; for a quantum potential it samples from |amp|^2 per
// original_source/potentials/DiscreteUniPot.py's sample (SPEC_FULL.md
// §12), since sampling is the primitive MCMC_Engine needs per node.
func (cp *ConditionalPotential) Sample(rng *rand.Rand) (int, error) {
	if len(cp.ordNodes) != 1 {
		return 0, ErrNotUniPotential
	}
	if err := cp.Normalize(); err != nil {
		return 0, err
	}
	size := cp.focusSize()
	r := rng.Float64()
	var cum float64
	chosen := size - 1
	for s := 0; s < size; s++ {
		var prob float64
		if cp.isQuantum {
			v := cp.cplx[s]
			prob = real(v * cmplx.Conj(v))
		} else {
			prob = cp.real[s]
		}
		cum += prob
		if r <= cum {
			chosen = s
			break
		}
	}
	return chosen, nil
}
