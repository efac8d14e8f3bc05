// SPDX-License-Identifier: MIT

package inference

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bnetkit/bayesnet"
	"github.com/katalvlaran/bnetkit/core"
	"github.com/katalvlaran/bnetkit/potential"
)

// Distribution is one queried node's marginal distribution: States[i] names
// the state Probs[i] is the probability of, in the node's own state-index
// order (SPEC_FULL.md §6.3).
type Distribution struct {
	Node   string
	States []string
	Probs  []float64
}

// Engine is the abstract query API every one of the three inference
// engines implements (SPEC_FULL.md §6.3). ctx is checked only at whole-call
// or whole-cycle granularity — never mid-computation — per the cooperative
// cancellation model of SPEC_FULL.md §5.
type Engine interface {
	Marginals(ctx context.Context, nodeNames ...string) ([]Distribution, error)
}

// resolveNodes maps nodeNames to their *core.BayesNode via bnet, failing on
// the first unknown name.
func resolveNodes(bnet *bayesnet.BayesNet, nodeNames []string) ([]*core.BayesNode, error) {
	if len(nodeNames) == 0 {
		return nil, ErrNoNodesRequested
	}
	out := make([]*core.BayesNode, len(nodeNames))
	for i, name := range nodeNames {
		n, ok := bnet.NodeByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownNode, name)
		}
		out[i] = n
	}
	return out, nil
}

// nodeConditionalPotential asserts a BayesNode's attached potential down to
// its concrete *potential.ConditionalPotential, the type every engine needs
// to multiply, sample, or read family-conditional values from.
func nodeConditionalPotential(n *core.BayesNode) (*potential.ConditionalPotential, error) {
	cp, ok := n.Potential().(*potential.ConditionalPotential)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotConditionalPotential, n.Name())
	}
	return cp, nil
}

// normalizeMarginal normalizes a single-node marginal (classical: divide by
// sum; quantum: divide by 2-norm then convert to |amplitude|^2) and reports
// the resulting Distribution, mirroring SPEC_FULL.md §4.8 step 6. marg must
// have exactly one axis, over n.
func normalizeMarginal(queryID string, n *core.BayesNode, marg *potential.Potential) (Distribution, error) {
	cp := &potential.ConditionalPotential{Potential: marg}
	if err := cp.Normalize(); err != nil {
		return Distribution{}, &ReadoutError{QueryID: queryID, Node: n.Name(), Err: err}
	}
	final := cp.Potential
	if cp.IsQuantum() {
		probsCP, err := cp.ProbabilitiesFromAmplitudes()
		if err != nil {
			return Distribution{}, &ReadoutError{QueryID: queryID, Node: n.Name(), Err: err}
		}
		final = probsCP.Potential
	}
	probs := make([]float64, n.Size())
	for s := 0; s < n.Size(); s++ {
		probs[s] = final.At([]int{s})
	}
	return Distribution{Node: n.Name(), States: n.StateNames(), Probs: probs}, nil
}
