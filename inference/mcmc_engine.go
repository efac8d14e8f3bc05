// SPDX-License-Identifier: MIT
//
// mcmc_engine.go — Gibbs-sampling cross-check engine (SPEC_FULL.md §4.10),
// grounded on original_source/inference/MCMC_Engine.py's
// sample_node_given_markov_blanket / get_unipot_list.

package inference

import (
	"context"
	"log"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/bnetkit/bayesnet"
	"github.com/katalvlaran/bnetkit/core"
	"github.com/katalvlaran/bnetkit/potential"
)

// verboseTailCycles is how many trailing cycles get logged in verbose mode,
// mirroring the original's "only log the last several cycles" behavior.
const verboseTailCycles = 5

// MCMCEngine is the Gibbs-sampling Engine (component C11): it samples each
// node from its Markov-blanket-conditioned local distribution, cycle by
// cycle, discarding a warmup burn-in before counting occupancy.
type MCMCEngine struct {
	bnet *bayesnet.BayesNet
	opts mcmcOptions
}

// NewMCMCEngine wraps bnet; like EnumerationEngine there is no one-time
// structure to build, only per-node Markov blankets which Marginals
// recomputes fresh every call since evidence (active states) may have
// changed between calls.
func NewMCMCEngine(bnet *bayesnet.BayesNet, opts ...MCMCOption) (*MCMCEngine, error) {
	if bnet == nil {
		return nil, ErrNilBayesNet
	}
	o := defaultMCMCOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &MCMCEngine{bnet: bnet, opts: o}, nil
}

// Marginals runs e.opts.cycles Gibbs-sampling cycles over every node in
// bnet and reports the post-warmup occupancy of each queried node's states.
func (e *MCMCEngine) Marginals(ctx context.Context, nodeNames ...string) ([]Distribution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	queried, err := resolveNodes(e.bnet, nodeNames)
	if err != nil {
		return nil, err
	}
	queryID := uuid.NewString()
	if e.opts.verbose {
		log.Printf("inference: query %s: MCMC marginals requested for %v (cycles=%d warmup=%d)",
			queryID, nodeNames, e.opts.cycles, e.opts.warmup)
	}

	all := e.bnet.Nodes()
	idxOfID := make(map[int64]int, len(all))
	for i, n := range all {
		idxOfID[n.ID()] = i
	}

	cps := make([]*potential.ConditionalPotential, len(all))
	for i, n := range all {
		cp, err := nodeConditionalPotential(n)
		if err != nil {
			return nil, err
		}
		cps[i] = cp
	}

	// near_nodes = markov blanket ∪ {self}, precomputed once per node.
	near := make([][]*core.BayesNode, len(all))
	for i, n := range all {
		mb := n.MarkovBlanket()
		seen := map[int64]bool{n.ID(): true}
		list := []*core.BayesNode{n}
		for _, dn := range mb {
			bn := all[idxOfID[dn.ID()]]
			if !seen[bn.ID()] {
				seen[bn.ID()] = true
				list = append(list, bn)
			}
		}
		near[i] = list
	}

	queriedPos := make(map[int]int, len(queried)) // all-index -> queried-index
	for qi, n := range queried {
		queriedPos[idxOfID[n.ID()]] = qi
	}

	isQuantum := e.bnet.IsQuantum()
	bins := make([][]complex128, len(queried))
	for i, n := range queried {
		bins[i] = make([]complex128, n.Size())
	}

	rng := e.opts.rng
	state := make([]int, len(all))
	for i, n := range all {
		as := n.ActiveStates()
		state[i] = as[rng.Intn(len(as))]
	}

	for cy := 0; cy < e.opts.cycles; cy++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i, n := range all {
			sampled, err := sampleGivenMarkovBlanket(n, i, state, near[i], idxOfID, cps, isQuantum, rng)
			if err != nil {
				return nil, &ArithmeticError{QueryID: queryID, Node: n.Name(), Detail: err.Error()}
			}
			state[i] = sampled
			if cy >= e.opts.warmup {
				if qi, ok := queriedPos[i]; ok {
					bins[qi][sampled] += 1
				}
			}
		}
		if e.opts.verbose && cy >= e.opts.cycles-verboseTailCycles {
			log.Printf("inference: query %s: cycle %d/%d state=%v", queryID, cy+1, e.opts.cycles, state)
		}
	}

	out := make([]Distribution, len(queried))
	for i, n := range queried {
		// Bins hold occupancy counts, so quantum networks read out as plain
		// frequencies too; |amplitude|^2 was already applied when sampling.
		realBin := make([]float64, len(bins[i]))
		for s, v := range bins[i] {
			realBin[s] = real(v)
		}
		marg, merr := potential.NewClassical([]*core.BayesNode{n}, realBin, 0)
		if merr != nil {
			return nil, &ArithmeticError{QueryID: queryID, Node: n.Name(), Detail: merr.Error()}
		}
		d, err := normalizeMarginal(queryID, n, marg)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// sampleGivenMarkovBlanket draws one new state for all[i] given the current
// values of every other node in state, weighting each candidate state by
// the product of every near-node's conditional potential evaluated at that
// candidate (original_source's sample_node_given_markov_blanket).
func sampleGivenMarkovBlanket(
	n *core.BayesNode,
	i int,
	state []int,
	nearNodes []*core.BayesNode,
	idxOfID map[int64]int,
	cps []*potential.ConditionalPotential,
	isQuantum bool,
	rng *rand.Rand,
) (int, error) {
	active := n.ActiveStates()
	if len(active) == 1 {
		return active[0], nil
	}

	weights := make([]complex128, n.Size())
	for _, s := range active {
		state[i] = s
		val := complex(1, 0)
		for _, nn := range nearNodes {
			cp := cps[idxOfID[nn.ID()]]
			fam := cp.Nodes()
			famIdx := make([]int, len(fam))
			for k, fn := range fam {
				famIdx[k] = state[idxOfID[fn.ID()]]
			}
			val *= cp.AtC(famIdx)
		}
		weights[s] = val
	}

	var samplerP *potential.Potential
	var err error
	if isQuantum {
		samplerP, err = potential.NewQuantum([]*core.BayesNode{n}, weights, 0)
	} else {
		realW := make([]float64, len(weights))
		for s, v := range weights {
			realW[s] = real(v)
		}
		samplerP, err = potential.NewClassical([]*core.BayesNode{n}, realW, 0)
	}
	if err != nil {
		return 0, err
	}
	cp := &potential.ConditionalPotential{Potential: samplerP}
	return cp.Sample(rng)
}
