// SPDX-License-Identifier: MIT
//
// enumeration_engine.go — brute-force cross-check engine (SPEC_FULL.md
// §4.9), grounded on original_source/inference/EnumerationEngine.py's
// story_generator / get_story_potential_val.

package inference

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/katalvlaran/bnetkit/bayesnet"
	"github.com/katalvlaran/bnetkit/core"
	"github.com/katalvlaran/bnetkit/potential"
)

// cancelCheckChunk is how many stories Marginals enumerates between
// context-cancellation checks (SPEC_FULL.md §5's chunk-granularity
// cooperative cancellation).
const cancelCheckChunk = 4096

// EnumerationEngine is the brute-force Engine (component C10): it sums the
// product of every node's conditional potential over the cartesian product
// of active states ("stories"), consistent with current evidence.
type EnumerationEngine struct {
	bnet *bayesnet.BayesNet
	opts enumOptions
}

// NewEnumerationEngine wraps bnet; unlike JoinTreeEngine there is no
// one-time structure to build.
func NewEnumerationEngine(bnet *bayesnet.BayesNet, opts ...EnumerationOption) (*EnumerationEngine, error) {
	if bnet == nil {
		return nil, ErrNilBayesNet
	}
	o := defaultEnumOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &EnumerationEngine{bnet: bnet, opts: o}, nil
}

// Marginals enumerates every story consistent with the network's current
// active-states evidence and accumulates each queried node's marginal.
func (e *EnumerationEngine) Marginals(ctx context.Context, nodeNames ...string) ([]Distribution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	queried, err := resolveNodes(e.bnet, nodeNames)
	if err != nil {
		return nil, err
	}
	queryID := uuid.NewString()
	if e.opts.verbose {
		log.Printf("inference: query %s: enumeration marginals requested for %v", queryID, nodeNames)
	}

	all := e.bnet.Nodes()
	cps := make([]*potential.ConditionalPotential, len(all))
	nodeIndexOf := make(map[int64]int, len(all))
	for i, n := range all {
		cp, err := nodeConditionalPotential(n)
		if err != nil {
			return nil, err
		}
		cps[i] = cp
		nodeIndexOf[n.ID()] = i
	}

	active := make([][]int, len(all))
	for i, n := range all {
		active[i] = n.ActiveStates() // always non-empty, core.BayesNode invariant
	}

	posInAll := make([]int, len(queried))
	for i, qn := range queried {
		posInAll[i] = nodeIndexOf[qn.ID()]
	}

	bins := make([][]complex128, len(queried))
	for i, n := range queried {
		bins[i] = make([]complex128, n.Size())
	}

	famIdxOf := make([][]int, len(all))
	for i, cp := range cps {
		fam := cp.Nodes()
		idx := make([]int, len(fam))
		for k, fn := range fam {
			idx[k] = nodeIndexOf[fn.ID()]
		}
		famIdxOf[i] = idx
	}

	assignment := make([]int, len(all))
	counters := make([]int, len(all))
	famIdx := make([]int, 0, len(all))
	processed := 0

	for {
		if processed%cancelCheckChunk == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		for i, c := range counters {
			assignment[i] = active[i][c]
		}

		storyVal := complex(1, 0)
		for i, cp := range cps {
			positions := famIdxOf[i]
			famIdx = famIdx[:0]
			for _, pos := range positions {
				famIdx = append(famIdx, assignment[pos])
			}
			storyVal *= cp.AtC(famIdx)
		}
		for qi, pos := range posInAll {
			bins[qi][assignment[pos]] += storyVal
		}
		if e.opts.verbose {
			log.Printf("inference: query %s: story %d assignment=%v weight=%v", queryID, processed, assignment, storyVal)
		}
		processed++

		k := len(counters) - 1
		for k >= 0 {
			counters[k]++
			if counters[k] < len(active[k]) {
				break
			}
			counters[k] = 0
			k--
		}
		if k < 0 {
			break
		}
	}

	isQuantum := e.bnet.IsQuantum()
	out := make([]Distribution, len(queried))
	for i, n := range queried {
		var marg *potential.Potential
		var err error
		if isQuantum {
			marg, err = potential.NewQuantum([]*core.BayesNode{n}, bins[i], 0)
		} else {
			realBin := make([]float64, len(bins[i]))
			for s, v := range bins[i] {
				realBin[s] = real(v)
			}
			marg, err = potential.NewClassical([]*core.BayesNode{n}, realBin, 0)
		}
		if err != nil {
			return nil, &ArithmeticError{QueryID: queryID, Node: n.Name(), Detail: err.Error()}
		}
		d, err := normalizeMarginal(queryID, n, marg)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}
