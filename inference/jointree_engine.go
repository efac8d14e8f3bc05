// SPDX-License-Identifier: MIT
//
// jointree_engine.go — exact inference via the Shenoy–Shafer /
// Huang–Darwiche junction-tree algorithm (SPEC_FULL.md §4.8), grounded on
// original_source/inference/JoinTreeEngine.py's global_propagation /
// pass_message / collect_evidence / distribute_evidence sequencing.

package inference

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/katalvlaran/bnetkit/bayesnet"
	"github.com/katalvlaran/bnetkit/core"
	"github.com/katalvlaran/bnetkit/jointree"
	"github.com/katalvlaran/bnetkit/potential"
	"github.com/katalvlaran/bnetkit/triangulate"
)

// JoinTreeEngine is the exact-inference Engine (component C9). Its join
// tree is built once at construction; every Marginals call reruns the
// six-step per-query protocol against the live evidence on bnet's nodes.
type JoinTreeEngine struct {
	bnet       *bayesnet.BayesNet
	tree       *jointree.JoinTree
	nodeClique map[int64]*jointree.Clique
	opts       jtOptions
}

// NewJoinTreeEngine moralizes, triangulates, and join-trees bnet's graph
// once, then records which clique satisfies each node's family property
// (SPEC_FULL.md §4.8 step 2).
func NewJoinTreeEngine(bnet *bayesnet.BayesNet, opts ...JoinTreeOption) (*JoinTreeEngine, error) {
	if bnet == nil {
		return nil, ErrNilBayesNet
	}
	o := defaultJTOptions()
	for _, opt := range opts {
		opt(&o)
	}

	moral := bnet.Graph().Moralize()
	precliques, err := triangulate.Run(moral, bnet.Nodes())
	if err != nil {
		return nil, err
	}
	tree, err := jointree.Build(precliques)
	if err != nil {
		return nil, err
	}
	if o.verbose {
		log.Printf("inference: join tree built: %d cliques from %d precliques over %d nodes",
			len(tree.Cliques), len(precliques), len(bnet.Nodes()))
	}

	nodeClique := make(map[int64]*jointree.Clique, len(bnet.Nodes()))
	for _, n := range bnet.Nodes() {
		cp, err := nodeConditionalPotential(n)
		if err != nil {
			return nil, err
		}
		family := cp.Nodes() // parents ++ [n], the family-property lookup key
		c := tree.FindClique(family)
		if c == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoFamilyClique, n.Name())
		}
		nodeClique[n.ID()] = c
		if o.verbose {
			log.Printf("inference: node %s absorbed by family clique %s", n.Name(), c.Name)
		}
	}

	return &JoinTreeEngine{bnet: bnet, tree: tree, nodeClique: nodeClique, opts: o}, nil
}

// Marginals runs the full six-step protocol and returns one Distribution
// per requested node (SPEC_FULL.md §4.8).
func (e *JoinTreeEngine) Marginals(ctx context.Context, nodeNames ...string) ([]Distribution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	nodes, err := resolveNodes(e.bnet, nodeNames)
	if err != nil {
		return nil, err
	}
	queryID := uuid.NewString()
	if e.opts.verbose {
		log.Printf("inference: query %s: join-tree marginals requested for %v", queryID, nodeNames)
	}

	// Step 1: re-initialize every clique and sepset potential to a
	// constant-one tensor over its own subnode set.
	if err := e.reinitialize(); err != nil {
		return nil, err
	}

	// Step 2+3: absorb each node's conditional potential into its family
	// clique, then mask every clique by current evidence.
	for _, n := range e.bnet.Nodes() {
		cp, err := nodeConditionalPotential(n)
		if err != nil {
			return nil, err
		}
		c := e.nodeClique[n.ID()]
		if err := c.Potential.MulInPlace(cp.Potential); err != nil {
			return nil, &ArithmeticError{QueryID: queryID, Node: n.Name(), Detail: err.Error()}
		}
	}
	for _, c := range e.tree.Cliques {
		c.Potential.MaskSelf()
	}

	// Step 4: the clique of the BayesNode with the lowest TopoIndex is the
	// deterministic start clique (SPEC_FULL.md §4.8 step 4).
	root := e.nodeClique[e.lowestTopoNode().ID()]

	// Step 5: collect evidence towards root, then distribute outward.
	e.tree.ResetVisited()
	if err := e.collectEvidence(root, queryID); err != nil {
		return nil, err
	}
	e.tree.ResetVisited()
	if err := e.distributeEvidence(root, queryID); err != nil {
		return nil, err
	}
	if e.opts.verbose {
		log.Printf("inference: query %s: collect/distribute complete, root clique %s", queryID, root.Name)
	}

	// Step 6: readout.
	out := make([]Distribution, len(nodes))
	for i, n := range nodes {
		c := e.nodeClique[n.ID()]
		marg, err := c.Potential.Marginal([]*core.BayesNode{n})
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

// lowestTopoNode returns the BayesNode with the smallest TopoIndex, the
// deterministic root-clique anchor required by SPEC_FULL.md §4.8 step 4.
func (e *JoinTreeEngine) lowestTopoNode() *core.BayesNode {
	nodes := e.bnet.Nodes()
	lowest := nodes[0]
	for _, n := range nodes[1:] {
		if core.Less(n.Node, lowest.Node) {
			lowest = n
		}
	}
	return lowest
}

func (e *JoinTreeEngine) reinitialize() error {
	isQuantum := e.bnet.IsQuantum()
	for _, c := range e.tree.Cliques {
		p, err := constantPotential(c.Subnodes, isQuantum)
		if err != nil {
			return err
		}
		c.Potential = p
	}
	e.tree.ResetSepsetFlags()
	for _, c := range e.tree.Cliques {
		for _, s := range c.Sepsets {
			if s.Flag {
				continue
			}
			p, err := constantPotential(s.Subnodes, isQuantum)
			if err != nil {
				return err
			}
			s.Potential = p
			s.Flag = true
		}
	}
	return nil
}

func constantPotential(nodes []*core.BayesNode, isQuantum bool) (*potential.Potential, error) {
	if isQuantum {
		return potential.NewQuantum(nodes, nil, complex(1, 0))
	}
	return potential.NewClassical(nodes, nil, 1)
}

// findSepset returns the Sepset joining c and nb, which must be direct
// tree neighbors.
func findSepset(c, nb *jointree.Clique) *jointree.Sepset {
	for _, s := range c.Sepsets {
		if s.OtherClique(c) == nb {
			return s
		}
	}
	return nil
}

// passMessage updates sep's potential to from's marginal over the sepset's
// subnodes, then multiplies to's potential by the ratio of the new sepset
// marginal over the old one — the Shenoy–Shafer message-passing update
// (original_source JoinTreeEngine.py's pass_message).
func passMessage(from, to *jointree.Clique, sep *jointree.Sepset, queryID string, verbose bool) error {
	old := sep.Potential.Clone()
	newMarg, err := from.Potential.Marginal(sep.Subnodes)
	if err != nil {
		return &ArithmeticError{QueryID: queryID, Node: sep.Name, Detail: err.Error()}
	}
	sep.Potential = newMarg
	ratio, err := newMarg.Div(old)
	if err != nil {
		return &ArithmeticError{QueryID: queryID, Node: sep.Name, Detail: err.Error()}
	}
	if err := to.Potential.MulInPlace(ratio); err != nil {
		return &ArithmeticError{QueryID: queryID, Node: sep.Name, Detail: err.Error()}
	}
	if verbose {
		log.Printf("inference: query %s: message %s -> %s via sepset %s", queryID, from.Name, to.Name, sep.Name)
	}
	return nil
}

func (e *JoinTreeEngine) collectEvidence(c *jointree.Clique, queryID string) error {
	c.Visited = true
	for _, nb := range c.Neighbors() {
		if nb.Visited {
			continue
		}
		if err := e.collectEvidence(nb, queryID); err != nil {
			return err
		}
		if err := passMessage(nb, c, findSepset(c, nb), queryID, e.opts.verbose); err != nil {
			return err
		}
	}
	return nil
}

func (e *JoinTreeEngine) distributeEvidence(c *jointree.Clique, queryID string) error {
	c.Visited = true
	for _, nb := range c.Neighbors() {
		if nb.Visited {
			continue
		}
		if err := passMessage(c, nb, findSepset(c, nb), queryID, e.opts.verbose); err != nil {
			return err
		}
		if err := e.distributeEvidence(nb, queryID); err != nil {
			return err
		}
	}
	return nil
}
