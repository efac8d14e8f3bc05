// SPDX-License-Identifier: MIT

package bayesnet

import (
	"fmt"

	"github.com/katalvlaran/bnetkit/core"
	"github.com/katalvlaran/bnetkit/dag"
	"github.com/katalvlaran/bnetkit/potential"
)

// BayesNet is a validated DAG of BayesNodes (SPEC_FULL.md §3, component
// C6). IsQuantum reports whether its node potentials carry complex
// amplitudes; this is fixed at construction and assumed consistent across
// every node. New does not check node potentials against it, so a network
// mixing classical and quantum potentials is not rejected.
type BayesNet struct {
	graph     *dag.Graph
	nodes     []*core.BayesNode
	byName    map[string]*core.BayesNode
	isQuantum bool
}

// New validates nodes (family-order invariant, acyclicity via
// dag.Graph.TopologicalSort) and returns an assembled BayesNet. Nodes must
// already have their potentials attached and parent/child edges wired.
func New(nodes []*core.BayesNode, isQuantum bool) (*BayesNet, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyNetwork
	}
	byName := make(map[string]*core.BayesNode, len(nodes))
	seenID := make(map[int64]bool, len(nodes))
	for _, n := range nodes {
		if seenID[n.ID()] {
			return nil, ErrDuplicateID
		}
		seenID[n.ID()] = true
		byName[n.Name()] = n

		pot := n.Potential()
		if pot == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingPotential, n.Name())
		}
		p, ok := pot.(interface{ Nodes() []*core.BayesNode })
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrFamilyOrderMismatch, n.Name())
		}
		ord := p.Nodes()
		if err := checkFamilyOrder(n, ord); err != nil {
			return nil, err
		}
	}

	g := dag.NewGraph(nodes)
	if err := g.TopologicalSort(); err != nil {
		return nil, err
	}

	return &BayesNet{graph: g, nodes: g.Nodes(), byName: byName, isQuantum: isQuantum}, nil
}

func checkFamilyOrder(n *core.BayesNode, ord []*core.BayesNode) error {
	if len(ord) == 0 || ord[len(ord)-1] != n {
		return fmt.Errorf("%w: %s", ErrFamilyOrderMismatch, n.Name())
	}
	parents := n.Parents()
	if len(ord)-1 != len(parents) {
		return fmt.Errorf("%w: %s", ErrFamilyOrderMismatch, n.Name())
	}
	want := make(map[int64]bool, len(parents))
	for _, p := range parents {
		want[p.ID()] = true
	}
	for _, o := range ord[:len(ord)-1] {
		if !want[o.ID()] {
			return fmt.Errorf("%w: %s", ErrFamilyOrderMismatch, n.Name())
		}
	}
	return nil
}

// Nodes returns the network's nodes, ordered by TopoIndex.
func (bn *BayesNet) Nodes() []*core.BayesNode {
	out := bn.graph.SortedByTopo()
	return out
}

// NodeByName looks up a node by its human-readable name.
func (bn *BayesNet) NodeByName(name string) (*core.BayesNode, bool) {
	n, ok := bn.byName[name]
	return n, ok
}

// IsQuantum reports whether this network's potentials carry complex
// amplitudes.
func (bn *BayesNet) IsQuantum() bool { return bn.isQuantum }

// Graph exposes the underlying dag.Graph, e.g. for triangulate.Run.
func (bn *BayesNet) Graph() *dag.Graph { return bn.graph }

// ValidationIssue reports one parent slice of a node's conditional table
// whose normalization divisor fell below the 1e-6 degeneracy threshold
// (a table that merely does not sum to 1 is not reported) — a construction
// time diagnostic formalizing the original's informal "returns" mode
// (SPEC_FULL.md §12).
type ValidationIssue struct {
	Node        string
	ParentIndex []int
	Divisor     float64
}

// Validate runs NormalizeReturningDivisors on a clone of every node's
// conditional potential (never mutating the live network) and reports
// every parent slice whose divisor was below the mending tolerance.
func (bn *BayesNet) Validate() []ValidationIssue {
	var issues []ValidationIssue
	for _, n := range bn.nodes {
		pot := n.Potential()
		cp, ok := pot.(*potential.ConditionalPotential)
		if !ok {
			continue
		}
		clone := &potential.ConditionalPotential{Potential: cp.Potential.Clone()}
		divisors, err := clone.NormalizeReturningDivisors()
		if err == nil {
			continue
		}
		for _, d := range divisors {
			if d.Value < 1e-6 {
				issues = append(issues, ValidationIssue{Node: n.Name(), ParentIndex: d.ParentIndex, Divisor: d.Value})
			}
		}
	}
	return issues
}
