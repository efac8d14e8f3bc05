// SPDX-License-Identifier: MIT

package bayesnet

import (
	"fmt"

	"github.com/katalvlaran/bnetkit/core"
	"github.com/katalvlaran/bnetkit/potential"
)

// remappable is satisfied by both *potential.Potential and
// *potential.ConditionalPotential (which promotes it), letting Clone
// re-wire either without a type switch on the concrete kind.
type remappable interface {
	Remap(newNodes []*core.BayesNode) (*potential.Potential, error)
}

// Clone deep-copies the network: every node is rebuilt as a new object
// (keeping its id, name, size, state names and active states) sharing no
// state with the original, parent/child edges are re-wired onto
// the clone, and every potential is duplicated with its array copied but
// re-pointed at the cloned node set (SPEC_FULL.md §4.5). Topological order
// is preserved.
func (bn *BayesNet) Clone() (*BayesNet, error) {
	// old.Parents()/Children() return *core.DirectedNode, the embedded
	// pointer shared with the owning BayesNode — not the BayesNode wrapper
	// itself, so a reverse index is needed to find "whose DirectedNode is
	// this" when re-wiring onto the clone.
	ownerOf := make(map[*core.DirectedNode]*core.BayesNode, len(bn.nodes))
	for _, old := range bn.nodes {
		ownerOf[old.DirectedNode] = old
	}

	oldToNew := make(map[*core.BayesNode]*core.BayesNode, len(bn.nodes))
	newNodes := make([]*core.BayesNode, len(bn.nodes))
	for i, old := range bn.nodes {
		nn, err := core.NewBayesNode(old.ID(), old.Name(), old.Size(), old.StateNames())
		if err != nil {
			return nil, err
		}
		if err := nn.SetActiveStates(old.ActiveStates()); err != nil {
			return nil, err
		}
		oldToNew[old] = nn
		newNodes[i] = nn
	}
	for _, old := range bn.nodes {
		nn := oldToNew[old]
		for _, p := range old.Parents() {
			newParent := oldToNew[ownerOf[p]]
			if err := nn.AddParent(newParent.DirectedNode); err != nil {
				return nil, err
			}
		}
	}
	for _, old := range bn.nodes {
		nn := oldToNew[old]
		pot := old.Potential()
		rm, ok := pot.(remappable)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingPotential, old.Name())
		}
		oldOrd := pot.(interface{ Nodes() []*core.BayesNode }).Nodes()
		newOrd := make([]*core.BayesNode, len(oldOrd))
		for i, on := range oldOrd {
			newOrd[i] = oldToNew[on]
		}
		remapped, err := rm.Remap(newOrd)
		if err != nil {
			return nil, err
		}
		if _, isCond := pot.(*potential.ConditionalPotential); isCond {
			if err := nn.SetPotential(&potential.ConditionalPotential{Potential: remapped}); err != nil {
				return nil, err
			}
		} else if err := nn.SetPotential(remapped); err != nil {
			return nil, err
		}
	}

	return New(newNodes, bn.isQuantum)
}
