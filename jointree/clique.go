// SPDX-License-Identifier: MIT

package jointree

import (
	"sort"
	"strings"

	"github.com/katalvlaran/bnetkit/core"
	"github.com/katalvlaran/bnetkit/potential"
)

// Clique is one node of a JoinTree: a cluster of BayesNodes that acts as a
// single vertex of the undirected tree JoinTreeEngine propagates messages
// over (SPEC_FULL.md §3, grounded on original_source/nodes/Clique.py).
//
// Potential is nil until an inference engine's per-query re-initialization
// sets it; Build never populates it (see doc.go).
type Clique struct {
	ID        int64
	Name      string
	Subnodes  []*core.BayesNode
	subnodeID map[int64]bool
	Sepsets   []*Sepset
	Potential *potential.Potential
	Visited   bool
}

func newClique(id int64, subnodes []*core.BayesNode) *Clique {
	sorted := append([]*core.BayesNode{}, subnodes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name() < sorted[j].Name() })
	names := make([]string, len(sorted))
	ids := make(map[int64]bool, len(sorted))
	for i, n := range sorted {
		names[i] = n.Name()
		ids[n.ID()] = true
	}
	return &Clique{
		ID:        id,
		Name:      strings.Join(names, "_"),
		Subnodes:  sorted,
		subnodeID: ids,
	}
}

// Contains reports whether every node in nodes belongs to this clique's
// subnode set (original_source Clique.contains).
func (c *Clique) Contains(nodes []*core.BayesNode) bool {
	for _, n := range nodes {
		if !c.subnodeID[n.ID()] {
			return false
		}
	}
	return true
}

// AddSepset records sep as one of this clique's adjacent sepsets.
func (c *Clique) AddSepset(sep *Sepset) {
	c.Sepsets = append(c.Sepsets, sep)
}

// Neighbors returns the cliques directly joined to this one via a Sepset.
func (c *Clique) Neighbors() []*Clique {
	out := make([]*Clique, 0, len(c.Sepsets))
	for _, s := range c.Sepsets {
		out = append(out, s.OtherClique(c))
	}
	return out
}
