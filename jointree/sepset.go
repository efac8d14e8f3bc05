// SPDX-License-Identifier: MIT

package jointree

import (
	"sort"
	"strings"

	"github.com/katalvlaran/bnetkit/core"
	"github.com/katalvlaran/bnetkit/potential"
)

// Sepset sits between two Cliques, carrying their shared subnodes
// (SPEC_FULL.md §3, grounded on original_source/nodes/Sepset.py). Mass is
// the size of the shared subnode set; Cost is the sum of the two cliques'
// state-space sizes — both only ever used to order the construction-time
// priority queue.
type Sepset struct {
	ID       int64
	Name     string
	CliqueX  *Clique
	CliqueY  *Clique
	Subnodes []*core.BayesNode
	Mass     int
	Cost     float64
	Flag     bool
	Potential *potential.Potential
}

func newSepset(id int64, cx, cy *Clique, subnodes []*core.BayesNode) *Sepset {
	sorted := append([]*core.BayesNode{}, subnodes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name() < sorted[j].Name() })
	names := make([]string, len(sorted))
	for i, n := range sorted {
		names[i] = n.Name()
	}
	cost := stateSpaceSize(cx.Subnodes) + stateSpaceSize(cy.Subnodes)
	return &Sepset{
		ID:       id,
		Name:     strings.Join(names, "_"),
		CliqueX:  cx,
		CliqueY:  cy,
		Subnodes: sorted,
		Mass:     len(sorted),
		Cost:     cost,
	}
}

func stateSpaceSize(nodes []*core.BayesNode) float64 {
	total := 1.0
	for _, n := range nodes {
		total *= float64(n.Size())
	}
	return total
}

// OtherClique returns whichever of CliqueX/CliqueY is not c.
func (s *Sepset) OtherClique(c *Clique) *Clique {
	if c == s.CliqueX {
		return s.CliqueY
	}
	return s.CliqueX
}

// less orders sepsets by (mass desc, cost asc, id asc), the mandatory
// tie-break of SPEC_FULL.md §4.7 step 2.
func (s *Sepset) less(other *Sepset) bool {
	if s.Mass != other.Mass {
		return s.Mass > other.Mass
	}
	if s.Cost != other.Cost {
		return s.Cost < other.Cost
	}
	return s.ID < other.ID
}

// sepsetHeap is a container/heap priority queue of *Sepset.
type sepsetHeap []*Sepset

func (h sepsetHeap) Len() int            { return len(h) }
func (h sepsetHeap) Less(i, j int) bool  { return h[i].less(h[j]) }
func (h sepsetHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *sepsetHeap) Push(x interface{}) { *h = append(*h, x.(*Sepset)) }
func (h *sepsetHeap) Pop() interface{} {
	old := *h
	n := len(old)
	s := old[n-1]
	*h = old[:n-1]
	return s
}

// buildSepsetHeap creates one Sepset for every pair of cliques with a
// non-empty subnode intersection, with densely assigned ids
// (SPEC_FULL.md §4.7 step 2).
func buildSepsetHeap(cliques []*Clique) sepsetHeap {
	var h sepsetHeap
	var id int64
	for i := 0; i < len(cliques); i++ {
		for j := i + 1; j < len(cliques); j++ {
			shared := intersectSubnodes(cliques[i], cliques[j])
			if len(shared) == 0 {
				continue
			}
			h = append(h, newSepset(id, cliques[i], cliques[j], shared))
			id++
		}
	}
	return h
}

func intersectSubnodes(a, b *Clique) []*core.BayesNode {
	var shared []*core.BayesNode
	for _, n := range a.Subnodes {
		if b.subnodeID[n.ID()] {
			shared = append(shared, n)
		}
	}
	return shared
}
