// SPDX-License-Identifier: MIT

package triangulate

import (
	"container/heap"

	"github.com/katalvlaran/bnetkit/core"
	"github.com/katalvlaran/bnetkit/dag"
)

// Preclique is a maximal clique produced by Run: a set of the original
// BayesNet's nodes, not yet assigned a Clique id or a Sepset adjacency —
// those belong to package jointree once the precliques are known
// (SPEC_FULL.md §4.6, §4.7).
type Preclique struct {
	Nodes []*core.BayesNode
}

// isSuperset reports whether every node in sub appears in super — used by
// Run to enforce "append iff no already-accepted clique is a superset"
// (SPEC_FULL.md §4.6 step 2d).
func isSuperset(super, sub map[int64]bool) bool {
	for id := range sub {
		if !super[id] {
			return false
		}
	}
	return true
}

// Run triangulates the moral graph and returns its maximal cliques
// (SPEC_FULL.md §4.6). It mutates the moral graph's node adjacency in
// place, adding every edge the heuristic fills in — matching the
// reference implementation's own "self will be allowed to modify the
// moral graph" stance. Complexity: O(V^3) worst case (V node removals,
// each re-scanning and re-heapifying the remaining stars).
func Run(moral *dag.MoralGraph, all []*core.BayesNode) ([]*Preclique, error) {
	if len(all) == 0 {
		return nil, ErrEmptyMoralGraph
	}
	sizeOf := make(map[int64]int, len(all))
	byID := make(map[int64]*core.BayesNode, len(all))
	for _, n := range all {
		sizeOf[n.ID()] = n.Size()
		byID[n.ID()] = n
	}

	removed := make(map[int64]bool, len(all))
	live := func(n *core.Node) []*core.Node {
		neighbors := n.Neighbors()
		out := make([]*core.Node, 0, len(neighbors))
		for _, nb := range neighbors {
			if !removed[nb.ID()] {
				out = append(out, nb)
			}
		}
		return out
	}

	stars := make(map[int64]*star, len(all))
	var pq starHeap
	for _, n := range moral.Nodes() {
		s := newStar(n.Node, sizeOf, live)
		stars[n.ID()] = s
		pq = append(pq, s)
	}
	heap.Init(&pq)

	var accepted []map[int64]bool
	var precliques []*Preclique

	for pq.Len() > 0 {
		popped := heap.Pop(&pq).(*star)

		for _, e := range popped.missingEdges {
			e.a.ConnectNeighbor(e.b)
		}

		liveNeighbors := live(popped.node)
		precliqueSet := make(map[int64]bool, len(liveNeighbors)+1)
		nodes := make([]*core.BayesNode, 0, len(liveNeighbors)+1)
		precliqueSet[popped.node.ID()] = true
		nodes = append(nodes, byID[popped.node.ID()])
		for _, nb := range liveNeighbors {
			precliqueSet[nb.ID()] = true
			nodes = append(nodes, byID[nb.ID()])
		}

		maximal := true
		for _, acc := range accepted {
			if isSuperset(acc, precliqueSet) {
				maximal = false
				break
			}
		}
		if maximal {
			accepted = append(accepted, precliqueSet)
			precliques = append(precliques, &Preclique{Nodes: nodes})
		}

		removed[popped.node.ID()] = true
		delete(stars, popped.node.ID())

		remaining := make([]*star, 0, len(stars))
		for _, s := range stars {
			s.recompute(sizeOf, live)
			remaining = append(remaining, s)
		}
		pq = starHeap(remaining)
		heap.Init(&pq)
	}

	return precliques, nil
}
