// SPDX-License-Identifier: MIT

package triangulate

import "github.com/katalvlaran/bnetkit/core"

// edge is an unordered pair of nodes, used only as a missing_edges entry;
// comparisons always go through the two node ids, never struct identity.
type edge struct {
	a, b *core.Node
}

// star is one node's induced-cluster bookkeeping (SPEC_FULL.md §4.6 step 1),
// grounded on original_source/graphs/Star.py's Star class.
type star struct {
	node         *core.Node
	missingEdges []edge
	numMissing   int
	weight       float64
	heapIndex    int // maintained by container/heap for O(log n) fix-ups
}

// liveNeighborsFn reports a node's neighbors excluding any already popped
// from the working copy (SPEC_FULL.md §4.6 step 2e's "remove v from the
// working copy"); Run supplies the closure over its removed-set.
type liveNeighborsFn func(*core.Node) []*core.Node

// sizeOf looks up a node's state count via the size table built once by
// Run from the original BayesNet (the working copy only has core.Node
// values, which don't carry Size()).
func newStar(n *core.Node, sizeOf map[int64]int, live liveNeighborsFn) *star {
	s := &star{node: n}
	s.recompute(sizeOf, live)
	return s
}

// recompute recalculates missing_edges, num_missing, and weight from n's
// current live neighbor set (SPEC_FULL.md §4.6 step 1, step 2e).
func (s *star) recompute(sizeOf map[int64]int, live liveNeighborsFn) {
	neighbors := live(s.node)
	var missing []edge
	for i := 0; i < len(neighbors); i++ {
		for j := i + 1; j < len(neighbors); j++ {
			a, b := neighbors[i], neighbors[j]
			if !a.HasNeighbor(b) {
				missing = append(missing, edge{a: a, b: b})
			}
		}
	}
	s.missingEdges = missing
	s.numMissing = len(missing)

	weight := float64(sizeOf[s.node.ID()])
	for _, nb := range neighbors {
		weight *= float64(sizeOf[nb.ID()])
	}
	s.weight = weight
}

// less orders two stars by (num_missing asc, weight asc, id asc), the
// mandatory tie-break of SPEC_FULL.md §4.6 step 2a.
func (s *star) less(other *star) bool {
	if s.numMissing != other.numMissing {
		return s.numMissing < other.numMissing
	}
	if s.weight != other.weight {
		return s.weight < other.weight
	}
	return s.node.ID() < other.node.ID()
}

// starHeap is a container/heap priority queue of *star, mirroring
// dijkstra.nodePQ's Len/Less/Swap/Push/Pop shape.
type starHeap []*star

func (h starHeap) Len() int           { return len(h) }
func (h starHeap) Less(i, j int) bool { return h[i].less(h[j]) }
func (h starHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIndex = i
	h[j].heapIndex = j
}
func (h *starHeap) Push(x interface{}) {
	s := x.(*star)
	s.heapIndex = len(*h)
	*h = append(*h, s)
}
func (h *starHeap) Pop() interface{} {
	old := *h
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	s.heapIndex = -1
	*h = old[:n-1]
	return s
}
