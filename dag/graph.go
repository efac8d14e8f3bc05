// SPDX-License-Identifier: MIT

package dag

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/bnetkit/core"
)

// Graph is a directed acyclic graph of BayesNodes. Construction does not
// itself validate acyclicity; call TopologicalSort to assign TopoIndex and
// detect cycles.
type Graph struct {
	nodes []*core.BayesNode
}

// NewGraph wraps an existing node set. The nodes' parent/child edges must
// already be wired via core.DirectedNode.AddParent/AddChild.
func NewGraph(nodes []*core.BayesNode) *Graph {
	out := make([]*core.BayesNode, len(nodes))
	copy(out, nodes)
	return &Graph{nodes: out}
}

// Nodes returns the node set in construction order.
func (g *Graph) Nodes() []*core.BayesNode {
	out := make([]*core.BayesNode, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// idHeap is a min-heap of node ids, giving TopologicalSort's Kahn-style
// frontier extraction its mandatory id tie-break (SPEC_FULL.md §4.2).
type idHeap []int64

func (h idHeap) Len() int            { return len(h) }
func (h idHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h idHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *idHeap) Push(x interface{}) { *h = append(*h, x.(int64)) }
func (h *idHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// TopologicalSort assigns TopoIndex() to every node via Kahn's algorithm:
// repeatedly extract the lowest-id node whose parents have all been
// extracted. Returns a *GraphStructureError wrapping ErrTwoNodeCycle if any
// node shares a parent and a child, or ErrCyclic if extraction stalls
// before every node is assigned.
func (g *Graph) TopologicalSort() error {
	if len(g.nodes) == 0 {
		return &GraphStructureError{Err: ErrEmptyGraph}
	}
	byID := make(map[int64]*core.BayesNode, len(g.nodes))
	for _, n := range g.nodes {
		byID[n.ID()] = n
	}
	for _, n := range g.nodes {
		for _, p := range n.Parents() {
			if n.HasChild(p) {
				return &GraphStructureError{Node: n.Name(), Err: ErrTwoNodeCycle}
			}
		}
	}

	remaining := make(map[int64]int, len(g.nodes)) // remaining indegree
	var frontier idHeap
	for _, n := range g.nodes {
		remaining[n.ID()] = len(n.Parents())
		if len(n.Parents()) == 0 {
			frontier = append(frontier, n.ID())
		}
	}
	heap.Init(&frontier)

	assigned := 0
	for frontier.Len() > 0 {
		id := heap.Pop(&frontier).(int64)
		n := byID[id]
		n.SetTopoIndex(assigned)
		assigned++
		for _, c := range n.Children() {
			remaining[c.ID()]--
			if remaining[c.ID()] == 0 {
				heap.Push(&frontier, c.ID())
			}
		}
	}
	if assigned != len(g.nodes) {
		return &GraphStructureError{Err: ErrCyclic}
	}
	return nil
}

// SortedByTopo returns the node set ordered by TopoIndex ascending; callers
// needing "the first/lowest node" use this (SPEC_FULL.md §5).
func (g *Graph) SortedByTopo() []*core.BayesNode {
	out := g.Nodes()
	sort.Slice(out, func(i, j int) bool { return core.Less(out[i].Node, out[j].Node) })
	return out
}

// MoralGraph is the undirected graph a Triangulator consumes: every
// BayesNode's neighbor set (populated via DirectedNode.Undirect) plus a
// link between every pair of co-parents.
type MoralGraph struct {
	nodes []*core.BayesNode
}

// Moralize clones neither nodes nor edges; it populates each node's
// Node.neighbors via Undirect and then connects every pair of co-parents,
// directly on the BayesNet's own nodes rather than on clones of them.
func (g *Graph) Moralize() *MoralGraph {
	for _, n := range g.nodes {
		n.Undirect()
	}
	for _, n := range g.nodes {
		parents := n.Parents()
		for i := 0; i < len(parents); i++ {
			for j := i + 1; j < len(parents); j++ {
				parents[i].ConnectNeighbor(parents[j].Node)
			}
		}
	}
	return &MoralGraph{nodes: g.Nodes()}
}

// Nodes returns the moral graph's node set.
func (m *MoralGraph) Nodes() []*core.BayesNode {
	out := make([]*core.BayesNode, len(m.nodes))
	copy(out, m.nodes)
	return out
}
