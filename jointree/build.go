// SPDX-License-Identifier: MIT
//
// build.go — assembles triangulate.Preclique results into a single
// connected JoinTree (SPEC_FULL.md §4.7). Structure mirrors
// builder/api.go's "Stage N: Validate/Prepare/Execute/Finalize" pipeline
// convention.

package jointree

import (
	"container/heap"

	"github.com/katalvlaran/bnetkit/triangulate"
)

// unionFind is the disjoint-set structure Build uses to detect whether two
// cliques already belong to the same tree before accepting a sepset,
// exactly the Kruskal-style test SPEC_FULL.md §4.7 step 3 describes in
// forest-of-subgraphs language.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]] // path halving
		x = uf.parent[x]
	}
	return x
}

// union merges the trees containing a and b; returns false if they were
// already in the same tree (the sepset is then discarded, per §4.7 step 3).
func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
	return true
}

// Build turns triangulate.Run's precliques into a single connected
// JoinTree (SPEC_FULL.md §4.7):
//
//  1. Validate: reject an empty preclique list.
//  2. Prepare: wrap each preclique as a Clique with a dense id, and build
//     the sepset priority queue ordered (mass desc, cost asc, id asc).
//  3. Execute: pop sepsets highest-priority first; accept one iff it joins
//     two still-separate trees (union-find), until |cliques|-1 acceptances
//     or the queue empties.
//  4. Finalize: a forest with more than one tree means the underlying
//     BayesNet was disconnected — rejected explicitly per DESIGN.md OQ-2.
func Build(precliques []*triangulate.Preclique) (*JoinTree, error) {
	// 1) Validate.
	if len(precliques) == 0 {
		return nil, ErrNoCliques
	}

	// 2) Prepare: one Clique per preclique, densely numbered ids, and the
	// candidate sepset heap over every pair with a shared subnode.
	cliques := make([]*Clique, len(precliques))
	for i, pc := range precliques {
		cliques[i] = newClique(int64(i), pc.Nodes)
	}
	pq := buildSepsetHeap(cliques)
	heap.Init(&pq)

	cliqueIndex := make(map[int64]int, len(cliques))
	for i, c := range cliques {
		cliqueIndex[c.ID] = i
	}

	// 3) Execute: Kruskal-style merge. |cliques|-1 acceptances connect every
	// clique into one tree, provided the graph is connected.
	uf := newUnionFind(len(cliques))
	accepted := 0
	for pq.Len() > 0 && accepted < len(cliques)-1 {
		sep := heap.Pop(&pq).(*Sepset)
		ix, iy := cliqueIndex[sep.CliqueX.ID], cliqueIndex[sep.CliqueY.ID]
		if !uf.union(ix, iy) {
			continue // same tree already; discard per §4.7 step 3
		}
		sep.CliqueX.AddSepset(sep)
		sep.CliqueY.AddSepset(sep)
		accepted++
	}

	// 4) Finalize: verify the forest collapsed to a single tree.
	if accepted != len(cliques)-1 {
		return nil, &GraphStructureError{Err: ErrDisconnected}
	}

	return &JoinTree{Cliques: cliques}, nil
}
