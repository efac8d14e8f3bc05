// SPDX-License-Identifier: MIT

package jointree

import "github.com/katalvlaran/bnetkit/core"

// JoinTree is a connected tree of Cliques separated by Sepsets
// (SPEC_FULL.md §3, component C8). Build is the only constructor; once
// built, the tree structure itself is reused across queries while an
// inference engine mutates clique/sepset potentials per query.
type JoinTree struct {
	Cliques []*Clique
}

// ResetVisited clears every clique's Visited flag, used by an engine
// between the collect and distribute DFS passes (SPEC_FULL.md §4.8 step 5).
func (jt *JoinTree) ResetVisited() {
	for _, c := range jt.Cliques {
		c.Visited = false
	}
}

// ResetSepsetFlags clears every sepset's Flag, used by an engine's
// re-initialization step to visit each sepset exactly once despite it
// being held by two cliques (SPEC_FULL.md §4.8 step 1).
func (jt *JoinTree) ResetSepsetFlags() {
	for _, c := range jt.Cliques {
		for _, s := range c.Sepsets {
			s.Flag = false
		}
	}
}

// FindClique returns the first clique (in Cliques order) whose subnode set
// contains every node in family, or nil if none qualifies. Callers pass a
// node's family (itself plus its parents) to satisfy the family-property
// lookup of SPEC_FULL.md §4.8 step 2; "first in iteration order" is the
// deterministic tie-break the step calls for.
func (jt *JoinTree) FindClique(family []*core.BayesNode) *Clique {
	for _, c := range jt.Cliques {
		if c.Contains(family) {
			return c
		}
	}
	return nil
}
