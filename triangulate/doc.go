// SPDX-License-Identifier: MIT

// Package triangulate turns a moral graph into a clique set by the
// classical "fewest fill-in edges" heuristic (SPEC_FULL.md §4.6, component
// C7): repeatedly pick the node whose remaining neighbors need the fewest
// new edges to become a clique, connect them, and emit the resulting
// preclique unless some already-accepted clique already contains it.
//
// Grounded on github.com/katalvlaran/lvlath/dijkstra's container/heap
// priority-queue style (dijkstra.go's nodePQ) and on the PBNT-derived
// Star/TriangulatedGraph classes of the reference implementation.
//
// Guarantees:
//   - Every BayesNode appears in at least one Clique (its own Star's
//     preclique, once maximal, always contains it).
//   - The family property holds by construction: every node's
//     parents-plus-self set is a subset of some clique, because
//     moralization already connected every pair of co-parents.
package triangulate
