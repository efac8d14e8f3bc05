// SPDX-License-Identifier: MIT

// Package dag assigns a deterministic topological order to a set of
// core.BayesNode (Kahn-style, tie-broken by id) and derives the moral
// graph a Triangulator consumes: every pair of parents of every node is
// connected, and direction is dropped by populating each node's
// undirected neighbor set.
//
// Complexity:
//
//   - TopologicalSort: O(V + E), tie-break adds O(V log V) for the
//     frontier heap.
//   - Moralize: O(V + maxParents^2) for the pairwise-parent connection
//     step.
package dag
