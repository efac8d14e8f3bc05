// SPDX-License-Identifier: MIT

// Package core defines the identity layer shared by every Bayesian/Quantum
// network node: Node (id, name, topological index, visited flag),
// DirectedNode (parent/child bookkeeping with a markov blanket helper), and
// BayesNode (size, state names, active-states evidence mask, and an
// optional attached potential).
//
// Equality and hashing of a Node are by id alone; ordering is by
// topo_index, which must be a total order once a Graph has assigned it
// (see package dag). Nothing in this package depends on dag, potential,
// jointree, or inference — BayesNode carries an optional Potential pointer
// via a narrow interface (core.Potential) so this package never imports
// package potential directly, avoiding a cycle through the node/clique
// association (see DESIGN.md OQ-1).
//
// Guarantees:
//   - NewBayesNode validates size >= 1 and len(stateNames) == size.
//   - ActiveStates defaults to the full range [0, size) and is never empty;
//     SetActiveStates rejects an empty subset.
//   - AddParent/AddChild maintain both sides of an edge atomically and
//     reject self-edges.
package core
