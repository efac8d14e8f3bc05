// SPDX-License-Identifier: MIT

// Package bayesnet assembles core.BayesNode values and a dag.Graph into a
// validated DAG of Bayesian/Quantum nodes: every node's potential.ord_nodes
// equals parents_in_some_order + [self], topo_index values form a
// permutation of [0,N) consistent with edge direction, and the graph is
// acyclic (SPEC_FULL.md §3, §4.5).
package bayesnet
