// SPDX-License-Identifier: MIT

// Package jointree assembles a set of triangulate.Preclique cliques into a
// single connected tree of Cliques separated by Sepsets (SPEC_FULL.md §4.7,
// component C8): every pair of cliques sharing at least one subnode gets a
// candidate Sepset, and the highest-priority sepsets are accepted one at a
// time, Kruskal-style, until every clique belongs to one tree.
//
// Grounded on original_source/graphs/JoinTree.py, nodes/Sepset.py, and
// nodes/Clique.py (the PBNT-derived reference implementation) for the
// sepset ordering and tree-merge logic, and on
// github.com/katalvlaran/lvlath/builder's "Stage N: Validate/Prepare/
// Execute/Finalize" construction-pipeline comment convention for Build's
// structure.
//
// Clique and Sepset potentials are left nil by Build — populating them
// ("set_pot_to_one" + "absorb bnet conditionals" + "mask_self", per
// SPEC_FULL.md §4.8 steps 1-3) is a per-query operation owned by
// inference.JoinTreeEngine, not a one-time construction step, since
// evidence (active states) can change between queries on the same tree.
package jointree
