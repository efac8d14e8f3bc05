// SPDX-License-Identifier: MIT

// Package inference implements the three query engines SPEC_FULL.md §2
// names as components C9–C11, all over a *bayesnet.BayesNet:
//
//   - JoinTreeEngine — exact inference via the Shenoy–Shafer /
//     Huang–Darwiche junction-tree algorithm (§4.8). Builds its join tree
//     once at construction (moralize → triangulate → jointree.Build) and
//     reruns the six-step per-query protocol on every Marginals call, so
//     evidence set between calls by mutating a node's active states takes
//     effect without rebuilding anything.
//   - EnumerationEngine — brute-force cross-check (§4.9): sums the
//     product-of-potentials over the cartesian product of every node's
//     active states.
//   - MCMCEngine — Gibbs-sampling cross-check (§4.10): samples each node
//     from its Markov-blanket-conditioned local distribution, cycle by
//     cycle, after a warmup burn-in.
//
// Guarantees:
//   - All three engines implement Engine and return identical Distribution
//     shapes, so a caller can cross-validate one engine's output against
//     another's (SPEC_FULL.md §8 property 9).
//   - Evidence is read from BayesNode.ActiveStates() at the moment
//     Marginals is called; engines never mutate node potentials, only
//     (for JoinTreeEngine) clique/sepset potentials they own.
//   - Every call is tagged with a github.com/google/uuid query id, surfaced
//     in verbose-mode log lines and in error messages so repeated failures
//     across a log stream can be correlated (SPEC_FULL.md §10 A.6).
package inference
