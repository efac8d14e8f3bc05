// SPDX-License-Identifier: MIT

// Package potential implements the tensor type every Bayesian/Quantum
// network node and junction-tree clique carries: a multi-axis numeric array
// indexed by the joint states of an ordered node list, together with its
// algebra (masking, marginalization, transpose, broadcasting +/-/*//,
// normalization, equality).
//
// A Potential is a tagged union: IsQuantum selects whether the backing
// store is a flat []float64 (classical, row-major) or a flat
// []complex128 (quantum, row-major); exactly one of the two backing
// slices is non-nil at a time. This mirrors gonum/matrix.Dense's own flat
// row-major storage choice, generalized from two axes to k axes.
//
// ConditionalPotential wraps a Potential whose last ord_node is the focus
// node, adding parent-slice normalization (classical sum, quantum 2-norm)
// and the sampling primitives MCMC_Engine needs.
//
// Guarantees:
//   - NewClassical/NewQuantum validate arr length against node sizes.
//   - Division by zero and any other non-finite quotient are clamped to 0
//     (SPEC_FULL.md §4.3, §4.8); a non-finite result of +, - or * is
//     returned as ErrArithmeticNonFinite.
//   - Binary algebra never mutates either operand; InPlace variants mutate
//     only the receiver and require the receiver's node set to be a
//     superset of the operand's.
package potential
