// SPDX-License-Identifier: MIT

// Package bif reads and writes the `.bif` text grammar for discrete
// Bayesian/Quantum networks (SPEC_FULL.md §6.2, §12): a `network` block
// holding `variable` declarations followed by `probability` tables, one per
// node, either an unconditional `table p0, p1, ...;` or one row per parent
// state combination `(s1, s2, ...) p0, p1, ...;`.
//
// Guarantees:
//   - Read auto-detects whether the file is classical or quantum: any
//     probability literal written in `a+bj` complex-literal form marks the
//     whole network quantum; otherwise every node gets a real-valued
//     ConditionalPotential.
//   - Write round-trips a network written by Read (or built programmatically)
//     up to floating point formatting precision — `Write(Read(x))` reproduces
//     the same parent order and table values; variables are written in
//     topological order and the network is always named `unnamed`.
//   - Parsing is whitespace-tolerant; `[]{}(),;|` are the only delimiters, so
//     arbitrary line-wrapping and indentation are accepted.
package bif
