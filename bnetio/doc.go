// SPDX-License-Identifier: MIT

// Package bnetio carries optional engine configuration (SPEC_FULL.md §10
// A.3): MCMC cycle/warmup counts, verbosity, and RNG seed. Engines do not
// read it; a caller loads it and applies it through the inference options.
//
// Guarantees:
//   - LoadConfig reads an optional YAML file; a missing file is not an
//     error, it just yields DefaultConfig().
//   - A malformed file IS an error — LoadConfig never silently discards bad
//     input the way a missing file is allowed to.
package bnetio
