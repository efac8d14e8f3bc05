// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the core package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.

package core

import "errors"

// ErrEmptyName indicates a Node was constructed with an empty name.
var ErrEmptyName = errors.New("core: node name is empty")

// ErrSelfEdge indicates an attempt to make a node its own parent or child.
var ErrSelfEdge = errors.New("core: self-edges are not allowed")

// ErrInvalidSize indicates a BayesNode was constructed with size < 1.
var ErrInvalidSize = errors.New("core: node size must be >= 1")

// ErrStateNameCount indicates len(stateNames) != size.
var ErrStateNameCount = errors.New("core: state name count must equal size")

// ErrDuplicateStateName indicates two state names of the same node collide.
var ErrDuplicateStateName = errors.New("core: duplicate state name")

// ErrEmptyActiveStates indicates an attempt to set an empty active-states mask.
var ErrEmptyActiveStates = errors.New("core: active states must be non-empty")

// ErrStateOutOfRange indicates an active-state index outside [0, size).
var ErrStateOutOfRange = errors.New("core: state index out of range")
