// SPDX-License-Identifier: MIT

package jointree

import "errors"

// ErrNoCliques indicates Build was called with zero cliques.
var ErrNoCliques = errors.New("jointree: no cliques to join")

// ErrDisconnected indicates the sepset merge loop ended with more than one
// tree remaining — the underlying BayesNet is not connected. Per
// DESIGN.md OQ-2, this is rejected explicitly rather than guessed at.
var ErrDisconnected = errors.New("jointree: cliques do not form a single connected tree")

// GraphStructureError wraps one of the sentinels above with the offending
// clique's name, mirroring package dag's error-string convention
// (SPEC_FULL.md §7).
type GraphStructureError struct {
	Clique string
	Err    error
}

func (e *GraphStructureError) Error() string {
	if e.Clique == "" {
		return "jointree: " + e.Err.Error()
	}
	return "jointree: " + e.Clique + ": " + e.Err.Error()
}

func (e *GraphStructureError) Unwrap() error { return e.Err }
