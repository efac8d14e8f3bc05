// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the inference package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed for simple
//     validation failures; richer failures carry a typed error wrapping a
//     sentinel via Unwrap so callers can still branch with errors.Is.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - User-visible failures are string-tagged with the offending node name
//     and query id (SPEC_FULL.md §7, §10 A.6).

package inference

import (
	"errors"
	"fmt"
)

// ErrNilBayesNet indicates an engine constructor was called with a nil
// *bayesnet.BayesNet.
var ErrNilBayesNet = errors.New("inference: bayes net is nil")

// ErrNoNodesRequested indicates Marginals was called with zero node names.
var ErrNoNodesRequested = errors.New("inference: no nodes requested")

// ErrUnknownNode indicates a requested node name is not present in the
// engine's BayesNet.
var ErrUnknownNode = errors.New("inference: unknown node name")

// ErrNotConditionalPotential indicates a BayesNode's attached potential is
// not a *potential.ConditionalPotential, violating the input contract of
// SPEC_FULL.md §6.1.
var ErrNotConditionalPotential = errors.New("inference: node potential is not a conditional potential")

// ErrNoFamilyClique indicates the family property failed to produce a
// clique for some node — an unrecoverable bug in join-tree construction,
// never expected once jointree.Build has succeeded (SPEC_FULL.md §4.8
// step 2's "family property guarantees existence").
var ErrNoFamilyClique = errors.New("inference: no clique satisfies a node's family property")

// ReadoutError reports that normalizing a queried node's marginal failed
// during JoinTreeEngine or EnumerationEngine readout (SPEC_FULL.md §4.8
// step 6, §7): the evidence is inconsistent with the model (every joint
// assignment has zero measure). This is NOT retried — unlike the
// node-potential "mend and retry" path, which applies only at construction
// time, not during inference.
type ReadoutError struct {
	QueryID string
	Node    string
	Err     error
}

func (e *ReadoutError) Error() string {
	return fmt.Sprintf("inference: query %s: node %s: %v", e.QueryID, e.Node, e.Err)
}

func (e *ReadoutError) Unwrap() error { return e.Err }

// ArithmeticError reports a non-finite value produced somewhere other than
// the defined 0-on-degenerate division rule (SPEC_FULL.md §4.3, §7's
// InferenceArithmeticError) — a defensive check, since potential's own
// algebra already clamps every division; seeing this means a future
// modification of the potential algebra broke that contract.
type ArithmeticError struct {
	QueryID string
	Node    string
	Detail  string
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("inference: query %s: node %s: non-finite result: %s", e.QueryID, e.Node, e.Detail)
}
