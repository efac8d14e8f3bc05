// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the potential package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed for simple
//     validation failures; richer failures carry a typed error (see
//     UnNormalizablePotError) that wraps a sentinel via Unwrap so callers
//     can still branch with errors.Is.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.

package potential

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch indicates arr's length does not match the product of
// ord_nodes' sizes. Corresponds to SPEC_FULL.md's PotentialShapeError.
var ErrShapeMismatch = errors.New("potential: arr shape does not match node sizes")

// ErrDuplicateNode indicates ord_nodes contains the same node twice.
var ErrDuplicateNode = errors.New("potential: duplicate node in ord_nodes")

// ErrNodeSetMismatch indicates Transpose was called with a node set that
// does not equal the potential's own node set.
var ErrNodeSetMismatch = errors.New("potential: transpose node set mismatch")

// ErrNotSubset indicates an in-place binary op's right operand carries a
// node not present in the receiver's node set.
var ErrNotSubset = errors.New("potential: right operand node set is not a subset of receiver")

// ErrQuantumMismatch indicates a binary op was attempted between a
// classical and a quantum potential.
var ErrQuantumMismatch = errors.New("potential: cannot combine classical and quantum potentials")

// ErrEmptyFocusSlice indicates ConditionalPotential construction with zero
// ord_nodes (no focus node to normalize).
var ErrEmptyFocusSlice = errors.New("potential: conditional potential requires at least one node")

// ErrNotUniPotential indicates Sample was called on a ConditionalPotential
// with more than one axis (it requires a single-axis uni-potential).
var ErrNotUniPotential = errors.New("potential: sample requires a single-axis potential")

// ErrArithmeticNonFinite signals an unexpected non-finite value produced by an
// operation other than division, which defines 0-on-degenerate by
// contract (SPEC_FULL.md §4.3). Corresponds to InferenceArithmeticError.
var ErrArithmeticNonFinite = errors.New("potential: non-finite result not covered by the 0-on-degenerate rule")

// UnNormalizablePotError reports that a conditional slice's divisor
// (classical sum or quantum 2-norm) fell below the 1e-6 threshold during
// normalization. ParentIndex is the offending parent-state tuple; it is
// empty for a single-axis (uni-)potential.
type UnNormalizablePotError struct {
	ParentIndex []int
}

// ErrUnNormalizable is the sentinel UnNormalizablePotError wraps, so
// callers can branch with errors.Is without inspecting ParentIndex.
var ErrUnNormalizable = errors.New("potential: divisor below normalization threshold")

func (e *UnNormalizablePotError) Error() string {
	return fmt.Sprintf("potential: cannot normalize slice at parent index %v: %v", e.ParentIndex, ErrUnNormalizable)
}

func (e *UnNormalizablePotError) Unwrap() error { return ErrUnNormalizable }
