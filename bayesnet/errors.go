// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the bayesnet package.

package bayesnet

import "errors"

// ErrEmptyNetwork indicates construction with zero nodes.
var ErrEmptyNetwork = errors.New("bayesnet: network has no nodes")

// ErrMissingPotential indicates a node has no attached potential at
// construction time; every node's potential is part of the input contract
// (SPEC_FULL.md §6.1).
var ErrMissingPotential = errors.New("bayesnet: node has no attached potential")

// ErrFamilyOrderMismatch indicates a node's potential.ord_nodes is not
// exactly parents_in_some_order + [self] (SPEC_FULL.md §3).
var ErrFamilyOrderMismatch = errors.New("bayesnet: potential ord_nodes does not match parents + self")

// ErrDuplicateID indicates two nodes share an id.
var ErrDuplicateID = errors.New("bayesnet: duplicate node id")
