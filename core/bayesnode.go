// SPDX-License-Identifier: MIT

package core

import "sync"

// BayesNode is a DirectedNode carrying the data a discrete Bayesian/Quantum
// network needs: a state count, distinct state names, an active-states
// evidence mask (always non-empty), and an optional attached potential.
//
// Invariant: if a potential is attached, Potential().Shape()'s last entry
// equals Size(); this is checked by SetPotential, not re-checked on every
// read.
type BayesNode struct {
	*DirectedNode

	mu           sync.RWMutex
	size         int
	stateNames   []string
	activeStates map[int]struct{}
	potential    Potential
}

// NewBayesNode constructs a BayesNode with the given id, name, size, and
// state names. ActiveStates defaults to the full range [0, size).
func NewBayesNode(id int64, name string, size int, stateNames []string) (*BayesNode, error) {
	dn, err := NewDirectedNode(id, name)
	if err != nil {
		return nil, err
	}
	if size < 1 {
		return nil, ErrInvalidSize
	}
	if len(stateNames) != size {
		return nil, ErrStateNameCount
	}
	seen := make(map[string]struct{}, size)
	for _, s := range stateNames {
		if _, dup := seen[s]; dup {
			return nil, ErrDuplicateStateName
		}
		seen[s] = struct{}{}
	}
	active := make(map[int]struct{}, size)
	for i := 0; i < size; i++ {
		active[i] = struct{}{}
	}
	names := make([]string, size)
	copy(names, stateNames)
	return &BayesNode{
		DirectedNode: dn,
		size:         size,
		stateNames:   names,
		activeStates: active,
	}, nil
}

// Size returns the number of states this node may take.
func (b *BayesNode) Size() int { return b.size }

// StateNames returns a copy of the node's state names.
func (b *BayesNode) StateNames() []string {
	out := make([]string, len(b.stateNames))
	copy(out, b.stateNames)
	return out
}

// ActiveStates returns the currently active state indices, sorted.
func (b *BayesNode) ActiveStates() []int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]int, 0, len(b.activeStates))
	for s := range b.activeStates {
		out = append(out, s)
	}
	// Small sets; insertion sort is plenty and keeps this alloc-light.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// IsActive reports whether state s is currently active for this node.
func (b *BayesNode) IsActive(s int) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.activeStates[s]
	return ok
}

// SetActiveStates replaces the active-states evidence mask. This is the
// only per-query input channel into an engine (see SPEC_FULL.md §5); it
// must not be mutated while a query is in flight.
func (b *BayesNode) SetActiveStates(states []int) error {
	if len(states) == 0 {
		return ErrEmptyActiveStates
	}
	next := make(map[int]struct{}, len(states))
	for _, s := range states {
		if s < 0 || s >= b.size {
			return ErrStateOutOfRange
		}
		next[s] = struct{}{}
	}
	b.mu.Lock()
	b.activeStates = next
	b.mu.Unlock()
	return nil
}

// ResetActiveStates restores the full range [0, Size()) as active.
func (b *BayesNode) ResetActiveStates() {
	next := make(map[int]struct{}, b.size)
	for i := 0; i < b.size; i++ {
		next[i] = struct{}{}
	}
	b.mu.Lock()
	b.activeStates = next
	b.mu.Unlock()
}

// Potential returns the node's attached potential, or nil if unset.
func (b *BayesNode) Potential() Potential {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.potential
}

// SetPotential attaches p to this node, validating that its last axis
// matches Size().
func (b *BayesNode) SetPotential(p Potential) error {
	shape := p.Shape()
	if len(shape) == 0 || shape[len(shape)-1] != b.size {
		return ErrStateNameCount
	}
	b.mu.Lock()
	b.potential = p
	b.mu.Unlock()
	return nil
}
