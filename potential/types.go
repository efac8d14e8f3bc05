// SPDX-License-Identifier: MIT

package potential

import (
	"github.com/katalvlaran/bnetkit/core"
)

// degenerateThreshold is the 1e-6 floor below which a normalization
// divisor is treated as zero (SPEC_FULL.md §4.4, §8 property 3).
const degenerateThreshold = 1e-6

// Potential is a tensor view over an ordered node list. Exactly one of
// real/cplx is non-nil, selected by IsQuantum (see doc.go for the
// tagged-union rationale).
type Potential struct {
	isQuantum bool
	ordNodes  []*core.BayesNode
	axis      map[*core.BayesNode]int // node -> position in ordNodes
	shape     []int
	idx       *axisIndexer

	real []float64
	cplx []complex128
}

// Shape returns the size of every axis in ord_nodes order; satisfies
// core.Potential so a BayesNode can validate an attached potential without
// this package needing to be imported by core.
func (p *Potential) Shape() []int {
	out := make([]int, len(p.shape))
	copy(out, p.shape)
	return out
}

// IsQuantum reports whether this potential's elements are complex
// amplitudes (true) or non-negative reals (false).
func (p *Potential) IsQuantum() bool { return p.isQuantum }

// Nodes returns the ordered node list.
func (p *Potential) Nodes() []*core.BayesNode {
	out := make([]*core.BayesNode, len(p.ordNodes))
	copy(out, p.ordNodes)
	return out
}

// HasNode reports whether n appears in this potential's node list.
func (p *Potential) HasNode(n *core.BayesNode) bool {
	_, ok := p.axis[n]
	return ok
}

func shapeOf(nodes []*core.BayesNode) []int {
	s := make([]int, len(nodes))
	for i, n := range nodes {
		s[i] = n.Size()
	}
	return s
}

func axisMap(nodes []*core.BayesNode) (map[*core.BayesNode]int, error) {
	m := make(map[*core.BayesNode]int, len(nodes))
	for i, n := range nodes {
		if _, dup := m[n]; dup {
			return nil, ErrDuplicateNode
		}
		m[n] = i
	}
	return m, nil
}

// NewClassical constructs a real-valued Potential over ordNodes. If data is
// nil, every entry is filled with bias as given (bias 0 yields an all-zero
// potential). Complexity: O(prod(sizes)).
func NewClassical(ordNodes []*core.BayesNode, data []float64, bias float64) (*Potential, error) {
	axis, err := axisMap(ordNodes)
	if err != nil {
		return nil, err
	}
	shape := shapeOf(ordNodes)
	idx := newAxisIndexer(shape)
	if data == nil {
		data = make([]float64, idx.size)
		for i := range data {
			data[i] = bias
		}
	} else if len(data) != idx.size {
		return nil, ErrShapeMismatch
	} else {
		cp := make([]float64, len(data))
		copy(cp, data)
		data = cp
	}
	return &Potential{ordNodes: append([]*core.BayesNode{}, ordNodes...), axis: axis, shape: shape, idx: idx, real: data}, nil
}

// NewQuantum constructs a complex-valued Potential over ordNodes. If data is
// nil, every entry is filled with bias.
func NewQuantum(ordNodes []*core.BayesNode, data []complex128, bias complex128) (*Potential, error) {
	axis, err := axisMap(ordNodes)
	if err != nil {
		return nil, err
	}
	shape := shapeOf(ordNodes)
	idx := newAxisIndexer(shape)
	if data == nil {
		data = make([]complex128, idx.size)
		for i := range data {
			data[i] = bias
		}
	} else if len(data) != idx.size {
		return nil, ErrShapeMismatch
	} else {
		cp := make([]complex128, len(data))
		copy(cp, data)
		data = cp
	}
	return &Potential{isQuantum: true, ordNodes: append([]*core.BayesNode{}, ordNodes...), axis: axis, shape: shape, idx: idx, cplx: data}, nil
}

// Remap returns a Potential with the same shape and a fresh copy of the
// backing array, but whose ord_nodes is newNodes instead of p's own —
// newNodes must be the same length as p.Nodes() and is assumed to list
// the corresponding replacement for each axis in order. Used by
// bayesnet.Clone to re-wire a cloned node's potential onto the cloned
// node set without re-deriving shape (SPEC_FULL.md §4.5, §9 arena-clone
// guidance).
func (p *Potential) Remap(newNodes []*core.BayesNode) (*Potential, error) {
	if len(newNodes) != len(p.ordNodes) {
		return nil, ErrShapeMismatch
	}
	for i, n := range newNodes {
		if n.Size() != p.ordNodes[i].Size() {
			return nil, ErrShapeMismatch
		}
	}
	if p.isQuantum {
		return NewQuantum(newNodes, p.cplx, 0)
	}
	return NewClassical(newNodes, p.real, 0)
}

// Clone returns a deep copy sharing node references but owning a fresh
// backing array (SPEC_FULL.md §5: "Deep copies of potentials must
// duplicate arrays but share node references").
func (p *Potential) Clone() *Potential {
	out := &Potential{
		isQuantum: p.isQuantum,
		ordNodes:  append([]*core.BayesNode{}, p.ordNodes...),
		axis:      make(map[*core.BayesNode]int, len(p.axis)),
		shape:     append([]int{}, p.shape...),
		idx:       p.idx,
	}
	for k, v := range p.axis {
		out.axis[k] = v
	}
	if p.isQuantum {
		out.cplx = append([]complex128{}, p.cplx...)
	} else {
		out.real = append([]float64{}, p.real...)
	}
	return out
}

// At returns the element at multi-index idx (classical) — panics if the
// potential is quantum; use AtC for that case. len(idx) must equal the
// number of ord_nodes.
func (p *Potential) At(idx []int) float64 {
	return p.real[p.idx.flat(idx)]
}

// AtC returns the complex element at multi-index idx. Works for both
// classical (imaginary part 0) and quantum potentials.
func (p *Potential) AtC(idx []int) complex128 {
	if p.isQuantum {
		return p.cplx[p.idx.flat(idx)]
	}
	return complex(p.real[p.idx.flat(idx)], 0)
}

// Set assigns a classical element at multi-index idx.
func (p *Potential) Set(idx []int, v float64) {
	p.real[p.idx.flat(idx)] = v
}

// SetC assigns a complex element at multi-index idx.
func (p *Potential) SetC(idx []int, v complex128) {
	p.cplx[p.idx.flat(idx)] = v
}
