// SPDX-License-Identifier: MIT

package potential

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/bnetkit/core"
	"gonum.org/v1/gonum/floats"
)

// MaskSelf zeros every entry whose index along axis i is not in
// ord_nodes[i].ActiveStates() (SPEC_FULL.md §4.3). In-place.
func (p *Potential) MaskSelf() {
	active := make([][]bool, len(p.ordNodes))
	for i, n := range p.ordNodes {
		mask := make([]bool, n.Size())
		for _, s := range n.ActiveStates() {
			mask[s] = true
		}
		active[i] = mask
	}
	p.idx.forEach(func(flat int, idx []int) {
		for axis, s := range idx {
			if !active[axis][s] {
				if p.isQuantum {
					p.cplx[flat] = 0
				} else {
					p.real[flat] = 0
				}
				return
			}
		}
	})
}

// Marginal returns a new Potential over finNodes (finNodes ⊆ Nodes(),
// possibly empty) whose entry at a finNodes index is the sum of self's
// entries over every slice agreeing on those axes. If finNodes is empty,
// the result is a zero-axis Potential holding the grand total.
func (p *Potential) Marginal(finNodes []*core.BayesNode) (*Potential, error) {
	finAxis := make([]int, len(finNodes))
	for i, n := range finNodes {
		ax, ok := p.axis[n]
		if !ok {
			return nil, ErrNodeSetMismatch
		}
		finAxis[i] = ax
	}
	outShape := shapeOf(finNodes)
	outIdx := newAxisIndexer(outShape)

	if p.isQuantum {
		out := make([]complex128, outIdx.size)
		proj := make([]int, len(finNodes))
		p.idx.forEach(func(flat int, idx []int) {
			for i, ax := range finAxis {
				proj[i] = idx[ax]
			}
			out[outIdx.flat(proj)] += p.cplx[flat]
		})
		return NewQuantum(finNodes, out, 0)
	}
	out := make([]float64, outIdx.size)
	proj := make([]int, len(finNodes))
	p.idx.forEach(func(flat int, idx []int) {
		for i, ax := range finAxis {
			proj[i] = idx[ax]
		}
		out[outIdx.flat(proj)] += p.real[flat]
	})
	return NewClassical(finNodes, out, 0)
}

// Transpose returns a new Potential with axes permuted to newOrd, which
// must be a permutation of Nodes().
func (p *Potential) Transpose(newOrd []*core.BayesNode) (*Potential, error) {
	if len(newOrd) != len(p.ordNodes) {
		return nil, ErrNodeSetMismatch
	}
	srcAxis := make([]int, len(newOrd))
	for i, n := range newOrd {
		ax, ok := p.axis[n]
		if !ok {
			return nil, ErrNodeSetMismatch
		}
		srcAxis[i] = ax
	}
	outShape := shapeOf(newOrd)
	outIdx := newAxisIndexer(outShape)
	srcIdx := make([]int, len(newOrd))

	if p.isQuantum {
		out := make([]complex128, outIdx.size)
		outIdx.forEach(func(flat int, idx []int) {
			for i, ax := range srcAxis {
				srcIdx[ax] = idx[i]
			}
			out[flat] = p.cplx[p.idx.flat(srcIdx)]
		})
		return NewQuantum(newOrd, out, 0)
	}
	out := make([]float64, outIdx.size)
	outIdx.forEach(func(flat int, idx []int) {
		for i, ax := range srcAxis {
			srcIdx[ax] = idx[i]
		}
		out[flat] = p.real[p.idx.flat(srcIdx)]
	})
	return NewClassical(newOrd, out, 0)
}

// binOp identifies which elementwise operator a broadcasting combine
// applies.
type binOp int

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
)

// applyReal applies op to a, b and reports whether the result is finite.
// Division defines its own 0-on-degenerate rule (SPEC_FULL.md §4.3, §8
// property 6) and always reports ok=true; add/sub/mul have no such rule,
// so a NaN/Inf result there is reported via ok=false and surfaced by the
// caller as ErrArithmeticNonFinite rather than silently clamped.
func applyReal(op binOp, a, b float64) (v float64, ok bool) {
	switch op {
	case opAdd:
		v = a + b
	case opSub:
		v = a - b
	case opMul:
		v = a * b
	case opDiv:
		if b == 0 {
			return 0, true
		}
		v = a / b
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, true
		}
		return v, true
	}
	return v, !(math.IsNaN(v) || math.IsInf(v, 0))
}

// applyComplex is applyReal's complex128 counterpart.
func applyComplex(op binOp, a, b complex128) (v complex128, ok bool) {
	switch op {
	case opAdd:
		v = a + b
	case opSub:
		v = a - b
	case opMul:
		v = a * b
	case opDiv:
		if b == 0 {
			return 0, true
		}
		v = a / b
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return 0, true
		}
		return v, true
	}
	return v, !(cmplx.IsNaN(v) || cmplx.IsInf(v))
}

// nodeSplit partitions self.nodes \ right.nodes (A), self.nodes ∩
// right.nodes (B, in self's relative order), and right.nodes \ self.nodes
// (C, in right's relative order), per SPEC_FULL.md §4.3 step 1.
func nodeSplit(self, right *Potential) (a, b, c []*core.BayesNode) {
	for _, n := range self.ordNodes {
		if right.HasNode(n) {
			b = append(b, n)
		} else {
			a = append(a, n)
		}
	}
	for _, n := range right.ordNodes {
		if !self.HasNode(n) {
			c = append(c, n)
		}
	}
	return a, b, c
}

// combine implements the broadcasting binary algebra of SPEC_FULL.md §4.3:
// self ⊙ right is defined over the union of node sets, self's A-axes
// leading, shared B-axes in the middle, right's C-axes trailing. Rather
// than materializing length-1 broadcast axes and two physically
// transposed arrays, each output cell is computed directly from self's
// (A,B) sub-index and right's (B,C) sub-index, which is mathematically
// equivalent and avoids two extra full-size allocations.
func combine(op binOp, self, right *Potential) (*Potential, error) {
	if self.isQuantum != right.isQuantum {
		return nil, ErrQuantumMismatch
	}
	a, b, c := nodeSplit(self, right)
	union := append(append(append([]*core.BayesNode{}, a...), b...), c...)
	outShape := shapeOf(union)
	outIdx := newAxisIndexer(outShape)

	selfAxisOfOutput := make([]int, len(a)+len(b)) // output axis -> self axis
	for i, n := range union[:len(a)+len(b)] {
		selfAxisOfOutput[i] = self.axis[n]
	}
	rightAxisOfOutput := make([]int, len(b)+len(c)) // output axis (offset by len(a)) -> right axis
	for i, n := range union[len(a):] {
		rightAxisOfOutput[i] = right.axis[n]
	}

	selfIdx := make([]int, len(self.ordNodes))
	rightIdx := make([]int, len(right.ordNodes))

	isQuantum := self.isQuantum
	var outR []float64
	var outCp []complex128
	if isQuantum {
		outCp = make([]complex128, outIdx.size)
	} else {
		outR = make([]float64, outIdx.size)
	}

	var arithErr error
	outIdx.forEach(func(flat int, idx []int) {
		for i, ax := range selfAxisOfOutput {
			selfIdx[ax] = idx[i]
		}
		for i, ax := range rightAxisOfOutput {
			rightIdx[ax] = idx[len(a)+i]
		}
		if isQuantum {
			sv := self.cplx[self.idx.flat(selfIdx)]
			rv := right.cplx[right.idx.flat(rightIdx)]
			v, ok := applyComplex(op, sv, rv)
			outCp[flat] = v
			if !ok && arithErr == nil {
				arithErr = fmt.Errorf("%w: at output index %v", ErrArithmeticNonFinite, append([]int{}, idx...))
			}
		} else {
			sv := self.real[self.idx.flat(selfIdx)]
			rv := right.real[right.idx.flat(rightIdx)]
			v, ok := applyReal(op, sv, rv)
			outR[flat] = v
			if !ok && arithErr == nil {
				arithErr = fmt.Errorf("%w: at output index %v", ErrArithmeticNonFinite, append([]int{}, idx...))
			}
		}
	})
	if arithErr != nil {
		return nil, arithErr
	}

	if isQuantum {
		return NewQuantum(union, outCp, 0)
	}
	return NewClassical(union, outR, 0)
}

// Add returns self + right over the union of node sets.
func (p *Potential) Add(right *Potential) (*Potential, error) { return combine(opAdd, p, right) }

// Sub returns self - right over the union of node sets.
func (p *Potential) Sub(right *Potential) (*Potential, error) { return combine(opSub, p, right) }

// Mul returns self * right over the union of node sets.
func (p *Potential) Mul(right *Potential) (*Potential, error) { return combine(opMul, p, right) }

// Div returns self / right over the union of node sets; division by zero
// yields 0 rather than NaN/Inf (SPEC_FULL.md §4.3, §8 property 6).
func (p *Potential) Div(right *Potential) (*Potential, error) { return combine(opDiv, p, right) }

// inPlace implements self ⊙= right: requires self.Nodes() ⊇ right.Nodes();
// no reshape of self occurs, only broadcasting on right (§4.3).
func inPlace(op binOp, self, right *Potential) error {
	if self.isQuantum != right.isQuantum {
		return ErrQuantumMismatch
	}
	for _, n := range right.ordNodes {
		if !self.HasNode(n) {
			return ErrNotSubset
		}
	}
	rightAxisOfSelf := make([]int, len(right.ordNodes))
	for i, n := range right.ordNodes {
		rightAxisOfSelf[i] = self.axis[n]
	}
	rightIdx := make([]int, len(right.ordNodes))
	var arithErr error
	self.idx.forEach(func(flat int, idx []int) {
		for i, ax := range rightAxisOfSelf {
			rightIdx[i] = idx[ax]
		}
		if self.isQuantum {
			rv := right.cplx[right.idx.flat(rightIdx)]
			v, ok := applyComplex(op, self.cplx[flat], rv)
			self.cplx[flat] = v
			if !ok && arithErr == nil {
				arithErr = fmt.Errorf("%w: at receiver index %v", ErrArithmeticNonFinite, append([]int{}, idx...))
			}
		} else {
			rv := right.real[right.idx.flat(rightIdx)]
			v, ok := applyReal(op, self.real[flat], rv)
			self.real[flat] = v
			if !ok && arithErr == nil {
				arithErr = fmt.Errorf("%w: at receiver index %v", ErrArithmeticNonFinite, append([]int{}, idx...))
			}
		}
	})
	return arithErr
}

// AddInPlace mutates self to self + right; see inPlace.
func (p *Potential) AddInPlace(right *Potential) error { return inPlace(opAdd, p, right) }

// SubInPlace mutates self to self - right.
func (p *Potential) SubInPlace(right *Potential) error { return inPlace(opSub, p, right) }

// MulInPlace mutates self to self * right.
func (p *Potential) MulInPlace(right *Potential) error { return inPlace(opMul, p, right) }

// DivInPlace mutates self to self / right, 0-on-degenerate.
func (p *Potential) DivInPlace(right *Potential) error { return inPlace(opDiv, p, right) }

// Equal reports whether p and other have the same node set and, after
// transposing one to match the other's axis order, their arrays agree in
// 2-norm within 1e-6 (SPEC_FULL.md §4.3).
func (p *Potential) Equal(other *Potential) bool {
	if len(p.ordNodes) != len(other.ordNodes) {
		return false
	}
	for _, n := range p.ordNodes {
		if !other.HasNode(n) {
			return false
		}
	}
	aligned, err := other.Transpose(p.ordNodes)
	if err != nil {
		return false
	}
	if p.isQuantum {
		magSq := make([]float64, len(p.cplx))
		for i := range p.cplx {
			d := p.cplx[i] - aligned.cplx[i]
			magSq[i] = real(d * cmplx.Conj(d))
		}
		return math.Sqrt(floats.Sum(magSq)) <= 1e-6
	}
	diff := make([]float64, len(p.real))
	copy(diff, p.real)
	floats.Sub(diff, aligned.real)
	return floats.Norm(diff, 2) <= 1e-6
}

// Sum returns the grand total of all entries (classical: real sum;
// quantum: complex sum of amplitudes, not magnitude-squared).
func (p *Potential) Sum() complex128 {
	if p.isQuantum {
		var total complex128
		for _, v := range p.cplx {
			total += v
		}
		return total
	}
	return complex(floats.Sum(p.real), 0)
}

// Norm2 returns the classical sum (sum of entries, which are assumed
// non-negative) or the quantum 2-norm (sqrt(sum |a|^2)), matching the
// divisor §4.4's normalize uses. Both reductions route through
// gonum/floats rather than a hand-rolled accumulator loop.
func (p *Potential) Norm2() float64 {
	if !p.isQuantum {
		return floats.Sum(p.real)
	}
	magSq := make([]float64, len(p.cplx))
	for i, v := range p.cplx {
		magSq[i] = real(v * cmplx.Conj(v))
	}
	return math.Sqrt(floats.Sum(magSq))
}
