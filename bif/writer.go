// SPDX-License-Identifier: MIT
//
// writer.go — serializes a *bayesnet.BayesNet back to the `.bif` grammar,
// grounded on original_source/BifTool.py's write_bif (variable blocks first,
// then one probability block per node, explicit parent-state tuples).

package bif

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/bnetkit/bayesnet"
	"github.com/katalvlaran/bnetkit/core"
	"github.com/katalvlaran/bnetkit/potential"
)

// nodeConditionalPotential asserts n's attached potential down to the
// concrete type Write needs to walk family-conditional values.
func nodeConditionalPotential(n *core.BayesNode) (*potential.ConditionalPotential, error) {
	cp, ok := n.Potential().(*potential.ConditionalPotential)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingProbability, n.Name())
	}
	return cp, nil
}

// Write serializes bnet to the `.bif` grammar. Nodes are written in the
// order bnet.Nodes() returns them (declaration/topological order); each
// node's probability block lists its parent-state tuples in the same
// mixed-radix order axisIndexer would walk, last parent varying fastest.
func Write(w io.Writer, bnet *bayesnet.BayesNet) error {
	nodes := bnet.Nodes()

	if _, err := fmt.Fprintf(w, "network unnamed {\n}\n"); err != nil {
		return err
	}

	for _, n := range nodes {
		if _, err := fmt.Fprintf(w, "variable %s {\n", n.Name()); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  type discrete [ %d ] { %s };\n", n.Size(), joinWords(n.StateNames())); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "}\n"); err != nil {
			return err
		}
	}

	for _, n := range nodes {
		cp, err := nodeConditionalPotential(n)
		if err != nil {
			return err
		}
		fam := cp.Nodes()
		parents := fam[:len(fam)-1]

		header := n.Name()
		if len(parents) > 0 {
			names := make([]string, len(parents))
			for i, p := range parents {
				names[i] = p.Name()
			}
			header = fmt.Sprintf("%s | %s", header, joinWords(names))
		}
		if _, err := fmt.Fprintf(w, "probability ( %s ) {\n", header); err != nil {
			return err
		}

		if len(parents) == 0 {
			vals := make([]string, n.Size())
			for s := 0; s < n.Size(); s++ {
				vals[s] = formatEntry(cp, bnet.IsQuantum(), []int{s})
			}
			if _, err := fmt.Fprintf(w, "  table %s;\n", joinWords(vals)); err != nil {
				return err
			}
		} else {
			sizes := make([]int, len(parents))
			for i, p := range parents {
				sizes[i] = p.Size()
			}
			var writeErr error
			iterateCombos(sizes, func(combo []int) {
				if writeErr != nil {
					return
				}
				names := make([]string, len(parents))
				for i, p := range parents {
					names[i] = p.StateNames()[combo[i]]
				}
				vals := make([]string, n.Size())
				full := append(append([]int{}, combo...), 0)
				for s := 0; s < n.Size(); s++ {
					full[len(full)-1] = s
					vals[s] = formatEntry(cp, bnet.IsQuantum(), full)
				}
				_, writeErr = fmt.Fprintf(w, "  (%s) %s;\n", joinWords(names), joinWords(vals))
			})
			if writeErr != nil {
				return writeErr
			}
		}

		if _, err := fmt.Fprintf(w, "}\n"); err != nil {
			return err
		}
	}
	return nil
}

func formatEntry(cp interface {
	At([]int) float64
	AtC([]int) complex128
}, isQuantum bool, idx []int) string {
	if isQuantum {
		return formatComplex(cp.AtC(idx))
	}
	return strconv.FormatFloat(cp.At(idx), 'f', 7, 64)
}

// formatComplex renders v in the `a+bj` / `a-bj` literal form the reader
// recognizes.
func formatComplex(v complex128) string {
	re, im := real(v), imag(v)
	sign := "+"
	if math.Signbit(im) {
		sign = "-"
		im = -im
	}
	return fmt.Sprintf("%s%s%sj", strconv.FormatFloat(re, 'f', 7, 64), sign, strconv.FormatFloat(im, 'f', 7, 64))
}

func joinWords(words []string) string {
	out := ""
	for i, w := range words {
		if i > 0 {
			out += ", "
		}
		out += w
	}
	return out
}

// iterateCombos walks every mixed-radix combination of sizes in row-major
// order (last axis varying fastest), invoking visit with a freshly
// allocated index slice each time. Private and small enough not to justify
// reaching into potential's unexported axisIndexer across a package
// boundary.
func iterateCombos(sizes []int, visit func(idx []int)) {
	if len(sizes) == 0 {
		return
	}
	idx := make([]int, len(sizes))
	for {
		cur := make([]int, len(idx))
		copy(cur, idx)
		visit(cur)

		pos := len(sizes) - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < sizes[pos] {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			return
		}
	}
}
