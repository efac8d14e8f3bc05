// SPDX-License-Identifier: MIT
//
// reader.go — parses the `.bif` grammar into a *bayesnet.BayesNet, grounded
// on original_source/BifTool.py's read_bif (variable/probability block
// structure, `table`/explicit-parent-tuple row forms).

package bif

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/bnetkit/bayesnet"
	"github.com/katalvlaran/bnetkit/core"
	"github.com/katalvlaran/bnetkit/potential"
)

type varDef struct {
	name   string
	states []string
}

type probRow struct {
	parentStates []string // empty for the unconditional "table" form
	values       []complex128
}

type probDef struct {
	node    string
	parents []string
	rows    []probRow
}

// Read parses a .bif network from r and assembles a *bayesnet.BayesNet.
// Whether the network is classical or quantum is auto-detected: any
// probability literal written in `a+bj` form marks every node's potential
// quantum.
func Read(r io.Reader) (*bayesnet.BayesNet, error) {
	toks, err := tokenize(r)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}

	if err := p.expect("network"); err != nil {
		return nil, err
	}
	if _, err := p.expectWord(); err != nil { // network name, not otherwise used
		return nil, err
	}
	if err := p.expect("{"); err != nil {
		return nil, err
	}
	if err := p.expect("}"); err != nil {
		return nil, err
	}

	var varOrder []string
	vars := make(map[string]*varDef)
	probs := make(map[string]*probDef)
	sawComplex := false

	// variable and probability blocks are top-level siblings of the network
	// block, not nested inside it (original_source/BifTool.py's grammar).
	for {
		t, ok := p.peek()
		if !ok {
			break
		}
		switch t.text {
		case "variable":
			v, err := p.parseVariable()
			if err != nil {
				return nil, err
			}
			varOrder = append(varOrder, v.name)
			vars[v.name] = v
		case "probability":
			pd, sawComplexHere, err := p.parseProbability()
			if err != nil {
				return nil, err
			}
			if sawComplexHere {
				sawComplex = true
			}
			probs[pd.node] = pd
		default:
			return nil, &ParseError{Pos: p.pos, Err: ErrUnexpectedToken}
		}
	}

	nodes := make([]*core.BayesNode, 0, len(varOrder))
	byName := make(map[string]*core.BayesNode, len(varOrder))
	for i, name := range varOrder {
		v := vars[name]
		n, err := core.NewBayesNode(int64(i), name, len(v.states), v.states)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
		byName[name] = n
	}

	for _, name := range varOrder {
		pd, ok := probs[name]
		if !ok {
			return nil, &ParseError{Pos: -1, Err: ErrMissingProbability}
		}
		node := byName[name]
		parentNodes := make([]*core.BayesNode, len(pd.parents))
		for i, pname := range pd.parents {
			pn, ok := byName[pname]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownNode, pname)
			}
			parentNodes[i] = pn
			if err := node.AddParent(pn.DirectedNode); err != nil {
				return nil, err
			}
		}

		ordNodes := append(append([]*core.BayesNode{}, parentNodes...), node)
		var cp *potential.ConditionalPotential
		var err error
		if sawComplex {
			cp, err = potential.NewConditionalQuantum(ordNodes, nil, 0)
		} else {
			cp, err = potential.NewConditionalClassical(ordNodes, nil, 0)
		}
		if err != nil {
			return nil, err
		}

		focusSize := len(vars[name].states)
		full := make([]int, len(pd.parents)+1)
		for _, row := range pd.rows {
			for i, pname := range pd.parents {
				var stateName string
				if i < len(row.parentStates) {
					stateName = row.parentStates[i]
				}
				si, err := stateIndex(vars[pname], stateName)
				if err != nil {
					return nil, err
				}
				full[i] = si
			}
			if len(row.values) != focusSize {
				return nil, &ParseError{Pos: -1, Err: ErrRowCount}
			}
			for s, v := range row.values {
				full[len(full)-1] = s
				if sawComplex {
					cp.SetC(full, v)
				} else {
					cp.Set(full, real(v))
				}
			}
		}
		if err := node.SetPotential(cp); err != nil {
			return nil, err
		}
	}

	return bayesnet.New(nodes, sawComplex)
}

func stateIndex(v *varDef, name string) (int, error) {
	for i, s := range v.states {
		if s == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownState, name)
}

func (p *parser) parseVariable() (*varDef, error) {
	if err := p.expect("variable"); err != nil {
		return nil, err
	}
	name, err := p.expectWord()
	if err != nil {
		return nil, err
	}
	if err := p.expect("{"); err != nil {
		return nil, err
	}
	if err := p.expect("type"); err != nil {
		return nil, err
	}
	if err := p.expect("discrete"); err != nil {
		return nil, err
	}
	if err := p.expect("["); err != nil {
		return nil, err
	}
	sizeTok, err := p.expectWord()
	if err != nil {
		return nil, err
	}
	size, err := strconv.Atoi(sizeTok)
	if err != nil {
		return nil, &ParseError{Pos: p.pos, Err: ErrUnexpectedToken}
	}
	if err := p.expect("]"); err != nil {
		return nil, err
	}
	if err := p.expect("{"); err != nil {
		return nil, err
	}
	states, err := p.parseWordListUntil("}")
	if err != nil {
		return nil, err
	}
	if err := p.expect("}"); err != nil {
		return nil, err
	}
	if len(states) != size {
		return nil, &ParseError{Pos: p.pos, Err: ErrRowCount}
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	if err := p.expect("}"); err != nil {
		return nil, err
	}
	return &varDef{name: name, states: states}, nil
}

func (p *parser) parseProbability() (*probDef, bool, error) {
	sawComplex := false
	if err := p.expect("probability"); err != nil {
		return nil, false, err
	}
	if err := p.expect("("); err != nil {
		return nil, false, err
	}
	node, err := p.expectWord()
	if err != nil {
		return nil, false, err
	}
	var parents []string
	t, ok := p.peek()
	if !ok {
		return nil, false, &ParseError{Pos: p.pos, Err: ErrUnexpectedEOF}
	}
	if t.text == "|" {
		p.next()
		parents, err = p.parseWordListUntil(")")
		if err != nil {
			return nil, false, err
		}
	}
	if err := p.expect(")"); err != nil {
		return nil, false, err
	}
	if err := p.expect("{"); err != nil {
		return nil, false, err
	}

	pd := &probDef{node: node, parents: parents}

	t, ok = p.peek()
	if !ok {
		return nil, false, &ParseError{Pos: p.pos, Err: ErrUnexpectedEOF}
	}
	if t.text == "table" {
		p.next()
		valToks, err := p.parseWordListUntil(";")
		if err != nil {
			return nil, false, err
		}
		if err := p.expect(";"); err != nil {
			return nil, false, err
		}
		values, complexSeen, err := parseComplexSlice(valToks)
		if err != nil {
			return nil, false, err
		}
		sawComplex = sawComplex || complexSeen
		pd.rows = append(pd.rows, probRow{values: values})
		if err := p.expect("}"); err != nil {
			return nil, false, err
		}
		return pd, sawComplex, nil
	}

	for {
		t, ok := p.peek()
		if !ok {
			return nil, false, &ParseError{Pos: p.pos, Err: ErrUnexpectedEOF}
		}
		if t.text == "}" {
			p.next()
			break
		}
		if err := p.expect("("); err != nil {
			return nil, false, err
		}
		stateToks, err := p.parseWordListUntil(")")
		if err != nil {
			return nil, false, err
		}
		if err := p.expect(")"); err != nil {
			return nil, false, err
		}
		valToks, err := p.parseWordListUntil(";")
		if err != nil {
			return nil, false, err
		}
		if err := p.expect(";"); err != nil {
			return nil, false, err
		}
		values, complexSeen, err := parseComplexSlice(valToks)
		if err != nil {
			return nil, false, err
		}
		sawComplex = sawComplex || complexSeen
		pd.rows = append(pd.rows, probRow{parentStates: stateToks, values: values})
	}
	return pd, sawComplex, nil
}

// parseWordListUntil collects word tokens up to (not including) the stop
// token, transparently skipping "," separators.
func (p *parser) parseWordListUntil(stop string) ([]string, error) {
	var out []string
	for {
		t, ok := p.peek()
		if !ok {
			return nil, &ParseError{Pos: p.pos, Err: ErrUnexpectedEOF}
		}
		if t.text == stop {
			break
		}
		if t.text == "," {
			p.next()
			continue
		}
		p.next()
		out = append(out, t.text)
	}
	return out, nil
}

func parseComplexSlice(toks []string) ([]complex128, bool, error) {
	out := make([]complex128, len(toks))
	sawComplex := false
	for i, t := range toks {
		v, isComplex, err := parseNumberOrComplex(t)
		if err != nil {
			return nil, false, err
		}
		if isComplex {
			sawComplex = true
		}
		out[i] = v
	}
	return out, sawComplex, nil
}

func parseNumberOrComplex(s string) (complex128, bool, error) {
	if strings.ContainsAny(s, "jJ") {
		v, err := parseComplexLiteral(s)
		if err != nil {
			return 0, false, err
		}
		return v, true, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	return complex(f, 0), false, nil
}

// parseComplexLiteral parses the `a+bj` / `a-bj` / `bj` forms named by
// SPEC_FULL.md §6.2, taking care not to split on the sign inside an `e-5`
// exponent.
func parseComplexLiteral(s string) (complex128, error) {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(strings.ToLower(s), "j") {
		return 0, fmt.Errorf("%w: %s", ErrUnexpectedToken, s)
	}
	body := s[:len(s)-1]
	splitAt := -1
	for i := 1; i < len(body); i++ {
		if body[i] != '+' && body[i] != '-' {
			continue
		}
		prev := body[i-1]
		if prev == 'e' || prev == 'E' {
			continue
		}
		splitAt = i
	}
	if splitAt == -1 {
		im, err := strconv.ParseFloat(body, 64)
		if err != nil {
			return 0, err
		}
		return complex(0, im), nil
	}
	re, err := strconv.ParseFloat(body[:splitAt], 64)
	if err != nil {
		return 0, err
	}
	im, err := strconv.ParseFloat(body[splitAt:], 64)
	if err != nil {
		return 0, err
	}
	return complex(re, im), nil
}
