// SPDX-License-Identifier: MIT

package inference_test

import (
	"testing"

	"github.com/katalvlaran/bnetkit/bayesnet"
	"github.com/katalvlaran/bnetkit/core"
	"github.com/katalvlaran/bnetkit/inference"
	"github.com/katalvlaran/bnetkit/potential"
	"github.com/stretchr/testify/require"
)

// buildWetGrass assembles SPEC_FULL.md's Scenario W network: the canonical
// four-node Cloudy/Sprinkler/Rain/WetGrass diamond.
func buildWetGrass(t *testing.T) *bayesnet.BayesNet {
	t.Helper()

	cloudy, err := core.NewBayesNode(1, "Cloudy", 2, []string{"off", "on"})
	require.NoError(t, err)
	sprinkler, err := core.NewBayesNode(2, "Sprinkler", 2, []string{"off", "on"})
	require.NoError(t, err)
	rain, err := core.NewBayesNode(3, "Rain", 2, []string{"off", "on"})
	require.NoError(t, err)
	wetGrass, err := core.NewBayesNode(4, "WetGrass", 2, []string{"off", "on"})
	require.NoError(t, err)

	require.NoError(t, sprinkler.AddParent(cloudy.DirectedNode))
	require.NoError(t, rain.AddParent(cloudy.DirectedNode))
	require.NoError(t, wetGrass.AddParent(sprinkler.DirectedNode))
	require.NoError(t, wetGrass.AddParent(rain.DirectedNode))

	cloudyPot, err := potential.NewConditionalClassical([]*core.BayesNode{cloudy}, []float64{0.5, 0.5}, 0)
	require.NoError(t, err)
	sprinklerPot, err := potential.NewConditionalClassical(
		[]*core.BayesNode{cloudy, sprinkler}, []float64{0.2, 0.8, 0.7, 0.3}, 0)
	require.NoError(t, err)
	rainPot, err := potential.NewConditionalClassical(
		[]*core.BayesNode{cloudy, rain}, []float64{0.4, 0.6, 0.5, 0.5}, 0)
	require.NoError(t, err)
	wetGrassPot, err := potential.NewConditionalClassical(
		[]*core.BayesNode{sprinkler, rain, wetGrass},
		[]float64{0.99, 0.01, 0.01, 0.99, 0.01, 0.99, 0.01, 0.99}, 0)
	require.NoError(t, err)

	require.NoError(t, cloudy.SetPotential(cloudyPot))
	require.NoError(t, sprinkler.SetPotential(sprinklerPot))
	require.NoError(t, rain.SetPotential(rainPot))
	require.NoError(t, wetGrass.SetPotential(wetGrassPot))

	bnet, err := bayesnet.New([]*core.BayesNode{cloudy, sprinkler, rain, wetGrass}, false)
	require.NoError(t, err)
	return bnet
}

// buildMontyHall assembles SPEC_FULL.md's Scenario M three-door network.
func buildMontyHall(t *testing.T) *bayesnet.BayesNet {
	t.Helper()
	doors := []string{"A", "B", "C"}

	firstChoice, err := core.NewBayesNode(1, "FirstChoice", 3, doors)
	require.NoError(t, err)
	prizeDoor, err := core.NewBayesNode(2, "PrizeDoor", 3, doors)
	require.NoError(t, err)
	montyOpens, err := core.NewBayesNode(3, "MontyOpens", 3, doors)
	require.NoError(t, err)

	require.NoError(t, montyOpens.AddParent(firstChoice.DirectedNode))
	require.NoError(t, montyOpens.AddParent(prizeDoor.DirectedNode))

	firstChoicePot, err := potential.NewConditionalClassical(
		[]*core.BayesNode{firstChoice}, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, 0)
	require.NoError(t, err)
	prizeDoorPot, err := potential.NewConditionalClassical(
		[]*core.BayesNode{prizeDoor}, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, 0)
	require.NoError(t, err)

	montyData := make([]float64, 27)
	idx := func(f, p, m int) int { return f*9 + p*3 + m }
	for f := 0; f < 3; f++ {
		for p := 0; p < 3; p++ {
			var legal []int
			for m := 0; m < 3; m++ {
				if m != f && m != p {
					legal = append(legal, m)
				}
			}
			share := 1.0 / float64(len(legal))
			for _, m := range legal {
				montyData[idx(f, p, m)] = share
			}
		}
	}
	montyPot, err := potential.NewConditionalClassical(
		[]*core.BayesNode{firstChoice, prizeDoor, montyOpens}, montyData, 0)
	require.NoError(t, err)

	require.NoError(t, firstChoice.SetPotential(firstChoicePot))
	require.NoError(t, prizeDoor.SetPotential(prizeDoorPot))
	require.NoError(t, montyOpens.SetPotential(montyPot))

	bnet, err := bayesnet.New([]*core.BayesNode{firstChoice, prizeDoor, montyOpens}, false)
	require.NoError(t, err)
	return bnet
}

// buildQuantumWetGrass mirrors buildWetGrass but with complex amplitudes in
// place of classical probabilities, normalized by 2-norm (Scenario Q).
func buildQuantumWetGrass(t *testing.T) *bayesnet.BayesNet {
	t.Helper()

	cloudy, err := core.NewBayesNode(1, "Cloudy", 2, []string{"off", "on"})
	require.NoError(t, err)
	sprinkler, err := core.NewBayesNode(2, "Sprinkler", 2, []string{"off", "on"})
	require.NoError(t, err)
	rain, err := core.NewBayesNode(3, "Rain", 2, []string{"off", "on"})
	require.NoError(t, err)
	wetGrass, err := core.NewBayesNode(4, "WetGrass", 2, []string{"off", "on"})
	require.NoError(t, err)

	require.NoError(t, sprinkler.AddParent(cloudy.DirectedNode))
	require.NoError(t, rain.AddParent(cloudy.DirectedNode))
	require.NoError(t, wetGrass.AddParent(sprinkler.DirectedNode))
	require.NoError(t, wetGrass.AddParent(rain.DirectedNode))

	amp := func(v float64) complex128 { return complex(v, 0) }

	cloudyPot, err := potential.NewConditionalQuantum(
		[]*core.BayesNode{cloudy}, []complex128{amp(0.5), amp(0.5)}, 0)
	require.NoError(t, err)
	require.NoError(t, cloudyPot.Normalize())

	sprinklerPot, err := potential.NewConditionalQuantum(
		[]*core.BayesNode{cloudy, sprinkler},
		[]complex128{amp(0.2), amp(0.8), amp(0.7), amp(0.3)}, 0)
	require.NoError(t, err)
	require.NoError(t, sprinklerPot.Normalize())

	rainPot, err := potential.NewConditionalQuantum(
		[]*core.BayesNode{cloudy, rain},
		[]complex128{amp(0.4), amp(0.6), amp(0.5), amp(0.5)}, 0)
	require.NoError(t, err)
	require.NoError(t, rainPot.Normalize())

	wetGrassPot, err := potential.NewConditionalQuantum(
		[]*core.BayesNode{sprinkler, rain, wetGrass},
		[]complex128{
			amp(0.99), amp(0.01), amp(0.01), amp(0.99),
			amp(0.01), amp(0.99), amp(0.01), amp(0.99),
		}, 0)
	require.NoError(t, err)
	require.NoError(t, wetGrassPot.Normalize())

	require.NoError(t, cloudy.SetPotential(cloudyPot))
	require.NoError(t, sprinkler.SetPotential(sprinklerPot))
	require.NoError(t, rain.SetPotential(rainPot))
	require.NoError(t, wetGrass.SetPotential(wetGrassPot))

	bnet, err := bayesnet.New([]*core.BayesNode{cloudy, sprinkler, rain, wetGrass}, true)
	require.NoError(t, err)
	return bnet
}

// buildDisconnectedPair assembles two independent two-node chains (A->B,
// C->D) with no shared ancestry, used to exercise the disconnected-graph
// rejection decided in DESIGN.md OQ-2.
func buildDisconnectedPair(t *testing.T) *bayesnet.BayesNet {
	t.Helper()
	a, err := core.NewBayesNode(1, "A", 2, []string{"off", "on"})
	require.NoError(t, err)
	b, err := core.NewBayesNode(2, "B", 2, []string{"off", "on"})
	require.NoError(t, err)
	c, err := core.NewBayesNode(3, "C", 2, []string{"off", "on"})
	require.NoError(t, err)
	d, err := core.NewBayesNode(4, "D", 2, []string{"off", "on"})
	require.NoError(t, err)

	require.NoError(t, b.AddParent(a.DirectedNode))
	require.NoError(t, d.AddParent(c.DirectedNode))

	aPot, err := potential.NewConditionalClassical([]*core.BayesNode{a}, []float64{0.5, 0.5}, 0)
	require.NoError(t, err)
	bPot, err := potential.NewConditionalClassical([]*core.BayesNode{a, b}, []float64{0.5, 0.5, 0.5, 0.5}, 0)
	require.NoError(t, err)
	cPot, err := potential.NewConditionalClassical([]*core.BayesNode{c}, []float64{0.5, 0.5}, 0)
	require.NoError(t, err)
	dPot, err := potential.NewConditionalClassical([]*core.BayesNode{c, d}, []float64{0.5, 0.5, 0.5, 0.5}, 0)
	require.NoError(t, err)

	require.NoError(t, a.SetPotential(aPot))
	require.NoError(t, b.SetPotential(bPot))
	require.NoError(t, c.SetPotential(cPot))
	require.NoError(t, d.SetPotential(dPot))

	bnet, err := bayesnet.New([]*core.BayesNode{a, b, c, d}, false)
	require.NoError(t, err)
	return bnet
}

// buildHuangDarwiche assembles SPEC_FULL.md's Scenario H network: the
// eight-node chain-of-diamonds `A→{B,C}; B→D→F; C→{E,G}; E→F; {E,G}→H` from
// Huang & Darwiche's "Inference in Belief Networks: A Procedural Guide",
// with the canonical CPTs from the reference implementation's build_bnet.
func buildHuangDarwiche(t *testing.T) *bayesnet.BayesNet {
	t.Helper()

	a, err := core.NewBayesNode(1, "A", 2, []string{"off", "on"})
	require.NoError(t, err)
	b, err := core.NewBayesNode(2, "B", 2, []string{"off", "on"})
	require.NoError(t, err)
	c, err := core.NewBayesNode(3, "C", 2, []string{"off", "on"})
	require.NoError(t, err)
	d, err := core.NewBayesNode(4, "D", 2, []string{"off", "on"})
	require.NoError(t, err)
	e, err := core.NewBayesNode(5, "E", 2, []string{"off", "on"})
	require.NoError(t, err)
	f, err := core.NewBayesNode(6, "F", 2, []string{"off", "on"})
	require.NoError(t, err)
	g, err := core.NewBayesNode(7, "G", 2, []string{"off", "on"})
	require.NoError(t, err)
	h, err := core.NewBayesNode(8, "H", 2, []string{"off", "on"})
	require.NoError(t, err)

	require.NoError(t, b.AddParent(a.DirectedNode))
	require.NoError(t, c.AddParent(a.DirectedNode))
	require.NoError(t, d.AddParent(b.DirectedNode))
	require.NoError(t, e.AddParent(c.DirectedNode))
	require.NoError(t, f.AddParent(d.DirectedNode))
	require.NoError(t, f.AddParent(e.DirectedNode))
	require.NoError(t, g.AddParent(c.DirectedNode))
	require.NoError(t, h.AddParent(e.DirectedNode))
	require.NoError(t, h.AddParent(g.DirectedNode))

	aPot, err := potential.NewConditionalClassical([]*core.BayesNode{a}, []float64{.5, .5}, 0)
	require.NoError(t, err)
	bPot, err := potential.NewConditionalClassical(
		[]*core.BayesNode{a, b}, []float64{.4, .6, .5, .5}, 0)
	require.NoError(t, err)
	cPot, err := potential.NewConditionalClassical(
		[]*core.BayesNode{a, c}, []float64{.2, .8, .7, .3}, 0)
	require.NoError(t, err)
	dPot, err := potential.NewConditionalClassical(
		[]*core.BayesNode{b, d}, []float64{.5, .5, .9, .1}, 0)
	require.NoError(t, err)
	ePot, err := potential.NewConditionalClassical(
		[]*core.BayesNode{c, e}, []float64{.6, .4, .3, .7}, 0)
	require.NoError(t, err)
	fPot, err := potential.NewConditionalClassical(
		[]*core.BayesNode{d, e, f},
		[]float64{.99, .01, .01, .99, .01, .99, .01, .99}, 0)
	require.NoError(t, err)
	gPot, err := potential.NewConditionalClassical(
		[]*core.BayesNode{c, g}, []float64{.1, .9, .8, .2}, 0)
	require.NoError(t, err)
	hPot, err := potential.NewConditionalClassical(
		[]*core.BayesNode{e, g, h},
		[]float64{.95, .05, .95, .05, .95, .05, .05, .95}, 0)
	require.NoError(t, err)

	require.NoError(t, a.SetPotential(aPot))
	require.NoError(t, b.SetPotential(bPot))
	require.NoError(t, c.SetPotential(cPot))
	require.NoError(t, d.SetPotential(dPot))
	require.NoError(t, e.SetPotential(ePot))
	require.NoError(t, f.SetPotential(fPot))
	require.NoError(t, g.SetPotential(gPot))
	require.NoError(t, h.SetPotential(hPot))

	bnet, err := bayesnet.New([]*core.BayesNode{a, b, c, d, e, f, g, h}, false)
	require.NoError(t, err)
	return bnet
}

func distByNode(t *testing.T, dists []inference.Distribution) map[string]inference.Distribution {
	t.Helper()
	out := make(map[string]inference.Distribution, len(dists))
	for _, d := range dists {
		out[d.Node] = d
	}
	return out
}
