// SPDX-License-Identifier: MIT

package bayesnet_test

import (
	"testing"

	"github.com/katalvlaran/bnetkit/bayesnet"
	"github.com/katalvlaran/bnetkit/core"
	"github.com/katalvlaran/bnetkit/potential"
	"github.com/stretchr/testify/require"
)

// buildWetGrass constructs Scenario W (SPEC_FULL.md §8): Cloudy ->
// {Sprinkler, Rain} -> WetGrass, all binary [off=0, on=1].
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
	require.NoError(t, cloudy.SetPotential(cloudyPot))

	sprinklerPot, err := potential.NewConditionalClassical([]*core.BayesNode{cloudy, sprinkler},
		[]float64{0.2, 0.8, 0.7, 0.3}, 0)
	require.NoError(t, err)
	require.NoError(t, sprinkler.SetPotential(sprinklerPot))

	rainPot, err := potential.NewConditionalClassical([]*core.BayesNode{cloudy, rain},
		[]float64{0.4, 0.6, 0.5, 0.5}, 0)
	require.NoError(t, err)
	require.NoError(t, rain.SetPotential(rainPot))

	wetGrassPot, err := potential.NewConditionalClassical([]*core.BayesNode{sprinkler, rain, wetGrass},
		[]float64{
			0.99, 0.01, // sprinkler=off, rain=off
			0.01, 0.99, // sprinkler=off, rain=on
			0.01, 0.99, // sprinkler=on, rain=off
			0.01, 0.99, // sprinkler=on, rain=on
		}, 0)
	require.NoError(t, err)
	require.NoError(t, wetGrass.SetPotential(wetGrassPot))

	bn, err := bayesnet.New([]*core.BayesNode{cloudy, sprinkler, rain, wetGrass}, false)
	require.NoError(t, err)
	return bn
}

// TestNew_RejectsFamilyOrderMismatch
//
// VERIFIES/ASSERTS: a node whose potential.ord_nodes is not exactly
// parents + [self] is rejected (SPEC_FULL.md §3).
func TestNew_RejectsFamilyOrderMismatch(t *testing.T) {
	cloudy, err := core.NewBayesNode(1, "Cloudy", 2, []string{"off", "on"})
	require.NoError(t, err)
	rain, err := core.NewBayesNode(2, "Rain", 2, []string{"off", "on"})
	require.NoError(t, err)
	require.NoError(t, rain.AddParent(cloudy.DirectedNode))

	// Wrong: rain's potential omits its parent.
	pot, err := potential.NewConditionalClassical([]*core.BayesNode{rain}, []float64{0.5, 0.5}, 0)
	require.NoError(t, err)
	require.NoError(t, rain.SetPotential(pot))
	cloudyPot, err := potential.NewConditionalClassical([]*core.BayesNode{cloudy}, []float64{0.5, 0.5}, 0)
	require.NoError(t, err)
	require.NoError(t, cloudy.SetPotential(cloudyPot))

	_, err = bayesnet.New([]*core.BayesNode{cloudy, rain}, false)
	require.ErrorIs(t, err, bayesnet.ErrFamilyOrderMismatch)
}

// TestNew_WetGrassTopologicalOrder
func TestNew_WetGrassTopologicalOrder(t *testing.T) {
	bn := buildWetGrass(t)
	nodes := bn.Nodes()
	require.Equal(t, "Cloudy", nodes[0].Name())
	require.Equal(t, "WetGrass", nodes[len(nodes)-1].Name())
}

// TestClone_ProducesIndependentNodesWithSameTopology
//
// VERIFIES/ASSERTS: Clone duplicates potentials but re-wires them onto the
// cloned node set, and mutating the clone's evidence never touches the
// original (SPEC_FULL.md §4.5).
func TestClone_ProducesIndependentNodesWithSameTopology(t *testing.T) {
	bn := buildWetGrass(t)
	clone, err := bn.Clone()
	require.NoError(t, err)

	origWG, _ := bn.NodeByName("WetGrass")
	cloneWG, _ := clone.NodeByName("WetGrass")
	require.NotSame(t, origWG, cloneWG)
	require.Equal(t, origWG.TopoIndex(), cloneWG.TopoIndex())

	require.NoError(t, cloneWG.SetActiveStates([]int{1}))
	require.Equal(t, []int{0, 1}, origWG.ActiveStates())
}

// TestValidate_FlagsDegenerateSlice
func TestValidate_FlagsDegenerateSlice(t *testing.T) {
	a, err := core.NewBayesNode(1, "A", 2, []string{"off", "on"})
	require.NoError(t, err)
	pot, err := potential.NewConditionalClassical([]*core.BayesNode{a}, []float64{0, 0}, 0)
	require.NoError(t, err)
	require.NoError(t, a.SetPotential(pot))

	bn, err := bayesnet.New([]*core.BayesNode{a}, false)
	require.NoError(t, err)

	issues := bn.Validate()
	require.Len(t, issues, 1)
	require.Equal(t, "A", issues[0].Node)
}
