// SPDX-License-Identifier: MIT

package inference_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/bnetkit/inference"
	"github.com/stretchr/testify/require"
)

// TestJoinTreeEngine_WetGrassMatchesScenarioW
//
// VERIFIES/ASSERTS: entering WetGrass=on evidence on SPEC_FULL.md's
// Scenario W drives Cloudy's marginal to approximately [0.4242, 0.5758]
// (SPEC_FULL.md §8 Scenario W).
func TestJoinTreeEngine_WetGrassMatchesScenarioW(t *testing.T) {
	bnet := buildWetGrass(t)
	wetGrass, ok := bnet.NodeByName("WetGrass")
	require.True(t, ok)
	require.NoError(t, wetGrass.SetActiveStates([]int{1}))

	engine, err := inference.NewJoinTreeEngine(bnet)
	require.NoError(t, err)

	dists, err := engine.Marginals(context.Background(), "Cloudy")
	require.NoError(t, err)
	require.Len(t, dists, 1)

	d := dists[0]
	require.InDelta(t, 0.4242, d.Probs[0], 1e-4)
	require.InDelta(t, 0.5758, d.Probs[1], 1e-4)
}

// TestJoinTreeEngine_AgreesWithEnumerationOnWetGrass
//
// VERIFIES/ASSERTS: JoinTreeEngine and EnumerationEngine agree to 1e-9 on
// every node's marginal under WetGrass=on evidence (SPEC_FULL.md §8
// property 9).
func TestJoinTreeEngine_AgreesWithEnumerationOnWetGrass(t *testing.T) {
	jtNet := buildWetGrass(t)
	enumNet := buildWetGrass(t)

	wg1, _ := jtNet.NodeByName("WetGrass")
	require.NoError(t, wg1.SetActiveStates([]int{1}))
	wg2, _ := enumNet.NodeByName("WetGrass")
	require.NoError(t, wg2.SetActiveStates([]int{1}))

	jtEngine, err := inference.NewJoinTreeEngine(jtNet)
	require.NoError(t, err)
	enumEngine, err := inference.NewEnumerationEngine(enumNet)
	require.NoError(t, err)

	names := []string{"Cloudy", "Sprinkler", "Rain", "WetGrass"}
	jtDists, err := jtEngine.Marginals(context.Background(), names...)
	require.NoError(t, err)
	enumDists, err := enumEngine.Marginals(context.Background(), names...)
	require.NoError(t, err)

	jtByNode := distByNode(t, jtDists)
	enumByNode := distByNode(t, enumDists)
	for _, name := range names {
		jt := jtByNode[name]
		en := enumByNode[name]
		for s := range jt.Probs {
			require.InDeltaf(t, en.Probs[s], jt.Probs[s], 1e-9,
				"node %s state %d: jointree=%v enumeration=%v", name, s, jt.Probs, en.Probs)
		}
	}
}

// TestJoinTreeEngine_MontyHallMatchesScenarioM
//
// VERIFIES/ASSERTS: FirstChoice=A, MontyOpens=B drives PrizeDoor to
// approximately [1/3, 0, 2/3] (SPEC_FULL.md §8 Scenario M).
func TestJoinTreeEngine_MontyHallMatchesScenarioM(t *testing.T) {
	bnet := buildMontyHall(t)
	firstChoice, _ := bnet.NodeByName("FirstChoice")
	montyOpens, _ := bnet.NodeByName("MontyOpens")
	require.NoError(t, firstChoice.SetActiveStates([]int{0}))
	require.NoError(t, montyOpens.SetActiveStates([]int{1}))

	engine, err := inference.NewJoinTreeEngine(bnet)
	require.NoError(t, err)

	dists, err := engine.Marginals(context.Background(), "PrizeDoor")
	require.NoError(t, err)
	d := dists[0]
	require.InDelta(t, 1.0/3, d.Probs[0], 1e-9)
	require.InDelta(t, 0.0, d.Probs[1], 1e-9)
	require.InDelta(t, 2.0/3, d.Probs[2], 1e-9)
}

// TestJoinTreeEngine_QuantumAgreesWithEnumeration
//
// VERIFIES/ASSERTS: Scenario Q — with complex amplitudes and WetGrass=on
// evidence, JoinTreeEngine's |amp|^2 readout matches EnumerationEngine's to
// 1e-9 on every node (SPEC_FULL.md §8 Scenario Q).
func TestJoinTreeEngine_QuantumAgreesWithEnumeration(t *testing.T) {
	jtNet := buildQuantumWetGrass(t)
	enumNet := buildQuantumWetGrass(t)

	wg1, _ := jtNet.NodeByName("WetGrass")
	require.NoError(t, wg1.SetActiveStates([]int{1}))
	wg2, _ := enumNet.NodeByName("WetGrass")
	require.NoError(t, wg2.SetActiveStates([]int{1}))

	jtEngine, err := inference.NewJoinTreeEngine(jtNet)
	require.NoError(t, err)
	enumEngine, err := inference.NewEnumerationEngine(enumNet)
	require.NoError(t, err)

	names := []string{"Cloudy", "Sprinkler", "Rain", "WetGrass"}
	jtDists, err := jtEngine.Marginals(context.Background(), names...)
	require.NoError(t, err)
	enumDists, err := enumEngine.Marginals(context.Background(), names...)
	require.NoError(t, err)

	jtByNode := distByNode(t, jtDists)
	enumByNode := distByNode(t, enumDists)
	for _, name := range names {
		jt := jtByNode[name]
		en := enumByNode[name]
		for s := range jt.Probs {
			require.InDeltaf(t, en.Probs[s], jt.Probs[s], 1e-9,
				"node %s state %d: jointree=%v enumeration=%v", name, s, jt.Probs, en.Probs)
		}
	}
}

// TestJoinTreeEngine_EvidenceChangesWithoutRebuild
//
// VERIFIES/ASSERTS: SPEC_FULL.md §6.3 — "evidence may change between calls
// without rebuilding the tree". Flipping WetGrass's evidence between two
// Marginals calls on the same engine changes Cloudy's marginal.
func TestJoinTreeEngine_EvidenceChangesWithoutRebuild(t *testing.T) {
	bnet := buildWetGrass(t)
	wetGrass, _ := bnet.NodeByName("WetGrass")
	engine, err := inference.NewJoinTreeEngine(bnet)
	require.NoError(t, err)

	require.NoError(t, wetGrass.SetActiveStates([]int{1}))
	onDists, err := engine.Marginals(context.Background(), "Cloudy")
	require.NoError(t, err)

	require.NoError(t, wetGrass.SetActiveStates([]int{0}))
	offDists, err := engine.Marginals(context.Background(), "Cloudy")
	require.NoError(t, err)

	require.Greater(t, math.Abs(onDists[0].Probs[0]-offDists[0].Probs[0]), 1e-6)
}

// TestJoinTreeEngine_RejectsDisconnectedBayesNet
func TestJoinTreeEngine_RejectsDisconnectedBayesNet(t *testing.T) {
	bnet := buildDisconnectedPair(t)
	_, err := inference.NewJoinTreeEngine(bnet)
	require.Error(t, err)
}

// TestJoinTreeEngine_AgreesWithEnumerationOnHuangDarwiche
//
// VERIFIES/ASSERTS: SPEC_FULL.md §8 Scenario H — on the eight-node
// chain-of-diamonds `A→{B,C}; B→D→F; C→{E,G}; E→F; {E,G}→H` with evidence
// `D.active_states={0}, G.active_states={1}`, JoinTreeEngine and
// EnumerationEngine agree to 1e-9 on every node's marginal. This is the
// deepest join tree in the suite: the root's collect/distribute DFS must
// recurse through several intermediate cliques rather than a single hop.
func TestJoinTreeEngine_AgreesWithEnumerationOnHuangDarwiche(t *testing.T) {
	jtNet := buildHuangDarwiche(t)
	enumNet := buildHuangDarwiche(t)

	jtD, _ := jtNet.NodeByName("D")
	require.NoError(t, jtD.SetActiveStates([]int{0}))
	jtG, _ := jtNet.NodeByName("G")
	require.NoError(t, jtG.SetActiveStates([]int{1}))

	enumD, _ := enumNet.NodeByName("D")
	require.NoError(t, enumD.SetActiveStates([]int{0}))
	enumG, _ := enumNet.NodeByName("G")
	require.NoError(t, enumG.SetActiveStates([]int{1}))

	jtEngine, err := inference.NewJoinTreeEngine(jtNet)
	require.NoError(t, err)
	enumEngine, err := inference.NewEnumerationEngine(enumNet)
	require.NoError(t, err)

	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	jtDists, err := jtEngine.Marginals(context.Background(), names...)
	require.NoError(t, err)
	enumDists, err := enumEngine.Marginals(context.Background(), names...)
	require.NoError(t, err)

	jtByNode := distByNode(t, jtDists)
	enumByNode := distByNode(t, enumDists)
	for _, name := range names {
		jt := jtByNode[name]
		en := enumByNode[name]
		for s := range jt.Probs {
			require.InDeltaf(t, en.Probs[s], jt.Probs[s], 1e-9,
				"node %s state %d: jointree=%v enumeration=%v", name, s, jt.Probs, en.Probs)
		}
	}
}
