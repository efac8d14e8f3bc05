// Package bnetkit is your in-memory playground for building, querying, and
// validating discrete Bayesian networks and their quantum analogue
// ("QBnets") in Go.
//
// 🚀 What is bnetkit?
//
//	A modern library that brings together:
//
//	  • Core primitives: nodes, directed edges, and conditional potentials
//	  • Exact inference: moralization, triangulation, and junction-tree
//	    message passing (Shenoy–Shafer / Huang–Darwiche)
//	  • Reference engines: brute-force enumeration and Gibbs-sampling MCMC
//	    for cross-checking exact results
//	  • .bif import/export and optional YAML engine configuration
//
// ✨ Why choose bnetkit?
//
//   - Beginner-friendly    — minimal API, clear, intuitive naming
//   - Rock-solid           — node state is guarded by R/W locks; engines
//     and networks are not safe for concurrent queries
//   - Deterministic        — every tie-break in triangulation and join-tree
//     construction is spelled out and reproducible across runs
//   - Classical and quantum — the same potential algebra serves real
//     probabilities and complex amplitudes alike
//
// Under the hood, everything is organized under one subpackage per concern:
//
//	core/        — Node, DirectedNode, BayesNode identity and state
//	dag/         — DAG construction, topological sort, moralization
//	potential/   — the tensor algebra every engine is built on
//	bayesnet/    — DAG of BayesNodes, cloning, construction-time validation
//	triangulate/ — moral-graph triangulation and clique extraction
//	jointree/    — clique/sepset structures and join-tree assembly
//	inference/   — JoinTreeEngine, EnumerationEngine, MCMCEngine
//	bif/         — .bif grammar reader/writer (classical and quantum)
//	bnetio/      — optional YAML engine configuration
//
// Quick example: a four-node diamond DAG —
//
//	Cloudy
//	 ╱   ╲
//	Sprinkler Rain
//	 ╲   ╱
//	WetGrass
//
// is exactly the shape of the canonical WetGrass network used throughout
// this module's tests.
//
//	go get github.com/katalvlaran/bnetkit
package bnetkit
