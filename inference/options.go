// SPDX-License-Identifier: MIT
//
// options.go — functional options for the three engines, following
// dijkstra.Option's convention (SPEC_FULL.md §10 A.4): invalid values panic
// inside the option constructor itself, never at call time; structural
// errors (nil bnet, disconnected graph) are returned as error from the
// engine constructor.

package inference

import "math/rand"

// JoinTreeOption configures NewJoinTreeEngine.
type JoinTreeOption func(*jtOptions)

type jtOptions struct {
	verbose bool
}

func defaultJTOptions() jtOptions {
	return jtOptions{verbose: false}
}

// WithJoinTreeVerbose enables verbose-mode log lines: the join tree summary
// and family-clique assignments at construction, and per-query and
// per-message traces tagged with the query id.
func WithJoinTreeVerbose() JoinTreeOption {
	return func(o *jtOptions) { o.verbose = true }
}

// EnumerationOption configures NewEnumerationEngine.
type EnumerationOption func(*enumOptions)

type enumOptions struct {
	verbose bool
}

func defaultEnumOptions() enumOptions {
	return enumOptions{verbose: false}
}

// WithEnumerationVerbose enables verbose-mode per-story log lines.
func WithEnumerationVerbose() EnumerationOption {
	return func(o *enumOptions) { o.verbose = true }
}

// MCMCOption configures NewMCMCEngine.
type MCMCOption func(*mcmcOptions)

type mcmcOptions struct {
	verbose bool
	cycles  int
	warmup  int
	rng     *rand.Rand
}

func defaultMCMCOptions() mcmcOptions {
	return mcmcOptions{
		verbose: false,
		cycles:  1000,
		warmup:  100,
		rng:     rand.New(rand.NewSource(1)),
	}
}

// WithCycles sets the number of Gibbs-sampling cycles to run. Must be
// positive; non-positive values panic (dijkstra.WithMaxDistance's
// panic-on-invalid convention).
func WithCycles(n int) MCMCOption {
	if n <= 0 {
		panic("inference: WithCycles requires n > 0")
	}
	return func(o *mcmcOptions) { o.cycles = n }
}

// WithWarmup sets how many leading cycles are discarded as burn-in before
// occupancy counting begins. Must be non-negative.
func WithWarmup(n int) MCMCOption {
	if n < 0 {
		panic("inference: WithWarmup requires n >= 0")
	}
	return func(o *mcmcOptions) { o.warmup = n }
}

// WithRand overrides the engine's random source; useful for reproducible
// tests. A nil rng panics.
func WithRand(rng *rand.Rand) MCMCOption {
	if rng == nil {
		panic("inference: WithRand requires a non-nil *rand.Rand")
	}
	return func(o *mcmcOptions) { o.rng = rng }
}

// WithMCMCVerbose enables verbose-mode per-cycle log lines for the final
// few cycles, mirroring the original's "only log the last several cycles"
// behavior.
func WithMCMCVerbose() MCMCOption {
	return func(o *mcmcOptions) { o.verbose = true }
}
