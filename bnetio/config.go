// SPDX-License-Identifier: MIT
//
// config.go — engine defaults loaded from an optional YAML file
// (SPEC_FULL.md §10 A.3), following dijkstra.DefaultOptions's convention of
// a plain defaults constructor plus a validating loader.

package bnetio

import (
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds engine settings a caller can load and pass to an engine
// through its functional options; engines do not read a Config themselves.
//
//   - Cycles:  default MCMC cycle count (inference.WithCycles).
//   - Warmup:  default MCMC burn-in length (inference.WithWarmup).
//   - Verbose: default verbosity for every engine's verbose-mode option.
//   - Seed:    RNG seed feeding a deterministic math/rand.Rand
//     (inference.WithRand), for reproducible MCMC runs.
type Config struct {
	Cycles  int  `yaml:"cycles"`
	Warmup  int  `yaml:"warmup"`
	Verbose bool `yaml:"verbose"`
	Seed    int64 `yaml:"seed"`
}

// DefaultConfig returns sane defaults: 1000 cycles, 100-cycle warmup,
// verbosity off, seed 1 (matching inference.defaultMCMCOptions).
func DefaultConfig() Config {
	return Config{
		Cycles:  1000,
		Warmup:  100,
		Verbose: false,
		Seed:    1,
	}
}

// LoadConfig reads an optional YAML file at path. A missing file is not an
// error: it yields DefaultConfig() unchanged. A present-but-malformed file,
// or one whose values fail Validate, is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the cross-field invariants a hand-edited YAML file could
// violate that the zero value of each field wouldn't otherwise catch.
func (c Config) Validate() error {
	if c.Cycles <= 0 {
		return ErrBadCycles
	}
	if c.Warmup < 0 {
		return ErrBadWarmup
	}
	if c.Warmup >= c.Cycles {
		return ErrWarmupExceedsCycles
	}
	return nil
}

// Rand constructs a deterministic *rand.Rand seeded from c.Seed, ready to
// hand to inference.WithRand.
func (c Config) Rand() *rand.Rand {
	return rand.New(rand.NewSource(c.Seed))
}
