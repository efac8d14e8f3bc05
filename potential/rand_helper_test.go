// SPDX-License-Identifier: MIT

package potential_test

import "math/rand"

// newDeterministicRand returns a fixed-seed RNG so sampling tests are
// reproducible.
func newDeterministicRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}
