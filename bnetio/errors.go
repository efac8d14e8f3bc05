// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the bnetio package.
//
// Error policy: a sentinel for every validation failure; LoadConfig returns
// YAML decode errors from the underlying library as-is, unwrapped, since
// they already carry a useful line/column message.

package bnetio

import "errors"

// ErrBadCycles indicates a config file set Cycles <= 0.
var ErrBadCycles = errors.New("bnetio: cycles must be positive")

// ErrBadWarmup indicates a config file set Warmup < 0.
var ErrBadWarmup = errors.New("bnetio: warmup must be non-negative")

// ErrWarmupExceedsCycles indicates Warmup >= Cycles, which would discard
// every sample as burn-in.
var ErrWarmupExceedsCycles = errors.New("bnetio: warmup must be less than cycles")
