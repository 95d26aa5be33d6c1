// SPDX-License-Identifier: MIT
// Package builder: sentinel errors.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Constructors attach parameter context via %w wrapping at the call site.
//   - Constructors never panic; all validation failures return sentinels.
package builder

import "errors"

// ErrTooFewNodes indicates the requested node count is below the
// constructor's minimum (1 for Complete/Random, 2 for Factions).
var ErrTooFewNodes = errors.New("builder: node count too small")

// ErrBadProbability indicates a probability outside the closed
// interval [0,1].
var ErrBadProbability = errors.New("builder: probability out of range")

// ErrBadSplit indicates a faction split outside [1, n-1]; both camps must
// be non-empty.
var ErrBadSplit = errors.New("builder: faction split out of range")
