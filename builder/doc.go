// SPDX-License-Identifier: MIT
// Package builder constructs synthetic signed networks for tests,
// benchmarks, and demos.
//
// What:
//
//   - Complete(n, s): complete graph with every edge carrying one sign.
//   - Random(n, negProb, seed): seeded Bernoulli signing of the complete
//     graph — each edge negative with probability negProb.
//   - Factions(n, split): two internally friendly, mutually hostile camps;
//     a perfectly balanced network (every triad is stable).
//
// Determinism:
//
//   - No time-based randomness anywhere. Random uses a caller-supplied
//     seed with a fixed trial order (i asc, then j asc over the upper
//     triangle), so a given (n, negProb, seed) always yields the same
//     matrix on every platform.
//
// Errors:
//
//   - ErrTooFewNodes: n below the constructor's minimum.
//   - ErrBadProbability: negProb outside [0, 1].
//   - ErrBadSplit: faction split outside [1, n-1].
//   - core.ErrBadSign: Complete called with an invalid sign value.
package builder
