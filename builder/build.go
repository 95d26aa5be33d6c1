// SPDX-License-Identifier: MIT
// Package builder: signed-network constructors.
//
// Canonical model:
//   - Every constructor emits a complete signed graph: all C(n,2) unordered
//     pairs get exactly one sign, mirrored below the diagonal, diagonal
//     left at the (unused) zero value.
//   - Stable trial order for stochastic signing: i asc, j asc, j > i.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/signet/core"
)

// Constructor minima and probability domain (no magic literals).
const (
	minCompleteNodes = 1
	minFactionNodes  = 2
	probMin          = 0.0
	probMax          = 1.0
)

// defaultSeed is the fixed seed substituted when callers pass seed==0,
// keeping zero-value usage reproducible.
const defaultSeed int64 = 1

// emptyRows allocates an n×n sign table with a zeroed diagonal.
func emptyRows(n int) [][]core.Sign {
	rows := make([][]core.Sign, n)
	for i := range rows {
		rows[i] = make([]core.Sign, n)
	}

	return rows
}

// Complete returns the complete n-node network with every edge signed s.
// With s == core.Positive the network is perfectly balanced: all C(n,3)
// triads are stable with three positive edges.
//
// Returns ErrTooFewNodes for n < 1 and core.ErrBadSign for an invalid sign.
// Complexity: O(n²).
func Complete(n int, s core.Sign) (*core.SignedMatrix, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewNodes)
	}
	if !s.Valid() {
		return nil, fmt.Errorf("Complete: sign=%d: %w", s, core.ErrBadSign)
	}

	rows := emptyRows(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			rows[i][j], rows[j][i] = s, s
		}
	}

	return core.New(rows)
}

// Random returns a complete n-node network in which each edge is signed
// Negative with probability negProb, independently, using a deterministic
// seeded source (seed==0 is replaced by a fixed default seed).
//
// Returns ErrTooFewNodes for n < 1 and ErrBadProbability for
// negProb outside [0,1].
// Complexity: O(n²), with exactly C(n,2) Bernoulli trials in stable order.
func Random(n int, negProb float64, seed int64) (*core.SignedMatrix, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Random: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewNodes)
	}
	if negProb < probMin || negProb > probMax {
		return nil, fmt.Errorf("Random: p=%g not in [%g,%g]: %w", negProb, probMin, probMax, ErrBadProbability)
	}

	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	rows := emptyRows(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := core.Positive
			if rng.Float64() < negProb {
				s = core.Negative
			}
			rows[i][j], rows[j][i] = s, s
		}
	}

	return core.New(rows)
}

// Factions returns the complete n-node network split into two camps: nodes
// 0..split-1 and split..n-1. Edges within a camp are Positive, edges across
// camps Negative. By balance theory the result is perfectly balanced —
// every triad has either 3 or exactly 1 positive edge.
//
// Returns ErrTooFewNodes for n < 2 and ErrBadSplit unless 1 ≤ split ≤ n-1.
// Complexity: O(n²).
func Factions(n, split int) (*core.SignedMatrix, error) {
	if n < minFactionNodes {
		return nil, fmt.Errorf("Factions: n=%d < min=%d: %w", n, minFactionNodes, ErrTooFewNodes)
	}
	if split < 1 || split > n-1 {
		return nil, fmt.Errorf("Factions: split=%d not in [1,%d]: %w", split, n-1, ErrBadSplit)
	}

	rows := emptyRows(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := core.Positive
			if (i < split) != (j < split) {
				s = core.Negative
			}
			rows[i][j], rows[j][i] = s, s
		}
	}

	return core.New(rows)
}
