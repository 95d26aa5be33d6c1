package triad

import "github.com/katalvlaran/signet/core"

// Classify reports whether the triad with edge signs (ab, ac, bc) is
// balanced, and how many of its edges are positive.
//
// Stability uses the sign-product rule: with each sign encoded ±1, the
// product of the three is positive exactly when the triad carries an even
// number of negative edges (0 or 2 of 3), i.e. 3 or 1 positive edges.
// That is one multiplication chain and a single comparison — no per-edge
// branching on the stability path. The positive count is tallied separately
// for the histogram.
//
// Total over all sign combinations; no error conditions.
// Complexity: O(1).
func Classify(ab, ac, bc core.Sign) (stable bool, positives int) {
	stable = ab*ac*bc > 0

	if ab == core.Positive {
		positives++
	}
	if ac == core.Positive {
		positives++
	}
	if bc == core.Positive {
		positives++
	}

	return stable, positives
}
