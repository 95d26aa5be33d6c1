// Package triad: options, sentinel errors, and the immutable Counts summary.
package triad

import (
	"errors"

	"github.com/katalvlaran/signet/core"
)

// Sentinel errors for triad counting. Match with errors.Is.
var (
	// ErrNilMatrix indicates a nil *core.SignedMatrix was passed to Count.
	// Alias of core.ErrNilMatrix so errors.Is matches either name.
	ErrNilMatrix = core.ErrNilMatrix
	// ErrBadOptions indicates a negative ParallelThreshold or Workers value.
	ErrBadOptions = errors.New("triad: invalid options")
)

// DefaultParallelThreshold is the node count above which Count switches to
// the partitioned-parallel path. Below it the enumeration is small enough
// that goroutine coordination would dominate the work.
const DefaultParallelThreshold = 50

// numBuckets is the histogram width: a triad has 0..3 positive edges.
const numBuckets = 4

// Options configures a counting run.
//
// Fields:
//   - ParallelThreshold — use the parallel path iff NodeCount() exceeds it.
//     Zero means "always parallel" (useful to exercise that path on small
//     synthetic inputs); negative is rejected with ErrBadOptions.
//   - Workers — number of parallel workers; 0 means runtime.NumCPU().
//     A single worker degenerates to the sequential enumeration.
type Options struct {
	ParallelThreshold int
	Workers           int
}

// DefaultOptions returns Options with ParallelThreshold=50 and Workers=0
// (resolved to runtime.NumCPU() at run time).
func DefaultOptions() Options {
	return Options{ParallelThreshold: DefaultParallelThreshold}
}

// validate rejects nonsensical option values.
func (o Options) validate() error {
	if o.ParallelThreshold < 0 || o.Workers < 0 {
		return ErrBadOptions
	}

	return nil
}

// Counts is the immutable aggregate of a counting run: how many triads fall
// into each positive-edge-count bucket. Stable and unstable totals are
// always derived from the histogram — buckets {1,3} and {0,2} respectively —
// so the two views cannot drift apart.
type Counts struct {
	hist [numBuckets]uint64 // index = number of positive edges (0..3)
}

// Stable returns the number of balanced triads (3 or 1 positive edges).
func (c Counts) Stable() uint64 {
	return c.hist[3] + c.hist[1]
}

// Unstable returns the number of unbalanced triads (2 or 0 positive edges).
func (c Counts) Unstable() uint64 {
	return c.hist[2] + c.hist[0]
}

// Total returns the number of classified triads, exactly C(n,3).
func (c Counts) Total() uint64 {
	return c.hist[0] + c.hist[1] + c.hist[2] + c.hist[3]
}

// Positives returns the number of triads with exactly k positive edges.
// k outside [0,3] yields 0.
func (c Counts) Positives(k int) uint64 {
	if k < 0 || k >= numBuckets {
		return 0
	}

	return c.hist[k]
}

// Histogram returns the full bucket array, index = positive-edge count.
// The array is returned by value; Counts itself stays immutable.
func (c Counts) Histogram() [numBuckets]uint64 {
	return c.hist
}

// merge folds another partial histogram into c by elementwise addition.
// Addition is associative and commutative, so merge order cannot affect
// the final result.
func (c *Counts) merge(h [numBuckets]uint64) {
	for b := 0; b < numBuckets; b++ {
		c.hist[b] += h[b]
	}
}

// TriadTotal returns C(n,3), the number of triads in an n-node network;
// 0 for n < 3. Complexity: O(1).
func TriadTotal(n int) uint64 {
	if n < 3 {
		return 0
	}
	un := uint64(n)

	return un * (un - 1) * (un - 2) / 6
}
