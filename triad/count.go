package triad

import (
	"runtime"
	"sync"

	"github.com/katalvlaran/signet/core"
)

// minTriadNodes is the smallest network that contains a triad.
const minTriadNodes = 3

// Count enumerates every triad {i,j,k} with i<j<k of the signed network m,
// classifies each, and returns the aggregate Counts.
//
// Strategy selection:
//   - n ≤ opts.ParallelThreshold, or a single resolved worker — sequential
//     triple loop in canonical order.
//   - otherwise — the outer index range is split into contiguous, roughly
//     equal blocks, one per worker; each worker runs the inner double loop
//     against the shared read-only matrix into a private histogram, and the
//     partial histograms are merged in worker order after the join.
//
// The matrix is never mutated during a run, so workers need no locks or
// atomics; the merge is the only synchronization point. The result is
// invariant under partitioning and worker count — classification is
// side-effect free and histogram addition is associative and commutative.
//
// Fewer than three nodes yields an all-zero Counts, not an error.
// Returns ErrNilMatrix for a nil matrix and ErrBadOptions for negative
// option values.
//
// Complexity: O(n³) time, O(workers) extra memory.
func Count(m *core.SignedMatrix, opts Options) (Counts, error) {
	if m == nil {
		return Counts{}, ErrNilMatrix
	}
	if err := opts.validate(); err != nil {
		return Counts{}, err
	}

	n := m.NodeCount()
	if n < minTriadNodes {
		return Counts{}, nil
	}

	workers := opts.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if n <= opts.ParallelThreshold || workers == 1 {
		var c Counts
		c.merge(countRange(m, 0, n))

		return c, nil
	}

	return countParallel(m, workers), nil
}

// countRange classifies every triad whose smallest index lies in [lo, hi)
// and returns the partial histogram. This single kernel serves both the
// sequential path (lo=0, hi=n) and each parallel worker, so the degenerate
// one-worker run is structurally identical to sequential execution.
//
// The positive-edge contribution of the fixed (i,j) edge is hoisted out of
// the innermost loop; row views keep the k-scan sequential in memory.
func countRange(m *core.SignedMatrix, lo, hi int) [numBuckets]uint64 {
	var hist [numBuckets]uint64
	n := m.NodeCount()

	for i := lo; i < hi; i++ {
		rowI := m.Row(i)
		for j := i + 1; j < n; j++ {
			rowJ := m.Row(j)
			base := 0
			if rowI[j] == core.Positive {
				base = 1
			}
			for k := j + 1; k < n; k++ {
				positives := base
				if rowI[k] == core.Positive {
					positives++
				}
				if rowJ[k] == core.Positive {
					positives++
				}
				hist[positives]++
			}
		}
	}

	return hist
}

// countParallel partitions the outer index range [0, n) into contiguous
// blocks of near-equal size, one per worker, and merges the private
// per-worker histograms after the join barrier.
func countParallel(m *core.SignedMatrix, workers int) Counts {
	n := m.NodeCount()
	if workers > n {
		workers = n
	}
	block := (n + workers - 1) / workers

	parts := make([][numBuckets]uint64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * block
		hi := lo + block
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			parts[w] = countRange(m, lo, hi)
		}(w, lo, hi)
	}
	wg.Wait()

	// Ordered elementwise merge; order is irrelevant to the sums but kept
	// stable for reproducibility.
	var c Counts
	for w := range parts {
		c.merge(parts[w])
	}

	return c
}
