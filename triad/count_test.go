package triad_test

import (
	"testing"

	"github.com/katalvlaran/signet/builder"
	"github.com/katalvlaran/signet/core"
	"github.com/katalvlaran/signet/triad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangle builds the 3-node network A-B=+, A-C=-, B-C=+.
func triangle(t *testing.T) *core.SignedMatrix {
	t.Helper()
	m, err := core.New([][]core.Sign{
		{0, pos, neg},
		{pos, 0, pos},
		{neg, pos, 0},
	})
	require.NoError(t, err)

	return m
}

// TestCount_NilMatrix ensures a nil matrix is rejected.
func TestCount_NilMatrix(t *testing.T) {
	_, err := triad.Count(nil, triad.DefaultOptions())
	assert.ErrorIs(t, err, triad.ErrNilMatrix)
}

// TestCount_BadOptions ensures negative option values are rejected.
func TestCount_BadOptions(t *testing.T) {
	m := triangle(t)

	_, err := triad.Count(m, triad.Options{ParallelThreshold: -1})
	assert.ErrorIs(t, err, triad.ErrBadOptions, "negative threshold must error")

	_, err = triad.Count(m, triad.Options{Workers: -2})
	assert.ErrorIs(t, err, triad.ErrBadOptions, "negative workers must error")
}

// TestCount_TooFewNodes verifies n < 3 yields an all-zero result, not an
// error: no triad can exist.
func TestCount_TooFewNodes(t *testing.T) {
	for _, n := range []int{0, 1, 2} {
		rows := make([][]core.Sign, n)
		for i := range rows {
			rows[i] = make([]core.Sign, n)
			for j := range rows[i] {
				if i != j {
					rows[i][j] = pos
				}
			}
		}
		m, err := core.New(rows)
		require.NoError(t, err)

		c, err := triad.Count(m, triad.DefaultOptions())
		require.NoError(t, err, "n=%d must not error", n)
		assert.Equal(t, uint64(0), c.Total(), "n=%d", n)
		assert.Equal(t, uint64(0), c.Stable(), "n=%d", n)
		assert.Equal(t, uint64(0), c.Unstable(), "n=%d", n)
		assert.Equal(t, [4]uint64{}, c.Histogram(), "n=%d", n)
	}
}

// TestCount_SingleTriad pins the end-to-end 3-node example: signs (+,-,+)
// carry two positive edges and one negative — an odd negative count, so the
// single triad is unstable and lands in the 2-positive bucket.
func TestCount_SingleTriad(t *testing.T) {
	c, err := triad.Count(triangle(t), triad.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, uint64(0), c.Stable())
	assert.Equal(t, uint64(1), c.Unstable())
	assert.Equal(t, [4]uint64{0, 0, 1, 0}, c.Histogram(), "one triad in the 2-positive bucket")
}

// TestCount_CompletePositiveK4 verifies the all-positive 4-node network:
// all C(4,3)=4 triads stable with three positive edges.
func TestCount_CompletePositiveK4(t *testing.T) {
	m, err := builder.Complete(4, pos)
	require.NoError(t, err)

	c, err := triad.Count(m, triad.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, uint64(4), c.Stable())
	assert.Equal(t, uint64(0), c.Unstable())
	assert.Equal(t, [4]uint64{0, 0, 0, 4}, c.Histogram())
}

// TestCount_AllNegative verifies the all-enemies network is maximally
// unstable: every triad lands in the 0-positive bucket.
func TestCount_AllNegative(t *testing.T) {
	m, err := builder.Complete(6, neg)
	require.NoError(t, err)

	c, err := triad.Count(m, triad.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, uint64(0), c.Stable())
	assert.Equal(t, triad.TriadTotal(6), c.Unstable())
	assert.Equal(t, triad.TriadTotal(6), c.Positives(0))
}

// TestCount_FactionsAllStable verifies the two-camp network is perfectly
// balanced: no triad is unstable, and buckets 0 and 2 stay empty.
func TestCount_FactionsAllStable(t *testing.T) {
	m, err := builder.Factions(10, 4)
	require.NoError(t, err)

	c, err := triad.Count(m, triad.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, triad.TriadTotal(10), c.Stable())
	assert.Equal(t, uint64(0), c.Unstable())
	assert.Equal(t, uint64(0), c.Positives(0))
	assert.Equal(t, uint64(0), c.Positives(2))
}

// TestCount_Conservation checks the two accounting invariants on a random
// network: stable+unstable == C(n,3), and the histogram sums to the same.
func TestCount_Conservation(t *testing.T) {
	const n = 25
	m, err := builder.Random(n, 0.35, 99)
	require.NoError(t, err)

	c, err := triad.Count(m, triad.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, triad.TriadTotal(n), c.Stable()+c.Unstable())
	hist := c.Histogram()
	assert.Equal(t, triad.TriadTotal(n), hist[0]+hist[1]+hist[2]+hist[3])
	assert.Equal(t, c.Total(), c.Stable()+c.Unstable())
}

// TestCount_SequentialParallelAgree verifies the key determinism property:
// the parallel path equals the sequential path for every worker count from
// 1 up to n, on the same matrix.
func TestCount_SequentialParallelAgree(t *testing.T) {
	const n = 30
	m, err := builder.Random(n, 0.4, 7)
	require.NoError(t, err)

	// Sequential reference: threshold above n forces the triple loop.
	want, err := triad.Count(m, triad.Options{ParallelThreshold: n + 1})
	require.NoError(t, err)

	for workers := 1; workers <= n; workers++ {
		// Threshold 0 forces the parallel path regardless of size.
		got, err := triad.Count(m, triad.Options{ParallelThreshold: 0, Workers: workers})
		require.NoError(t, err, "workers=%d", workers)
		assert.Equal(t, want, got, "workers=%d must match sequential", workers)
	}
}

// TestCount_WorkersExceedNodes exercises the clamp when the pool is larger
// than the outer index range.
func TestCount_WorkersExceedNodes(t *testing.T) {
	const n = 5
	m, err := builder.Random(n, 0.5, 3)
	require.NoError(t, err)

	want, err := triad.Count(m, triad.Options{ParallelThreshold: n + 1})
	require.NoError(t, err)

	got, err := triad.Count(m, triad.Options{ParallelThreshold: 0, Workers: 64})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestCount_RelabelInvariance verifies the result is invariant under any
// bijective renumbering of the nodes.
func TestCount_RelabelInvariance(t *testing.T) {
	const n = 12
	m, err := builder.Random(n, 0.3, 11)
	require.NoError(t, err)

	// A fixed derangement-ish permutation: reverse then swap a pair.
	perm := make([]int, n)
	for i := range perm {
		perm[i] = n - 1 - i
	}
	perm[0], perm[3] = perm[3], perm[0]

	rows := make([][]core.Sign, n)
	for i := range rows {
		rows[i] = make([]core.Sign, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			s, err := m.Sign(i, j)
			require.NoError(t, err)
			rows[perm[i]][perm[j]] = s
		}
	}
	permuted, err := core.New(rows)
	require.NoError(t, err)

	want, err := triad.Count(m, triad.DefaultOptions())
	require.NoError(t, err)
	got, err := triad.Count(permuted, triad.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, want, got, "counts must not depend on node numbering")
}

// TestCounts_PositivesOutOfRange pins the total accessor behavior.
func TestCounts_PositivesOutOfRange(t *testing.T) {
	c, err := triad.Count(triangle(t), triad.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, uint64(0), c.Positives(-1))
	assert.Equal(t, uint64(0), c.Positives(4))
}
