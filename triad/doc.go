// Package triad classifies and counts the triads of a fully signed
// network under structural (social) balance theory.
//
// 🚀 What is triad analysis?
//
//	Every unordered triple of nodes {i,j,k} — a triad — carries three
//	signed edges. Balance theory (Easley & Kleinberg, 2010) classifies a
//	triad by its signs:
//	  • stable:   3 positive edges (all friends), or
//	              1 positive edge (the enemy of my enemy is my friend)
//	  • unstable: 2 positive edges (two friends are enemies), or
//	              0 positive edges (all enemies)
//
// ✨ Key features:
//   - sign-product rule: a triad is stable iff the product of its three
//     ±1 signs is positive — one multiplication, no per-edge branching
//   - canonical enumeration of all C(n,3) triples (i<j<k), each exactly once
//   - partitioned-parallel counting over contiguous outer-index blocks with
//     private per-worker histograms and a lock-free final merge
//   - results are byte-identical for any worker count, including 1
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/signet/triad"
//
//	opts := triad.DefaultOptions() // ParallelThreshold=50, Workers=NumCPU
//	counts, err := triad.Count(m, opts)
//	if err != nil { ... }
//	fmt.Println(counts.Stable(), counts.Unstable())
//
// Performance:
//
//   - Time:   O(n³) — C(n,3) classifications, each O(1)
//   - Memory: O(workers) beyond the shared read-only matrix
//
// Errors:
//
//   - ErrNilMatrix  — Count received a nil matrix.
//   - ErrBadOptions — negative ParallelThreshold or Workers.
//
// Fewer than three nodes is not an error: no triad can exist, and Count
// returns an all-zero summary.
package triad
