// Package signet is your in-memory toolkit for analyzing fully signed
// social networks — graphs where every pair of actors is either a friend
// (+) or an enemy (−) — through the lens of structural balance theory.
//
// 🚀 What is signet?
//
//	A small, focused, pure-Go library that brings together:
//		• Core primitives: an immutable dense signed adjacency matrix with labels
//		• Triad analysis: enumerate all C(n,3) triples, classify each as
//		  stable or unstable via the sign-product rule, tally a histogram
//		  by positive-edge count
//		• Sequential and partitioned-parallel counting with deterministic,
//		  worker-count-independent results
//		• CSV ingestion & reporting for the classic labeled-matrix format
//		• Synthetic network builders (complete, random, factions) for
//		  tests, benchmarks and demos
//
// ✨ Why choose signet?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – same input ⇒ identical counts, any worker count
//   - Pure Go – no cgo, no hidden deps in the library packages
//   - Fast – row-major flat storage, branch-free stability test,
//     lock-free parallel reduction
//
// Under the hood, everything is organized under four subpackages:
//
//	core/    — Sign and the immutable SignedMatrix foundation type
//	triad/   — balance classifier, triad counter, Counts summary
//	csvio/   — CSV adjacency-matrix loader and report formatter
//	builder/ — deterministic synthetic signed-network generators
//
// Quick ASCII example:
//
//	    A ─+─ B
//	     \    │
//	      −   +
//	       \  │
//	        \ C
//
//	A and B are friends, B and C are friends, A and C are enemies:
//	two friends at odds — the one unstable configuration with two
//	positive edges.
//
// A command-line front end lives in cmd/signet (count a CSV network,
// generate synthetic fixtures).
//
//	go get github.com/katalvlaran/signet
package signet
