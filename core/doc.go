// Package core defines the foundation types for signed-network analysis:
// the Sign of a relationship and the immutable dense SignedMatrix.
//
// What:
//
//   - Sign encodes a pairwise relationship as Positive (+1) or Negative (−1).
//   - SignedMatrix wraps an n×n row-major sign table with optional node
//     labels; it is validated on construction and never mutated afterwards.
//   - Checked access via Sign(i, j); contiguous Row(i) views for hot loops.
//
// Why:
//
//   - Social-balance analysis assumes a complete signed graph: every
//     off-diagonal pair carries exactly one sign. Validating that once, at
//     construction, lets every downstream algorithm skip per-element checks.
//   - Row-major flat storage keeps inner scans over columns sequential in
//     memory, which dominates performance for O(n³) triple enumeration.
//
// Invariants (established by New, relied upon everywhere else):
//
//   - The table is square: n rows of n entries.
//   - Every off-diagonal entry is exactly Positive or Negative.
//   - The table is symmetric: sign(i,j) == sign(j,i).
//   - Diagonal entries are meaningless and never read.
//
// Errors:
//
//   - ErrNonSquare: rows of differing lengths, or row/column count mismatch.
//   - ErrBadSign: an off-diagonal entry is neither +1 nor −1.
//   - ErrAsymmetric: sign(i,j) != sign(j,i) for some pair.
//   - ErrLabelCount: label slice length differs from node count.
//   - ErrOutOfRange: index outside [0, n) passed to Sign.
//   - ErrSelfLoop: diagonal query Sign(i, i); the diagonal is not an edge.
package core
