// Package csvio reads and writes signed adjacency matrices in the classic
// labeled-CSV layout, and renders triad summaries as plain-text reports.
//
// What:
//
//   - Load / LoadFile: CSV text → *core.SignedMatrix. The first row is a
//     header (a placeholder cell, then the n node labels); each of the n
//     data rows carries a label cell and n numeric values. Positive values
//     map to +, negative to −; diagonal values are ignored.
//   - WriteMatrix: *core.SignedMatrix → the same CSV layout (round-trips
//     through Load).
//   - Format: triad.Counts → the stable/unstable report with the histogram
//     in descending positive-edge order.
//
// Input layout example (3 nodes):
//
//	"",A,B,C
//	A,0,1,-1
//	B,1,0,1
//	C,-1,1,0
//
// Error policy — every structural violation is surfaced before any
// counting can begin, never silently corrected:
//
//   - ErrEmptyInput: no header or no nodes.
//   - ErrNonSquare: data row count or row width disagrees with the header.
//   - ErrBadValue: a value cell that does not parse as a number.
//   - ErrZeroEntry: a zero off-diagonal value. The model has no "absent
//     edge" state, so a zero relationship is a hard load error rather than
//     a silent misclassification.
//   - core.ErrAsymmetric: value(i,j) and value(j,i) disagree in sign.
package csvio
