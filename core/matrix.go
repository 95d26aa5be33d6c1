package core

import "fmt"

// SignedMatrix is an immutable dense representation of a fully signed
// undirected graph: every off-diagonal unordered pair {i,j} carries exactly
// one Sign. Storage is a flat row-major []Sign of length n×n so that
// scanning a row is sequential in memory. Built once, read-only thereafter.
type SignedMatrix struct {
	n      int
	signs  []Sign   // row-major n×n; diagonal entries are never read
	labels []string // always length n; auto-generated when not supplied
}

// New constructs a SignedMatrix from a square table of signs, deep-copying
// the input to guarantee immutability. Diagonal entries are ignored.
//
// Returns ErrNonSquare if any row length differs from the row count,
// ErrBadSign if an off-diagonal entry is not ±1, and ErrAsymmetric if
// rows[i][j] != rows[j][i] for some pair.
//
// An empty table yields a valid zero-node matrix.
// Complexity: O(n²) time and memory.
func New(rows [][]Sign) (*SignedMatrix, error) {
	return NewLabeled(rows, nil)
}

// NewLabeled is New with explicit node labels. Labels carry no semantic
// weight in any computation; they exist for I/O round-tripping only.
// Passing nil labels generates "Node0".."Node{n-1}". A non-nil slice must
// have exactly n entries (ErrLabelCount otherwise).
func NewLabeled(rows [][]Sign, labels []string) (*SignedMatrix, error) {
	n := len(rows)
	for i := 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(rows[i]), n, ErrNonSquare)
		}
	}
	if labels != nil && len(labels) != n {
		return nil, fmt.Errorf("%d labels for %d nodes: %w", len(labels), n, ErrLabelCount)
	}

	// Validate the upper triangle once; everything downstream relies on it.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !rows[i][j].Valid() {
				return nil, fmt.Errorf("entry (%d,%d)=%d: %w", i, j, rows[i][j], ErrBadSign)
			}
			if rows[i][j] != rows[j][i] {
				return nil, fmt.Errorf("entry (%d,%d) vs (%d,%d): %w", i, j, j, i, ErrAsymmetric)
			}
		}
	}

	// Deep copy into flat row-major storage.
	signs := make([]Sign, n*n)
	for i := 0; i < n; i++ {
		copy(signs[i*n:(i+1)*n], rows[i])
	}

	// Resolve labels; a private copy keeps the matrix immutable.
	resolved := make([]string, n)
	if labels == nil {
		for i := 0; i < n; i++ {
			resolved[i] = fmt.Sprintf("Node%d", i)
		}
	} else {
		copy(resolved, labels)
	}

	return &SignedMatrix{n: n, signs: signs, labels: resolved}, nil
}

// NodeCount returns the number of nodes n. Complexity: O(1).
func (m *SignedMatrix) NodeCount() int {
	return m.n
}

// Labels returns a copy of the node labels, index-aligned with the matrix.
// Complexity: O(n).
func (m *SignedMatrix) Labels() []string {
	out := make([]string, m.n)
	copy(out, m.labels)

	return out
}

// Sign returns the sign of edge {i,j}.
// Returns ErrOutOfRange if either index is outside [0, n), and ErrSelfLoop
// for a diagonal query — the diagonal is never a valid edge.
// Complexity: O(1).
func (m *SignedMatrix) Sign(i, j int) (Sign, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("(%d,%d) with n=%d: %w", i, j, m.n, ErrOutOfRange)
	}
	if i == j {
		return 0, fmt.Errorf("(%d,%d): %w", i, j, ErrSelfLoop)
	}

	return m.signs[i*m.n+j], nil
}

// Row returns the contiguous row i of the underlying sign table.
// The slice is shared, not copied: callers MUST treat it as read-only.
// Intended for hot enumeration loops where per-element checked access
// would dominate; an out-of-range i panics (programmer error, see package
// error policy).
// Complexity: O(1).
func (m *SignedMatrix) Row(i int) []Sign {
	return m.signs[i*m.n : (i+1)*m.n]
}
