package csvio

import "errors"

// Sentinel errors for CSV ingestion. Match with errors.Is; Load wraps each
// with the offending row/column for diagnostics.
var (
	// ErrEmptyInput indicates the input has no header row or no nodes.
	ErrEmptyInput = errors.New("csvio: input has no nodes")
	// ErrNonSquare indicates the data rows do not form an n×n matrix.
	ErrNonSquare = errors.New("csvio: matrix is not square")
	// ErrBadValue indicates a cell that does not parse as a number.
	ErrBadValue = errors.New("csvio: unparseable matrix value")
	// ErrZeroEntry indicates a zero off-diagonal value; a complete signed
	// graph has no absent-edge state.
	ErrZeroEntry = errors.New("csvio: zero off-diagonal entry")
)
