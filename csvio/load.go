package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/signet/core"
)

// Load parses a labeled CSV adjacency matrix into a *core.SignedMatrix.
//
// The header row supplies the node labels (its first cell is a placeholder
// and ignored); each subsequent row must carry a label cell followed by
// exactly n numeric values. A value's sign becomes the edge sign; its
// magnitude is irrelevant. Diagonal cells are ignored — the diagonal is
// never an edge.
//
// Structural violations return ErrEmptyInput, ErrNonSquare, ErrBadValue or
// ErrZeroEntry (each wrapped with the offending position); a sign table
// that is not symmetric surfaces core.ErrAsymmetric from matrix
// construction. No partial matrix is ever returned.
//
// Complexity: O(n²) time and memory.
func Load(r io.Reader) (*core.SignedMatrix, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row widths validated explicitly below
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvio: read: %w", err)
	}
	if len(records) == 0 || len(records[0]) < 2 {
		return nil, ErrEmptyInput
	}

	labels := records[0][1:]
	n := len(labels)
	if len(records)-1 != n {
		return nil, fmt.Errorf("%d labels but %d data rows: %w", n, len(records)-1, ErrNonSquare)
	}

	rows := make([][]core.Sign, n)
	for i := 0; i < n; i++ {
		record := records[i+1]
		if len(record) != n+1 {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", i, len(record)-1, n, ErrNonSquare)
		}

		rows[i] = make([]core.Sign, n)
		for j := 0; j < n; j++ {
			field := strings.TrimSpace(record[j+1])
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d value %q: %w", i, j, field, ErrBadValue)
			}
			switch {
			case v > 0:
				rows[i][j] = core.Positive
			case v < 0:
				rows[i][j] = core.Negative
			case i != j:
				return nil, fmt.Errorf("row %d col %d: %w", i, j, ErrZeroEntry)
			}
		}
	}

	return core.NewLabeled(rows, labels)
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (*core.SignedMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvio: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}
