package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/signet/core"
	"github.com/katalvlaran/signet/triad"
)

// reportBanner frames the plain-text report, matching the long-standing
// output layout consumers of this analysis expect.
const reportBanner = "*********************************************"

// Format renders a triad summary as a plain-text report: stable and
// unstable totals, then the histogram in descending positive-edge order.
func Format(w io.Writer, c triad.Counts) error {
	var b strings.Builder
	fmt.Fprintln(&b, reportBanner)
	fmt.Fprintf(&b, "Stable triads: %d\n", c.Stable())
	fmt.Fprintf(&b, "Unstable triads: %d\n", c.Unstable())
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Counts by positive edges:")
	for k := 3; k >= 0; k-- {
		fmt.Fprintf(&b, "%d: %d\n", k, c.Positives(k))
	}
	fmt.Fprintln(&b, reportBanner)

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("csvio: write report: %w", err)
	}

	return nil
}

// WriteMatrix emits m in the labeled-CSV layout accepted by Load: a header
// row with a placeholder cell plus the labels, then one row per node with
// its label and the signed values (1, -1, and 0 on the diagonal).
// Complexity: O(n²).
func WriteMatrix(w io.Writer, m *core.SignedMatrix) error {
	if m == nil {
		return core.ErrNilMatrix
	}

	n := m.NodeCount()
	labels := m.Labels()

	cw := csv.NewWriter(w)
	header := make([]string, n+1)
	copy(header[1:], labels)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csvio: write header: %w", err)
	}

	record := make([]string, n+1)
	for i := 0; i < n; i++ {
		record[0] = labels[i]
		row := m.Row(i)
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				record[j+1] = "0"
			case row[j] == core.Positive:
				record[j+1] = "1"
			default:
				record[j+1] = "-1"
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csvio: write row %d: %w", i, err)
		}
	}
	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("csvio: flush: %w", err)
	}

	return nil
}
