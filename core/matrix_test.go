package core_test

import (
	"testing"

	"github.com/katalvlaran/signet/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	pos = core.Positive
	neg = core.Negative
)

// triangleRows returns the 3-node table A-B=+, A-C=-, B-C=+.
func triangleRows() [][]core.Sign {
	return [][]core.Sign{
		{0, pos, neg},
		{pos, 0, pos},
		{neg, pos, 0},
	}
}

// TestNew_ValidTriangle verifies construction and checked access on a
// well-formed 3-node table.
func TestNew_ValidTriangle(t *testing.T) {
	m, err := core.New(triangleRows())
	require.NoError(t, err, "well-formed table must construct")
	assert.Equal(t, 3, m.NodeCount())

	s, err := m.Sign(0, 2)
	require.NoError(t, err)
	assert.Equal(t, neg, s, "A-C must be negative")

	s, err = m.Sign(2, 0)
	require.NoError(t, err)
	assert.Equal(t, neg, s, "access must be symmetric")
}

// TestNew_Empty confirms a zero-node matrix is valid, not an error.
func TestNew_Empty(t *testing.T) {
	m, err := core.New(nil)
	require.NoError(t, err, "empty table is a valid degenerate matrix")
	assert.Equal(t, 0, m.NodeCount())
	assert.Empty(t, m.Labels())
}

// TestNew_RejectsNonSquare ensures ragged or rectangular input fails.
func TestNew_RejectsNonSquare(t *testing.T) {
	rows := [][]core.Sign{
		{0, pos},
		{pos, 0, neg}, // ragged row
	}
	_, err := core.New(rows)
	assert.ErrorIs(t, err, core.ErrNonSquare, "ragged rows must error")
}

// TestNew_RejectsBadSign ensures a zero (absent) off-diagonal entry fails:
// a complete signed graph has no missing-edge state.
func TestNew_RejectsBadSign(t *testing.T) {
	rows := triangleRows()
	rows[0][1], rows[1][0] = 0, 0
	_, err := core.New(rows)
	assert.ErrorIs(t, err, core.ErrBadSign, "zero off-diagonal entry must error")
}

// TestNew_RejectsAsymmetric ensures sign(i,j) != sign(j,i) fails.
func TestNew_RejectsAsymmetric(t *testing.T) {
	rows := triangleRows()
	rows[1][2] = neg // leaves rows[2][1] == pos
	_, err := core.New(rows)
	assert.ErrorIs(t, err, core.ErrAsymmetric, "asymmetric table must error")
}

// TestNewLabeled_LabelCount ensures label/node count mismatch fails and a
// correct count is carried through.
func TestNewLabeled_LabelCount(t *testing.T) {
	_, err := core.NewLabeled(triangleRows(), []string{"A", "B"})
	assert.ErrorIs(t, err, core.ErrLabelCount, "two labels for three nodes must error")

	m, err := core.NewLabeled(triangleRows(), []string{"A", "B", "C"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, m.Labels())
}

// TestLabels_Defaults verifies auto-generated labels when none are given.
func TestLabels_Defaults(t *testing.T) {
	m, err := core.New(triangleRows())
	require.NoError(t, err)
	assert.Equal(t, []string{"Node0", "Node1", "Node2"}, m.Labels())
}

// TestSign_AccessErrors covers out-of-range and diagonal queries.
func TestSign_AccessErrors(t *testing.T) {
	m, err := core.New(triangleRows())
	require.NoError(t, err)

	_, err = m.Sign(-1, 0)
	assert.ErrorIs(t, err, core.ErrOutOfRange, "negative index must error")

	_, err = m.Sign(0, 3)
	assert.ErrorIs(t, err, core.ErrOutOfRange, "index == n must error")

	_, err = m.Sign(1, 1)
	assert.ErrorIs(t, err, core.ErrSelfLoop, "diagonal query must error")
}

// TestNew_DeepCopies ensures mutating the input after construction does not
// leak into the matrix.
func TestNew_DeepCopies(t *testing.T) {
	rows := triangleRows()
	m, err := core.New(rows)
	require.NoError(t, err)

	rows[0][1] = neg // mutate caller-owned input

	s, err := m.Sign(0, 1)
	require.NoError(t, err)
	assert.Equal(t, pos, s, "matrix must own a private copy")
}

// TestRow_MatchesCheckedAccess cross-checks the hot-path row view against
// the checked accessor.
func TestRow_MatchesCheckedAccess(t *testing.T) {
	m, err := core.New(triangleRows())
	require.NoError(t, err)

	for i := 0; i < m.NodeCount(); i++ {
		row := m.Row(i)
		require.Len(t, row, m.NodeCount())
		for j := 0; j < m.NodeCount(); j++ {
			if i == j {
				continue
			}
			s, err := m.Sign(i, j)
			require.NoError(t, err)
			assert.Equal(t, s, row[j], "Row(%d)[%d] must match Sign(%d,%d)", i, j, i, j)
		}
	}
}
