package exporter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSummaryWriter_WriteSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.xlsx")

	levels := []string{"Strongly disagree", "Neutral", "Strongly agree"}
	totals := []float64{3.5, 12.25, 7}

	err := NewSummaryWriter().WriteSummary(context.Background(), path, levels, totals)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"Level", "Weighted total"}, rows[0])
	assert.Equal(t, "Strongly disagree", rows[1][0])
	assert.Equal(t, "3.5", rows[1][1])
	assert.Equal(t, "Neutral", rows[2][0])
	assert.Equal(t, "7", rows[3][1])
}

func TestSummaryWriter_LengthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.xlsx")

	err := NewSummaryWriter().WriteSummary(context.Background(), path, []string{"a"}, []float64{1, 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "levels")
}
