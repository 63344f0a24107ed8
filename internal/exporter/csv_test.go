package exporter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameWriter_WriteFrame(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"date", "name", "value"},
		{"1954-07", "unemployment", "5.8"},
		{"1954-07", "interest", "0.8"},
	})
	require.NoError(t, df.Error())

	path := filepath.Join(t.TempDir(), "derived", "long.csv")
	err := NewFrameWriter().WriteFrame(context.Background(), df, path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,name,value", lines[0])
	assert.Contains(t, lines[1], "unemployment")
}

func TestFrameWriter_UnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	df := dataframe.LoadRecords([][]string{{"a"}, {"1"}})
	require.NoError(t, df.Error())

	err := NewFrameWriter().WriteFrame(context.Background(), df, filepath.Join(blocker, "out.csv"))
	require.Error(t, err)
}
