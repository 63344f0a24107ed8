package dataset

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var severityLevels = []string{
	"Strongly disagree",
	"Somewhat disagree",
	"Neutral",
	"Somewhat agree",
	"Strongly agree",
	"Don't know",
}

func TestNewFactor(t *testing.T) {
	f, err := NewFactor(severityLevels)
	require.NoError(t, err)
	assert.Equal(t, 6, f.NumLevels())
	assert.Equal(t, severityLevels, f.Levels())
}

func TestNewFactor_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		levels []string
	}{
		{"empty list", nil},
		{"empty level", []string{"Low", ""}},
		{"duplicate level", []string{"Low", "High", "Low"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFactor(tt.levels)
			assert.Error(t, err)
		})
	}
}

func TestFactor_Encode_PreservesRowsAndOrder(t *testing.T) {
	f, err := NewFactor(severityLevels)
	require.NoError(t, err)

	values := []string{"Don't know", "Neutral", "Strongly disagree", "Neutral"}
	codes, missing, err := f.Encode(values)
	require.NoError(t, err)

	assert.Equal(t, 0, missing)
	// Codes follow level order, not appearance order
	assert.Equal(t, []int{5, 2, 0, 2}, codes)
}

func TestFactor_Encode_MissingValues(t *testing.T) {
	f, err := NewFactor(severityLevels)
	require.NoError(t, err)

	codes, missing, err := f.Encode([]string{"Neutral", "", "Somewhat agree", ""})
	require.NoError(t, err)

	assert.Equal(t, 2, missing)
	assert.Equal(t, []int{2, MissingCode, 3, MissingCode}, codes)
}

func TestFactor_Encode_UnmappedValueFailsLoudly(t *testing.T) {
	f, err := NewFactor(severityLevels)
	require.NoError(t, err)

	_, _, err = f.Encode([]string{"Neutral", "Meh", "Whatever", "Meh"})
	require.Error(t, err)
	// Each unmapped value reported once, deterministically ordered
	assert.Contains(t, err.Error(), "Meh, Whatever")
}

func TestFactor_EncodeColumn(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"att_covid_selfsevere", "age"},
		{"Neutral", "34"},
		{"Strongly agree", "61"},
	})
	require.NoError(t, df.Error())

	f, err := NewFactor(severityLevels)
	require.NoError(t, err)

	codes, missing, err := f.EncodeColumn(df, "att_covid_selfsevere")
	require.NoError(t, err)
	assert.Equal(t, 0, missing)
	assert.Equal(t, []int{2, 4}, codes)

	_, _, err = f.EncodeColumn(df, "missing_column")
	assert.Error(t, err)
}
