package dataset

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratesFrame(t *testing.T) dataframe.DataFrame {
	t.Helper()
	df := dataframe.LoadRecords([][]string{
		{"date", "unemployment", "interest"},
		{"1954-07", "5.8", "0.8"},
		{"1954-08", "6.0", "1.2"},
		{"1954-09", "6.1", "1.1"},
		{"1962-01", "5.5", "2.7"},
	})
	require.NoError(t, df.Error())
	return df
}

func TestMelt_RowCountAndNames(t *testing.T) {
	df := ratesFrame(t)

	long, err := Melt(df, []string{"date"}, []string{"unemployment", "interest"}, "name", "value")
	require.NoError(t, err)

	// N rows x 2 value columns -> exactly 2N long rows
	assert.Equal(t, 2*df.Nrow(), long.Nrow())
	assert.ElementsMatch(t, []string{"date", "name", "value"}, long.Names())

	names, err := StringColumn(long, "name")
	require.NoError(t, err)
	seen := map[string]int{}
	for _, n := range names {
		seen[n]++
	}
	assert.Equal(t, map[string]int{"unemployment": 4, "interest": 4}, seen)
}

func TestMelt_PreservesValues(t *testing.T) {
	df := ratesFrame(t)

	long, err := Melt(df, []string{"date"}, []string{"unemployment", "interest"}, "name", "value")
	require.NoError(t, err)

	values, err := NumericColumn(long, "value")
	require.NoError(t, err)
	assert.Equal(t, []float64{5.8, 6.0, 6.1, 5.5, 0.8, 1.2, 1.1, 2.7}, values)
}

func TestMelt_Errors(t *testing.T) {
	df := ratesFrame(t)

	_, err := Melt(df, []string{"date"}, nil, "name", "value")
	assert.Error(t, err)

	_, err = Melt(df, []string{"nope"}, []string{"unemployment"}, "name", "value")
	assert.Error(t, err)

	_, err = Melt(df, []string{"date"}, []string{"date"}, "name", "value")
	assert.Error(t, err, "non-numeric value column must fail")
}

func TestRelabelColumn(t *testing.T) {
	df := ratesFrame(t)
	long, err := Melt(df, []string{"date"}, []string{"unemployment", "interest"}, "name", "value")
	require.NoError(t, err)

	relabeled, err := RelabelColumn(long, "name", map[string]string{
		"unemployment": "Unemployment",
		"interest":     "Interest",
	})
	require.NoError(t, err)

	names, err := StringColumn(relabeled, "name")
	require.NoError(t, err)
	for _, n := range names {
		assert.Contains(t, []string{"Unemployment", "Interest"}, n)
	}

	// Source frame is untouched
	orig, err := StringColumn(long, "name")
	require.NoError(t, err)
	assert.Contains(t, orig, "unemployment")
}

func TestWithDecade(t *testing.T) {
	df := ratesFrame(t)

	out, err := WithDecade(df, "date")
	require.NoError(t, err)

	decades, err := NumericColumn(out, "decade")
	require.NoError(t, err)
	assert.Equal(t, []float64{1950, 1950, 1950, 1960}, decades)
}

func TestParseMonths(t *testing.T) {
	df := ratesFrame(t)

	months, err := ParseMonths(df, "date")
	require.NoError(t, err)
	require.Len(t, months, 4)
	assert.Equal(t, 1954, months[0].Year())
	assert.Equal(t, 7, int(months[0].Month()))
}

func TestParseMonths_Unparseable(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"date", "v"},
		{"not-a-date", "1"},
	})
	require.NoError(t, df.Error())

	_, err := ParseMonths(df, "date")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unparseable month")
}
