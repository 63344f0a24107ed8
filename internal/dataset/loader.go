package dataset

import (
	"context"
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"vizcli/internal/infrastructure"
)

// ColumnInfo describes a single column of a loaded table
type ColumnInfo struct {
	Name string
	Type series.Type
}

// TableInfo summarizes the shape and column types of a loaded table
type TableInfo struct {
	Rows    int
	Cols    int
	Columns []ColumnInfo
}

// LoadCSV reads a headered CSV file into a data frame with inferred column
// types. Every downstream step depends on this data, so a missing or
// malformed file is a hard error.
func LoadCSV(ctx context.Context, path string) (dataframe.DataFrame, error) {
	logger := infrastructure.LoggerWithContext(ctx)

	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer file.Close()

	df := dataframe.ReadCSV(file,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
	if df.Error() != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to parse dataset %s: %w", path, df.Error())
	}
	if df.Nrow() == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("dataset %s contains no rows", path)
	}

	logger.InfoContext(ctx, "loaded dataset",
		"path", path,
		"rows", df.Nrow(),
		"cols", df.Ncol())

	return df, nil
}

// Describe returns the shape and inferred column types of a frame
func Describe(df dataframe.DataFrame) TableInfo {
	names := df.Names()
	types := df.Types()

	info := TableInfo{
		Rows:    df.Nrow(),
		Cols:    df.Ncol(),
		Columns: make([]ColumnInfo, 0, len(names)),
	}
	for i, name := range names {
		info.Columns = append(info.Columns, ColumnInfo{Name: name, Type: types[i]})
	}
	return info
}

// Column returns the named column, or an error if the frame has no such
// column. gota's Col reports missing columns through the series error
// state, which is easy to silently drop; this wraps it into an explicit
// error return.
func Column(df dataframe.DataFrame, name string) (series.Series, error) {
	for _, n := range df.Names() {
		if n == name {
			return df.Col(name), nil
		}
	}
	return series.Series{}, fmt.Errorf("column %q not found (have %v)", name, df.Names())
}

// NumericColumn returns the named column as float64 values, erroring when
// the column is not numeric
func NumericColumn(df dataframe.DataFrame, name string) ([]float64, error) {
	col, err := Column(df, name)
	if err != nil {
		return nil, err
	}
	if t := col.Type(); t != series.Float && t != series.Int {
		return nil, fmt.Errorf("column %q has type %s, expected a numeric type", name, t)
	}
	return col.Float(), nil
}

// StringColumn returns the named column's values as strings
func StringColumn(df dataframe.DataFrame, name string) ([]string, error) {
	col, err := Column(df, name)
	if err != nil {
		return nil, err
	}
	return col.Records(), nil
}
