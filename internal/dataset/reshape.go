package dataset

import (
	"fmt"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Month layouts accepted in the date column.
var monthLayouts = []string{"2006-01", "2006-01-02", "Jan 2006"}

// Melt pivots the given wide value columns into long format: one output row
// per (input row × value column) pair. The id columns are repeated for each
// block, nameCol holds the source column label and valueCol its numeric
// value. Output row count is always len(valueCols) * df.Nrow().
func Melt(df dataframe.DataFrame, idCols, valueCols []string, nameCol, valueCol string) (dataframe.DataFrame, error) {
	if len(valueCols) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("melt requires at least one value column")
	}

	n := df.Nrow()
	var long dataframe.DataFrame

	for i, vc := range valueCols {
		ss := make([]series.Series, 0, len(idCols)+2)

		for _, id := range idCols {
			col, err := Column(df, id)
			if err != nil {
				return dataframe.DataFrame{}, fmt.Errorf("melt id column: %w", err)
			}
			ss = append(ss, col)
		}

		values, err := NumericColumn(df, vc)
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("melt value column: %w", err)
		}

		names := make([]string, n)
		for j := range names {
			names[j] = vc
		}
		ss = append(ss, series.New(names, series.String, nameCol))
		ss = append(ss, series.New(values, series.Float, valueCol))

		block := dataframe.New(ss...)
		if block.Error() != nil {
			return dataframe.DataFrame{}, fmt.Errorf("melt block for %q: %w", vc, block.Error())
		}

		if i == 0 {
			long = block
		} else {
			long = long.RBind(block)
			if long.Error() != nil {
				return dataframe.DataFrame{}, fmt.Errorf("melt bind for %q: %w", vc, long.Error())
			}
		}
	}

	return long, nil
}

// RelabelColumn returns a copy of the frame with values of the named string
// column mapped through labels. Values without a mapping pass through
// unchanged, so a partial map relabels only what it names.
func RelabelColumn(df dataframe.DataFrame, col string, labels map[string]string) (dataframe.DataFrame, error) {
	values, err := StringColumn(df, col)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("relabel: %w", err)
	}

	out := make([]string, len(values))
	for i, v := range values {
		if mapped, ok := labels[v]; ok {
			out[i] = mapped
		} else {
			out[i] = v
		}
	}

	relabeled := df.Mutate(series.New(out, series.String, col))
	if relabeled.Error() != nil {
		return dataframe.DataFrame{}, fmt.Errorf("relabel mutate: %w", relabeled.Error())
	}
	return relabeled, nil
}

// WithDecade derives a decade column (year rounded down to a multiple of
// ten) from the monthly date column and appends it to the frame.
func WithDecade(df dataframe.DataFrame, dateCol string) (dataframe.DataFrame, error) {
	months, err := ParseMonths(df, dateCol)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("decade: %w", err)
	}

	decades := make([]int, len(months))
	for i, m := range months {
		decades[i] = (m.Year() / 10) * 10
	}

	out := df.Mutate(series.New(decades, series.Int, "decade"))
	if out.Error() != nil {
		return dataframe.DataFrame{}, fmt.Errorf("decade mutate: %w", out.Error())
	}
	return out, nil
}

// ParseMonths parses the named column as calendar months
func ParseMonths(df dataframe.DataFrame, dateCol string) ([]time.Time, error) {
	values, err := StringColumn(df, dateCol)
	if err != nil {
		return nil, err
	}

	months := make([]time.Time, len(values))
	for i, v := range values {
		t, err := parseMonth(v)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		months[i] = t
	}
	return months, nil
}

func parseMonth(v string) (time.Time, error) {
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable month %q", v)
}
