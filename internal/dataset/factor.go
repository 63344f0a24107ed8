package dataset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// MissingCode marks a row whose factor value was empty (missing response).
const MissingCode = -1

// Factor is an ordered categorical: a fixed, ordered list of string levels.
// Axis and display ordering downstream follows the level order, not the
// order values happen to appear in the data.
type Factor struct {
	levels []string
	index  map[string]int
}

// NewFactor creates a Factor over the given ordered level list
func NewFactor(levels []string) (*Factor, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("factor requires at least one level")
	}

	index := make(map[string]int, len(levels))
	for i, level := range levels {
		if level == "" {
			return nil, fmt.Errorf("factor level %d is empty", i)
		}
		if _, dup := index[level]; dup {
			return nil, fmt.Errorf("duplicate factor level %q", level)
		}
		index[level] = i
	}

	return &Factor{levels: append([]string(nil), levels...), index: index}, nil
}

// Levels returns the ordered level list
func (f *Factor) Levels() []string {
	return append([]string(nil), f.levels...)
}

// NumLevels returns the number of levels
func (f *Factor) NumLevels() int {
	return len(f.levels)
}

// Encode maps values onto level codes in level order. Empty values encode
// as MissingCode and are counted in missing; any other value outside the
// level set fails loudly, listing every unmapped value once.
func (f *Factor) Encode(values []string) (codes []int, missing int, err error) {
	codes = make([]int, len(values))
	unmapped := map[string]struct{}{}

	for i, v := range values {
		if isMissing(v) {
			codes[i] = MissingCode
			missing++
			continue
		}
		code, ok := f.index[v]
		if !ok {
			unmapped[v] = struct{}{}
			continue
		}
		codes[i] = code
	}

	if len(unmapped) > 0 {
		names := make([]string, 0, len(unmapped))
		for v := range unmapped {
			names = append(names, v)
		}
		sort.Strings(names)
		return nil, 0, fmt.Errorf("values not in factor levels: %s", strings.Join(names, ", "))
	}

	return codes, missing, nil
}

// isMissing reports whether a cell is a missing response. gota surfaces
// missing string cells as "NaN", so that spelling counts as missing too.
func isMissing(v string) bool {
	return v == "" || v == "NA" || v == "NaN"
}

// EncodeColumn applies the factor to a string column of the frame
func (f *Factor) EncodeColumn(df dataframe.DataFrame, col string) (codes []int, missing int, err error) {
	values, err := StringColumn(df, col)
	if err != nil {
		return nil, 0, fmt.Errorf("encode column: %w", err)
	}
	return f.Encode(values)
}
