package dataset

import (
	"fmt"
)

// ValidateWeights checks that every sampling weight is nonnegative,
// reporting the first offending row
func ValidateWeights(weights []float64) error {
	for i, w := range weights {
		if w < 0 {
			return fmt.Errorf("negative sampling weight %v at row %d", w, i)
		}
	}
	return nil
}

// WeightedCounts sums per-row sampling weights within each factor level,
// returning one total per level in level order. Rows with a missing factor
// value contribute nothing. With nil weights every row counts as 1, which
// makes the unweighted tally a special case of the weighted one.
func WeightedCounts(f *Factor, values []string, weights []float64) ([]float64, error) {
	if weights != nil && len(weights) != len(values) {
		return nil, fmt.Errorf("weights length %d does not match values length %d", len(weights), len(values))
	}
	if err := ValidateWeights(weights); err != nil {
		return nil, err
	}

	codes, _, err := f.Encode(values)
	if err != nil {
		return nil, err
	}

	totals := make([]float64, f.NumLevels())
	for i, code := range codes {
		if code == MissingCode {
			continue
		}
		if weights == nil {
			totals[code]++
		} else {
			totals[code] += weights[i]
		}
	}
	return totals, nil
}

// GroupByLevel partitions a numeric column's values by factor level,
// returning one slice per level in level order. Used by box plots, where
// each level gets its own distribution. Rows with a missing factor value
// are dropped.
func GroupByLevel(f *Factor, values []string, measures []float64) ([][]float64, error) {
	if len(measures) != len(values) {
		return nil, fmt.Errorf("measures length %d does not match values length %d", len(measures), len(values))
	}

	codes, _, err := f.Encode(values)
	if err != nil {
		return nil, err
	}

	groups := make([][]float64, f.NumLevels())
	for i, code := range codes {
		if code == MissingCode {
			continue
		}
		groups[code] = append(groups[code], measures[i])
	}
	return groups, nil
}
