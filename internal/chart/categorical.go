package chart

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"vizcli/internal/dataset"
)

// addBars draws one bar per factor level, sized by the (optionally
// weighted) count of rows in that level. Axis order is the factor's level
// order.
func (r *Renderer) addBars(p *plot.Plot, df dataframe.DataFrame, aes Aes, opts Options) error {
	if opts.Factor == nil {
		return fmt.Errorf("bar geometry requires an ordered factor")
	}

	categories, err := dataset.StringColumn(df, aes.X)
	if err != nil {
		return err
	}

	weights, err := weightColumn(df, aes)
	if err != nil {
		return err
	}

	totals, err := dataset.WeightedCounts(opts.Factor, categories, weights)
	if err != nil {
		return err
	}

	bars, err := plotter.NewBarChart(plotter.Values(totals), vg.Points(30))
	if err != nil {
		return fmt.Errorf("bar chart: %w", err)
	}
	bars.Color = plotutil.Color(0)

	p.Add(bars)
	p.NominalX(opts.Factor.Levels()...)
	return nil
}

// addHistogram bins a numeric column, summing sampling weights per bin when
// a weight column is mapped. Rows with a missing measurement are excluded.
func (r *Renderer) addHistogram(p *plot.Plot, df dataframe.DataFrame, aes Aes, opts Options) error {
	values, err := dataset.NumericColumn(df, aes.X)
	if err != nil {
		return err
	}

	weights, err := weightColumn(df, aes)
	if err != nil {
		return err
	}

	points := make(plotter.XYs, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		points = append(points, plotter.XY{X: v, Y: w})
	}
	if len(points) == 0 {
		return fmt.Errorf("histogram column %q has no usable values", aes.X)
	}

	bins := opts.Bins
	if bins <= 0 {
		bins = DefaultBins
	}

	hist, err := plotter.NewHist(points, bins)
	if err != nil {
		return fmt.Errorf("histogram: %w", err)
	}
	hist.FillColor = plotutil.Color(0)

	p.Add(hist)
	return nil
}

// addBoxes draws one box per factor level over a numeric column. Boxes have
// no weighted form, so sampling weights are not consulted here.
func (r *Renderer) addBoxes(p *plot.Plot, df dataframe.DataFrame, aes Aes, opts Options) error {
	if opts.Factor == nil {
		return fmt.Errorf("box geometry requires an ordered factor")
	}

	categories, err := dataset.StringColumn(df, aes.X)
	if err != nil {
		return err
	}
	measures, err := dataset.NumericColumn(df, aes.Y)
	if err != nil {
		return err
	}

	groups, err := dataset.GroupByLevel(opts.Factor, categories, measures)
	if err != nil {
		return err
	}

	for i, group := range groups {
		values := make(plotter.Values, 0, len(group))
		for _, v := range group {
			if !math.IsNaN(v) {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			// Empty levels keep their axis slot but draw nothing
			continue
		}

		box, err := plotter.NewBoxPlot(vg.Points(20), float64(i), values)
		if err != nil {
			return fmt.Errorf("box for level %q: %w", opts.Factor.Levels()[i], err)
		}
		p.Add(box)
	}

	p.NominalX(opts.Factor.Levels()...)
	return nil
}

// weightColumn resolves the mapped weight column, validating nonnegativity.
// No mapping means unweighted, reported as nil.
func weightColumn(df dataframe.DataFrame, aes Aes) ([]float64, error) {
	if aes.Weight == "" {
		return nil, nil
	}
	weights, err := dataset.NumericColumn(df, aes.Weight)
	if err != nil {
		return nil, err
	}
	if err := dataset.ValidateWeights(weights); err != nil {
		return nil, err
	}
	return weights, nil
}
