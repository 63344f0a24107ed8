package chart

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"vizcli/internal/dataset"
)

// seriesGroup is one drawable series of x/y points
type seriesGroup struct {
	label  string
	points plotter.XYs
}

// addSeries draws line or point geometry, one series per distinct value of
// the color column when one is mapped
func (r *Renderer) addSeries(p *plot.Plot, df dataframe.DataFrame, aes Aes, geom Geom, opts Options) error {
	groups, err := buildSeries(df, aes, opts.TimeX)
	if err != nil {
		return err
	}

	if opts.TimeX {
		p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}
	}

	if opts.LegendTitle != "" && len(groups) > 1 {
		// gonum legends have no title slot; a text-only first entry serves
		p.Legend.Add(opts.LegendTitle)
	}

	for i, g := range groups {
		col := plotutil.Color(i)

		switch geom {
		case GeomLine:
			line, err := plotter.NewLine(g.points)
			if err != nil {
				return fmt.Errorf("line series %q: %w", g.label, err)
			}
			line.LineStyle.Width = vg.Points(1.5)
			line.LineStyle.Color = col
			p.Add(line)
			if len(groups) > 1 {
				p.Legend.Add(g.label, line)
			}
		case GeomPoint:
			scatter, err := plotter.NewScatter(g.points)
			if err != nil {
				return fmt.Errorf("point series %q: %w", g.label, err)
			}
			scatter.GlyphStyle.Color = col
			scatter.GlyphStyle.Radius = vg.Points(1.5)
			p.Add(scatter)
			if len(groups) > 1 {
				p.Legend.Add(g.label, scatter)
			}
		}
	}

	if len(groups) > 1 {
		p.Legend.Top = true
	}
	return nil
}

// buildSeries splits the frame into one x/y point set per color group.
// Without a color mapping the whole frame is a single unnamed series.
// Group order follows first appearance in the data, so long-format frames
// keep their source column order.
func buildSeries(df dataframe.DataFrame, aes Aes, timeX bool) ([]seriesGroup, error) {
	xs, err := xValues(df, aes.X, timeX)
	if err != nil {
		return nil, err
	}
	ys, err := dataset.NumericColumn(df, aes.Y)
	if err != nil {
		return nil, err
	}

	if aes.Color == "" {
		points := make(plotter.XYs, len(xs))
		for i := range xs {
			points[i].X = xs[i]
			points[i].Y = ys[i]
		}
		return []seriesGroup{{points: points}}, nil
	}

	colors, err := dataset.StringColumn(df, aes.Color)
	if err != nil {
		return nil, err
	}

	index := map[string]int{}
	var groups []seriesGroup
	for i, c := range colors {
		gi, ok := index[c]
		if !ok {
			gi = len(groups)
			index[c] = gi
			groups = append(groups, seriesGroup{label: c})
		}
		groups[gi].points = append(groups[gi].points, plotter.XY{X: xs[i], Y: ys[i]})
	}
	return groups, nil
}

// xValues resolves the x column either as month timestamps or as numbers
func xValues(df dataframe.DataFrame, col string, timeX bool) ([]float64, error) {
	if timeX {
		months, err := dataset.ParseMonths(df, col)
		if err != nil {
			return nil, err
		}
		xs := make([]float64, len(months))
		for i, m := range months {
			xs[i] = float64(m.Unix())
		}
		return xs, nil
	}
	return dataset.NumericColumn(df, col)
}
