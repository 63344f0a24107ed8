package chart

import (
	"context"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"

	"vizcli/internal/dataset"
	"vizcli/internal/infrastructure"
)

// Geom selects the geometry a chart is drawn with
type Geom string

const (
	GeomLine      Geom = "line"
	GeomPoint     Geom = "point"
	GeomBar       Geom = "bar"
	GeomHistogram Geom = "histogram"
	GeomBox       Geom = "box"
)

// Aes is the aesthetic mapping: which columns bind to which visual channel.
// Only the channels a geometry uses need to be set.
type Aes struct {
	X      string
	Y      string
	Color  string // grouping column for multi-series line/point charts
	Weight string // sampling weight column for bar/histogram
}

// Options carries per-chart labeling and axis configuration
type Options struct {
	Title       string
	XLabel      string
	YLabel      string
	LegendTitle string

	// TimeX formats the x axis as calendar months parsed from the X column
	TimeX bool

	// Bins is the histogram bin count; zero means DefaultBins
	Bins int

	// Factor fixes categorical axis order for bar and box geometries
	Factor *dataset.Factor
}

// DefaultBins is the histogram bin count when Options.Bins is zero.
const DefaultBins = 16

// Chart wraps a rendered plot together with the name it exports under
type Chart struct {
	Name string
	Plot *plot.Plot
}

// Renderer builds chart objects from data frames
type Renderer struct{}

// NewRenderer creates a chart renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render builds a chart of the given geometry from the frame. The returned
// chart is a pure in-memory object; nothing is written until the exporter
// serializes it.
func (r *Renderer) Render(ctx context.Context, name string, df dataframe.DataFrame, aes Aes, geom Geom, opts Options) (*Chart, error) {
	logger := infrastructure.LoggerWithContext(ctx)

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	var err error
	switch geom {
	case GeomLine, GeomPoint:
		err = r.addSeries(p, df, aes, geom, opts)
	case GeomBar:
		err = r.addBars(p, df, aes, opts)
	case GeomHistogram:
		err = r.addHistogram(p, df, aes, opts)
	case GeomBox:
		err = r.addBoxes(p, df, aes, opts)
	default:
		err = fmt.Errorf("unsupported geometry %q", geom)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s chart %q: %w", geom, name, err)
	}

	logger.InfoContext(ctx, "rendered chart",
		"name", name,
		"geom", string(geom),
		"rows", df.Nrow())

	return &Chart{Name: name, Plot: p}, nil
}
