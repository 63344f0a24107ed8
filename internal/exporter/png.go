package exporter

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"vizcli/internal/chart"
	"vizcli/internal/config"
	"vizcli/internal/infrastructure"
)

// batchWriters bounds concurrent file writes during batch export
const batchWriters = 4

// PNGOptions configures raster export
type PNGOptions struct {
	WidthInches  float64
	HeightInches float64
	DPI          int
	Background   color.Color
}

// OptionsFromConfig builds PNGOptions from chart configuration
func OptionsFromConfig(cfg config.ChartConfig) PNGOptions {
	bg := color.Color(color.White)
	if cfg.Background == "transparent" {
		bg = color.Transparent
	}
	return PNGOptions{
		WidthInches:  cfg.WidthInches,
		HeightInches: cfg.HeightInches,
		DPI:          cfg.DPI,
		Background:   bg,
	}
}

// PNGExporter writes rendered charts as PNG files
type PNGExporter struct {
	opts PNGOptions
}

// NewPNGExporter creates a PNG exporter with the given options
func NewPNGExporter(opts PNGOptions) *PNGExporter {
	return &PNGExporter{opts: opts}
}

// Save serializes a chart to the given path at the configured physical
// size, resolution and background
func (e *PNGExporter) Save(ctx context.Context, c *chart.Chart, path string) error {
	logger := infrastructure.LoggerWithContext(ctx)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(vg.Length(e.opts.WidthInches)*vg.Inch, vg.Length(e.opts.HeightInches)*vg.Inch),
		vgimg.UseDPI(e.opts.DPI),
		vgimg.UseBackgroundColor(e.opts.Background),
	)
	c.Plot.Draw(draw.New(canvas))

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file %s: %w", path, err)
	}
	defer file.Close()

	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(file); err != nil {
		return fmt.Errorf("failed to write chart %s: %w", path, err)
	}

	logger.InfoContext(ctx, "exported chart",
		"path", path,
		"width_in", e.opts.WidthInches,
		"height_in", e.opts.HeightInches,
		"dpi", e.opts.DPI)
	return nil
}

// SaveAll writes every chart into dir as <name>.png. Charts are already
// rendered, independent objects, so the writes fan out with bounded
// concurrency; the first failure cancels the rest.
func (e *PNGExporter) SaveAll(ctx context.Context, charts []*chart.Chart, dir string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchWriters)

	for _, c := range charts {
		g.Go(func() error {
			return e.Save(ctx, c, filepath.Join(dir, c.Name+".png"))
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("batch export to %s: %w", dir, err)
	}
	return nil
}
