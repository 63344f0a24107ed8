package pipeline

import (
	"context"
	"fmt"

	"github.com/go-gota/gota/dataframe"

	"vizcli/internal/chart"
	"vizcli/internal/config"
	"vizcli/internal/dataset"
	"vizcli/internal/exporter"
	"vizcli/internal/infrastructure"
	"vizcli/internal/validation"
)

// Column names in the two bundled datasets.
const (
	colDate         = "date"
	colUnemployment = "unemployment"
	colInterest     = "interest"
	colName         = "name"
	colValue        = "value"
	colDecade       = "decade"

	colSeverity = "att_covid_selfsevere"
	colAge      = "age"
	colWeight   = "weight_main"
)

// SeverityLevels is the fixed ordered level list for the survey's
// att_covid_selfsevere column. Order here is display order on every axis
// that uses the factor.
var SeverityLevels = []string{
	"Strongly disagree",
	"Somewhat disagree",
	"Neutral",
	"Somewhat agree",
	"Strongly agree",
	"Don't know",
}

// seriesLabels maps long-format series names to their publication labels
var seriesLabels = map[string]string{
	colUnemployment: "Unemployment",
	colInterest:     "Interest",
}

// Result collects everything a run produced
type Result struct {
	// Charts holds the intermediate teaching charts in sequence order
	Charts []*chart.Chart
	// Final is the publication-labeled chart exported as PNG
	Final *chart.Chart
	// WeightedTotals is the per-level weighted count of survey responses
	WeightedTotals []float64
}

// Pipeline wires the loader, transformations, renderer and exporters into
// the fixed teaching sequence
type Pipeline struct {
	cfg       *config.Config
	paths     *config.Paths
	renderer  *chart.Renderer
	png       *exporter.PNGExporter
	frames    *exporter.FrameWriter
	summaries *exporter.SummaryWriter
	validator *validation.FileValidator
}

// New creates a pipeline over the given configuration and paths
func New(cfg *config.Config, paths *config.Paths) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		paths:     paths,
		renderer:  chart.NewRenderer(),
		png:       exporter.NewPNGExporter(exporter.OptionsFromConfig(cfg.Chart)),
		frames:    exporter.NewFrameWriter(),
		summaries: exporter.NewSummaryWriter(),
		validator: validation.NewFileValidator(infrastructure.GetLogger()),
	}
}

// Run executes the whole sequence. Any failure aborts the run: every step
// feeds the next, so there is nothing sensible to salvage from a partial
// run.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	ctx = infrastructure.EnsureTraceID(ctx)
	result := &Result{}

	if err := p.validateFiles(ctx); err != nil {
		return nil, err
	}

	long, err := p.ratesCharts(ctx, result)
	if err != nil {
		return nil, err
	}

	if err := p.surveyCharts(ctx, result); err != nil {
		return nil, err
	}

	if err := p.finalChart(ctx, result, long); err != nil {
		return nil, err
	}

	if err := p.export(ctx, result, long); err != nil {
		return nil, err
	}

	return result, nil
}

func (p *Pipeline) validateFiles(ctx context.Context) error {
	for _, path := range []string{p.paths.RatesCSV, p.paths.SurveyCSV} {
		if err := p.validator.ValidateInputFile(path); err != nil {
			return fmt.Errorf("input validation: %w", err)
		}
	}
	if err := p.validator.ValidateOutputDirectory(p.paths.OutputDir); err != nil {
		return fmt.Errorf("output validation: %w", err)
	}
	return nil
}

// ratesCharts loads the monthly rates table and renders the line and
// scatter variants, returning the long-format frame for later relabeling
func (p *Pipeline) ratesCharts(ctx context.Context, result *Result) (dataframe.DataFrame, error) {
	logger := infrastructure.LoggerWithContext(ctx)

	wide, err := dataset.LoadCSV(ctx, p.paths.RatesCSV)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	logger.InfoContext(ctx, "wide format keeps one column per measured series",
		"columns", wide.Names())

	wide, err = dataset.WithDecade(wide, colDate)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	long, err := dataset.Melt(wide, []string{colDate},
		[]string{colUnemployment, colInterest}, colName, colValue)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	logger.InfoContext(ctx, "long format keeps one row per month and series, which is what multi-series plotting wants",
		"wide_rows", wide.Nrow(),
		"long_rows", long.Nrow())

	line, err := p.renderer.Render(ctx, "unemployment_line", wide,
		chart.Aes{X: colDate, Y: colUnemployment}, chart.GeomLine,
		chart.Options{Title: "US unemployment rate", TimeX: true})
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	bothLines, err := p.renderer.Render(ctx, "rates_line", long,
		chart.Aes{X: colDate, Y: colValue, Color: colName}, chart.GeomLine,
		chart.Options{Title: "Unemployment and interest rates", TimeX: true})
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	scatter, err := p.renderer.Render(ctx, "rates_scatter", wide,
		chart.Aes{X: colDate, Y: colUnemployment}, chart.GeomPoint,
		chart.Options{Title: "Unemployment, one point per month", TimeX: true})
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	logger.InfoContext(ctx, "a derived decade category colors the scatter, showing regime shifts across eras")

	byDecade, err := p.renderer.Render(ctx, "rates_scatter_decade", wide,
		chart.Aes{X: colInterest, Y: colUnemployment, Color: colDecade}, chart.GeomPoint,
		chart.Options{
			Title:       "Unemployment vs. interest rate",
			XLabel:      "Interest rate",
			YLabel:      "Unemployment rate",
			LegendTitle: "Decade",
		})
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	result.Charts = append(result.Charts, line, bothLines, scatter, byDecade)
	return long, nil
}

// surveyCharts loads the survey table, recodes the severity factor and
// renders the weighted bar, weighted histogram and box charts
func (p *Pipeline) surveyCharts(ctx context.Context, result *Result) error {
	logger := infrastructure.LoggerWithContext(ctx)

	survey, err := dataset.LoadCSV(ctx, p.paths.SurveyCSV)
	if err != nil {
		return err
	}

	factor, err := dataset.NewFactor(SeverityLevels)
	if err != nil {
		return err
	}

	// Recode before any categorical plot so axis order is the level
	// order, not data order. Unknown values fail the run here.
	_, missing, err := factor.EncodeColumn(survey, colSeverity)
	if err != nil {
		return fmt.Errorf("severity recode: %w", err)
	}
	if missing > 0 {
		logger.WarnContext(ctx, "severity responses missing, excluded from categorical charts",
			"missing", missing)
	}

	logger.InfoContext(ctx, "sampling weights correct for survey over/under-representation",
		"weight_column", colWeight)

	bar, err := p.renderer.Render(ctx, "severity_bar", survey,
		chart.Aes{X: colSeverity, Weight: colWeight}, chart.GeomBar,
		chart.Options{
			Title:  "Expected severity of own COVID case",
			YLabel: "Weighted responses",
			Factor: factor,
		})
	if err != nil {
		return err
	}

	hist, err := p.renderer.Render(ctx, "age_hist", survey,
		chart.Aes{X: colAge, Weight: colWeight}, chart.GeomHistogram,
		chart.Options{
			Title:  "Respondent age, weighted",
			XLabel: "Age",
			YLabel: "Weighted responses",
			Bins:   p.cfg.Chart.HistogramBins,
		})
	if err != nil {
		return err
	}

	box, err := p.renderer.Render(ctx, "age_by_severity_box", survey,
		chart.Aes{X: colSeverity, Y: colAge}, chart.GeomBox,
		chart.Options{
			Title:  "Age by expected severity",
			YLabel: "Age",
			Factor: factor,
		})
	if err != nil {
		return err
	}

	severities, err := dataset.StringColumn(survey, colSeverity)
	if err != nil {
		return err
	}
	weights, err := dataset.NumericColumn(survey, colWeight)
	if err != nil {
		return err
	}
	result.WeightedTotals, err = dataset.WeightedCounts(factor, severities, weights)
	if err != nil {
		return err
	}

	result.Charts = append(result.Charts, bar, hist, box)
	return nil
}

// finalChart re-derives a relabeled copy of the long rates data and renders
// the publication-labeled line chart
func (p *Pipeline) finalChart(ctx context.Context, result *Result, long dataframe.DataFrame) error {
	logger := infrastructure.LoggerWithContext(ctx)

	logger.InfoContext(ctx, "publication labels replace column-name defaults on the final chart")

	relabeled, err := dataset.RelabelColumn(long, colName, seriesLabels)
	if err != nil {
		return err
	}

	final, err := p.renderer.Render(ctx, "interest_unemployment", relabeled,
		chart.Aes{X: colDate, Y: colValue, Color: colName}, chart.GeomLine,
		chart.Options{
			Title:       "US unemployment and interest rates",
			XLabel:      "Date (by month)",
			YLabel:      "Percentage",
			LegendTitle: "Statistic",
			TimeX:       true,
		})
	if err != nil {
		return err
	}

	result.Final = final
	return nil
}

// export writes the final chart PNG, the intermediate charts, the derived
// long-format table and the weighted summary workbook
func (p *Pipeline) export(ctx context.Context, result *Result, long dataframe.DataFrame) error {
	if err := p.png.Save(ctx, result.Final, p.paths.FinalChartPNG); err != nil {
		return err
	}

	if err := p.png.SaveAll(ctx, result.Charts, p.paths.OutputDir); err != nil {
		return err
	}

	if err := p.frames.WriteFrame(ctx, long, p.paths.GetOutputPath("rates_long.csv")); err != nil {
		return err
	}

	return p.summaries.WriteSummary(ctx, p.paths.SummaryXLSX, SeverityLevels, result.WeightedTotals)
}
