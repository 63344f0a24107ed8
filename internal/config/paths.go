package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for every file the pipeline reads
// or writes.
type Paths struct {
	BaseDir   string
	DataDir   string
	OutputDir string
	LogsDir   string

	// Input datasets
	RatesCSV  string
	SurveyCSV string

	// Well-known output files
	FinalChartPNG string
	SummaryXLSX   string
}

// Dataset file names, fixed by convention.
const (
	RatesCSVName  = "unemployment_and_interest.csv"
	SurveyCSVName = "covidfuture.csv"

	FinalChartName = "interest_unemployment.png"
	SummaryName    = "weighted_summary.xlsx"
)

// NewPaths resolves all paths from the configured directories. Relative
// directories are anchored at the current working directory, matching the
// script-style invocation where the CSV files sit next to the caller.
func NewPaths(cfg PathsConfig) (*Paths, error) {
	base, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	dataDir := resolveDir(base, cfg.DataDir)
	outputDir := resolveDir(base, cfg.OutputDir)
	logsDir := resolveDir(base, cfg.LogsDir)

	return &Paths{
		BaseDir:   base,
		DataDir:   dataDir,
		OutputDir: outputDir,
		LogsDir:   logsDir,

		RatesCSV:  filepath.Join(dataDir, RatesCSVName),
		SurveyCSV: filepath.Join(dataDir, SurveyCSVName),

		FinalChartPNG: filepath.Join(outputDir, FinalChartName),
		SummaryXLSX:   filepath.Join(outputDir, SummaryName),
	}, nil
}

func resolveDir(base, dir string) string {
	if dir == "" {
		return base
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, dir)
}

// EnsureDirectories creates the output and logs directories if missing.
// The data directory is deliberately not created: a missing data directory
// is an input error the loader should surface, not paper over.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.OutputDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetLogPath returns the path for a log file in the logs directory
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// GetOutputPath returns the path for a file in the output directory
func (p *Paths) GetOutputPath(filename string) string {
	return filepath.Join(p.OutputDir, filename)
}
