package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"vizcli/internal/config"
	"vizcli/internal/infrastructure"
	"vizcli/internal/pipeline"
)

func main() {
	dataDir := flag.String("data", "", "directory containing the input CSV datasets (defaults to ./data)")
	outDir := flag.String("out", "", "directory to write charts into (defaults to ./output)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	if *dataDir != "" {
		cfg.Paths.DataDir = *dataDir
	}
	if *outDir != "" {
		cfg.Paths.OutputDir = *outDir
	}

	paths, err := config.NewPaths(cfg.Paths)
	if err != nil {
		slog.Error("Failed to resolve paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg.Logging.FilePath = paths.GetLogPath("vizgen.log")
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithTraceID(context.Background())

	result, err := pipeline.New(cfg, paths).Run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "pipeline failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "pipeline complete",
		"charts", len(result.Charts)+1,
		"final_chart", paths.FinalChartPNG)
}
