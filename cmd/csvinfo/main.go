// Command csvinfo prints the shape and inferred column types of CSV
// datasets, which is the first thing to check before plotting anything.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"vizcli/internal/config"
	"vizcli/internal/dataset"
)

func main() {
	dataDir := flag.String("data", "", "directory to resolve the default datasets from (defaults to ./data)")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		cfg := config.Default()
		if *dataDir != "" {
			cfg.Paths.DataDir = *dataDir
		}
		paths, err := config.NewPaths(cfg.Paths)
		if err != nil {
			slog.Error("Failed to resolve paths", "error", err)
			os.Exit(1)
		}
		files = []string{paths.RatesCSV, paths.SurveyCSV}
	}

	ctx := context.Background()
	exitCode := 0

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, path := range files {
		df, err := dataset.LoadCSV(ctx, path)
		if err != nil {
			slog.Error("Failed to load dataset", "path", path, "error", err)
			exitCode = 1
			continue
		}

		info := dataset.Describe(df)
		fmt.Fprintf(w, "%s\t%d rows\t%d cols\n", path, info.Rows, info.Cols)
		for _, col := range info.Columns {
			fmt.Fprintf(w, "  %s\t%s\t\n", col.Name, col.Type)
		}
	}
	w.Flush()

	os.Exit(exitCode)
}
