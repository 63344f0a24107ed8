package exporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"

	"vizcli/internal/infrastructure"
)

// FrameWriter exports derived data frames as CSV files
type FrameWriter struct{}

// NewFrameWriter creates a frame writer
func NewFrameWriter() *FrameWriter {
	return &FrameWriter{}
}

// WriteFrame writes a data frame to path as a headered CSV file
func (w *FrameWriter) WriteFrame(ctx context.Context, df dataframe.DataFrame, path string) error {
	logger := infrastructure.LoggerWithContext(ctx)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file %s: %w", path, err)
	}
	defer file.Close()

	if err := df.WriteCSV(file, dataframe.WriteHeader(true)); err != nil {
		return fmt.Errorf("failed to write csv %s: %w", path, err)
	}

	logger.InfoContext(ctx, "exported data frame",
		"path", path,
		"rows", df.Nrow(),
		"cols", df.Ncol())
	return nil
}
