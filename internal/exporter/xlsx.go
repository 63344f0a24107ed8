package exporter

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"vizcli/internal/infrastructure"
)

// summarySheet is the sheet name for weighted summary workbooks
const summarySheet = "Weighted Summary"

// SummaryWriter exports weighted category totals as an Excel workbook
type SummaryWriter struct{}

// NewSummaryWriter creates a summary writer
func NewSummaryWriter() *SummaryWriter {
	return &SummaryWriter{}
}

// WriteSummary writes one row per factor level with its weighted total.
// Levels and totals must be aligned and in level order.
func (w *SummaryWriter) WriteSummary(ctx context.Context, path string, levels []string, totals []float64) error {
	logger := infrastructure.LoggerWithContext(ctx)

	if len(levels) != len(totals) {
		return fmt.Errorf("summary has %d levels but %d totals", len(levels), len(totals))
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet, err := f.NewSheet(summarySheet)
	if err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	f.SetActiveSheet(sheet)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if err := f.SetSheetRow(summarySheet, "A1", &[]any{"Level", "Weighted total"}); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	for i, level := range levels {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell for row %d: %w", i, err)
		}
		if err := f.SetSheetRow(summarySheet, cell, &[]any{level, totals[i]}); err != nil {
			return fmt.Errorf("failed to write row for level %q: %w", level, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save summary workbook %s: %w", path, err)
	}

	logger.InfoContext(ctx, "exported weighted summary",
		"path", path,
		"levels", len(levels))
	return nil
}
