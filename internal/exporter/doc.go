// Package exporter serializes rendered charts and derived tables to disk.
//
// This package contains three main components:
//
// PNGExporter: raster export of chart objects with configurable physical
// size, resolution and background color, plus a bounded-concurrency batch
// mode for writing a whole set of rendered charts.
//
// SummaryWriter: writes weighted category totals to an Excel workbook.
//
// FrameWriter: writes derived data frames to CSV so transformed datasets
// can be inspected alongside the charts built from them.
package exporter
