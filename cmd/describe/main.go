// Command describe profiles a tabular dataset: shape, column kinds,
// preview rows, numeric summaries, and a missing-value quality check.
// The profile is written as a text report for inspection.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"paracli/internal/config"
	"paracli/internal/dataset"
	"paracli/internal/infrastructure"
	"paracli/internal/stats"
)

func main() {
	inPath := flag.String("in", "", "table to describe, .csv or .xlsx (defaults to data/raw/games_raw.csv relative to executable)")
	outPath := flag.String("out", "", "report output path (defaults to reports/describe.txt)")
	column := flag.String("column", "", "optional categorical column to profile with value counts")
	previewRows := flag.Int("preview", 5, "rows shown in the head and tail previews")
	sheet := flag.Int("sheet", 0, "worksheet index for .xlsx input")
	flag.Parse()

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if *inPath == "" {
		*inPath = paths.RawCSV
	}
	if *outPath == "" {
		*outPath = paths.DescribeReport
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Logging: config.LoggingConfig{
				Level:    "info",
				Format:   "json",
				Output:   "both",
				FilePath: paths.GetLogPath("describe.log"),
			},
		}
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	ctx := infrastructure.ContextWithTraceID(context.Background())

	logger.InfoContext(ctx, "Describing dataset",
		slog.String("input", *inPath),
		slog.String("report", *outPath))

	table, err := readTable(*inPath, *sheet)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to read table", slog.String("error", err.Error()))
		os.Exit(1)
	}

	describer := stats.NewDescriber(logger, stats.DescriberConfig{PreviewRows: *previewRows})

	desc := describer.Describe(ctx, table)
	if err := stats.WriteReport(*outPath, desc); err != nil {
		logger.ErrorContext(ctx, "Failed to write report", slog.String("error", err.Error()))
		os.Exit(1)
	}

	quality := describer.QualityCheck(ctx, table)
	logger.InfoContext(ctx, "Missing values",
		slog.Int("rows_with_missing", len(quality.RowsWithMissing)),
		slog.Any("by_column", quality.MissingByColumn))

	if *column != "" {
		counts, err := describer.ValueCounts(table, *column)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to profile column", slog.String("error", err.Error()))
			os.Exit(1)
		}
		for _, vc := range counts {
			logger.InfoContext(ctx, "Value count",
				slog.String("column", *column),
				slog.String("value", vc.Value),
				slog.Int("count", vc.Count))
		}
	}

	logger.InfoContext(ctx, "Report written", slog.String("report", *outPath))
}

// readTable loads the input, choosing the reader by file extension.
func readTable(path string, sheet int) (*dataset.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return dataset.ReadExcel(path, sheet)
	}
	return dataset.ReadCSV(path)
}
