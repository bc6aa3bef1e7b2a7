// Command prepare runs the games data preparation pipeline: it reads the
// raw games table and the committee code reference table, applies every
// cleaning step, and writes the prepared CSV.
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
	"paracli/internal/prep"
)

func main() {
	inPath := flag.String("in", "", "raw games table, .csv or .xlsx (defaults to data/raw/games_raw.csv relative to executable)")
	codesPath := flag.String("codes", "", "committee codes CSV (defaults to data/raw/npc_codes.csv)")
	outPath := flag.String("out", "", "prepared CSV output path (defaults to data/prepared.csv)")
	sheet := flag.Int("sheet", -1, "worksheet index for .xlsx input (defaults to configured value)")
	flag.Parse()

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if *inPath == "" {
		*inPath = paths.RawCSV
	}
	if *codesPath == "" {
		*codesPath = paths.CodesCSV
	}
	if *outPath == "" {
		*outPath = paths.PreparedCSV
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
				FilePath: paths.GetLogPath("prepare.log"),
			},
		}
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	if *sheet < 0 {
		*sheet = cfg.Pipeline.RawSheet
	}

	ctx := infrastructure.ContextWithTraceID(context.Background())

	logger.InfoContext(ctx, "Starting games data preparation",
		slog.String("input", *inPath),
		slog.String("codes", *codesPath),
		slog.String("output", *outPath))

	raw, err := readRaw(*inPath, *sheet)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to read raw table", slog.String("error", err.Error()))
		os.Exit(1)
	}

	codes, err := prep.LoadCodes(*codesPath)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load committee codes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	prepared, err := prep.New(logger).Prepare(ctx, raw, codes)
	if err != nil {
		logger.ErrorContext(ctx, "Preparation failed, no output written", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := dataset.WriteCSV(*outPath, prepared); err != nil {
		logger.ErrorContext(ctx, "Failed to write prepared table", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Prepared table written",
		slog.String("output", *outPath),
		slog.Int("rows", prepared.RowCount()),
		slog.Int("columns", prepared.ColumnCount()))
}

// readRaw loads the raw table, choosing the reader by file extension.
func readRaw(path string, sheet int) (*dataset.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return dataset.ReadExcel(path, sheet)
	}
	return dataset.ReadCSV(path)
}
