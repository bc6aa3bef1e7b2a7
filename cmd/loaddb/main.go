// Command loaddb loads a prepared games CSV into a local SQLite database,
// creating the schema first from a SQL file or the built-in definition.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"paracli/internal/config"
	"paracli/internal/dataset"
	"paracli/internal/infrastructure"
	"paracli/internal/prep"
	"paracli/internal/store"
)

func main() {
	inPath := flag.String("in", "", "prepared games CSV (defaults to data/prepared.csv relative to executable)")
	dbPath := flag.String("db", "", "SQLite database path (defaults to data/games.db)")
	schemaPath := flag.String("schema", "", "optional SQL schema file; built-in schema is used when omitted")
	flag.Parse()

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if *inPath == "" {
		*inPath = paths.PreparedCSV
	}
	if *dbPath == "" {
		*dbPath = paths.GamesDB
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
				FilePath: paths.GetLogPath("loaddb.log"),
			},
		}
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	ctx := infrastructure.ContextWithTraceID(context.Background())

	logger.InfoContext(ctx, "Loading prepared games into SQLite",
		slog.String("input", *inPath),
		slog.String("database", *dbPath))

	table, err := dataset.ReadCSV(*inPath)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to read prepared table", slog.String("error", err.Error()))
		os.Exit(1)
	}

	records, err := prep.Records(table)
	if err != nil {
		logger.ErrorContext(ctx, "Prepared table has unexpected shape", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := store.Open(*dbPath)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if *schemaPath != "" {
		err = db.ApplySchemaFile(ctx, *schemaPath)
	} else {
		err = db.ApplyDefaultSchema(ctx)
	}
	if err != nil {
		logger.ErrorContext(ctx, "Failed to apply schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := db.LoadGames(ctx, records); err != nil {
		logger.ErrorContext(ctx, "Failed to load records", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Load complete",
		slog.String("database", *dbPath),
		slog.Int("records", len(records)))
}
