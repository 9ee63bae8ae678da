package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/antonKrizmanic/gymlogger/internal/config"
	"github.com/antonKrizmanic/gymlogger/internal/importer"
	"github.com/antonKrizmanic/gymlogger/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	importPath := flag.String("path", "", "path to directory of exported workout JSON files (required)")
	stateDir := flag.String("state-dir", ".gymlogger-import", "directory for the import state database")
	userID := flag.Int("user", 1, "user ID to attribute imported workouts to")
	dryRun := flag.Bool("dry-run", false, "report counts without inserting into database")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *importPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: gymlogger-import -config config.yaml -path /path/to/exports [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Verify export directory exists
	info, err := os.Stat(*importPath)
	if err != nil || !info.IsDir() {
		log.Error("import path does not exist or is not a directory", "path", *importPath)
		os.Exit(1)
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dsn := cfg.Database.DSN()

	// Run migrations
	if err := storage.RunMigrations(dsn, "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	ctx := context.Background()

	if *dryRun {
		log.Info("DRY RUN mode — no data will be written to the database")
	}

	// Connect database
	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	state, err := importer.OpenStateDB(*stateDir)
	if err != nil {
		log.Error("failed to open state db", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	// Run import
	start := time.Now()
	imp := importer.New(db, log, *userID, *dryRun)
	stats, err := imp.Import(ctx, *importPath, state)

	printStats(log, stats)

	if !*dryRun {
		logRun(ctx, db, log, *userID, *importPath, stats, err, time.Since(start))
	}

	if err != nil {
		log.Error("import failed", "error", err)
		os.Exit(1)
	}
	log.Info("import complete")
}

func printStats(log *slog.Logger, stats *importer.Stats) {
	log.Info("import stats",
		"files_processed", stats.FilesProcessed,
		"files_skipped", stats.FilesSkipped,
		"files_errored", stats.FilesErrored,
		"workouts_inserted", stats.WorkoutsInserted,
		"workouts_duplicated", stats.WorkoutsDuplicated,
	)
	if len(stats.UnknownExercises) > 0 {
		log.Info("unknown exercises (not in catalog)", "exercises", stats.UnknownExercises)
	}
}

func logRun(ctx context.Context, db *storage.DB, log *slog.Logger, userID int, source string, stats *importer.Stats, runErr error, elapsed time.Duration) {
	entry := storage.ImportLog{
		UserID:     userID,
		Source:     source,
		Status:     "ok",
		Workouts:   stats.WorkoutsInserted,
		DurationMs: int(elapsed.Milliseconds()),
	}
	if runErr != nil {
		entry.Status = "error"
		msg := runErr.Error()
		entry.Error = &msg
	}
	if err := db.InsertImportLog(ctx, entry); err != nil {
		log.Warn("failed to record import log", "error", err)
	}
}
