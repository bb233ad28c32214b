// Command import loads observance rules from JSON into the SQLite database.
//
// Usage:
//
//	go run ./cmd/import -json data/observances.json -db data/almanac.db
//
// This tool:
// 1. Parses and validates the JSON file
// 2. Creates/opens the SQLite database
// 3. Runs migrations to ensure schema is current
// 4. Upserts every observance by name in a single transaction
//
// The import is idempotent: running it twice leaves one row per name, with
// the fields of the latest file.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/zapponejosh/almanac-api/internal/database"
	"github.com/zapponejosh/almanac-api/internal/logger"
)

func main() {
	// Parse command line flags
	jsonPath := flag.String("json", "data/observances.json", "Path to observances JSON file")
	dbPath := flag.String("db", "data/almanac.db", "Path to SQLite database")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	level := "info"
	if *verbose {
		level = "debug"
	}
	log := logger.New(os.Stdout, level, "text")

	if err := run(*jsonPath, *dbPath, log); err != nil {
		log.Error("import failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("import complete")
}

func run(jsonPath, dbPath string, log *slog.Logger) error {
	ctx := context.Background()
	startTime := time.Now()

	// =========================================================================
	// Step 1: Read, parse and validate JSON
	// =========================================================================
	log.Info("reading JSON file", slog.String("path", jsonPath))

	importData, err := readImportFile(jsonPath)
	if err != nil {
		return err
	}

	log.Info("parsed JSON",
		slog.Int("observances", len(importData.Observances)),
		slog.String("source", importData.Metadata.Source),
		slog.String("generated_at", importData.Metadata.GeneratedAt),
	)

	// =========================================================================
	// Step 2: Open database and run migrations
	// =========================================================================
	log.Info("opening database", slog.String("path", dbPath))

	db, err := database.Open(database.DefaultConfig(dbPath), log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	migrated, err := db.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	log.Info("migrations complete", slog.Int("applied", migrated))

	// =========================================================================
	// Step 3: Import data in a transaction
	// =========================================================================
	log.Info("starting import")

	stats := ImportStats{ByKind: make(map[database.Kind]int)}
	err = db.WithTx(ctx, func(tx *database.Tx) error {
		return importObservances(ctx, tx, importData.Observances, log, &stats)
	})
	if err != nil {
		return fmt.Errorf("import data: %w", err)
	}

	// =========================================================================
	// Step 4: Verify import
	// =========================================================================
	total, err := db.CountObservances(ctx)
	if err != nil {
		return fmt.Errorf("count observances: %w", err)
	}

	elapsed := time.Since(startTime)

	log.Info("import verified",
		slog.Int("imported", stats.Imported),
		slog.Int("total_in_db", total),
		slog.Duration("elapsed", elapsed),
	)

	// Print summary
	fmt.Println()
	fmt.Println("=== Import Summary ===")
	fmt.Printf("Observances imported: %d\n", stats.Imported)
	for _, kind := range database.ValidKinds() {
		fmt.Printf("  %-14s      %d\n", kind+":", stats.ByKind[kind])
	}
	fmt.Printf("Total in database:    %d\n", total)
	fmt.Printf("Time elapsed:         %v\n", elapsed.Round(time.Millisecond))

	return nil
}

// ImportStats tracks import statistics.
type ImportStats struct {
	Imported int
	ByKind   map[database.Kind]int
}

// readImportFile parses path and validates every rule, reporting all
// invalid entries at once.
func readImportFile(path string) (*database.ImportData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read JSON file: %w", err)
	}

	var importData database.ImportData
	if err := json.Unmarshal(data, &importData); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}

	var errs []error
	seen := make(map[string]bool, len(importData.Observances))
	for i := range importData.Observances {
		o := &importData.Observances[i]
		if err := o.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("observance %d (%q): %w", i+1, o.Name, err))
		}
		if seen[o.Name] {
			errs = append(errs, fmt.Errorf("observance %d: duplicate name %q", i+1, o.Name))
		}
		seen[o.Name] = true
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("validate JSON: %w", err)
	}

	return &importData, nil
}

// importObservances upserts all observances by name.
func importObservances(ctx context.Context, tx *database.Tx, observances []database.Observance, log *slog.Logger, stats *ImportStats) error {
	for i := range observances {
		o := &observances[i]

		if err := tx.UpsertObservance(ctx, o); err != nil {
			return fmt.Errorf("upsert observance %d (%s): %w", i+1, o.Name, err)
		}

		stats.Imported++
		stats.ByKind[o.Kind]++

		log.Debug("imported observance",
			slog.Int64("id", o.ID),
			slog.String("name", o.Name),
			slog.String("kind", string(o.Kind)),
		)
	}

	return nil
}
