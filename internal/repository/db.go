package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type Config struct {
	DSN         string
	DialTimeout time.Duration
}

// Open connects the run store. The driver is picked from the DSN scheme:
// postgres DSNs go through pgx, anything else is treated as a local sqlite
// file path.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	driver := "sqlite"
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		driver = "pgx"
	}
	logger.Info("connecting to run store", "driver", driver)

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		logger.Error("failed to open run store", "error", err)
		return nil, err
	}

	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	if err := db.PingContext(ctx); err != nil {
		logger.Error("failed to ping run store", "error", err)
		_ = db.Close()
		return nil, err
	}

	if err := migrate(ctx, db); err != nil {
		logger.Error("failed to migrate run store", "error", err)
		_ = db.Close()
		return nil, err
	}

	logger.Info("run store ready")
	return db, nil
}

// Close closes the run store gracefully.
func Close(db *sql.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("failed to close run store", "error", err)
		return
	}
	logger.Info("run store closed")
}

const runSchema = `
CREATE TABLE IF NOT EXISTS extraction_run (
	id             TEXT PRIMARY KEY,
	source_file    TEXT NOT NULL,
	status         TEXT NOT NULL,
	total_pages    INTEGER NOT NULL,
	employee_count INTEGER,
	skipped_pages  TEXT,
	interim_json   TEXT,
	mapped_json    TEXT,
	error_message  TEXT,
	started_at     TIMESTAMP NOT NULL,
	finished_at    TIMESTAMP
)`

func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, runSchema)
	return err
}
