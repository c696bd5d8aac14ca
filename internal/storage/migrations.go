package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
// If the database cannot be migrated to this version, it's a fatal error.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS income_categories (
					code TEXT PRIMARY KEY,
					position INTEGER NOT NULL,
					name TEXT NOT NULL,
					format_code TEXT,
					description TEXT,
					resident_rate TEXT NOT NULL,
					non_resident_rate TEXT NOT NULL,
					health_insurance_code TEXT,
					health_insurance_name TEXT,
					fee_category TEXT,
					notes TEXT,
					exemption_limit TEXT,
					withholding_threshold TEXT
				)`,

				`CREATE TABLE IF NOT EXISTS income_examples (
					income_code TEXT NOT NULL,
					position INTEGER NOT NULL,
					example TEXT NOT NULL,
					PRIMARY KEY (income_code, position),
					FOREIGN KEY (income_code) REFERENCES income_categories(code) ON DELETE CASCADE
				)`,

				`CREATE TABLE IF NOT EXISTS occupation_categories (
					code TEXT PRIMARY KEY,
					position INTEGER NOT NULL,
					name TEXT NOT NULL,
					category TEXT,
					description TEXT,
					resident_rate TEXT NOT NULL,
					non_resident_rate TEXT NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS fee_categories (
					code TEXT PRIMARY KEY,
					description TEXT NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS detailed_items (
					id INTEGER PRIMARY KEY,
					name TEXT NOT NULL,
					income_code TEXT NOT NULL,
					format_code TEXT,
					fee_code TEXT,
					health_insurance BOOLEAN NOT NULL DEFAULT 0,
					notes TEXT
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add lookup indexes",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE INDEX IF NOT EXISTS idx_occupation_categories_category ON occupation_categories(category)`,
				`CREATE INDEX IF NOT EXISTS idx_detailed_items_income_code ON detailed_items(income_code)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to create index: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate applies all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	currentVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Debug("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	finalVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
