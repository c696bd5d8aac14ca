package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/taxref/internal/common"
	"github.com/Veraticus/taxref/internal/model"
)

// Snapshot is the data written by Export.
type Snapshot struct {
	Income      []model.IncomeCategory
	Occupations []model.OccupationCategory
	Fees        []model.FeeCategory
	Items       []model.DetailedIncomeItem
}

// Rows returns the number of rows Export writes for the snapshot.
func (s Snapshot) Rows() int {
	rows := len(s.Income) + len(s.Occupations) + len(s.Fees) + len(s.Items)
	for _, c := range s.Income {
		rows += len(c.Examples)
	}
	return rows
}

// ExportStats counts the rows written per table.
type ExportStats struct {
	Income      int
	Examples    int
	Occupations int
	Fees        int
	Items       int
}

// Total returns the number of rows written.
func (e ExportStats) Total() int {
	return e.Income + e.Examples + e.Occupations + e.Fees + e.Items
}

// ProgressFunc is called after each row is written.
type ProgressFunc func(done, total int)

var exportTables = []string{
	"income_examples",
	"detailed_items",
	"fee_categories",
	"occupation_categories",
	"income_categories",
}

// Export replaces the database contents with snap in a single transaction.
// A canceled context rolls the transaction back and leaves the previous
// contents in place.
func (s *SQLiteStorage) Export(ctx context.Context, snap Snapshot, progress ProgressFunc) (ExportStats, error) {
	var stats ExportStats
	if err := validateContext(ctx); err != nil {
		return stats, err
	}
	if err := validateSnapshot(snap); err != nil {
		return stats, err
	}
	if progress == nil {
		progress = func(int, int) {}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range exportTables {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return stats, fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	total := snap.Rows()
	step := func() error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		progress(stats.Total(), total)
		return nil
	}

	if err = s.exportIncome(ctx, tx, snap.Income, &stats, step); err != nil {
		return stats, err
	}
	if err = s.exportOccupations(ctx, tx, snap.Occupations, &stats, step); err != nil {
		return stats, err
	}
	if err = s.exportReference(ctx, tx, snap, &stats, step); err != nil {
		return stats, err
	}

	if err = tx.Commit(); err != nil {
		return stats, fmt.Errorf("failed to commit export: %w", err)
	}

	slog.Info("Exported dataset",
		"path", s.dbPath,
		"income", stats.Income,
		"occupations", stats.Occupations,
		"rows", stats.Total())
	return stats, nil
}

func (s *SQLiteStorage) exportIncome(ctx context.Context, tx *sql.Tx, income []model.IncomeCategory, stats *ExportStats, step func() error) error {
	categoryStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO income_categories (
			code, position, name, format_code, description, resident_rate, non_resident_rate,
			health_insurance_code, health_insurance_name, fee_category, notes,
			exemption_limit, withholding_threshold
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare income insert: %w", err)
	}
	defer func() { _ = categoryStmt.Close() }()

	exampleStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO income_examples (income_code, position, example) VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare example insert: %w", err)
	}
	defer func() { _ = exampleStmt.Close() }()

	for i, c := range income {
		_, err := categoryStmt.ExecContext(ctx,
			c.Code, i, c.Name, nullString(c.FormatCode), nullString(c.Description),
			c.TaxRate.Resident, c.TaxRate.NonResident,
			nullString(c.HealthInsuranceCode), nullString(c.HealthInsuranceName),
			nullString(c.FeeCategory), nullString(c.Notes),
			nullString(c.ExemptionLimit), nullString(c.WithholdingThreshold),
		)
		if err != nil {
			return fmt.Errorf("failed to insert income %s: %w", c.Code, err)
		}
		stats.Income++
		if err := step(); err != nil {
			return err
		}

		for j, example := range c.Examples {
			if _, err := exampleStmt.ExecContext(ctx, c.Code, j, example); err != nil {
				return fmt.Errorf("failed to insert example %d of %s: %w", j, c.Code, err)
			}
			stats.Examples++
			if err := step(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *SQLiteStorage) exportOccupations(ctx context.Context, tx *sql.Tx, occupations []model.OccupationCategory, stats *ExportStats, step func() error) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO occupation_categories (
			code, position, name, category, description, resident_rate, non_resident_rate
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare occupation insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, c := range occupations {
		_, err := stmt.ExecContext(ctx,
			c.Code, i, c.Name, nullString(c.Category), nullString(c.Description),
			c.TaxRate.Resident, c.TaxRate.NonResident,
		)
		if err != nil {
			return fmt.Errorf("failed to insert occupation %s: %w", c.Code, err)
		}
		stats.Occupations++
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStorage) exportReference(ctx context.Context, tx *sql.Tx, snap Snapshot, stats *ExportStats, step func() error) error {
	for _, f := range snap.Fees {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO fee_categories (code, description) VALUES (?, ?)`,
			f.Code, f.Description,
		); err != nil {
			return fmt.Errorf("failed to insert fee %s: %w", f.Code, err)
		}
		stats.Fees++
		if err := step(); err != nil {
			return err
		}
	}

	for _, item := range snap.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO detailed_items (id, name, income_code, format_code, fee_code, health_insurance, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, item.ID, item.Name, item.Code, nullString(item.FormatCode), nullString(item.FeeCode),
			item.HealthInsurance, nullString(item.Notes),
		); err != nil {
			return fmt.Errorf("failed to insert item %d: %w", item.ID, err)
		}
		stats.Items++
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// CountRows returns the number of rows in one of the exported tables.
func (s *SQLiteStorage) CountRows(ctx context.Context, table string) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if !isExportTable(table) {
		return 0, fmt.Errorf("%w: table %q", ErrInvalidSnapshot, table)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count, nil
}

// GetIncomeCategory reads an exported income category, examples included.
func (s *SQLiteStorage) GetIncomeCategory(ctx context.Context, code string) (model.IncomeCategory, error) {
	var c model.IncomeCategory
	if err := validateContext(ctx); err != nil {
		return c, err
	}
	if err := validateString(code, "code"); err != nil {
		return c, err
	}

	var formatCode, description, healthCode, healthName, fee, notes, exemption, threshold sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT code, name, format_code, description, resident_rate, non_resident_rate,
			health_insurance_code, health_insurance_name, fee_category, notes,
			exemption_limit, withholding_threshold
		FROM income_categories WHERE code = ?
	`, code).Scan(
		&c.Code, &c.Name, &formatCode, &description, &c.TaxRate.Resident, &c.TaxRate.NonResident,
		&healthCode, &healthName, &fee, &notes, &exemption, &threshold,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return c, fmt.Errorf("income %s: %w", code, common.ErrNotFound)
	}
	if err != nil {
		return c, fmt.Errorf("failed to get income %s: %w", code, err)
	}

	c.FormatCode = formatCode.String
	c.Description = description.String
	c.HealthInsuranceCode = healthCode.String
	c.HealthInsuranceName = healthName.String
	c.FeeCategory = fee.String
	c.Notes = notes.String
	c.ExemptionLimit = exemption.String
	c.WithholdingThreshold = threshold.String

	rows, err := s.db.QueryContext(ctx,
		`SELECT example FROM income_examples WHERE income_code = ? ORDER BY position`, code)
	if err != nil {
		return c, fmt.Errorf("failed to get examples of %s: %w", code, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var example string
		if err := rows.Scan(&example); err != nil {
			return c, fmt.Errorf("failed to scan example: %w", err)
		}
		c.Examples = append(c.Examples, example)
	}
	return c, rows.Err()
}

// GetOccupationCategory reads an exported occupation category.
func (s *SQLiteStorage) GetOccupationCategory(ctx context.Context, code string) (model.OccupationCategory, error) {
	var c model.OccupationCategory
	if err := validateContext(ctx); err != nil {
		return c, err
	}
	if err := validateString(code, "code"); err != nil {
		return c, err
	}

	var category, description sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT code, name, category, description, resident_rate, non_resident_rate
		FROM occupation_categories WHERE code = ?
	`, code).Scan(&c.Code, &c.Name, &category, &description, &c.TaxRate.Resident, &c.TaxRate.NonResident)
	if errors.Is(err, sql.ErrNoRows) {
		return c, fmt.Errorf("occupation %s: %w", code, common.ErrNotFound)
	}
	if err != nil {
		return c, fmt.Errorf("failed to get occupation %s: %w", code, err)
	}

	c.Category = category.String
	c.Description = description.String
	return c, nil
}

func isExportTable(table string) bool {
	for _, t := range exportTables {
		if t == table {
			return true
		}
	}
	return false
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
