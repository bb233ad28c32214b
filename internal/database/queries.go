package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const observanceColumns = `
	id, name, kind, month, day, nth, weekday, offset_days,
	description, created_at, updated_at
`

// =============================================================================
// Observance Queries
// =============================================================================

// CreateObservance inserts a new rule and sets its ID.
// Returns ErrDuplicate if the name is taken.
func (db *DB) CreateObservance(ctx context.Context, o *Observance) error {
	query := `
		INSERT INTO observances (
			name, kind, month, day, nth, weekday, offset_days, description
		) VALUES (
			:name, :kind, :month, :day, :nth, :weekday, :offset_days, :description
		)
	`

	result, err := sqlx.NamedExecContext(ctx, db, query, o)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert observance: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get observance id: %w", err)
	}
	o.ID = id

	return nil
}

// GetObservance retrieves one rule by ID.
// Returns ErrNotFound if it doesn't exist.
func (db *DB) GetObservance(ctx context.Context, id int64) (*Observance, error) {
	var o Observance
	err := db.GetContext(ctx, &o, `SELECT `+observanceColumns+` FROM observances WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query observance: %w", err)
	}
	return &o, nil
}

// GetObservanceByName retrieves one rule by its unique name.
func (db *DB) GetObservanceByName(ctx context.Context, name string) (*Observance, error) {
	var o Observance
	err := db.GetContext(ctx, &o, `SELECT `+observanceColumns+` FROM observances WHERE name = ?`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query observance by name: %w", err)
	}
	return &o, nil
}

// ListObservances returns all rules ordered by name.
func (db *DB) ListObservances(ctx context.Context) ([]Observance, error) {
	out := []Observance{}
	if err := db.SelectContext(ctx, &out, `SELECT `+observanceColumns+` FROM observances ORDER BY name`); err != nil {
		return nil, fmt.Errorf("list observances: %w", err)
	}
	return out, nil
}

// ListObservancesByKind returns the rules of one kind ordered by name.
func (db *DB) ListObservancesByKind(ctx context.Context, kind Kind) ([]Observance, error) {
	out := []Observance{}
	query := `SELECT ` + observanceColumns + ` FROM observances WHERE kind = ? ORDER BY name`
	if err := db.SelectContext(ctx, &out, query, kind); err != nil {
		return nil, fmt.Errorf("list observances by kind: %w", err)
	}
	return out, nil
}

// DeleteObservance removes a rule by ID.
// Returns ErrNotFound if it doesn't exist.
func (db *DB) DeleteObservance(ctx context.Context, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM observances WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete observance: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// UpsertObservance inserts a rule or replaces the rule with the same name.
// Safe to run repeatedly with the same data; used by the importer.
func (db *DB) UpsertObservance(ctx context.Context, o *Observance) error {
	return upsertObservance(ctx, db, o)
}

// UpsertObservance is the transactional variant of DB.UpsertObservance.
func (tx *Tx) UpsertObservance(ctx context.Context, o *Observance) error {
	return upsertObservance(ctx, tx, o)
}

func upsertObservance(ctx context.Context, ext sqlx.ExtContext, o *Observance) error {
	query := `
		INSERT INTO observances (
			name, kind, month, day, nth, weekday, offset_days, description
		) VALUES (
			:name, :kind, :month, :day, :nth, :weekday, :offset_days, :description
		)
		ON CONFLICT(name) DO UPDATE SET
			kind = excluded.kind,
			month = excluded.month,
			day = excluded.day,
			nth = excluded.nth,
			weekday = excluded.weekday,
			offset_days = excluded.offset_days,
			description = excluded.description,
			updated_at = datetime('now')
	`

	if _, err := sqlx.NamedExecContext(ctx, ext, query, o); err != nil {
		return fmt.Errorf("upsert observance %q: %w", o.Name, err)
	}

	// LastInsertId is unreliable for the update path, so read the ID back.
	if err := sqlx.GetContext(ctx, ext, &o.ID, `SELECT id FROM observances WHERE name = ?`, o.Name); err != nil {
		return fmt.Errorf("read observance id: %w", err)
	}

	return nil
}

// CountObservances returns the number of stored rules.
func (db *DB) CountObservances(ctx context.Context) (int, error) {
	var n int
	if err := db.GetContext(ctx, &n, `SELECT COUNT(*) FROM observances`); err != nil {
		return 0, fmt.Errorf("count observances: %w", err)
	}
	return n, nil
}
