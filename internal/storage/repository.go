// Package storage persists raw data source records in SQLite so the service
// can run without the upstream API.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"noumi/internal/core"
	"noumi/internal/datasource"
	"noumi/internal/datasource/fixture"
	"noumi/internal/log"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db     *sql.DB
	logger *log.Logger
}

func NewSQLiteRepository(dbPath string, logger *log.Logger) (*SQLiteRepository, error) {
	if logger == nil {
		logger = log.Discard()
	}
	logger = logger.WithComponent(log.ComponentStorage)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	version, err := RunMigrations(dbPath)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("SQLite repository ready", "path", dbPath, "schema_version", version)

	return &SQLiteRepository{db: db, logger: logger}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping checks the connection; used by readiness probes.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// UpsertCategory stores one observation. A second write for the same
// category and month replaces the amount but keeps the original position.
func (r *SQLiteRepository) UpsertCategory(ctx context.Context, o core.CategoryObservation) error {
	if err := o.Validate(); err != nil {
		return fmt.Errorf("validate observation: %w", err)
	}
	return upsertCategory(ctx, r.db, o)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertCategory(ctx context.Context, db execer, o core.CategoryObservation) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO spending_categories (category_name, month, amount)
		VALUES (?, ?, ?)
		ON CONFLICT (category_name, month)
		DO UPDATE SET amount = excluded.amount, updated_at = CURRENT_TIMESTAMP`,
		o.CategoryName, o.Month, o.Amount.String())
	if err != nil {
		return fmt.Errorf("upsert category %q/%s: %w", o.CategoryName, o.Month, err)
	}
	return nil
}

func putSummary(ctx context.Context, db execer, resource string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", resource, err)
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO summaries (resource, payload) VALUES (?, ?)
		ON CONFLICT (resource) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP`,
		resource, string(payload))
	if err != nil {
		return fmt.Errorf("store %s: %w", resource, err)
	}
	return nil
}

// Import replaces the stored dataset in a single transaction. Spending
// observations are upserted; habits and accomplishments are replaced.
func (r *SQLiteRepository) Import(ctx context.Context, d fixture.Dataset) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("validate dataset: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	for _, o := range d.SpendingCategories {
		if err := upsertCategory(ctx, tx, o); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM habits`); err != nil {
		return fmt.Errorf("clear habits: %w", err)
	}
	for i, h := range d.Habits {
		var completed sql.NullInt64
		if h.Completed != nil {
			completed = sql.NullInt64{Int64: int64(*h.Completed), Valid: true}
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO habits (position, description, weekly_occurrences, completed) VALUES (?, ?, ?, ?)`,
			i, h.Description, h.WeeklyOccurrences, completed); err != nil {
			return fmt.Errorf("insert habit %q: %w", h.Description, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM accomplishments`); err != nil {
		return fmt.Errorf("clear accomplishments: %w", err)
	}
	for i, a := range d.AccomplishedHabits {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO accomplishments (position, description, value) VALUES (?, ?, ?)`,
			i, a.Description, a.Value); err != nil {
			return fmt.Errorf("insert accomplishment: %w", err)
		}
	}

	summaries := []struct {
		resource string
		value    any
	}{
		{datasource.ResourceSpendingStatus, d.SpendingStatus},
		{datasource.ResourceTotalSpending, d.TotalSpending},
		{datasource.ResourceComputedGoal, d.ComputedGoal},
		{datasource.ResourceWeeklyStreak, d.WeeklyStreak},
		{datasource.ResourceLongestStreak, d.LongestStreak},
		{datasource.ResourceWeeklySavings, d.WeeklySavings},
	}
	for _, s := range summaries {
		if err := putSummary(ctx, tx, s.resource, s.value); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}

	r.logger.InfoContext(ctx, "Dataset imported",
		log.FieldOperation, log.OpImport,
		"categories", len(d.SpendingCategories),
		"habits", len(d.Habits),
		"accomplishments", len(d.AccomplishedHabits),
	)
	return nil
}

// SpendingCategories returns observations in first-insert order.
func (r *SQLiteRepository) SpendingCategories(ctx context.Context) ([]core.CategoryObservation, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT category_name, month, amount FROM spending_categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query spending categories: %w", err)
	}
	defer rows.Close()

	out := []core.CategoryObservation{}
	for rows.Next() {
		var o core.CategoryObservation
		var amount string
		if err := rows.Scan(&o.CategoryName, &o.Month, &amount); err != nil {
			return nil, fmt.Errorf("scan spending category: %w", err)
		}
		if o.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parse stored amount %q: %w", amount, err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate spending categories: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) Habits(ctx context.Context) ([]core.HabitObservation, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT description, weekly_occurrences, completed FROM habits ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("query habits: %w", err)
	}
	defer rows.Close()

	out := []core.HabitObservation{}
	for rows.Next() {
		var h core.HabitObservation
		var completed sql.NullInt64
		if err := rows.Scan(&h.Description, &h.WeeklyOccurrences, &completed); err != nil {
			return nil, fmt.Errorf("scan habit: %w", err)
		}
		if completed.Valid {
			n := int(completed.Int64)
			h.Completed = &n
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate habits: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) AccomplishedHabits(ctx context.Context) ([]core.Accomplishment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT description, value FROM accomplishments ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("query accomplishments: %w", err)
	}
	defer rows.Close()

	out := []core.Accomplishment{}
	for rows.Next() {
		var a core.Accomplishment
		if err := rows.Scan(&a.Description, &a.Value); err != nil {
			return nil, fmt.Errorf("scan accomplishment: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accomplishments: %w", err)
	}
	return out, nil
}

func getSummary[T any](ctx context.Context, r *SQLiteRepository, resource string) (T, error) {
	var out T
	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM summaries WHERE resource = ?`, resource).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return out, fmt.Errorf("%s: %w", resource, datasource.ErrNotFound)
	}
	if err != nil {
		return out, fmt.Errorf("query %s: %w", resource, err)
	}
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", resource, err)
	}
	return out, nil
}

func (r *SQLiteRepository) SpendingStatus(ctx context.Context) (core.SpendingStatus, error) {
	return getSummary[core.SpendingStatus](ctx, r, datasource.ResourceSpendingStatus)
}

func (r *SQLiteRepository) TotalSpending(ctx context.Context) (core.TotalSpending, error) {
	return getSummary[core.TotalSpending](ctx, r, datasource.ResourceTotalSpending)
}

func (r *SQLiteRepository) ComputedGoal(ctx context.Context) (core.ComputedGoal, error) {
	return getSummary[core.ComputedGoal](ctx, r, datasource.ResourceComputedGoal)
}

func (r *SQLiteRepository) WeeklyStreak(ctx context.Context) (core.WeeklyStreak, error) {
	return getSummary[core.WeeklyStreak](ctx, r, datasource.ResourceWeeklyStreak)
}

func (r *SQLiteRepository) LongestStreak(ctx context.Context) (core.LongestStreak, error) {
	return getSummary[core.LongestStreak](ctx, r, datasource.ResourceLongestStreak)
}

func (r *SQLiteRepository) WeeklySavings(ctx context.Context) (core.WeeklySavings, error) {
	return getSummary[core.WeeklySavings](ctx, r, datasource.ResourceWeeklySavings)
}

var _ datasource.Source = (*SQLiteRepository)(nil)
