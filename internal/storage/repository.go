package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"salesboard/internal/core"
	"salesboard/internal/dataset"

	_ "modernc.org/sqlite"
)

// SQLiteRepository persists acquisition snapshots: one row of metadata per
// snapshot plus the full record set, for audit and history of what the
// dashboard actually served.
type SQLiteRepository struct {
	db *sql.DB
}

// Snapshot is the stored metadata for one acquisition run.
type Snapshot struct {
	ID             int64
	TakenAt        time.Time
	Source         string
	FallbackReason string
	RowCount       int
	TotalSales     float64
}

var ErrNoSnapshots = errors.New("no snapshots stored")

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// SaveSnapshot stores the result of one acquisition in a single transaction
// and returns the snapshot ID.
func (r *SQLiteRepository) SaveSnapshot(ctx context.Context, res dataset.Result) (int64, error) {
	summary := core.Summarize(res.Dataset)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (taken_at, source, fallback_reason, row_count, total_sales)
		 VALUES (?, ?, ?, ?, ?)`,
		res.LoadedAt.UTC(), string(res.Source), res.FallbackReason,
		res.Dataset.Len(), summary.TotalSales)
	if err != nil {
		return 0, fmt.Errorf("insert snapshot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("snapshot id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO snapshot_records (snapshot_id, date, sales, customers, product, region)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare record insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range res.Dataset.Records {
		if _, err := stmt.ExecContext(ctx, id, rec.Date.String(),
			nullFloat(rec.Sales), nullFloat(rec.Customers), rec.Product, rec.Region); err != nil {
			return 0, fmt.Errorf("insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit snapshot: %w", err)
	}

	slog.InfoContext(ctx, "Snapshot saved",
		"snapshot_id", id,
		"source", res.Source,
		"rows", res.Dataset.Len(),
		"total_sales", summary.TotalSales)

	return id, nil
}

// LatestSnapshot returns the newest snapshot metadata.
func (r *SQLiteRepository) LatestSnapshot(ctx context.Context) (Snapshot, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, taken_at, source, fallback_reason, row_count, total_sales
		 FROM snapshots ORDER BY taken_at DESC, id DESC LIMIT 1`)

	s, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, ErrNoSnapshots
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("query latest snapshot: %w", err)
	}
	return s, nil
}

// ListSnapshots returns snapshot metadata newest-first, at most limit rows.
func (r *SQLiteRepository) ListSnapshots(ctx context.Context, limit int) ([]Snapshot, error) {
	if limit < 1 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, taken_at, source, fallback_reason, row_count, total_sales
		 FROM snapshots ORDER BY taken_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// SnapshotDataset reads a stored snapshot's records back as a dataset.
func (r *SQLiteRepository) SnapshotDataset(ctx context.Context, snapshotID int64) (core.Dataset, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, sales, customers, product, region
		 FROM snapshot_records WHERE snapshot_id = ? ORDER BY id`, snapshotID)
	if err != nil {
		return core.Dataset{}, fmt.Errorf("query snapshot records: %w", err)
	}
	defer rows.Close()

	var records []core.Record
	for rows.Next() {
		var (
			dateStr          string
			sales, customers sql.NullFloat64
			product, region  string
		)
		if err := rows.Scan(&dateStr, &sales, &customers, &product, &region); err != nil {
			return core.Dataset{}, fmt.Errorf("scan snapshot record: %w", err)
		}
		date, err := core.ParseDate(dateStr)
		if err != nil {
			return core.Dataset{}, fmt.Errorf("stored date %q: %w", dateStr, err)
		}
		records = append(records, core.Record{
			Date:      date,
			Sales:     fromNullFloat(sales),
			Customers: fromNullFloat(customers),
			Product:   product,
			Region:    region,
		})
	}
	return core.Dataset{Records: records}, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (Snapshot, error) {
	var s Snapshot
	err := row.Scan(&s.ID, &s.TakenAt, &s.Source, &s.FallbackReason, &s.RowCount, &s.TotalSales)
	return s, err
}

func nullFloat(n core.Number) sql.NullFloat64 {
	return sql.NullFloat64{Float64: n.Value, Valid: n.Valid}
}

func fromNullFloat(f sql.NullFloat64) core.Number {
	return core.Number{Value: f.Float64, Valid: f.Valid}
}
