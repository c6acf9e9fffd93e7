// Package catalog provides the business logic for the e-commerce
// catalog backend: generic product CRUD across the registered category
// tables, image-URL normalization, contact submissions, read-only
// listings, and account signup/login. It has no HTTP dependencies.
package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

// Record is a product row with caller-controlled columns. The column
// set is schema-per-table and not enumerated by the service.
type Record map[string]any

// Service implements the catalog operations over a pgx connection pool.
// Each operation acquires a connection for its duration; writes run in
// a transaction that is rolled back on any error.
type Service struct {
	pool *pgxpool.Pool
}

// NewService creates a Service backed by the given pool.
func NewService(pool *pgxpool.Pool) *Service {
	return &Service{pool: pool}
}

// Ping verifies database connectivity.
func (s *Service) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// collectRecords drains rows into a slice of column-name keyed records.
func collectRecords(rows pgx.Rows) ([]Record, error) {
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var records []Record

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		rec := make(Record, len(fields))
		for i, fd := range fields {
			rec[fd.Name] = values[i]
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// queryRecord executes a statement expected to return at most one row
// (INSERT/UPDATE/DELETE ... RETURNING *) and maps it to a Record.
// Returns nil with no error when the statement matched no rows.
func queryRecord(ctx context.Context, db DBTX, query string, args ...any) (Record, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	records, err := collectRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}
