package catalog

import (
	"context"
	"fmt"
)

// ProductCounts holds per-table row counts and the grand total.
type ProductCounts struct {
	Total    int64            `json:"total_products"`
	PerTable map[string]int64 `json:"per_table"`
}

// ListProducts fetches every row from every registered category table,
// keyed by table name. Each record carries a derived images list. A
// failure on any single table aborts the whole listing; there are no
// partial results.
func (s *Service) ListProducts(ctx context.Context) (map[string][]Record, error) {
	data := make(map[string][]Record, TableCount())

	for _, t := range Tables() {
		rows, err := s.pool.Query(ctx, "SELECT * FROM "+quoteIdentifier(t.Name))
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", t.Name, err)
		}

		records, err := collectRecords(rows)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", t.Name, err)
		}

		for _, rec := range records {
			AttachImages(rec)
		}
		if records == nil {
			records = []Record{}
		}
		data[t.Name] = records
	}

	return data, nil
}

// CreateProduct inserts a new row with exactly the supplied columns and
// returns the full inserted row, images attached. Image fields in the
// payload are normalized before the insert.
func (s *Service) CreateProduct(ctx context.Context, table string, fields map[string]any) (Record, error) {
	if _, ok := Lookup(table); !ok {
		return nil, ErrUnknownTable
	}
	if len(fields) == 0 {
		return nil, ErrEmptyPayload
	}

	ApplyImageFields(fields)

	query, args, err := buildInsert(table, fields)
	if err != nil {
		return nil, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	rec, err := queryRecord(ctx, tx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", table, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	AttachImages(rec)
	return rec, nil
}

// UpdateProduct applies a partial update over exactly the supplied
// columns and returns the updated row. An empty payload is a validation
// error; a missing identifier reports ErrNotFound.
func (s *Service) UpdateProduct(ctx context.Context, table string, id int64, fields map[string]any) (Record, error) {
	if _, ok := Lookup(table); !ok {
		return nil, ErrUnknownTable
	}
	if len(fields) == 0 {
		return nil, ErrEmptyPayload
	}

	ApplyImageFields(fields)

	query, args, err := buildUpdate(table, id, fields)
	if err != nil {
		return nil, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	rec, err := queryRecord(ctx, tx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", table, err)
	}
	if rec == nil {
		return nil, ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	AttachImages(rec)
	return rec, nil
}

// DeleteProduct removes a row by identifier and returns the deleted row.
func (s *Service) DeleteProduct(ctx context.Context, table string, id int64) (Record, error) {
	if _, ok := Lookup(table); !ok {
		return nil, ErrUnknownTable
	}

	query, args := buildDelete(table, id)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	rec, err := queryRecord(ctx, tx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("delete from %s: %w", table, err)
	}
	if rec == nil {
		return nil, ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	AttachImages(rec)
	return rec, nil
}

// CountProducts returns the row count of every registered category
// table and the grand total.
func (s *Service) CountProducts(ctx context.Context) (ProductCounts, error) {
	counts := ProductCounts{PerTable: make(map[string]int64, TableCount())}

	for _, t := range Tables() {
		var n int64
		query := "SELECT COUNT(*) FROM " + quoteIdentifier(t.Name)
		if err := s.pool.QueryRow(ctx, query).Scan(&n); err != nil {
			return ProductCounts{}, fmt.Errorf("count %s: %w", t.Name, err)
		}
		counts.PerTable[t.Name] = n
		counts.Total += n
	}

	return counts, nil
}
