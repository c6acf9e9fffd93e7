package catalog

import (
	"context"
	"fmt"
)

// Category is a read-only merchandise category.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BestSellers returns the best_seller rows verbatim. The row shape is
// opaque to this service and passed through as-is.
func (s *Service) BestSellers(ctx context.Context) ([]Record, error) {
	rows, err := s.pool.Query(ctx, "SELECT * FROM best_seller")
	if err != nil {
		return nil, fmt.Errorf("list best sellers: %w", err)
	}

	records, err := collectRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("list best sellers: %w", err)
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// Categories returns all categories ordered by identifier.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	rows, err := s.pool.Query(ctx, "SELECT id, name FROM categories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
