package tool_db

import (
	"context"
	"errors"
	"fmt"

	"toolhub/domain"
	"toolhub/utils/logger"
)

// FetchCategoryCounts returns the category vocabulary: each distinct primary
// task with how many tools carry it.
func (r *ToolDBRepository) FetchCategoryCounts(ctx context.Context) ([]domain.CategoryCount, error) {
	if r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	query := `
		SELECT primary_task, COUNT(*) AS tool_count
		FROM tools
		WHERE primary_task <> ''
		GROUP BY primary_task
		ORDER BY tool_count DESC, primary_task ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.SafeErrorContext(ctx, "error fetching category counts", "error", err)
		return nil, fmt.Errorf("error fetching category counts: %w", err)
	}
	defer rows.Close()

	var counts []domain.CategoryCount
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			logger.SafeErrorContext(ctx, "error scanning category count", "error", err)
			return nil, fmt.Errorf("error scanning category count: %w", err)
		}
		// The category name doubles as the filter identifier.
		c.ID = c.Name
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

// FetchDistinctPricing returns every pricing string present in the catalog.
func (r *ToolDBRepository) FetchDistinctPricing(ctx context.Context) ([]string, error) {
	if r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	query := `
		SELECT DISTINCT pricing
		FROM tools
		WHERE pricing <> ''
		ORDER BY pricing ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.SafeErrorContext(ctx, "error fetching distinct pricing", "error", err)
		return nil, fmt.Errorf("error fetching distinct pricing: %w", err)
	}
	defer rows.Close()

	var options []string
	for rows.Next() {
		var pricing string
		if err := rows.Scan(&pricing); err != nil {
			logger.SafeErrorContext(ctx, "error scanning pricing option", "error", err)
			return nil, fmt.Errorf("error scanning pricing option: %w", err)
		}
		options = append(options, pricing)
	}

	return options, rows.Err()
}
