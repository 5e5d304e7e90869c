package tool_db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"toolhub/domain"
	"toolhub/utils/logger"

	"github.com/google/uuid"
)

// UpsertReview stores the user's review of a tool, replacing any previous one.
func (r *ToolDBRepository) UpsertReview(ctx context.Context, toolID uuid.UUID, rating int, comment string) error {
	if r.pool == nil {
		return errors.New("database connection pool is nil")
	}

	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO tool_reviews (tool_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (tool_id, user_id)
		DO UPDATE SET rating = EXCLUDED.rating, comment = EXCLUDED.comment, updated_at = NOW()
	`

	if _, err := r.pool.Exec(ctx, query, toolID, user.UserID, rating, comment); err != nil {
		logger.SafeErrorContext(ctx, "error upserting review", "error", err, "tool_id", toolID)
		return fmt.Errorf("error upserting review: %w", err)
	}

	return nil
}

func (r *ToolDBRepository) FetchReviewsByTool(ctx context.Context, toolID uuid.UUID, cursor *time.Time, limit int) ([]*domain.Review, error) {
	if r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	query := `
		SELECT id, tool_id, user_id, rating, comment, created_at, updated_at
		FROM tool_reviews
		WHERE tool_id = $1
	`
	args := []any{toolID}

	if cursor != nil {
		args = append(args, *cursor)
		query += fmt.Sprintf(" AND created_at < $%d", len(args))
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.SafeErrorContext(ctx, "error fetching reviews", "error", err, "tool_id", toolID)
		return nil, fmt.Errorf("error fetching reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*domain.Review
	for rows.Next() {
		var review domain.Review
		err := rows.Scan(&review.ID, &review.ToolID, &review.UserID, &review.Rating,
			&review.Comment, &review.CreatedAt, &review.UpdatedAt)
		if err != nil {
			logger.SafeErrorContext(ctx, "error scanning review", "error", err)
			return nil, fmt.Errorf("error scanning review: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, rows.Err()
}

func (r *ToolDBRepository) FetchReviewSummary(ctx context.Context, toolID uuid.UUID) (*domain.ReviewSummary, error) {
	if r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	query := `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM tool_reviews
		WHERE tool_id = $1
	`

	var summary domain.ReviewSummary
	err := r.pool.QueryRow(ctx, query, toolID).Scan(&summary.AverageRating, &summary.ReviewCount)
	if err != nil {
		logger.SafeErrorContext(ctx, "error fetching review summary", "error", err, "tool_id", toolID)
		return nil, fmt.Errorf("error fetching review summary: %w", err)
	}

	return &summary, nil
}
