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

// RegisterFavoriteTool marks a tool as a favorite for the user in context.
// Registering the same tool twice is a no-op.
func (r *ToolDBRepository) RegisterFavoriteTool(ctx context.Context, toolID uuid.UUID) error {
	if r.pool == nil {
		return errors.New("database connection pool is nil")
	}

	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO favorite_tools (user_id, tool_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, tool_id) DO NOTHING
	`

	if _, err := r.pool.Exec(ctx, query, user.UserID, toolID); err != nil {
		logger.SafeErrorContext(ctx, "error registering favorite tool", "error", err, "tool_id", toolID)
		return fmt.Errorf("error registering favorite tool: %w", err)
	}

	return nil
}

func (r *ToolDBRepository) DeleteFavoriteTool(ctx context.Context, toolID uuid.UUID) error {
	if r.pool == nil {
		return errors.New("database connection pool is nil")
	}

	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return err
	}

	query := `DELETE FROM favorite_tools WHERE user_id = $1 AND tool_id = $2`

	if _, err := r.pool.Exec(ctx, query, user.UserID, toolID); err != nil {
		logger.SafeErrorContext(ctx, "error deleting favorite tool", "error", err, "tool_id", toolID)
		return fmt.Errorf("error deleting favorite tool: %w", err)
	}

	return nil
}

// FetchFavoriteToolsCursor pages the user's favorites newest tool first, the
// same cursor shape as the catalog list.
func (r *ToolDBRepository) FetchFavoriteToolsCursor(ctx context.Context, cursor *time.Time, limit int) ([]*domain.Tool, error) {
	if r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT t.id, t.company_name, t.logo_url, t.short_description, t.full_description, t.primary_task,
			t.applicable_tasks, t.pros, t.cons, t.pricing, t.featured_image_url, t.visit_website_url, t.detail_url,
			t.faqs, t.created_at, t.updated_at
		FROM tools t
		INNER JOIN favorite_tools ft ON ft.tool_id = t.id
		WHERE ft.user_id = $1
	`
	args := []any{user.UserID}

	if cursor != nil {
		args = append(args, *cursor)
		query += fmt.Sprintf(" AND t.created_at < $%d", len(args))
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY t.created_at DESC LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.SafeErrorContext(ctx, "error fetching favorite tools", "error", err)
		return nil, fmt.Errorf("error fetching favorite tools: %w", err)
	}
	defer rows.Close()

	var tools []*domain.Tool
	for rows.Next() {
		tool, err := scanTool(rows)
		if err != nil {
			logger.SafeErrorContext(ctx, "error scanning favorite tool", "error", err)
			return nil, fmt.Errorf("error scanning favorite tool: %w", err)
		}
		tools = append(tools, tool)
	}

	return tools, rows.Err()
}
