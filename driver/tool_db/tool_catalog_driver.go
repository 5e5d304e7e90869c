package tool_db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"toolhub/domain"
	"toolhub/utils/logger"

	"github.com/google/uuid"
)

const toolColumns = `id, company_name, logo_url, short_description, full_description, primary_task,
		applicable_tasks, pros, cons, pricing, featured_image_url, visit_website_url, detail_url,
		faqs, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTool(row rowScanner) (*domain.Tool, error) {
	var tool domain.Tool
	var faqsRaw []byte

	err := row.Scan(&tool.ID, &tool.CompanyName, &tool.LogoURL, &tool.ShortDescription,
		&tool.FullDescription, &tool.PrimaryTask, &tool.ApplicableTasks, &tool.Pros, &tool.Cons,
		&tool.Pricing, &tool.FeaturedImageURL, &tool.VisitWebsiteURL, &tool.DetailURL,
		&faqsRaw, &tool.CreatedAt, &tool.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if len(faqsRaw) > 0 {
		if err := json.Unmarshal(faqsRaw, &tool.Faqs); err != nil {
			return nil, fmt.Errorf("decoding faqs: %w", err)
		}
	}

	return &tool, nil
}

// faqsParam renders the faqs column value. A record without FAQ data stores
// NULL, not an empty object.
func faqsParam(faqs map[string]string) (any, error) {
	if faqs == nil {
		return nil, nil
	}
	return json.Marshal(faqs)
}

// FindToolByName looks up a catalog record by exact company name. Callers
// distinguish "not found" via pgx.ErrNoRows.
func (r *ToolDBRepository) FindToolByName(ctx context.Context, companyName string) (*domain.Tool, error) {
	if r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	query := `
		SELECT ` + toolColumns + `
		FROM tools
		WHERE company_name = $1
	`

	tool, err := scanTool(r.pool.QueryRow(ctx, query, companyName))
	if err != nil {
		return nil, err
	}
	return tool, nil
}

func (r *ToolDBRepository) InsertTool(ctx context.Context, record domain.ToolRecord) error {
	if r.pool == nil {
		return errors.New("database connection pool is nil")
	}

	faqs, err := faqsParam(record.Faqs)
	if err != nil {
		return fmt.Errorf("encoding faqs: %w", err)
	}

	query := `
		INSERT INTO tools (company_name, logo_url, short_description, full_description, primary_task,
			applicable_tasks, pros, cons, pricing, featured_image_url, visit_website_url, detail_url,
			faqs, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err = r.pool.Exec(ctx, query,
		record.CompanyName, record.LogoURL, record.ShortDescription, record.FullDescription,
		record.PrimaryTask, record.ApplicableTasks, record.Pros, record.Cons, record.Pricing,
		record.FeaturedImageURL, record.VisitWebsiteURL, record.DetailURL, faqs, record.UpdatedAt)
	if err != nil {
		logger.SafeErrorContext(ctx, "error inserting tool", "error", err, "company_name", record.CompanyName)
		return fmt.Errorf("error inserting tool: %w", err)
	}

	return nil
}

func (r *ToolDBRepository) UpdateToolByName(ctx context.Context, record domain.ToolRecord) error {
	if r.pool == nil {
		return errors.New("database connection pool is nil")
	}

	faqs, err := faqsParam(record.Faqs)
	if err != nil {
		return fmt.Errorf("encoding faqs: %w", err)
	}

	query := `
		UPDATE tools
		SET logo_url = $2, short_description = $3, full_description = $4, primary_task = $5,
			applicable_tasks = $6, pros = $7, cons = $8, pricing = $9, featured_image_url = $10,
			visit_website_url = $11, detail_url = $12, faqs = $13, updated_at = $14
		WHERE company_name = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		record.CompanyName, record.LogoURL, record.ShortDescription, record.FullDescription,
		record.PrimaryTask, record.ApplicableTasks, record.Pros, record.Cons, record.Pricing,
		record.FeaturedImageURL, record.VisitWebsiteURL, record.DetailURL, faqs, record.UpdatedAt)
	if err != nil {
		logger.SafeErrorContext(ctx, "error updating tool", "error", err, "company_name", record.CompanyName)
		return fmt.Errorf("error updating tool: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no tool updated for company name %q", record.CompanyName)
	}

	return nil
}

// FetchToolsCursor pages the directory newest-first. Nil cursor means the
// first page; category and pricing narrow the listing when non-empty.
func (r *ToolDBRepository) FetchToolsCursor(ctx context.Context, cursor *time.Time, limit int, category, pricing string) ([]*domain.Tool, error) {
	if r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	query := `
		SELECT ` + toolColumns + `
		FROM tools
		WHERE 1=1
	`
	args := []any{}

	if cursor != nil {
		args = append(args, *cursor)
		query += fmt.Sprintf(" AND created_at < $%d", len(args))
	}
	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(" AND primary_task = $%d", len(args))
	}
	if pricing != "" {
		args = append(args, pricing)
		query += fmt.Sprintf(" AND pricing = $%d", len(args))
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.SafeErrorContext(ctx, "error fetching tools cursor", "error", err)
		return nil, fmt.Errorf("error fetching tools: %w", err)
	}
	defer rows.Close()

	var tools []*domain.Tool
	for rows.Next() {
		tool, err := scanTool(rows)
		if err != nil {
			logger.SafeErrorContext(ctx, "error scanning tool row", "error", err)
			return nil, fmt.Errorf("error scanning tool row: %w", err)
		}
		tools = append(tools, tool)
	}

	return tools, rows.Err()
}

func (r *ToolDBRepository) FetchToolByID(ctx context.Context, id uuid.UUID) (*domain.Tool, error) {
	if r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	query := `
		SELECT ` + toolColumns + `
		FROM tools
		WHERE id = $1
	`

	tool, err := scanTool(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return tool, nil
}

// SearchTools matches the query case-insensitively against company name,
// short description and primary task.
func (r *ToolDBRepository) SearchTools(ctx context.Context, query string, offset, limit int) ([]*domain.Tool, error) {
	if r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	sql := `
		SELECT ` + toolColumns + `
		FROM tools
		WHERE company_name ILIKE '%' || $1 || '%'
			OR short_description ILIKE '%' || $1 || '%'
			OR primary_task ILIKE '%' || $1 || '%'
		ORDER BY company_name ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, sql, query, limit, offset)
	if err != nil {
		logger.SafeErrorContext(ctx, "error searching tools", "error", err, "query", query)
		return nil, fmt.Errorf("error searching tools: %w", err)
	}
	defer rows.Close()

	var tools []*domain.Tool
	for rows.Next() {
		tool, err := scanTool(rows)
		if err != nil {
			logger.SafeErrorContext(ctx, "error scanning search result", "error", err)
			return nil, fmt.Errorf("error scanning search result: %w", err)
		}
		tools = append(tools, tool)
	}

	return tools, rows.Err()
}

func (r *ToolDBRepository) UpdateToolByID(ctx context.Context, id uuid.UUID, record domain.ToolRecord) error {
	if r.pool == nil {
		return errors.New("database connection pool is nil")
	}

	faqs, err := faqsParam(record.Faqs)
	if err != nil {
		return fmt.Errorf("encoding faqs: %w", err)
	}

	query := `
		UPDATE tools
		SET company_name = $2, logo_url = $3, short_description = $4, full_description = $5,
			primary_task = $6, applicable_tasks = $7, pros = $8, cons = $9, pricing = $10,
			featured_image_url = $11, visit_website_url = $12, detail_url = $13, faqs = $14,
			updated_at = $15
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id,
		record.CompanyName, record.LogoURL, record.ShortDescription, record.FullDescription,
		record.PrimaryTask, record.ApplicableTasks, record.Pros, record.Cons, record.Pricing,
		record.FeaturedImageURL, record.VisitWebsiteURL, record.DetailURL, faqs, record.UpdatedAt)
	if err != nil {
		logger.SafeErrorContext(ctx, "error updating tool by id", "error", err, "tool_id", id)
		return fmt.Errorf("error updating tool: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no tool updated for id %s", id)
	}

	return nil
}

func (r *ToolDBRepository) DeleteTool(ctx context.Context, id uuid.UUID) error {
	if r.pool == nil {
		return errors.New("database connection pool is nil")
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM tools WHERE id = $1`, id)
	if err != nil {
		logger.SafeErrorContext(ctx, "error deleting tool", "error", err, "tool_id", id)
		return fmt.Errorf("error deleting tool: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no tool deleted for id %s", id)
	}

	return nil
}
