package tool_catalog_gateway

import (
	"context"
	"errors"
	"time"

	"toolhub/domain"
	"toolhub/driver/tool_db"
	"toolhub/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ToolCatalogGateway struct {
	toolDB *tool_db.ToolDBRepository
}

func NewToolCatalogGateway(pool *pgxpool.Pool) *ToolCatalogGateway {
	return &ToolCatalogGateway{toolDB: tool_db.NewToolDBRepository(pool)}
}

func (g *ToolCatalogGateway) FetchToolsCursor(ctx context.Context, cursor *time.Time, limit int, category, pricing string) ([]*domain.Tool, error) {
	return g.toolDB.FetchToolsCursor(ctx, cursor, limit, category, pricing)
}

func (g *ToolCatalogGateway) FetchToolByID(ctx context.Context, id uuid.UUID) (*domain.Tool, error) {
	tool, err := g.toolDB.FetchToolByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrToolNotFound
		}
		logger.SafeErrorContext(ctx, "error fetching tool detail", "error", err, "tool_id", id)
		return nil, err
	}

	return tool, nil
}

func (g *ToolCatalogGateway) SearchTools(ctx context.Context, query string, offset, limit int) ([]*domain.Tool, error) {
	return g.toolDB.SearchTools(ctx, query, offset, limit)
}

func (g *ToolCatalogGateway) CreateTool(ctx context.Context, record domain.ToolRecord) error {
	return g.toolDB.InsertTool(ctx, record)
}

func (g *ToolCatalogGateway) UpdateTool(ctx context.Context, id uuid.UUID, record domain.ToolRecord) error {
	return g.toolDB.UpdateToolByID(ctx, id, record)
}

func (g *ToolCatalogGateway) DeleteTool(ctx context.Context, id uuid.UUID) error {
	return g.toolDB.DeleteTool(ctx, id)
}
