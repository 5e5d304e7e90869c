package favorite_tool_gateway

import (
	"context"
	"time"

	"toolhub/domain"
	"toolhub/driver/tool_db"
	"toolhub/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoriteToolGateway struct {
	toolDB *tool_db.ToolDBRepository
}

func NewFavoriteToolGateway(pool *pgxpool.Pool) *FavoriteToolGateway {
	return &FavoriteToolGateway{toolDB: tool_db.NewToolDBRepository(pool)}
}

func (g *FavoriteToolGateway) RegisterFavoriteTool(ctx context.Context, toolID uuid.UUID) error {
	if err := g.toolDB.RegisterFavoriteTool(ctx, toolID); err != nil {
		logger.SafeErrorContext(ctx, "failed to register favorite tool", "error", err, "tool_id", toolID)
		return err
	}

	logger.SafeInfoContext(ctx, "favorite tool registered", "tool_id", toolID)
	return nil
}

func (g *FavoriteToolGateway) DeleteFavoriteTool(ctx context.Context, toolID uuid.UUID) error {
	return g.toolDB.DeleteFavoriteTool(ctx, toolID)
}

func (g *FavoriteToolGateway) FetchFavoriteToolsCursor(ctx context.Context, cursor *time.Time, limit int) ([]*domain.Tool, error) {
	return g.toolDB.FetchFavoriteToolsCursor(ctx, cursor, limit)
}
