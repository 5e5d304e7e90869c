package favorite_tool_port

import (
	"context"
	"time"

	"toolhub/domain"

	"github.com/google/uuid"
)

type FavoriteToolPort interface {
	RegisterFavoriteTool(ctx context.Context, toolID uuid.UUID) error
	DeleteFavoriteTool(ctx context.Context, toolID uuid.UUID) error
	FetchFavoriteToolsCursor(ctx context.Context, cursor *time.Time, limit int) ([]*domain.Tool, error)
}
