package favorite_tool_usecase

import (
	"context"
	"time"

	"toolhub/domain"
	"toolhub/port/favorite_tool_port"

	"github.com/google/uuid"
)

type FavoriteToolUsecase struct {
	gateway favorite_tool_port.FavoriteToolPort
}

func NewFavoriteToolUsecase(gateway favorite_tool_port.FavoriteToolPort) *FavoriteToolUsecase {
	return &FavoriteToolUsecase{gateway: gateway}
}

func (u *FavoriteToolUsecase) Register(ctx context.Context, toolID uuid.UUID) error {
	return u.gateway.RegisterFavoriteTool(ctx, toolID)
}

func (u *FavoriteToolUsecase) Remove(ctx context.Context, toolID uuid.UUID) error {
	return u.gateway.DeleteFavoriteTool(ctx, toolID)
}

func (u *FavoriteToolUsecase) List(ctx context.Context, cursor *time.Time, limit int) ([]*domain.Tool, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return u.gateway.FetchFavoriteToolsCursor(ctx, cursor, limit)
}
