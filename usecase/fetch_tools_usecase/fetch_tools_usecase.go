package fetch_tools_usecase

import (
	"context"
	"time"

	"toolhub/domain"
	"toolhub/port/tool_catalog_port"

	"github.com/google/uuid"
)

type FetchToolsUsecase struct {
	gateway tool_catalog_port.FetchToolsPort
}

func NewFetchToolsUsecase(gateway tool_catalog_port.FetchToolsPort) *FetchToolsUsecase {
	return &FetchToolsUsecase{gateway: gateway}
}

// Execute pages the directory newest-first, optionally narrowed by category
// and pricing.
func (u *FetchToolsUsecase) Execute(ctx context.Context, cursor *time.Time, limit int, category, pricing string) ([]*domain.Tool, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return u.gateway.FetchToolsCursor(ctx, cursor, limit, category, pricing)
}

type FetchToolDetailUsecase struct {
	gateway tool_catalog_port.FetchToolsPort
}

func NewFetchToolDetailUsecase(gateway tool_catalog_port.FetchToolsPort) *FetchToolDetailUsecase {
	return &FetchToolDetailUsecase{gateway: gateway}
}

func (u *FetchToolDetailUsecase) Execute(ctx context.Context, id uuid.UUID) (*domain.Tool, error) {
	return u.gateway.FetchToolByID(ctx, id)
}
