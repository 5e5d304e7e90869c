package tool_catalog_port

import (
	"context"
	"time"

	"toolhub/domain"

	"github.com/google/uuid"
)

type FetchToolsPort interface {
	FetchToolsCursor(ctx context.Context, cursor *time.Time, limit int, category, pricing string) ([]*domain.Tool, error)
	FetchToolByID(ctx context.Context, id uuid.UUID) (*domain.Tool, error)
}

type SearchToolsPort interface {
	SearchTools(ctx context.Context, query string, offset, limit int) ([]*domain.Tool, error)
}

// RegisterToolPort covers the admin back-office CRUD surface.
type RegisterToolPort interface {
	CreateTool(ctx context.Context, record domain.ToolRecord) error
	UpdateTool(ctx context.Context, id uuid.UUID, record domain.ToolRecord) error
	DeleteTool(ctx context.Context, id uuid.UUID) error
}
