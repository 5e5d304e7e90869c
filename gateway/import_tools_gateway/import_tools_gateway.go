package import_tools_gateway

import (
	"context"
	"errors"

	"toolhub/domain"
	"toolhub/driver/tool_db"
	"toolhub/utils/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ImportToolsGateway struct {
	toolDB *tool_db.ToolDBRepository
}

func NewImportToolsGateway(pool *pgxpool.Pool) *ImportToolsGateway {
	return &ImportToolsGateway{toolDB: tool_db.NewToolDBRepository(pool)}
}

// FindToolByName maps a missed lookup to domain.ErrToolNotFound so the
// importer can branch between insert and update.
func (g *ImportToolsGateway) FindToolByName(ctx context.Context, companyName string) (*domain.Tool, error) {
	tool, err := g.toolDB.FindToolByName(ctx, companyName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrToolNotFound
		}
		logger.SafeErrorContext(ctx, "error looking up tool by name", "error", err, "company_name", companyName)
		return nil, err
	}

	return tool, nil
}

func (g *ImportToolsGateway) InsertTool(ctx context.Context, record domain.ToolRecord) error {
	return g.toolDB.InsertTool(ctx, record)
}

func (g *ImportToolsGateway) UpdateToolByName(ctx context.Context, record domain.ToolRecord) error {
	return g.toolDB.UpdateToolByName(ctx, record)
}
