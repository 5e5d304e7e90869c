package import_tools_port

import (
	"context"

	"toolhub/domain"
)

// ImportToolsPort is the data-access surface of the CSV importer. Lookup and
// write are separate so the usecase owns the upsert decision and can attribute
// either failure to the row.
type ImportToolsPort interface {
	FindToolByName(ctx context.Context, companyName string) (*domain.Tool, error)
	InsertTool(ctx context.Context, record domain.ToolRecord) error
	UpdateToolByName(ctx context.Context, record domain.ToolRecord) error
}
