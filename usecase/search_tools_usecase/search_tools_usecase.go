package search_tools_usecase

import (
	"context"
	"errors"
	"strings"

	"toolhub/domain"
	"toolhub/port/tool_catalog_port"
)

type SearchToolsUsecase struct {
	gateway tool_catalog_port.SearchToolsPort
}

func NewSearchToolsUsecase(gateway tool_catalog_port.SearchToolsPort) *SearchToolsUsecase {
	return &SearchToolsUsecase{gateway: gateway}
}

// Execute searches the catalog and reports whether another page exists. It
// fetches one extra row past the limit to decide hasMore without a count query.
func (u *SearchToolsUsecase) Execute(ctx context.Context, query string, offset, limit int) ([]*domain.Tool, bool, error) {
	if strings.TrimSpace(query) == "" {
		return nil, false, errors.New("search query cannot be empty")
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	tools, err := u.gateway.SearchTools(ctx, query, offset, limit+1)
	if err != nil {
		return nil, false, err
	}

	hasMore := len(tools) > limit
	if hasMore {
		tools = tools[:limit]
	}

	return tools, hasMore, nil
}
