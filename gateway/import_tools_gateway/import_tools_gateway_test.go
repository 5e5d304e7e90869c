package import_tools_gateway

import (
	"context"
	"testing"

	"toolhub/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestNewImportToolsGateway_NilPool(t *testing.T) {
	var pool *pgxpool.Pool
	g := NewImportToolsGateway(pool)
	if g == nil {
		t.Fatal("gateway is nil")
	}
}

func TestImportToolsGateway_NilRepository(t *testing.T) {
	g := &ImportToolsGateway{toolDB: nil}

	if _, err := g.FindToolByName(context.Background(), "ChatGPT"); err == nil {
		t.Errorf("expected error when db is nil")
	}
	if err := g.InsertTool(context.Background(), domain.ToolRecord{}); err == nil {
		t.Errorf("expected error when db is nil")
	}
	if err := g.UpdateToolByName(context.Background(), domain.ToolRecord{}); err == nil {
		t.Errorf("expected error when db is nil")
	}
}
