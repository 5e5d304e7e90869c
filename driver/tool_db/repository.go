package tool_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBPool is the subset of pgxpool.Pool the repository uses. pgxmock's pool
// satisfies it, which keeps driver tests off a live database.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type ToolDBRepository struct {
	pool DBPool
}

func NewToolDBRepository(pool *pgxpool.Pool) *ToolDBRepository {
	if pool == nil {
		return &ToolDBRepository{}
	}
	return &ToolDBRepository{pool: pool}
}
