package review_gateway

import (
	"context"
	"time"

	"toolhub/domain"
	"toolhub/driver/tool_db"
	"toolhub/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewGateway struct {
	toolDB *tool_db.ToolDBRepository
}

func NewReviewGateway(pool *pgxpool.Pool) *ReviewGateway {
	return &ReviewGateway{toolDB: tool_db.NewToolDBRepository(pool)}
}

func (g *ReviewGateway) SubmitReview(ctx context.Context, toolID uuid.UUID, rating int, comment string) error {
	if err := g.toolDB.UpsertReview(ctx, toolID, rating, comment); err != nil {
		logger.SafeErrorContext(ctx, "failed to submit review", "error", err, "tool_id", toolID)
		return err
	}

	return nil
}

func (g *ReviewGateway) FetchReviewsByTool(ctx context.Context, toolID uuid.UUID, cursor *time.Time, limit int) ([]*domain.Review, error) {
	return g.toolDB.FetchReviewsByTool(ctx, toolID, cursor, limit)
}

func (g *ReviewGateway) FetchReviewSummary(ctx context.Context, toolID uuid.UUID) (*domain.ReviewSummary, error) {
	return g.toolDB.FetchReviewSummary(ctx, toolID)
}
