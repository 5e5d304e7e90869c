package review_port

import (
	"context"
	"time"

	"toolhub/domain"

	"github.com/google/uuid"
)

type ReviewPort interface {
	SubmitReview(ctx context.Context, toolID uuid.UUID, rating int, comment string) error
	FetchReviewsByTool(ctx context.Context, toolID uuid.UUID, cursor *time.Time, limit int) ([]*domain.Review, error)
	FetchReviewSummary(ctx context.Context, toolID uuid.UUID) (*domain.ReviewSummary, error)
}
