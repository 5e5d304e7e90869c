package review_tool_usecase

import (
	"context"
	"time"

	"toolhub/domain"
	"toolhub/port/review_port"
	apperrors "toolhub/utils/errors"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type ReviewToolUsecase struct {
	gateway   review_port.ReviewPort
	sanitizer *bluemonday.Policy
}

func NewReviewToolUsecase(gateway review_port.ReviewPort) *ReviewToolUsecase {
	return &ReviewToolUsecase{
		gateway:   gateway,
		// Review comments are plain text; strip all markup.
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (u *ReviewToolUsecase) Submit(ctx context.Context, toolID uuid.UUID, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return apperrors.ValidationError("rating must be between 1 and 5", map[string]interface{}{
			"rating": rating,
		})
	}

	return u.gateway.SubmitReview(ctx, toolID, rating, u.sanitizer.Sanitize(comment))
}

func (u *ReviewToolUsecase) List(ctx context.Context, toolID uuid.UUID, cursor *time.Time, limit int) ([]*domain.Review, *domain.ReviewSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	reviews, err := u.gateway.FetchReviewsByTool(ctx, toolID, cursor, limit)
	if err != nil {
		return nil, nil, err
	}

	summary, err := u.gateway.FetchReviewSummary(ctx, toolID)
	if err != nil {
		return nil, nil, err
	}

	return reviews, summary, nil
}
