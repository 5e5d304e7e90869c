package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is one user's rating of a tool. A user holds at most one review per
// tool; re-submitting replaces the previous one.
type Review struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ToolID    uuid.UUID `json:"tool_id" db:"tool_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ReviewSummary is the aggregate returned alongside a tool's review list.
type ReviewSummary struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}
