package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role of a user
type UserRole string

const (
	UserRoleUser     UserRole = "user"
	UserRoleAdmin    UserRole = "admin"
	UserRoleReadOnly UserRole = "readonly"
)

// UserContext represents the authenticated user context for requests
type UserContext struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	SessionID string    `json:"session_id"`
	LoginAt   time.Time `json:"login_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsValid checks if the user context is valid and not expired
func (uc *UserContext) IsValid() bool {
	return uc.UserID != uuid.Nil &&
		uc.Email != "" &&
		uc.ExpiresAt.After(time.Now())
}

// IsAdmin checks if the user has admin role
func (uc *UserContext) IsAdmin() bool {
	return uc.Role == UserRoleAdmin
}

type contextKey string

const UserContextKey contextKey = "user_context"

func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(UserContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, fmt.Errorf("user context not found")
	}

	if !user.IsValid() {
		return nil, fmt.Errorf("invalid user context")
	}

	return user, nil
}

func SetUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}
