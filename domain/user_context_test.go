package domain

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() *UserContext {
	return &UserContext{
		UserID:    uuid.New(),
		Email:     "user@example.com",
		Role:      UserRoleUser,
		SessionID: "sess-1",
		LoginAt:   time.Now(),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
}

func TestUserContext_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*UserContext)
		want   bool
	}{
		{"valid", func(*UserContext) {}, true},
		{"nil user id", func(u *UserContext) { u.UserID = uuid.Nil }, false},
		{"empty email", func(u *UserContext) { u.Email = "" }, false},
		{"expired", func(u *UserContext) { u.ExpiresAt = time.Now().Add(-time.Minute) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(u)
			assert.Equal(t, tt.want, u.IsValid())
		})
	}
}

func TestUserContext_IsAdmin(t *testing.T) {
	u := validUser()
	assert.False(t, u.IsAdmin())
	u.Role = UserRoleAdmin
	assert.True(t, u.IsAdmin())
}

func TestGetUserFromContext(t *testing.T) {
	_, err := GetUserFromContext(context.Background())
	require.Error(t, err)

	u := validUser()
	ctx := SetUserContext(context.Background(), u)
	got, err := GetUserFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, u.UserID, got.UserID)

	expired := validUser()
	expired.ExpiresAt = time.Now().Add(-time.Hour)
	_, err = GetUserFromContext(SetUserContext(context.Background(), expired))
	require.Error(t, err)
}
