package tool_db

import (
	"context"
	"testing"
	"time"

	"toolhub/domain"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userCtx(userID uuid.UUID) context.Context {
	return domain.SetUserContext(context.Background(), &domain.UserContext{
		UserID:    userID,
		Email:     "user@example.com",
		Role:      domain.UserRoleUser,
		LoginAt:   time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	})
}

func TestToolDBRepository_RegisterFavoriteTool(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &ToolDBRepository{pool: mock}

	userID := uuid.New()
	toolID := uuid.New()

	mock.ExpectExec("INSERT INTO favorite_tools.*ON CONFLICT.*DO NOTHING").
		WithArgs(userID, toolID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.RegisterFavoriteTool(userCtx(userID), toolID))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestToolDBRepository_RegisterFavoriteTool_NoUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &ToolDBRepository{pool: mock}

	err = repo.RegisterFavoriteTool(context.Background(), uuid.New())
	require.Error(t, err)
}

func TestToolDBRepository_FetchFavoriteToolsCursor(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &ToolDBRepository{pool: mock}

	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT.*FROM tools t.*INNER JOIN favorite_tools ft.*ORDER BY t.created_at DESC").
		WithArgs(userID, 20).
		WillReturnRows(pgxmock.NewRows(toolRowColumns()).
			AddRow(sampleToolRow(uuid.New(), "Favorite Tool", now, nil)...))

	tools, err := repo.FetchFavoriteToolsCursor(userCtx(userID), nil, 20)

	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "Favorite Tool", tools[0].CompanyName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestToolDBRepository_UpsertReview(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &ToolDBRepository{pool: mock}

	userID := uuid.New()
	toolID := uuid.New()

	mock.ExpectExec("INSERT INTO tool_reviews.*ON CONFLICT.*DO UPDATE").
		WithArgs(toolID, userID, 5, "great tool").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.UpsertReview(userCtx(userID), toolID, 5, "great tool"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestToolDBRepository_FetchReviewSummary(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &ToolDBRepository{pool: mock}

	toolID := uuid.New()
	mock.ExpectQuery("SELECT COALESCE\\(AVG\\(rating\\), 0\\), COUNT\\(\\*\\).*FROM tool_reviews").
		WithArgs(toolID).
		WillReturnRows(pgxmock.NewRows([]string{"avg", "count"}).AddRow(4.5, 10))

	summary, err := repo.FetchReviewSummary(context.Background(), toolID)

	require.NoError(t, err)
	assert.Equal(t, 4.5, summary.AverageRating)
	assert.Equal(t, 10, summary.ReviewCount)
	require.NoError(t, mock.ExpectationsWereMet())
}
