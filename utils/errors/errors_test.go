package errors

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  ValidationError("query must not be empty", nil),
			want: "VALIDATION_ERROR: query must not be empty",
		},
		{
			name: "with cause",
			err:  DatabaseError("upsert failed", errors.New("connection reset"), nil),
			want: "DATABASE_ERROR: upsert failed (caused by: connection reset)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := ImportError("csv unreadable", cause, nil)
	require.True(t, errors.Is(err, cause))
}

func TestAppError_HTTPStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"validation", ValidationError("bad", nil), http.StatusBadRequest},
		{"not found", NotFoundError("missing", nil), http.StatusNotFound},
		{"forbidden", ForbiddenError("nope", nil), http.StatusForbidden},
		{"rate limit", RateLimitError("slow down", nil, nil), http.StatusTooManyRequests},
		{"import", ImportError("no file", nil, nil), http.StatusBadRequest},
		{"database", DatabaseError("down", nil, nil), http.StatusInternalServerError},
		{"unknown", UnknownError("boom", nil, nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatusCode())
		})
	}
}

func TestAppError_ToHTTPResponse(t *testing.T) {
	err := NotFoundError("tool not found", map[string]interface{}{"company_name": "ChatGPT"})
	resp := err.ToHTTPResponse()

	assert.Equal(t, "error", resp.Error)
	assert.Equal(t, "NOT_FOUND_ERROR", resp.Code)
	assert.Equal(t, "tool not found", resp.Message)
	assert.Equal(t, "ChatGPT", resp.Context["company_name"])
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	LogError(log, DatabaseError("lookup failed", errors.New("timeout"), map[string]interface{}{"table": "tools"}), "FindToolByName")
	assert.Contains(t, buf.String(), "DATABASE_ERROR")
	assert.Contains(t, buf.String(), "FindToolByName")
	assert.Contains(t, buf.String(), "timeout")

	buf.Reset()
	LogError(log, errors.New("plain"), "op")
	assert.Contains(t, buf.String(), "unknown error occurred")

	// nil logger must not panic
	LogError(nil, errors.New("plain"), "op")
}
