package rest

import (
	"time"

	"toolhub/domain"
	"toolhub/utils/errors"
	"toolhub/utils/logger"

	"github.com/labstack/echo/v4"
)

// handleError converts errors to appropriate HTTP responses
func handleError(c echo.Context, err error, operation string) error {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.UnknownError("internal server error", err, map[string]interface{}{
			"path":   c.Request().URL.Path,
			"method": c.Request().Method,
		})
	}

	logger.SafeErrorContext(c.Request().Context(), "request handler error",
		"error", appErr.Error(),
		"error_code", string(appErr.Code),
		"operation", operation,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
}

// handleValidationError creates a validation error response
func handleValidationError(c echo.Context, message string, field string, value interface{}) error {
	validationErr := errors.ValidationError(message, map[string]interface{}{
		"field":  field,
		"value":  value,
		"path":   c.Request().URL.Path,
		"method": c.Request().Method,
	})

	logger.SafeWarnContext(c.Request().Context(), "request validation error",
		"error", validationErr.Error(),
		"field", field,
		"path", c.Request().URL.Path,
	)

	return c.JSON(validationErr.HTTPStatusCode(), validationErr.ToHTTPResponse())
}

// parseCursor parses an optional RFC3339 cursor query parameter.
func parseCursor(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// deriveNextCursor derives the pagination cursor from the last tool of a page.
func deriveNextCursor(tools []*domain.Tool) string {
	if len(tools) == 0 {
		return ""
	}
	return tools[len(tools)-1].CreatedAt.Format(time.RFC3339)
}
