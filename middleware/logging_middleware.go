package middleware

import (
	"log/slog"
	"time"
	"toolhub/utils/logger"

	"github.com/labstack/echo/v4"
)

// LoggingMiddleware emits one start line and one completion line per
// request, leveled by response status. The completion line re-reads the
// request context so values added further down the chain, like the
// authenticated user id, make it into the log.
func LoggingMiddleware(baseLogger *slog.Logger) echo.MiddlewareFunc {
	contextLogger := logger.NewContextLogger(baseLogger)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			req := c.Request()

			// Health checks and metrics scrapes would drown out real traffic
			if req.URL.Path == "/v1/health" || req.URL.Path == "/metrics" {
				return next(c)
			}

			startAttrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"remote_addr", c.RealIP(),
				"user_agent", req.UserAgent(),
			}
			if req.URL.RawQuery != "" {
				startAttrs = append(startAttrs, "query", req.URL.RawQuery)
			}
			startCtx := req.Context()
			contextLogger.WithContext(startCtx).InfoContext(startCtx, "request started", startAttrs...)

			err := next(c)

			duration := time.Since(start)

			// Auth may have swapped the request, so fetch it again
			ctx := c.Request().Context()

			res := c.Response()
			status := res.Status
			size := res.Size

			// Log request completion with a level matching the response status
			logAttrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"route", c.Path(),
				"status", status,
				"duration_ms", duration.Milliseconds(),
				"response_size", size,
			}
			if status >= 500 {
				contextLogger.WithContext(ctx).ErrorContext(ctx, "request completed", logAttrs...)
			} else if status >= 400 {
				contextLogger.WithContext(ctx).WarnContext(ctx, "request completed", logAttrs...)
			} else {
				contextLogger.WithContext(ctx).InfoContext(ctx, "request completed", logAttrs...)
			}

			if err != nil {
				contextLogger.WithContext(ctx).ErrorContext(ctx, "request error",
					"method", req.Method,
					"path", req.URL.Path,
					"error", err,
					"duration_ms", duration.Milliseconds(),
				)
			}

			return err
		}
	}
}
