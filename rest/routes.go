package rest

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"toolhub/config"
	"toolhub/di"
	middleware_custom "toolhub/middleware"
	"toolhub/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// 1. Request ID middleware first so every log line can be correlated
	e.Use(middleware_custom.RequestIDMiddleware())

	// 2. Recovery middleware early to catch panics
	e.Use(middleware.Recover())

	// 3. Security headers
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
	}))

	// 4. CORS middleware. Admin paths are skipped here so the import
	// group's permissive CORS policy handles their preflights itself.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/v1/admin")
		},
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Cache-Control", "Authorization", "X-Requested-With"},
		MaxAge:       86400, // Cache preflight for 24 hours
	}))

	// 5. Rate limiting per client IP
	e.Use(middleware_custom.RateLimitMiddleware(cfg.RateLimit))

	// 6. Request timeout
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.ReadTimeout,
	}))

	// 7. Logging middleware
	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	// 8. Request metrics
	e.Use(metricsMiddleware(container))

	// 9. Compression middleware last
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/v1/health" || c.Path() == "/metrics"
		},
	}))

	authMiddleware := middleware_custom.NewAuthMiddleware(logger.Logger, cfg)

	v1 := e.Group("/v1")

	v1.GET("/health", handleHealth())
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(container.Metrics.Registry, promhttp.HandlerOpts{})))

	// Public catalog endpoints
	registerToolRoutes(v1, container, cfg)

	// Authenticated per-user endpoints
	favorites := v1.Group("/tools/favorites", authMiddleware.RequireAuth())
	registerFavoriteRoutes(favorites, container)

	reviews := v1.Group("/tools/reviews", authMiddleware.RequireAuth())
	registerReviewRoutes(reviews, container)

	// Admin endpoints. The import group additionally accepts cross-origin
	// uploads from any origin, matching the importer's upload widget contract.
	admin := v1.Group("/admin", importCORS(), authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
	registerImportRoutes(admin, container, cfg)
	registerAdminToolRoutes(admin, container, cfg)
}

func importCORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.POST, echo.OPTIONS},
		AllowHeaders: []string{"authorization", "x-client-info", "apikey", "content-type"},
	})
}

func metricsMiddleware(container *di.ApplicationComponents) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().URL.Path == "/metrics" {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			container.Metrics.ObserveRequest(
				c.Request().Method,
				c.Path(),
				strconv.Itoa(c.Response().Status),
				time.Since(start),
			)
			return err
		}
	}
}

func handleHealth() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	}
}
