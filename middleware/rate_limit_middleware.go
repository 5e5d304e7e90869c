// Package middleware provides HTTP middleware components for the toolhub backend.
// It includes request identification, structured request logging, JWT
// authentication, and per-client rate limiting for the Echo web framework.
package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"

	"toolhub/config"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware returns a middleware that limits requests per client IP.
// The limit is expressed as requests per window with a burst allowance.
func RateLimitMiddleware(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	if !cfg.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	ratePerSecond := rate.Limit(float64(cfg.Requests) / cfg.Window.Seconds())

	limiters := make(map[string]*rate.Limiter)
	var mu sync.Mutex

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Health checks and metrics scrapes are never rate limited
			path := c.Request().URL.Path
			if path == "/v1/health" || path == "/metrics" {
				return next(c)
			}

			clientIP := getClientIP(c)
			if clientIP == "" {
				clientIP = "unknown"
			}

			mu.Lock()
			limiter, exists := limiters[clientIP]
			if !exists {
				limiter = rate.NewLimiter(ratePerSecond, cfg.Burst)
				limiters[clientIP] = limiter
			}
			mu.Unlock()

			if !limiter.Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
			}

			return next(c)
		}
	}
}

// getClientIP extracts client IP from various headers
func getClientIP(c echo.Context) string {
	// Check X-Real-IP header first
	if ip := c.Request().Header.Get("X-Real-IP"); ip != "" {
		if net.ParseIP(ip) != nil {
			return ip
		}
	}

	// Check X-Forwarded-For header
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		for _, ip := range ips {
			ip = strings.TrimSpace(ip)
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	// Fallback to RemoteAddr
	if ip, _, err := net.SplitHostPort(c.Request().RemoteAddr); err == nil {
		if net.ParseIP(ip) != nil {
			return ip
		}
	}

	return ""
}
