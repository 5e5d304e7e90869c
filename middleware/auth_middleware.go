package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"toolhub/config"
	"toolhub/domain"
	"toolhub/utils/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const userContextKey = "user"

var (
	errMissingToken    = errors.New("missing bearer token")
	errInvalidToken    = errors.New("invalid bearer token")
	errInvalidClaims   = errors.New("invalid claims")
	errInvalidIssuer   = errors.New("invalid issuer")
	errInvalidAudience = errors.New("invalid audience")
)

// ToolhubClaims represents the JWT claims issued by the auth hub
type ToolhubClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Sid   string `json:"sid"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates JWT bearer tokens and attaches the user context
type AuthMiddleware struct {
	logger   *slog.Logger
	secret   []byte
	issuer   string
	audience string
}

// NewAuthMiddleware creates a new JWT authentication middleware
func NewAuthMiddleware(logger *slog.Logger, cfg *config.Config) *AuthMiddleware {
	secret := []byte(cfg.Auth.TokenSecret)
	if len(secret) == 0 {
		if logger != nil {
			logger.Warn("AUTH_TOKEN_SECRET not set, authenticated routes will deny all requests")
		}
	}

	return &AuthMiddleware{
		logger:   logger,
		secret:   secret,
		issuer:   cfg.Auth.TokenIssuer,
		audience: cfg.Auth.TokenAudience,
	}
}

// RequireAuth ensures that a valid bearer token is present before allowing the request to proceed
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userCtx, err := m.validateToken(c)
			if err != nil {
				switch {
				case errors.Is(err, errMissingToken):
					return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
				case errors.Is(err, errInvalidToken), errors.Is(err, errInvalidClaims):
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid bearer token")
				case errors.Is(err, errInvalidIssuer), errors.Is(err, errInvalidAudience):
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token issuer or audience")
				default:
					if m.logger != nil {
						m.logger.Error("token validation error", "error", err)
					}
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
				}
			}

			// Attach user context to the request, and the user id for the
			// completion log line.
			ctx := domain.SetUserContext(c.Request().Context(), userCtx)
			ctx = context.WithValue(ctx, logger.UserIDKey, userCtx.UserID.String())
			c.SetRequest(c.Request().WithContext(ctx))
			c.Set(userContextKey, userCtx)

			return next(c)
		}
	}
}

// RequireAdmin ensures the authenticated user holds the admin role.
// It must run after RequireAuth in the middleware chain.
func (m *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := domain.GetUserFromContext(c.Request().Context())
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			if !user.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "admin role required")
			}

			return next(c)
		}
	}
}

// validateToken validates the bearer token and returns the user context
func (m *AuthMiddleware) validateToken(c echo.Context) (*domain.UserContext, error) {
	tokenStr := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if tokenStr == "" {
		return nil, errMissingToken
	}

	if len(m.secret) == 0 {
		return nil, fmt.Errorf("token secret not configured")
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &ToolhubClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidToken, err)
	}

	if !parsed.Valid {
		return nil, errInvalidToken
	}

	claims, ok := parsed.Claims.(*ToolhubClaims)
	if !ok {
		return nil, errInvalidClaims
	}

	// Verify issuer
	if claims.Issuer != m.issuer {
		return nil, errInvalidIssuer
	}

	// Verify audience
	audienceMatch := false
	for _, aud := range claims.Audience {
		if aud == m.audience {
			audienceMatch = true
			break
		}
	}
	if !audienceMatch {
		return nil, errInvalidAudience
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid subject: %v", errInvalidClaims, err)
	}

	role := domain.UserRole(claims.Role)
	if role == "" {
		role = domain.UserRoleUser
	}

	loginAt := time.Now()
	if claims.IssuedAt != nil {
		loginAt = claims.IssuedAt.Time
	}

	expiresAt := time.Now().Add(24 * time.Hour)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &domain.UserContext{
		UserID:    userID,
		Email:     claims.Email,
		Role:      role,
		SessionID: claims.Sid,
		LoginAt:   loginAt,
		ExpiresAt: expiresAt,
	}, nil
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// GetUserContext extracts the user context stored by RequireAuth
func GetUserContext(c echo.Context) (*domain.UserContext, error) {
	user := c.Get(userContextKey)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	userContext, ok := user.(*domain.UserContext)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "invalid user context")
	}

	return userContext, nil
}
