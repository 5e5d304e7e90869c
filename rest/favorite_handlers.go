package rest

import (
	"net/http"
	"strconv"

	"toolhub/di"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func registerFavoriteRoutes(favorites *echo.Group, container *di.ApplicationComponents) {
	favorites.POST("", handleRegisterFavorite(container))
	favorites.DELETE("/:id", handleRemoveFavorite(container))
	favorites.GET("/cursor", handleFetchFavoritesCursor(container))
}

func handleRegisterFavorite(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req RegisterFavoriteRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "Invalid favorite request", "body", nil)
		}

		toolID, err := uuid.Parse(req.ToolID)
		if err != nil {
			return handleValidationError(c, "Invalid tool id", "tool_id", req.ToolID)
		}

		if err := container.FavoriteToolUsecase.Register(c.Request().Context(), toolID); err != nil {
			return handleError(c, err, "register_favorite")
		}

		return c.JSON(http.StatusOK, MessageResponse{Message: "favorite registered"})
	}
}

func handleRemoveFavorite(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		toolID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return handleValidationError(c, "Invalid tool id", "id", c.Param("id"))
		}

		if err := container.FavoriteToolUsecase.Remove(c.Request().Context(), toolID); err != nil {
			return handleError(c, err, "remove_favorite")
		}

		return c.JSON(http.StatusOK, MessageResponse{Message: "favorite removed"})
	}
}

func handleFetchFavoritesCursor(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		cursor, err := parseCursor(c.QueryParam("cursor"))
		if err != nil {
			return handleValidationError(c, "Invalid cursor parameter", "cursor", c.QueryParam("cursor"))
		}

		limit := 0
		if limitStr := c.QueryParam("limit"); limitStr != "" {
			limit, err = strconv.Atoi(limitStr)
			if err != nil {
				return handleValidationError(c, "Invalid limit parameter", "limit", limitStr)
			}
		}

		tools, err := container.FavoriteToolUsecase.List(c.Request().Context(), cursor, limit)
		if err != nil {
			return handleError(c, err, "fetch_favorites_cursor")
		}

		return c.JSON(http.StatusOK, ToolListResponse{
			Data:       tools,
			NextCursor: deriveNextCursor(tools),
		})
	}
}
