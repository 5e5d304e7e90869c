package rest

import (
	"net/http"
	"strconv"

	"toolhub/config"
	"toolhub/di"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func registerToolRoutes(v1 *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	tools := v1.Group("/tools")

	tools.GET("/fetch/cursor", handleFetchToolsCursor(container))
	tools.GET("/fetch/detail/:id", handleFetchToolDetail(container))
	tools.POST("/search", handleSearchTools(container))
	tools.GET("/suggestions", handleSearchSuggestions(container))
	tools.GET("/categories", handleFetchCategories(container, cfg))
	tools.GET("/pricing", handleFetchPricing(container, cfg))
}

func handleFetchToolsCursor(container *di.ApplicationComponents) echo.HandlerFunc {
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

		category := c.QueryParam("category")
		pricing := c.QueryParam("pricing")

		tools, err := container.FetchToolsUsecase.Execute(c.Request().Context(), cursor, limit, category, pricing)
		if err != nil {
			return handleError(c, err, "fetch_tools_cursor")
		}

		return c.JSON(http.StatusOK, ToolListResponse{
			Data:       tools,
			NextCursor: deriveNextCursor(tools),
		})
	}
}

func handleFetchToolDetail(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return handleValidationError(c, "Invalid tool id", "id", c.Param("id"))
		}

		tool, err := container.FetchToolDetailUsecase.Execute(c.Request().Context(), id)
		if err != nil {
			return handleError(c, err, "fetch_tool_detail")
		}

		return c.JSON(http.StatusOK, tool)
	}
}

func handleSearchTools(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req SearchToolsRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "Invalid search request", "body", nil)
		}

		results, hasMore, err := container.SearchToolsUsecase.Execute(c.Request().Context(), req.Query, req.Offset, req.Limit)
		if err != nil {
			return handleError(c, err, "search_tools")
		}

		return c.JSON(http.StatusOK, SearchToolsResponse{
			Results: results,
			HasMore: hasMore,
		})
	}
}

func handleSearchSuggestions(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		suggestions, visible := container.SuggestSearchUsecase.Execute(c.Request().Context(), c.QueryParam("q"))
		container.Metrics.RecordSuggestion()

		return c.JSON(http.StatusOK, SuggestionsResponse{
			Suggestions: suggestions,
			Visible:     visible,
		})
	}
}

func handleFetchCategories(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(int(cfg.Cache.VocabularyExpiry.Seconds())))

		categories, err := container.FetchVocabularyUsecase.Categories(c.Request().Context())
		if err != nil {
			return handleError(c, err, "fetch_categories")
		}

		return c.JSON(http.StatusOK, CategoriesResponse{Categories: categories})
	}
}

func handleFetchPricing(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(int(cfg.Cache.VocabularyExpiry.Seconds())))

		pricing, err := container.FetchVocabularyUsecase.Pricing(c.Request().Context())
		if err != nil {
			return handleError(c, err, "fetch_pricing")
		}

		return c.JSON(http.StatusOK, PricingResponse{Pricing: pricing})
	}
}
