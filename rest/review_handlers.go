package rest

import (
	"net/http"
	"strconv"

	"toolhub/di"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func registerReviewRoutes(reviews *echo.Group, container *di.ApplicationComponents) {
	reviews.POST("", handleSubmitReview(container))
	reviews.GET("/:tool_id", handleFetchReviews(container))
}

func handleSubmitReview(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req SubmitReviewRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "Invalid review request", "body", nil)
		}

		toolID, err := uuid.Parse(req.ToolID)
		if err != nil {
			return handleValidationError(c, "Invalid tool id", "tool_id", req.ToolID)
		}

		if err := container.ReviewToolUsecase.Submit(c.Request().Context(), toolID, req.Rating, req.Comment); err != nil {
			return handleError(c, err, "submit_review")
		}

		return c.JSON(http.StatusOK, MessageResponse{Message: "review submitted"})
	}
}

func handleFetchReviews(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		toolID, err := uuid.Parse(c.Param("tool_id"))
		if err != nil {
			return handleValidationError(c, "Invalid tool id", "tool_id", c.Param("tool_id"))
		}

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

		reviews, summary, err := container.ReviewToolUsecase.List(c.Request().Context(), toolID, cursor, limit)
		if err != nil {
			return handleError(c, err, "fetch_reviews")
		}

		return c.JSON(http.StatusOK, ReviewListResponse{
			Reviews: reviews,
			Summary: summary,
		})
	}
}
