package rest

import (
	"net/http"

	"toolhub/config"
	"toolhub/di"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func registerAdminToolRoutes(admin *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	admin.POST("/tools", handleCreateTool(container))
	admin.PUT("/tools/:id", handleUpdateTool(container))
	admin.DELETE("/tools/:id", handleDeleteTool(container))
}

func handleCreateTool(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload ToolPayload
		if err := c.Bind(&payload); err != nil {
			return handleValidationError(c, "Invalid tool payload", "body", nil)
		}

		if err := container.RegisterToolUsecase.Create(c.Request().Context(), payload.toRecord()); err != nil {
			return handleError(c, err, "create_tool")
		}

		return c.JSON(http.StatusCreated, MessageResponse{Message: "tool created"})
	}
}

func handleUpdateTool(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return handleValidationError(c, "Invalid tool id", "id", c.Param("id"))
		}

		var payload ToolPayload
		if err := c.Bind(&payload); err != nil {
			return handleValidationError(c, "Invalid tool payload", "body", nil)
		}

		if err := container.RegisterToolUsecase.Update(c.Request().Context(), id, payload.toRecord()); err != nil {
			return handleError(c, err, "update_tool")
		}

		return c.JSON(http.StatusOK, MessageResponse{Message: "tool updated"})
	}
}

func handleDeleteTool(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return handleValidationError(c, "Invalid tool id", "id", c.Param("id"))
		}

		if err := container.RegisterToolUsecase.Delete(c.Request().Context(), id); err != nil {
			return handleError(c, err, "delete_tool")
		}

		return c.JSON(http.StatusOK, MessageResponse{Message: "tool deleted"})
	}
}
